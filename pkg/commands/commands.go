package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
)

var (
	output = &base.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "goalsync",
		Short: base.Wrap80("Student goals, timetable, wellness check-ins, and study resources on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addGoal(topLevel)
	addSchedule(topLevel)
	addWellness(topLevel)
	addResources(topLevel)
	addChat(topLevel)
	addDashboard(topLevel)
	addVersion(topLevel)
}
