package commands

import (
	"context"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/goalsync/pkg/commands/options"
	"tableflip.dev/goalsync/pkg/runner/report"
)

func addDashboard(topLevel *cobra.Command) {
	do := &options.DemoOptions{}

	cmd := &cobra.Command{
		Use:     "dashboard",
		Aliases: []string{"summary"},
		Short:   "Show the overview, risks, and recommendations",
		Example: `
goalsync dashboard --demo
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := report.Report{Store: do.NewStore()}
			err := s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddDemoArgs(cmd, do)
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
