package commands

import (
	"context"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/goalsync/pkg/commands/options"
	"tableflip.dev/goalsync/pkg/runner/checkin"
	"tableflip.dev/goalsync/pkg/schedule"
)

func addWellness(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "wellness",
		Short: "Daily check-ins and wellness insights",
		Example: `
goalsync wellness checkin --mood=7 --energy=6 --stress=4 --sleep=8
goalsync wellness summary --demo
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addWellnessCheckin(cmd)
	addWellnessSummary(cmd)
	addWellnessHistory(cmd)

	topLevel.AddCommand(cmd)
}

func addWellnessCheckin(topLevel *cobra.Command) {
	do := &options.DemoOptions{}
	oo := &options.OnOptions{}
	co := &options.CheckinOptions{}

	cmd := &cobra.Command{
		Use:   "checkin",
		Short: "Record today's check-in",
		Example: `
goalsync wellness checkin --mood=7 --energy=6 --stress=4 --sleep=8 --water=6
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			on, err := oo.GetOn()
			if err != nil {
				return output.HandleError(err)
			}
			date := schedule.Today()
			if on != nil {
				date = *on
			}

			s := checkin.Record{Entry: co.GetEntry(date), Store: do.NewStore()}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddDemoArgs(cmd, do)
	options.AddOnArgs(cmd, oo)
	options.AddCheckinArgs(cmd, co)
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addWellnessSummary(topLevel *cobra.Command) {
	do := &options.DemoOptions{}

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show history averages and the current insight",
		Example: `
goalsync wellness summary --demo
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := checkin.Summary{Store: do.NewStore()}
			err := s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddDemoArgs(cmd, do)
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addWellnessHistory(topLevel *cobra.Command) {
	do := &options.DemoOptions{}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List every retained check-in",
		Example: `
goalsync wellness history --demo
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := checkin.History{Store: do.NewStore()}
			err := s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddDemoArgs(cmd, do)
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
