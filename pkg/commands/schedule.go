package commands

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/goalsync/pkg/commands/options"
	"tableflip.dev/goalsync/pkg/runner/timetable"
	"tableflip.dev/goalsync/pkg/schedule"
)

func addSchedule(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "schedule",
		Aliases: []string{"timetable"},
		Short:   "Plan study sessions on the timetable",
		Example: `
goalsync schedule show --demo
goalsync schedule add DSA practice --from=14:00 --to=15:30
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addScheduleShow(cmd)
	addScheduleAdd(cmd)
	addScheduleMove(cmd)
	addScheduleRemove(cmd)

	topLevel.AddCommand(cmd)
}

func addScheduleShow(topLevel *cobra.Command) {
	do := &options.DemoOptions{}
	oo := &options.OnOptions{}
	vo := &options.ViewOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the day or week grid",
		Example: `
goalsync schedule show --demo
goalsync schedule show --demo --view=day --on=2026-9-2
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			view, err := vo.GetView()
			if err != nil {
				return output.HandleError(err)
			}
			on, err := oo.GetOn()
			if err != nil {
				return output.HandleError(err)
			}
			s := timetable.Show{
				ShowID: io.ShowID,
				View:   view,
				Store:  do.NewStore(),
			}
			if on != nil {
				s.On = *on
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddDemoArgs(cmd, do)
	options.AddOnArgs(cmd, oo)
	options.AddViewArgs(cmd, vo)
	options.AddShowIDArgs(cmd, io)
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addScheduleAdd(topLevel *cobra.Command) {
	do := &options.DemoOptions{}
	oo := &options.OnOptions{}
	to := &options.TaskOptions{}
	title := ""

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a study session",
		Example: `
goalsync schedule add OS deep work --from=09:00 --to=11:00 --subject="Operating Systems"
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a session title")
			}
			title = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			typ, err := to.GetType()
			if err != nil {
				return output.HandleError(err)
			}
			priority, err := to.GetPriority()
			if err != nil {
				return output.HandleError(err)
			}
			start, end, err := to.GetSlot()
			if err != nil {
				return output.HandleError(err)
			}
			on, err := oo.GetOn()
			if err != nil {
				return output.HandleError(err)
			}
			date := schedule.Today()
			if on != nil {
				date = *on
			}

			task := &schedule.Task{
				Title:    title,
				Type:     typ,
				Subject:  to.Subject,
				Start:    start,
				End:      end,
				Date:     date,
				Priority: priority,
				GoalID:   to.GoalID,
			}
			s := timetable.Add{Task: task, Store: do.NewStore()}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddDemoArgs(cmd, do)
	options.AddOnArgs(cmd, oo)
	options.AddTaskArgs(cmd, to)
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addScheduleMove(topLevel *cobra.Command) {
	do := &options.DemoOptions{}
	oo := &options.OnOptions{}
	from := ""
	var id int64

	cmd := &cobra.Command{
		Use:   "move [id]",
		Short: "Reschedule a session, keeping its duration",
		Example: `
goalsync schedule move 5 --demo --on=2026-9-3 --from=14:00
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a session id")
			}
			var err error
			id, err = strconv.ParseInt(args[0], 10, 64)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := schedule.ParseClock(from)
			if err != nil {
				return output.HandleError(err)
			}
			on, err := oo.GetOn()
			if err != nil {
				return output.HandleError(err)
			}
			date := schedule.Today()
			if on != nil {
				date = *on
			}

			s := timetable.Move{ID: id, Date: date, Start: start, Store: do.NewStore()}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().StringVar(&from, "from", "", `New start time, example: --from="14:00".`)
	options.AddDemoArgs(cmd, do)
	options.AddOnArgs(cmd, oo)
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addScheduleRemove(topLevel *cobra.Command) {
	do := &options.DemoOptions{}
	var id int64

	cmd := &cobra.Command{
		Use:     "rm [id]",
		Aliases: []string{"remove", "delete"},
		Short:   "Remove a session",
		Example: `
goalsync schedule rm 6 --demo
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a session id")
			}
			var err error
			id, err = strconv.ParseInt(args[0], 10, 64)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s := timetable.Remove{ID: id, Store: do.NewStore()}
			err := s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddDemoArgs(cmd, do)
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
