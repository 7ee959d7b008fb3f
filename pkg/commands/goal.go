package commands

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/goalsync/pkg/commands/options"
	"tableflip.dev/goalsync/pkg/goal"
	"tableflip.dev/goalsync/pkg/runner/goals"
	"tableflip.dev/goalsync/pkg/store"
)

func addGoal(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "goal",
		Aliases: []string{"goals"},
		Short:   "Track study goals",
		Example: `
goalsync goal list --demo
goalsync goal add Finish OS revision --on=2026-9-15 -p high
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addGoalList(cmd)
	addGoalAdd(cmd)
	addGoalUpdate(cmd)
	addGoalDone(cmd)
	addGoalRemove(cmd)

	topLevel.AddCommand(cmd)
}

func addGoalList(topLevel *cobra.Command) {
	do := &options.DemoOptions{}
	fo := &options.FilterOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List goals, filtered and sorted",
		Example: `
goalsync goal list --demo --sort=priority
goalsync goal list --demo -c group -s revision
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// "all" (the flag default) filters nothing.
			var category goal.Category
			if raw := normalizeAll(fo.Category); raw != "" {
				parsed, err := goal.ParseCategory(raw)
				if err != nil {
					return output.HandleError(err)
				}
				category = parsed
			}
			sortKey, err := fo.GetSort()
			if err != nil {
				return output.HandleError(err)
			}
			s := goals.List{
				ShowID:   io.ShowID,
				Category: category,
				Query:    fo.Query,
				Sort:     sortKey,
				Store:    do.NewStore(),
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddDemoArgs(cmd, do)
	options.AddFilterArgs(cmd, fo)
	options.AddShowIDArgs(cmd, io)
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

// normalizeAll maps the "all" filter value onto the match-everything empty
// string before category parsing.
func normalizeAll(raw string) string {
	if strings.EqualFold(strings.TrimSpace(raw), "all") {
		return ""
	}
	return raw
}

func addGoalAdd(topLevel *cobra.Command) {
	do := &options.DemoOptions{}
	oo := &options.OnOptions{}
	ao := &options.GoalOptions{}
	title := ""

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a goal",
		Example: `
goalsync goal add Solve 50 DSA problems --on=2026-9-30 -p high
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a goal title")
			}
			title = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			on, err := oo.GetOn()
			if err != nil {
				return output.HandleError(err)
			}
			if on == nil {
				return output.HandleError(errors.New("requires a deadline, set one with --on"))
			}
			typ, err := ao.GetType()
			if err != nil {
				return output.HandleError(err)
			}
			priority, err := ao.GetPriority()
			if err != nil {
				return output.HandleError(err)
			}
			category, err := ao.GetCategory()
			if err != nil {
				return output.HandleError(err)
			}

			g := goal.New(title, typ, priority, *on, category)
			g.Progress = ao.Progress
			g.Description = ao.Description

			s := goals.Add{Goal: g, Store: do.NewStore()}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddDemoArgs(cmd, do)
	options.AddOnArgs(cmd, oo)
	options.AddGoalArgs(cmd, ao)
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addGoalUpdate(topLevel *cobra.Command) {
	do := &options.DemoOptions{}
	oo := &options.OnOptions{}
	ao := &options.GoalOptions{}
	var id int64

	cmd := &cobra.Command{
		Use:   "update [id]",
		Short: "Update a goal's attributes",
		Example: `
goalsync goal update 2 --demo --progress=60
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a goal id")
			}
			var err error
			id, err = strconv.ParseInt(args[0], 10, 64)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			patch := store.GoalPatch{}
			if cmd.Flags().Changed("type") {
				typ, err := ao.GetType()
				if err != nil {
					return output.HandleError(err)
				}
				patch.Type = &typ
			}
			if cmd.Flags().Changed("priority") {
				priority, err := ao.GetPriority()
				if err != nil {
					return output.HandleError(err)
				}
				patch.Priority = &priority
			}
			if cmd.Flags().Changed("group") {
				category, err := ao.GetCategory()
				if err != nil {
					return output.HandleError(err)
				}
				patch.Category = &category
			}
			if cmd.Flags().Changed("progress") {
				patch.Progress = &ao.Progress
			}
			if cmd.Flags().Changed("description") {
				patch.Description = &ao.Description
			}
			if cmd.Flags().Changed("on") {
				on, err := oo.GetOn()
				if err != nil {
					return output.HandleError(err)
				}
				patch.Deadline = on
			}

			s := goals.Update{ID: id, Patch: patch, Store: do.NewStore()}
			err := s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddDemoArgs(cmd, do)
	options.AddOnArgs(cmd, oo)
	options.AddGoalArgs(cmd, ao)
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addGoalDone(topLevel *cobra.Command) {
	do := &options.DemoOptions{}
	undo := false
	var id int64

	cmd := &cobra.Command{
		Use:   "done [id]",
		Short: "Mark a goal completed",
		Example: `
goalsync goal done 1 --demo
goalsync goal done 1 --demo --undo
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a goal id")
			}
			var err error
			id, err = strconv.ParseInt(args[0], 10, 64)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s := goals.Complete{ID: id, Undo: undo, Store: do.NewStore()}
			err := s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().BoolVar(&undo, "undo", false, "Reopen the goal, keeping its progress.")
	options.AddDemoArgs(cmd, do)
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}

func addGoalRemove(topLevel *cobra.Command) {
	do := &options.DemoOptions{}
	var id int64

	cmd := &cobra.Command{
		Use:     "rm [id]",
		Aliases: []string{"remove", "delete"},
		Short:   "Remove a goal",
		Example: `
goalsync goal rm 3 --demo
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a goal id")
			}
			var err error
			id, err = strconv.ParseInt(args[0], 10, 64)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s := goals.Remove{ID: id, Store: do.NewStore()}
			err := s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	options.AddDemoArgs(cmd, do)
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
