package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/goalsync/pkg/goal"
)

// GoalOptions carries the attribute flags shared by goal add and update.
type GoalOptions struct {
	Type        string
	Priority    string
	Progress    int
	Description string
	Category    string
}

func AddGoalArgs(cmd *cobra.Command, o *GoalOptions) {
	cmd.Flags().StringVarP(&o.Type, "type", "t", "study",
		"Goal type. One of 'study', 'revision', 'discussion', or 'exams'.")
	cmd.Flags().StringVarP(&o.Priority, "priority", "p", "medium",
		"Priority. One of 'low', 'medium', or 'high'.")
	cmd.Flags().IntVar(&o.Progress, "progress", 0,
		"Progress percentage, clamped into [0,100].")
	cmd.Flags().StringVar(&o.Description, "description", "",
		"Free-text description.")
	cmd.Flags().StringVar(&o.Category, "group", "individual",
		"Category. One of 'individual' or 'group'.")
}

func (o *GoalOptions) GetType() (goal.Type, error) {
	return goal.ParseType(o.Type)
}

func (o *GoalOptions) GetPriority() (goal.Priority, error) {
	return goal.ParsePriority(o.Priority)
}

func (o *GoalOptions) GetCategory() (goal.Category, error) {
	return goal.ParseCategory(o.Category)
}
