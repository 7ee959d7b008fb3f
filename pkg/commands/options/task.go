package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/goalsync/pkg/goal"
	"tableflip.dev/goalsync/pkg/schedule"
)

// TaskOptions carries the attribute flags of schedule add.
type TaskOptions struct {
	Type     string
	Subject  string
	Start    string
	End      string
	Priority string
	GoalID   int64
}

func AddTaskArgs(cmd *cobra.Command, o *TaskOptions) {
	cmd.Flags().StringVarP(&o.Type, "type", "t", "study",
		"Task type. One of 'study', 'revision', 'discussion', 'exams', or 'wellness'.")
	cmd.Flags().StringVar(&o.Subject, "subject", "",
		"Subject the session covers.")
	cmd.Flags().StringVar(&o.Start, "from", "",
		`Start time, example: --from="09:00".`)
	cmd.Flags().StringVar(&o.End, "to", "",
		`End time, example: --to="11:00".`)
	cmd.Flags().StringVarP(&o.Priority, "priority", "p", "medium",
		"Priority. One of 'low', 'medium', or 'high'.")
	cmd.Flags().Int64Var(&o.GoalID, "goal", 0,
		"Id of the goal this session works toward.")
}

func (o *TaskOptions) GetType() (schedule.Type, error) {
	return schedule.ParseType(o.Type)
}

func (o *TaskOptions) GetPriority() (goal.Priority, error) {
	return goal.ParsePriority(o.Priority)
}

func (o *TaskOptions) GetSlot() (start, end schedule.ClockTime, err error) {
	start, err = schedule.ParseClock(o.Start)
	if err != nil {
		return 0, 0, err
	}
	end, err = schedule.ParseClock(o.End)
	if err != nil {
		return 0, 0, err
	}
	return start, end, nil
}
