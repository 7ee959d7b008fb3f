package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/goalsync/pkg/schedule"
)

// ViewOptions
type ViewOptions struct {
	View string
}

func AddViewArgs(cmd *cobra.Command, o *ViewOptions) {
	cmd.Flags().StringVarP(&o.View, "view", "v", "week",
		"Grid granularity. One of 'day' or 'week'.")
}

func (o *ViewOptions) GetView() (schedule.View, error) {
	return schedule.ParseView(o.View)
}
