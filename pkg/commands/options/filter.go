package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/goalsync/pkg/pipeline"
)

// FilterOptions captures the shared filter and sort flags of the list
// commands.
type FilterOptions struct {
	Category string
	Query    string
	SortBy   string
}

func AddFilterArgs(cmd *cobra.Command, o *FilterOptions) {
	cmd.Flags().StringVarP(&o.Category, "category", "c", "all",
		"Filter by category.")
	cmd.Flags().StringVarP(&o.Query, "search", "s", "",
		"Case-insensitive substring search.")
	cmd.Flags().StringVar(&o.SortBy, "sort", "deadline",
		"Sort order. One of 'deadline', 'priority', or 'completion'.")
}

func (o *FilterOptions) GetSort() (pipeline.SortKey, error) {
	return pipeline.ParseSortKey(o.SortBy)
}
