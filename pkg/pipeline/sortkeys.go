package pipeline

import (
	"fmt"
	"strings"

	"tableflip.dev/goalsync/pkg/goal"
	"tableflip.dev/goalsync/pkg/schedule"
)

// SortKey selects one of the small enumerated set of comparators the views
// expose.
type SortKey string

const (
	// SortDeadline orders ascending chronological, earliest first.
	SortDeadline SortKey = "deadline"
	// SortPriority orders descending by the fixed ranking high > medium > low.
	SortPriority SortKey = "priority"
	// SortProgress orders descending numeric progress.
	SortProgress SortKey = "completion"
)

// ParseSortKey converts a string to a SortKey, defaulting to deadline.
func ParseSortKey(raw string) (SortKey, error) {
	k := SortKey(strings.ToLower(strings.TrimSpace(raw)))
	switch k {
	case "":
		return SortDeadline, nil
	case SortDeadline, SortPriority, SortProgress:
		return k, nil
	case "progress":
		return SortProgress, nil
	}
	return SortDeadline, fmt.Errorf("pipeline: unknown sort key %q", raw)
}

// GoalLess returns the comparator for the given sort key over goals. Ties are
// left to the stable sort, preserving input order.
func GoalLess(key SortKey) Less[*goal.Goal] {
	switch key {
	case SortPriority:
		return func(a, b *goal.Goal) bool {
			return a.Priority.Rank() > b.Priority.Rank()
		}
	case SortProgress:
		return func(a, b *goal.Goal) bool {
			return a.Progress > b.Progress
		}
	default:
		return func(a, b *goal.Goal) bool {
			return a.Deadline.Before(b.Deadline)
		}
	}
}

// TaskLess returns the comparator for the given sort key over scheduled
// tasks. Deadline sorting uses date then start time.
func TaskLess(key SortKey) Less[*schedule.Task] {
	switch key {
	case SortPriority:
		return func(a, b *schedule.Task) bool {
			return a.Priority.Rank() > b.Priority.Rank()
		}
	default:
		return func(a, b *schedule.Task) bool {
			if a.Date.Equal(b.Date) {
				return a.Start < b.Start
			}
			return a.Date.Before(b.Date)
		}
	}
}
