// Package goal defines the goal record and its closed vocabularies.
package goal

import (
	"fmt"
	"strings"
	"time"
)

// Type identifies what kind of work a goal represents.
type Type string

const (
	TypeStudy      Type = "study"
	TypeRevision   Type = "revision"
	TypeDiscussion Type = "discussion"
	TypeExams      Type = "exams"
)

// AllTypes returns the list of supported goal types.
func AllTypes() []Type {
	return []Type{
		TypeStudy,
		TypeRevision,
		TypeDiscussion,
		TypeExams,
	}
}

// ParseType converts a string to a Type or returns an error for unknown values.
func ParseType(raw string) (Type, error) {
	t := Type(strings.ToLower(strings.TrimSpace(raw)))
	if t == "" {
		return TypeStudy, nil
	}
	for _, candidate := range AllTypes() {
		if candidate == t {
			return candidate, nil
		}
	}
	return TypeStudy, fmt.Errorf("goal: unknown type %q", raw)
}

// Priority ranks how urgent a goal is.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// AllPriorities returns the list of supported priorities.
func AllPriorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh}
}

// ParsePriority converts a string to a Priority, defaulting to medium for the
// empty string.
func ParsePriority(raw string) (Priority, error) {
	p := Priority(strings.ToLower(strings.TrimSpace(raw)))
	if p == "" {
		return PriorityMedium, nil
	}
	for _, candidate := range AllPriorities() {
		if candidate == p {
			return candidate, nil
		}
	}
	return PriorityMedium, fmt.Errorf("goal: unknown priority %q", raw)
}

// Rank maps priorities onto the fixed ordering high=3, medium=2, low=1.
// Unknown priorities rank below low.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

// Category distinguishes solo goals from group work.
type Category string

const (
	CategoryIndividual Category = "individual"
	CategoryGroup      Category = "group"
)

// ParseCategory converts a string to a Category, defaulting to individual.
func ParseCategory(raw string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(raw)))
	switch c {
	case "":
		return CategoryIndividual, nil
	case CategoryIndividual, CategoryGroup:
		return c, nil
	}
	return CategoryIndividual, fmt.Errorf("goal: unknown category %q", raw)
}

// Goal is a single tracked objective. Progress is always within [0,100];
// writes clamp rather than reject out-of-range values.
type Goal struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title" validate:"required,notblank"`
	Type        Type      `json:"type"`
	Priority    Priority  `json:"priority"`
	Deadline    time.Time `json:"deadline" validate:"required"`
	Progress    int       `json:"progress"`
	Description string    `json:"description,omitempty"`
	Completed   bool      `json:"completed"`
	Category    Category  `json:"category"`
}

// New creates a goal with the lifecycle defaults: progress 0, not completed.
func New(title string, typ Type, priority Priority, deadline time.Time, category Category) *Goal {
	return &Goal{
		Title:     title,
		Type:      typ,
		Priority:  priority,
		Deadline:  deadline,
		Progress:  0,
		Completed: false,
		Category:  category,
	}
}

// ClampProgress forces a raw progress value into [0,100].
func ClampProgress(raw int) int {
	if raw < 0 {
		return 0
	}
	if raw > 100 {
		return 100
	}
	return raw
}

// DueIn describes the deadline relative to now, mirroring the card labels in
// the goals view ("3 days left", "Due today", "2 days overdue").
func (g *Goal) DueIn(now time.Time) string {
	days := daysUntil(now, g.Deadline)
	switch {
	case days < 0:
		return fmt.Sprintf("%d days overdue", -days)
	case days == 0:
		return "Due today"
	case days == 1:
		return "Due tomorrow"
	default:
		return fmt.Sprintf("%d days left", days)
	}
}

func daysUntil(now, deadline time.Time) int {
	a := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(deadline.Year(), deadline.Month(), deadline.Day(), 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}
