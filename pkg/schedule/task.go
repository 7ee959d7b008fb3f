// Package schedule defines scheduled tasks and the date-grid view model used
// by the timetable.
package schedule

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"tableflip.dev/goalsync/pkg/goal"
)

// ErrInvalidSlot is returned when a task's time interval is empty or reversed.
var ErrInvalidSlot = errors.New("schedule: start time must be before end time")

// Type identifies what kind of session a task is. It extends the goal
// vocabulary with wellness breaks.
type Type string

const (
	TypeStudy      Type = "study"
	TypeRevision   Type = "revision"
	TypeDiscussion Type = "discussion"
	TypeExams      Type = "exams"
	TypeWellness   Type = "wellness"
)

// AllTypes returns the list of supported task types.
func AllTypes() []Type {
	return []Type{
		TypeStudy,
		TypeRevision,
		TypeDiscussion,
		TypeExams,
		TypeWellness,
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
	return TypeStudy, fmt.Errorf("schedule: unknown task type %q", raw)
}

// Status tracks whether a task ran. Only scheduled is produced today; done and
// missed exist for the status vocabulary.
type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusDone      Status = "done"
	StatusMissed    Status = "missed"
)

// ClockTime is a time of day in minutes since midnight, parsed from "HH:MM".
type ClockTime int

// ParseClock parses an "HH:MM" string into a ClockTime.
func ParseClock(raw string) (ClockTime, error) {
	parts := strings.SplitN(strings.TrimSpace(raw), ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("schedule: invalid clock time %q", raw)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("schedule: invalid hour in %q", raw)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("schedule: invalid minute in %q", raw)
	}
	return ClockTime(hour*60 + minute), nil
}

// Hour returns the whole-hour component.
func (c ClockTime) Hour() int {
	return int(c) / 60
}

// Minute returns the minute component.
func (c ClockTime) Minute() int {
	return int(c) % 60
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute())
}

// Task is one scheduled block of time on a single calendar date. The interval
// [Start, End) is half-open and must be non-empty.
type Task struct {
	ID          int64         `json:"id"`
	Title       string        `json:"title" validate:"required,notblank"`
	Type        Type          `json:"type"`
	Subject     string        `json:"subject,omitempty"`
	Start       ClockTime     `json:"startTime"`
	End         ClockTime     `json:"endTime"`
	Date        time.Time     `json:"date" validate:"required"`
	Status      Status        `json:"status"`
	Priority    goal.Priority `json:"priority"`
	GoalID      int64         `json:"goalId,omitempty"` // weak reference, 0 means none
	Description string        `json:"description,omitempty"`
}

// Validate rejects tasks with an empty or reversed time interval. Zero-length
// tasks are invalid at creation time, never silently hidden by the grid.
func (t *Task) Validate() error {
	if t.Start >= t.End {
		return ErrInvalidSlot
	}
	return nil
}

// Duration is the task length.
func (t *Task) Duration() time.Duration {
	return time.Duration(t.End-t.Start) * time.Minute
}

// SameDate reports whether the task falls on the given calendar date.
func (t *Task) SameDate(d time.Time) bool {
	return t.Date.Year() == d.Year() &&
		t.Date.Month() == d.Month() &&
		t.Date.Day() == d.Day()
}
