package schedule

import (
	"fmt"
	"strings"
	"time"
)

// Operating window for the hour grid. Tasks outside it are simply not shown.
const (
	FirstHour = 8
	LastHour  = 21
)

// View selects the grid granularity.
type View string

const (
	ViewDay  View = "day"
	ViewWeek View = "week"
)

// ParseView converts a string to a View, defaulting to week.
func ParseView(raw string) (View, error) {
	v := View(strings.ToLower(strings.TrimSpace(raw)))
	switch v {
	case "":
		return ViewWeek, nil
	case ViewDay, ViewWeek:
		return v, nil
	}
	return ViewWeek, fmt.Errorf("schedule: unknown view %q", raw)
}

// WeekOf returns the seven calendar dates of the week containing d, ordered
// Sunday through Saturday. The time of day is truncated to midnight in d's
// location.
func WeekOf(d time.Time) [7]time.Time {
	day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
	sunday := day.AddDate(0, 0, -int(day.Weekday()))
	var week [7]time.Time
	for i := range week {
		week[i] = sunday.AddDate(0, 0, i)
	}
	return week
}

// Hours returns the fixed hour buckets of the operating window, 08:00 through
// 21:00 inclusive. The slice is identical on every call and independent of the
// data being displayed.
func Hours() []int {
	hours := make([]int, 0, LastHour-FirstHour+1)
	for h := FirstHour; h <= LastHour; h++ {
		hours = append(hours, h)
	}
	return hours
}

// TasksOn returns every task scheduled on the given calendar date, in input
// order.
func TasksOn(tasks []*Task, date time.Time) []*Task {
	matched := make([]*Task, 0, len(tasks))
	for _, t := range tasks {
		if t.SameDate(date) {
			matched = append(matched, t)
		}
	}
	return matched
}

// TasksAt returns every task on date whose interval overlaps the hour bucket
// [hour, hour+1). The test is startHour <= hour < endHour, so a two hour task
// appears in two buckets and a task ending at 11:30 still occupies only the
// buckets its whole start hours cover.
func TasksAt(tasks []*Task, date time.Time, hour int) []*Task {
	matched := make([]*Task, 0, len(tasks))
	for _, t := range tasks {
		if !t.SameDate(date) {
			continue
		}
		if t.Start.Hour() <= hour && hour < t.End.Hour() {
			matched = append(matched, t)
		}
	}
	return matched
}

// Step moves the reference date by delta units: one day per unit in day view,
// seven days per unit in week view. Month and year rollover is ordinary
// calendar arithmetic.
func Step(ref time.Time, view View, delta int) time.Time {
	days := delta
	if view == ViewWeek {
		days = delta * 7
	}
	return ref.AddDate(0, 0, days)
}

// Today resets the reference date to the current date.
func Today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}
