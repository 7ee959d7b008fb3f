package schedule

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func mustClock(t *testing.T, raw string) ClockTime {
	t.Helper()
	c, err := ParseClock(raw)
	if err != nil {
		t.Fatalf("ParseClock(%q): %v", raw, err)
	}
	return c
}

func TestWeekOfStartsSunday(t *testing.T) {
	// 2025-07-02 is a Wednesday.
	week := WeekOf(date(2025, time.July, 2))
	if week[0].Weekday() != time.Sunday {
		t.Fatalf("week should start on Sunday, got %s", week[0].Weekday())
	}
	if !week[0].Equal(date(2025, time.June, 29)) {
		t.Fatalf("unexpected week start: %v", week[0])
	}
	for i := 1; i < 7; i++ {
		if !week[i].Equal(week[i-1].AddDate(0, 0, 1)) {
			t.Fatalf("dates not consecutive at index %d: %v", i, week[i])
		}
	}
	found := false
	for _, d := range week {
		if d.Equal(date(2025, time.July, 2)) {
			found = true
		}
	}
	if !found {
		t.Fatalf("reference date missing from its own week")
	}
}

func TestWeekOfOnSunday(t *testing.T) {
	week := WeekOf(date(2025, time.June, 29))
	if !week[0].Equal(date(2025, time.June, 29)) {
		t.Fatalf("a Sunday should be its own week start, got %v", week[0])
	}
	if week[6].Weekday() != time.Saturday {
		t.Fatalf("week should end on Saturday, got %s", week[6].Weekday())
	}
}

func TestHoursWindow(t *testing.T) {
	hours := Hours()
	if len(hours) != 14 {
		t.Fatalf("expected 14 hour buckets, got %d", len(hours))
	}
	if hours[0] != 8 || hours[len(hours)-1] != 21 {
		t.Fatalf("unexpected window: %d..%d", hours[0], hours[len(hours)-1])
	}
}

func TestTasksAtOverlap(t *testing.T) {
	d := date(2025, time.July, 2)
	task := &Task{
		ID:    1,
		Title: "DBMS Study Session",
		Start: mustClock(t, "09:00"),
		End:   mustClock(t, "11:00"),
		Date:  d,
	}
	tasks := []*Task{task}

	var hit []int
	for _, h := range Hours() {
		if len(TasksAt(tasks, d, h)) > 0 {
			hit = append(hit, h)
		}
	}
	if len(hit) != 2 || hit[0] != 9 || hit[1] != 10 {
		t.Fatalf("expected buckets [9 10], got %v", hit)
	}

	// No bleed onto other dates.
	other := d.AddDate(0, 0, 1)
	for _, h := range Hours() {
		if len(TasksAt(tasks, other, h)) != 0 {
			t.Fatalf("task leaked onto %v at hour %d", other, h)
		}
	}
}

func TestTasksAtOutsideWindow(t *testing.T) {
	d := date(2025, time.July, 2)
	tasks := []*Task{{
		Title: "Late review",
		Start: mustClock(t, "22:00"),
		End:   mustClock(t, "23:00"),
		Date:  d,
	}}
	for _, h := range Hours() {
		if len(TasksAt(tasks, d, h)) != 0 {
			t.Fatalf("task outside the window should never display, hit hour %d", h)
		}
	}
}

func TestStep(t *testing.T) {
	ref := date(2025, time.July, 2)
	if got := Step(ref, ViewDay, 1); !got.Equal(date(2025, time.July, 3)) {
		t.Fatalf("day step: got %v", got)
	}
	if got := Step(ref, ViewWeek, -1); !got.Equal(date(2025, time.June, 25)) {
		t.Fatalf("week step back: got %v", got)
	}
	// Month rollover via ordinary calendar arithmetic.
	if got := Step(date(2025, time.July, 31), ViewDay, 1); !got.Equal(date(2025, time.August, 1)) {
		t.Fatalf("month rollover: got %v", got)
	}
}
