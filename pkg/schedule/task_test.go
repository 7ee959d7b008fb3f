package schedule

import (
	"testing"
	"time"
)

func TestParseClock(t *testing.T) {
	c, err := ParseClock("09:30")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Hour() != 9 || c.Minute() != 30 {
		t.Fatalf("expected 9:30, got %d:%d", c.Hour(), c.Minute())
	}
	if c.String() != "09:30" {
		t.Fatalf("unexpected string form: %s", c.String())
	}
}

func TestParseClockInvalid(t *testing.T) {
	for _, raw := range []string{"", "9", "24:00", "12:60", "ab:cd"} {
		if _, err := ParseClock(raw); err == nil {
			t.Fatalf("expected error for %q", raw)
		}
	}
}

func TestValidateEmptyInterval(t *testing.T) {
	task := &Task{
		Title: "zero length",
		Start: ClockTime(9 * 60),
		End:   ClockTime(9 * 60),
		Date:  time.Date(2025, time.July, 2, 0, 0, 0, 0, time.UTC),
	}
	if err := task.Validate(); err != ErrInvalidSlot {
		t.Fatalf("expected ErrInvalidSlot, got %v", err)
	}
	task.End = ClockTime(8 * 60)
	if err := task.Validate(); err != ErrInvalidSlot {
		t.Fatalf("expected ErrInvalidSlot for reversed interval, got %v", err)
	}
}

func TestDuration(t *testing.T) {
	task := &Task{Start: ClockTime(9 * 60), End: ClockTime(11*60 + 30)}
	if task.Duration() != 2*time.Hour+30*time.Minute {
		t.Fatalf("unexpected duration: %v", task.Duration())
	}
}
