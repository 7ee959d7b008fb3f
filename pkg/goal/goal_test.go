package goal

import (
	"testing"
	"time"
)

func TestParseType(t *testing.T) {
	typ, err := ParseType(" Revision ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if typ != TypeRevision {
		t.Fatalf("expected revision, got %s", typ)
	}
}

func TestParseTypeUnknown(t *testing.T) {
	if _, err := ParseType("sleep"); err == nil {
		t.Fatalf("expected error for unknown type")
	}
}

func TestPriorityRank(t *testing.T) {
	if PriorityHigh.Rank() != 3 || PriorityMedium.Rank() != 2 || PriorityLow.Rank() != 1 {
		t.Fatalf("priority ranking broken: %d %d %d",
			PriorityHigh.Rank(), PriorityMedium.Rank(), PriorityLow.Rank())
	}
	if Priority("urgent").Rank() != 0 {
		t.Fatalf("unknown priority should rank 0")
	}
}

func TestClampProgress(t *testing.T) {
	cases := []struct {
		in   int
		want int
	}{
		{-10, 0},
		{0, 0},
		{65, 65},
		{100, 100},
		{150, 100},
	}
	for _, tc := range cases {
		if got := ClampProgress(tc.in); got != tc.want {
			t.Fatalf("ClampProgress(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestDueIn(t *testing.T) {
	now := time.Date(2025, time.July, 2, 9, 30, 0, 0, time.UTC)
	cases := []struct {
		deadline time.Time
		want     string
	}{
		{time.Date(2025, time.July, 2, 23, 0, 0, 0, time.UTC), "Due today"},
		{time.Date(2025, time.July, 3, 0, 0, 0, 0, time.UTC), "Due tomorrow"},
		{time.Date(2025, time.July, 10, 0, 0, 0, 0, time.UTC), "8 days left"},
		{time.Date(2025, time.June, 30, 0, 0, 0, 0, time.UTC), "2 days overdue"},
	}
	for _, tc := range cases {
		g := &Goal{Deadline: tc.deadline}
		if got := g.DueIn(now); got != tc.want {
			t.Fatalf("DueIn(%v) = %q, want %q", tc.deadline, got, tc.want)
		}
	}
}
