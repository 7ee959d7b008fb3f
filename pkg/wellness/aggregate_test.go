package wellness

import (
	"testing"
	"time"
)

func entryOn(day int, mood, stress, sleep int) *Entry {
	return &Entry{
		Date:   time.Date(2025, time.June, day, 0, 0, 0, 0, time.UTC),
		Mood:   mood,
		Energy: 5,
		Stress: stress,
		Sleep:  sleep,
	}
}

func TestScore(t *testing.T) {
	e := &Entry{Mood: 7, Energy: 6, Stress: 4, Sleep: 8}
	// (7 + 6 + 6 + 8) / 4 = 6.75 -> 7
	if got := e.Score(); got != 7 {
		t.Fatalf("expected score 7, got %d", got)
	}
}

func TestClamp(t *testing.T) {
	e := &Entry{Mood: 0, Energy: 15, Stress: -2, Sleep: 10, WaterIntake: -1, ScreenTime: -0.5}
	e.Clamp()
	if e.Mood != 1 || e.Energy != 10 || e.Stress != 1 || e.Sleep != 10 {
		t.Fatalf("scale clamp broken: %+v", e)
	}
	if e.WaterIntake != 0 || e.ScreenTime != 0 {
		t.Fatalf("count clamp broken: %+v", e)
	}
}

func TestAverage(t *testing.T) {
	history := []*Entry{
		entryOn(26, 8, 3, 9),
		entryOn(27, 6, 6, 7),
		entryOn(28, 7, 4, 8),
	}
	avg, err := Average(history, MetricMood)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if avg != 7 {
		t.Fatalf("expected mood average 7, got %v", avg)
	}
}

func TestAverageEmptyHistory(t *testing.T) {
	avg, err := Average(nil, MetricSleep)
	if err != ErrEmptyHistory {
		t.Fatalf("expected ErrEmptyHistory, got %v", err)
	}
	if avg != 0 {
		t.Fatalf("sentinel must be 0, got %v", avg)
	}
}

func TestClassifyExcellent(t *testing.T) {
	history := []*Entry{
		entryOn(26, 9, 2, 8),
		entryOn(27, 8, 1, 8),
		entryOn(28, 9, 3, 8),
	}
	if got := Classify(history); got.Kind != InsightExcellent {
		t.Fatalf("expected excellent, got %s", got.Kind)
	}
}

func TestClassifyConcerningBeatsHighMood(t *testing.T) {
	// Mood is high but stress disqualifies rule 1, so rule 2 fires.
	history := []*Entry{
		entryOn(26, 9, 8, 8),
		entryOn(27, 9, 8, 8),
		entryOn(28, 9, 8, 8),
	}
	if got := Classify(history); got.Kind != InsightConcerning {
		t.Fatalf("expected concerning, got %s", got.Kind)
	}
}

func TestClassifySupport(t *testing.T) {
	history := []*Entry{
		entryOn(26, 3, 5, 8),
		entryOn(27, 4, 5, 8),
	}
	if got := Classify(history); got.Kind != InsightSupport {
		t.Fatalf("expected support, got %s", got.Kind)
	}
}

func TestClassifySleep(t *testing.T) {
	history := []*Entry{
		entryOn(26, 6, 5, 5),
		entryOn(27, 7, 4, 6),
	}
	if got := Classify(history); got.Kind != InsightSleep {
		t.Fatalf("expected sleep, got %s", got.Kind)
	}
}

func TestClassifyBalanced(t *testing.T) {
	history := []*Entry{
		entryOn(26, 7, 4, 8),
	}
	if got := Classify(history); got.Kind != InsightBalanced {
		t.Fatalf("expected balanced, got %s", got.Kind)
	}
}

func TestClassifyUsesTrailingWindow(t *testing.T) {
	// Old terrible days must not leak into the 3-entry window.
	history := []*Entry{
		entryOn(20, 1, 10, 2),
		entryOn(26, 9, 2, 8),
		entryOn(27, 8, 1, 8),
		entryOn(28, 9, 3, 8),
	}
	if got := Classify(history); got.Kind != InsightExcellent {
		t.Fatalf("expected excellent from trailing window, got %s", got.Kind)
	}
}
