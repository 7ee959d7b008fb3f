package dashboard

import (
	"testing"
	"time"

	"tableflip.dev/goalsync/pkg/goal"
	"tableflip.dev/goalsync/pkg/schedule"
	"tableflip.dev/goalsync/pkg/wellness"
)

var now = time.Date(2025, time.July, 2, 12, 0, 0, 0, time.UTC)

func day(offset int) time.Time {
	return now.AddDate(0, 0, offset)
}

func clock(t *testing.T, raw string) schedule.ClockTime {
	t.Helper()
	c, err := schedule.ParseClock(raw)
	if err != nil {
		t.Fatalf("ParseClock(%q): %v", raw, err)
	}
	return c
}

func TestOverviewCounts(t *testing.T) {
	goals := []*goal.Goal{
		{ID: 1, Title: "A", Progress: 100, Completed: true, Deadline: day(-5)},
		{ID: 2, Title: "B", Progress: 40, Deadline: day(3)},
		{ID: 3, Title: "C", Progress: 60, Deadline: day(20)},
	}
	tasks := []*schedule.Task{
		{Title: "study", Type: schedule.TypeStudy, Date: day(0),
			Start: clock(t, "09:00"), End: clock(t, "11:00")},
		{Title: "break", Type: schedule.TypeWellness, Date: day(0),
			Start: clock(t, "16:30"), End: clock(t, "17:00")},
	}
	history := []*wellness.Entry{
		{Date: day(-1), Mood: 7, Energy: 6, Stress: 4, Sleep: 8},
	}

	s := Build(goals, tasks, history, now)
	o := s.Overview

	if o.GoalsTotal != 3 || o.GoalsCompleted != 1 {
		t.Fatalf("goal counts: %+v", o)
	}
	if o.AverageProgress != 66 {
		t.Fatalf("average progress: got %d", o.AverageProgress)
	}
	if o.UpcomingDeadlines != 1 {
		t.Fatalf("upcoming deadlines: got %d", o.UpcomingDeadlines)
	}
	// Wellness break excluded from study hours.
	if o.StudyHoursWeek != 2 {
		t.Fatalf("study hours: got %v", o.StudyHoursWeek)
	}
	if o.WellnessScore != 7 {
		t.Fatalf("wellness score: got %d", o.WellnessScore)
	}
}

func TestOverdueRisk(t *testing.T) {
	goals := []*goal.Goal{
		{ID: 1, Title: "late", Progress: 20, Deadline: day(-2)},
	}
	s := Build(goals, nil, nil, now)
	if len(s.Risks) == 0 || s.Risks[0].Kind != "overdue" || s.Risks[0].Level != LevelHigh {
		t.Fatalf("expected overdue risk, got %+v", s.Risks)
	}
}

func TestDeadlineCrunchRisk(t *testing.T) {
	goals := []*goal.Goal{
		{ID: 1, Title: "a", Deadline: day(1)},
		{ID: 2, Title: "b", Deadline: day(2)},
	}
	s := Build(goals, nil, nil, now)
	found := false
	for _, r := range s.Risks {
		if r.Kind == "deadline" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected deadline crunch risk, got %+v", s.Risks)
	}
}

func TestStressRisk(t *testing.T) {
	history := []*wellness.Entry{
		{Date: day(-2), Mood: 5, Stress: 8, Sleep: 7},
		{Date: day(-1), Mood: 5, Stress: 8, Sleep: 7},
		{Date: day(0), Mood: 5, Stress: 8, Sleep: 7},
	}
	s := Build(nil, nil, history, now)
	found := false
	for _, r := range s.Risks {
		if r.Kind == "burnout" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected burnout risk, got %+v", s.Risks)
	}
}

func TestInactivityRisk(t *testing.T) {
	history := []*wellness.Entry{
		{Date: day(-5), Mood: 7, Stress: 4, Sleep: 8},
	}
	s := Build(nil, nil, history, now)
	found := false
	for _, r := range s.Risks {
		if r.Kind == "inactivity" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected inactivity risk, got %+v", s.Risks)
	}
}

func TestRecommendations(t *testing.T) {
	goals := []*goal.Goal{
		{ID: 1, Title: "ML Project", Progress: 40, Deadline: day(5)},
	}
	tasks := []*schedule.Task{
		{Title: "deep work", Type: schedule.TypeStudy, Date: day(0),
			Start: clock(t, "09:00"), End: clock(t, "12:00")},
	}
	s := Build(goals, tasks, nil, now)

	kinds := map[string]bool{}
	for _, r := range s.Recommendations {
		kinds[r.Kind] = true
	}
	if !kinds["revise"] {
		t.Fatalf("expected revise recommendation, got %+v", s.Recommendations)
	}
	if !kinds["break"] {
		t.Fatalf("expected break recommendation, got %+v", s.Recommendations)
	}
}

func TestEmptySnapshot(t *testing.T) {
	s := Build(nil, nil, nil, now)
	if s.Overview.GoalsTotal != 0 || s.Overview.WellnessScore != 0 {
		t.Fatalf("empty snapshot overview: %+v", s.Overview)
	}
	if len(s.Risks) != 0 {
		t.Fatalf("empty snapshot should raise no risks: %+v", s.Risks)
	}
}
