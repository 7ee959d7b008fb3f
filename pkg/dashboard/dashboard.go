// Package dashboard reduces a store snapshot into the summary view: overview
// stats, rule-based risk alerts, and study recommendations. Everything here
// is a pure function of the records passed in.
package dashboard

import (
	"fmt"
	"time"

	"tableflip.dev/goalsync/pkg/goal"
	"tableflip.dev/goalsync/pkg/schedule"
	"tableflip.dev/goalsync/pkg/wellness"
)

// Overview is the stat-card row at the top of the dashboard.
type Overview struct {
	GoalsCompleted    int
	GoalsTotal        int
	AverageProgress   int
	StudyHoursWeek    float64
	WellnessScore     int // 0 when no check-in exists yet
	UpcomingDeadlines int // open goals due within the next 7 days
}

// Level grades a risk alert.
type Level string

const (
	LevelHigh   Level = "high"
	LevelMedium Level = "medium"
	LevelLow    Level = "low"
)

// Risk is one rule-triggered alert.
type Risk struct {
	Kind    string
	Message string
	Level   Level
}

// Recommendation is one suggested next action.
type Recommendation struct {
	Kind    string
	Message string
}

// Summary is the full dashboard payload.
type Summary struct {
	Overview        Overview
	Insight         wellness.Insight
	Risks           []Risk
	Recommendations []Recommendation
}

// Build computes the dashboard from a snapshot of goals, tasks, and wellness
// history. now anchors all relative-date rules.
func Build(goals []*goal.Goal, tasks []*schedule.Task, history []*wellness.Entry, now time.Time) Summary {
	s := Summary{
		Overview: overview(goals, tasks, history, now),
		Insight:  wellness.Classify(history),
	}
	s.Risks = risks(goals, history, now)
	s.Recommendations = recommendations(goals, tasks, now)
	return s
}

func overview(goals []*goal.Goal, tasks []*schedule.Task, history []*wellness.Entry, now time.Time) Overview {
	o := Overview{GoalsTotal: len(goals)}

	progressSum := 0
	for _, g := range goals {
		progressSum += g.Progress
		if g.Completed {
			o.GoalsCompleted++
			continue
		}
		days := daysBetween(now, g.Deadline)
		if days >= 0 && days <= 7 {
			o.UpcomingDeadlines++
		}
	}
	if len(goals) > 0 {
		o.AverageProgress = progressSum / len(goals)
	}

	week := schedule.WeekOf(now)
	for _, t := range tasks {
		if t.Type == schedule.TypeWellness {
			continue
		}
		for _, d := range week {
			if t.SameDate(d) {
				o.StudyHoursWeek += t.Duration().Hours()
				break
			}
		}
	}

	if len(history) > 0 {
		o.WellnessScore = history[len(history)-1].Score()
	}
	return o
}

func risks(goals []*goal.Goal, history []*wellness.Entry, now time.Time) []Risk {
	var out []Risk

	overdue := 0
	crunch := 0
	for _, g := range goals {
		if g.Completed {
			continue
		}
		days := daysBetween(now, g.Deadline)
		if days < 0 {
			overdue++
		} else if days <= 2 {
			crunch++
		}
	}
	if overdue > 0 {
		out = append(out, Risk{
			Kind:    "overdue",
			Message: fmt.Sprintf("%d goals past their deadline", overdue),
			Level:   LevelHigh,
		})
	}
	if crunch >= 2 {
		out = append(out, Risk{
			Kind:    "deadline",
			Message: fmt.Sprintf("%d goals due within 2 days", crunch),
			Level:   LevelHigh,
		})
	}

	if insight := wellness.Classify(history); insight.Kind == wellness.InsightConcerning {
		out = append(out, Risk{
			Kind:    "burnout",
			Message: "Sustained high stress detected",
			Level:   LevelMedium,
		})
	}

	if len(history) > 0 {
		last := history[len(history)-1].Date
		if gap := daysBetween(last, now); gap >= 3 {
			out = append(out, Risk{
				Kind:    "inactivity",
				Message: fmt.Sprintf("No wellness check-in for %d days", gap),
				Level:   LevelMedium,
			})
		}
	}
	return out
}

func recommendations(goals []*goal.Goal, tasks []*schedule.Task, now time.Time) []Recommendation {
	var out []Recommendation

	for _, g := range goals {
		if g.Completed || g.Progress >= 50 {
			continue
		}
		days := daysBetween(now, g.Deadline)
		if days >= 0 && days <= 7 {
			out = append(out, Recommendation{
				Kind:    "revise",
				Message: fmt.Sprintf("Revise: %s (%d%% done, %s)", g.Title, g.Progress, g.DueIn(now)),
			})
		}
	}

	// A long study block today with no wellness break scheduled.
	longBlock := false
	hasBreak := false
	for _, t := range tasks {
		if !t.SameDate(now) {
			continue
		}
		if t.Type == schedule.TypeWellness {
			hasBreak = true
		} else if t.Duration() >= 2*time.Hour {
			longBlock = true
		}
	}
	if longBlock && !hasBreak {
		out = append(out, Recommendation{
			Kind:    "break",
			Message: "Schedule a short wellness break after your long study block",
		})
	}
	return out
}

func daysBetween(from, to time.Time) int {
	a := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}
