package store

import (
	"time"

	"tableflip.dev/goalsync/pkg/goal"
	"tableflip.dev/goalsync/pkg/schedule"
	"tableflip.dev/goalsync/pkg/wellness"
)

func mustClock(raw string) schedule.ClockTime {
	c, err := schedule.ParseClock(raw)
	if err != nil {
		panic(err)
	}
	return c
}

// Seed loads a small demo data set so the views have something to show.
// Records go through the normal add path, so they get real ids.
func Seed(s *Store, now time.Time) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	goals := []*goal.Goal{
		{
			Title:       "Finish operating systems revision",
			Type:        goal.TypeRevision,
			Priority:    goal.PriorityHigh,
			Deadline:    today.AddDate(0, 0, 5),
			Progress:    65,
			Description: "Process scheduling, memory management, and file systems.",
			Category:    goal.CategoryIndividual,
		},
		{
			Title:    "Solve 50 DSA problems",
			Type:     goal.TypeStudy,
			Priority: goal.PriorityHigh,
			Deadline: today.AddDate(0, 0, 14),
			Progress: 34,
			Category: goal.CategoryIndividual,
		},
		{
			Title:    "Group presentation on system design",
			Type:     goal.TypeDiscussion,
			Priority: goal.PriorityMedium,
			Deadline: today.AddDate(0, 0, 2),
			Progress: 80,
			Category: goal.CategoryGroup,
		},
		{
			Title:     "Pass the aptitude mock exam",
			Type:      goal.TypeExams,
			Priority:  goal.PriorityLow,
			Deadline:  today.AddDate(0, 0, -3),
			Progress:  100,
			Completed: true,
			Category:  goal.CategoryIndividual,
		},
	}
	for _, g := range goals {
		_, _ = s.AddGoal(g)
	}

	tasks := []*schedule.Task{
		{
			Title:    "OS deep work",
			Type:     schedule.TypeStudy,
			Subject:  "Operating Systems",
			Date:     today,
			Start:    mustClock("09:00"),
			End:      mustClock("11:00"),
			Priority: goal.PriorityHigh,
			GoalID:   goals[0].ID,
		},
		{
			Title:    "DSA practice set",
			Type:     schedule.TypeStudy,
			Subject:  "Data Structures",
			Date:     today,
			Start:    mustClock("14:00"),
			End:      mustClock("15:30"),
			Priority: goal.PriorityHigh,
			GoalID:   goals[1].ID,
		},
		{
			Title:    "Evening walk",
			Type:     schedule.TypeWellness,
			Date:     today,
			Start:    mustClock("18:00"),
			End:      mustClock("18:30"),
			Priority: goal.PriorityLow,
		},
		{
			Title:    "Presentation dry run",
			Type:     schedule.TypeDiscussion,
			Subject:  "System Design",
			Date:     today.AddDate(0, 0, 1),
			Start:    mustClock("10:00"),
			End:      mustClock("11:00"),
			Priority: goal.PriorityMedium,
			GoalID:   goals[2].ID,
		},
	}
	for _, t := range tasks {
		_, _ = s.AddTask(t)
	}

	history := []*wellness.Entry{
		{Date: today.AddDate(0, 0, -2), Mood: 6, Energy: 5, Stress: 6, Sleep: 6,
			WaterIntake: 5, ExerciseMinutes: 0, ScreenTime: 7},
		{Date: today.AddDate(0, 0, -1), Mood: 7, Energy: 6, Stress: 5, Sleep: 7,
			WaterIntake: 6, ExerciseMinutes: 20, ScreenTime: 6},
		{Date: today, Mood: 7, Energy: 7, Stress: 4, Sleep: 8,
			WaterIntake: 7, ExerciseMinutes: 30, ScreenTime: 5,
			Notes: "Good focus after the morning run."},
	}
	for _, e := range history {
		s.PutEntry(e)
	}
}
