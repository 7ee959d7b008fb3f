package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/goalsync/pkg/goal"
	"tableflip.dev/goalsync/pkg/schedule"
	"tableflip.dev/goalsync/pkg/wellness"
)

func newGoal(title string) *goal.Goal {
	return goal.New(title, goal.TypeStudy, goal.PriorityMedium,
		time.Date(2025, time.August, 1, 0, 0, 0, 0, time.UTC), goal.CategoryIndividual)
}

func newTask(title, start, end string, date time.Time) *schedule.Task {
	s, _ := schedule.ParseClock(start)
	e, _ := schedule.ParseClock(end)
	return &schedule.Task{
		Title: title,
		Type:  schedule.TypeStudy,
		Start: s,
		End:   e,
		Date:  date,
	}
}

func intPtr(v int) *int          { return &v }
func boolPtr(v bool) *bool       { return &v }
func strPtr(v string) *string    { return &v }
func catPtr(c goal.Category) *goal.Category { return &c }

func TestAddGoalAssignsUniqueIDs(t *testing.T) {
	s := New()
	a, err := s.AddGoal(newGoal("X"))
	require.NoError(t, err)
	b, err := s.AddGoal(newGoal("Y"))
	require.NoError(t, err)

	assert.NotZero(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, 0, a.Progress)
	assert.False(t, a.Completed)
}

func TestAddGoalRejectsBlankTitle(t *testing.T) {
	s := New()
	_, err := s.AddGoal(newGoal("   "))
	assert.Error(t, err)
	assert.Empty(t, s.Goals())
}

func TestAddGoalRejectsMissingDeadline(t *testing.T) {
	s := New()
	g := newGoal("X")
	g.Deadline = time.Time{}
	_, err := s.AddGoal(g)
	assert.Error(t, err)
}

func TestUpdateGoalClampsProgress(t *testing.T) {
	s := New()
	g, err := s.AddGoal(newGoal("X"))
	require.NoError(t, err)

	updated, err := s.UpdateGoal(g.ID, GoalPatch{Progress: intPtr(150)})
	require.NoError(t, err)
	assert.Equal(t, 100, updated.Progress)

	updated, err = s.UpdateGoal(g.ID, GoalPatch{Progress: intPtr(-10)})
	require.NoError(t, err)
	assert.Equal(t, 0, updated.Progress)
}

func TestCompleteForcesFullProgress(t *testing.T) {
	s := New()
	g, err := s.AddGoal(newGoal("X"))
	require.NoError(t, err)

	_, err = s.UpdateGoal(g.ID, GoalPatch{Progress: intPtr(65)})
	require.NoError(t, err)

	updated, err := s.UpdateGoal(g.ID, GoalPatch{Completed: boolPtr(true)})
	require.NoError(t, err)
	assert.Equal(t, 100, updated.Progress)

	// Clearing completion preserves the stored progress.
	updated, err = s.UpdateGoal(g.ID, GoalPatch{Completed: boolPtr(false)})
	require.NoError(t, err)
	assert.Equal(t, 100, updated.Progress)
	assert.False(t, updated.Completed)
}

func TestUpdateGoalNotFound(t *testing.T) {
	s := New()
	_, err := s.UpdateGoal(99, GoalPatch{Progress: intPtr(10)})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateGoalValidationLeavesStoreUntouched(t *testing.T) {
	s := New()
	g, err := s.AddGoal(newGoal("X"))
	require.NoError(t, err)

	_, err = s.UpdateGoal(g.ID, GoalPatch{Title: strPtr("  ")})
	assert.Error(t, err)

	kept, err := s.Goal(g.ID)
	require.NoError(t, err)
	assert.Equal(t, "X", kept.Title)
}

func TestRemoveGoalIdempotent(t *testing.T) {
	s := New()
	g, err := s.AddGoal(newGoal("X"))
	require.NoError(t, err)

	s.RemoveGoal(g.ID)
	s.RemoveGoal(g.ID)
	assert.Empty(t, s.Goals())
}

func TestGoalsKeepInsertionOrder(t *testing.T) {
	s := New()
	for _, title := range []string{"A", "B", "C"} {
		_, err := s.AddGoal(newGoal(title))
		require.NoError(t, err)
	}
	goals := s.Goals()
	require.Len(t, goals, 3)
	assert.Equal(t, "A", goals[0].Title)
	assert.Equal(t, "C", goals[2].Title)
}

func TestAddTaskRejectsEmptyInterval(t *testing.T) {
	s := New()
	d := time.Date(2025, time.July, 2, 0, 0, 0, 0, time.UTC)
	_, err := s.AddTask(newTask("zero", "09:00", "09:00", d))
	assert.ErrorIs(t, err, schedule.ErrInvalidSlot)
	assert.Empty(t, s.Tasks())
}

func TestRescheduleTaskKeepsDuration(t *testing.T) {
	s := New()
	d := time.Date(2025, time.July, 2, 0, 0, 0, 0, time.UTC)
	task, err := s.AddTask(newTask("DBMS", "09:00", "11:00", d))
	require.NoError(t, err)

	newDate := d.AddDate(0, 0, 2)
	start, _ := schedule.ParseClock("14:00")
	moved, err := s.RescheduleTask(task.ID, newDate, start)
	require.NoError(t, err)
	assert.Equal(t, "14:00", moved.Start.String())
	assert.Equal(t, "16:00", moved.End.String())
	assert.True(t, moved.SameDate(newDate))
}

func TestRescheduleTaskNotFound(t *testing.T) {
	s := New()
	start, _ := schedule.ParseClock("10:00")
	_, err := s.RescheduleTask(42, time.Now(), start)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPutEntryUpsertsByDate(t *testing.T) {
	s := New()
	d := time.Date(2025, time.July, 2, 0, 0, 0, 0, time.UTC)
	s.PutEntry(&wellness.Entry{Date: d, Mood: 5, Energy: 5, Stress: 5, Sleep: 5})
	s.PutEntry(&wellness.Entry{Date: d, Mood: 8, Energy: 7, Stress: 3, Sleep: 8})

	entries := s.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, 8, entries[0].Mood)
}

func TestPutEntryClampsAndSorts(t *testing.T) {
	s := New()
	later := time.Date(2025, time.July, 3, 0, 0, 0, 0, time.UTC)
	earlier := time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC)
	s.PutEntry(&wellness.Entry{Date: later, Mood: 20, Energy: 5, Stress: 5, Sleep: 5})
	s.PutEntry(&wellness.Entry{Date: earlier, Mood: 5, Energy: 5, Stress: 5, Sleep: 5})

	entries := s.Entries()
	require.Len(t, entries, 2)
	assert.True(t, entries[0].Date.Before(entries[1].Date))
	assert.Equal(t, 10, entries[1].Mood)
}

func TestFilterScenarioCategoryChange(t *testing.T) {
	// Add a goal in the group category, filter by individual, flip category.
	s := New()
	g := newGoal("X")
	g.Category = goal.CategoryGroup
	added, err := s.AddGoal(g)
	require.NoError(t, err)

	individual := func(gs []*goal.Goal) []*goal.Goal {
		out := make([]*goal.Goal, 0, len(gs))
		for _, g := range gs {
			if g.Category == goal.CategoryIndividual {
				out = append(out, g)
			}
		}
		return out
	}

	assert.Empty(t, individual(s.Goals()))

	_, err = s.UpdateGoal(added.ID, GoalPatch{Category: catPtr(goal.CategoryIndividual)})
	require.NoError(t, err)
	assert.Len(t, individual(s.Goals()), 1)
}
