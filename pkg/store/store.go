// Package store is the in-memory entity store behind every view: goals,
// scheduled tasks, and wellness check-ins. Nothing survives the process;
// persistence is deliberately absent.
package store

import (
	"errors"
	"sort"
	"sync"
	"time"

	"tableflip.dev/goalsync/pkg/goal"
	"tableflip.dev/goalsync/pkg/schedule"
	"tableflip.dev/goalsync/pkg/validate"
	"tableflip.dev/goalsync/pkg/wellness"
)

// ErrNotFound is returned when an update or reschedule references an id the
// store does not hold. Removal of a missing id stays a no-op.
var ErrNotFound = errors.New("store: no record with that id")

// Store holds every domain record for one session. Records live in insertion
// order, which is the default list order before any sort is applied. The lock
// exists for the TUI's timer-driven reads; the domain itself is single-user.
type Store struct {
	mu      sync.RWMutex
	nextID  int64
	goals   []*goal.Goal
	tasks   []*schedule.Task
	entries []*wellness.Entry
}

// New creates an empty store.
func New() *Store {
	return &Store{nextID: 1}
}

func (s *Store) newID() int64 {
	id := s.nextID
	s.nextID++
	return id
}

// AddGoal validates g, assigns it a fresh id, clamps progress, and appends it.
// The stored record is returned.
func (s *Store) AddGoal(g *goal.Goal) (*goal.Goal, error) {
	if err := validate.Struct(g); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	g.ID = s.newID()
	g.Progress = goal.ClampProgress(g.Progress)
	if g.Completed {
		g.Progress = 100
	}
	s.goals = append(s.goals, g)
	return g, nil
}

// GoalPatch carries the fields an update may replace. Nil fields are left
// untouched (shallow merge).
type GoalPatch struct {
	Title       *string
	Type        *goal.Type
	Priority    *goal.Priority
	Deadline    *time.Time
	Progress    *int
	Description *string
	Completed   *bool
	Category    *goal.Category
}

// UpdateGoal shallow-merges patch into the goal with the given id. Raw
// progress values are clamped into [0,100]. Marking a goal completed forces
// progress to 100; clearing completion preserves the stored progress. A
// missing id returns ErrNotFound and the failed validation of a merged record
// leaves the store untouched.
func (s *Store) UpdateGoal(id int64, patch GoalPatch) (*goal.Goal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, g := range s.goals {
		if g.ID != id {
			continue
		}
		merged := *g
		if patch.Title != nil {
			merged.Title = *patch.Title
		}
		if patch.Type != nil {
			merged.Type = *patch.Type
		}
		if patch.Priority != nil {
			merged.Priority = *patch.Priority
		}
		if patch.Deadline != nil {
			merged.Deadline = *patch.Deadline
		}
		if patch.Progress != nil {
			merged.Progress = goal.ClampProgress(*patch.Progress)
		}
		if patch.Description != nil {
			merged.Description = *patch.Description
		}
		if patch.Category != nil {
			merged.Category = *patch.Category
		}
		if patch.Completed != nil {
			merged.Completed = *patch.Completed
			if merged.Completed {
				merged.Progress = 100
			}
		}
		if err := validate.Struct(&merged); err != nil {
			return nil, err
		}
		s.goals[i] = &merged
		return &merged, nil
	}
	return nil, ErrNotFound
}

// RemoveGoal deletes the first goal with the given id. Removing an unknown id
// is a no-op.
func (s *Store) RemoveGoal(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, g := range s.goals {
		if g.ID == id {
			s.goals = append(s.goals[:i], s.goals[i+1:]...)
			return
		}
	}
}

// Goals returns a snapshot of all goals in insertion order.
func (s *Store) Goals() []*goal.Goal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*goal.Goal, len(s.goals))
	copy(out, s.goals)
	return out
}

// Goal looks up a single goal by id.
func (s *Store) Goal(id int64) (*goal.Goal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, g := range s.goals {
		if g.ID == id {
			return g, nil
		}
	}
	return nil, ErrNotFound
}

// AddTask validates t, assigns it a fresh id, and appends it. Tasks with an
// empty or reversed time interval are rejected here, not hidden by the grid.
func (s *Store) AddTask(t *schedule.Task) (*schedule.Task, error) {
	if err := validate.Struct(t); err != nil {
		return nil, err
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	t.ID = s.newID()
	if t.Status == "" {
		t.Status = schedule.StatusScheduled
	}
	s.tasks = append(s.tasks, t)
	return t, nil
}

// TaskPatch carries the fields a task update may replace.
type TaskPatch struct {
	Title       *string
	Type        *schedule.Type
	Subject     *string
	Start       *schedule.ClockTime
	End         *schedule.ClockTime
	Date        *time.Time
	Status      *schedule.Status
	Priority    *goal.Priority
	GoalID      *int64
	Description *string
}

// UpdateTask shallow-merges patch into the task with the given id. A merged
// record that fails validation leaves the store untouched.
func (s *Store) UpdateTask(id int64, patch TaskPatch) (*schedule.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, t := range s.tasks {
		if t.ID != id {
			continue
		}
		merged := *t
		if patch.Title != nil {
			merged.Title = *patch.Title
		}
		if patch.Type != nil {
			merged.Type = *patch.Type
		}
		if patch.Subject != nil {
			merged.Subject = *patch.Subject
		}
		if patch.Start != nil {
			merged.Start = *patch.Start
		}
		if patch.End != nil {
			merged.End = *patch.End
		}
		if patch.Date != nil {
			merged.Date = *patch.Date
		}
		if patch.Status != nil {
			merged.Status = *patch.Status
		}
		if patch.Priority != nil {
			merged.Priority = *patch.Priority
		}
		if patch.GoalID != nil {
			merged.GoalID = *patch.GoalID
		}
		if patch.Description != nil {
			merged.Description = *patch.Description
		}
		if err := validate.Struct(&merged); err != nil {
			return nil, err
		}
		if err := merged.Validate(); err != nil {
			return nil, err
		}
		s.tasks[i] = &merged
		return &merged, nil
	}
	return nil, ErrNotFound
}

// RescheduleTask moves a task to a new date and start time, keeping its
// duration. This is the drop target of drag-and-drop rescheduling.
func (s *Store) RescheduleTask(id int64, date time.Time, start schedule.ClockTime) (*schedule.Task, error) {
	s.mu.RLock()
	var duration schedule.ClockTime
	found := false
	for _, t := range s.tasks {
		if t.ID == id {
			duration = t.End - t.Start
			found = true
			break
		}
	}
	s.mu.RUnlock()
	if !found {
		return nil, ErrNotFound
	}
	end := start + duration
	return s.UpdateTask(id, TaskPatch{Date: &date, Start: &start, End: &end})
}

// RemoveTask deletes the first task with the given id; unknown ids are a
// no-op.
func (s *Store) RemoveTask(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, t := range s.tasks {
		if t.ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return
		}
	}
}

// Tasks returns a snapshot of all scheduled tasks in insertion order.
func (s *Store) Tasks() []*schedule.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*schedule.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// PutEntry upserts a wellness check-in keyed by calendar date: submitting a
// second entry for the same date replaces the first, never duplicates it.
// Slider values are clamped before storage. History stays sorted by date.
func (s *Store) PutEntry(e *wellness.Entry) *wellness.Entry {
	e.Clamp()
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.entries {
		if existing.SameDate(e.Date) {
			s.entries[i] = e
			return e
		}
	}
	s.entries = append(s.entries, e)
	sort.SliceStable(s.entries, func(i, j int) bool {
		return s.entries[i].Date.Before(s.entries[j].Date)
	})
	return e
}

// Entries returns the wellness history ordered by date, oldest first.
func (s *Store) Entries() []*wellness.Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*wellness.Entry, len(s.entries))
	copy(out, s.entries)
	return out
}
