// Package timetable holds the runner logic behind the schedule commands.
package timetable

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/goalsync/pkg/printers"
	"tableflip.dev/goalsync/pkg/schedule"
	"tableflip.dev/goalsync/pkg/store"
)

// Show prints the timetable grid for a day or a week around the reference
// date.
type Show struct {
	ShowID bool
	View   schedule.View
	On     time.Time
	Store  *store.Store
}

func (n *Show) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not show timetable, no store")
	}
	ref := n.On
	if ref.IsZero() {
		ref = schedule.Today()
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.NewLine()
	if n.View == schedule.ViewDay {
		pp.Title(ref.Format("Monday, January 2"))
		pp.Day(n.Store.Tasks(), ref)
		return nil
	}

	week := schedule.WeekOf(ref)
	pp.Title("Week of " + week[0].Format("January 2"))
	pp.Week(n.Store.Tasks(), ref)
	return nil
}

// Add stores a new task and prints the day it lands on.
type Add struct {
	Task  *schedule.Task
	Store *store.Store
}

func (n *Add) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not add task, no store")
	}
	stored, err := n.Store.AddTask(n.Task)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: true}
	pp.NewLine()
	pp.Title(stored.Date.Format("Monday, January 2"))
	pp.Day(n.Store.Tasks(), stored.Date)
	return nil
}

// Move reschedules a task to a new date and start time, keeping its duration.
type Move struct {
	ID    int64
	Date  time.Time
	Start schedule.ClockTime
	Store *store.Store
}

func (n *Move) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not move task, no store")
	}
	moved, err := n.Store.RescheduleTask(n.ID, n.Date, n.Start)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: true}
	pp.NewLine()
	pp.Title(moved.Date.Format("Monday, January 2"))
	pp.Day(n.Store.Tasks(), moved.Date)
	return nil
}

// Remove deletes a task by id. Unknown ids are quietly ignored.
type Remove struct {
	ID    int64
	Store *store.Store
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not remove task, no store")
	}
	n.Store.RemoveTask(n.ID)

	pp := printers.PrettyPrint{ShowID: true}
	pp.NewLine()
	pp.Title("Timetable")
	pp.Week(n.Store.Tasks(), schedule.Today())
	return nil
}
