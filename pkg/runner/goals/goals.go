// Package goals holds the runner logic behind the goal commands.
package goals

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/goalsync/pkg/goal"
	"tableflip.dev/goalsync/pkg/pipeline"
	"tableflip.dev/goalsync/pkg/printers"
	"tableflip.dev/goalsync/pkg/store"
)

// List prints goals filtered by category and search query, ordered by the
// configured sort key.
type List struct {
	ShowID   bool
	Category goal.Category
	Query    string
	Sort     pipeline.SortKey
	Store    *store.Store
}

func (n *List) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not list goals, no store")
	}

	filters := []pipeline.Predicate[*goal.Goal]{
		pipeline.Equals(string(n.Category), func(g *goal.Goal) string { return string(g.Category) }),
		pipeline.Search(n.Query,
			func(g *goal.Goal) string { return g.Title },
			func(g *goal.Goal) string { return g.Description }),
	}
	visible := pipeline.Apply(n.Store.Goals(), filters, pipeline.GoalLess(n.Sort))

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.NewLine()
	pp.Title("Goals")
	pp.Goals(visible, time.Now())
	return nil
}

// Add stores a new goal and prints the resulting list.
type Add struct {
	Goal  *goal.Goal
	Store *store.Store
}

func (n *Add) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not add goal, no store")
	}
	if _, err := n.Store.AddGoal(n.Goal); err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: true}
	pp.NewLine()
	pp.Title("Goals")
	pp.Goals(n.Store.Goals(), time.Now())
	return nil
}

// Update merges a patch into an existing goal and prints the result.
type Update struct {
	ID    int64
	Patch store.GoalPatch
	Store *store.Store
}

func (n *Update) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not update goal, no store")
	}
	updated, err := n.Store.UpdateGoal(n.ID, n.Patch)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: true}
	pp.NewLine()
	pp.Goals([]*goal.Goal{updated}, time.Now())
	return nil
}

// Complete toggles completion on a goal.
type Complete struct {
	ID    int64
	Undo  bool
	Store *store.Store
}

func (n *Complete) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not complete goal, no store")
	}
	done := !n.Undo
	updated, err := n.Store.UpdateGoal(n.ID, store.GoalPatch{Completed: &done})
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: true}
	pp.NewLine()
	pp.Goals([]*goal.Goal{updated}, time.Now())
	return nil
}

// Remove deletes a goal by id. Unknown ids are quietly ignored.
type Remove struct {
	ID    int64
	Store *store.Store
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not remove goal, no store")
	}
	n.Store.RemoveGoal(n.ID)

	pp := printers.PrettyPrint{ShowID: true}
	pp.NewLine()
	pp.Title("Goals")
	pp.Goals(n.Store.Goals(), time.Now())
	return nil
}
