// Package checkin holds the runner logic behind the wellness commands.
package checkin

import (
	"context"
	"errors"

	"tableflip.dev/goalsync/pkg/printers"
	"tableflip.dev/goalsync/pkg/store"
	"tableflip.dev/goalsync/pkg/wellness"
)

// Record upserts today's check-in and prints it back with the derived score.
type Record struct {
	Entry *wellness.Entry
	Store *store.Store
}

func (n *Record) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not record check-in, no store")
	}
	stored := n.Store.PutEntry(n.Entry)

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Title("Check-in")
	pp.Checkin(stored)
	pp.NewLine()
	return nil
}

// Summary prints history averages and the current insight.
type Summary struct {
	Store *store.Store
}

func (n *Summary) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not summarize wellness, no store")
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Title("Wellness")
	pp.WellnessSummary(n.Store.Entries())
	return nil
}

// History prints every retained check-in, oldest first.
type History struct {
	Store *store.Store
}

func (n *History) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not show history, no store")
	}

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Title("Check-in history")
	entries := n.Store.Entries()
	if len(entries) == 0 {
		pp.WellnessSummary(entries)
		return nil
	}
	for _, e := range entries {
		pp.Checkin(e)
	}
	pp.NewLine()
	return nil
}
