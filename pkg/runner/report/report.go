// Package report holds the runner logic for the dashboard summary.
package report

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/goalsync/pkg/dashboard"
	"tableflip.dev/goalsync/pkg/printers"
	"tableflip.dev/goalsync/pkg/store"
)

// Report prints the dashboard: overview stats, risk alerts, and study
// recommendations computed from the current store snapshot.
type Report struct {
	Store *store.Store
}

func (n *Report) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not build dashboard, no store")
	}

	s := dashboard.Build(n.Store.Goals(), n.Store.Tasks(), n.Store.Entries(), time.Now())

	pp := printers.PrettyPrint{}
	pp.NewLine()
	pp.Title("Dashboard")
	pp.NewLine()
	pp.Summary(s)
	return nil
}
