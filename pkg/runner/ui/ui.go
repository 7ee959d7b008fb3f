// Package ui launches the interactive terminal front end.
package ui

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/goalsync/pkg/assistant"
	"tableflip.dev/goalsync/pkg/store"
	"tableflip.dev/goalsync/pkg/tui"
)

// UI runs the tabbed terminal interface until the user quits. When
// CatalogPath names a real file it is watched for edits so the resources view
// stays current.
type UI struct {
	Store          *store.Store
	CatalogPath    string
	Delay          time.Duration
	RevealInterval time.Duration
}

func (n *UI) Do(ctx context.Context) error {
	if n.Store == nil {
		return errors.New("can not open ui, no store")
	}

	responder, err := assistant.New(
		assistant.WithDelay(n.Delay),
		assistant.WithRevealInterval(n.RevealInterval),
	)
	if err != nil {
		return err
	}

	m := tui.NewModel(tui.Options{
		Store:          n.Store,
		Responder:      responder,
		CatalogPath:    n.CatalogPath,
		RevealInterval: n.RevealInterval,
	})

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))

	if n.CatalogPath != "" {
		cleanup, err := tui.StartWatcher(n.CatalogPath, p)
		if err == nil {
			defer cleanup()
		}
	}

	_, err = p.Run()
	return err
}
