package options

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/goalsync/pkg/store"
)

// DemoOptions
type DemoOptions struct {
	Demo bool
}

func AddDemoArgs(cmd *cobra.Command, o *DemoOptions) {
	cmd.Flags().BoolVar(&o.Demo, "demo", false,
		"Preload the store with sample goals, tasks, and check-ins.")
}

// NewStore builds the session store, seeded when --demo is set. Nothing is
// written to disk; state lives only for this invocation.
func (o *DemoOptions) NewStore() *store.Store {
	s := store.New()
	if o.Demo {
		store.Seed(s, time.Now())
	}
	return s
}
