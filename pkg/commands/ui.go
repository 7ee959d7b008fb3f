package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/goalsync/pkg/commands/options"
	"tableflip.dev/goalsync/pkg/config"
	"tableflip.dev/goalsync/pkg/runner/ui"
)

func addUI(topLevel *cobra.Command) {
	do := &options.DemoOptions{}

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive terminal interface",
		Example: `
goalsync ui --demo
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			i := ui.UI{
				Store:          do.NewStore(),
				CatalogPath:    cfg.CatalogPath,
				Delay:          cfg.AssistantDelay,
				RevealInterval: cfg.RevealInterval,
			}
			return i.Do(context.Background())
		},
	}

	options.AddDemoArgs(cmd, do)
	topLevel.AddCommand(cmd)
}
