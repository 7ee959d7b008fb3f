package commands

import (
	"context"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/goalsync/pkg/catalog"
	"tableflip.dev/goalsync/pkg/commands/options"
	"tableflip.dev/goalsync/pkg/config"
	"tableflip.dev/goalsync/pkg/runner/resources"
)

func addResources(topLevel *cobra.Command) {
	fo := &options.FilterOptions{}
	var picked []string

	cmd := &cobra.Command{
		Use:     "resources",
		Aliases: []string{"resource", "catalog"},
		Short:   "Browse the learning resource catalog",
		Example: `
goalsync resources
goalsync resources -c dsa -s patterns
goalsync resources --pick yt-0 --pick yt-2
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return output.HandleError(err)
			}
			category, err := catalog.ParseCategory(fo.Category)
			if err != nil {
				return output.HandleError(err)
			}

			s := resources.Browse{
				CatalogPath: cfg.CatalogPath,
				Category:    category,
				Query:       fo.Query,
				Select:      picked,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().StringArrayVar(&picked, "pick", nil,
		"Mark a resource id as picked. Repeatable.")
	options.AddFilterArgs(cmd, fo)
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
