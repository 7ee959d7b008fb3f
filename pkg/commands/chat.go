package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/goalsync/pkg/config"
	"tableflip.dev/goalsync/pkg/runner/chat"
)

func addChat(topLevel *cobra.Command) {
	noReveal := false
	message := ""

	cmd := &cobra.Command{
		Use:     "chat",
		Aliases: []string{"ask"},
		Short:   "Ask the study assistant",
		Example: `
goalsync chat what is an operating system
goalsync chat give me a study plan --no-reveal
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a message")
			}
			message = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return output.HandleError(err)
			}
			s := chat.Ask{
				Message:        message,
				Delay:          cfg.AssistantDelay,
				RevealInterval: cfg.RevealInterval,
				NoReveal:       noReveal,
			}
			err = s.Do(context.Background())
			return output.HandleError(err)
		},
	}

	cmd.Flags().BoolVar(&noReveal, "no-reveal", false,
		"Print the reply at once instead of typing it out.")
	base.AddOutputArg(cmd, output)
	topLevel.AddCommand(cmd)
}
