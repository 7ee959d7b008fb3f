// Package chat holds the runner logic for one-shot assistant questions.
package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/goalsync/pkg/assistant"
)

// Ask sends one message to the assistant and prints the canned reply. With
// NoReveal the reply is printed at once instead of character by character.
type Ask struct {
	Message        string
	Delay          time.Duration
	RevealInterval time.Duration
	NoReveal       bool
}

func (n *Ask) Do(ctx context.Context) error {
	if strings.TrimSpace(n.Message) == "" {
		return errors.New("can not ask, empty message")
	}

	r, err := assistant.New(
		assistant.WithDelay(n.Delay),
		assistant.WithRevealInterval(n.RevealInterval),
	)
	if err != nil {
		return err
	}

	reply, err := r.Respond(ctx, n.Message)
	if err != nil {
		return err
	}

	label := color.New(color.Bold, color.FgHiMagenta)
	_, _ = label.Print("assistant: ")
	if n.NoReveal {
		fmt.Println(reply)
		return nil
	}
	for ch := range r.Reveal(ctx, reply) {
		fmt.Print(string(ch))
	}
	fmt.Println("")
	return ctx.Err()
}
