// Package assistant is the canned study assistant. Responses are selected by
// case-insensitive keyword match from an embedded script; there is no prompt
// construction and no external model. The only suspension points are the
// artificial thinking delay and the typing reveal, both presentation.
package assistant

import (
	"context"
	_ "embed"
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultDelay is the artificial pause before a response is available.
	DefaultDelay = time.Second
	// DefaultRevealInterval paces the character-by-character typing effect.
	DefaultRevealInterval = 20 * time.Millisecond
)

//go:embed responses.yaml
var defaultScript []byte

// Group maps a set of trigger keywords to one canned reply. Groups are
// evaluated in order; the first match wins.
type Group struct {
	Keywords []string `yaml:"keywords"`
	Reply    string   `yaml:"reply"`
}

type script struct {
	Greeting string  `yaml:"greeting"`
	Fallback string  `yaml:"fallback"`
	Groups   []Group `yaml:"groups"`
}

// Responder answers free-text input from the canned script.
type Responder struct {
	script         script
	delay          time.Duration
	revealInterval time.Duration
}

// Option customises a Responder.
type Option func(*Responder)

// WithDelay overrides the artificial thinking delay. Zero disables it, which
// tests rely on.
func WithDelay(d time.Duration) Option {
	return func(r *Responder) { r.delay = d }
}

// WithRevealInterval overrides the typing reveal pacing.
func WithRevealInterval(d time.Duration) Option {
	return func(r *Responder) { r.revealInterval = d }
}

// New builds a Responder from the embedded response script.
func New(opts ...Option) (*Responder, error) {
	r := &Responder{
		delay:          DefaultDelay,
		revealInterval: DefaultRevealInterval,
	}
	if err := yaml.Unmarshal(defaultScript, &r.script); err != nil {
		return nil, fmt.Errorf("assistant: parse response script: %w", err)
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Greeting is the opening assistant message of a fresh conversation.
func (r *Responder) Greeting() string {
	return r.script.Greeting
}

// Respond selects the canned reply for input and makes it available after the
// configured delay. The delay honours ctx cancellation.
func (r *Responder) Respond(ctx context.Context, input string) (string, error) {
	reply := r.pick(input)
	if r.delay > 0 {
		timer := time.NewTimer(r.delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return reply, nil
}

func (r *Responder) pick(input string) string {
	lower := strings.ToLower(input)
	for _, group := range r.script.Groups {
		for _, keyword := range group.Keywords {
			if strings.Contains(lower, keyword) {
				return group.Reply
			}
		}
	}
	return r.script.Fallback
}

// Reveal streams text one rune at a time at the configured interval. The
// stream is purely presentational; the response itself is already complete.
// Cancelling ctx discards the in-flight reveal.
func (r *Responder) Reveal(ctx context.Context, text string) <-chan rune {
	out := make(chan rune)
	go func() {
		defer close(out)
		var ticker *time.Ticker
		if r.revealInterval > 0 {
			ticker = time.NewTicker(r.revealInterval)
			defer ticker.Stop()
		}
		for _, ch := range text {
			if ticker != nil {
				select {
				case <-ticker.C:
				case <-ctx.Done():
					return
				}
			}
			select {
			case out <- ch:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}
