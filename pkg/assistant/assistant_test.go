package assistant

import (
	"context"
	"strings"
	"testing"
	"time"
)

func newResponder(t *testing.T) *Responder {
	t.Helper()
	r, err := New(WithDelay(0), WithRevealInterval(0))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return r
}

func TestRespondKeywordMatch(t *testing.T) {
	r := newResponder(t)
	cases := []struct {
		input string
		want  string
	}{
		{"explain operating system scheduling", "Operating System"},
		{"what is an OS?", "Operating System"},
		{"help me with data structure basics", "Data Structures"},
		{"any dsa tips?", "Data Structures"},
		{"I need some motivation today", "motivational quotes"},
		{"give me a quote", "motivational quotes"},
		{"build me a study plan for finals", "study plan framework"},
	}
	for _, tc := range cases {
		got, err := r.Respond(context.Background(), tc.input)
		if err != nil {
			t.Fatalf("Respond(%q): %v", tc.input, err)
		}
		if !strings.Contains(got, tc.want) {
			t.Fatalf("Respond(%q) missing %q in reply", tc.input, tc.want)
		}
	}
}

func TestRespondFallback(t *testing.T) {
	r := newResponder(t)
	got, err := r.Respond(context.Background(), "tell me about medieval history")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(got, "comprehensive explanation") {
		t.Fatalf("expected fallback reply, got %q", got)
	}
}

func TestRespondFirstGroupWins(t *testing.T) {
	r := newResponder(t)
	// Mentions both os and dsa; the os group is listed first.
	got, err := r.Respond(context.Background(), "compare os and dsa courses")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(got, "Operating System") {
		t.Fatalf("expected first matching group to win, got %q", got)
	}
}

func TestRespondHonorsCancellation(t *testing.T) {
	r, err := New(WithDelay(time.Minute))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := r.Respond(ctx, "os"); err == nil {
		t.Fatalf("expected context error")
	}
}

func TestRevealStreamsWholeText(t *testing.T) {
	r := newResponder(t)
	var b strings.Builder
	for ch := range r.Reveal(context.Background(), "hello") {
		b.WriteRune(ch)
	}
	if b.String() != "hello" {
		t.Fatalf("reveal mangled text: %q", b.String())
	}
}

func TestRevealStopsOnCancel(t *testing.T) {
	r, err := New(WithDelay(0), WithRevealInterval(time.Minute))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	stream := r.Reveal(ctx, "never fully shown")
	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-stream:
			if !ok {
				return // closed, as expected
			}
		case <-deadline:
			t.Fatalf("reveal did not stop after cancel")
		}
	}
}

func TestConversationTranscript(t *testing.T) {
	r := newResponder(t)
	c := NewConversation(r.Greeting())
	c.AddUser("what is an os?")
	c.AddAssistant("an answer")

	if len(c.Messages) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(c.Messages))
	}
	if c.Messages[0].Role != RoleAssistant {
		t.Fatalf("transcript must open with the greeting")
	}
	if c.Messages[1].ID == c.Messages[2].ID {
		t.Fatalf("message ids must be unique")
	}
}
