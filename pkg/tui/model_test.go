package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/goalsync/pkg/assistant"
	"tableflip.dev/goalsync/pkg/catalog"
	"tableflip.dev/goalsync/pkg/goal"
	"tableflip.dev/goalsync/pkg/store"
)

func newTestModel(t *testing.T) Model {
	t.Helper()

	s := store.New()
	if _, err := s.AddGoal(&goal.Goal{
		Title:    "Finish OS revision",
		Type:     goal.TypeRevision,
		Priority: goal.PriorityHigh,
		Deadline: time.Now().AddDate(0, 0, 5),
		Progress: 40,
		Category: goal.CategoryIndividual,
	}); err != nil {
		t.Fatalf("seed goal: %v", err)
	}

	r, err := assistant.New(assistant.WithDelay(0), assistant.WithRevealInterval(0))
	if err != nil {
		t.Fatalf("assistant: %v", err)
	}

	return NewModel(Options{Store: s, Responder: r})
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	if !ok {
		t.Fatalf("update returned %T, want Model", next)
	}
	return out
}

func TestTabCycling(t *testing.T) {
	m := newTestModel(t)
	if m.tab != tabDashboard {
		t.Fatalf("expected dashboard tab first, got %d", m.tab)
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.tab != tabGoals {
		t.Fatalf("tab should advance to goals, got %d", m.tab)
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.tab != tabDashboard {
		t.Fatalf("shift+tab should go back to dashboard, got %d", m.tab)
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.tab != tabChat {
		t.Fatalf("shift+tab should wrap to chat, got %d", m.tab)
	}
}

func TestGoalToggleAndProgress(t *testing.T) {
	m := newTestModel(t)
	m.tab = tabGoals

	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	g := m.store.Goals()[0]
	if !g.Completed || g.Progress != 100 {
		t.Fatalf("space should complete the goal and force progress 100, got %+v", g)
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeySpace})
	g = m.store.Goals()[0]
	if g.Completed {
		t.Fatalf("space again should reopen the goal")
	}
	if g.Progress != 100 {
		t.Fatalf("reopening must preserve stored progress, got %d", g.Progress)
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'-'}})
	if got := m.store.Goals()[0].Progress; got != 90 {
		t.Fatalf("minus should drop progress to 90, got %d", got)
	}
}

func TestGoalDelete(t *testing.T) {
	m := newTestModel(t)
	m.tab = tabGoals

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}})
	if got := len(m.store.Goals()); got != 0 {
		t.Fatalf("expected goal deleted, %d remain", got)
	}
}

func TestChatReplyReveal(t *testing.T) {
	m := newTestModel(t)
	m.tab = tabChat

	m = update(t, m, replyMsg{text: "ok"})
	if !m.revealing {
		t.Fatalf("reply should start the reveal")
	}

	m = update(t, m, revealTickMsg{})
	if !m.revealing || m.revealed != 1 {
		t.Fatalf("first tick should reveal one rune, got revealed=%d", m.revealed)
	}

	m = update(t, m, revealTickMsg{})
	if m.revealing {
		t.Fatalf("reveal should finish after the last rune")
	}
	msgs := m.conv.Messages
	last := msgs[len(msgs)-1]
	if last.Role != assistant.RoleAssistant || last.Content != "ok" {
		t.Fatalf("finished reveal should append the reply, got %+v", last)
	}
}

func TestCatalogReloadKeepsCursorInRange(t *testing.T) {
	m := newTestModel(t)
	m.resources = []*catalog.Resource{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	m.resCursor = 2

	m = update(t, m, catalogLoadedMsg{resources: []*catalog.Resource{{ID: "a"}}})
	if m.resCursor != 0 {
		t.Fatalf("cursor should reset when the catalog shrinks, got %d", m.resCursor)
	}
}

func TestViewRendersActiveTab(t *testing.T) {
	m := newTestModel(t)
	out := m.View()
	if !strings.Contains(out, "Dashboard") {
		t.Fatalf("view missing tab bar:\n%s", out)
	}
	if !strings.Contains(out, "Goals completed") {
		t.Fatalf("dashboard tab should render the overview:\n%s", out)
	}

	m.tab = tabGoals
	out = m.View()
	if !strings.Contains(out, "Finish OS revision") {
		t.Fatalf("goals tab should list the goal:\n%s", out)
	}
}
