// Package tui is the interactive terminal front end: one program with tabbed
// views over the dashboard, goals, timetable, wellness history, the resource
// catalog, and the study assistant.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/goalsync/pkg/assistant"
	"tableflip.dev/goalsync/pkg/catalog"
	"tableflip.dev/goalsync/pkg/goal"
	"tableflip.dev/goalsync/pkg/schedule"
	"tableflip.dev/goalsync/pkg/store"
)

// Tabs, in display order.
const (
	tabDashboard = iota
	tabGoals
	tabTimetable
	tabWellness
	tabResources
	tabChat
	tabCount
)

// CatalogChangedMsg is sent by the file watcher when the catalog file changes.
type CatalogChangedMsg struct{}

type catalogLoadedMsg struct {
	resources []*catalog.Resource
	err       error
}

type replyMsg struct {
	text string
	err  error
}

type revealTickMsg struct{}

// Options configures the TUI model.
type Options struct {
	Store          *store.Store
	Responder      *assistant.Responder
	CatalogPath    string
	RevealInterval time.Duration
}

// Model is the Bubble Tea model for the suite.
type Model struct {
	store     *store.Store
	responder *assistant.Responder
	conv      *assistant.Conversation
	keys      KeyMap
	width     int
	height    int
	tab       int

	// Goals view
	goalCursor int

	// Timetable view
	ref  time.Time
	view schedule.View

	// Resources view
	catalogPath string
	resources   []*catalog.Resource
	selection   *catalog.Selection
	category    catalog.Category
	resCursor   int

	// Chat view
	input          textinput.Model
	spin           spinner.Model
	waiting        bool
	revealing      bool
	pending        []rune
	revealed       int
	revealInterval time.Duration

	showHelp  bool
	statusMsg string
}

// NewModel creates the TUI model. The store may already be seeded.
func NewModel(o Options) Model {
	ti := textinput.New()
	ti.Placeholder = "Ask about OS, DSA, study plans..."
	ti.CharLimit = 200

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	interval := o.RevealInterval
	if interval <= 0 {
		interval = assistant.DefaultRevealInterval
	}

	return Model{
		store:          o.Store,
		responder:      o.Responder,
		conv:           assistant.NewConversation(o.Responder.Greeting()),
		keys:           DefaultKeyMap(),
		ref:            schedule.Today(),
		view:           schedule.ViewWeek,
		catalogPath:    o.CatalogPath,
		selection:      catalog.NewSelection(),
		input:          ti,
		spin:           sp,
		revealInterval: interval,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return loadCatalogCmd(m.catalogPath)
}

func loadCatalogCmd(path string) tea.Cmd {
	return func() tea.Msg {
		resources, err := catalog.LoadFile(path)
		return catalogLoadedMsg{resources: resources, err: err}
	}
}

func askCmd(r *assistant.Responder, message string) tea.Cmd {
	return func() tea.Msg {
		text, err := r.Respond(context.Background(), message)
		return replyMsg{text: text, err: err}
	}
}

func (m Model) revealTick() tea.Cmd {
	return tea.Tick(m.revealInterval, func(time.Time) tea.Msg {
		return revealTickMsg{}
	})
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case CatalogChangedMsg:
		return m, loadCatalogCmd(m.catalogPath)

	case catalogLoadedMsg:
		if msg.err != nil {
			m.statusMsg = "Catalog reload failed: " + msg.err.Error()
			return m, nil
		}
		m.resources = msg.resources
		if m.resCursor >= len(m.resources) {
			m.resCursor = 0
		}
		return m, nil

	case replyMsg:
		m.waiting = false
		if msg.err != nil {
			m.statusMsg = "Assistant error: " + msg.err.Error()
			return m, nil
		}
		m.pending = []rune(msg.text)
		m.revealed = 0
		m.revealing = true
		return m, m.revealTick()

	case revealTickMsg:
		if !m.revealing {
			return m, nil
		}
		m.revealed++
		if m.revealed >= len(m.pending) {
			m.conv.AddAssistant(string(m.pending))
			m.revealing = false
			m.pending = nil
			return m, nil
		}
		return m, m.revealTick()

	case spinner.TickMsg:
		if !m.waiting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	if m.tab == tabChat {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Tab switching and quit work everywhere, even mid-chat.
	switch {
	case key.Matches(msg, m.keys.Quit) && m.tab != tabChat:
		return m, tea.Quit
	case msg.Type == tea.KeyCtrlC:
		return m, tea.Quit
	case key.Matches(msg, m.keys.NextTab):
		m.tab = (m.tab + 1) % tabCount
		return m.enterTab()
	case key.Matches(msg, m.keys.PrevTab):
		m.tab = (m.tab + tabCount - 1) % tabCount
		return m.enterTab()
	}

	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	switch m.tab {
	case tabGoals:
		return m.handleGoalsKey(msg)
	case tabTimetable:
		return m.handleTimetableKey(msg)
	case tabResources:
		return m.handleResourcesKey(msg)
	case tabChat:
		return m.handleChatKey(msg)
	}

	if key.Matches(msg, m.keys.Help) {
		m.showHelp = true
	}
	return m, nil
}

func (m Model) enterTab() (tea.Model, tea.Cmd) {
	m.statusMsg = ""
	if m.tab == tabChat {
		m.input.Focus()
		return m, textinput.Blink
	}
	m.input.Blur()
	return m, nil
}

func (m Model) handleGoalsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	goals := m.store.Goals()
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.goalCursor > 0 {
			m.goalCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.goalCursor < len(goals)-1 {
			m.goalCursor++
		}
	case key.Matches(msg, m.keys.Space):
		if g := m.goalAt(goals); g != nil {
			done := !g.Completed
			if _, err := m.store.UpdateGoal(g.ID, store.GoalPatch{Completed: &done}); err != nil {
				m.statusMsg = err.Error()
			}
		}
	case key.Matches(msg, m.keys.More):
		m.adjustProgress(goals, 10)
	case key.Matches(msg, m.keys.Less):
		m.adjustProgress(goals, -10)
	case key.Matches(msg, m.keys.Delete):
		if g := m.goalAt(goals); g != nil {
			m.store.RemoveGoal(g.ID)
			if m.goalCursor > 0 {
				m.goalCursor--
			}
		}
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
	}
	return m, nil
}

func (m *Model) goalAt(goals []*goal.Goal) *goal.Goal {
	if m.goalCursor < 0 || m.goalCursor >= len(goals) {
		return nil
	}
	return goals[m.goalCursor]
}

func (m *Model) adjustProgress(goals []*goal.Goal, delta int) {
	g := m.goalAt(goals)
	if g == nil {
		return
	}
	p := goal.ClampProgress(g.Progress + delta)
	if _, err := m.store.UpdateGoal(g.ID, store.GoalPatch{Progress: &p}); err != nil {
		m.statusMsg = err.Error()
	}
}

func (m Model) handleTimetableKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Left):
		m.ref = schedule.Step(m.ref, m.view, -1)
	case key.Matches(msg, m.keys.Right):
		m.ref = schedule.Step(m.ref, m.view, 1)
	case key.Matches(msg, m.keys.View):
		if m.view == schedule.ViewWeek {
			m.view = schedule.ViewDay
		} else {
			m.view = schedule.ViewWeek
		}
	case key.Matches(msg, m.keys.Today):
		m.ref = schedule.Today()
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
	}
	return m, nil
}

func (m Model) handleResourcesKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	visible := m.visibleResources()
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.resCursor > 0 {
			m.resCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.resCursor < len(visible)-1 {
			m.resCursor++
		}
	case key.Matches(msg, m.keys.Space):
		if m.resCursor >= 0 && m.resCursor < len(visible) {
			m.selection.Toggle(visible[m.resCursor].ID)
		}
	case key.Matches(msg, m.keys.Category):
		m.category = nextCategory(m.category)
		m.resCursor = 0
	case key.Matches(msg, m.keys.Reload):
		return m, loadCatalogCmd(m.catalogPath)
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
	}
	return m, nil
}

func nextCategory(current catalog.Category) catalog.Category {
	all := catalog.AllCategories()
	if current == "" {
		return all[0]
	}
	for i, c := range all {
		if c == current {
			if i == len(all)-1 {
				return ""
			}
			return all[i+1]
		}
	}
	return ""
}

func (m Model) handleChatKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.tab = tabDashboard
		m.input.Blur()
		return m, nil
	case tea.KeyEnter:
		text := m.input.Value()
		if text == "" || m.waiting || m.revealing {
			return m, nil
		}
		m.conv.AddUser(text)
		m.input.Reset()
		m.waiting = true
		return m, tea.Batch(m.spin.Tick, askCmd(m.responder, text))
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}
