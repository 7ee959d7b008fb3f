package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"tableflip.dev/goalsync/pkg/assistant"
	"tableflip.dev/goalsync/pkg/catalog"
	"tableflip.dev/goalsync/pkg/dashboard"
	"tableflip.dev/goalsync/pkg/pipeline"
	"tableflip.dev/goalsync/pkg/schedule"
	"tableflip.dev/goalsync/pkg/wellness"
)

var tabTitles = [tabCount]string{
	"Dashboard", "Goals", "Timetable", "Wellness", "Resources", "Chat",
}

// View implements tea.Model.
func (m Model) View() string {
	if m.showHelp {
		return m.renderHelp()
	}

	var b strings.Builder
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	switch m.tab {
	case tabDashboard:
		b.WriteString(m.renderDashboard())
	case tabGoals:
		b.WriteString(m.renderGoals())
	case tabTimetable:
		b.WriteString(m.renderTimetable())
	case tabWellness:
		b.WriteString(m.renderWellness())
	case tabResources:
		b.WriteString(m.renderResources())
	case tabChat:
		b.WriteString(m.renderChat())
	}

	b.WriteString("\n")
	if m.statusMsg != "" {
		b.WriteString(StatusStyle.Render(m.statusMsg))
		b.WriteString("\n")
	}
	b.WriteString(FooterStyle.Render(m.keys.ShortHelp()))
	return b.String()
}

func (m Model) renderTabs() string {
	parts := make([]string, 0, tabCount)
	for i, title := range tabTitles {
		if i == m.tab {
			parts = append(parts, ActiveTabStyle.Render(title))
		} else {
			parts = append(parts, InactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m Model) renderHelp() string {
	var b strings.Builder
	b.WriteString(HeaderStyle.Render("Key bindings"))
	b.WriteString("\n\n")
	for _, row := range m.keys.FullHelp() {
		b.WriteString(fmt.Sprintf("  %-12s %s\n", row[0], row[1]))
	}
	b.WriteString("\n")
	b.WriteString(DimStyle.Render("press any key to close"))
	return ModalStyle.Render(b.String())
}

func (m Model) renderDashboard() string {
	s := dashboard.Build(m.store.Goals(), m.store.Tasks(), m.store.Entries(), time.Now())
	o := s.Overview

	var b strings.Builder
	b.WriteString(HeaderStyle.Render("Today"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("  Goals completed     %d/%d\n", o.GoalsCompleted, o.GoalsTotal))
	b.WriteString(fmt.Sprintf("  Average progress    %d%%\n", o.AverageProgress))
	b.WriteString(fmt.Sprintf("  Study hours (week)  %.1f h\n", o.StudyHoursWeek))
	b.WriteString(fmt.Sprintf("  Wellness score      %d\n", o.WellnessScore))
	b.WriteString(fmt.Sprintf("  Upcoming deadlines  %d\n", o.UpcomingDeadlines))

	if len(s.Risks) > 0 {
		b.WriteString("\n")
		b.WriteString(HeaderStyle.Render("Risks"))
		b.WriteString("\n")
		for _, r := range s.Risks {
			style := PriorityMediumStyle
			if r.Level == dashboard.LevelHigh {
				style = PriorityHighStyle
			}
			b.WriteString("  " + style.Render(IconRisk+" "+r.Message) + "\n")
		}
	}

	if len(s.Recommendations) > 0 {
		b.WriteString("\n")
		b.WriteString(HeaderStyle.Render("Recommendations"))
		b.WriteString("\n")
		for _, r := range s.Recommendations {
			b.WriteString("  • " + r.Message + "\n")
		}
	}
	return b.String()
}

func (m Model) renderGoals() string {
	goals := m.store.Goals()
	if len(goals) == 0 {
		return DimStyle.Render("  no goals yet")
	}

	now := time.Now()
	var b strings.Builder
	for i, g := range goals {
		icon := IconOpen
		if g.Completed {
			icon = IconDone
		}
		line := fmt.Sprintf("%s %-40s %3d%%  %-8s %s",
			icon, truncate(g.Title, 40), g.Progress, g.Priority, g.DueIn(now))

		switch {
		case i == m.goalCursor:
			line = SelectedStyle.Render(line)
		case g.Completed:
			line = DoneStyle.Render(line)
		case strings.Contains(g.DueIn(now), "overdue"):
			line = OverdueStyle.Render(line)
		default:
			line = NormalStyle.Render(line)
		}
		b.WriteString("  " + line + "\n")
	}
	return b.String()
}

func (m Model) renderTimetable() string {
	tasks := m.store.Tasks()
	var b strings.Builder

	if m.view == schedule.ViewDay {
		b.WriteString(HeaderStyle.Render(m.ref.Format("Monday, January 2")))
		b.WriteString("\n\n")
		day := schedule.TasksOn(tasks, m.ref)
		if len(day) == 0 {
			b.WriteString(DimStyle.Render("  nothing scheduled"))
			b.WriteString("\n")
			return b.String()
		}
		for _, t := range day {
			b.WriteString(fmt.Sprintf("  %s  %-30s %s\n",
				GridHourStyle.Render(t.Start.String()+"-"+t.End.String()),
				truncate(t.Title, 30), DimStyle.Render(string(t.Type))))
		}
		return b.String()
	}

	week := schedule.WeekOf(m.ref)
	b.WriteString(HeaderStyle.Render("Week of " + week[0].Format("January 2")))
	b.WriteString("\n\n")

	b.WriteString("      ")
	for _, d := range week {
		label := d.Format("Mon 02")
		if sameDate(d, time.Now()) {
			label = GridTodayStyle.Render(label)
		} else {
			label = GridHourStyle.Render(label)
		}
		b.WriteString(fmt.Sprintf(" %-12s", label))
	}
	b.WriteString("\n")

	for _, hour := range schedule.Hours() {
		b.WriteString(GridHourStyle.Render(fmt.Sprintf("%02d:00", hour)))
		b.WriteString(" ")
		for _, d := range week {
			cell := ""
			if slot := schedule.TasksAt(tasks, d, hour); len(slot) > 0 {
				cell = truncate(slot[0].Title, 12)
			}
			b.WriteString(fmt.Sprintf(" %-12s", GridTaskStyle.Render(cell)))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderWellness() string {
	history := m.store.Entries()
	if len(history) == 0 {
		return DimStyle.Render("  no check-ins yet")
	}

	var b strings.Builder
	b.WriteString(HeaderStyle.Render("Averages"))
	b.WriteString("\n\n")
	for _, metric := range []wellness.Metric{
		wellness.MetricMood, wellness.MetricEnergy, wellness.MetricStress, wellness.MetricSleep,
	} {
		avg, err := wellness.Average(history, metric)
		if err != nil {
			continue
		}
		b.WriteString(fmt.Sprintf("  %-8s %.1f\n", metric, avg))
	}

	insight := wellness.Classify(history)
	b.WriteString("\n")
	b.WriteString(HeaderStyle.Render("Insight"))
	b.WriteString("\n\n  ")
	b.WriteString(insight.Advice)
	b.WriteString("\n\n")

	b.WriteString(HeaderStyle.Render("History"))
	b.WriteString("\n\n")
	for _, e := range history {
		b.WriteString(fmt.Sprintf("  %s  mood %2d  energy %2d  stress %2d  sleep %2d  score %d\n",
			e.Date.Format("2006-01-02"), e.Mood, e.Energy, e.Stress, e.Sleep, e.Score()))
	}
	return b.String()
}

func (m Model) visibleResources() []*catalog.Resource {
	filters := []pipeline.Predicate[*catalog.Resource]{
		pipeline.Equals(string(m.category), func(r *catalog.Resource) string { return string(r.Category) }),
	}
	return pipeline.Apply(m.resources, filters, nil)
}

func (m Model) renderResources() string {
	visible := m.visibleResources()

	label := "all"
	if m.category != "" {
		label = string(m.category)
	}

	var b strings.Builder
	b.WriteString(HeaderStyle.Render("Resources"))
	b.WriteString(DimStyle.Render("  category: " + label))
	b.WriteString("\n\n")

	if len(visible) == 0 {
		b.WriteString(DimStyle.Render("  nothing in this category"))
		b.WriteString("\n")
		return b.String()
	}

	for i, r := range visible {
		icon := IconOpen
		if m.selection.Has(r.ID) {
			icon = IconPicked
		}
		line := fmt.Sprintf("%s %-45s %-12s %-12s %.1f★ ~%dm",
			icon, truncate(r.Title, 45), r.Category, r.Difficulty, r.Rating, r.EstimatedTime)
		if i == m.resCursor {
			line = SelectedStyle.Render(line)
		}
		b.WriteString("  " + line + "\n")
	}

	if m.selection.Len() > 0 {
		b.WriteString("\n")
		b.WriteString(DimStyle.Render(fmt.Sprintf("  %d picked, ~%d min of study time",
			m.selection.Len(), m.selection.StudyTime(m.resources))))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderChat() string {
	var b strings.Builder
	for _, msg := range m.conv.Messages {
		if msg.Role == assistant.RoleUser {
			b.WriteString(ChatUserStyle.Render("you: "))
		} else {
			b.WriteString(ChatAssistantStyle.Render("assistant: "))
		}
		b.WriteString(ChatBodyStyle.Render(msg.Content))
		b.WriteString("\n\n")
	}

	if m.waiting {
		b.WriteString(ChatAssistantStyle.Render("assistant: "))
		b.WriteString(m.spin.View())
		b.WriteString("\n\n")
	}
	if m.revealing {
		b.WriteString(ChatAssistantStyle.Render("assistant: "))
		b.WriteString(ChatBodyStyle.Render(string(m.pending[:m.revealed])))
		b.WriteString("\n\n")
	}

	b.WriteString(m.input.View())
	b.WriteString("\n")
	return b.String()
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	if max <= 1 {
		return string(runes[:max])
	}
	return string(runes[:max-1]) + "…"
}

func sameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
