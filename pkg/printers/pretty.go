// Package printers renders domain records for the terminal.
package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/goalsync/pkg/catalog"
	"tableflip.dev/goalsync/pkg/dashboard"
	"tableflip.dev/goalsync/pkg/goal"
	"tableflip.dev/goalsync/pkg/schedule"
	"tableflip.dev/goalsync/pkg/wellness"
)

const layoutISO = "2006-01-02"

type PrettyPrint struct {
	ShowID bool
}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) none() {
	f := color.New(color.Faint, color.Italic)
	_, _ = f.Print(" none\n\n")
}

func priorityColor(p goal.Priority) *color.Color {
	switch p {
	case goal.PriorityHigh:
		return color.New(color.FgHiRed)
	case goal.PriorityMedium:
		return color.New(color.FgHiYellow)
	default:
		return color.New(color.FgHiGreen)
	}
}

// Goals renders a goal table with deadline context relative to now.
func (pp *PrettyPrint) Goals(goals []*goal.Goal, now time.Time) {
	if len(goals) == 0 {
		pp.none()
		return
	}
	table := uitable.New()
	table.MaxColWidth = 50
	if pp.ShowID {
		table.AddRow("ID", "", "TITLE", "TYPE", "PRIORITY", "DEADLINE", "PROGRESS", "CATEGORY")
	} else {
		table.AddRow("", "TITLE", "TYPE", "PRIORITY", "DEADLINE", "PROGRESS", "CATEGORY")
	}
	for _, g := range goals {
		mark := "○"
		if g.Completed {
			mark = "✓"
		}
		deadline := fmt.Sprintf("%s (%s)", g.Deadline.Format(layoutISO), g.DueIn(now))
		progress := fmt.Sprintf("%3d%% %s", g.Progress, progressBar(g.Progress))
		priority := priorityColor(g.Priority).Sprint(g.Priority)
		if pp.ShowID {
			table.AddRow(g.ID, mark, g.Title, g.Type, priority, deadline, progress, g.Category)
		} else {
			table.AddRow(mark, g.Title, g.Type, priority, deadline, progress, g.Category)
		}
	}
	fmt.Println(table)
	fmt.Println("")
}

func progressBar(progress int) string {
	filled := progress / 10
	return strings.Repeat("█", filled) + strings.Repeat("░", 10-filled)
}

// Week renders the seven-day hour grid for the week containing ref.
func (pp *PrettyPrint) Week(tasks []*schedule.Task, ref time.Time) {
	week := schedule.WeekOf(ref)

	fmt.Printf("%6s", "")
	for _, d := range week {
		label := d.Format("Mon 02")
		if sameDate(d, time.Now()) {
			label = color.New(color.Bold, color.FgHiCyan).Sprint(label)
		}
		fmt.Printf(" %-12s", label)
	}
	fmt.Println("")

	for _, hour := range schedule.Hours() {
		fmt.Printf("%02d:00 ", hour)
		for _, d := range week {
			cell := ""
			if slot := schedule.TasksAt(tasks, d, hour); len(slot) > 0 {
				cell = truncate(slot[0].Title, 12)
				if len(slot) > 1 {
					cell = truncate(slot[0].Title, 10) + " +" + fmt.Sprint(len(slot)-1)
				}
			}
			fmt.Printf(" %-12s", cell)
		}
		fmt.Println("")
	}
	fmt.Println("")
}

// Day renders a single day's tasks as a list.
func (pp *PrettyPrint) Day(tasks []*schedule.Task, date time.Time) {
	day := schedule.TasksOn(tasks, date)
	if len(day) == 0 {
		pp.none()
		return
	}
	table := uitable.New()
	table.MaxColWidth = 50
	if pp.ShowID {
		table.AddRow("ID", "TIME", "TITLE", "TYPE", "SUBJECT", "PRIORITY")
	} else {
		table.AddRow("TIME", "TITLE", "TYPE", "SUBJECT", "PRIORITY")
	}
	for _, t := range day {
		slot := fmt.Sprintf("%s-%s", t.Start, t.End)
		priority := priorityColor(t.Priority).Sprint(t.Priority)
		if pp.ShowID {
			table.AddRow(t.ID, slot, t.Title, t.Type, t.Subject, priority)
		} else {
			table.AddRow(slot, t.Title, t.Type, t.Subject, priority)
		}
	}
	fmt.Println(table)
	fmt.Println("")
}

// Checkin renders one wellness entry with its derived score.
func (pp *PrettyPrint) Checkin(e *wellness.Entry) {
	score := color.New(color.Bold, color.FgHiGreen)
	fmt.Printf("%s  mood %d/10  energy %d/10  stress %d/10  sleep %d/10  ",
		e.Date.Format(layoutISO), e.Mood, e.Energy, e.Stress, e.Sleep)
	_, _ = score.Printf("score %d\n", e.Score())
	if e.Notes != "" {
		faint := color.New(color.Faint)
		_, _ = faint.Printf("  %s\n", e.Notes)
	}
}

// WellnessSummary renders history averages and the current insight.
func (pp *PrettyPrint) WellnessSummary(history []*wellness.Entry) {
	if len(history) == 0 {
		pp.none()
		return
	}
	table := uitable.New()
	table.AddRow("METRIC", "WEEKLY AVG")
	for _, m := range []wellness.Metric{
		wellness.MetricMood, wellness.MetricEnergy, wellness.MetricStress, wellness.MetricSleep,
	} {
		avg, err := wellness.Average(history, m)
		if err != nil {
			continue
		}
		table.AddRow(string(m), fmt.Sprintf("%.1f", avg))
	}
	fmt.Println(table)

	insight := wellness.Classify(history)
	label := color.New(color.Bold)
	_, _ = label.Printf("\n%s: ", strings.ToUpper(string(insight.Kind)))
	fmt.Println(insight.Advice)
	fmt.Println("")
}

// Resources renders catalog records, marking the current selection.
func (pp *PrettyPrint) Resources(resources []*catalog.Resource, sel *catalog.Selection) {
	if len(resources) == 0 {
		pp.none()
		return
	}
	table := uitable.New()
	table.MaxColWidth = 45
	table.AddRow("", "ID", "TITLE", "CATEGORY", "DIFFICULTY", "RATING", "STUDY TIME")
	for _, r := range resources {
		mark := ""
		if sel != nil && sel.Has(r.ID) {
			mark = color.New(color.FgHiBlue).Sprint("✓")
		}
		table.AddRow(mark, r.ID, r.Title, r.Category, r.Difficulty,
			fmt.Sprintf("%.1f", r.Rating), fmt.Sprintf("~%d min", r.EstimatedTime))
	}
	fmt.Println(table)
	if sel != nil && sel.Len() > 0 {
		faint := color.New(color.Faint)
		_, _ = faint.Printf("\n%d selected, ~%d min total\n", sel.Len(), sel.StudyTime(resources))
	}
	fmt.Println("")
}

// Summary renders the dashboard payload.
func (pp *PrettyPrint) Summary(s dashboard.Summary) {
	o := s.Overview
	table := uitable.New()
	table.AddRow("Goals completed", fmt.Sprintf("%d/%d", o.GoalsCompleted, o.GoalsTotal))
	table.AddRow("Average progress", fmt.Sprintf("%d%%", o.AverageProgress))
	table.AddRow("Study hours this week", fmt.Sprintf("%.1f h", o.StudyHoursWeek))
	table.AddRow("Wellness score", fmt.Sprint(o.WellnessScore))
	table.AddRow("Upcoming deadlines", fmt.Sprint(o.UpcomingDeadlines))
	fmt.Println(table)
	fmt.Println("")

	if len(s.Risks) > 0 {
		pp.Title("Risks")
		for _, r := range s.Risks {
			c := color.New(color.FgHiYellow)
			if r.Level == dashboard.LevelHigh {
				c = color.New(color.FgHiRed)
			}
			_, _ = c.Printf("  ▲ %s\n", r.Message)
		}
		fmt.Println("")
	}

	if len(s.Recommendations) > 0 {
		pp.Title("Recommendations")
		for _, r := range s.Recommendations {
			fmt.Printf("  • %s\n", r.Message)
		}
		fmt.Println("")
	}
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
