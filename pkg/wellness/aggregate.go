package wellness

import "errors"

// ErrEmptyHistory is returned when an aggregate is requested over zero
// entries. Callers get a defined condition instead of a NaN artifact.
var ErrEmptyHistory = errors.New("wellness: no check-in history")

// Average is the arithmetic mean of a metric over every entry currently held.
// The check-in view labels this "weekly", but the window is the whole retained
// history, matching observed behavior.
func Average(history []*Entry, metric Metric) (float64, error) {
	if len(history) == 0 {
		return 0, ErrEmptyHistory
	}
	sum := 0.0
	for _, e := range history {
		sum += e.value(metric)
	}
	return sum / float64(len(history)), nil
}

// InsightKind classifies recent wellness into one of five fixed states.
type InsightKind string

const (
	InsightExcellent  InsightKind = "excellent"
	InsightConcerning InsightKind = "concerning"
	InsightSupport    InsightKind = "support"
	InsightSleep      InsightKind = "sleep"
	InsightBalanced   InsightKind = "balanced"
)

// Insight pairs the classification with the advice text shown to the student.
type Insight struct {
	Kind   InsightKind
	Advice string
}

// classifyWindow is how many trailing entries feed the rolling averages.
const classifyWindow = 3

// Classify reduces the most recent entries to an insight using a fixed
// decision list. Rules are evaluated in order and the first match wins; they
// are never combined or reordered.
func Classify(history []*Entry) Insight {
	recent := history
	if len(recent) > classifyWindow {
		recent = recent[len(recent)-classifyWindow:]
	}
	if len(recent) == 0 {
		return Insight{
			Kind:   InsightBalanced,
			Advice: "No check-ins yet. Record your first daily check-in to start seeing insights.",
		}
	}

	var mood, stress, sleep float64
	for _, e := range recent {
		mood += float64(e.Mood)
		stress += float64(e.Stress)
		sleep += float64(e.Sleep)
	}
	n := float64(len(recent))
	mood /= n
	stress /= n
	sleep /= n

	switch {
	case mood >= 8 && stress <= 3:
		return Insight{
			Kind:   InsightExcellent,
			Advice: "You're thriving! Your mood is excellent and stress is low. Keep up the amazing work!",
		}
	case stress >= 7:
		return Insight{
			Kind:   InsightConcerning,
			Advice: "High stress detected over recent days. Consider taking breaks, practicing mindfulness, or talking to someone.",
		}
	case mood <= 4:
		return Insight{
			Kind:   InsightSupport,
			Advice: "Your mood has been low lately. Remember it's okay to have tough days. Reach out for support if needed.",
		}
	case sleep <= 6:
		return Insight{
			Kind:   InsightSleep,
			Advice: "Your sleep quality could use improvement. Try establishing a bedtime routine and limiting screen time before bed.",
		}
	default:
		return Insight{
			Kind:   InsightBalanced,
			Advice: "You're maintaining good balance! Stay consistent with your wellness routine and keep monitoring your progress.",
		}
	}
}
