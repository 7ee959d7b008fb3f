// Package wellness holds daily check-in entries and their derived insights.
package wellness

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Entry is one daily check-in. Mood, energy, stress, and sleep live on a 1-10
// scale; the remaining metrics are free counts. History is keyed by Date.
type Entry struct {
	Date            time.Time `json:"date"`
	Mood            int       `json:"mood"`
	Energy          int       `json:"energy"`
	Stress          int       `json:"stress"`
	Sleep           int       `json:"sleep"`
	WaterIntake     int       `json:"waterIntake"`
	ExerciseMinutes int       `json:"exerciseMinutes"`
	ScreenTime      float64   `json:"screenTime"`
	Notes           string    `json:"notes,omitempty"`
}

// Clamp forces every slider metric into its legal range. Out-of-range input is
// corrected, not rejected.
func (e *Entry) Clamp() {
	e.Mood = clampScale(e.Mood)
	e.Energy = clampScale(e.Energy)
	e.Stress = clampScale(e.Stress)
	e.Sleep = clampScale(e.Sleep)
	if e.WaterIntake < 0 {
		e.WaterIntake = 0
	}
	if e.ExerciseMinutes < 0 {
		e.ExerciseMinutes = 0
	}
	if e.ScreenTime < 0 {
		e.ScreenTime = 0
	}
}

func clampScale(v int) int {
	if v < 1 {
		return 1
	}
	if v > 10 {
		return 10
	}
	return v
}

// Score is the composite wellness score, recomputed on read and never stored:
// round((mood + energy + (10 - stress) + sleep) / 4).
func (e *Entry) Score() int {
	return int(math.Round(float64(e.Mood+e.Energy+(10-e.Stress)+e.Sleep) / 4))
}

// SameDate reports whether the entry belongs to the given calendar date.
func (e *Entry) SameDate(d time.Time) bool {
	return e.Date.Year() == d.Year() &&
		e.Date.Month() == d.Month() &&
		e.Date.Day() == d.Day()
}

// Metric names one of the numeric check-in fields for aggregation.
type Metric string

const (
	MetricMood     Metric = "mood"
	MetricEnergy   Metric = "energy"
	MetricStress   Metric = "stress"
	MetricSleep    Metric = "sleep"
	MetricWater    Metric = "water"
	MetricExercise Metric = "exercise"
	MetricScreen   Metric = "screen"
)

// AllMetrics returns the aggregatable metrics.
func AllMetrics() []Metric {
	return []Metric{
		MetricMood,
		MetricEnergy,
		MetricStress,
		MetricSleep,
		MetricWater,
		MetricExercise,
		MetricScreen,
	}
}

// ParseMetric converts a string to a Metric.
func ParseMetric(raw string) (Metric, error) {
	m := Metric(strings.ToLower(strings.TrimSpace(raw)))
	for _, candidate := range AllMetrics() {
		if candidate == m {
			return candidate, nil
		}
	}
	return MetricMood, fmt.Errorf("wellness: unknown metric %q", raw)
}

func (e *Entry) value(m Metric) float64 {
	switch m {
	case MetricMood:
		return float64(e.Mood)
	case MetricEnergy:
		return float64(e.Energy)
	case MetricStress:
		return float64(e.Stress)
	case MetricSleep:
		return float64(e.Sleep)
	case MetricWater:
		return float64(e.WaterIntake)
	case MetricExercise:
		return float64(e.ExerciseMinutes)
	case MetricScreen:
		return e.ScreenTime
	default:
		return 0
	}
}
