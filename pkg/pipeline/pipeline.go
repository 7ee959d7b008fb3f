// Package pipeline is the shared client-side filter and sort stage used by
// the goals, timetable, and resource views. Apply is pure and stable so
// re-filtering never reorders records the user can see.
package pipeline

import (
	"sort"
	"strings"
	"time"
)

// Predicate reports whether a record survives a filter. Active predicates are
// ANDed together.
type Predicate[T any] func(T) bool

// Less orders two records. A nil Less leaves the filtered records in input
// order.
type Less[T any] func(a, b T) bool

// Apply filters records through every predicate and then stable-sorts the
// survivors. The input slice is never mutated.
func Apply[T any](records []T, filters []Predicate[T], less Less[T]) []T {
	out := make([]T, 0, len(records))
next:
	for _, r := range records {
		for _, keep := range filters {
			if keep == nil {
				continue
			}
			if !keep(r) {
				continue next
			}
		}
		out = append(out, r)
	}
	if less != nil {
		sort.SliceStable(out, func(i, j int) bool {
			return less(out[i], out[j])
		})
	}
	return out
}

// Search builds a case-insensitive substring predicate OR-combined across the
// given text fields. An empty query matches everything.
func Search[T any](query string, fields ...func(T) string) Predicate[T] {
	q := strings.ToLower(strings.TrimSpace(query))
	return func(r T) bool {
		if q == "" {
			return true
		}
		for _, field := range fields {
			if strings.Contains(strings.ToLower(field(r)), q) {
				return true
			}
		}
		return false
	}
}

// Equals builds an exact-match predicate over a single string field. An empty
// want matches everything, which lets callers wire "all" filters directly.
func Equals[T any](want string, field func(T) string) Predicate[T] {
	if want == "" || want == "all" {
		return func(T) bool { return true }
	}
	return func(r T) bool {
		return field(r) == want
	}
}

// DateBetween builds a predicate keeping records whose date falls within
// [from, to]. Zero bounds are open.
func DateBetween[T any](from, to time.Time, field func(T) time.Time) Predicate[T] {
	return func(r T) bool {
		d := field(r)
		if !from.IsZero() && d.Before(from) {
			return false
		}
		if !to.IsZero() && d.After(to) {
			return false
		}
		return true
	}
}
