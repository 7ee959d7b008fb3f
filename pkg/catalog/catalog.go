// Package catalog loads the static learning-resource catalog. The catalog is
// read once and treated as read-only; which resources a student has picked is
// tracked separately in a Selection owned by the view.
package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Defaults applied to optional catalog fields.
const (
	DefaultDifficulty    = DifficultyIntermediate
	DefaultRating        = 4.5
	DefaultStudyTimeMins = 120
)

// Category is the closed set of catalog categories.
type Category string

const (
	CategoryProgramming Category = "programming"
	CategoryAptitude    Category = "aptitude"
	CategoryVerbal      Category = "verbal"
	CategoryDSA         Category = "dsa"
	CategoryTechnical   Category = "technical"
	CategoryInterview   Category = "interview"
)

// AllCategories returns the supported resource categories.
func AllCategories() []Category {
	return []Category{
		CategoryProgramming,
		CategoryAptitude,
		CategoryVerbal,
		CategoryDSA,
		CategoryTechnical,
		CategoryInterview,
	}
}

// ParseCategory converts a string to a Category. "all" and the empty string
// map to the empty Category, which filters nothing.
func ParseCategory(raw string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(raw)))
	if c == "" || c == "all" {
		return "", nil
	}
	for _, candidate := range AllCategories() {
		if candidate == c {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("catalog: unknown category %q", raw)
}

// Difficulty grades a resource.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// Resource is one read-only catalog record.
type Resource struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Category      Category   `json:"category"`
	Subject       string     `json:"subject,omitempty"`
	Duration      string     `json:"duration,omitempty"`
	Difficulty    Difficulty `json:"difficulty,omitempty"`
	Rating        float64    `json:"rating,omitempty"`
	Description   string     `json:"description,omitempty"`
	Thumbnail     string     `json:"thumbnail,omitempty"`
	Author        string     `json:"channel,omitempty"`
	Tags          []string   `json:"tags,omitempty"`
	EstimatedTime int        `json:"estimatedStudyTime,omitempty"` // minutes
	URL           string     `json:"url,omitempty"`
}

//go:embed playlist.json
var sampleCatalog []byte

// Load parses an ordered JSON array of resources, applying the documented
// defaults to missing optional fields and synthesizing ids for records that
// lack one.
func Load(data []byte) ([]*Resource, error) {
	var resources []*Resource
	if err := json.Unmarshal(data, &resources); err != nil {
		return nil, fmt.Errorf("catalog: parse: %w", err)
	}
	for i, r := range resources {
		if r.ID == "" {
			r.ID = fmt.Sprintf("yt-%d", i)
		}
		if r.Difficulty == "" {
			r.Difficulty = DefaultDifficulty
		}
		if r.Rating == 0 {
			r.Rating = DefaultRating
		}
		if r.EstimatedTime == 0 {
			r.EstimatedTime = DefaultStudyTimeMins
		}
	}
	return resources, nil
}

// LoadFile reads a catalog from disk. An empty path falls back to the
// embedded sample catalog.
func LoadFile(path string) ([]*Resource, error) {
	if path == "" {
		return Load(sampleCatalog)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}
	return Load(data)
}

// Selection tracks which resource ids the student has picked. It belongs to
// the view, not the catalog.
type Selection struct {
	ids map[string]struct{}
}

// NewSelection creates an empty selection.
func NewSelection() *Selection {
	return &Selection{ids: make(map[string]struct{})}
}

// Toggle flips membership for the given id and reports whether it is now
// selected.
func (s *Selection) Toggle(id string) bool {
	if _, ok := s.ids[id]; ok {
		delete(s.ids, id)
		return false
	}
	s.ids[id] = struct{}{}
	return true
}

// Has reports whether the id is selected.
func (s *Selection) Has(id string) bool {
	_, ok := s.ids[id]
	return ok
}

// Len is the number of selected resources.
func (s *Selection) Len() int {
	return len(s.ids)
}

// StudyTime sums the estimated study minutes of the selected resources from
// the given catalog.
func (s *Selection) StudyTime(resources []*Resource) int {
	total := 0
	for _, r := range resources {
		if s.Has(r.ID) {
			total += r.EstimatedTime
		}
	}
	return total
}
