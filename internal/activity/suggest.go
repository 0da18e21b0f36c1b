// Package activity picks ten-minute activities for a task title or an energy level.
package activity

import (
	"math/rand/v2"
	"slices"
	"strings"
	"sync"
)

const DefaultCategory = "default"

type Band string

const (
	BandLow    Band = "low"
	BandMedium Band = "medium"
	BandHigh   Band = "high"
)

// Suggester draws templates uniformly at random. The zero value is not
// usable; use NewSuggester.
type Suggester struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSuggester returns a suggester drawing from src. A nil src uses a
// randomly seeded PCG source.
func NewSuggester(src rand.Source) *Suggester {
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return &Suggester{rng: rand.New(src)}
}

// Choose returns a uniform index in [0, n). n must be positive.
func (s *Suggester) Choose(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.IntN(n)
}

func (s *Suggester) pick(options []string) string {
	return options[s.Choose(len(options))]
}

// SuggestActivity returns a task-specific activity with title substituted
// into the template of the first matching category.
func (s *Suggester) SuggestActivity(title string) string {
	return fill(s.pick(templatesFor(title)), title)
}

func (s *Suggester) SuggestEnergyActivity(level int) string {
	return s.pick(energyTemplates(EnergyBand(level)))
}

var defaultSuggester = NewSuggester(nil)

func SuggestActivity(title string) string {
	return defaultSuggester.SuggestActivity(title)
}

func SuggestEnergyActivity(level int) string {
	return defaultSuggester.SuggestEnergyActivity(level)
}

// MatchCategory reports the name of the category title falls into, or
// DefaultCategory when no keyword matches.
func MatchCategory(title string) string {
	if c := matchCategory(title); c != nil {
		return c.Name
	}
	return DefaultCategory
}

// TaskActivities lists every activity SuggestActivity can return for title.
func TaskActivities(title string) []string {
	templates := templatesFor(title)
	result := make([]string, 0, len(templates))
	for _, t := range templates {
		result = append(result, fill(t, title))
	}
	return result
}

// EnergyActivities lists every activity SuggestEnergyActivity can return for level.
func EnergyActivities(level int) []string {
	return slices.Clone(energyTemplates(EnergyBand(level)))
}

// EnergyBand maps a 1-10 level to its band. Levels outside 1..10 are clamped;
// 0 means unset and falls into the medium band.
func EnergyBand(level int) Band {
	switch {
	case level == 0:
		return BandMedium
	case level <= 3:
		return BandLow
	case level >= 8:
		return BandHigh
	default:
		return BandMedium
	}
}

func matchCategory(title string) *category {
	lower := strings.ToLower(title)
	for i := range categories {
		for _, kw := range categories[i].Keywords {
			if strings.Contains(lower, kw) {
				return &categories[i]
			}
		}
	}
	return nil
}

func templatesFor(title string) []string {
	if c := matchCategory(title); c != nil {
		return c.Templates
	}
	return defaultTemplates
}

func energyTemplates(b Band) []string {
	switch b {
	case BandLow:
		return lowEnergyActivities
	case BandHigh:
		return highEnergyActivities
	default:
		return mediumEnergyActivities
	}
}

func fill(template, title string) string {
	return strings.ReplaceAll(template, Placeholder, title)
}
