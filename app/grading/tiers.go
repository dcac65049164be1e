// Package grading maps exam percentages to letter grades. Classes are
// assigned to an explicit tier through a lookup table rather than by
// substring-matching class names, and each tier carries its own
// threshold table.
package grading

import "strings"

// Tier groups classes that share a grade-threshold table.
type Tier string

const (
	// TierEarly covers play group and foundation classes.
	TierEarly Tier = "early"
	// TierPrimary covers grade 1 and above, and is the default for
	// classes missing from the lookup table.
	TierPrimary Tier = "primary"
)

// classTiers is the enumerated class-to-tier table. Keys are normalised
// with normalizeClass.
var classTiers = map[string]Tier{
	"play group":   TierEarly,
	"foundation":   TierEarly,
	"foundation 1": TierEarly,
	"foundation 2": TierEarly,
	"grade 1":      TierPrimary,
	"grade 2":      TierPrimary,
	"grade 3":      TierPrimary,
	"grade 4":      TierPrimary,
	"grade 5":      TierPrimary,
	"grade 6":      TierPrimary,
	"grade 7":      TierPrimary,
}

// band is one row of a threshold table: percentages at or above Min earn
// Grade.
type band struct {
	Min   float64
	Grade string
}

// Threshold tables are ordered highest first; the first band whose Min is
// not above the percentage wins.
var tierBands = map[Tier][]band{
	TierEarly: {
		{80, "A"},
		{65, "B"},
		{50, "C"},
		{40, "D"},
		{0, "E"},
	},
	TierPrimary: {
		{85, "A"},
		{70, "B"},
		{55, "C"},
		{40, "D"},
		{0, "E"},
	},
}

func normalizeClass(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// TierForClass resolves a class name to its tier. Unknown classes fall
// back to TierPrimary.
func TierForClass(name string) Tier {
	if t, ok := classTiers[normalizeClass(name)]; ok {
		return t
	}
	return TierPrimary
}

// GradeFor returns the letter grade for a percentage in the given tier.
// Percentages are clamped to [0, 100].
func GradeFor(tier Tier, percentage float64) string {
	if percentage < 0 {
		percentage = 0
	}
	if percentage > 100 {
		percentage = 100
	}
	bands, ok := tierBands[tier]
	if !ok {
		bands = tierBands[TierPrimary]
	}
	for _, b := range bands {
		if percentage >= b.Min {
			return b.Grade
		}
	}
	return bands[len(bands)-1].Grade
}

// GradeForClass resolves the class tier and grades the percentage in one
// step.
func GradeForClass(className string, percentage float64) string {
	return GradeFor(TierForClass(className), percentage)
}
