package grading

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTierForClass(t *testing.T) {
	tests := []struct {
		class string
		want  Tier
	}{
		{"Play Group", TierEarly},
		{"play group", TierEarly},
		{"  Foundation 2  ", TierEarly},
		{"Grade 1", TierPrimary},
		{"Grade 7", TierPrimary},
		{"Grade 99", TierPrimary}, // unknown defaults to primary
		{"", TierPrimary},
	}
	for _, tt := range tests {
		t.Run(tt.class, func(t *testing.T) {
			assert.Equal(t, tt.want, TierForClass(tt.class))
		})
	}
}

func TestGradeForEarlyTier(t *testing.T) {
	tests := []struct {
		pct  float64
		want string
	}{
		{100, "A"},
		{80, "A"},
		{79.9, "B"},
		{65, "B"},
		{64, "C"},
		{50, "C"},
		{49, "D"},
		{40, "D"},
		{39, "E"},
		{0, "E"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, GradeFor(TierEarly, tt.pct), "early tier at %.1f", tt.pct)
	}
}

func TestGradeForPrimaryTier(t *testing.T) {
	tests := []struct {
		pct  float64
		want string
	}{
		{100, "A"},
		{85, "A"},
		{84.9, "B"},
		{70, "B"},
		{69, "C"},
		{55, "C"},
		{54, "D"},
		{40, "D"},
		{39.5, "E"},
		{0, "E"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, GradeFor(TierPrimary, tt.pct), "primary tier at %.1f", tt.pct)
	}
}

// The two tiers really do disagree in the overlap band.
func TestTierBoundariesDiffer(t *testing.T) {
	assert.Equal(t, "A", GradeFor(TierEarly, 82))
	assert.Equal(t, "B", GradeFor(TierPrimary, 82))
	assert.Equal(t, "B", GradeFor(TierEarly, 67))
	assert.Equal(t, "C", GradeFor(TierPrimary, 67))
}

func TestGradeForClampsOutOfRange(t *testing.T) {
	assert.Equal(t, "E", GradeFor(TierPrimary, -5))
	assert.Equal(t, "A", GradeFor(TierPrimary, 120))
}

func TestGradeForClass(t *testing.T) {
	assert.Equal(t, "A", GradeForClass("Play Group", 82))
	assert.Equal(t, "B", GradeForClass("Grade 3", 82))
}
