package fuzzy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatcherBestMatch(t *testing.T) {
	m := NewMatcher()
	universe := []string{"Tomato", "Cheddar Cheese", "Flour", "Pizza Base"}

	best, ok := m.BestMatch("Tomatoe", universe)
	require.True(t, ok)
	assert.Equal(t, "Tomato", best.Candidate)
	assert.GreaterOrEqual(t, best.Score, 85, "a one-letter typo should clear the suggestion threshold")

	best, ok = m.BestMatch("Xyzabc", universe)
	require.True(t, ok)
	assert.Less(t, best.Score, 85, "nonsense must stay below the suggestion threshold")
}

func TestMatcherNoCandidates(t *testing.T) {
	_, ok := NewMatcher().BestMatch("Tomato", nil)
	assert.False(t, ok)
}

func TestNullMatcher(t *testing.T) {
	m := NewNullMatcher(nil)
	assert.False(t, m.Available())

	_, ok := m.BestMatch("Tomatoe", []string{"Tomato"})
	assert.False(t, ok, "null matcher never matches")
}

func TestSelect(t *testing.T) {
	assert.True(t, Select(true, nil).Available())
	assert.False(t, Select(false, nil).Available())
}
