package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coachtrack/internal/roster/model"
	"coachtrack/internal/storage"
)

func testRegistry() []storage.School {
	return []storage.School{
		{ID: 1, Name: "Ohio State University"},
		{ID: 2, Name: "State University of New York at Buffalo"},
		{ID: 3, Name: "University of Michigan"},
		{ID: 4, Name: "Boston College"},
		{ID: 5, Name: "Duke University"},
	}
}

func TestResolveExact(t *testing.T) {
	m := NewMatcher(testRegistry())

	s, tier := m.Resolve("ohio state university")
	require.NotNil(t, s)
	assert.Equal(t, model.TierExact, tier)
	assert.Equal(t, uint(1), s.ID)

	s, tier = m.Resolve("  Ohio State University  ")
	require.NotNil(t, s)
	assert.Equal(t, model.TierExact, tier)
}

func TestResolveAlias(t *testing.T) {
	m := NewMatcher(testRegistry())

	s, tier := m.Resolve("OSU")
	require.NotNil(t, s)
	assert.Equal(t, model.TierExact, tier, "alias substitution runs before matching")
	assert.Equal(t, "Ohio State University", s.Name)
}

func TestResolveSubstring(t *testing.T) {
	m := NewMatcher(testRegistry())

	s, tier := m.Resolve("ohio state")
	require.NotNil(t, s)
	assert.Equal(t, model.TierHigh, tier)
	assert.Equal(t, uint(1), s.ID)

	// containment the other direction
	s, tier = m.Resolve("the duke university blue devils")
	require.NotNil(t, s)
	assert.Equal(t, model.TierHigh, tier)
	assert.Equal(t, uint(5), s.ID)
}

func TestResolveWordOverlap(t *testing.T) {
	m := NewMatcher(testRegistry())

	s, tier := m.Resolve("Stat Univ of NY Buffalo")
	require.NotNil(t, s)
	assert.Equal(t, uint(2), s.ID)
	assert.Contains(t, []model.Tier{model.TierMedium, model.TierLow}, tier)
	assert.NotEqual(t, model.TierExact, tier)
}

func TestResolveNone(t *testing.T) {
	m := NewMatcher(testRegistry())

	s, tier := m.Resolve("Completely Unrelated Academy of Dance")
	assert.Nil(t, s)
	assert.Equal(t, model.TierNone, tier)

	s, tier = m.Resolve("")
	assert.Nil(t, s)
	assert.Equal(t, model.TierNone, tier)
}
