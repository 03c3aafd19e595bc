package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"coachtrack/internal/storage"
)

func coach(first, last string) storage.Coach {
	return storage.Coach{FirstName: first, LastName: last}
}

func TestMatchScore(t *testing.T) {
	// identical names: 50 + 50 + 10 (shared initial)
	assert.Equal(t, 110, MatchScore(coach("John", "Smith"), coach("john", "smith")))

	// one-edit first name: 30 + 50 + 10
	assert.Equal(t, 90, MatchScore(coach("Jon", "Smith"), coach("John", "Smith")))

	// initial vs full first name: last equal + shared initial
	assert.Equal(t, 60, MatchScore(coach("J.", "Smith"), coach("John", "Smith")))

	// nothing in common
	assert.Equal(t, 0, MatchScore(coach("Alice", "Nguyen"), coach("Bob", "Kowalski")))
}

func TestMatchScoreSymmetric(t *testing.T) {
	a := coach("Billy", "Donovan")
	b := coach("Bill", "Donovan")
	assert.Equal(t, MatchScore(a, b), MatchScore(b, a))
}
