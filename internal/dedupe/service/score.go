package service

import (
	"strings"

	"coachtrack/internal/storage"
)

// Score weights. The total is only used for relative ranking among candidates
// at the same school, so the values are additive and unnormalized.
const (
	weightNameEqual    = 50 // first or last name equal, counted independently
	weightNameOneEdit  = 30 // edit distance exactly 1
	weightFirstInitial = 10 // first characters of the first names match
)

// MatchScore rates how confidently two coach records look like the same
// person. Larger is more confident; this is a heuristic, not a metric.
func MatchScore(a, b storage.Coach) int {
	firstA := strings.ToLower(strings.TrimSpace(a.FirstName))
	firstB := strings.ToLower(strings.TrimSpace(b.FirstName))
	lastA := strings.ToLower(strings.TrimSpace(a.LastName))
	lastB := strings.ToLower(strings.TrimSpace(b.LastName))

	score := 0
	if firstA == firstB {
		score += weightNameEqual
	}
	if lastA == lastB {
		score += weightNameEqual
	}
	if EditDistance(firstA, firstB) == 1 {
		score += weightNameOneEdit
	}
	if EditDistance(lastA, lastB) == 1 {
		score += weightNameOneEdit
	}
	if firstA != "" && firstB != "" && []rune(firstA)[0] == []rune(firstB)[0] {
		score += weightFirstInitial
	}
	return score
}
