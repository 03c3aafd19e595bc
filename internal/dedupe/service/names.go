package service

import (
	"strings"
	"unicode"

	"coachtrack/internal/dedupe/model"
)

// edit-distance ceilings for name compatibility
const (
	lastNameMaxEdits  = 1
	firstNameMaxEdits = 2
)

// Classify decides whether two names plausibly belong to the same person.
// Last-name similarity gates the decision; first-name variants (initials,
// diminutives, small edits) absorb what edit distance alone misses.
// Symmetric in its arguments.
func Classify(firstA, lastA, firstB, lastB string) model.MatchType {
	fa := norm(firstA)
	fb := norm(firstB)
	la := norm(lastA)
	lb := norm(lastB)

	if fa == fb && la == lb {
		return model.MatchExact
	}

	// last names must be equal or within one edit
	if la != lb && EditDistance(la, lb) > lastNameMaxEdits {
		return model.MatchNone
	}

	switch {
	case isInitialOf(fa, fb) || isInitialOf(fb, fa):
		return model.MatchFuzzy
	case EditDistance(fa, fb) <= firstNameMaxEdits:
		return model.MatchFuzzy
	case sharedCanonical(fa, fb):
		return model.MatchFuzzy
	}
	return model.MatchNone
}

// isInitialOf reports whether a is a single initial (possibly punctuated,
// e.g. "J.") matching the first character of b.
func isInitialOf(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	ra := []rune(a)
	if len(ra) == 1 {
		return ra[0] == []rune(b)[0]
	}
	stripped := stripPunct(a)
	sr := []rune(stripped)
	return len(sr) == 1 && sr[0] == []rune(b)[0]
}

func stripPunct(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func norm(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
