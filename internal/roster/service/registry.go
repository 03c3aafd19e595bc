package service

import (
	"strings"

	"coachtrack/internal/roster/model"
	"coachtrack/internal/storage"
)

// orgAliases rewrites well-known abbreviations before any matching runs.
// Keys and values are compared post-normalization, so everything is lowercase.
var orgAliases = map[string]string{
	"osu":      "ohio state university",
	"psu":      "penn state university",
	"msu":      "michigan state university",
	"unc":      "university of north carolina",
	"ucla":     "university of california los angeles",
	"usc":      "university of southern california",
	"byu":      "brigham young university",
	"lsu":      "louisiana state university",
	"smu":      "southern methodist university",
	"tcu":      "texas christian university",
	"uva":      "university of virginia",
	"vt":       "virginia tech",
	"pitt":     "university of pittsburgh",
	"ole miss": "university of mississippi",
	"uconn":    "university of connecticut",
	"umass":    "university of massachusetts",
}

// genericWords carry no signal for word-overlap matching.
var genericWords = map[string]struct{}{
	"university": {},
	"college":    {},
	"of":         {},
	"the":        {},
}

// Matcher resolves free-text organization names against the canonical school
// registry. The tiers are an ordered list of predicate rules, loosest last;
// the first rule that yields a school wins.
type Matcher struct {
	schools []storage.School
	norm    []string // lowercased canonical names, same index as schools
	rules   []tierRule
}

type tierRule struct {
	tier  model.Tier
	match func(m *Matcher, term string) int // index into schools, or -1
}

func NewMatcher(schools []storage.School) *Matcher {
	m := &Matcher{schools: schools}
	m.norm = make([]string, len(schools))
	for i, s := range schools {
		m.norm[i] = strings.ToLower(strings.TrimSpace(s.Name))
	}
	m.rules = []tierRule{
		{model.TierExact, (*Matcher).matchExact},
		{model.TierHigh, (*Matcher).matchContains},
		{model.TierMedium, (*Matcher).matchWordOverlap},
		{model.TierLow, (*Matcher).matchAnyWord},
	}
	return m
}

// Resolve runs the tier cascade. A nil school with TierNone means the row must
// be surfaced for manual resolution.
func (m *Matcher) Resolve(freeText string) (*storage.School, model.Tier) {
	term := strings.ToLower(strings.TrimSpace(freeText))
	if term == "" {
		return nil, model.TierNone
	}
	if alias, ok := orgAliases[term]; ok {
		term = alias
	}
	for _, rule := range m.rules {
		if idx := rule.match(m, term); idx >= 0 {
			return &m.schools[idx], rule.tier
		}
	}
	return nil, model.TierNone
}

func (m *Matcher) matchExact(term string) int {
	for i, name := range m.norm {
		if name == term {
			return i
		}
	}
	return -1
}

// substring containment in either direction
func (m *Matcher) matchContains(term string) int {
	for i, name := range m.norm {
		if strings.Contains(name, term) || strings.Contains(term, name) {
			return i
		}
	}
	return -1
}

// word overlap: strip generic words and hyphens, keep words of 3+ characters,
// and require all but one of them to appear in the registry name. The school
// with the most hits wins, earliest registry entry on a tie.
func (m *Matcher) matchWordOverlap(term string) int {
	words := significantWords(term, 3)
	if len(words) == 0 {
		return -1
	}
	need := len(words) - 1
	if need < 1 {
		need = 1
	}
	best, bestHits := -1, 0
	for i, name := range m.norm {
		hits := 0
		for _, w := range words {
			if strings.Contains(name, w) {
				hits++
			}
		}
		if hits >= need && hits > bestHits {
			best, bestHits = i, hits
		}
	}
	return best
}

// last resort: any remaining word longer than 3 characters found as a
// substring of a registry name
func (m *Matcher) matchAnyWord(term string) int {
	words := significantWords(term, 4)
	for i, name := range m.norm {
		for _, w := range words {
			if strings.Contains(name, w) {
				return i
			}
		}
	}
	return -1
}

func significantWords(term string, minLen int) []string {
	term = strings.ReplaceAll(term, "-", " ")
	var out []string
	for _, w := range strings.Fields(term) {
		if len([]rune(w)) < minLen {
			continue
		}
		if _, generic := genericWords[w]; generic {
			continue
		}
		out = append(out, w)
	}
	return out
}
