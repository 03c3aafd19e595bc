package model

import (
	"fmt"
	"strings"

	"coachtrack/internal/storage"
)

// MatchType classifies a candidate pair. Absence of a match is a normal
// MatchNone result, never an error.
type MatchType string

const (
	MatchExact MatchType = "exact"
	MatchFuzzy MatchType = "fuzzy"
	MatchNone  MatchType = "none"
)

// CandidatePair is transient scan output: two coaches at the same school that
// may be the same person. Regenerated on every scan, never persisted.
type CandidatePair struct {
	A       storage.Coach `json:"a"`
	B       storage.Coach `json:"b"`
	Match   MatchType     `json:"match"`
	Score   int           `json:"score"`
	VisitsA int           `json:"visits_a"` // attendance counts for the decision UI
	VisitsB int           `json:"visits_b"`
}

// MergeSummary reports what a completed merge actually did.
type MergeSummary struct {
	KeeperID     uint     `json:"keeper_id"`
	LoserID      uint     `json:"loser_id"`
	MergedFields []string `json:"merged_fields"`
	Repointed    int      `json:"repointed"`
	Dropped      int      `json:"dropped"`
}

// Text renders the operator-facing summary line.
func (s MergeSummary) Text() string {
	fields := "no fields"
	if len(s.MergedFields) > 0 {
		fields = strings.Join(s.MergedFields, ", ")
	}
	return fmt.Sprintf("merged %s from #%d into #%d; %d visit(s) moved, %d duplicate visit(s) dropped",
		fields, s.LoserID, s.KeeperID, s.Repointed, s.Dropped)
}
