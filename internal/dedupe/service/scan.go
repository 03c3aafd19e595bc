package service

import (
	"fmt"
	"sort"

	"coachtrack/internal/dedupe/model"
	"coachtrack/internal/storage"
)

// Scanner runs the duplicate-coach scan over the whole roster.
type Scanner struct {
	Coaches    storage.CoachRepositoryInterface
	Attendance storage.AttendanceRepositoryInterface
}

func NewScanner(coaches storage.CoachRepositoryInterface, attendance storage.AttendanceRepositoryInterface) *Scanner {
	return &Scanner{Coaches: coaches, Attendance: attendance}
}

// Scan enumerates unordered coach pairs within each school, classifies and
// scores them, and filters pairs the operator has dismissed. The scan is
// O(n²) per school partition and reruns from scratch on demand; school
// partitions bound n in practice. Results are sorted by descending score,
// ties staying in input order.
func (s *Scanner) Scan(sup *Suppressions) ([]model.CandidatePair, error) {
	coaches, err := s.Coaches.ListAll()
	if err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}
	counts, err := s.Attendance.CountByCoach()
	if err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}
	dismissed, err := sup.List()
	if err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}

	// partition by school; cross-school name collisions are not duplicates
	bySchool := make(map[uint][]storage.Coach)
	order := make([]uint, 0)
	for _, c := range coaches {
		if _, ok := bySchool[c.SchoolID]; !ok {
			order = append(order, c.SchoolID)
		}
		bySchool[c.SchoolID] = append(bySchool[c.SchoolID], c)
	}

	pairs := make([]model.CandidatePair, 0)
	for _, schoolID := range order {
		group := bySchool[schoolID]
		for i := 0; i < len(group); i++ {
			for j := i + 1; j < len(group); j++ {
				a, b := group[i], group[j]
				if _, ok := dismissed[PairKey(a.ID, b.ID)]; ok {
					continue
				}
				mt := Classify(a.FirstName, a.LastName, b.FirstName, b.LastName)
				if mt == model.MatchNone {
					continue
				}
				pairs = append(pairs, model.CandidatePair{
					A:       a,
					B:       b,
					Match:   mt,
					Score:   MatchScore(a, b),
					VisitsA: counts[a.ID],
					VisitsB: counts[b.ID],
				})
			}
		}
	}

	sort.SliceStable(pairs, func(i, j int) bool { return pairs[i].Score > pairs[j].Score })
	return pairs, nil
}
