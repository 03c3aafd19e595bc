package service

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"coachtrack/internal/dedupe/model"
	"coachtrack/internal/storage"
)

// InitialFirstNameMax is the length at or below which a keeper's first name is
// treated as an initial and replaced by the loser's longer first name during
// field reconciliation. Tunable policy, not a derived value.
const InitialFirstNameMax = 2

// Merger executes the keeper/loser merge transaction.
type Merger struct {
	Coaches    storage.CoachRepositoryInterface
	Attendance storage.AttendanceRepositoryInterface
}

func NewMerger(coaches storage.CoachRepositoryInterface, attendance storage.AttendanceRepositoryInterface) *Merger {
	return &Merger{Coaches: coaches, Attendance: attendance}
}

// Merge absorbs loser into keeper: reconcile empty keeper fields, repoint
// attendance, delete the loser. Steps run strictly in that order so a failure
// never deletes a record whose contact data was not propagated. There is no
// automatic retry; a failed step surfaces with the step named and the operator
// re-initiates. Loser attendance rows whose (game, keeper) row already exists
// are dropped before repointing, which keeps the uniqueness index intact.
func (m *Merger) Merge(keeperID, loserID uint) (*model.MergeSummary, error) {
	if keeperID == loserID {
		return nil, fmt.Errorf("keeper and loser are the same record: %w", ErrValidation)
	}

	keeper, err := m.Coaches.GetByID(keeperID)
	if err != nil {
		return nil, loadErr("keeper", keeperID, err)
	}
	loser, err := m.Coaches.GetByID(loserID)
	if err != nil {
		return nil, loadErr("loser", loserID, err)
	}
	if keeper.SchoolID != loser.SchoolID {
		return nil, fmt.Errorf("records belong to different schools: %w", ErrValidation)
	}

	// step 1: field reconciliation — only fills previously-empty keeper data,
	// so it cannot fail validation
	fields := map[string]any{}
	var merged []string
	if empty(keeper.Email) && !empty(loser.Email) {
		fields["email"] = loser.Email
		merged = append(merged, "email")
	}
	if empty(keeper.Phone) && !empty(loser.Phone) {
		fields["phone"] = loser.Phone
		merged = append(merged, "phone")
	}
	if empty(keeper.Title) && !empty(loser.Title) {
		fields["title"] = loser.Title
		merged = append(merged, "title")
	}
	kf := strings.TrimSpace(keeper.FirstName)
	lf := strings.TrimSpace(loser.FirstName)
	if utf8.RuneCountInString(kf) <= InitialFirstNameMax && utf8.RuneCountInString(lf) > utf8.RuneCountInString(kf) {
		fields["first_name"] = lf
		merged = append(merged, "first name")
	}
	if len(fields) > 0 {
		if err := m.Coaches.UpdateFields(keeper.ID, fields); err != nil {
			return nil, stepErr("reconcile fields", err)
		}
	}

	// step 2: attendance repoint, deduplicating against keeper's games first
	keeperRows, err := m.Attendance.ListByCoach(keeper.ID)
	if err != nil {
		return nil, stepErr("repoint attendance", err)
	}
	keeperGames := make(map[string]struct{}, len(keeperRows))
	for _, row := range keeperRows {
		keeperGames[row.GameID] = struct{}{}
	}
	loserRows, err := m.Attendance.ListByCoach(loser.ID)
	if err != nil {
		return nil, stepErr("repoint attendance", err)
	}
	repointed, dropped := 0, 0
	for _, row := range loserRows {
		if _, dup := keeperGames[row.GameID]; dup {
			if err := m.Attendance.Delete(row.ID); err != nil {
				return nil, stepErr("repoint attendance", err)
			}
			dropped++
			continue
		}
		if err := m.Attendance.Repoint(row.ID, keeper.ID); err != nil {
			if errors.Is(err, storage.ErrConflict) {
				return nil, fmt.Errorf("repoint attendance: game %s: %w", row.GameID, ErrConstraint)
			}
			return nil, stepErr("repoint attendance", err)
		}
		keeperGames[row.GameID] = struct{}{}
		repointed++
	}

	// step 3: delete the loser
	if err := m.Coaches.Delete(loser.ID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("loser %d already resolved: %w", loser.ID, ErrNotFound)
		}
		return nil, stepErr("delete loser", err)
	}

	return &model.MergeSummary{
		KeeperID:     keeper.ID,
		LoserID:      loser.ID,
		MergedFields: merged,
		Repointed:    repointed,
		Dropped:      dropped,
	}, nil
}

func empty(s string) bool { return strings.TrimSpace(s) == "" }

func loadErr(role string, id uint, err error) error {
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("%s %d: %w", role, id, ErrNotFound)
	}
	return fmt.Errorf("load %s %d: %w: %v", role, id, ErrStore, err)
}

func stepErr(step string, err error) error {
	return fmt.Errorf("%s: %w: %v", step, ErrStore, err)
}
