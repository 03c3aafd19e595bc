package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coachtrack/internal/storage"
)

func TestMergeReconcilesFieldsAndRepoints(t *testing.T) {
	// keeper "J. Smith" with no contact data, loser "John Smith" with an email
	coaches := newFakeCoachRepo(
		storage.Coach{ID: 1, FirstName: "J.", LastName: "Smith", SchoolID: 10},
		storage.Coach{ID: 2, FirstName: "John", LastName: "Smith", Email: "j@x.edu", Title: "Head Coach", SchoolID: 10},
	)
	attendance := newFakeAttendanceRepo(
		storage.Attendance{ID: 1, GameID: "g1", CoachID: 2},
		storage.Attendance{ID: 2, GameID: "g2", CoachID: 2},
	)

	summary, err := NewMerger(coaches, attendance).Merge(1, 2)
	require.NoError(t, err)

	keeper, err := coaches.GetByID(1)
	require.NoError(t, err)
	assert.Equal(t, "John", keeper.FirstName, "initial-length first name is replaced by the longer one")
	assert.Equal(t, "Smith", keeper.LastName)
	assert.Equal(t, "j@x.edu", keeper.Email)
	assert.Equal(t, "Head Coach", keeper.Title)

	_, err = coaches.GetByID(2)
	assert.ErrorIs(t, err, storage.ErrNotFound, "loser is deleted")

	rows, err := attendance.ListByCoach(1)
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	assert.Equal(t, 2, summary.Repointed)
	assert.Equal(t, 0, summary.Dropped)
	assert.ElementsMatch(t, []string{"email", "title", "first name"}, summary.MergedFields)
	assert.Contains(t, summary.Text(), "email")
}

func TestMergeKeepsExistingKeeperFields(t *testing.T) {
	coaches := newFakeCoachRepo(
		storage.Coach{ID: 1, FirstName: "John", LastName: "Smith", Email: "keep@x.edu", SchoolID: 10},
		storage.Coach{ID: 2, FirstName: "Johnny", LastName: "Smith", Email: "lose@x.edu", Phone: "555-0100", SchoolID: 10},
	)

	summary, err := NewMerger(coaches, newFakeAttendanceRepo()).Merge(1, 2)
	require.NoError(t, err)

	keeper, err := coaches.GetByID(1)
	require.NoError(t, err)
	assert.Equal(t, "keep@x.edu", keeper.Email, "non-empty keeper fields are never overwritten")
	assert.Equal(t, "555-0100", keeper.Phone)
	assert.Equal(t, "John", keeper.FirstName, "a full first name is not replaced")
	assert.Equal(t, []string{"phone"}, summary.MergedFields)
}

func TestMergeDropsDuplicateAttendance(t *testing.T) {
	coaches := newFakeCoachRepo(
		storage.Coach{ID: 1, FirstName: "John", LastName: "Smith", SchoolID: 10},
		storage.Coach{ID: 2, FirstName: "Jon", LastName: "Smith", SchoolID: 10},
	)
	// both attended g1; only the loser attended g2
	attendance := newFakeAttendanceRepo(
		storage.Attendance{ID: 1, GameID: "g1", CoachID: 1},
		storage.Attendance{ID: 2, GameID: "g1", CoachID: 2},
		storage.Attendance{ID: 3, GameID: "g2", CoachID: 2},
	)

	summary, err := NewMerger(coaches, attendance).Merge(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Repointed)
	assert.Equal(t, 1, summary.Dropped)

	rows, err := attendance.ListByCoach(1)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	games := map[string]int{}
	for _, r := range rows {
		games[r.GameID]++
	}
	assert.Equal(t, map[string]int{"g1": 1, "g2": 1}, games, "one row per (game, coach) survives")
}

func TestMergeAlreadyResolvedReportsNotFound(t *testing.T) {
	coaches := newFakeCoachRepo(
		storage.Coach{ID: 1, FirstName: "John", LastName: "Smith", SchoolID: 10},
		storage.Coach{ID: 2, FirstName: "Jon", LastName: "Smith", SchoolID: 10},
	)
	merger := NewMerger(coaches, newFakeAttendanceRepo())

	_, err := merger.Merge(1, 2)
	require.NoError(t, err)

	before, err := coaches.GetByID(1)
	require.NoError(t, err)

	// second operator attempts the same merge after the loser is gone
	_, err = merger.Merge(1, 2)
	assert.ErrorIs(t, err, ErrNotFound)

	after, err := coaches.GetByID(1)
	require.NoError(t, err)
	assert.Equal(t, before, after, "keeper is unmodified by the failed retry")
}

func TestMergeValidation(t *testing.T) {
	coaches := newFakeCoachRepo(
		storage.Coach{ID: 1, FirstName: "John", LastName: "Smith", SchoolID: 10},
		storage.Coach{ID: 2, FirstName: "John", LastName: "Smith", SchoolID: 20},
	)
	merger := NewMerger(coaches, newFakeAttendanceRepo())

	_, err := merger.Merge(1, 1)
	assert.ErrorIs(t, err, ErrValidation)

	_, err = merger.Merge(1, 2)
	assert.ErrorIs(t, err, ErrValidation, "cross-school merges are rejected")

	_, err = merger.Merge(1, 99)
	assert.ErrorIs(t, err, ErrNotFound)
}
