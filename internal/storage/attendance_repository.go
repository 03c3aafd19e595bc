package storage

import (
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// AttendanceRepository handles database operations for Attendance records.
type AttendanceRepository struct {
	DB *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) *AttendanceRepository {
	return &AttendanceRepository{DB: db}
}

func (r *AttendanceRepository) Create(att *Attendance) error {
	if err := r.DB.Create(att).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrConflict
		}
		return fmt.Errorf("create attendance: %w", err)
	}
	return nil
}

func (r *AttendanceRepository) ListByCoach(coachID uint) ([]Attendance, error) {
	var rows []Attendance
	if err := r.DB.Where("coach_id = ?", coachID).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list attendance for coach %d: %w", coachID, err)
	}
	return rows, nil
}

// CountByCoach returns attendance counts for every coach in one aggregate read.
func (r *AttendanceRepository) CountByCoach() (map[uint]int, error) {
	type row struct {
		CoachID uint
		N       int
	}
	var rows []row
	err := r.DB.Model(&Attendance{}).
		Select("coach_id, COUNT(*) AS n").
		Group("coach_id").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("count attendance: %w", err)
	}
	out := make(map[uint]int, len(rows))
	for _, rr := range rows {
		out[rr.CoachID] = rr.N
	}
	return out, nil
}

// Repoint moves one attendance row to another coach.
func (r *AttendanceRepository) Repoint(id, coachID uint) error {
	res := r.DB.Model(&Attendance{}).Where("id = ?", id).Update("coach_id", coachID)
	if res.Error != nil {
		if isUniqueViolation(res.Error) {
			return ErrConflict
		}
		return fmt.Errorf("repoint attendance %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *AttendanceRepository) Delete(id uint) error {
	res := r.DB.Delete(&Attendance{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete attendance %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// sqlite reports constraint failures as plain errors; match on the message
// since the driver does not export a typed value through gorm.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "constraint failed")
}
