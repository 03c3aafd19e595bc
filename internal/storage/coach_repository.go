package storage

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// CoachRepository handles database operations for Coach records.
type CoachRepository struct {
	DB *gorm.DB
}

func NewCoachRepository(db *gorm.DB) *CoachRepository {
	return &CoachRepository{DB: db}
}

func (r *CoachRepository) Create(coach *Coach) error {
	coach.FirstName = strings.TrimSpace(coach.FirstName)
	coach.LastName = strings.TrimSpace(coach.LastName)
	if err := r.DB.Create(coach).Error; err != nil {
		return fmt.Errorf("create coach %s %s: %w", coach.FirstName, coach.LastName, err)
	}
	return nil
}

func (r *CoachRepository) GetByID(id uint) (*Coach, error) {
	var coach Coach
	err := r.DB.First(&coach, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get coach %d: %w", id, err)
	}
	return &coach, nil
}

func (r *CoachRepository) ListAll() ([]Coach, error) {
	var coaches []Coach
	if err := r.DB.Order("last_name ASC, first_name ASC").Find(&coaches).Error; err != nil {
		return nil, fmt.Errorf("list coaches: %w", err)
	}
	return coaches, nil
}

func (r *CoachRepository) ListBySchool(schoolID uint) ([]Coach, error) {
	var coaches []Coach
	err := r.DB.Where("school_id = ?", schoolID).
		Order("last_name ASC, first_name ASC").
		Find(&coaches).Error
	if err != nil {
		return nil, fmt.Errorf("list coaches for school %d: %w", schoolID, err)
	}
	return coaches, nil
}

// UpdateFields applies a partial update in one statement.
func (r *CoachRepository) UpdateFields(id uint, fields map[string]any) error {
	res := r.DB.Model(&Coach{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return fmt.Errorf("update coach %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *CoachRepository) Delete(id uint) error {
	res := r.DB.Delete(&Coach{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete coach %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// FindByName looks up a coach by exact case-insensitive name within a school.
func (r *CoachRepository) FindByName(schoolID uint, first, last string) (*Coach, error) {
	var coach Coach
	err := r.DB.Where(
		"school_id = ? AND LOWER(first_name) = ? AND LOWER(last_name) = ?",
		schoolID, strings.ToLower(strings.TrimSpace(first)), strings.ToLower(strings.TrimSpace(last)),
	).First(&coach).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find coach by name: %w", err)
	}
	return &coach, nil
}
