package storage

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// SchoolRepository handles database operations for the canonical registry.
type SchoolRepository struct {
	DB *gorm.DB
}

func NewSchoolRepository(db *gorm.DB) *SchoolRepository {
	return &SchoolRepository{DB: db}
}

func (r *SchoolRepository) Create(school *School) error {
	if err := r.DB.Create(school).Error; err != nil {
		return fmt.Errorf("create school %s: %w", school.Name, err)
	}
	return nil
}

func (r *SchoolRepository) GetByID(id uint) (*School, error) {
	var school School
	err := r.DB.First(&school, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get school %d: %w", id, err)
	}
	return &school, nil
}

func (r *SchoolRepository) ListAll() ([]School, error) {
	var schools []School
	if err := r.DB.Order("school ASC").Find(&schools).Error; err != nil {
		return nil, fmt.Errorf("list schools: %w", err)
	}
	return schools, nil
}
