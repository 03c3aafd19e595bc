package storage

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// KVRepository stores small serialized blobs under fixed keys, such as an
// operator's dismissed-pair list.
type KVRepository struct {
	DB *gorm.DB
}

func NewKVRepository(db *gorm.DB) *KVRepository {
	return &KVRepository{DB: db}
}

func (r *KVRepository) Get(key string) (string, bool, error) {
	var entry KVEntry
	err := r.DB.First(&entry, "key = ?", key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("kv get %q: %w", key, err)
	}
	return entry.Value, true, nil
}

func (r *KVRepository) Set(key, value string) error {
	entry := KVEntry{Key: key, Value: value}
	err := r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&entry).Error
	if err != nil {
		return fmt.Errorf("kv set %q: %w", key, err)
	}
	return nil
}

func (r *KVRepository) Delete(key string) error {
	if err := r.DB.Delete(&KVEntry{}, "key = ?", key).Error; err != nil {
		return fmt.Errorf("kv delete %q: %w", key, err)
	}
	return nil
}
