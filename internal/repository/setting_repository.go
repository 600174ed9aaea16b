package repository

import (
	"context"
	"errors"

	"boardform/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SettingRepository persists layout blobs as key/value rows. It satisfies
// the layout engine's Gateway interface.
type SettingRepository struct {
	db *gorm.DB
}

func NewSettingRepository(db *gorm.DB) *SettingRepository {
	return &SettingRepository{db: db}
}

// Get returns the stored value, reporting a missing key via ok=false.
func (r *SettingRepository) Get(ctx context.Context, key string) (string, bool, error) {
	var setting model.LayoutSetting
	if err := r.db.WithContext(ctx).Where("key = ?", key).First(&setting).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return setting.Value, true, nil
}

// Set writes the value, inserting or overwriting in a single statement so
// a failed write never leaves a partial record behind.
func (r *SettingRepository) Set(ctx context.Context, key, value string) error {
	setting := model.LayoutSetting{Key: key, Value: value}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&setting).Error
}
