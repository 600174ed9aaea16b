package model

import "time"

// LayoutSetting is one persisted key/value pair. The layout engine stores
// each instance's serialized LayoutConfig under its own key.
type LayoutSetting struct {
	Key       string `gorm:"primaryKey"`
	Value     string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}

// LayoutSettingKey builds the storage key for a widget instance.
func LayoutSettingKey(instanceID string) string {
	return "layout_sections_" + instanceID
}
