package model

import (
	"time"
)

// Board is the local mirror of a host-platform board. The host pushes
// snapshots into this table; the catalog reads them back out.
type Board struct {
	ID        string `gorm:"primaryKey"`
	Name      string `gorm:"not null"`
	UpdatedAt time.Time

	Columns []BoardColumn `gorm:"foreignKey:BoardID;constraint:OnDelete:CASCADE"`
}

// BoardColumn is one mirrored column definition. Position preserves the
// host's column ordering so listings stay stable across refreshes.
type BoardColumn struct {
	ID              string `gorm:"primaryKey"`
	BoardID         string `gorm:"primaryKey;index"`
	Title           string `gorm:"not null"`
	Type            string `gorm:"not null"`
	SettingsPayload string
	Position        int `gorm:"not null"`
}

// Summary converts the mirror rows to the immutable snapshot form used by
// the engines.
func (b *Board) Summary() BoardSummary {
	cols := make([]Column, len(b.Columns))
	for i, c := range b.Columns {
		cols[i] = Column{
			ID:              c.ID,
			Title:           c.Title,
			Type:            ColumnType(c.Type),
			SettingsPayload: c.SettingsPayload,
		}
	}
	return BoardSummary{ID: b.ID, Name: b.Name, Columns: cols}
}
