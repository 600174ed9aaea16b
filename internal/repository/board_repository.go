package repository

import (
	"context"
	"errors"

	"boardform/internal/model"

	"gorm.io/gorm"
)

// BoardRepository stores the local mirror of host-platform boards.
type BoardRepository struct {
	db *gorm.DB
}

func NewBoardRepository(db *gorm.DB) *BoardRepository {
	return &BoardRepository{db: db}
}

// GetByID returns one mirrored board with its columns, or (nil, nil) when
// the board is unknown.
func (r *BoardRepository) GetByID(ctx context.Context, boardID string) (*model.Board, error) {
	var board model.Board
	err := r.db.WithContext(ctx).
		Preload("Columns", func(db *gorm.DB) *gorm.DB {
			return db.Order("position")
		}).
		Where("id = ?", boardID).
		First(&board).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &board, nil
}

// List returns up to limit mirrored boards with their columns, ordered by
// name for stable output.
func (r *BoardRepository) List(ctx context.Context, limit int) ([]model.Board, error) {
	var boards []model.Board
	err := r.db.WithContext(ctx).
		Preload("Columns", func(db *gorm.DB) *gorm.DB {
			return db.Order("position")
		}).
		Order("name").
		Limit(limit).
		Find(&boards).Error
	return boards, err
}

// Replace overwrites a board's mirror snapshot: the board row is upserted
// and its column set replaced wholesale inside one transaction, so readers
// never observe a half-refreshed board.
func (r *BoardRepository) Replace(ctx context.Context, board *model.Board) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&model.Board{ID: board.ID, Name: board.Name}).Error; err != nil {
			return err
		}
		if err := tx.Where("board_id = ?", board.ID).Delete(&model.BoardColumn{}).Error; err != nil {
			return err
		}
		if len(board.Columns) == 0 {
			return nil
		}
		return tx.Create(&board.Columns).Error
	})
}
