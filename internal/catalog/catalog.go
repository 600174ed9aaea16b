package catalog

import (
	"context"

	"boardform/internal/model"
	"boardform/internal/repository"
)

// Catalog supplies board and column metadata. The engines treat it as a
// read-only collaborator; any implementation failure is an I/O error for
// the caller to surface.
type Catalog interface {
	FetchBoardColumns(ctx context.Context, boardID string) (*model.BoardSummary, error)
	FetchAllBoards(ctx context.Context, limit int) ([]model.BoardSummary, error)
}

// MirrorCatalog reads from the local board mirror kept up to date by host
// snapshot pushes.
type MirrorCatalog struct {
	boards *repository.BoardRepository
}

func NewMirrorCatalog(boards *repository.BoardRepository) *MirrorCatalog {
	return &MirrorCatalog{boards: boards}
}

func (c *MirrorCatalog) FetchBoardColumns(ctx context.Context, boardID string) (*model.BoardSummary, error) {
	board, err := c.boards.GetByID(ctx, boardID)
	if err != nil {
		return nil, err
	}
	if board == nil {
		return nil, repository.ErrBoardNotFound
	}
	summary := board.Summary()
	return &summary, nil
}

func (c *MirrorCatalog) FetchAllBoards(ctx context.Context, limit int) ([]model.BoardSummary, error) {
	boards, err := c.boards.List(ctx, limit)
	if err != nil {
		return nil, err
	}
	summaries := make([]model.BoardSummary, len(boards))
	for i := range boards {
		summaries[i] = boards[i].Summary()
	}
	return summaries, nil
}
