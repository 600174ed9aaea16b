package handler

import (
	"errors"
	"net/http"

	"boardform/internal/catalog"
	"boardform/internal/model"
	"boardform/internal/repository"

	"github.com/gin-gonic/gin"
)

type BoardHandler struct {
	catalog catalog.Catalog
	boards  *repository.BoardRepository
}

func NewBoardHandler(cat catalog.Catalog, boards *repository.BoardRepository) *BoardHandler {
	return &BoardHandler{catalog: cat, boards: boards}
}

type ColumnResponse struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Type  string `json:"type"`
}

type BoardColumnsResponse struct {
	BoardID string           `json:"board_id"`
	Name    string           `json:"name"`
	Columns []ColumnResponse `json:"columns"`
}

type SyncBoardRequest struct {
	Name    string `json:"name" binding:"required"`
	Columns []struct {
		ID              string `json:"id" binding:"required"`
		Title           string `json:"title" binding:"required"`
		Type            string `json:"type" binding:"required"`
		SettingsPayload string `json:"settings_payload"`
	} `json:"columns" binding:"required"`
}

// GetColumns lists the current column snapshot for one board.
func (h *BoardHandler) GetColumns(c *gin.Context) {
	boardID := c.Param("id")

	summary, err := h.catalog.FetchBoardColumns(c.Request.Context(), boardID)
	if err != nil {
		if errors.Is(err, repository.ErrBoardNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Board not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve columns"})
		return
	}

	columns := make([]ColumnResponse, len(summary.Columns))
	for i, col := range summary.Columns {
		columns[i] = ColumnResponse{
			ID:    col.ID,
			Title: col.Title,
			Type:  string(col.Type),
		}
	}

	c.JSON(http.StatusOK, BoardColumnsResponse{
		BoardID: summary.ID,
		Name:    summary.Name,
		Columns: columns,
	})
}

// SyncBoard replaces a board's mirror snapshot with the one pushed by the
// host integration.
func (h *BoardHandler) SyncBoard(c *gin.Context) {
	boardID := c.Param("id")

	var req SyncBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	board := &model.Board{ID: boardID, Name: req.Name}
	board.Columns = make([]model.BoardColumn, len(req.Columns))
	for i, col := range req.Columns {
		board.Columns[i] = model.BoardColumn{
			ID:              col.ID,
			BoardID:         boardID,
			Title:           col.Title,
			Type:            col.Type,
			SettingsPayload: col.SettingsPayload,
			Position:        i,
		}
	}

	if err := h.boards.Replace(c.Request.Context(), board); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to sync board"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Board synced successfully"})
}
