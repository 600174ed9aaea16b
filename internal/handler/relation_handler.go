package handler

import (
	"net/http"
	"strconv"

	"boardform/internal/catalog"
	"boardform/internal/relation"

	"github.com/gin-gonic/gin"
)

// defaultBoardLimit caps how many boards one discovery run inspects. The
// host collaborator may pass a lower limit per request.
const defaultBoardLimit = 500

type RelationHandler struct {
	catalog catalog.Catalog
}

func NewRelationHandler(cat catalog.Catalog) *RelationHandler {
	return &RelationHandler{catalog: cat}
}

type RelationResponse struct {
	ID                  string `json:"id"`
	SourceBoardID       string `json:"source_board_id"`
	SourceBoardName     string `json:"source_board_name"`
	RelationColumnID    string `json:"relation_column_id"`
	RelationColumnLabel string `json:"relation_column_label"`
	Label               string `json:"label"`
}

// GetRelations runs relation discovery for one board: every other board in
// the workspace with a relation column pointing back at it. An empty list
// is a normal result, not an error.
func (h *RelationHandler) GetRelations(c *gin.Context) {
	boardID := c.Param("id")

	limit := defaultBoardLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
			return
		}
		limit = parsed
	}

	boards, err := h.catalog.FetchAllBoards(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch boards"})
		return
	}

	records := relation.Discover(boardID, boards)

	response := make([]RelationResponse, len(records))
	for i, rec := range records {
		response[i] = RelationResponse{
			ID:                  rec.ID,
			SourceBoardID:       rec.SourceBoardID,
			SourceBoardName:     rec.SourceBoardName,
			RelationColumnID:    rec.RelationColumnID,
			RelationColumnLabel: rec.RelationColumnLabel,
			Label:               rec.Label,
		}
	}

	c.JSON(http.StatusOK, response)
}
