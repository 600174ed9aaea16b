package handler

import (
	"errors"
	"net/http"

	"boardform/internal/layout"
	"boardform/internal/model"

	"github.com/gin-gonic/gin"
)

type LayoutHandler struct {
	manager *layout.Manager
}

func NewLayoutHandler(manager *layout.Manager) *LayoutHandler {
	return &LayoutHandler{manager: manager}
}

type FieldResponse struct {
	ID        string `json:"id"`
	ColumnID  string `json:"column_id"`
	Label     string `json:"label"`
	Type      string `json:"type"`
	Kind      string `json:"kind"`
	IsDefault bool   `json:"is_default"`
}

type SectionResponse struct {
	ID        string          `json:"id"`
	Title     string          `json:"title"`
	IsDefault bool            `json:"is_default"`
	Fields    []FieldResponse `json:"fields"`
}

type LayoutResponse struct {
	Sections []SectionResponse `json:"sections"`
	Dirty    bool              `json:"dirty"`
}

type CreateSectionRequest struct {
	Title string `json:"title" binding:"required"`
}

type AssignColumnRequest struct {
	ColumnID string `json:"column_id" binding:"required"`
	Title    string `json:"title" binding:"required"`
	Type     string `json:"type" binding:"required"`
}

func layoutResponse(cfg *model.LayoutConfig, dirty bool) LayoutResponse {
	sections := make([]SectionResponse, len(cfg.Sections))
	for i, s := range cfg.Sections {
		fields := make([]FieldResponse, len(s.Fields))
		for j, f := range s.Fields {
			fields[j] = FieldResponse{
				ID:        f.ID,
				ColumnID:  f.ColumnID,
				Label:     f.Label,
				Type:      f.Type,
				Kind:      string(layout.FieldKindFor(model.ColumnType(f.Type))),
				IsDefault: f.IsDefault,
			}
		}
		sections[i] = SectionResponse{
			ID:        s.ID,
			Title:     s.Title,
			IsDefault: s.IsDefault,
			Fields:    fields,
		}
	}
	return LayoutResponse{Sections: sections, Dirty: dirty}
}

// engineError maps engine error kinds to HTTP statuses. Anything
// unclassified is a storage failure.
func engineError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, layout.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
	case errors.Is(err, layout.ErrProtectedEntity):
		c.JSON(http.StatusForbidden, gin.H{"error": "Default entries cannot be removed"})
	case errors.Is(err, layout.ErrDuplicateAssignment):
		c.JSON(http.StatusConflict, gin.H{"error": "Column is already assigned"})
	case errors.Is(err, layout.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Section or field not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Storage failure"})
	}
}

// GetLayout returns the working copy and the dirty flag for one instance.
func (h *LayoutHandler) GetLayout(c *gin.Context) {
	instanceID := c.Param("id")

	var response LayoutResponse
	err := h.manager.Do(c.Request.Context(), instanceID, func(e *layout.Engine) error {
		response = layoutResponse(e.Config(), e.Dirty())
		return nil
	})
	if err != nil {
		engineError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// CreateSection adds an empty section to the working copy.
func (h *LayoutHandler) CreateSection(c *gin.Context) {
	instanceID := c.Param("id")

	var req CreateSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	var sectionID string
	err := h.manager.Do(c.Request.Context(), instanceID, func(e *layout.Engine) error {
		id, err := e.CreateSection(req.Title)
		sectionID = id
		return err
	})
	if err != nil {
		engineError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": sectionID})
}

// DeleteSection removes a section and its fields from the working copy.
// The caller is expected to have confirmed with the user first.
func (h *LayoutHandler) DeleteSection(c *gin.Context) {
	instanceID := c.Param("id")
	sectionID := c.Param("section_id")

	err := h.manager.Do(c.Request.Context(), instanceID, func(e *layout.Engine) error {
		return e.DeleteSection(sectionID)
	})
	if err != nil {
		engineError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Section deleted successfully"})
}

// AssignColumn binds a board column to a new field in the target section.
func (h *LayoutHandler) AssignColumn(c *gin.Context) {
	instanceID := c.Param("id")
	sectionID := c.Param("section_id")

	var req AssignColumnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	column := model.Column{
		ID:    req.ColumnID,
		Title: req.Title,
		Type:  model.ColumnType(req.Type),
	}

	var fieldID string
	err := h.manager.Do(c.Request.Context(), instanceID, func(e *layout.Engine) error {
		id, err := e.AssignColumn(column, sectionID)
		fieldID = id
		return err
	})
	if err != nil {
		engineError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": fieldID})
}

// RemoveField removes one field from a section.
func (h *LayoutHandler) RemoveField(c *gin.Context) {
	instanceID := c.Param("id")
	sectionID := c.Param("section_id")
	fieldID := c.Param("field_id")

	err := h.manager.Do(c.Request.Context(), instanceID, func(e *layout.Engine) error {
		return e.RemoveField(sectionID, fieldID)
	})
	if err != nil {
		engineError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Field removed successfully"})
}

// ColumnAssigned reports whether a column already backs a field anywhere in
// the working copy.
func (h *LayoutHandler) ColumnAssigned(c *gin.Context) {
	instanceID := c.Param("id")
	columnID := c.Param("column_id")

	var assigned bool
	err := h.manager.Do(c.Request.Context(), instanceID, func(e *layout.Engine) error {
		assigned = e.IsColumnAssigned(columnID)
		return nil
	})
	if err != nil {
		engineError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"assigned": assigned})
}

// SaveLayout persists the working copy. On storage failure the edits and
// the dirty flag are untouched so the client can retry.
func (h *LayoutHandler) SaveLayout(c *gin.Context) {
	instanceID := c.Param("id")

	var response LayoutResponse
	err := h.manager.Do(c.Request.Context(), instanceID, func(e *layout.Engine) error {
		if err := e.Save(c.Request.Context()); err != nil {
			return err
		}
		response = layoutResponse(e.Config(), e.Dirty())
		return nil
	})
	if err != nil {
		engineError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// CancelLayout discards unsaved edits, restoring the saved copy.
func (h *LayoutHandler) CancelLayout(c *gin.Context) {
	instanceID := c.Param("id")

	var response LayoutResponse
	err := h.manager.Do(c.Request.Context(), instanceID, func(e *layout.Engine) error {
		e.Cancel()
		response = layoutResponse(e.Config(), e.Dirty())
		return nil
	})
	if err != nil {
		engineError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// CreateItem is the form-submission endpoint. Item creation has no backend
// contract yet, so the route only acknowledges that.
func (h *LayoutHandler) CreateItem(c *gin.Context) {
	c.JSON(http.StatusNotImplemented, gin.H{"error": "Item creation is not available yet"})
}
