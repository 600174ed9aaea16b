package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"boardform/internal/handler"
	"boardform/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Mock of the board catalog
type MockCatalog struct {
	mock.Mock
}

func (m *MockCatalog) FetchBoardColumns(ctx context.Context, boardID string) (*model.BoardSummary, error) {
	args := m.Called(ctx, boardID)
	summary := args.Get(0)
	if summary == nil {
		return nil, args.Error(1)
	}
	return summary.(*model.BoardSummary), args.Error(1)
}

func (m *MockCatalog) FetchAllBoards(ctx context.Context, limit int) ([]model.BoardSummary, error) {
	args := m.Called(ctx, limit)
	boards := args.Get(0)
	if boards == nil {
		return nil, args.Error(1)
	}
	return boards.([]model.BoardSummary), args.Error(1)
}

func setupRelationTest() (*gin.Engine, *MockCatalog) {
	gin.SetMode(gin.TestMode)
	r := gin.Default()
	mockCatalog := new(MockCatalog)
	relationHandler := handler.NewRelationHandler(mockCatalog)

	r.GET("/boards/:id/relations", relationHandler.GetRelations)
	return r, mockCatalog
}

func TestGetRelations_ReturnsSortedRecords(t *testing.T) {
	// Arrange
	router, mockCatalog := setupRelationTest()
	boards := []model.BoardSummary{
		{ID: "1", Name: "Zeta", Columns: []model.Column{
			{ID: "c1", Title: "Link", Type: model.ColumnTypeBoardRelation, SettingsPayload: `{"boardIds": [9]}`},
		}},
		{ID: "2", Name: "Alpha", Columns: []model.Column{
			{ID: "c2", Title: "Ref", Type: model.ColumnTypeBoardRelation, SettingsPayload: `{"boardIds": [9]}`},
		}},
	}
	mockCatalog.On("FetchAllBoards", mock.Anything, 500).Return(boards, nil)

	req, _ := http.NewRequest("GET", "/boards/9/relations", nil)

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusOK, resp.Code)

	var records []handler.RelationResponse
	assert.NoError(t, json.Unmarshal(resp.Body.Bytes(), &records))
	assert.Len(t, records, 2)
	assert.Equal(t, "Alpha - Ref", records[0].Label)
	assert.Equal(t, "Zeta - Link", records[1].Label)

	mockCatalog.AssertExpectations(t)
}

func TestGetRelations_EmptyResultIsOK(t *testing.T) {
	// Arrange
	router, mockCatalog := setupRelationTest()
	mockCatalog.On("FetchAllBoards", mock.Anything, 500).Return([]model.BoardSummary{}, nil)

	req, _ := http.NewRequest("GET", "/boards/9/relations", nil)

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert - no inbound relations is a normal empty list
	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `[]`, resp.Body.String())
}

func TestGetRelations_CatalogFailure(t *testing.T) {
	// Arrange
	router, mockCatalog := setupRelationTest()
	mockCatalog.On("FetchAllBoards", mock.Anything, 500).Return(nil, assert.AnError)

	req, _ := http.NewRequest("GET", "/boards/9/relations", nil)

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.Contains(t, resp.Body.String(), "Failed to fetch boards")
}

func TestGetRelations_CustomLimit(t *testing.T) {
	// Arrange
	router, mockCatalog := setupRelationTest()
	mockCatalog.On("FetchAllBoards", mock.Anything, 25).Return([]model.BoardSummary{}, nil)

	req, _ := http.NewRequest("GET", "/boards/9/relations?limit=25", nil)

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusOK, resp.Code)
	mockCatalog.AssertExpectations(t)
}

func TestGetRelations_InvalidLimit(t *testing.T) {
	// Arrange
	router, _ := setupRelationTest()

	req, _ := http.NewRequest("GET", "/boards/9/relations?limit=zero", nil)

	// Act
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	// Assert
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}
