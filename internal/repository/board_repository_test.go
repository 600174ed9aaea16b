package repository_test

import (
	"context"
	"testing"
	"time"

	"boardform/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestBoardRepository_GetByID_Found(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	repo := repository.NewBoardRepository(gormDB)

	mock.ExpectQuery(`SELECT .* FROM "boards" WHERE id = .* LIMIT .*`).
		WithArgs("100", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "updated_at"}).
			AddRow("100", "Projects", time.Now()))
	mock.ExpectQuery(`SELECT .* FROM "board_columns" WHERE .* ORDER BY position`).
		WithArgs("100").
		WillReturnRows(sqlmock.NewRows([]string{"id", "board_id", "title", "type", "settings_payload", "position"}).
			AddRow("name", "100", "Name", "name", "", 0).
			AddRow("rel_1", "100", "Tasks", "board_relation", `{"boardIds":[200]}`, 1))

	// Act
	board, err := repo.GetByID(context.Background(), "100")

	// Assert
	assert.NoError(t, err)
	if !assert.NotNil(t, board) {
		return
	}
	assert.Equal(t, "Projects", board.Name)
	assert.Len(t, board.Columns, 2)
	assert.Equal(t, "rel_1", board.Columns[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBoardRepository_GetByID_Missing(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	repo := repository.NewBoardRepository(gormDB)

	mock.ExpectQuery(`SELECT .* FROM "boards" WHERE id = .* LIMIT .*`).
		WithArgs("404", 1).
		WillReturnError(gorm.ErrRecordNotFound)

	// Act
	board, err := repo.GetByID(context.Background(), "404")

	// Assert - not found is (nil, nil), not an error
	assert.NoError(t, err)
	assert.Nil(t, board)
	assert.NoError(t, mock.ExpectationsWereMet())
}
