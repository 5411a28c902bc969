package repository

import (
	"context"
	"errors"
	"testing"

	"gratitude/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{})
	require.NoError(t, err)

	return gormDB, mock
}

func TestUserRepositoryGetByID(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"id", "username", "email"}).
		AddRow(1, "keeper", "keeper@example.com")
	mock.ExpectQuery(`SELECT \* FROM "users"`).WillReturnRows(rows)

	user, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "keeper", user.Username)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepositoryGetByIDNotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "users"`).WillReturnError(gorm.ErrRecordNotFound)

	_, err := repo.GetByID(context.Background(), 99)
	require.Error(t, err)
	appErr, ok := err.(*models.AppError)
	require.True(t, ok)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

func TestUserRepositoryGetByUsernameMissingIsNil(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "users"`).WillReturnError(gorm.ErrRecordNotFound)

	// A missing username is not an error; handlers use nil to decide
	// between "available" and "taken".
	user, err := repo.GetByUsername(context.Background(), "ghost")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestUserRepositoryCreateDuplicate(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "users"`).
		WillReturnError(errors.New(`duplicate key value violates unique constraint "uni_users_username"`))
	mock.ExpectRollback()

	err := repo.Create(context.Background(), &models.User{
		Username: "keeper",
		Email:    "keeper@example.com",
		Password: "hashed",
	})
	require.Error(t, err)
	appErr, ok := err.(*models.AppError)
	require.True(t, ok)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
}
