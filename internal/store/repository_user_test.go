package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkhalidov/go-identity-service/internal/logger"
	"github.com/mkhalidov/go-identity-service/models"
)

func newMockRepository(t *testing.T) (UserRepository, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	db := &DB{DB: conn, logger: logger.Nop()}
	return NewUserRepository(db, logger.Nop()), mock
}

func userRows(user models.User) *sqlmock.Rows {
	return sqlmock.NewRows(userColumns).
		AddRow(user.UserID, user.Username, user.Email, user.PasswordHash, user.CreatedAt)
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock := newMockRepository(t)

	want := models.User{
		UserID:       1,
		Username:     "testuser",
		Email:        "testuser@example.com",
		PasswordHash: "$2a$04$hash",
		CreatedAt:    time.Now(),
	}

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(want.Username, want.Email, want.PasswordHash).
		WillReturnRows(userRows(want))

	got, err := repo.CreateUser(context.Background(), models.User{
		Username:     want.Username,
		Email:        want.Email,
		PasswordHash: want.PasswordHash,
	})

	require.NoError(t, err)
	assert.Equal(t, want.UserID, got.UserID)
	assert.Equal(t, want.Username, got.Username)
	assert.Equal(t, want.Email, got.Email)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_DuplicateUsername(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})

	_, err := repo.CreateUser(context.Background(), models.User{
		Username:     "testuser",
		Email:        "testuser@example.com",
		PasswordHash: "$2a$04$hash",
	})

	assert.ErrorIs(t, err, ErrUsernameAlreadyExists)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateUser_UnexpectedError(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(errors.New("connection reset"))

	_, err := repo.CreateUser(context.Background(), models.User{
		Username:     "testuser",
		Email:        "testuser@example.com",
		PasswordHash: "$2a$04$hash",
	})

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUsernameAlreadyExists)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFindUserByUsername_Success(t *testing.T) {
	repo, mock := newMockRepository(t)

	want := models.User{
		UserID:       42,
		Username:     "testuser",
		Email:        "testuser@example.com",
		PasswordHash: "$2a$04$hash",
		CreatedAt:    time.Now(),
	}

	mock.ExpectQuery("SELECT .+ FROM users").
		WithArgs(want.Username).
		WillReturnRows(userRows(want))

	got, err := repo.FindUserByUsername(context.Background(), "testuser")

	require.NoError(t, err)
	assert.Equal(t, want.UserID, got.UserID)
	assert.Equal(t, want.PasswordHash, got.PasswordHash)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFindUserByUsername_NotFound(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery("SELECT .+ FROM users").
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows(userColumns))

	_, err := repo.FindUserByUsername(context.Background(), "ghost")

	assert.ErrorIs(t, err, ErrNoUserWasFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFindUserByUsername_ScanError(t *testing.T) {
	repo, mock := newMockRepository(t)

	// a non-numeric user_id makes the int64 scan fail
	rows := sqlmock.NewRows(userColumns).
		AddRow("not-a-number", "testuser", "testuser@example.com", "$2a$04$hash", time.Now())

	mock.ExpectQuery("SELECT .+ FROM users").
		WithArgs("testuser").
		WillReturnRows(rows)

	_, err := repo.FindUserByUsername(context.Background(), "testuser")

	assert.ErrorIs(t, err, ErrScanningRow)
	require.NoError(t, mock.ExpectationsWereMet())
}
