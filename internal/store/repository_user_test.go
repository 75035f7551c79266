package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/checkdaily/checkdaily/internal/logger"
	"github.com/checkdaily/checkdaily/models"
)

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	repo := &userRepository{
		db: &DB{
			DB:     db,
			Driver: "pgx",
			sb:     sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
			logger: l,
		},
		logger: l,
	}
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func userRows(u models.User) *sqlmock.Rows {
	return sqlmock.
		NewRows(userColumns).
		AddRow(u.UserID, u.Username, u.Email, u.PasswordHash, u.DisplayName, u.Bio, u.ProfilePictureURL, u.CreatedAt)
}

func TestCreateUser_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{
		Username:     "john_doe",
		Email:        "john@example.com",
		PasswordHash: "$2a$10$hash",
	}

	stored := user
	stored.UserID = 1
	stored.CreatedAt = time.Now()

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(user.Username, user.Email, user.PasswordHash).
		WillReturnRows(userRows(stored))

	created, err := repo.CreateUser(ctx, user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.UserID != 1 {
		t.Errorf("expected UserID=1, got %d", created.UserID)
	}
	if created.Email != user.Email {
		t.Errorf("expected email %s, got %s", user.Email, created.Email)
	}
}

func TestCreateUser_UniqueViolation(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{Username: "john_doe", Email: "john@example.com"}

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.CreateUser(ctx, user)
	if !errors.Is(err, ErrUserAlreadyExists) {
		t.Fatalf("expected ErrUserAlreadyExists, got %v", err)
	}
}

func TestCreateUser_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{Username: "john_doe"}

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(errors.New("db network error"))

	_, err := repo.CreateUser(ctx, user)
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

func TestFindUserByEmail_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	stored := models.User{
		UserID:       7,
		Username:     "john_doe",
		Email:        "john@example.com",
		PasswordHash: "$2a$10$hash",
		CreatedAt:    time.Now(),
	}

	mock.ExpectQuery("SELECT .+ FROM users").
		WithArgs(stored.Email).
		WillReturnRows(userRows(stored))

	found, err := repo.FindUserByEmail(ctx, stored.Email)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.UserID != stored.UserID {
		t.Errorf("expected UserID=%d, got %d", stored.UserID, found.UserID)
	}
}

func TestFindUserByEmail_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT .+ FROM users").
		WithArgs("missing@example.com").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindUserByEmail(context.Background(), "missing@example.com")
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestFindUserByID_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT .+ FROM users").
		WithArgs(int64(42)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindUserByID(context.Background(), 42)
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUpdateUser_PartialPatch(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	bio := "building habits"
	stored := models.User{
		UserID:    7,
		Username:  "john_doe",
		Email:     "john@example.com",
		Bio:       bio,
		CreatedAt: time.Now(),
	}

	mock.ExpectQuery("UPDATE users SET bio").
		WithArgs(bio, int64(7)).
		WillReturnRows(userRows(stored))

	updated, err := repo.UpdateUser(ctx, 7, models.ProfileUpdateRequest{Bio: &bio})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Bio != bio {
		t.Errorf("expected bio %q, got %q", bio, updated.Bio)
	}
}

func TestUpdateUser_EmptyPatchFallsBackToFind(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	stored := models.User{UserID: 7, Username: "john_doe", Email: "john@example.com", CreatedAt: time.Now()}

	// no fields set → repository reads the current row instead of updating
	mock.ExpectQuery("SELECT .+ FROM users").
		WithArgs(int64(7)).
		WillReturnRows(userRows(stored))

	updated, err := repo.UpdateUser(context.Background(), 7, models.ProfileUpdateRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Username != stored.Username {
		t.Errorf("expected username %s, got %s", stored.Username, updated.Username)
	}
}

func TestUpdateUser_UniqueViolation(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	email := "taken@example.com"

	mock.ExpectQuery("UPDATE users SET email").
		WithArgs(email, int64(7)).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.UpdateUser(context.Background(), 7, models.ProfileUpdateRequest{Email: &email})
	if !errors.Is(err, ErrUserAlreadyExists) {
		t.Fatalf("expected ErrUserAlreadyExists, got %v", err)
	}
}

func TestDeleteUser_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM users").
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DeleteUser(context.Background(), 7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteUser_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM users").
		WithArgs(int64(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteUser(context.Background(), 404)
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
