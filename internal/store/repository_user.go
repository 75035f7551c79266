package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/checkdaily/checkdaily/internal/logger"
	"github.com/checkdaily/checkdaily/models"
)

// userColumns is the canonical column list scanned into models.User.
var userColumns = []string{
	"user_id", "username", "email", "password_hash",
	"display_name", "bio", "profile_picture_url", "created_at",
}

// userRepository is the SQL-backed implementation of [UserRepository].
// It handles user account creation, lookup, profile updates, and deletion
// against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// scanUser reads a full user row from a row scanner.
func scanUser(row interface{ Scan(dest ...any) error }) (models.User, error) {
	var u models.User
	err := row.Scan(
		&u.UserID, &u.Username, &u.Email, &u.PasswordHash,
		&u.DisplayName, &u.Bio, &u.ProfilePictureURL, &u.CreatedAt,
	)
	return u, err
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with server-assigned fields (UserID, CreatedAt).
//
// The INSERT returns all columns via a RETURNING clause, so the uniqueness
// check on username and email and the insert itself happen in one atomic
// statement: two concurrent registrations with the same email cannot both
// succeed.
//
// Error handling:
//   - uniqueness violation on username or email → [ErrUserAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.sb.
		Insert(user.TableName()).
		Columns("username", "email", "password_hash").
		Values(user.Username, user.Email, user.PasswordHash).
		Suffix(returningUserColumns).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error building insert query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if isUniqueViolation(err) {
			log.Warn().Str("pg_code", postgresError(err)).Msg("registration conflict on unique constraint")
			return models.User{}, ErrUserAlreadyExists
		}
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// FindUserByEmail retrieves the user record whose email matches the given
// value, or [ErrUserNotFound] if no such row exists.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findUserBy(ctx, "email", email)
}

// FindUserByID retrieves the user record with the given id, or
// [ErrUserNotFound] if no such row exists.
func (r *userRepository) FindUserByID(ctx context.Context, userID int64) (models.User, error) {
	return r.findUserBy(ctx, "user_id", userID)
}

func (r *userRepository) findUserBy(ctx context.Context, column string, value any) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.sb.
		Select(userColumns...).
		From(models.User{}.TableName()).
		Where(map[string]any{column: value}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.findUserBy").Msg("error building select query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	found, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "*userRepository.findUserBy").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

// UpdateUser applies a partial profile update and returns the updated user.
// Only non-nil fields in patch are written. A username or email collision
// with another account surfaces as [ErrUserAlreadyExists]; a missing user
// as [ErrUserNotFound].
func (r *userRepository) UpdateUser(ctx context.Context, userID int64, patch models.ProfileUpdateRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	update := r.db.sb.Update(models.User{}.TableName())
	changed := false

	if patch.Username != nil {
		update = update.Set("username", *patch.Username)
		changed = true
	}
	if patch.Email != nil {
		update = update.Set("email", *patch.Email)
		changed = true
	}
	if patch.DisplayName != nil {
		update = update.Set("display_name", *patch.DisplayName)
		changed = true
	}
	if patch.Bio != nil {
		update = update.Set("bio", *patch.Bio)
		changed = true
	}
	if patch.ProfilePictureURL != nil {
		update = update.Set("profile_picture_url", *patch.ProfilePictureURL)
		changed = true
	}

	if !changed {
		return r.FindUserByID(ctx, userID)
	}

	query, args, err := update.
		Where(map[string]any{"user_id": userID}).
		Suffix(returningUserColumns).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("error building update query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		switch {
		case isUniqueViolation(err):
			log.Warn().Str("pg_code", postgresError(err)).Msg("profile update conflict on unique constraint")
			return models.User{}, ErrUserAlreadyExists
		case errors.Is(err, sql.ErrNoRows):
			return models.User{}, ErrUserNotFound
		default:
			log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("error updating user")
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return updated, nil
}

// DeleteUser removes the user row; checks and day statuses are removed by
// the ON DELETE CASCADE constraints. Returns [ErrUserNotFound] when the row
// does not exist.
func (r *userRepository) DeleteUser(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.sb.
		Delete(models.User{}.TableName()).
		Where(map[string]any{"user_id": userID}).
		ToSql()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Msg("error building delete query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUser").Msg("error deleting user")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}
