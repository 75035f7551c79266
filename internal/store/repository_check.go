package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/checkdaily/checkdaily/internal/logger"
	"github.com/checkdaily/checkdaily/models"
)

var dayStatusColumns = []string{"id", "check_id", "date", "is_checked", "checked_at"}

// checkRepository is the SQL-backed implementation of [CheckRepository].
// It manages the "checks" and "day_statuses" tables. Every query is scoped
// by user_id so one user can never read or modify another user's checks.
type checkRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCheckRepository constructs a [CheckRepository] backed by the provided
// database connection and logger.
func NewCheckRepository(db *DB, logger *logger.Logger) CheckRepository {
	logger.Debug().Msg("creating check repository")
	return &checkRepository{
		db:     db,
		logger: logger,
	}
}

// CreateCheck inserts the check row and its pre-scheduled day statuses in a
// single transaction, so a half-created check is never observable.
func (r *checkRepository) CreateCheck(ctx context.Context, check models.Check) (models.Check, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*checkRepository.CreateCheck").Msg("error beginning transaction")
		return models.Check{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	query, args, err := r.db.sb.
		Insert(check.TableName()).
		Columns("id", "user_id", "name", "count").
		Values(check.ID, check.UserID, check.Name, check.Count).
		Suffix(returningCheckColumns).
		ToSql()
	if err != nil {
		return models.Check{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var created models.Check
	row := tx.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&created.ID, &created.UserID, &created.Name, &created.Count, &created.CreatedAt); err != nil {
		log.Err(err).Str("func", "*checkRepository.CreateCheck").Msg("error inserting check")
		return models.Check{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if len(check.Days) > 0 {
		if err := insertDayStatuses(ctx, tx, r.db.sb, check.Days); err != nil {
			log.Err(err).Str("func", "*checkRepository.CreateCheck").Msg("error inserting day statuses")
			return models.Check{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return models.Check{}, fmt.Errorf("%w: %w", ErrCommittingTransaction, err)
	}

	created.Days = check.Days
	return created, nil
}

// execer covers *sql.DB and *sql.Tx for helpers shared between the two.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func insertDayStatuses(ctx context.Context, db execer, sb sq.StatementBuilderType, days []models.DayStatus) error {
	insert := sb.
		Insert(models.DayStatus{}.TableName()).
		Columns(dayStatusColumns...)
	for _, day := range days {
		insert = insert.Values(day.ID, day.CheckID, day.Date, day.IsChecked, day.CheckedAt)
	}

	query, args, err := insert.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// FindCheckByID loads a single check with its day statuses sorted by date.
// Returns [ErrCheckNotFound] when no check matches the id and owner.
func (r *checkRepository) FindCheckByID(ctx context.Context, userID int64, checkID string) (models.Check, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.sb.
		Select("id", "user_id", "name", "count", "created_at").
		From(models.Check{}.TableName()).
		Where(map[string]any{"id": checkID, "user_id": userID}).
		ToSql()
	if err != nil {
		return models.Check{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var check models.Check
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&check.ID, &check.UserID, &check.Name, &check.Count, &check.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Check{}, ErrCheckNotFound
		}
		log.Err(err).Str("func", "*checkRepository.FindCheckByID").Msg("error: scanning error")
		return models.Check{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	days, err := r.loadDayStatuses(ctx, []string{check.ID})
	if err != nil {
		return models.Check{}, err
	}
	check.Days = days[check.ID]

	return check, nil
}

// FindChecksByUser loads every check of the user, each with its day
// statuses sorted by date.
func (r *checkRepository) FindChecksByUser(ctx context.Context, userID int64) ([]models.Check, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.sb.
		Select("id", "user_id", "name", "count", "created_at").
		From(models.Check{}.TableName()).
		Where(map[string]any{"user_id": userID}).
		OrderBy("created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*checkRepository.FindChecksByUser").Msg("error querying checks")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	checks := make([]models.Check, 0)
	checkIDs := make([]string, 0)
	for rows.Next() {
		var check models.Check
		if err := rows.Scan(&check.ID, &check.UserID, &check.Name, &check.Count, &check.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		checks = append(checks, check)
		checkIDs = append(checkIDs, check.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	if len(checkIDs) == 0 {
		return checks, nil
	}

	days, err := r.loadDayStatuses(ctx, checkIDs)
	if err != nil {
		return nil, err
	}
	for i := range checks {
		checks[i].Days = days[checks[i].ID]
	}

	return checks, nil
}

// loadDayStatuses fetches the day statuses of the given checks, grouped by
// check id and sorted by date.
func (r *checkRepository) loadDayStatuses(ctx context.Context, checkIDs []string) (map[string][]models.DayStatus, error) {
	query, args, err := r.db.sb.
		Select(dayStatusColumns...).
		From(models.DayStatus{}.TableName()).
		Where(sq.Eq{"check_id": checkIDs}).
		OrderBy("date").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	days := make(map[string][]models.DayStatus, len(checkIDs))
	for rows.Next() {
		var day models.DayStatus
		if err := rows.Scan(&day.ID, &day.CheckID, &day.Date, &day.IsChecked, &day.CheckedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		days[day.CheckID] = append(days[day.CheckID], day)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return days, nil
}

// UpdateCheck applies a partial update (name and/or count) to a check owned
// by the user. Returns [ErrCheckNotFound] when the row does not exist.
func (r *checkRepository) UpdateCheck(ctx context.Context, userID int64, checkID string, patch models.CheckUpdateRequest) error {
	log := logger.FromContext(ctx)

	update := r.db.sb.Update(models.Check{}.TableName())
	changed := false

	if patch.Name != nil {
		update = update.Set("name", *patch.Name)
		changed = true
	}
	if patch.Count != nil {
		update = update.Set("count", *patch.Count)
		changed = true
	}

	if !changed {
		return nil
	}

	query, args, err := update.
		Where(map[string]any{"id": checkID, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*checkRepository.UpdateCheck").Msg("error updating check")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrCheckNotFound
	}

	return nil
}

// DeleteCheck removes the check row; its day statuses are removed by the
// ON DELETE CASCADE constraint. Returns [ErrCheckNotFound] when the row
// does not exist for this user.
func (r *checkRepository) DeleteCheck(ctx context.Context, userID int64, checkID string) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.sb.
		Delete(models.Check{}.TableName()).
		Where(map[string]any{"id": checkID, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*checkRepository.DeleteCheck").Msg("error deleting check")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrCheckNotFound
	}

	return nil
}

// AddDayStatuses inserts the given day status rows.
func (r *checkRepository) AddDayStatuses(ctx context.Context, days []models.DayStatus) error {
	if len(days) == 0 {
		return nil
	}
	return insertDayStatuses(ctx, r.db, r.db.sb, days)
}

// RemoveDayStatuses deletes the given day status rows of a check.
func (r *checkRepository) RemoveDayStatuses(ctx context.Context, checkID string, dayIDs []string) error {
	if len(dayIDs) == 0 {
		return nil
	}

	query, args, err := r.db.sb.
		Delete(models.DayStatus{}.TableName()).
		Where(sq.Eq{"check_id": checkID, "id": dayIDs}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// MarkDayChecked flags a day status as completed at the given moment.
func (r *checkRepository) MarkDayChecked(ctx context.Context, checkID, dayID string, checkedAt time.Time) error {
	query, args, err := r.db.sb.
		Update(models.DayStatus{}.TableName()).
		Set("is_checked", true).
		Set("checked_at", checkedAt).
		Where(map[string]any{"id": dayID, "check_id": checkID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("unexpected DB error: %w", err)
	}
	if affected == 0 {
		return ErrCheckNotFound
	}

	return nil
}

// CountCheckedPerDay aggregates completed day statuses per calendar day over
// all checks of the user within [from, to). Days without completions are
// absent from the result.
func (r *checkRepository) CountCheckedPerDay(ctx context.Context, userID int64, from, to time.Time) ([]models.DayCheckCount, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.sb.
		Select("d.date", "COUNT(*)").
		From(models.DayStatus{}.TableName() + " d").
		Join(models.Check{}.TableName() + " c ON c.id = d.check_id").
		Where(sq.Eq{"c.user_id": userID, "d.is_checked": true}).
		Where(sq.GtOrEq{"d.date": from}).
		Where(sq.Lt{"d.date": to}).
		GroupBy("d.date").
		OrderBy("d.date").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*checkRepository.CountCheckedPerDay").Msg("error querying activity counts")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	counts := make([]models.DayCheckCount, 0)
	for rows.Next() {
		var c models.DayCheckCount
		if err := rows.Scan(&c.Date, &c.Count); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		counts = append(counts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return counts, nil
}
