package store

import (
	"context"
	"time"

	"github.com/checkdaily/checkdaily/models"
)

// UserRepository is the user directory consumed by the auth and profile
// services. Uniqueness of username and email is enforced atomically by the
// database constraints behind CreateUser and UpdateUser.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	UpdateUser(ctx context.Context, userID int64, patch models.ProfileUpdateRequest) (models.User, error)
	DeleteUser(ctx context.Context, userID int64) error
}

// CheckRepository persists checks and their per-day completion statuses.
type CheckRepository interface {
	CreateCheck(ctx context.Context, check models.Check) (models.Check, error)
	FindCheckByID(ctx context.Context, userID int64, checkID string) (models.Check, error)
	FindChecksByUser(ctx context.Context, userID int64) ([]models.Check, error)
	UpdateCheck(ctx context.Context, userID int64, checkID string, patch models.CheckUpdateRequest) error
	DeleteCheck(ctx context.Context, userID int64, checkID string) error

	AddDayStatuses(ctx context.Context, days []models.DayStatus) error
	RemoveDayStatuses(ctx context.Context, checkID string, dayIDs []string) error
	MarkDayChecked(ctx context.Context, checkID, dayID string, checkedAt time.Time) error

	CountCheckedPerDay(ctx context.Context, userID int64, from, to time.Time) ([]models.DayCheckCount, error)
}
