package service

import (
	"context"

	"github.com/checkdaily/checkdaily/models"
)

// AuthService orchestrates the credential lifecycle: registration, login,
// token issuance, and resolving a bearer token back to a user.
type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.Token, models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.Token, models.User, error)

	// Authenticate verifies a raw bearer token and resolves its subject to
	// a live user record. Any token or lookup failure is returned as-is for
	// the middleware to collapse into a single 401 response.
	Authenticate(ctx context.Context, tokenString string) (models.User, error)
}

// CheckService implements the habit-tracking operations over a user's
// checks and their day statuses.
type CheckService interface {
	ListChecks(ctx context.Context, userID int64) ([]models.CheckResponse, error)
	GetCheck(ctx context.Context, userID int64, checkID string) (models.CheckResponse, error)
	CreateCheck(ctx context.Context, userID int64, req models.CheckCreateRequest) (models.CheckResponse, error)
	UpdateCheck(ctx context.Context, userID int64, checkID string, req models.CheckUpdateRequest) (models.CheckResponse, error)
	DeleteCheck(ctx context.Context, userID int64, checkID string) error
	CheckToday(ctx context.Context, userID int64, checkID string) (models.CheckResponse, error)
}

// ProfileService manages the user's own profile and account lifecycle.
type ProfileService interface {
	Profile(ctx context.Context, userID int64) (models.User, error)
	UpdateProfile(ctx context.Context, userID int64, req models.ProfileUpdateRequest) (models.User, error)
	DeleteAccount(ctx context.Context, userID int64, password string) error
}

// StatsService aggregates activity data for the client's heat-map views.
type StatsService interface {
	YearlyActivity(ctx context.Context, userID int64, year int) (models.YearActivityResponse, error)
}
