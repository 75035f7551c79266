package models

import "time"

// AuthResponse is the envelope returned by the register and login endpoints.
// On failure only Success and Message are populated, so internal failure
// reasons never leak to the caller.
type AuthResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Token   string      `json:"token,omitempty"`
	User    *PublicUser `json:"user,omitempty"`
}

// ErrorResponse is the generic failure payload used by every endpoint.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// DeleteAccountResponse confirms a successful account deletion.
type DeleteAccountResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// MeResponse is the body of GET /api/v1/auth/me.
type MeResponse struct {
	UserID    int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// ProfileResponse is the body of GET/PUT /api/v1/user/settings.
type ProfileResponse struct {
	UserID            int64     `json:"id"`
	Username          string    `json:"username"`
	Email             string    `json:"email"`
	DisplayName       string    `json:"display_name,omitempty"`
	Bio               string    `json:"bio,omitempty"`
	ProfilePictureURL string    `json:"profile_picture_url,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
}

// CheckResponse is a check enriched with the stats the client renders:
// how many calendar days have passed since creation and what share of the
// scheduled days is complete.
type CheckResponse struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	Count      int         `json:"count"`
	CreatedAt  time.Time   `json:"created_at"`
	PassedDays int         `json:"passed_days"`
	Percentage int         `json:"percentage"`
	Days       []DayStatus `json:"days"`
}

// CheckListResponse is the body of GET /api/v1/checks.
type CheckListResponse struct {
	Checks []CheckResponse `json:"checks"`
}

// YearDayActivity is one calendar day of the yearly activity heat map.
type YearDayActivity struct {
	Date           string `json:"date"`
	CompletedCount int    `json:"completed_count"`
}

// YearActivityResponse is the body of GET /api/v1/stats/yearly-activity.
// Days contains an entry for every day of the requested year.
type YearActivityResponse struct {
	Year     int               `json:"year"`
	MaxCount int               `json:"max_count"`
	Days     []YearDayActivity `json:"days"`
}
