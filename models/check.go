package models

import "time"

// Check is a habit tracked by a user: a named goal spanning Count days,
// each day represented by a DayStatus row.
type Check struct {
	// ID is a server-generated UUID string.
	ID string `json:"id"`

	// UserID is the owner of the check. Never accepted from the client;
	// always taken from the authenticated request context.
	UserID int64 `json:"-"`

	// Name is the user-facing title of the check.
	Name string `json:"name"`

	// Count is the number of scheduled days. Never negative.
	Count int `json:"count"`

	// CreatedAt is set by the database at insert time.
	CreatedAt time.Time `json:"created_at"`

	// Days holds the per-day completion statuses, sorted by date.
	Days []DayStatus `json:"days"`
}

// DayStatus records whether a single scheduled day of a check was completed.
type DayStatus struct {
	// ID is a server-generated UUID string.
	ID string `json:"id"`

	// CheckID references the owning check.
	CheckID string `json:"-"`

	// Date is the calendar day this status covers, truncated to midnight UTC.
	Date time.Time `json:"date"`

	// IsChecked reports whether the user completed this day.
	IsChecked bool `json:"is_checked"`

	// CheckedAt is the moment the day was marked complete, nil otherwise.
	CheckedAt *time.Time `json:"checked_at,omitempty"`
}

// DayCheckCount is an aggregation row: how many day statuses were completed
// on a single calendar day across all of a user's checks.
type DayCheckCount struct {
	Date  time.Time
	Count int
}

// TableName returns the database table for Check rows.
func (c Check) TableName() string {
	return "checks"
}

// TableName returns the database table for DayStatus rows.
func (d DayStatus) TableName() string {
	return "day_statuses"
}
