package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user,
	// assigned by the database on insert.
	UserID int64 `json:"id"`

	// Username is the unique public name of the user.
	Username string `json:"username"`

	// Email is the unique login identifier of the user.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// This value MUST be a derived value, never plaintext,
	// and is never serialized into API responses.
	PasswordHash string `json:"-"`

	// DisplayName is an optional name shown in the client UI.
	DisplayName string `json:"display_name,omitempty"`

	// Bio is an optional free-form profile text.
	Bio string `json:"bio,omitempty"`

	// ProfilePictureURL is an optional avatar location.
	ProfilePictureURL string `json:"profile_picture_url,omitempty"`

	// CreatedAt is the timestamp when the user account was created.
	// Set once by the database at insert time.
	CreatedAt time.Time `json:"created_at"`
}

// PublicUser is the view of a user returned by the auth endpoints.
// It never carries the password hash or profile internals.
type PublicUser struct {
	UserID   int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Public returns the reduced user view safe for auth responses.
func (u User) Public() PublicUser {
	return PublicUser{
		UserID:   u.UserID,
		Username: u.Username,
		Email:    u.Email,
	}
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
