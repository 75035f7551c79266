package models

// RegisterRequest is the body of POST /api/v1/auth/register.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the body of POST /api/v1/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CheckCreateRequest is the body of POST /api/v1/checks.
type CheckCreateRequest struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// CheckUpdateRequest is the body of PUT /api/v1/checks/{id}.
// Only non-nil fields are applied (partial update).
type CheckUpdateRequest struct {
	Name  *string `json:"name,omitempty"`
	Count *int    `json:"count,omitempty"`
}

// ProfileUpdateRequest is the body of PUT /api/v1/user/settings.
// Only non-nil fields are applied. Username and Email must stay unique.
type ProfileUpdateRequest struct {
	Username          *string `json:"username,omitempty"`
	Email             *string `json:"email,omitempty"`
	DisplayName       *string `json:"display_name,omitempty"`
	Bio               *string `json:"bio,omitempty"`
	ProfilePictureURL *string `json:"profile_picture_url,omitempty"`
}

// DeleteAccountRequest is the body of DELETE /api/v1/user/account.
// The password re-confirmation is required before destroying the account.
type DeleteAccountRequest struct {
	Password string `json:"password"`
}
