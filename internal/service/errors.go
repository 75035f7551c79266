package service

import "errors"

// Sentinel errors returned by the services. Handlers match them with
// [errors.Is] to choose the HTTP status and the (deliberately generic)
// client-facing message.
var (
	// ErrInvalidDataProvided is returned when a request is missing required
	// fields (empty username, email, or password).
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials is returned on login when the email is unknown
	// or the password is wrong. Both cases share one error on purpose, so
	// responses cannot be used to probe which accounts exist.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrTokenCreationFailed is returned when signing a new JWT fails.
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrInvalidYear is returned by the stats service when the requested
	// year lies outside the supported 1970..2100 range.
	ErrInvalidYear = errors.New("year must be between 1970 and 2100")
)
