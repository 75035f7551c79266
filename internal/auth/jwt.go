package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/checkdaily/checkdaily/models"
)

// Token verification failure reasons. Verify collapses the low-level
// golang-jwt errors into these three sentinels so that callers can match
// with [errors.Is] without importing the JWT library.
var (
	// ErrTokenMalformed is returned when the token string cannot be split
	// or parsed into header, payload, and signature.
	ErrTokenMalformed = errors.New("token is malformed")

	// ErrTokenBadSignature is returned when the recomputed signature over
	// the payload does not match the one embedded in the token.
	ErrTokenBadSignature = errors.New("token signature is invalid")

	// ErrTokenExpired is returned when the token's "exp" claim lies in the
	// past, even if the signature is otherwise valid.
	ErrTokenExpired = errors.New("token is expired")
)

// TokenCodec issues and verifies HMAC-SHA256 signed JWT tokens.
//
// The signing key, issuer, and token lifetime are fixed at construction
// time and shared read-only by all concurrent requests. The signature
// covers the whole payload including the expiry claim, so no client-side
// tampering can extend a token past its original expiration.
type TokenCodec struct {
	signKey  []byte
	issuer   string
	duration time.Duration
}

// NewTokenCodec constructs a TokenCodec with the given signing key, issuer
// ("iss" claim), and token lifetime. The key must never be logged.
func NewTokenCodec(signKey, issuer string, duration time.Duration) *TokenCodec {
	return &TokenCodec{
		signKey:  []byte(signKey),
		issuer:   issuer,
		duration: duration,
	}
}

// Issue creates a signed token for the given user.
//
// The token includes the following standard claims:
//   - Issuer    (iss): the configured issuer
//   - Subject   (sub): the user ID encoded as a base-10 string
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus the configured duration
//
// Returns an error if the user ID is not positive or signing fails.
func (c *TokenCodec) Issue(userID int64) (models.Token, error) {
	if userID <= 0 {
		return models.Token{}, errors.New("invalid user id for issuing token")
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    c.issuer,
		Subject:   strconv.FormatInt(userID, 10),
		ExpiresAt: jwt.NewNumericDate(now.Add(c.duration)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(c.signKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{Token: token, SignedString: tokenString, UserID: userID}, nil
}

// Verify validates the given token string and extracts its claims.
//
// Validation includes:
//   - Signature verification with the configured sign key (HS256 only)
//   - Issuer (iss) claim check against the configured issuer
//   - Expiration (exp) claim check
//   - Subject (sub) claim presence and conversion to an int64 user ID
//
// Failures are reported as [ErrTokenExpired], [ErrTokenBadSignature], or
// [ErrTokenMalformed]; an issuer mismatch or missing subject surfaces as
// ErrTokenMalformed since such a token was never issued by this codec.
func (c *TokenCodec) Verify(tokenString string) (models.Token, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.Token{}, func(token *jwt.Token) (any, error) {
		return c.signKey, nil
	}, jwt.WithIssuer(c.issuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return models.Token{}, classifyJWTError(err)
	}

	userIDStr, err := token.Claims.GetSubject()
	if err != nil || userIDStr == "" {
		return models.Token{}, ErrTokenMalformed
	}

	userID, err := strconv.ParseInt(userIDStr, 10, 64)
	if err != nil {
		return models.Token{}, ErrTokenMalformed
	}

	return models.Token{Token: token, UserID: userID}, nil
}

// classifyJWTError maps golang-jwt parse errors onto the package sentinels.
// Expiry is checked before signature problems because jwt joins multiple
// validation errors into one.
func classifyJWTError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrTokenExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return ErrTokenBadSignature
	default:
		return ErrTokenMalformed
	}
}
