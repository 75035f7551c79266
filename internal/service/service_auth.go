package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/checkdaily/checkdaily/internal/auth"
	"github.com/checkdaily/checkdaily/internal/logger"
	"github.com/checkdaily/checkdaily/internal/store"
	"github.com/checkdaily/checkdaily/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and token
// resolution using a UserRepository for persistence, bcrypt for password
// hashing, and the HS256 token codec for the session tokens.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// hasher derives and verifies bcrypt password hashes.
	hasher *auth.Hasher

	// codec issues and verifies the signed session tokens.
	codec *auth.TokenCodec

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository, password hasher, and token codec.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, hasher *auth.Hasher, codec *auth.TokenCodec, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		codec:          codec,
		logger:         logger,
	}
}

// Register creates a new user account and issues its first session token.
//
// It validates that username, email, and password are all non-empty, hashes
// the password, and delegates persistence to the UserRepository. The
// uniqueness check on username and email happens inside the single INSERT,
// so concurrent registrations of the same identity cannot both succeed.
//
// Returns the issued token and the persisted user (with a server-assigned
// UserID) or:
//   - ErrInvalidDataProvided if any field is empty.
//   - store.ErrUserAlreadyExists if the username or email is taken.
//   - ErrTokenCreationFailed (wrapped) if signing the token fails.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.Token, models.User, error) {
	log := logger.FromContext(ctx)

	if req.Username == "" || req.Email == "" || req.Password == "" {
		log.Error().Str("username", req.Username).Str("email", req.Email).Msg("invalid registration data provided")
		return models.Token{}, models.User{}, ErrInvalidDataProvided
	}

	passwordHash, err := a.hasher.HashPassword(req.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.Token{}, models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: passwordHash,
	})
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("user creation ended with error")
		return models.Token{}, models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	token, err := a.codec.Issue(registeredUser.UserID)
	if err != nil {
		log.Err(err).Int64("id", registeredUser.UserID).Msg("token creation failed")
		return models.Token{}, models.User{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, registeredUser, nil
}

// Login authenticates an existing user and issues a fresh session token.
//
// The account lookup by email and the password comparison both collapse
// into ErrInvalidCredentials, so the response does not reveal whether the
// email is registered.
//
// Returns the issued token and the authenticated user record or:
//   - ErrInvalidDataProvided if email or password is empty.
//   - ErrInvalidCredentials if the email is unknown or the password wrong.
//   - ErrTokenCreationFailed (wrapped) if signing the token fails.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.Token, models.User, error) {
	log := logger.FromContext(ctx)

	if req.Email == "" || req.Password == "" {
		log.Error().Str("email", req.Email).Msg("invalid login data provided")
		return models.Token{}, models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Warn().Str("email", req.Email).Msg("login attempt for unknown email")
			return models.Token{}, models.User{}, ErrInvalidCredentials
		}
		log.Err(err).Str("email", req.Email).Msg("user search by email failed")
		return models.Token{}, models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !a.hasher.VerifyPassword(req.Password, foundUser.PasswordHash) {
		log.Warn().Int64("id", foundUser.UserID).Msg("wrong password")
		return models.Token{}, models.User{}, ErrInvalidCredentials
	}

	token, err := a.codec.Issue(foundUser.UserID)
	if err != nil {
		log.Err(err).Int64("id", foundUser.UserID).Msg("token creation failed")
		return models.Token{}, models.User{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, foundUser, nil
}

// Authenticate verifies a raw bearer token and resolves its subject claim
// to a live user record.
//
// The token error (malformed, bad signature, expired) or a missing user
// (account deleted after issuance) is returned unwrapped; the middleware
// collapses every failure into one generic 401 so no internal reason leaks
// to the caller.
func (a *authService) Authenticate(ctx context.Context, tokenString string) (models.User, error) {
	log := logger.FromContext(ctx)

	token, err := a.codec.Verify(tokenString)
	if err != nil {
		return models.User{}, err
	}

	user, err := a.userRepository.FindUserByID(ctx, token.UserID)
	if err != nil {
		log.Warn().Int64("id", token.UserID).Msg("valid token for missing user")
		return models.User{}, err
	}

	return user, nil
}
