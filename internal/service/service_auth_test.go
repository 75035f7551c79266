package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/checkdaily/checkdaily/internal/auth"
	"github.com/checkdaily/checkdaily/internal/logger"
	"github.com/checkdaily/checkdaily/internal/mock"
	"github.com/checkdaily/checkdaily/internal/store"
	"github.com/checkdaily/checkdaily/models"
)

func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (AuthService, *mock.MockUserRepository) {
	t.Helper()

	users := mock.NewMockUserRepository(ctrl)
	hasher := auth.NewHasher(bcrypt.MinCost)
	codec := auth.NewTokenCodec("test-sign-key", "checkdaily", time.Hour)

	svc := NewAuthService(users, hasher, codec, logger.Nop())

	return svc, users
}

func TestRegister_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, users := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	req := models.RegisterRequest{
		Username: "john_doe",
		Email:    "john@example.com",
		Password: "s3cret",
	}

	users.EXPECT().
		CreateUser(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, u models.User) (models.User, error) {
			// the service must store a hash, never the raw password
			assert.NotEqual(t, req.Password, u.PasswordHash)
			assert.NotEmpty(t, u.PasswordHash)

			u.UserID = 1
			u.CreatedAt = time.Now()
			return u, nil
		})

	token, user, err := svc.Register(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.UserID)
	assert.NotEmpty(t, token.SignedString)
}

func TestRegister_EmptyFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	tests := []models.RegisterRequest{
		{},
		{Username: "john_doe"},
		{Username: "john_doe", Email: "john@example.com"},
		{Email: "john@example.com", Password: "s3cret"},
	}

	for _, req := range tests {
		_, _, err := svc.Register(ctx, req)
		assert.True(t, errors.Is(err, ErrInvalidDataProvided), "request %+v: got %v", req, err)
	}
}

func TestRegister_DuplicateIdentity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, users := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	users.EXPECT().
		CreateUser(ctx, gomock.Any()).
		Return(models.User{}, store.ErrUserAlreadyExists)

	_, _, err := svc.Register(ctx, models.RegisterRequest{
		Username: "john_doe",
		Email:    "john@example.com",
		Password: "s3cret",
	})
	assert.True(t, errors.Is(err, store.ErrUserAlreadyExists), "got %v", err)
}

func TestLogin_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, users := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	hasher := auth.NewHasher(bcrypt.MinCost)
	hash, err := hasher.HashPassword("s3cret")
	require.NoError(t, err)

	stored := models.User{
		UserID:       1,
		Username:     "john_doe",
		Email:        "john@example.com",
		PasswordHash: hash,
	}

	users.EXPECT().
		FindUserByEmail(ctx, stored.Email).
		Return(stored, nil)

	token, user, err := svc.Login(ctx, models.LoginRequest{Email: stored.Email, Password: "s3cret"})
	require.NoError(t, err)
	assert.Equal(t, stored.UserID, user.UserID)
	assert.NotEmpty(t, token.SignedString)
}

func TestLogin_UnknownEmailAndWrongPasswordLookTheSame(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, users := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	hasher := auth.NewHasher(bcrypt.MinCost)
	hash, err := hasher.HashPassword("s3cret")
	require.NoError(t, err)

	users.EXPECT().
		FindUserByEmail(ctx, "missing@example.com").
		Return(models.User{}, store.ErrUserNotFound)

	_, _, unknownEmailErr := svc.Login(ctx, models.LoginRequest{Email: "missing@example.com", Password: "s3cret"})

	users.EXPECT().
		FindUserByEmail(ctx, "john@example.com").
		Return(models.User{UserID: 1, Email: "john@example.com", PasswordHash: hash}, nil)

	_, _, wrongPasswordErr := svc.Login(ctx, models.LoginRequest{Email: "john@example.com", Password: "not-it"})

	assert.True(t, errors.Is(unknownEmailErr, ErrInvalidCredentials))
	assert.True(t, errors.Is(wrongPasswordErr, ErrInvalidCredentials))
	assert.Equal(t, unknownEmailErr, wrongPasswordErr)
}

func TestLogin_EmptyFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	_, _, err := svc.Login(ctx, models.LoginRequest{Email: "john@example.com"})
	assert.True(t, errors.Is(err, ErrInvalidDataProvided))

	_, _, err = svc.Login(ctx, models.LoginRequest{Password: "s3cret"})
	assert.True(t, errors.Is(err, ErrInvalidDataProvided))
}

func TestAuthenticate_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, users := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	codec := auth.NewTokenCodec("test-sign-key", "checkdaily", time.Hour)
	token, err := codec.Issue(1)
	require.NoError(t, err)

	stored := models.User{UserID: 1, Username: "john_doe", Email: "john@example.com"}

	users.EXPECT().
		FindUserByID(ctx, int64(1)).
		Return(stored, nil)

	user, err := svc.Authenticate(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, stored.UserID, user.UserID)
}

func TestAuthenticate_BadToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	_, err := svc.Authenticate(ctx, "not-a-token")
	assert.True(t, errors.Is(err, auth.ErrTokenMalformed), "got %v", err)

	otherCodec := auth.NewTokenCodec("different-key", "checkdaily", time.Hour)
	token, issueErr := otherCodec.Issue(1)
	require.NoError(t, issueErr)

	_, err = svc.Authenticate(ctx, token.SignedString)
	assert.True(t, errors.Is(err, auth.ErrTokenBadSignature), "got %v", err)
}

func TestAuthenticate_DeletedUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, users := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	codec := auth.NewTokenCodec("test-sign-key", "checkdaily", time.Hour)
	token, err := codec.Issue(9)
	require.NoError(t, err)

	users.EXPECT().
		FindUserByID(ctx, int64(9)).
		Return(models.User{}, store.ErrUserNotFound)

	_, err = svc.Authenticate(ctx, token.SignedString)
	assert.True(t, errors.Is(err, store.ErrUserNotFound), "got %v", err)
}
