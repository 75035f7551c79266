package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/checkdaily/checkdaily/internal/service"
	"github.com/checkdaily/checkdaily/internal/store"
	"github.com/checkdaily/checkdaily/internal/utils"
	"github.com/checkdaily/checkdaily/models"
)

// fakeAuthService drives the register/login handlers in isolation.
type fakeAuthService struct {
	service.AuthService

	registerFn func(ctx context.Context, req models.RegisterRequest) (models.Token, models.User, error)
	loginFn    func(ctx context.Context, req models.LoginRequest) (models.Token, models.User, error)
}

func (f *fakeAuthService) Register(ctx context.Context, req models.RegisterRequest) (models.Token, models.User, error) {
	return f.registerFn(ctx, req)
}

func (f *fakeAuthService) Login(ctx context.Context, req models.LoginRequest) (models.Token, models.User, error) {
	return f.loginFn(ctx, req)
}

func postJSON(t *testing.T, handler http.HandlerFunc, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req = injectNopLogger(req)
	rr := httptest.NewRecorder()
	handler(rr, req)
	return rr
}

func TestRegisterHandler_Created(t *testing.T) {
	user := models.User{UserID: 1, Username: "john_doe", Email: "john@example.com"}
	h := newHandlerWithAuthService(&fakeAuthService{
		registerFn: func(_ context.Context, req models.RegisterRequest) (models.Token, models.User, error) {
			assert.Equal(t, "john_doe", req.Username)
			return models.Token{SignedString: "signed-token"}, user, nil
		},
	})

	rr := postJSON(t, h.register, "/api/v1/auth/register",
		`{"username":"john_doe","email":"john@example.com","password":"s3cret"}`)

	require.Equal(t, http.StatusCreated, rr.Code)

	var resp models.AuthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "signed-token", resp.Token)
	require.NotNil(t, resp.User)
	assert.Equal(t, int64(1), resp.User.UserID)
}

func TestRegisterHandler_ResponseNeverLeaksPasswordHash(t *testing.T) {
	user := models.User{UserID: 1, Username: "john_doe", Email: "john@example.com", PasswordHash: "$2a$10$hash"}
	h := newHandlerWithAuthService(&fakeAuthService{
		registerFn: func(_ context.Context, _ models.RegisterRequest) (models.Token, models.User, error) {
			return models.Token{SignedString: "signed-token"}, user, nil
		},
	})

	rr := postJSON(t, h.register, "/api/v1/auth/register",
		`{"username":"john_doe","email":"john@example.com","password":"s3cret"}`)

	require.Equal(t, http.StatusCreated, rr.Code)
	assert.NotContains(t, rr.Body.String(), "$2a$10$hash")
	assert.NotContains(t, rr.Body.String(), "password")
}

func TestRegisterHandler_ErrorStatuses(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		serviceErr     error
		expectedStatus int
	}{
		{
			name:           "invalid JSON",
			body:           "{not json",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing fields",
			body:           `{"username":"john_doe"}`,
			serviceErr:     service.ErrInvalidDataProvided,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "duplicate identity",
			body:           `{"username":"john_doe","email":"john@example.com","password":"s3cret"}`,
			serviceErr:     store.ErrUserAlreadyExists,
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "unexpected failure",
			body:           `{"username":"john_doe","email":"john@example.com","password":"s3cret"}`,
			serviceErr:     assert.AnError,
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHandlerWithAuthService(&fakeAuthService{
				registerFn: func(_ context.Context, _ models.RegisterRequest) (models.Token, models.User, error) {
					return models.Token{}, models.User{}, tt.serviceErr
				},
			})

			rr := postJSON(t, h.register, "/api/v1/auth/register", tt.body)

			assert.Equal(t, tt.expectedStatus, rr.Code)

			var resp models.ErrorResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
			assert.False(t, resp.Success)
			assert.NotEmpty(t, resp.Message)
		})
	}
}

func TestRegisterHandler_ConflictMessageNamesNoField(t *testing.T) {
	h := newHandlerWithAuthService(&fakeAuthService{
		registerFn: func(_ context.Context, _ models.RegisterRequest) (models.Token, models.User, error) {
			return models.Token{}, models.User{}, store.ErrUserAlreadyExists
		},
	})

	rr := postJSON(t, h.register, "/api/v1/auth/register",
		`{"username":"john_doe","email":"john@example.com","password":"s3cret"}`)

	require.Equal(t, http.StatusConflict, rr.Code)
	body := strings.ToLower(rr.Body.String())
	assert.NotContains(t, body, "email")
	assert.NotContains(t, body, "username")
}

func TestLoginHandler_OK(t *testing.T) {
	user := models.User{UserID: 1, Username: "john_doe", Email: "john@example.com"}
	h := newHandlerWithAuthService(&fakeAuthService{
		loginFn: func(_ context.Context, req models.LoginRequest) (models.Token, models.User, error) {
			assert.Equal(t, "john@example.com", req.Email)
			return models.Token{SignedString: "signed-token"}, user, nil
		},
	})

	rr := postJSON(t, h.login, "/api/v1/auth/login",
		`{"email":"john@example.com","password":"s3cret"}`)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp models.AuthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "signed-token", resp.Token)
}

func TestLoginHandler_InvalidCredentials(t *testing.T) {
	h := newHandlerWithAuthService(&fakeAuthService{
		loginFn: func(_ context.Context, _ models.LoginRequest) (models.Token, models.User, error) {
			return models.Token{}, models.User{}, service.ErrInvalidCredentials
		},
	})

	rr := postJSON(t, h.login, "/api/v1/auth/login",
		`{"email":"john@example.com","password":"wrong"}`)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestMeHandler_ReturnsContextUser(t *testing.T) {
	h := newHandlerWithAuthService(nil)

	user := models.User{UserID: 42, Username: "john_doe", Email: "john@example.com"}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	req = injectNopLogger(req)
	req = req.WithContext(context.WithValue(req.Context(), utils.UserCtxKey, user))
	rr := httptest.NewRecorder()

	h.me(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp models.MeResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, int64(42), resp.UserID)
	assert.Equal(t, "john_doe", resp.Username)
	assert.Equal(t, "john@example.com", resp.Email)
}

func TestMeHandler_NoUserInContext(t *testing.T) {
	h := newHandlerWithAuthService(nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	req = injectNopLogger(req)
	rr := httptest.NewRecorder()

	h.me(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
