// SPDX-License-Identifier: Apache-2.0

package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkhalidov/go-identity-service/internal/logger"
	"github.com/mkhalidov/go-identity-service/internal/service"
	"github.com/mkhalidov/go-identity-service/internal/store"
	"github.com/mkhalidov/go-identity-service/models"
)

// ─────────────────────────────────────────────
// Mocks
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerUserFn func(ctx context.Context, user models.User, password string) (models.User, error)
	loginFn        func(ctx context.Context, username, password string) (models.User, error)
	createTokenFn  func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn   func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, user models.User, password string) (models.User, error) {
	return m.registerUserFn(ctx, user, password)
}

func (m *mockAuthService) Login(ctx context.Context, username, password string) (models.User, error) {
	return m.loginFn(ctx, username, password)
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return m.createTokenFn(ctx, user)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

// mockAppInfoService satisfies service.AppInfoService for handler wiring.
type mockAppInfoService struct {
	version string
}

func (m *mockAppInfoService) GetAppVersion(_ context.Context) string {
	return m.version
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newHandlerWithAuth builds a Handler with the given AuthService mock.
func newHandlerWithAuth(t *testing.T, auth service.AuthService) *Handler {
	t.Helper()
	svcs := &service.Services{
		AuthService:    auth,
		AppInfoService: &mockAppInfoService{version: "test"},
	}
	return NewHandler(svcs, logger.Nop())
}

// jsonBody serialises v to a JSON request body string.
func jsonBody(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// stubToken returns a models.Token with the given signed string.
func stubToken(signed string) models.Token {
	return models.Token{SignedString: signed}
}

var validRegisterRequest = models.RegisterRequest{
	Username: "testuser",
	Email:    "testuser@example.com",
	Password: "Test@1234",
}

// ─────────────────────────────────────────────
// register
// ─────────────────────────────────────────────

// TestRegister_Success verifies that a valid registration request results in
// 200 OK with a confirmation body and no token.
func TestRegister_Success(t *testing.T) {
	auth := &mockAuthService{
		registerUserFn: func(_ context.Context, u models.User, _ string) (models.User, error) {
			u.UserID = 1
			return u, nil
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/account/register", strings.NewReader(jsonBody(t, validRegisterRequest)))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.RegisterResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "User created successfully", resp.Result)
	assert.NotContains(t, rec.Body.String(), "Token")
}

// TestRegister_InvalidJSON verifies that a malformed request body results in
// 400 Bad Request.
func TestRegister_InvalidJSON(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})

	req := httptest.NewRequest(http.MethodPost, "/api/account/register", strings.NewReader("{invalid json}"))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid JSON was passed")
}

// TestRegister_DuplicateUsername verifies that a duplicate username surfaces
// the store's structured validation error with 400.
func TestRegister_DuplicateUsername(t *testing.T) {
	auth := &mockAuthService{
		registerUserFn: func(_ context.Context, _ models.User, _ string) (models.User, error) {
			return models.User{}, fmt.Errorf("user creation ended with error: %w", store.ErrUsernameAlreadyExists)
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/account/register", strings.NewReader(jsonBody(t, validRegisterRequest)))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp models.ValidationErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, "DuplicateUserName", resp.Errors[0].Code)
	assert.Contains(t, resp.Errors[0].Description, "testuser")
}

// TestRegister_InvalidData verifies that missing registration fields produce
// a structured validation error with 400.
func TestRegister_InvalidData(t *testing.T) {
	auth := &mockAuthService{
		registerUserFn: func(_ context.Context, _ models.User, _ string) (models.User, error) {
			return models.User{}, service.ErrInvalidDataProvided
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/account/register", strings.NewReader(`{"username":""}`))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp models.ValidationErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, "InvalidRegistrationData", resp.Errors[0].Code)
}

// TestRegister_UnexpectedError verifies that unknown failures map to 500.
func TestRegister_UnexpectedError(t *testing.T) {
	auth := &mockAuthService{
		registerUserFn: func(_ context.Context, _ models.User, _ string) (models.User, error) {
			return models.User{}, fmt.Errorf("user creation ended with error: %w", store.ErrExecutingQuery)
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/account/register", strings.NewReader(jsonBody(t, validRegisterRequest)))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// ─────────────────────────────────────────────
// login
// ─────────────────────────────────────────────

// TestLogin_Success verifies that valid credentials yield 200 with the
// signed token in the response body.
func TestLogin_Success(t *testing.T) {
	const signedToken = "signed.jwt.token"

	auth := &mockAuthService{
		loginFn: func(_ context.Context, username, _ string) (models.User, error) {
			return models.User{UserID: 1, Username: username}, nil
		},
		createTokenFn: func(_ context.Context, _ models.User) (models.Token, error) {
			return stubToken(signedToken), nil
		},
	}

	h := newHandlerWithAuth(t, auth)
	body := jsonBody(t, models.LoginRequest{Username: "testuser", Password: "Test@1234"})
	req := httptest.NewRequest(http.MethodPost, "/api/account/login", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, signedToken, resp.Token)
}

// TestLogin_InvalidJSON verifies that a malformed request body results in
// 400 Bad Request.
func TestLogin_InvalidJSON(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})

	req := httptest.NewRequest(http.MethodPost, "/api/account/login", strings.NewReader("{invalid json}"))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// TestLogin_Unauthorized_IdenticalResponses verifies that "unknown user" and
// "wrong password" produce byte-identical responses: same 401 status, same
// empty body. This prevents user enumeration through response inspection.
func TestLogin_Unauthorized_IdenticalResponses(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, username, password string) (models.User, error) {
			// both failure causes collapse into the same error at the service layer
			return models.User{}, service.ErrInvalidCredentials
		},
	}

	h := newHandlerWithAuth(t, auth)

	do := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/account/login", strings.NewReader(body))
		rec := httptest.NewRecorder()
		h.login(rec, req)
		return rec
	}

	unknownUser := do(jsonBody(t, models.LoginRequest{Username: "ghost", Password: "whatever"}))
	wrongPassword := do(jsonBody(t, models.LoginRequest{Username: "testuser", Password: "wrongpass"}))

	require.Equal(t, http.StatusUnauthorized, unknownUser.Code)
	require.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, unknownUser.Body.String(), wrongPassword.Body.String())
	assert.Empty(t, unknownUser.Body.String())
}

// TestLogin_EmptyCredentials_Bare401 verifies that empty credentials follow
// the normal unauthorized path: 401 with an empty body, never a 400
// validation response.
func TestLogin_EmptyCredentials_Bare401(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, username, password string) (models.User, error) {
			return models.User{}, service.ErrInvalidCredentials
		},
	}
	h := newHandlerWithAuth(t, auth)

	for _, body := range []string{
		`{"username":"","password":"Test@1234"}`,
		`{"username":"testuser","password":""}`,
		`{"username":"","password":""}`,
	} {
		req := httptest.NewRequest(http.MethodPost, "/api/account/login", strings.NewReader(body))
		rec := httptest.NewRecorder()

		h.login(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Empty(t, rec.Body.String())
	}
}

// TestLogin_TokenCreationFails verifies that a signing failure after a
// successful credential check maps to 500.
func TestLogin_TokenCreationFails(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, username, _ string) (models.User, error) {
			return models.User{UserID: 1, Username: username}, nil
		},
		createTokenFn: func(_ context.Context, _ models.User) (models.Token, error) {
			return models.Token{}, service.ErrTokenCreationFailed
		},
	}

	h := newHandlerWithAuth(t, auth)
	body := jsonBody(t, models.LoginRequest{Username: "testuser", Password: "Test@1234"})
	req := httptest.NewRequest(http.MethodPost, "/api/account/login", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.login(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
