// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/MKhiriev/go-user-admin/internal/config"
	"github.com/MKhiriev/go-user-admin/internal/logger"
	"github.com/MKhiriev/go-user-admin/internal/service"
	"github.com/MKhiriev/go-user-admin/internal/session"
	"github.com/MKhiriev/go-user-admin/internal/validators"
	"github.com/MKhiriev/go-user-admin/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock AuthService
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
type mockAuthService struct {
	loginFn func(ctx context.Context, creds models.Credentials) (models.User, error)
}

func (m *mockAuthService) Login(ctx context.Context, creds models.Credentials) (models.User, error) {
	return m.loginFn(ctx, creds)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newHandlerWithAuth builds a Handler with the given AuthService mock and an
// in-memory session store.
func newHandlerWithAuth(t *testing.T, auth service.AuthService) *Handler {
	t.Helper()
	svcs := &service.Services{
		AuthService: auth,
	}
	return NewHandler(svcs, session.NewMemoryStore(), config.Sessions{TTL: time.Hour}, logger.Nop())
}

// storedSession plants a session into the handler's store and returns the
// cookie carrying its token.
func storedSession(t *testing.T, h *Handler, sess models.Session) *http.Cookie {
	t.Helper()
	token := session.NewToken()
	require.NoError(t, h.sessions.Set(context.Background(), token, sess, time.Hour))
	return sessionCookie(token, 3600)
}

func loginRequest(email, password string) *http.Request {
	return formRequest(http.MethodPost, "/login", url.Values{
		"email":    {email},
		"password": {password},
	})
}

// ─────────────────────────────────────────────
// login page
// ─────────────────────────────────────────────

func TestLoginPage_RendersForm(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})
	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	rec := httptest.NewRecorder()

	h.loginPage(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "<h1>Login</h1>")
	assert.Contains(t, body, "Create one here")
}

func TestLoginPage_AuthenticatedRedirectsToList(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})
	cookie := storedSession(t, h, testSession)

	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()

	h.loginPage(rec, req)

	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/users", rec.Header().Get("Location"))
}

// ─────────────────────────────────────────────
// login submission
// ─────────────────────────────────────────────

func TestLoginSubmit_Success(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, creds models.Credentials) (models.User, error) {
			require.Equal(t, "ann@x.com", creds.Email)
			return models.User{UserID: 1, Name: "Ann", Email: creds.Email}, nil
		},
	}

	h := newHandlerWithAuth(t, auth)
	rec := httptest.NewRecorder()

	h.loginSubmit(rec, loginRequest("ann@x.com", "secret1"))

	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/users", rec.Header().Get("Location"))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	cookie := cookies[0]
	assert.Equal(t, sessionCookieName, cookie.Name)
	assert.True(t, cookie.HttpOnly)
	require.NotEmpty(t, cookie.Value)

	// the token must resolve to the session on the server side
	sess, err := h.sessions.Get(context.Background(), cookie.Value)
	require.NoError(t, err)
	assert.Equal(t, int64(1), sess.UserID)
	assert.Equal(t, "Ann", sess.UserName)
	assert.Equal(t, "ann@x.com", sess.UserEmail)
}

// TestLoginSubmit_IdenticalFailureMessage pins that an unknown e-mail and a
// wrong password render the same page text.
func TestLoginSubmit_IdenticalFailureMessage(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _ models.Credentials) (models.User, error) {
			return models.User{}, service.ErrInvalidCredentials
		},
	}

	h := newHandlerWithAuth(t, auth)

	recUnknown := httptest.NewRecorder()
	h.loginSubmit(recUnknown, loginRequest("nobody@x.com", "secret1"))

	recWrong := httptest.NewRecorder()
	h.loginSubmit(recWrong, loginRequest("ann@x.com", "wrong-password"))

	require.Equal(t, http.StatusOK, recUnknown.Code)
	require.Equal(t, http.StatusOK, recWrong.Code)
	assert.Contains(t, recUnknown.Body.String(), msgInvalidCredentials)
	assert.Equal(t, recUnknown.Body.String(), recWrong.Body.String())
	assert.Empty(t, recUnknown.Result().Cookies(), "no session cookie on failed login")
}

func TestLoginSubmit_EmptyFields(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _ models.Credentials) (models.User, error) {
			return models.User{}, validators.ErrCredentialsRequired
		},
	}

	h := newHandlerWithAuth(t, auth)
	rec := httptest.NewRecorder()

	h.loginSubmit(rec, loginRequest("", ""))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), msgCredentialsRequired)
}

func TestLoginSubmit_AuthenticatedRedirectsWithoutLogin(t *testing.T) {
	loginCalled := false
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _ models.Credentials) (models.User, error) {
			loginCalled = true
			return models.User{}, nil
		},
	}

	h := newHandlerWithAuth(t, auth)
	cookie := storedSession(t, h, testSession)

	req := loginRequest("ann@x.com", "secret1")
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()

	h.loginSubmit(rec, req)

	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/users", rec.Header().Get("Location"))
	assert.False(t, loginCalled)
}

// ─────────────────────────────────────────────
// logout
// ─────────────────────────────────────────────

func TestLogout_DestroysSessionAndClearsCookie(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})
	cookie := storedSession(t, h, testSession)

	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()

	h.logout(rec, req)

	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))

	// the server-side session is gone
	_, err := h.sessions.Get(context.Background(), cookie.Value)
	assert.ErrorIs(t, err, session.ErrSessionNotFound)

	// the browser cookie is expired
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, sessionCookieName, cookies[0].Name)
	assert.Negative(t, cookies[0].MaxAge)
}

func TestLogout_WithoutSession(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})
	req := httptest.NewRequest(http.MethodGet, "/logout", nil)
	rec := httptest.NewRecorder()

	h.logout(rec, req)

	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}
