package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-user-admin/internal/logger"
	"github.com/MKhiriev/go-user-admin/internal/session"
	"github.com/MKhiriev/go-user-admin/models"
)

// sessionCookieName is the name of the browser-held cookie carrying the
// opaque session token.
const sessionCookieName = "session_token"

type sessionCtxKeyType struct{}

var sessionCtxKey sessionCtxKeyType

// auth is an HTTP middleware that gates protected pages behind a login.
//
// It reads the session cookie, resolves the token through the session store,
// and — on success — puts the session into the request context before
// delegating to the next handler. Requests without a cookie, with an unknown
// token, or with an expired session are redirected to the login page.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		cookie, err := r.Cookie(sessionCookieName)
		if err != nil {
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}

		sess, err := h.sessions.Get(r.Context(), cookie.Value)
		if err != nil {
			if !errors.Is(err, session.ErrSessionNotFound) {
				log.Err(err).Msg("session lookup failed")
			}
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}

		ctx := context.WithValue(r.Context(), sessionCtxKey, sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// sessionFromContext returns the session stored by the auth middleware.
func sessionFromContext(ctx context.Context) (models.Session, bool) {
	sess, ok := ctx.Value(sessionCtxKey).(models.Session)
	return sess, ok
}

// activeSession resolves the request's cookie against the session store
// without requiring the auth middleware. Used by the login page to redirect
// already authenticated browsers.
func (h *Handler) activeSession(r *http.Request) (models.Session, bool) {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		return models.Session{}, false
	}

	sess, err := h.sessions.Get(r.Context(), cookie.Value)
	if err != nil {
		return models.Session{}, false
	}

	return sess, true
}
