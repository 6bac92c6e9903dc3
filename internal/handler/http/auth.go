package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/MKhiriev/go-user-admin/internal/logger"
	"github.com/MKhiriev/go-user-admin/internal/session"
	"github.com/MKhiriev/go-user-admin/models"
)

// loginPageData feeds the login template.
type loginPageData struct {
	Error string
}

func (h *Handler) loginPage(w http.ResponseWriter, r *http.Request) {
	// an already authenticated browser goes straight to the list
	if _, ok := h.activeSession(r); ok {
		http.Redirect(w, r, "/users", http.StatusFound)
		return
	}

	h.render(w, r, "login.gohtml", loginPageData{})
}

func (h *Handler) loginSubmit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if _, ok := h.activeSession(r); ok {
		http.Redirect(w, r, "/users", http.StatusFound)
		return
	}

	if err := r.ParseForm(); err != nil {
		log.Err(err).Msg("malformed form submission")
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	creds := models.Credentials{
		Email:    strings.TrimSpace(r.PostFormValue("email")),
		Password: strings.TrimSpace(r.PostFormValue("password")),
	}

	foundUser, err := h.services.AuthService.Login(ctx, creds)
	if err != nil {
		h.render(w, r, "login.gohtml", loginPageData{Error: userMessage(err)})
		return
	}

	token := session.NewToken()
	sess := models.Session{
		UserID:    foundUser.UserID,
		UserName:  foundUser.Name,
		UserEmail: foundUser.Email,
		CreatedAt: time.Now(),
	}

	if err := h.sessions.Set(ctx, token, sess, h.sessionTTL); err != nil {
		log.Err(err).Msg("session creation failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	log.Info().Int64("id", foundUser.UserID).Msg("user logged in")

	http.SetCookie(w, sessionCookie(token, int(h.sessionTTL.Seconds())))
	http.Redirect(w, r, "/users", http.StatusFound)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if cookie, err := r.Cookie(sessionCookieName); err == nil {
		if err := h.sessions.Destroy(ctx, cookie.Value); err != nil {
			log.Err(err).Msg("session destruction failed")
		}
	}

	// expire the cookie regardless of whether a session existed
	http.SetCookie(w, sessionCookie("", -1))
	http.Redirect(w, r, "/login", http.StatusFound)
}

// sessionCookie builds the browser-held session cookie. The token is opaque;
// HttpOnly keeps it away from page scripts.
func sessionCookie(token string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}
