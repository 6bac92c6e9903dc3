package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization; the create page stays open so a first
	// account can be registered from the login page link
	router.Group(func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, "/users", http.StatusFound)
		})
		r.Get("/login", h.loginPage)
		r.Post("/login", h.loginSubmit)
		r.Get("/logout", h.logout)
		r.Get("/users/create", h.createUserPage)
		r.Post("/users/create", h.createUserSubmit)
	})

	// routes operating on existing rows require an active session
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/users", h.usersList)
		r.Get("/users/update", h.updateUserPage)
		r.Post("/users/update", h.updateUserSubmit)
		r.Get("/users/delete", h.deleteUser)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
