package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-user-admin/internal/logger"
	"github.com/MKhiriev/go-user-admin/internal/store"
	"github.com/MKhiriev/go-user-admin/models"
)

// listPageData feeds the users_list template.
type listPageData struct {
	UserName string
	Users    []models.User
}

// formPageData feeds the create and update form templates. Found controls
// whether the update template renders a form at all; the create template
// ignores it.
type formPageData struct {
	Form    models.UserForm
	Found   bool
	Error   string
	Success string
}

// deletePageData feeds the delete confirmation template.
type deletePageData struct {
	Message string
}

func (h *Handler) usersList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	sess, ok := sessionFromContext(ctx)
	if !ok {
		// the auth middleware puts the session into the context; reaching
		// this point without one means the route was wired outside it
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}

	users, err := h.services.UserService.ListUsers(ctx)
	if err != nil {
		log.Err(err).Msg("user listing failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	h.render(w, r, "users_list.gohtml", listPageData{UserName: sess.UserName, Users: users})
}

func (h *Handler) createUserPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "user_create.gohtml", formPageData{})
}

func (h *Handler) createUserSubmit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	form, err := parseUserForm(r)
	if err != nil {
		log.Err(err).Msg("malformed form submission")
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	createdUser, err := h.services.UserService.CreateUser(ctx, form)
	if err != nil {
		// the submitted values are echoed back so the user can correct them;
		// the password is never reflected into the page
		form.Password = ""
		h.render(w, r, "user_create.gohtml", formPageData{Form: form, Error: userMessage(err)})
		return
	}

	log.Info().Int64("id", createdUser.UserID).Msg("user created")

	// success clears the form
	h.render(w, r, "user_create.gohtml", formPageData{Success: msgUserAdded})
}

func (h *Handler) updateUserPage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	rawID := r.URL.Query().Get("id")
	if rawID == "" {
		// no id in the URL: render the bare page without a form
		h.render(w, r, "user_update.gohtml", formPageData{})
		return
	}

	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		h.render(w, r, "user_update.gohtml", formPageData{Error: msgUserNotFound})
		return
	}

	foundUser, err := h.services.UserService.GetUser(ctx, id)
	if err != nil {
		if !errors.Is(err, store.ErrUserNotFound) {
			log.Err(err).Int64("id", id).Msg("user fetch failed")
			h.render(w, r, "user_update.gohtml", formPageData{Error: msgDatabaseError})
			return
		}
		h.render(w, r, "user_update.gohtml", formPageData{Error: msgUserNotFound})
		return
	}

	h.render(w, r, "user_update.gohtml", formPageData{Found: true, Form: userToForm(foundUser)})
}

func (h *Handler) updateUserSubmit(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	form, err := parseUpdateForm(r)
	if err != nil {
		log.Err(err).Msg("malformed form submission")
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	updatedUser, err := h.services.UserService.UpdateUser(ctx, form)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			h.render(w, r, "user_update.gohtml", formPageData{Error: msgUserNotFound})
			return
		}
		h.render(w, r, "user_update.gohtml", formPageData{Found: true, Form: form, Error: userMessage(err)})
		return
	}

	log.Info().Int64("id", updatedUser.UserID).Msg("user updated")

	h.render(w, r, "user_update.gohtml", formPageData{Found: true, Form: userToForm(updatedUser), Success: msgUserUpdated})
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	rawID := r.URL.Query().Get("id")
	if rawID == "" {
		h.render(w, r, "user_delete.gohtml", deletePageData{Message: msgNoUserIDSpecified})
		return
	}

	// a non-numeric id falls back to 0, which matches no row
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		id = 0
	}

	affected, err := h.services.UserService.DeleteUser(ctx, id)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("user deletion failed")
		h.render(w, r, "user_delete.gohtml", deletePageData{Message: msgDatabaseError})
		return
	}

	if affected == 0 {
		h.render(w, r, "user_delete.gohtml", deletePageData{Message: msgNoUserFoundWithID})
		return
	}

	log.Info().Int64("id", id).Int64("affected", affected).Msg("user deleted")

	h.render(w, r, "user_delete.gohtml", deletePageData{Message: msgUserDeleted})
}

// parseUserForm builds the typed form from a create submission. Values are
// whitespace-trimmed; validation happens in the service layer.
func parseUserForm(r *http.Request) (models.UserForm, error) {
	if err := r.ParseForm(); err != nil {
		return models.UserForm{}, err
	}

	return models.NewUserForm(
		r.PostFormValue("name"),
		r.PostFormValue("email"),
		r.PostFormValue("age"),
		r.PostFormValue("password"),
	), nil
}

// parseUpdateForm builds the typed form from an update submission, including
// the hidden id field. A non-numeric id falls back to 0, which matches no row
// and surfaces as a not-found outcome.
func parseUpdateForm(r *http.Request) (models.UserForm, error) {
	form, err := parseUserForm(r)
	if err != nil {
		return models.UserForm{}, err
	}

	id, err := strconv.ParseInt(strings.TrimSpace(r.PostFormValue("id")), 10, 64)
	if err != nil {
		id = 0
	}
	form.ID = id

	return form, nil
}

// userToForm reflects a stored user back into form display state.
func userToForm(user models.User) models.UserForm {
	return models.UserForm{
		ID:    user.UserID,
		Name:  user.Name,
		Email: user.Email,
		Age:   strconv.Itoa(user.Age),
	}
}
