package handler

import (
	"log/slog"
	"net/http"

	"github.com/sakif/property-listings/internal/store"
	"github.com/sakif/property-listings/internal/validate"
)

// UserHandler serves the CRUD endpoints under /api/users.
type UserHandler struct {
	store  *store.UserStore
	logger *slog.Logger
}

func NewUserHandler(s *store.UserStore, logger *slog.Logger) *UserHandler {
	return &UserHandler{store: s, logger: logger}
}

// HandleList returns all users plus a count.
//
// HTTP: GET /api/users
func (h *UserHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	users := h.store.List()
	writeListData(w, users, len(users))
}

// HandleGetByID returns a single user.
//
// HTTP: GET /api/users/{id}
func (h *UserHandler) HandleGetByID(w http.ResponseWriter, r *http.Request) {
	user, err := h.store.GetByID(r.PathValue("id"))
	if err != nil {
		writeError(w, h.logger, err, "Failed to fetch user")
		return
	}
	writeData(w, http.StatusOK, user)
}

// HandleCreate validates the payload, enforces email uniqueness, and inserts
// the user.
//
// HTTP: POST /api/users
func (h *UserHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	data, err := decodeBody(r)
	if err != nil {
		writeError(w, h.logger, err, "Failed to create user")
		return
	}

	req, err := validate.CreateUser(data)
	if err != nil {
		writeError(w, h.logger, err, "Failed to create user")
		return
	}

	user, err := h.store.Create(req)
	if err != nil {
		writeError(w, h.logger, err, "Failed to create user")
		return
	}

	h.logger.Info("user created",
		slog.String("id", user.ID),
		slog.String("email", user.Email),
	)
	writeData(w, http.StatusCreated, user)
}

// HandleUpdate merges the fields present in the payload onto an existing
// user. Omitted fields are left untouched.
//
// HTTP: PUT /api/users/{id}
func (h *UserHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	// Confirm the user exists before validating, so an update to an unknown
	// ID is a 404 even when the payload is also bad.
	if _, err := h.store.GetByID(id); err != nil {
		writeError(w, h.logger, err, "Failed to update user")
		return
	}

	data, err := decodeBody(r)
	if err != nil {
		writeError(w, h.logger, err, "Failed to update user")
		return
	}

	req, err := validate.UpdateUser(data)
	if err != nil {
		writeError(w, h.logger, err, "Failed to update user")
		return
	}

	user, err := h.store.Update(id, req)
	if err != nil {
		writeError(w, h.logger, err, "Failed to update user")
		return
	}

	h.logger.Info("user updated", slog.String("id", user.ID))
	writeData(w, http.StatusOK, user)
}

// HandleDelete removes a user and returns the removed record.
//
// HTTP: DELETE /api/users/{id}
func (h *UserHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	user, err := h.store.Delete(r.PathValue("id"))
	if err != nil {
		writeError(w, h.logger, err, "Failed to delete user")
		return
	}

	h.logger.Info("user deleted", slog.String("id", user.ID))
	writeJSON(w, http.StatusOK, envelope{
		Success: true,
		Data:    user,
		Message: "User deleted successfully",
	})
}
