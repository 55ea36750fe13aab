package handler

import (
	"net/http"

	"github.com/mergington/activities/internal/model"
	"github.com/mergington/activities/internal/service"
)

// ActivityHandler handles activity HTTP requests
type ActivityHandler struct {
	svc *service.ActivityService
}

// NewActivityHandler creates a new activity handler
func NewActivityHandler(svc *service.ActivityService) *ActivityHandler {
	return &ActivityHandler{svc: svc}
}

// MessageResponse is the confirmation body for signup and unregister.
type MessageResponse struct {
	Message string `json:"message"`
}

// RegisterRoutes registers the activity endpoints on the mux.
func (h *ActivityHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /activities", h.List)
	mux.HandleFunc("POST /activities/{name}/signup", h.Signup)
	mux.HandleFunc("DELETE /activities/{name}/unregister", h.Unregister)
}

// List handles GET /activities - list all activities keyed by name
func (h *ActivityHandler) List(w http.ResponseWriter, r *http.Request) {
	activities, err := h.svc.ListActivities(r.Context())
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteJSON(w, http.StatusOK, activities)
}

// Signup handles POST /activities/{name}/signup?email=... - register a student
func (h *ActivityHandler) Signup(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if name == "" {
		WriteError(w, model.NewBadRequestError("activity name required"))
		return
	}

	email := r.URL.Query().Get("email")
	if email == "" {
		WriteError(w, model.NewBadRequestError("email query parameter is required"))
		return
	}

	msg, err := h.svc.Signup(r.Context(), name, email)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteJSON(w, http.StatusOK, MessageResponse{Message: msg})
}

// Unregister handles DELETE /activities/{name}/unregister?email=... - remove a student
func (h *ActivityHandler) Unregister(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if name == "" {
		WriteError(w, model.NewBadRequestError("activity name required"))
		return
	}

	email := r.URL.Query().Get("email")
	if email == "" {
		WriteError(w, model.NewBadRequestError("email query parameter is required"))
		return
	}

	msg, err := h.svc.Unregister(r.Context(), name, email)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteJSON(w, http.StatusOK, MessageResponse{Message: msg})
}
