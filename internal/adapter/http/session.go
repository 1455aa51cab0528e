package httpadapter

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"adkit/internal/core/domain"
	"adkit/internal/core/port"
)

func (h *Handler) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	v, err := h.svc.CreateSession(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	w.Header().Set("Location", "/api/v1/sessions/"+v.SessionID.String())
	h.writeView(w, http.StatusCreated, v)
}

func (h *Handler) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	id, err := sessionID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err = h.svc.DeleteSession(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// viewAction adapts a use case method that takes only the session id.
func (h *Handler) viewAction(fn func(ctx context.Context, id uuid.UUID) (*port.View, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := sessionID(r)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		v, err := fn(r.Context(), id)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		h.writeView(w, http.StatusOK, v)
	}
}

func (h *Handler) handleGetSession(w http.ResponseWriter, r *http.Request) {
	h.viewAction(h.svc.View)(w, r)
}

func (h *Handler) handleReset(w http.ResponseWriter, r *http.Request) {
	h.viewAction(h.svc.Reset)(w, r)
}

func (h *Handler) handleStart(w http.ResponseWriter, r *http.Request) {
	h.viewAction(h.svc.Start)(w, r)
}

func (h *Handler) handleBack(w http.ResponseWriter, r *http.Request) {
	h.viewAction(h.svc.Back)(w, r)
}

// handleNavigate addresses a step directly. The view tells where the user
// landed; a redirect caused by a missing prerequisite is still a 200.
func (h *Handler) handleNavigate(w http.ResponseWriter, r *http.Request) {
	step, err := domain.ParseStep(chi.URLParam(r, "step"))
	if err != nil {
		h.writeError(w, r, &domain.InvalidFieldError{Field: "step", Reason: err.Error()})
		return
	}
	h.viewAction(func(ctx context.Context, id uuid.UUID) (*port.View, error) {
		return h.svc.Navigate(ctx, id, step)
	})(w, r)
}
