package httpadapter

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"adkit/internal/core/port"
)

// Unknown copy or image ids are not an error: the selection is left as it
// was and the view is returned unchanged.

func (h *Handler) handleSelectCopy(w http.ResponseWriter, r *http.Request) {
	copyID := chi.URLParam(r, "copyID")
	h.viewAction(func(ctx context.Context, id uuid.UUID) (*port.View, error) {
		return h.svc.SelectCopy(ctx, id, copyID)
	})(w, r)
}

func (h *Handler) handleSelectImage(w http.ResponseWriter, r *http.Request) {
	imageID := chi.URLParam(r, "imageID")
	h.viewAction(func(ctx context.Context, id uuid.UUID) (*port.View, error) {
		return h.svc.SelectImage(ctx, id, imageID)
	})(w, r)
}

func (h *Handler) handleContinue(w http.ResponseWriter, r *http.Request) {
	h.viewAction(h.svc.Continue)(w, r)
}
