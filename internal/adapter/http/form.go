package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"

	"github.com/gabriel-vasile/mimetype"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"adkit/internal/core/domain"
	"adkit/internal/core/port"
)

// handleUpdateForm applies a JSON FormPatch. Enumerations accept labels
// ("Ventas de producto") as well as identifiers ("product_sales").
func (h *Handler) handleUpdateForm(w http.ResponseWriter, r *http.Request) {
	var patch port.FormPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		var invalid *domain.InvalidFieldError
		if errors.As(err, &invalid) {
			h.writeError(w, r, invalid)
			return
		}
		h.writeError(w, r, newAPIError(http.StatusBadRequest, "invalid_json", errors.New("invalid JSON")))
		return
	}
	h.viewAction(func(ctx context.Context, id uuid.UUID) (*port.View, error) {
		return h.svc.UpdateForm(ctx, id, patch)
	})(w, r)
}

func (h *Handler) handleToggleTone(w http.ResponseWriter, r *http.Request) {
	raw, err := url.PathUnescape(chi.URLParam(r, "tone"))
	if err != nil {
		raw = chi.URLParam(r, "tone")
	}
	tone, err := domain.ParseTone(raw)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.viewAction(func(ctx context.Context, id uuid.UUID) (*port.View, error) {
		return h.svc.ToggleTone(ctx, id, tone)
	})(w, r)
}

// handleUploadImage reads the "image" part of a multipart body. The content
// type is sniffed from the bytes; the one declared by the client is
// ignored. Bodies over the upload cap are answered as too large without
// being read further.
func (h *Handler) handleUploadImage(w http.ResponseWriter, r *http.Request) {
	id, err := sessionID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	// Bodies over the upload cap are answered as too large before the
	// format can be sniffed; below the cap format is checked before size.
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	if err = r.ParseMultipartForm(h.maxUploadBytes); err != nil {
		h.writeError(w, r, uploadError(err))
		return
	}
	defer func() {
		_ = r.MultipartForm.RemoveAll()
	}()

	file, header, err := r.FormFile("image")
	if err != nil {
		h.writeError(w, r, uploadError(err))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.writeError(w, r, uploadError(err))
		return
	}

	img := domain.ImageRef{
		Filename:    header.Filename,
		ContentType: mimetype.Detect(data).String(),
		Size:        int64(len(data)),
		Data:        data,
	}
	v, err := h.svc.SelectImageFile(r.Context(), id, img)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeView(w, http.StatusOK, v)
}

func uploadError(err error) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return domain.ErrImageTooLarge
	}
	return newAPIError(http.StatusBadRequest, "invalid_upload", errors.New(`expected a multipart body with an "image" file`))
}

// handleSubmit runs the generation synchronously; the response arrives once
// the generator answered. A client disconnect does not stop it.
func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	h.viewAction(h.svc.Submit)(w, r)
}
