package httpadapter

import (
	"io"
	"mime"
	"net/http"

	"adkit/internal/core/domain"
)

// handleKitCopy returns the ad text ready to paste: title, blank line,
// description.
func (h *Handler) handleKitCopy(w http.ResponseWriter, r *http.Request) {
	id, err := sessionID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	kit, err := h.svc.Kit(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Language", kit.Language.Tag().String())
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, kit.CopyText)
}

// handleKitImage sends the client to the selected image. The image is
// hosted by the generator; the service never proxies it.
func (h *Handler) handleKitImage(w http.ResponseWriter, r *http.Request) {
	id, err := sessionID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	kit, err := h.svc.Kit(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{
		"filename": domain.KitImageFilename,
	}))
	http.Redirect(w, r, kit.ImageURL, http.StatusFound)
}
