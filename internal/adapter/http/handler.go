package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"adkit/internal/core/domain"
	"adkit/internal/core/port"
)

// Handler is the inbound HTTP adapter of the wizard. Every session route
// answers with the current view of the session, or with the JSON error
// envelope built by writeError.
type Handler struct {
	svc            port.WizardUseCase
	logger         *slog.Logger
	limiter        Limiter
	maxUploadBytes int64
	router         chi.Router
}

// Options are the optional collaborators of the handler. A nil Limiter
// disables rate limiting of submits.
type Options struct {
	Limiter        Limiter
	MaxUploadBytes int64
}

// NewHandler creates a handler with all routes configured on a new
// chi.Router.
func NewHandler(svc port.WizardUseCase, logger *slog.Logger, opts Options) *Handler {
	h := &Handler{
		svc:            svc,
		logger:         logger,
		limiter:        opts.Limiter,
		maxUploadBytes: opts.MaxUploadBytes,
	}
	if h.maxUploadBytes <= 0 {
		h.maxUploadBytes = 2 * domain.MaxImageSize
	}

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(requestIDMiddleware)
	r.Use(h.logMiddleware)
	r.Use(middleware.Recoverer)

	r.Get("/health", h.handleHealth)
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/sessions", h.handleCreateSession)
		r.Route("/sessions/{id}", func(r chi.Router) {
			r.Get("/", h.handleGetSession)
			r.Delete("/", h.handleDeleteSession)
			r.Post("/reset", h.handleReset)
			r.Post("/start", h.handleStart)
			r.Post("/back", h.handleBack)
			r.Post("/navigate/{step}", h.handleNavigate)

			r.Patch("/form", h.handleUpdateForm)
			r.Post("/form/tones/{tone}", h.handleToggleTone)
			r.Put("/form/image", h.handleUploadImage)
			r.With(h.rateLimit).Post("/form/submit", h.handleSubmit)

			r.Post("/selection/copy/{copyID}", h.handleSelectCopy)
			r.Post("/selection/image/{imageID}", h.handleSelectImage)
			r.Post("/selection/continue", h.handleContinue)

			r.Get("/kit/copy", h.handleKitCopy)
			r.Get("/kit/image", h.handleKitImage)
		})
		r.Get("/stats/overview", h.handleStatsOverview)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// sessionID parses the {id} parameter. Malformed ids cannot name a session,
// so they are reported as not found.
func sessionID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, domain.ErrSessionNotFound
	}
	return id, nil
}

// writeView answers with the view, tagging the body with the campaign
// language.
func (h *Handler) writeView(w http.ResponseWriter, status int, v *port.View) {
	w.Header().Set("Content-Language", v.Form.Language.Tag().String())
	h.writeJSON(w, status, v)
}
