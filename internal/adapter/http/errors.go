package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"adkit/internal/core/domain"
)

// apiError is an error already resolved to its HTTP status and wire code.
type apiError struct {
	Status int
	Code   string
	Err    error
}

func (e *apiError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Code
}

func (e *apiError) Unwrap() error { return e.Err }

func newAPIError(status int, code string, err error) *apiError {
	return &apiError{Status: status, Code: code, Err: err}
}

type errorResponse struct {
	Error   string   `json:"error"`
	Message string   `json:"message"`
	Fields  []string `json:"fields,omitempty"`
}

// classify maps an error returned by the use case to an HTTP status and
// code. Unknown errors are internal.
func classify(err error) *apiError {
	var ae *apiError
	if errors.As(err, &ae) {
		return ae
	}
	switch {
	case errors.Is(err, domain.ErrSessionNotFound):
		return newAPIError(http.StatusNotFound, "session_not_found", err)
	case errors.Is(err, domain.ErrIncompleteFields):
		return newAPIError(http.StatusUnprocessableEntity, "incomplete_fields", err)
	case errors.Is(err, domain.ErrTooManyTones):
		return newAPIError(http.StatusUnprocessableEntity, "too_many_tones", err)
	case errors.Is(err, domain.ErrInvalidImageFormat):
		return newAPIError(http.StatusUnsupportedMediaType, "invalid_image_format", err)
	case errors.Is(err, domain.ErrImageTooLarge):
		return newAPIError(http.StatusRequestEntityTooLarge, "image_too_large", err)
	case errors.Is(err, domain.ErrGenerationFailure):
		return newAPIError(http.StatusBadGateway, "generation_failure", err)
	case errors.Is(err, domain.ErrIncompleteSelection):
		return newAPIError(http.StatusUnprocessableEntity, "incomplete_selection", err)
	case errors.Is(err, domain.ErrInvalidField):
		return newAPIError(http.StatusBadRequest, "invalid_field", err)
	case errors.Is(err, domain.ErrGenerationInProgress):
		return newAPIError(http.StatusConflict, "generation_in_progress", err)
	case errors.Is(err, domain.ErrInvalidTransition):
		return newAPIError(http.StatusConflict, "invalid_transition", err)
	}
	return newAPIError(http.StatusInternalServerError, "internal", err)
}

// writeError answers with the JSON error envelope. Internal errors are
// logged and their text is not sent to the client; generation failures
// were already logged by the use case.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	ae := classify(err)
	resp := errorResponse{Error: ae.Code, Message: userMessage(ae)}

	var incomplete *domain.IncompleteFieldsError
	if errors.As(err, &incomplete) {
		resp.Fields = incomplete.Fields
	}
	var invalid *domain.InvalidFieldError
	if errors.As(err, &invalid) {
		resp.Fields = []string{invalid.Field}
	}

	if ae.Status == http.StatusInternalServerError {
		h.logger.Error("request failed",
			slog.String("request_id", requestID(r.Context())),
			slog.Any("error", err),
		)
	}
	h.writeJSON(w, ae.Status, resp)
}

func userMessage(ae *apiError) string {
	switch ae.Code {
	case "internal":
		return "internal error"
	case "generation_failure":
		// The cause may carry generator internals.
		return domain.ErrGenerationFailure.Error()
	}
	return ae.Error()
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
