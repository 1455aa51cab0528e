package httpadapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adkit/internal/adapter/generator"
	"adkit/internal/adapter/memory"
	"adkit/internal/adapter/usecase"
	"adkit/internal/core/domain"
	"adkit/internal/core/port"
)

func newTestHandler(t *testing.T, opts Options) *Handler {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := usecase.NewWizardUseCase(
		memory.NewSessionRepository(0),
		generator.NewMock(0),
		memory.NewKitArchive(),
		logger,
	)
	return NewHandler(svc, logger, opts)
}

func do(t *testing.T, h *Handler, method, path string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)
	return rec
}

func decodeView(t *testing.T, rec *httptest.ResponseRecorder) port.View {
	t.Helper()
	var v port.View
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v), rec.Body.String())
	return v
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorResponse {
	t.Helper()
	var e errorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&e))
	return e
}

func createSession(t *testing.T, h *Handler) string {
	t.Helper()
	rec := do(t, h, http.MethodPost, "/api/v1/sessions", nil, "")
	require.Equal(t, http.StatusCreated, rec.Code)
	v := decodeView(t, rec)
	assert.Equal(t, domain.StepEntry, v.Step)
	return "/api/v1/sessions/" + v.SessionID.String()
}

func fillForm(t *testing.T, h *Handler, base string) {
	t.Helper()
	rec := do(t, h, http.MethodPost, base+"/start", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := `{"objective":"Ventas de producto","product":"Zapatillas","benefit":"Livianas","audience":"Mujeres 25-45, fitness, Argentina","budget":10}`
	rec = do(t, h, http.MethodPatch, base+"/form", strings.NewReader(body), "application/json")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestWizardFlow(t *testing.T) {
	h := newTestHandler(t, Options{})
	base := createSession(t, h)
	fillForm(t, h, base)

	rec := do(t, h, http.MethodPost, base+"/form/tones/urgent", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, h, http.MethodPost, base+"/form/submit", nil, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "es-AR", rec.Header().Get("Content-Language"))
	v := decodeView(t, rec)
	assert.Equal(t, domain.StepSelection, v.Step)
	require.Len(t, v.Options.Copies, 2)
	require.NotNil(t, v.AudienceTip)
	assert.Equal(t, "25-45", v.AudienceTip.Ages)
	assert.Contains(t, v.AudienceTip.Interests, "Fitness")
	assert.Contains(t, v.AudienceTip.Interests, "Vida saludable")
	assert.Equal(t, []string{"Argentina"}, v.AudienceTip.Locations)

	rec = do(t, h, http.MethodPost, base+"/selection/continue", nil, "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "incomplete_selection", decodeError(t, rec).Error)

	rec = do(t, h, http.MethodPost, base+"/selection/copy/copy-2", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	rec = do(t, h, http.MethodPost, base+"/selection/image/img-1", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, h, http.MethodPost, base+"/selection/continue", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	v = decodeView(t, rec)
	assert.Equal(t, domain.StepKit, v.Step)
	require.NotNil(t, v.Kit)
	assert.Equal(t, v.Options.Copies[1].Title, v.Kit.Copy.Title)
	assert.Equal(t, v.Options.Images[0].URL, v.Kit.ImageURL)
	assert.Equal(t, 10, v.Kit.Budget)

	rec = do(t, h, http.MethodGet, base+"/kit/copy", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, v.Kit.Copy.Title+"\n\n"+v.Kit.Copy.Description, rec.Body.String())
	assert.True(t, strings.HasPrefix(v.Kit.Copy.Description, "¡ÚLTIMA OPORTUNIDAD! "))

	rec = do(t, h, http.MethodGet, base+"/kit/image", nil, "")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, v.Kit.ImageURL, rec.Header().Get("Location"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), domain.KitImageFilename)

	rec = do(t, h, http.MethodGet, "/api/v1/stats/overview?objective=product_sales", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var stats port.StatsResp
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&stats))
	assert.Equal(t, int64(1), stats.Kits)
	assert.Equal(t, int64(10), stats.DailyBudgetUSD)
}

func multipartImage(t *testing.T, filename string, data []byte) (io.Reader, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("image", filename)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func fakeImage(header []byte, size int) []byte {
	data := make([]byte, size)
	copy(data, header)
	return data
}

var (
	jpegHeader = []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 'J', 'F', 'I', 'F', 0x00}
	pngHeader  = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1A, '\n'}
	gifHeader  = []byte("GIF89a")
)

func TestUploadImage(t *testing.T) {
	h := newTestHandler(t, Options{})
	base := createSession(t, h)
	fillForm(t, h, base)

	tests := []struct {
		name     string
		filename string
		data     []byte
		status   int
		code     string
	}{
		{name: "jpeg over 8 MiB", filename: "big.jpg", data: fakeImage(jpegHeader, 10<<20), status: http.StatusRequestEntityTooLarge, code: "image_too_large"},
		{name: "gif", filename: "anim.gif", data: fakeImage(gifHeader, 1024), status: http.StatusUnsupportedMediaType, code: "invalid_image_format"},
		{name: "text named jpg", filename: "fake.jpg", data: []byte("plain text"), status: http.StatusUnsupportedMediaType, code: "invalid_image_format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, ct := multipartImage(t, tt.filename, tt.data)
			rec := do(t, h, http.MethodPut, base+"/form/image", body, ct)
			require.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.code, decodeError(t, rec).Error)

			v := decodeView(t, do(t, h, http.MethodGet, base, nil, ""))
			assert.Nil(t, v.Form.Image)
		})
	}

	body, ct := multipartImage(t, "product.png", fakeImage(pngHeader, 2<<20))
	rec := do(t, h, http.MethodPut, base+"/form/image", body, ct)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	v := decodeView(t, rec)
	require.NotNil(t, v.Form.Image)
	assert.Equal(t, domain.MIMEPNG, v.Form.Image.ContentType)
	assert.Equal(t, int64(2<<20), v.Form.Image.Size)
	assert.Equal(t, "product.png", v.Form.Image.Filename)
}

func TestRejectedUploadKeepsPreviousImage(t *testing.T) {
	h := newTestHandler(t, Options{})
	base := createSession(t, h)
	fillForm(t, h, base)

	body, ct := multipartImage(t, "product.png", fakeImage(pngHeader, 1024))
	rec := do(t, h, http.MethodPut, base+"/form/image", body, ct)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	before := decodeView(t, rec).Form.Image
	require.NotNil(t, before)

	body, ct = multipartImage(t, "big.jpg", fakeImage(jpegHeader, 10<<20))
	rec = do(t, h, http.MethodPut, base+"/form/image", body, ct)
	require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)

	v := decodeView(t, do(t, h, http.MethodGet, base, nil, ""))
	require.NotNil(t, v.Form.Image)
	assert.Equal(t, *before, *v.Form.Image)
	assert.Equal(t, "product.png", v.Form.Image.Filename)
	assert.Equal(t, domain.MIMEPNG, v.Form.Image.ContentType)
}

func TestUploadOverCap(t *testing.T) {
	h := newTestHandler(t, Options{MaxUploadBytes: 1 << 20})
	base := createSession(t, h)

	body, ct := multipartImage(t, "big.jpg", fakeImage(jpegHeader, 2<<20))
	rec := do(t, h, http.MethodPut, base+"/form/image", body, ct)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestSubmitIncompleteForm(t *testing.T) {
	h := newTestHandler(t, Options{})
	base := createSession(t, h)
	do(t, h, http.MethodPost, base+"/start", nil, "")

	rec := do(t, h, http.MethodPatch, base+"/form", strings.NewReader(`{"product":"Zapatillas"}`), "application/json")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, h, http.MethodPost, base+"/form/submit", nil, "")
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	e := decodeError(t, rec)
	assert.Equal(t, "incomplete_fields", e.Error)
	assert.Equal(t, []string{"objective", "benefit", "audience"}, e.Fields)

	v := decodeView(t, do(t, h, http.MethodGet, base, nil, ""))
	assert.Equal(t, domain.StepForm, v.Step)
}

func TestUpdateFormErrors(t *testing.T) {
	h := newTestHandler(t, Options{})
	base := createSession(t, h)

	tests := []struct {
		name  string
		body  string
		code  string
		field string
	}{
		{name: "budget above range", body: `{"budget":61}`, code: "invalid_field", field: "budget"},
		{name: "budget below range", body: `{"budget":1}`, code: "invalid_field", field: "budget"},
		{name: "product too long", body: fmt.Sprintf(`{"product":%q}`, strings.Repeat("ñ", 201)), code: "invalid_field", field: "product"},
		{name: "unknown objective", body: `{"objective":"awareness"}`, code: "invalid_field", field: "objective"},
		{name: "malformed", body: `{`, code: "invalid_json"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, h, http.MethodPatch, base+"/form", strings.NewReader(tt.body), "application/json")
			require.Equal(t, http.StatusBadRequest, rec.Code)
			e := decodeError(t, rec)
			assert.Equal(t, tt.code, e.Error)
			if tt.field != "" {
				assert.Equal(t, []string{tt.field}, e.Fields)
			}
		})
	}

	rec := do(t, h, http.MethodPatch, base+"/form", strings.NewReader(`{"language":"pt-BR"}`), "application/json")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pt", rec.Header().Get("Content-Language"))
	assert.Equal(t, domain.LanguagePortuguese, decodeView(t, rec).Form.Language)
}

func TestToggleToneLimit(t *testing.T) {
	h := newTestHandler(t, Options{})
	base := createSession(t, h)

	for _, tone := range []string{"friendly", "Profesional", "Humor%C3%ADstica"} {
		rec := do(t, h, http.MethodPost, base+"/form/tones/"+tone, nil, "")
		require.Equal(t, http.StatusOK, rec.Code, tone)
	}
	rec := do(t, h, http.MethodPost, base+"/form/tones/urgent", nil, "")
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "too_many_tones", decodeError(t, rec).Error)

	v := decodeView(t, do(t, h, http.MethodGet, base, nil, ""))
	assert.Len(t, v.Form.Tones, 3)
}

func TestNavigate(t *testing.T) {
	h := newTestHandler(t, Options{})
	base := createSession(t, h)

	rec := do(t, h, http.MethodPost, base+"/navigate/selection", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	v := decodeView(t, rec)
	assert.Equal(t, domain.StepForm, v.Step)
	assert.True(t, v.Redirected)
	assert.Equal(t, 1, v.Progress.Step)
	assert.Equal(t, 4, v.Progress.Total)

	rec = do(t, h, http.MethodPost, base+"/navigate/nowhere", nil, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h, http.MethodPost, base+"/back", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.StepEntry, decodeView(t, rec).Step)

	rec = do(t, h, http.MethodPost, base+"/back", nil, "")
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestUnknownSession(t *testing.T) {
	h := newTestHandler(t, Options{})

	for _, path := range []string{"/api/v1/sessions/" + uuid.NewString(), "/api/v1/sessions/not-a-uuid"} {
		rec := do(t, h, http.MethodGet, path, nil, "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "session_not_found", decodeError(t, rec).Error)
	}

	base := createSession(t, h)
	rec := do(t, h, http.MethodDelete, base, nil, "")
	require.Equal(t, http.StatusNoContent, rec.Code)
	rec = do(t, h, http.MethodGet, base, nil, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// fakeLimiter allows a fixed number of hits per key.
type fakeLimiter struct {
	allowed int
	hits    int
	keys    map[string]int
	err     error
}

func (l *fakeLimiter) Allow(_ context.Context, key string) (bool, error) {
	l.hits++
	if l.keys == nil {
		l.keys = make(map[string]int)
	}
	l.keys[key]++
	if l.err != nil {
		return false, l.err
	}
	return l.keys[key] <= l.allowed, nil
}

func TestSubmitRateLimit(t *testing.T) {
	limiter := &fakeLimiter{allowed: 1}
	h := newTestHandler(t, Options{Limiter: limiter})
	base := createSession(t, h)
	do(t, h, http.MethodPost, base+"/start", nil, "")

	rec := do(t, h, http.MethodPost, base+"/form/submit", nil, "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = do(t, h, http.MethodPost, base+"/form/submit", nil, "")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "rate_limited", decodeError(t, rec).Error)

	rec = do(t, h, http.MethodGet, base, nil, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 2, limiter.hits)
}

func TestSubmitRateLimitSharedAcrossSessions(t *testing.T) {
	limiter := &fakeLimiter{allowed: 1}
	h := newTestHandler(t, Options{Limiter: limiter})

	first := createSession(t, h)
	do(t, h, http.MethodPost, first+"/start", nil, "")
	rec := do(t, h, http.MethodPost, first+"/form/submit", nil, "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	second := createSession(t, h)
	do(t, h, http.MethodPost, second+"/start", nil, "")
	rec = do(t, h, http.MethodPost, second+"/form/submit", nil, "")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	require.Len(t, limiter.keys, 1)
	for key := range limiter.keys {
		assert.Contains(t, key, "/sessions/{id}/form/submit")
	}
}

func TestSubmitRateLimitFailsOpen(t *testing.T) {
	h := newTestHandler(t, Options{Limiter: &fakeLimiter{err: errors.New("redis down")}})
	base := createSession(t, h)
	do(t, h, http.MethodPost, base+"/start", nil, "")

	rec := do(t, h, http.MethodPost, base+"/form/submit", nil, "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestRequestID(t *testing.T) {
	h := newTestHandler(t, Options{})

	rec := do(t, h, http.MethodGet, "/health", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	_, err := uuid.Parse(rec.Header().Get(headerRequestID))
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(headerRequestID, "abc")
	rec = httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)
	assert.Equal(t, "abc", rec.Header().Get(headerRequestID))
}

func TestClassify(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{&domain.IncompleteFieldsError{Fields: []string{"product"}}, http.StatusUnprocessableEntity, "incomplete_fields"},
		{domain.ErrTooManyTones, http.StatusUnprocessableEntity, "too_many_tones"},
		{domain.ErrInvalidImageFormat, http.StatusUnsupportedMediaType, "invalid_image_format"},
		{domain.ErrImageTooLarge, http.StatusRequestEntityTooLarge, "image_too_large"},
		{fmt.Errorf("%w: %w", domain.ErrGenerationFailure, errors.New("timeout")), http.StatusBadGateway, "generation_failure"},
		{domain.ErrIncompleteSelection, http.StatusUnprocessableEntity, "incomplete_selection"},
		{&domain.InvalidFieldError{Field: "budget"}, http.StatusBadRequest, "invalid_field"},
		{domain.ErrGenerationInProgress, http.StatusConflict, "generation_in_progress"},
		{domain.ErrInvalidTransition, http.StatusConflict, "invalid_transition"},
		{domain.ErrSessionNotFound, http.StatusNotFound, "session_not_found"},
		{errors.New("boom"), http.StatusInternalServerError, "internal"},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			got := classify(tt.err)
			assert.Equal(t, tt.status, got.Status)
			assert.Equal(t, tt.code, got.Code)
		})
	}
}
