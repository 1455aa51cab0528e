package generator

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adkit/internal/core/domain"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestHTTPGenerate(t *testing.T) {
	var got generateReq
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/generar", r.URL.Path)
		assert.Equal(t, "es-AR", r.Header.Get("Content-Language"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{
			"copies": [{"id":"a","title":"A","description":"da"},{"id":"b","title":"B","description":"db"},{"id":"c","title":"C","description":"dc"}],
			"images": [{"id":"i1","url":"https://cdn.example/1.jpg"}],
			"audienceTip": {"ages":"18-30","interests":["Gaming"],"locations":["Chile"]}
		}`)
	}))
	defer srv.Close()

	in := scenarioForm()
	in.Image = &domain.ImageRef{Filename: "p.png", ContentType: domain.MIMEPNG, Size: 3, Data: []byte{1, 2, 3}}

	resp, err := NewHTTP(srv.URL+"/", discardLogger()).Generate(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, "Ventas de producto", got.Objective)
	assert.Equal(t, []string{"Urgente"}, got.Tones)
	assert.Equal(t, "es-AR", got.Language)
	assert.Equal(t, 10, got.Budget)
	require.NotNil(t, got.Image)
	assert.Equal(t, []byte{1, 2, 3}, got.Image.Data)

	require.Len(t, resp.Copies, 3)
	assert.Equal(t, []string{"a", "b", "c"}, []string{resp.Copies[0].ID, resp.Copies[1].ID, resp.Copies[2].ID})
	require.Len(t, resp.Images, 1)
	assert.Equal(t, "18-30", resp.AudienceTip.Ages)
	assert.Equal(t, []string{"Chile"}, resp.AudienceTip.Locations)
}

func TestHTTPGenerateFailures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"server error", http.StatusInternalServerError, `boom`},
		{"no copies", http.StatusOK, `{"copies":[],"images":[{"id":"i","url":"u"}],"audienceTip":{}}`},
		{"no images", http.StatusOK, `{"copies":[{"id":"c","title":"t","description":"d"}],"images":[],"audienceTip":{}}`},
		{"bad json", http.StatusOK, `{"copies":`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			}))
			defer srv.Close()

			resp, err := NewHTTP(srv.URL, discardLogger()).Generate(context.Background(), scenarioForm())
			assert.Error(t, err)
			assert.Nil(t, resp)
		})
	}
}
