package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"adkit/internal/core/domain"
	"adkit/internal/core/port"
)

// HTTP calls a remote generation service over JSON.
type HTTP struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewHTTP returns a client for the service at baseURL. The client has no
// timeout: a generation runs until the service answers or fails.
func NewHTTP(baseURL string, logger *slog.Logger) *HTTP {
	return &HTTP{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		logger:     logger,
	}
}

var _ port.ContentGenerator = (*HTTP)(nil)

type generateImage struct {
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	Data        []byte `json:"data"`
}

type generateReq struct {
	Objective string         `json:"objective"`
	Product   string         `json:"product"`
	Benefit   string         `json:"benefit"`
	Audience  string         `json:"audience"`
	Tones     []string       `json:"tones"`
	Language  string         `json:"language"`
	Budget    int            `json:"budget"`
	Image     *generateImage `json:"image,omitempty"`
}

func newGenerateReq(in domain.FormInput) generateReq {
	req := generateReq{
		Objective: in.Objective.Label(),
		Product:   in.Product,
		Benefit:   in.Benefit,
		Audience:  in.Audience,
		Tones:     make([]string, 0, len(in.Tones)),
		Language:  in.Language.Tag().String(),
		Budget:    in.Budget,
	}
	for _, t := range in.Tones {
		req.Tones = append(req.Tones, t.Label())
	}
	if in.Image != nil {
		req.Image = &generateImage{
			Filename:    in.Image.Filename,
			ContentType: in.Image.ContentType,
			Data:        in.Image.Data,
		}
	}
	return req
}

// Generate posts the form snapshot to /api/generar.
func (c *HTTP) Generate(ctx context.Context, in domain.FormInput) (*port.GenerateResp, error) {
	body, err := json.Marshal(newGenerateReq(in))
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/api/generar", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Content-Language", in.Language.Tag().String())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("generation service unavailable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("generation service returned %d: %s", resp.StatusCode, string(b))
	}

	var out port.GenerateResp
	if err = json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode generation response: %w", err)
	}
	if len(out.Copies) == 0 {
		return nil, errors.New("generation service returned no copies")
	}
	if len(out.Images) == 0 {
		return nil, errors.New("generation service returned no images")
	}
	c.logger.Debug("generation completed",
		slog.Int("copies", len(out.Copies)),
		slog.Int("images", len(out.Images)),
	)
	return &out, nil
}
