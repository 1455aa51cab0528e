package configs

import (
	"errors"
	"strings"
	"time"
)

const (
	GeneratorModeMock = "mock"
	GeneratorModeHTTP = "http"
)

// Generator selects the content generation backend. Mode "mock" answers
// locally after MockDelay; mode "http" posts to URL.
type Generator struct {
	Mode      string        `env:"MODE" envDefault:"mock"`
	URL       string        `env:"URL"`
	MockDelay time.Duration `env:"MOCK_DELAY" envDefault:"2s"`
}

// NormalizedMode lower-cases Mode. Anything else than "http" is the mock.
func (c Generator) NormalizedMode() string {
	if strings.EqualFold(strings.TrimSpace(c.Mode), GeneratorModeHTTP) {
		return GeneratorModeHTTP
	}
	return GeneratorModeMock
}

func (c Generator) Validate() error {
	if c.NormalizedMode() == GeneratorModeHTTP && c.URL == "" {
		return errors.New("GENERATOR_URL is required when GENERATOR_MODE=http")
	}
	if c.MockDelay < 0 {
		return errors.New("GENERATOR_MOCK_DELAY must not be negative")
	}
	return nil
}
