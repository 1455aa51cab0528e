package configs

import "time"

// Redis configures the rate limit on generation submits. An empty URL
// disables it.
type Redis struct {
	URL    string        `env:"URL"`
	Limit  int           `env:"LIMIT" envDefault:"10"`
	Window time.Duration `env:"WINDOW" envDefault:"1m"`
}

func (c Redis) Enabled() bool {
	return c.URL != ""
}
