package configs

import "time"

// Session controls the in-memory session registry. A zero IdleTTL keeps
// sessions until they are deleted.
type Session struct {
	IdleTTL time.Duration `env:"IDLE_TTL" envDefault:"2h"`
}
