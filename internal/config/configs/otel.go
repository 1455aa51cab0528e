package configs

// Otel configures trace export. Spans are always created; they are only
// exported when Enabled is set and Endpoint is not empty.
type Otel struct {
	Enabled     bool   `env:"ENABLED" envDefault:"false"`
	Endpoint    string `env:"ENDPOINT"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"adkit"`
}
