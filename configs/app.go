package configs

import (
	_ "embed"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"weather-relay/pkg/resource"
)

//go:embed application.yml
var defaultProperties []byte

var validate = validator.New()

// AppConfig is read once at startup and shared read-only by every request
type AppConfig struct {
	Name            string        `validate:"required"`
	Port            string        `validate:"required,numeric"`
	ContextPath     string        `validate:"omitempty,startswith=/"`
	ShutdownTimeout time.Duration `validate:"gte=0"`
	WeatherAPI      WeatherAPIConfig
}

// WeatherAPIConfig configures the provider client. Key is deliberately not
// required: without it every lookup fails with the generic upstream error.
type WeatherAPIConfig struct {
	BaseURL           string        `validate:"required,url"`
	Key               string        `validate:"-"`
	ConnectionTimeout time.Duration `validate:"gt=0"`
	ReadTimeout       time.Duration `validate:"gt=0"`
}

// LoadAppConfig reads the properties file at path, or the embedded defaults when
// path is empty, and validates the result.
func LoadAppConfig(path string) (*AppConfig, error) {
	var err error
	if path != "" {
		err = resource.Init(path)
	} else {
		err = resource.Load(defaultProperties)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read properties: %w", err)
	}

	cfg := &AppConfig{
		Name:            resource.GetString("app.name"),
		Port:            resource.GetString("app.server.port"),
		ContextPath:     strings.TrimRight(resource.GetString("app.server.context-path"), "/"),
		ShutdownTimeout: resource.GetDuration("app.server.shutdown-timeout"),
		WeatherAPI: WeatherAPIConfig{
			BaseURL:           resource.GetString("weather.api.base-url"),
			Key:               resource.GetString("weather.api.key"),
			ConnectionTimeout: resource.GetDuration("weather.api.connection-timeout"),
			ReadTimeout:       resource.GetDuration("weather.api.read-timeout"),
		},
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}
