package config

import (
	"github.com/cms-api/cms-api/internal/logger"
)

// Settings is the single configuration value for the service.
// It is built once at startup by Load and never mutated afterwards;
// consumers receive it by pointer and treat it as read-only.
type Settings struct {
	// DatabaseURL points at the backing database. No connection is
	// opened yet; the field is reserved for the persistence layer.
	DatabaseURL string `json:"database_url" toml:"database_url"`

	// APIHost is the listen address of the web service.
	APIHost string `json:"api_host" toml:"api_host"`

	// APIPort is the listen port of the web service.
	// The 1-65535 range is intentionally not enforced.
	APIPort int `json:"api_port" toml:"api_port"`

	// CORSOrigins are the origins allowed by the CORS policy.
	CORSOrigins []string `json:"cors_origins" toml:"cors_origins" validate:"min=1,dive,required"`

	// SecretKey signs access tokens. It has no default and the
	// service refuses to start without it.
	SecretKey string `json:"secret_key" toml:"secret_key" validate:"required"`

	// Algorithm is the token signing algorithm.
	Algorithm string `json:"algorithm" toml:"algorithm"`

	// AccessTokenExpireMinutes is the access token lifetime.
	AccessTokenExpireMinutes int `json:"access_token_expire_minutes" toml:"access_token_expire_minutes"`

	// LogLevel controls the zerolog global level.
	LogLevel string `json:"log_level" toml:"log_level"`
}

// LoggerConfig derives the logger configuration from the settings.
func (s *Settings) LoggerConfig() logger.Log {
	return logger.Log{
		LogLevel:                 s.LogLevel,
		AppName:                  "cms-api",
		ServiceName:              "web",
		EnableAccessLogToConsole: true,
		Console:                  logger.Console{Enabled: true},
	}
}
