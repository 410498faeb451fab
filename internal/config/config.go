// Package config collects the service settings from compiled-in defaults,
// an optional local env file and the process environment.
package config

import (
	"encoding/json"
	"io/fs"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// DefaultEnvFile is the env file looked up relative to the working directory.
const DefaultEnvFile = ".env"

// Compiled-in defaults for every optional settings field.
const (
	DefaultDatabaseURL              = "file:./dev.db"
	DefaultAPIHost                  = "0.0.0.0"
	DefaultAPIPort                  = 8000
	DefaultCORSOrigins              = "http://localhost:3000"
	DefaultAlgorithm                = "HS256"
	DefaultAccessTokenExpireMinutes = 30
	DefaultLogLevel                 = "info"
)

// settingKeys is the full set of environment keys consumed by Load.
// Adding a Settings field means adding its key here.
var settingKeys = []string{ //nolint:gochecknoglobals
	"database_url",
	"api_host",
	"api_port",
	"cors_origins",
	"secret_key",
	"algorithm",
	"access_token_expire_minutes",
	"log_level",
}

// Load builds the Settings value from three sources in increasing
// priority: compiled-in defaults, the env file (if it exists) and the
// process environment. Environment names are matched case-insensitively,
// so SECRET_KEY, secret_key and Secret_Key select the same key.
func Load(envFile string) (Settings, error) {
	v := viper.New()

	v.SetDefault("database_url", DefaultDatabaseURL)
	v.SetDefault("api_host", DefaultAPIHost)
	v.SetDefault("api_port", DefaultAPIPort)
	v.SetDefault("cors_origins", DefaultCORSOrigins)
	v.SetDefault("algorithm", DefaultAlgorithm)
	v.SetDefault("access_token_expire_minutes", DefaultAccessTokenExpireMinutes)
	v.SetDefault("log_level", DefaultLogLevel)

	if envFile != "" {
		v.SetConfigFile(envFile)
		v.SetConfigType("env")

		// a missing env file is fine, the environment alone may be complete
		if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Settings{}, errors.Wrap(err, "failed to read env file")
		}
	}

	for _, key := range settingKeys {
		if val, ok := lookupEnv(key); ok {
			v.Set(key, val)
		}
	}

	return buildSettings(v)
}

// lookupEnv finds an environment variable by name regardless of case.
// The canonical upper-case spelling wins over a folded match.
func lookupEnv(key string) (string, bool) {
	if val, ok := os.LookupEnv(strings.ToUpper(key)); ok {
		return val, true
	}

	for _, entry := range os.Environ() {
		name, val, found := strings.Cut(entry, "=")
		if found && strings.EqualFold(name, key) {
			return val, true
		}
	}

	return "", false
}

func buildSettings(v *viper.Viper) (Settings, error) {
	var (
		s   Settings
		err error
	)

	s.DatabaseURL = v.GetString("database_url")
	s.APIHost = v.GetString("api_host")
	s.SecretKey = v.GetString("secret_key")
	s.Algorithm = v.GetString("algorithm")
	s.LogLevel = v.GetString("log_level")

	if s.APIPort, err = cast.ToIntE(v.Get("api_port")); err != nil {
		return Settings{}, errors.Wrap(err, "config api_port must be an integer")
	}

	if s.AccessTokenExpireMinutes, err = cast.ToIntE(v.Get("access_token_expire_minutes")); err != nil {
		return Settings{}, errors.Wrap(err, "config access_token_expire_minutes must be an integer")
	}

	if s.CORSOrigins, err = parseOrigins(v.GetString("cors_origins")); err != nil {
		return Settings{}, err
	}

	return s, validate(s)
}

// parseOrigins parses cors_origins from its single string encoding.
// Both a JSON string list and a comma separated list are accepted.
func parseOrigins(raw string) ([]string, error) {
	trimmed := strings.TrimSpace(raw)

	if strings.HasPrefix(trimmed, "[") {
		var origins []string

		if err := json.Unmarshal([]byte(trimmed), &origins); err != nil {
			return nil, errors.Wrap(err, "config cors_origins is not a valid JSON list")
		}

		return origins, nil
	}

	var origins []string

	for _, origin := range strings.Split(trimmed, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}

	return origins, nil
}

// validate checks the assembled settings. secret_key is the only
// required field and its absence is fatal at startup.
func validate(s Settings) error {
	err := validator.New().Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(err, "invalid config")
	}

	for _, fieldErr := range fieldErrs {
		switch fieldErr.StructField() {
		case "SecretKey":
			return ErrSecretKeyRequired
		case "CORSOrigins":
			return ErrNoCORSOrigins
		}
	}

	return errors.Wrap(err, "invalid config")
}
