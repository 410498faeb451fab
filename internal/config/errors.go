package config

import (
	"errors"
)

var (
	// ErrSecretKeyRequired is returned if no source supplies secret_key.
	ErrSecretKeyRequired = errors.New("config secret_key must be set and non-empty")

	// ErrNoCORSOrigins is returned if cors_origins parses to an empty list.
	ErrNoCORSOrigins = errors.New("config cors_origins can not be empty")
)
