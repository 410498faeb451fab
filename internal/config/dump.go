package config

import (
	"bytes"
	"encoding/json"

	"github.com/BurntSushi/toml"
)

// Redacted replaces the secret key whenever settings are printed.
const Redacted = "[redacted]"

// Dump renders the settings as a TOML string.
// The secret key is redacted.
func Dump(s Settings) (string, error) {
	if s.SecretKey != "" {
		s.SecretKey = Redacted
	}

	var buffer bytes.Buffer
	t := toml.NewEncoder(&buffer)

	if err := t.Encode(s); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// DumpJSON renders the settings as an indented JSON string.
// The secret key is redacted.
func DumpJSON(s Settings) (string, error) {
	if s.SecretKey != "" {
		s.SecretKey = Redacted
	}

	var buffer bytes.Buffer
	j := json.NewEncoder(&buffer)
	j.SetIndent("", "  ")

	if err := j.Encode(s); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}
