package config

import (
	"os"
	"time"
)

const (
	// EnvAPIKey is the only environment variable consulted for the
	// credential. Nothing below the entry point reads the environment.
	EnvAPIKey = "GEMINI_API_KEY"

	// DefaultAPIEndpoint is the Gemini REST API base URL.
	DefaultAPIEndpoint = "https://generativelanguage.googleapis.com/v1beta"

	// DefaultModel is the generation model. There is no user-facing
	// way to change it; the field exists so tests can point the
	// client elsewhere.
	DefaultModel = "gemini-2.0-flash"

	// DefaultMaxOutputTokens bounds the answer length. Answers are
	// meant to be one terse line, so the bound is tight.
	DefaultMaxOutputTokens = 100

	// DefaultConnectTimeout bounds connection establishment only.
	// The call itself is allowed to block until the server responds.
	DefaultConnectTimeout = 10 * time.Second

	// MinAPIKeyLength rejects obviously truncated keys before any
	// network round trip. Real Gemini keys are 39 characters.
	MinAPIKeyLength = 30
)

// Config holds everything one invocation needs. It is assembled once
// in LoadFromEnv and passed down explicitly.
type Config struct {
	APIKey          string
	APIEndpoint     string
	Model           string
	MaxOutputTokens int
	ConnectTimeout  time.Duration
}

// LoadFromEnv builds a Config from the process environment and the
// built-in defaults. The result is not yet validated.
func LoadFromEnv() *Config {
	return &Config{
		APIKey:          os.Getenv(EnvAPIKey),
		APIEndpoint:     DefaultAPIEndpoint,
		Model:           DefaultModel,
		MaxOutputTokens: DefaultMaxOutputTokens,
		ConnectTimeout:  DefaultConnectTimeout,
	}
}

// Validate checks the credential. It must be called before any client
// is constructed; a failure here means no network I/O has happened.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return &ValidationError{
			Code:    CredentialMissing,
			Field:   EnvAPIKey,
			Message: "no API key found in the environment",
			Suggestions: []string{
				"export " + EnvAPIKey + "=<your key>",
				"create a key at https://aistudio.google.com/apikey",
			},
		}
	}
	if len(c.APIKey) < MinAPIKeyLength {
		return &ValidationError{
			Code:    CredentialInvalid,
			Field:   EnvAPIKey,
			Message: "API key looks truncated (shorter than 30 characters)",
			Suggestions: []string{
				"check that the full key was exported, with no stray quotes or whitespace",
			},
		}
	}
	return nil
}
