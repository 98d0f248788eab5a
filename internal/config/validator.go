package config

import (
	"fmt"
	"strings"
)

// ErrorCode classifies validation failures.
type ErrorCode string

const (
	CredentialMissing ErrorCode = "CREDENTIAL_MISSING"
	CredentialInvalid ErrorCode = "CREDENTIAL_INVALID"
)

// ValidationError is a configuration validation failure with
// actionable remediation hints.
type ValidationError struct {
	Code        ErrorCode
	Field       string
	Message     string
	Suggestions []string
}

func (e *ValidationError) Error() string {
	result := fmt.Sprintf("%s: %s", e.Field, e.Message)
	if len(e.Suggestions) > 0 {
		result += "\n  Suggestions:"
		for _, s := range e.Suggestions {
			result += fmt.Sprintf("\n  - %s", s)
		}
	}
	return result
}

// Hint returns the remediation suggestions as a single block suitable
// for the presenter, or "" when there are none.
func (e *ValidationError) Hint() string {
	if len(e.Suggestions) == 0 {
		return ""
	}
	return strings.Join(e.Suggestions, "\n")
}
