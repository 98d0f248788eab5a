// Package llm defines the provider contract and the error taxonomy
// for remote generation calls.
package llm

import "context"

// NoResponseText is surfaced when the service answers successfully
// but no generated text can be extracted from the body. This is a
// degraded outcome, not an error: the invocation still exits zero.
const NoResponseText = "no response received"

// Reply is the result of one generation call.
type Reply struct {
	Text string
	// Degraded marks a structurally successful response that carried
	// no usable text; Text then holds NoResponseText.
	Degraded bool
}

// Provider performs a single blocking generation call. Implementations
// must classify failures as *TransportError or *APIError.
type Provider interface {
	Generate(ctx context.Context, prompt string) (*Reply, error)
}
