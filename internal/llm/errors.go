package llm

import "fmt"

// TransportError covers everything that prevented a response from
// arriving: connection refusal, DNS failure, dial timeout.
type TransportError struct {
	Cause error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport failure: %v", e.Cause)
}

func (e *TransportError) Unwrap() error {
	return e.Cause
}

// APIError is a structured error envelope returned by the service
// over a successful transport.
type APIError struct {
	Code    int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API error %d: %s", e.Code, e.Message)
}
