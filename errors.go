package rinth

import "fmt"

// APIError is an error response from the server. Code carries the
// server's short error name when the body was a structured error.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("api error %d (%s): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// UnsupportedAlgorithmError reports a hash algorithm outside the set the
// API understands.
type UnsupportedAlgorithmError struct {
	Algorithm HashAlgorithm
}

func (e *UnsupportedAlgorithmError) Error() string {
	return fmt.Sprintf("unsupported hash algorithm %q", string(e.Algorithm))
}
