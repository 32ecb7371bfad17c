package llm

import "fmt"

// GatewayError represents a failure calling the external completion service:
// transport errors, auth errors, and unusable provider responses.
type GatewayError struct {
	Message string
	Cause   error
}

func (e *GatewayError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("gateway error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("gateway error: %s", e.Message)
}

func (e *GatewayError) Unwrap() error {
	return e.Cause
}
