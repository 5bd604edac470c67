package geneticsqa

import (
	"errors"
	"fmt"
)

// ErrTimeout indicates the model request exceeded its deadline.
var ErrTimeout = errors.New("model request timed out")

// TransportError indicates a non-success HTTP status or a network-level
// failure while talking to the completion endpoint.
type TransportError struct {
	StatusCode int
	Message    string
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("API error: %d - %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("transport error: %s", e.Message)
}

// ParseError indicates the extracted response text was not well-formed JSON.
// Fragment carries a bounded slice of the offending text for diagnostics.
type ParseError struct {
	Fragment string
	Err      error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing model response: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// SchemaError indicates a well-formed record that fails the schema contract:
// a missing field, wrong option cardinality, or a failed confidence gate.
type SchemaError struct {
	Reason string
}

func (e *SchemaError) Error() string {
	return "schema violation: " + e.Reason
}

// retryable reports whether an error is worth another attempt. Only
// transport failures and timeouts qualify; malformed payloads will not
// improve by resending the same request.
func retryable(err error) bool {
	var te *TransportError
	return errors.As(err, &te) || errors.Is(err, ErrTimeout)
}
