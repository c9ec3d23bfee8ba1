package transport

import "fmt"

// NetworkError means the server could not be reached or the exchange was cut short:
// dial, DNS, TLS and timeout failures, or a connection dropped mid-response.
type NetworkError struct {
	Op    string
	Cause error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: network error: %v", e.Op, e.Cause)
}

func (e *NetworkError) Unwrap() error {
	return e.Cause
}

// StatusError is a non-2xx response. Body holds the readable text of the response
// body, already trimmed; it may be empty.
type StatusError struct {
	Op   string
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("%s: HTTP status %d: %s", e.Op, e.Code, e.Body)
	}
	return fmt.Sprintf("%s: HTTP status %d", e.Op, e.Code)
}

// DecodeError means a 2xx response body could not be read as the expected shape.
type DecodeError struct {
	Op    string
	Cause error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: malformed response: %v", e.Op, e.Cause)
}

func (e *DecodeError) Unwrap() error {
	return e.Cause
}
