// Package outcome provides the tri-state result returned by every remote operation.
package outcome

import "fmt"

// Kind identifies which variant of an Outcome is active.
type Kind int

const (
	// KindSuccess carries a value.
	KindSuccess Kind = iota
	// KindError carries a human-readable message and, for HTTP failures, a status code.
	KindError
	// KindNetworkError means the server could not be reached. It carries no message.
	KindNetworkError
)

func (k Kind) String() string {
	switch k {
	case KindSuccess:
		return "success"
	case KindError:
		return "error"
	case KindNetworkError:
		return "network_error"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Outcome is the result of a remote call: a success value, a server-reported error,
// or a network-level failure. The zero value is not meaningful; use the constructors.
type Outcome[T any] struct {
	kind    Kind
	value   T
	message string
	code    int
	hasCode bool
}

// Success wraps a value.
func Success[T any](v T) Outcome[T] {
	return Outcome[T]{kind: KindSuccess, value: v}
}

// Failure builds an Error outcome for a structured HTTP failure.
func Failure[T any](message string, code int) Outcome[T] {
	return Outcome[T]{kind: KindError, message: nonBlank(message), code: code, hasCode: true}
}

// FailureNoCode builds an Error outcome for failures that did not come from an HTTP status.
func FailureNoCode[T any](message string) Outcome[T] {
	return Outcome[T]{kind: KindError, message: nonBlank(message)}
}

// NetworkFailure builds a NetworkError outcome.
func NetworkFailure[T any]() Outcome[T] {
	return Outcome[T]{kind: KindNetworkError}
}

// Kind returns the active variant.
func (o Outcome[T]) Kind() Kind { return o.kind }

// IsSuccess reports whether the outcome carries a value.
func (o Outcome[T]) IsSuccess() bool { return o.kind == KindSuccess }

// Value returns the success value. ok is false for the other variants.
func (o Outcome[T]) Value() (v T, ok bool) {
	if o.kind != KindSuccess {
		return v, false
	}
	return o.value, true
}

// Message returns the error message. Empty for Success and NetworkError.
func (o Outcome[T]) Message() string { return o.message }

// Code returns the HTTP status code of a structured server failure.
func (o Outcome[T]) Code() (int, bool) { return o.code, o.hasCode }

func (o Outcome[T]) String() string {
	switch o.kind {
	case KindSuccess:
		return fmt.Sprintf("Success(%v)", o.value)
	case KindError:
		if o.hasCode {
			return fmt.Sprintf("Error(%q, %d)", o.message, o.code)
		}
		return fmt.Sprintf("Error(%q)", o.message)
	default:
		return "NetworkError"
	}
}

// Match folds an outcome into a single value. All three branches are required.
func Match[T, R any](o Outcome[T], onSuccess func(T) R, onError func(message string, code *int) R, onNetwork func() R) R {
	switch o.kind {
	case KindSuccess:
		return onSuccess(o.value)
	case KindError:
		if o.hasCode {
			code := o.code
			return onError(o.message, &code)
		}
		return onError(o.message, nil)
	default:
		return onNetwork()
	}
}

// Map transforms the success value and carries the other variants through unchanged.
func Map[T, R any](o Outcome[T], fn func(T) R) Outcome[R] {
	switch o.kind {
	case KindSuccess:
		return Success(fn(o.value))
	case KindError:
		return Outcome[R]{kind: KindError, message: o.message, code: o.code, hasCode: o.hasCode}
	default:
		return NetworkFailure[R]()
	}
}

func nonBlank(message string) string {
	if message == "" {
		return "unknown error"
	}
	return message
}
