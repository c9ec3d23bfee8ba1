// Package repository wraps each remote resource of the resume assistant API. Every
// operation returns an outcome.Outcome; no error or panic crosses this boundary.
package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jonathan/resume-assistant/internal/logging"
	"github.com/jonathan/resume-assistant/internal/outcome"
	"github.com/jonathan/resume-assistant/internal/schemas"
	"github.com/jonathan/resume-assistant/internal/transport"
	"go.uber.org/zap"
)

// capture runs fn and folds its result into the outcome taxonomy.
func capture[T any](log logging.Logger, op string, fn func() (T, error)) (result outcome.Outcome[T]) {
	defer func() {
		if r := recover(); r != nil {
			log.Error("operation panicked", fmt.Errorf("%v", r), zap.String("op", op))
			result = outcome.FailureNoCode[T](op + " failed")
		}
	}()

	v, err := fn()
	if err != nil {
		return fromError[T](log, op, err)
	}
	return outcome.Success(v)
}

// fromError maps a failed call onto an outcome:
// transport failures become NetworkError, non-2xx responses become Error with the
// status code, anything else becomes Error without a code.
func fromError[T any](log logging.Logger, op string, err error) outcome.Outcome[T] {
	var (
		netErr    *transport.NetworkError
		statusErr *transport.StatusError
		schemaErr *schemas.ValidationError
	)

	switch {
	case errors.As(err, &netErr):
		log.Warn("network failure", zap.String("op", op), zap.Error(err))
		return outcome.NetworkFailure[T]()

	case errors.As(err, &statusErr):
		log.Warn("request rejected", zap.String("op", op), zap.Int("status", statusErr.Code))
		message := strings.TrimSpace(statusErr.Body)
		if message == "" {
			message = fmt.Sprintf("%s failed (%d)", op, statusErr.Code)
		}
		return outcome.Failure[T](message, statusErr.Code)

	case errors.As(err, &schemaErr):
		log.Warn("unexpected response shape", zap.String("op", op), zap.Error(err))
		return outcome.FailureNoCode[T](fmt.Sprintf("%s: unexpected response: %s", op, schemaErr.Summary()))

	default:
		log.Warn("operation failed", zap.String("op", op), zap.Error(err))
		message := strings.TrimSpace(err.Error())
		if message == "" {
			message = op + " failed"
		}
		return outcome.FailureNoCode[T](message)
	}
}

// decodeChecked validates body against the named schema before decoding it into out.
func decodeChecked(op, schema string, body []byte, out any) error {
	if err := schemas.ValidateBytes(schema, body); err != nil {
		return err
	}
	return transport.Decode(op, body, out)
}

func orLogger(log logging.Logger) logging.Logger {
	if log == nil {
		return logging.Nop()
	}
	return log
}
