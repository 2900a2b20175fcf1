package apilayer

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrTransport is returned when the request could not be completed, or
	// the API responded with a non-2xx status.
	ErrTransport = errors.New("apilayer transport error")

	// ErrParse is returned when a response body matches neither the success
	// nor the error shape.
	ErrParse = errors.New("apilayer parse error")

	// ErrServer matches any ServerError.
	ErrServer = errors.New("apilayer server error")
)

// ServerError is an error reported by the API in a success=false body. Code
// and Info are exactly as returned upstream.
type ServerError struct {
	Code int
	Type string
	Info string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("apilayer responded with an error: code: %d. message: %s", e.Code, e.Info)
}

func (e *ServerError) Is(target error) bool {
	return target == ErrServer
}

// classifiedError pairs one of the sentinel kinds with its underlying cause.
type classifiedError struct {
	kind  error
	cause error
}

func (e *classifiedError) Error() string {
	return fmt.Sprintf("%s: %s", e.kind, e.cause)
}

func (e *classifiedError) Unwrap() []error {
	return []error{e.kind, e.cause}
}

func classify(kind, cause error) error {
	return &classifiedError{kind: kind, cause: cause}
}

// TransportError wraps err as an ErrTransport.
func TransportError(err error, message string) error {
	return classify(ErrTransport, errors.Wrap(err, message))
}

// ParseError wraps err as an ErrParse.
func ParseError(err error, message string) error {
	return classify(ErrParse, errors.Wrap(err, message))
}

// ParseErrorf returns a new ErrParse with a formatted message.
func ParseErrorf(format string, args ...interface{}) error {
	return classify(ErrParse, errors.Errorf(format, args...))
}
