// Package apierror provides standardized error response structures for the API
// plus the error kinds the services use to signal how a failure must be mapped
// to HTTP. All errors returned to clients go through this package to ensure
// consistency and to prevent leaking internal details (stack traces, DB errors).
package apierror

import "errors"

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// ValidationError wraps multiple field errors.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Error de validacion", Fields: fields}
}

// ── Error kinds ──────────────────────────────────────────────────────────────
// Cada clase de falla de negocio se marca con un centinela para que los
// handlers puedan elegir el código HTTP sin inspeccionar strings.

var (
	// ErrNotFound: la entidad no existe.
	ErrNotFound = errors.New("not found")
	// ErrConflict: transición de estado inválida (p. ej. pagar una cuota ya pagada).
	ErrConflict = errors.New("conflict")
	// ErrInvalidArgument: entrada inválida (importe no positivo, id malformado).
	ErrInvalidArgument = errors.New("invalid argument")
)

type kindError struct {
	kind error
	msg  string
}

func (e *kindError) Error() string { return e.msg }
func (e *kindError) Unwrap() error { return e.kind }

// NotFound builds an error that handlers map to 404.
func NotFound(msg string) error { return &kindError{kind: ErrNotFound, msg: msg} }

// Conflict builds an error that handlers map to 409.
func Conflict(msg string) error { return &kindError{kind: ErrConflict, msg: msg} }

// InvalidArgument builds an error that handlers map to 400.
func InvalidArgument(msg string) error { return &kindError{kind: ErrInvalidArgument, msg: msg} }

// StatusCode maps an error kind to its HTTP status. Unknown errors are 500.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return 404
	case errors.Is(err, ErrConflict):
		return 409
	case errors.Is(err, ErrInvalidArgument):
		return 400
	default:
		return 500
	}
}
