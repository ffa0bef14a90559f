// Package apierror defines the error taxonomy shared by services and handlers.
// All errors returned to clients go through this package to ensure consistency
// and to prevent leaking internal details (stack traces, DB errors, etc.).
package apierror

import (
	"errors"
	"net/http"
)

// Kind classifies a business error. Handlers map kinds to HTTP statuses;
// services never touch status codes directly.
type Kind int

const (
	// Unauthenticated: missing or invalid bearer credential.
	Unauthenticated Kind = iota
	// Forbidden: valid identity, insufficient role or not the resource owner.
	Forbidden
	// NotFound: well-formed id with no matching record.
	NotFound
	// InvalidInput: malformed id or invalid payload.
	InvalidInput
	// Conflict: uniqueness violation or a business rule rejecting the change.
	Conflict
	// Storage: the repository did not acknowledge the write. Surfaced as a
	// generic server error, never exposing storage internals.
	Storage
)

// Error is the canonical business error. Message is user-facing.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

// From classifies any error for the handler layer. Errors that are not
// *Error (repository faults, driver errors) collapse into a generic Storage
// error so internals never reach the client.
func From(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return New(Storage, "Internal server error")
}

// Status maps a Kind to its HTTP status code.
func Status(kind Kind) int {
	switch kind {
	case Unauthenticated:
		return http.StatusUnauthorized
	case Forbidden:
		return http.StatusForbidden
	case NotFound:
		return http.StatusNotFound
	case InvalidInput:
		return http.StatusBadRequest
	case Conflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Response is the JSON envelope for all 4xx/5xx responses.
type Response struct {
	Error string `json:"error"`
}

func Envelope(msg string) Response { return Response{Error: msg} }
