package apperror

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// Sentinel kinds services wrap their failures with. Handlers never
// inspect anything else.
var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrBadRequest   = errors.New("bad request")
)

type Error struct {
	kind error
	msg  string
}

func (e *Error) Error() string { return e.msg }

func (e *Error) Unwrap() error { return e.kind }

func Unauthorized(msg string) error { return &Error{kind: ErrUnauthorized, msg: msg} }

func Forbidden(msg string) error { return &Error{kind: ErrForbidden, msg: msg} }

func NotFound(msg string) error { return &Error{kind: ErrNotFound, msg: msg} }

func Conflict(msg string) error { return &Error{kind: ErrConflict, msg: msg} }

func BadRequest(msg string) error { return &Error{kind: ErrBadRequest, msg: msg} }

// Status maps an error to the HTTP status it should surface as.
func Status(err error) int {
	switch {
	case errors.Is(err, ErrUnauthorized):
		return fiber.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return fiber.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, ErrConflict):
		return fiber.StatusConflict
	case errors.Is(err, ErrBadRequest):
		return fiber.StatusBadRequest
	}
	return fiber.StatusInternalServerError
}

// Fiber translates a service error into the fiber error every handler
// returns at the transport boundary.
func Fiber(err error) error {
	return fiber.NewError(Status(err), err.Error())
}
