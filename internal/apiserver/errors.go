package apiserver

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

var (
	ErrNotFound     = errors.New("Department not found")
	ErrConflict     = errors.New("Department already exists")
	ErrInvalidLogin = errors.New("Invalid email or password")
)

// HTTPError is an error with a status code and the message clients display.
type HTTPError struct {
	Status  int
	Message string
	Err     error
}

func (e *HTTPError) Error() string {
	return e.Message
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}

func badRequest(msg string) error {
	return &HTTPError{Status: http.StatusBadRequest, Message: msg}
}

func unauthorized(msg string) error {
	return &HTTPError{Status: http.StatusUnauthorized, Message: msg}
}

func forbidden(msg string) error {
	return &HTTPError{Status: http.StatusForbidden, Message: msg}
}

// toHTTPError maps domain and framework errors onto a status and message.
func toHTTPError(err error) *HTTPError {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return &HTTPError{Status: fiberErr.Code, Message: fiberErr.Message, Err: err}
	}
	switch {
	case errors.Is(err, ErrNotFound):
		return &HTTPError{Status: http.StatusNotFound, Message: err.Error(), Err: err}
	case errors.Is(err, ErrConflict):
		return &HTTPError{Status: http.StatusBadRequest, Message: err.Error(), Err: err}
	case errors.Is(err, ErrInvalidLogin):
		return &HTTPError{Status: http.StatusUnauthorized, Message: err.Error(), Err: err}
	}
	return &HTTPError{Status: http.StatusInternalServerError, Message: "internal server error", Err: err}
}

// errorHandler renders every handler error as {"message": "..."}.
func errorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		httpErr := toHTTPError(err)
		if httpErr.Status >= http.StatusInternalServerError {
			logger.Error("request failed",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.Error(err))
		}
		return c.Status(httpErr.Status).JSON(fiber.Map{"message": httpErr.Message})
	}
}
