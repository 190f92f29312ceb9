package serverutils

import "github.com/gofiber/fiber/v2"

// AppError is the error taxonomy the handlers translate to HTTP:
// validation (400, field detail), unauthenticated (401), not-found
// (404, also covers foreign-owned rows so existence never leaks).
// Anything else surfaces as a generic 500.
type AppError struct {
	Code    int
	Message string
	Fields  map[string]string
}

func (e *AppError) Error() string {
	return e.Message
}

func NewBadRequest(message string) *AppError {
	return &AppError{Code: fiber.StatusBadRequest, Message: message}
}

func NewValidationError(fields map[string]string) *AppError {
	return &AppError{
		Code:    fiber.StatusBadRequest,
		Message: "validation failed",
		Fields:  fields,
	}
}

func NewUnauthenticated(message string) *AppError {
	return &AppError{Code: fiber.StatusUnauthorized, Message: message}
}

func NewNotFound(message string) *AppError {
	return &AppError{Code: fiber.StatusNotFound, Message: message}
}
