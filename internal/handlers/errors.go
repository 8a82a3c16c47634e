package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"catalog/internal/services"

	"github.com/gofiber/fiber/v2"
)

// genericErrorMessage replaces the detail of unexpected errors.
const genericErrorMessage = "An internal server error occurred"

// ErrorResponse is the body of every error reply.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody describes a failed request.
type ErrorBody struct {
	Message   string            `json:"message"`
	Type      string            `json:"type"`
	Timestamp time.Time         `json:"timestamp"`
	Errors    map[string]string `json:"errors,omitempty"`
}

// ErrorHandler is the Fiber error handler of the API. It is the only place
// where error kinds become status codes:
// NotFound → 404, Validation and InvalidState → 400, anything else → 500
// with a generic message.
func ErrorHandler(c *fiber.Ctx, err error) error {
	status, body := errorReply(err)
	if status == fiber.StatusInternalServerError {
		log.Printf("Unhandled error on %s %s: %v", c.Method(), c.Path(), err)
	}
	return c.Status(status).JSON(ErrorResponse{Error: body})
}

func errorReply(err error) (int, ErrorBody) {
	body := ErrorBody{Timestamp: time.Now().UTC()}

	var validationErr *services.ValidationError
	var fiberErr *fiber.Error
	switch {
	case errors.As(err, &validationErr):
		body.Message = validationErr.Message
		body.Type = "Validation"
		body.Errors = validationErr.Fields
		return fiber.StatusBadRequest, body
	case errors.Is(err, services.ErrNotFound):
		body.Message = err.Error()
		body.Type = "NotFound"
		return fiber.StatusNotFound, body
	case errors.Is(err, services.ErrInvalidState):
		body.Message = err.Error()
		body.Type = "InvalidState"
		return fiber.StatusBadRequest, body
	case errors.As(err, &fiberErr) && fiberErr.Code < fiber.StatusInternalServerError:
		body.Message = fiberErr.Message
		body.Type = http.StatusText(fiberErr.Code)
		if fiberErr.Code == fiber.StatusBadRequest {
			body.Type = "Validation"
		}
		return fiberErr.Code, body
	}

	body.Message = genericErrorMessage
	body.Type = "InternalServerError"
	return fiber.StatusInternalServerError, body
}

func invalidBody(err error) error {
	return fiber.NewError(fiber.StatusBadRequest, fmt.Sprintf("Invalid request body: %v", err))
}

func invalidQuery(field, problem string) error {
	return validationError(field, fmt.Sprintf("Query parameter '%s' %s", field, problem))
}

func validationError(field, msg string) error {
	return &services.ValidationError{
		Field:   field,
		Message: msg,
		Fields:  map[string]string{field: msg},
	}
}

// parseID reads a positive integer :id route parameter.
func parseID(c *fiber.Ctx) (uint, error) {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return 0, validationError("id", "Route parameter 'id' must be a positive integer")
	}
	return uint(id), nil
}
