package presenters

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"smart-shopping-list/domain"
)

// ErrorEnvelope is the wire shape for every failed request.
type ErrorEnvelope struct {
	Status    int    `json:"status"`
	Error     string `json:"error"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	Path      string `json:"path"`
	RequestID string `json:"requestId"`
	Details   any    `json:"details,omitempty"`
}

type ValidationDetail struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

// SuccessResponse writes the entity itself as the response body.
func SuccessResponse(c *fiber.Ctx, status int, data any) error {
	return c.Status(status).JSON(data)
}

// MessageResponse writes a plain confirmation message body.
func MessageResponse(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"message": message})
}

// ErrorResponse translates a typed error into the error envelope. Services
// only raise domain errors; the status mapping lives here.
func ErrorResponse(c *fiber.Ctx, message string, err error) error {
	status, errorType := statusForError(err)

	envelope := ErrorEnvelope{
		Status:    status,
		Error:     errorType,
		Message:   message,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Path:      c.Path(),
		RequestID: uuid.NewString(),
	}

	var validationErrs validator.ValidationErrors
	switch {
	case errors.As(err, &validationErrs):
		details := make([]ValidationDetail, 0, len(validationErrs))
		for _, fieldErr := range validationErrs {
			details = append(details, ValidationDetail{
				Field: fieldErr.Field(),
				Issue: fieldErr.Tag(),
			})
		}
		envelope.Details = details
		if len(details) > 0 {
			envelope.Message = fmt.Sprintf("Invalid input: '%s' field is invalid.", details[0].Field)
		}
	case errors.Is(err, gorm.ErrDuplicatedKey):
		envelope.Details = err.Error()
	case status == fiber.StatusBadRequest || status == fiber.StatusNotFound:
		if err != nil {
			envelope.Message = err.Error()
		}
	}

	return c.Status(status).JSON(envelope)
}

func statusForError(err error) (int, string) {
	var validationErrs validator.ValidationErrors

	switch {
	case errors.As(err, &validationErrs),
		errors.Is(err, domain.ErrItemNameRequired),
		errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrParseUUID):
		return fiber.StatusBadRequest, "Bad Request"
	case errors.Is(err, domain.ErrListNotFound),
		errors.Is(err, domain.ErrItemNotFound):
		return fiber.StatusNotFound, "Not Found"
	case errors.Is(err, domain.ErrInvalidAPIKey):
		return fiber.StatusForbidden, "Forbidden"
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fiber.StatusConflict, "Conflict"
	default:
		return fiber.StatusInternalServerError, "Internal Server Error"
	}
}

// BadRequestResponse is for malformed bodies that never reach a service.
func BadRequestResponse(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(ErrorEnvelope{
		Status:    fiber.StatusBadRequest,
		Error:     "Bad Request",
		Message:   message,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Path:      c.Path(),
		RequestID: uuid.NewString(),
	})
}
