package server

import (
	"errors"
	"time"

	"libris/internal/models"

	"github.com/gofiber/fiber/v2"
)

// Envelope is the uniform JSON wrapper carried by every response. Success
// responses fill Data (and Count for lists); failures fill Message with a
// human-readable description and Error with the raw cause.
type Envelope struct {
	Success   bool        `json:"success"`
	Data      interface{} `json:"data,omitempty"`
	Count     *int        `json:"count,omitempty"`
	Message   string      `json:"message,omitempty"`
	Error     string      `json:"error,omitempty"`
	Timestamp string      `json:"timestamp"`
}

func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

func respondData(c *fiber.Ctx, status int, data interface{}) error {
	return c.Status(status).JSON(Envelope{
		Success:   true,
		Data:      data,
		Timestamp: timestamp(),
	})
}

func respondList(c *fiber.Ctx, data interface{}, count int) error {
	return c.Status(fiber.StatusOK).JSON(Envelope{
		Success:   true,
		Data:      data,
		Count:     &count,
		Timestamp: timestamp(),
	})
}

func respondMessage(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(Envelope{
		Success:   true,
		Message:   message,
		Timestamp: timestamp(),
	})
}

// respondError maps the error to an HTTP status from the AppError code and
// writes the failure envelope. Message stays human readable; the raw cause
// only ever lands in the error field.
func respondError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	message := "Internal server error"
	rawError := ""

	var appErr *models.AppError
	if errors.As(err, &appErr) {
		message = appErr.Message
		if appErr.Err != nil {
			rawError = appErr.Err.Error()
		}
		switch appErr.Code {
		case "VALIDATION_ERROR":
			status = fiber.StatusBadRequest
		case "UNAUTHORIZED":
			status = fiber.StatusUnauthorized
		case "NOT_FOUND":
			status = fiber.StatusNotFound
		case "CONFLICT":
			status = fiber.StatusConflict
		default:
			status = fiber.StatusInternalServerError
		}
	} else if err != nil {
		rawError = err.Error()
	}

	return c.Status(status).JSON(Envelope{
		Success:   false,
		Message:   message,
		Error:     rawError,
		Timestamp: timestamp(),
	})
}

func respondValidationError(c *fiber.Ctx, message string) error {
	return respondError(c, models.NewValidationError(message))
}
