package utils

import (
	"errors"
	"fmt"

	"restaurant_manager/constants"

	"github.com/gofiber/fiber/v2"
)

// AppError is a business failure that maps onto an HTTP status.
type AppError struct {
	Status  int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NotFound(message string, err error) *AppError {
	return &AppError{Status: fiber.StatusNotFound, Message: message, Err: err}
}

func BadRequest(message string, err error) *AppError {
	return &AppError{Status: fiber.StatusBadRequest, Message: message, Err: err}
}

func Conflict(message string, err error) *AppError {
	return &AppError{Status: fiber.StatusConflict, Message: message, Err: err}
}

// StatusOf returns the HTTP status carried by err, 500 for anything unexpected.
func StatusOf(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Status
	}
	return fiber.StatusInternalServerError
}

// HandleError writes err using the error envelope. Store and driver errors are
// reported as internal errors without interpretation.
func HandleError(c *fiber.Ctx, err error) error {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return ErrorResponse(c, appErr.Status, appErr.Message, appErr.Err)
	}
	Log.WithField("request_id", c.Locals("requestid")).WithError(err).Error("unexpected error")
	return ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
}
