package errors

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// ErrorHandler maps domain errors to HTTP responses. Registered as the Fiber
// app error handler so handlers only return errors upward.
func ErrorHandler(c *fiber.Ctx, err error) error {
	if err == nil {
		return nil
	}

	var (
		transitionErr *InvalidTransitionError
		userErr       *UserNotFoundError
		videoErr      *VideoNotFoundError
		duplicateErr  *DuplicateClientError
		storageErr    *StorageError
		authErr       *UnauthorizedError
		validationErr *ValidationError
		fiberErr      *fiber.Error
	)

	switch {
	case errors.As(err, &transitionErr):
		return respond(c, fiber.StatusBadRequest, "invalid_transition", transitionErr.Error())
	case errors.As(err, &validationErr):
		return respond(c, fiber.StatusBadRequest, "invalid_request", validationErr.Error())
	case errors.As(err, &authErr):
		return respond(c, fiber.StatusUnauthorized, "unauthorized", authErr.Error())
	case errors.As(err, &userErr):
		return respond(c, fiber.StatusNotFound, "user_not_found", userErr.Error())
	case errors.As(err, &videoErr):
		return respond(c, fiber.StatusNotFound, "video_not_found", videoErr.Error())
	case errors.As(err, &duplicateErr):
		return respond(c, fiber.StatusConflict, "duplicate_client", duplicateErr.Error())
	case errors.As(err, &storageErr):
		return respond(c, fiber.StatusInternalServerError, "storage_error", "temporary storage failure")
	case errors.As(err, &fiberErr):
		return respond(c, fiberErr.Code, "http_error", fiberErr.Message)
	default:
		return respond(c, fiber.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func respond(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(errorResponse{
		Error:   code,
		Message: message,
	})
}
