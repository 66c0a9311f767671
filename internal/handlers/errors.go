package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/ats-engine/internal/extraction"
	"alfredoptarigan/ats-engine/internal/repositories"
	"alfredoptarigan/ats-engine/internal/services"
)

func respondError(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(fiber.Map{
		"error": message,
		"code":  code,
	})
}

// statusFor maps service errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, repositories.ErrNotFound), errors.Is(err, services.ErrJobNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, services.ErrUnsupportedFileType), errors.Is(err, services.ErrEmptyQuery):
		return fiber.StatusBadRequest
	case errors.Is(err, extraction.ErrTextTooShort):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, services.ErrCandidateArchived):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// ErrorHandler renders errors that reach fiber in the same shape handlers use.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}

	return respondError(c, code, err.Error())
}
