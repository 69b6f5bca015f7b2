package handler

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"

	"eimzoapi/internal/service"
)

// errorPayload is the failure envelope shared by every endpoint. ErrMsg is a
// plain string for most failures; the timestamp not-acceptable case embeds
// the upstream JSON object instead.
type errorPayload struct {
	Success bool `json:"success"`
	ErrMsg  any  `json:"err_msg"`
}

// writeError responds with the standard failure envelope.
func writeError(c *fiber.Ctx, status int, errMsg any) error {
	return c.Status(status).JSON(errorPayload{Success: false, ErrMsg: errMsg})
}

// writeServiceError maps service failures onto the envelope: validation
// failures render as 400, a timestamp response without the expected field as
// 406 with the upstream body embedded. Anything else bubbles up to the
// global error handler.
func writeServiceError(c *fiber.Ctx, err error) error {
	var vErr *service.ValidationError
	if errors.As(err, &vErr) {
		return writeError(c, fiber.StatusBadRequest, vErr.ErrMsg)
	}
	var naErr *service.NotAcceptableError
	if errors.As(err, &naErr) {
		return writeError(c, fiber.StatusNotAcceptable, json.RawMessage(naErr.Body))
	}
	return err
}

// ErrorHandler returns a Fiber global error handler rendering every
// unhandled error in the shared envelope.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			status = e.Code
		}

		switch status {
		case fiber.StatusNotFound:
			return writeError(c, status, "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "method not allowed")
		default:
			return writeError(c, status, "internal server error")
		}
	}
}
