package errors

import (
	"log"

	"github.com/gofiber/fiber/v2"
)

// ErrorResponse is the uniform error body for every endpoint.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
	MaxSize string `json:"maxSize,omitempty"`
}

// HandleError maps an APIError onto the HTTP response. A failed request never
// takes the process down; anything unrecognized becomes a plain 500.
func HandleError(c *fiber.Ctx, err error) error {
	if err == nil {
		return nil
	}

	if ae, ok := err.(*APIError); ok {
		if ae.Err != nil {
			log.Printf("request error [%s]: %v", ae.Code, ae.Err)
		}

		var status int
		switch ae.Code {
		case CodeMissingFile, CodeInvalidRequest, CodeInvalidCutRange, CodePayloadTooLarge:
			status = fiber.StatusBadRequest
		case CodeInvalidCredentials:
			status = fiber.StatusUnauthorized
		case CodeDuplicateEmail:
			status = fiber.StatusConflict
		default:
			status = fiber.StatusInternalServerError
		}

		body := ErrorResponse{
			Error:   ae.Message,
			MaxSize: ae.MaxSize,
		}
		// Remote diagnostics are surfaced verbatim, never swallowed.
		if ae.Err != nil {
			body.Details = ae.Err.Error()
		}
		return c.Status(status).JSON(body)
	}

	log.Printf("unexpected error: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
		Error: "Internal server error",
	})
}
