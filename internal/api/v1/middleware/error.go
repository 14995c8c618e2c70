package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/hngvu/payfastacy/internal/constants"
	"github.com/hngvu/payfastacy/internal/service"
)

// ErrorHandler translates service.Error codes into the structured failure
// body; internal detail never crosses the boundary beyond the mapped message.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var serviceErr service.Error
		if errors.As(err, &serviceErr) {
			return handleServiceError(c, serviceErr)
		}

		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"code":    constants.ErrCodeInternalError,
			"message": constants.GetErrorMessage(constants.ErrCodeInternalError),
		})
	}
}

func handleServiceError(c *fiber.Ctx, err service.Error) error {
	errorCode := err.Code

	status := constants.GetHTTPStatus(errorCode)
	if status == 500 && errorCode != constants.ErrCodeInternalError &&
		errorCode != constants.ErrCodeGenerationExhausted {
		errorCode = constants.ErrCodeInternalError
	}

	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"code":    errorCode,
		"message": constants.GetErrorMessage(errorCode),
	})
}
