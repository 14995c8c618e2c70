package middleware

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
	"github.com/hngvu/payfastacy/internal/constants"
)

const APIKeyHeader = "x-api-key"

// APIKey guards the client-facing routes with a shared secret. The webhook
// callback route is registered without it.
func APIKey(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		presented := c.Get(APIKeyHeader)

		if subtle.ConstantTimeCompare([]byte(presented), []byte(key)) != 1 {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"code":    constants.ErrCodeUnauthorized,
				"message": constants.GetErrorMessage(constants.ErrCodeUnauthorized),
			})
		}

		return c.Next()
	}
}
