// internals/middlewares/auth/system_token.go
package auth

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
)

// SystemToken guards the cron endpoints with a shared secret instead of a
// bearer token. Exact match against the configured value, nothing fancier.
func SystemToken(expected string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		got := c.Get("X-System-Token")
		if expected == "" || subtle.ConstantTimeCompare([]byte(got), []byte(expected)) != 1 {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid system token")
		}
		return c.Next()
	}
}
