package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"sportan_backend/internals/middlewares/logger"
)

// SetupMiddlewares installs the always-on middleware chain. Order matters:
// recovery first so panics in anything below still produce a response.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
}
