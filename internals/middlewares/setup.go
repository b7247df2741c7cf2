package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"codercamp_backend/internals/middlewares/logger"
)

// SetupMiddlewares memasang middleware global urut: recovery → cors → limiter → logger.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(GlobalRateLimiter())
	app.Use(logger.LoggerMiddleware())
}
