// file: internals/route/base_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func BaseRoutes(app *fiber.App, db *gorm.DB) {
	app.Get("/health", func(c *fiber.Ctx) error {
		status := "ok"
		if sqlDB, err := db.DB(); err != nil || sqlDB.Ping() != nil {
			status = "degraded"
		}
		return c.JSON(fiber.Map{
			"status":  status,
			"service": "codercamp-backend",
		})
	})
}
