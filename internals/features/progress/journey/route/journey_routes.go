// file: internals/features/progress/journey/route/journey_routes.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ctl "codercamp_backend/internals/features/progress/journey/controller"
)

// /api/a/...
func AdminRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	h := ctl.New(db, v)
	r.Get("/journeys/:coder_id/:level_id", h.GetByCoder)
	r.Post("/classes/:id/journeys/bypass", h.Bypass)
}

// /api/c/...
func CoachRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	h := ctl.New(db, v)
	r.Get("/journeys/:coder_id/:level_id", h.GetByCoder)
	r.Post("/journeys/completions", h.RecordCompletion)
}

// /api/u/...
func UserRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	h := ctl.New(db, v)
	r.Get("/journeys/mine/:level_id", h.GetMine)
}
