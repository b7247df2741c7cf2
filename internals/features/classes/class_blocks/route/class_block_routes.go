// file: internals/features/classes/class_blocks/route/class_block_routes.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ctl "codercamp_backend/internals/features/classes/class_blocks/controller"
)

// /api/a/...
func AdminRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	h := ctl.New(db, v)
	r.Post("/classes/:id/blocks/instantiate", h.Instantiate)
	r.Get("/classes/:id/blocks", h.ListByClass)
	r.Post("/classes/:id/blocks/recompute", h.Recompute)
	r.Patch("/classes/:id/blocks/statuses", h.OverrideStatuses)
}

// /api/c/...
func CoachRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	h := ctl.New(db, v)
	r.Get("/classes/:id/blocks", h.ListByClass)
	r.Post("/classes/:id/blocks/recompute", h.Recompute)
}

// /api/u/...
func UserRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	h := ctl.New(db, v)
	r.Get("/classes/:id/blocks", h.ListByClass)
}
