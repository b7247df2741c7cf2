// file: internals/features/classes/class_lessons/route/class_lesson_routes.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ctl "codercamp_backend/internals/features/classes/class_lessons/controller"
)

// /api/a/...
func AdminRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	h := ctl.New(db, v)
	r.Get("/classes/:id/lessons", h.ListByClass)
	r.Get("/class-blocks/:class_block_id/lessons", h.ListByBlock)
	r.Post("/class-blocks/:class_block_id/lessons/sync", h.SyncBlock)
	r.Post("/classes/:id/lessons/sync", h.SyncClass)
	r.Post("/classes/:id/lessons/rebalance", h.Rebalance)
}

// /api/c/...
func CoachRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	h := ctl.New(db, v)
	r.Get("/classes/:id/lessons", h.ListByClass)
	r.Get("/class-blocks/:class_block_id/lessons", h.ListByBlock)
	r.Post("/classes/:id/lessons/rebalance", h.Rebalance)
}

// /api/u/...
func UserRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	h := ctl.New(db, v)
	r.Get("/classes/:id/lessons", h.ListByClass)
}
