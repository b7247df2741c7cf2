// file: internals/features/classes/sessions/route/session_routes.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ctl "codercamp_backend/internals/features/classes/sessions/controller"
)

// /api/a/... — admin bisa generate & koreksi semua sesi
func AdminRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	h := ctl.New(db, v)
	r.Post("/classes/:id/sessions/generate", h.Generate)
	r.Get("/classes/:id/sessions", h.ListByClass)
	r.Patch("/sessions/:session_id", h.Patch)
}

// /api/c/... — coach lihat & ubah status sesi kelasnya
func CoachRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	h := ctl.New(db, v)
	r.Get("/classes/:id/sessions", h.ListByClass)
	r.Patch("/sessions/:session_id", h.Patch)
}

// /api/u/... — coder lihat jadwal kelasnya
func UserRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	h := ctl.New(db, v)
	r.Get("/classes/:id/sessions", h.ListByClass)
}
