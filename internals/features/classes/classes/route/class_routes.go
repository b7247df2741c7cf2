// file: internals/features/classes/classes/route/class_routes.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ctl "codercamp_backend/internals/features/classes/classes/controller"
)

// /api/a/classes
func AdminRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ch := ctl.New(db, v)
	eh := ctl.NewEnrollment(db, v)

	g := r.Group("/classes")
	g.Post("/", ch.Create)
	g.Get("/", ch.List)
	g.Get("/:id", ch.GetByID)
	g.Patch("/:id", ch.Patch)
	g.Delete("/:id", ch.Delete)

	g.Post("/:id/enrollments", eh.Enroll)
	g.Get("/:id/enrollments", eh.ListByClass)
	g.Delete("/:id/enrollments/:coder_id", eh.Unenroll)
}

// /api/c/classes — coach kelola kelasnya sendiri
func CoachRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	ch := ctl.New(db, v)
	eh := ctl.NewEnrollment(db, v)

	g := r.Group("/classes")
	g.Get("/mine", ch.ListMine)
	g.Get("/:id", ch.GetByID)
	g.Patch("/:id", ch.Patch)
	g.Get("/:id/enrollments", eh.ListByClass)
}
