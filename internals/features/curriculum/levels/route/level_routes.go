// file: internals/features/curriculum/levels/route/level_routes.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ctl "codercamp_backend/internals/features/curriculum/levels/controller"
)

// /api/a/levels
func AdminRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	h := ctl.New(db, v)
	g := r.Group("/levels")
	g.Post("/", h.Create)
	g.Get("/", h.List)
	g.Get("/:id", h.GetByID)
	g.Patch("/:id", h.Patch)
	g.Delete("/:id", h.Delete)
}

// /api/u/levels — katalog read-only
func UserRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	h := ctl.New(db, v)
	g := r.Group("/levels")
	g.Get("/", h.List)
	g.Get("/:id", h.GetByID)
}
