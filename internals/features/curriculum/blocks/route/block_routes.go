// file: internals/features/curriculum/blocks/route/block_routes.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	ctl "codercamp_backend/internals/features/curriculum/blocks/controller"
	"codercamp_backend/internals/middlewares"
)

// /api/a/blocks + /api/a/lesson-templates
func AdminRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	bh := ctl.New(db, v)
	b := r.Group("/blocks")
	b.Post("/", bh.Create)
	b.Get("/by-level/:level_id", bh.ListByLevel)
	b.Get("/:id", bh.GetByID)
	b.Patch("/:id", bh.Patch)
	b.Delete("/:id", bh.Delete)
	// sync+rebalance banyak kelas sekaligus; dibatasi rate limiter sendiri
	b.Post("/:id/propagate", middlewares.PropagationRateLimiter(), bh.Propagate)

	th := ctl.NewLessonTemplate(db, v)
	t := r.Group("/lesson-templates")
	t.Post("/", th.Create)
	t.Get("/by-block/:block_id", th.ListByBlock)
	t.Patch("/:id", th.Patch)
	t.Delete("/:id", th.Delete)
	t.Post("/:id/example", th.UploadExample)
}

// /api/c/blocks — coach lihat struktur kurikulum
func CoachRoutes(r fiber.Router, db *gorm.DB, v *validator.Validate) {
	bh := ctl.New(db, v)
	th := ctl.NewLessonTemplate(db, v)
	b := r.Group("/blocks")
	b.Get("/by-level/:level_id", bh.ListByLevel)
	b.Get("/:id", bh.GetByID)
	r.Get("/lesson-templates/by-block/:block_id", th.ListByBlock)
}
