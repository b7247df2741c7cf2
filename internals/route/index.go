// file: internals/route/index.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"codercamp_backend/internals/configs"
	"codercamp_backend/internals/constants"
	authMw "codercamp_backend/internals/middlewares/auth"

	classBlockRoute "codercamp_backend/internals/features/classes/class_blocks/route"
	classLessonRoute "codercamp_backend/internals/features/classes/class_lessons/route"
	classRoute "codercamp_backend/internals/features/classes/classes/route"
	sessionRoute "codercamp_backend/internals/features/classes/sessions/route"
	blockRoute "codercamp_backend/internals/features/curriculum/blocks/route"
	levelRoute "codercamp_backend/internals/features/curriculum/levels/route"
	journeyRoute "codercamp_backend/internals/features/progress/journey/route"
)

// SetupRoutes memasang seluruh endpoint:
//
//	/api/a → admin
//	/api/c → coach (admin ikut lolos)
//	/api/u → semua user login (coder/coach/admin)
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	v := validator.New()

	BaseRoutes(app, db)

	jwt := authMw.AuthJWT(authMw.AuthJWTOpts{
		Secret:              configs.JWTSecret,
		AllowCookieFallback: true,
	})

	api := app.Group("/api")

	admin := api.Group("/a", jwt, authMw.RequireRoles(constants.AdminOnly...))
	levelRoute.AdminRoutes(admin, db, v)
	blockRoute.AdminRoutes(admin, db, v)
	classRoute.AdminRoutes(admin, db, v)
	sessionRoute.AdminRoutes(admin, db, v)
	classBlockRoute.AdminRoutes(admin, db, v)
	classLessonRoute.AdminRoutes(admin, db, v)
	journeyRoute.AdminRoutes(admin, db, v)

	coach := api.Group("/c", jwt, authMw.RequireRoles(constants.CoachAndAbove...))
	blockRoute.CoachRoutes(coach, db, v)
	classRoute.CoachRoutes(coach, db, v)
	sessionRoute.CoachRoutes(coach, db, v)
	classBlockRoute.CoachRoutes(coach, db, v)
	classLessonRoute.CoachRoutes(coach, db, v)
	journeyRoute.CoachRoutes(coach, db, v)

	user := api.Group("/u", jwt, authMw.RequireRoles(constants.AllRoles...))
	levelRoute.UserRoutes(user, db, v)
	sessionRoute.UserRoutes(user, db, v)
	classBlockRoute.UserRoutes(user, db, v)
	classLessonRoute.UserRoutes(user, db, v)
	journeyRoute.UserRoutes(user, db, v)
}
