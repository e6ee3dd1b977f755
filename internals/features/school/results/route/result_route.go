// file: internals/features/school/results/route/result_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	resultctl "schoolhub_backend/internals/features/school/results/controller"
	authmw "schoolhub_backend/internals/middlewares/auth"
)

// ResultRoutes mendaftarkan endpoint result berbobot (legacy path).
func ResultRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := resultctl.NewResultController(db)

	staff := authmw.OnlyRoles("Only teachers may manage results", "teacher", "admin", "superadmin")

	grp := user.Group("/results")
	grp.Get("/", ctrl.ListForStudent)
	grp.Post("/", staff, ctrl.Upsert)
	grp.Patch("/:id/publish", staff, ctrl.Publish)
	grp.Patch("/:id/unpublish", staff, ctrl.Unpublish)
	grp.Delete("/:id", staff, ctrl.Delete)
}
