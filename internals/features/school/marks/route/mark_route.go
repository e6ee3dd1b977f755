// file: internals/features/school/marks/route/mark_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	markctl "schoolhub_backend/internals/features/school/marks/controller"
	authmw "schoolhub_backend/internals/middlewares/auth"
)

// MarkRoutes mendaftarkan endpoint nilai (guru) + broadsheet (admin).
func MarkRoutes(user fiber.Router, admin fiber.Router, db *gorm.DB) {
	ctrl := markctl.NewMarkController(db)

	grp := user.Group("/marks",
		authmw.OnlyRoles("Only teachers may manage marks", "teacher", "admin", "superadmin"))
	grp.Post("/", ctrl.UpsertBatch)
	grp.Get("/", ctrl.ListCohort)

	admin.Get("/marks/broadsheet", ctrl.ExportBroadsheet)
}
