// file: internals/features/school/settings/route/admin_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	settingctl "schoolhub_backend/internals/features/school/settings/controller"
)

// SchoolSettingAdminRoutes — hanya admin/superadmin (group /api/a sudah
// membawa role check).
func SchoolSettingAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := settingctl.NewSchoolSettingController(db)

	grp := admin.Group("/settings")
	grp.Get("/", ctrl.Get)
	grp.Put("/", ctrl.Upsert)
}
