// file: internals/features/school/attendance/route/attendance_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolhub_backend/internals/configs"
	attendancectl "schoolhub_backend/internals/features/school/attendance/controller"
	"schoolhub_backend/internals/features/school/attendance/service"
)

// AttendanceRoutes mendaftarkan endpoint scan (user) + rekap (admin).
func AttendanceRoutes(user fiber.Router, admin fiber.Router, db *gorm.DB) {
	ctrl := attendancectl.NewAttendanceController(db, service.NewHTTPGeoIPResolver(configs.GeoIPBaseURL))

	// user: scan + riwayat
	grp := user.Group("/attendance")
	grp.Post("/mark", ctrl.Mark)
	grp.Get("/history", ctrl.History)

	// admin: rekap seluruh tenant
	admin.Get("/attendance", ctrl.ListAll)
}
