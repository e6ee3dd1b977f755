// file: internals/features/school/cbt/route/cbt_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolhub_backend/internals/constants"
	"schoolhub_backend/internals/features/school/cbt/controller"
	"schoolhub_backend/internals/middlewares/auth"
)

// CBTRoutes mendaftarkan route CBT.
// - user group (/api/u): ambil test, kerjakan attempt
// - pembuatan test dibatasi teacher/admin/superadmin
func CBTRoutes(user fiber.Router, db *gorm.DB) {
	ctrl := controller.NewCBTController(db)

	cbt := user.Group("/cbt")

	// 🏫 Guru & admin: buat test + lihat hasil
	staffOnly := auth.OnlyRoles("❌ Akses ditolak: khusus guru/admin", constants.TeacherAndAbove...)
	cbt.Post("/tests", staffOnly, ctrl.CreateTest)
	cbt.Get("/tests/:id/results", staffOnly, ctrl.TestResults)

	// 🎓 Siswa: daftar test + lifecycle attempt
	cbt.Get("/tests/available", ctrl.ListAvailable)
	cbt.Post("/tests/:id/start", ctrl.StartAttempt)
	cbt.Post("/attempts/:id/answers", ctrl.SubmitAnswer)
	cbt.Post("/attempts/:id/finish", ctrl.FinishAttempt)
}
