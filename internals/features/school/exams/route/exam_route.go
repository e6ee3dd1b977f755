// file: internals/features/school/exams/route/exam_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolhub_backend/internals/constants"
	"schoolhub_backend/internals/features/school/exams/controller"
	"schoolhub_backend/internals/middlewares/auth"
)

// ExamRoutes mendaftarkan bank soal (guru) dan timetable (admin).
func ExamRoutes(user fiber.Router, admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewExamController(db)

	exams := user.Group("/exams")

	// 🏫 Guru: authoring bank soal
	teacherOnly := auth.OnlyRoles("❌ Akses ditolak: khusus guru/admin", constants.TeacherAndAbove...)
	exams.Post("/questions", teacherOnly, ctrl.CreateQuestionBank)
	exams.Get("/questions", teacherOnly, ctrl.ListMyBanks)
	exams.Put("/questions/:id", teacherOnly, ctrl.UpdateQuestionBank)
	exams.Post("/questions/:id/publish", teacherOnly, ctrl.PublishQuestionBank)

	// 🎓 Siswa: ketersediaan CBT
	exams.Get("/available", ctrl.ListAvailableForStudent)

	// 🛡️ Admin: penjadwalan
	timetable := admin.Group("/exams/timetable")
	timetable.Post("/", ctrl.CreateTimetable)
	timetable.Get("/", ctrl.ListTimetable)
	timetable.Delete("/:id", ctrl.DeleteTimetable)
}
