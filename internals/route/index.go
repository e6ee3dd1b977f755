// file: internals/route/index.go
package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolhub_backend/internals/constants"
	billingRoute "schoolhub_backend/internals/features/billing/subscriptions/route"
	announcementRoute "schoolhub_backend/internals/features/school/announcements/route"
	attendanceRoute "schoolhub_backend/internals/features/school/attendance/route"
	cbtRoute "schoolhub_backend/internals/features/school/cbt/route"
	examRoute "schoolhub_backend/internals/features/school/exams/route"
	markRoute "schoolhub_backend/internals/features/school/marks/route"
	resultRoute "schoolhub_backend/internals/features/school/results/route"
	settingRoute "schoolhub_backend/internals/features/school/settings/route"
	userRoute "schoolhub_backend/internals/features/users/user/route"
	authMid "schoolhub_backend/internals/middlewares/auth"
	featureMid "schoolhub_backend/internals/middlewares/features"
)

// SetupRoutes merakit seluruh route aplikasi.
//
// Skema group:
//   /api/auth          → publik (login; rate-limited di route-nya)
//   /api/billing/webhook → publik, autentikasi via signature HMAC
//   /api/u             → semua user login (guard langganan aktif)
//   /api/a             → admin & superadmin (billing TANPA guard langganan,
//                        supaya sekolah yang expired tetap bisa bayar)
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// 🔓 Publik
	userRoute.AuthRoutes(app, db)

	// 🔐 User login
	user := app.Group("/api/u", authMid.AuthMiddleware())

	// 🛡️ Admin
	admin := app.Group("/api/a",
		authMid.AuthMiddleware(),
		authMid.OnlyRoles("❌ Akses ditolak: khusus admin", constants.AdminAndAbove...),
	)

	// 💳 Billing & manajemen user didaftarkan SEBELUM guard langganan —
	// sekolah yang expired tetap bisa login, lihat user, dan bayar
	billingRoute.BillingRoutes(app, admin, db)
	userRoute.UserRoutes(user, admin, db)

	// Fitur sekolah butuh langganan aktif
	subGuard := featureMid.RequireActiveSubscription(db)
	userSchool := user.Group("/", subGuard)
	adminSchool := admin.Group("/", subGuard)

	settingRoute.SchoolSettingAdminRoutes(adminSchool, db)
	attendanceRoute.AttendanceRoutes(userSchool, adminSchool, db)
	markRoute.MarkRoutes(userSchool, adminSchool, db)
	resultRoute.ResultRoutes(userSchool, db)
	cbtRoute.CBTRoutes(userSchool, db)
	examRoute.ExamRoutes(userSchool, adminSchool, db)
	announcementRoute.AnnouncementRoutes(userSchool, adminSchool, db)
}
