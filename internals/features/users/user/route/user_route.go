// file: internals/features/users/user/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userctl "schoolhub_backend/internals/features/users/user/controller"
	"schoolhub_backend/internals/middlewares"
	authmw "schoolhub_backend/internals/middlewares/auth"
)

// AuthRoutes mendaftarkan route publik auth (login dengan limiter ketat).
func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := userctl.NewAuthController(db)

	grp := app.Group("/api/auth")
	grp.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
}

// UserRoutes mendaftarkan route user (self) + admin.
func UserRoutes(user fiber.Router, admin fiber.Router, db *gorm.DB) {
	authCtrl := userctl.NewAuthController(db)
	userCtrl := userctl.NewUserController(db)

	// self
	user.Get("/me", authCtrl.Me)

	// admin (register akun dalam tenant)
	grp := admin.Group("/users")
	grp.Post("/", authmw.OnlyRoles("Only admins may manage users", "admin", "superadmin"), authCtrl.Register)
	grp.Get("/", userCtrl.ListUsers)
	grp.Get("/:id", userCtrl.GetUser)
}
