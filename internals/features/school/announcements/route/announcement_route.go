// file: internals/features/school/announcements/route/announcement_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolhub_backend/internals/features/school/announcements/controller"
)

func AnnouncementRoutes(user fiber.Router, admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewAnnouncementController(db)

	user.Get("/announcements", ctrl.List)

	adm := admin.Group("/announcements")
	adm.Post("/", ctrl.Create)
	adm.Put("/:id", ctrl.Update)
	adm.Delete("/:id", ctrl.Delete)
}
