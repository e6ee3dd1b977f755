// file: internals/features/billing/subscriptions/route/billing_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolhub_backend/internals/features/billing/subscriptions/controller"
)

// BillingRoutes:
// - webhook terpasang di app root (/api/billing/webhook) dan ada di
//   skipPaths auth middleware — autentikasinya signature HMAC, bukan JWT
// - initialize/verify/subscription di group admin
func BillingRoutes(app *fiber.App, admin fiber.Router, db *gorm.DB) {
	ctrl := controller.NewBillingController(db)

	app.Post("/api/billing/webhook", ctrl.Webhook)

	billing := admin.Group("/billing")
	billing.Post("/initialize", ctrl.InitializePayment)
	billing.Get("/verify/:reference", ctrl.VerifyPayment)
	billing.Get("/subscription", ctrl.GetSubscription)
}
