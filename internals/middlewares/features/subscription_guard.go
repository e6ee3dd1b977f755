package features

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	billingModel "schoolhub_backend/internals/features/billing/subscriptions/model"
	helperAuth "schoolhub_backend/internals/helpers/auth"
)

// RequireActiveSubscription menolak akses fitur sekolah jika masa
// berlangganan tenant sudah lewat. Superadmin selalu lolos.
func RequireActiveSubscription(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if role, _ := c.Locals(helperAuth.LocUserRole).(string); role == "superadmin" {
			return c.Next()
		}

		schoolName, err := helperAuth.GetSchoolNameFromToken(c)
		if err != nil {
			return err
		}

		var sub billingModel.SubscriptionModel
		if err := db.Where("subscription_school_name = ?", schoolName).
			Take(&sub).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusForbidden, "Subscription expired")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
		}

		if sub.ExpiresAt.Before(time.Now()) {
			return fiber.NewError(fiber.StatusForbidden, "Subscription expired")
		}
		return c.Next()
	}
}
