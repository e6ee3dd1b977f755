// file: internals/features/billing/subscriptions/service/webhook.go
package service

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"schoolhub_backend/internals/features/billing/subscriptions/model"
)

// VerifySignature membandingkan HMAC-SHA512 atas raw body dengan
// signature dari header x-paystack-signature. Constant-time compare;
// secret kosong berarti tolak semua.
func VerifySignature(secret string, rawBody []byte, signature string) bool {
	if secret == "" || signature == "" {
		return false
	}
	mac := hmac.New(sha512.New, []byte(secret))
	mac.Write(rawBody)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

// WebhookEvent adalah payload event gateway yang kita pedulikan.
type WebhookEvent struct {
	Event string `json:"event"`
	Data  struct {
		Reference  string `json:"reference"`
		Status     string `json:"status"`
		AmountKobo int64  `json:"amount"`
	} `json:"data"`
}

// ParseWebhook mendekode raw body (sesudah signature lolos).
func ParseWebhook(rawBody []byte) (*WebhookEvent, error) {
	var ev WebhookEvent
	if err := sonic.Unmarshal(rawBody, &ev); err != nil {
		return nil, fmt.Errorf("decode webhook: %w", err)
	}
	return &ev, nil
}

// ActivateFromChargeSuccess menandai payment success dan memperpanjang
// jendela langganan tenant. Idempoten per reference: payment yang sudah
// success tidak memperpanjang dua kali. Perpanjangan dihitung dari
// expiry berjalan bila masih aktif, kalau tidak dari sekarang.
func ActivateFromChargeSuccess(db *gorm.DB, reference string, rawBody []byte, now time.Time) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var payment model.SubscriptionPaymentModel
		if err := tx.Where("payment_reference = ?", reference).
			Take(&payment).Error; err != nil {
			return fmt.Errorf("payment %s: %w", reference, err)
		}

		if payment.PaymentStatus == model.PaymentSuccess {
			// webhook ulang untuk reference sama — tidak ada perpanjangan kedua
			return nil
		}

		months := model.PlanMonths(payment.PaymentPlan)
		if months == 0 {
			return fmt.Errorf("payment %s: unknown plan %q", reference, payment.PaymentPlan)
		}

		res := tx.Model(&model.SubscriptionPaymentModel{}).
			Where("payment_id = ? AND payment_status <> ?", payment.PaymentID, model.PaymentSuccess).
			Updates(map[string]interface{}{
				"payment_status":          model.PaymentSuccess,
				"payment_gateway_payload": datatypes.JSON(rawBody),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			// race: webhook lain sudah mengaktifkan duluan
			return nil
		}

		var sub model.SubscriptionModel
		err := tx.Where("subscription_school_name = ?", payment.PaymentSchoolName).
			Take(&sub).Error
		switch {
		case err == nil:
			base := now
			if sub.ExpiresAt.After(now) {
				base = sub.ExpiresAt
			}
			return tx.Model(&sub).Updates(map[string]interface{}{
				"subscription_plan":       payment.PaymentPlan,
				"subscription_expires_at": base.AddDate(0, months, 0),
			}).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			fresh := model.SubscriptionModel{
				SubscriptionSchoolName: payment.PaymentSchoolName,
				SubscriptionPlan:       payment.PaymentPlan,
				ActivatedAt:            now,
				ExpiresAt:              now.AddDate(0, months, 0),
			}
			return tx.Create(&fresh).Error
		default:
			return err
		}
	})
}
