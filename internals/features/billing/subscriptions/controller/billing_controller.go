// file: internals/features/billing/subscriptions/controller/billing_controller.go
package controller

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolhub_backend/internals/configs"
	"schoolhub_backend/internals/features/billing/subscriptions/dto"
	"schoolhub_backend/internals/features/billing/subscriptions/model"
	"schoolhub_backend/internals/features/billing/subscriptions/service"
	helper "schoolhub_backend/internals/helpers"
	helperAuth "schoolhub_backend/internals/helpers/auth"
)

type BillingController struct {
	DB       *gorm.DB
	Paystack *service.PaystackClient
}

func NewBillingController(db *gorm.DB) *BillingController {
	return &BillingController{
		DB:       db,
		Paystack: service.NewPaystackClient(configs.PaystackBaseURL, configs.PaystackSecret),
	}
}

var validate = validator.New()

// POST /api/a/billing/initialize
// Admin memulai pembayaran langganan; baris payment dibuat pending
// dengan reference unik sebelum redirect ke checkout gateway.
func (ctrl *BillingController) InitializePayment(c *fiber.Ctx) error {
	adminID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	schoolName, err := helperAuth.GetSchoolNameFromToken(c)
	if err != nil {
		return err
	}

	var req dto.InitializePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	reference := fmt.Sprintf("SUB-%s", uuid.NewString())

	initRes, err := ctrl.Paystack.Initialize(c.Context(), service.InitializeRequest{
		Email:      req.Email,
		AmountKobo: req.AmountKobo,
		Reference:  reference,
		Metadata:   map[string]interface{}{"school_name": schoolName, "plan": req.Plan},
	})
	if err != nil {
		log.Printf("[ERROR] Paystack initialize gagal: %v", err)
		return helper.Error(c, fiber.StatusBadGateway, "Payment gateway unavailable")
	}

	payment := model.SubscriptionPaymentModel{
		PaymentSchoolName:  schoolName,
		PaymentReference:   reference,
		PaymentPlan:        req.Plan,
		PaymentAmountKobo:  req.AmountKobo,
		PaymentStatus:      model.PaymentPending,
		PaymentInitiatedBy: adminID,
	}
	if err := ctrl.DB.Create(&payment).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to record payment")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Payment initialized", dto.InitializePaymentResponse{
		Reference:        reference,
		AuthorizationURL: initRes.AuthorizationURL,
	})
}

// GET /api/a/billing/verify/:reference
// Re-check manual setelah redirect balik dari checkout. Sukses di sini
// memakai jalur aktivasi yang sama dengan webhook, jadi tetap idempoten.
func (ctrl *BillingController) VerifyPayment(c *fiber.Ctx) error {
	schoolName, err := helperAuth.GetSchoolNameFromToken(c)
	if err != nil {
		return err
	}
	reference := c.Params("reference")

	var payment model.SubscriptionPaymentModel
	if err := ctrl.DB.
		Where("payment_reference = ? AND payment_school_name = ?", reference, schoolName).
		Take(&payment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Payment not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	verifyRes, err := ctrl.Paystack.Verify(c.Context(), reference)
	if err != nil {
		log.Printf("[ERROR] Paystack verify gagal: %v", err)
		return helper.Error(c, fiber.StatusBadGateway, "Payment gateway unavailable")
	}

	if verifyRes.Status == "success" {
		payload, _ := sonic.Marshal(verifyRes)
		if err := service.ActivateFromChargeSuccess(ctrl.DB, reference, payload, time.Now()); err != nil {
			log.Printf("[ERROR] Aktivasi dari verify gagal: %v", err)
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to activate subscription")
		}
		payment.PaymentStatus = model.PaymentSuccess
	}

	return helper.Success(c, "OK", dto.ToPaymentResponse(&payment))
}

// GET /api/a/billing/subscription
func (ctrl *BillingController) GetSubscription(c *fiber.Ctx) error {
	schoolName, err := helperAuth.GetSchoolNameFromToken(c)
	if err != nil {
		return err
	}

	var sub model.SubscriptionModel
	if err := ctrl.DB.
		Where("subscription_school_name = ?", schoolName).
		Take(&sub).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "No subscription for this school")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	return helper.Success(c, "OK", dto.ToSubscriptionResponse(&sub, time.Now()))
}

// POST /api/billing/webhook  (tanpa auth middleware — signature adalah autentikasinya)
// HMAC-SHA512 atas raw body vs header x-paystack-signature; invalid →
// 401 tanpa menulis apa pun.
func (ctrl *BillingController) Webhook(c *fiber.Ctx) error {
	rawBody := c.Body()
	signature := c.Get("x-paystack-signature")

	if !service.VerifySignature(configs.PaystackSecret, rawBody, signature) {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid signature")
	}

	ev, err := service.ParseWebhook(rawBody)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Malformed webhook payload")
	}

	if ev.Event != "charge.success" {
		// event lain di-ack supaya gateway tidak retry terus
		return helper.Success(c, "Event ignored", nil)
	}

	if err := service.ActivateFromChargeSuccess(ctrl.DB, ev.Data.Reference, rawBody, time.Now()); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Unknown payment reference")
		}
		log.Printf("[ERROR] Webhook aktivasi gagal: %v", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to process webhook")
	}

	return helper.Success(c, "Webhook processed", nil)
}
