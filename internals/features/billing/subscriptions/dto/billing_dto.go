// file: internals/features/billing/subscriptions/dto/billing_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"schoolhub_backend/internals/features/billing/subscriptions/model"
)

type InitializePaymentRequest struct {
	Plan       string `json:"plan" validate:"required,oneof=termly yearly"`
	Email      string `json:"email" validate:"required,email"`
	AmountKobo int64  `json:"amount_kobo" validate:"required,min=1"`
}

type InitializePaymentResponse struct {
	Reference        string `json:"reference"`
	AuthorizationURL string `json:"authorization_url"`
}

type PaymentResponse struct {
	ID         uuid.UUID `json:"id"`
	Reference  string    `json:"reference"`
	Plan       string    `json:"plan"`
	AmountKobo int64     `json:"amount_kobo"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

type SubscriptionResponse struct {
	SchoolName  string    `json:"school_name"`
	Plan        string    `json:"plan"`
	ActivatedAt time.Time `json:"activated_at"`
	ExpiresAt   time.Time `json:"expires_at"`
	Active      bool      `json:"active"`
}

func ToPaymentResponse(m *model.SubscriptionPaymentModel) PaymentResponse {
	return PaymentResponse{
		ID:         m.PaymentID,
		Reference:  m.PaymentReference,
		Plan:       m.PaymentPlan,
		AmountKobo: m.PaymentAmountKobo,
		Status:     m.PaymentStatus,
		CreatedAt:  m.CreatedAt,
	}
}

func ToSubscriptionResponse(m *model.SubscriptionModel, now time.Time) SubscriptionResponse {
	return SubscriptionResponse{
		SchoolName:  m.SubscriptionSchoolName,
		Plan:        m.SubscriptionPlan,
		ActivatedAt: m.ActivatedAt,
		ExpiresAt:   m.ExpiresAt,
		Active:      m.ExpiresAt.After(now),
	}
}
