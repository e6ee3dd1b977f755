// file: internals/features/billing/subscriptions/model/subscription_payment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Status pembayaran
const (
	PaymentPending = "pending"
	PaymentSuccess = "success"
	PaymentFailed  = "failed"
)

// SubscriptionPaymentModel merepresentasikan tabel
// `subscription_payments`. Reference dari gateway unik — webhook yang
// datang dua kali untuk reference sama tidak memperpanjang dua kali.
type SubscriptionPaymentModel struct {
	// PK
	PaymentID uuid.UUID `json:"payment_id" gorm:"column:payment_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	// Tenant
	PaymentSchoolName string `json:"payment_school_name" gorm:"column:payment_school_name;type:varchar(120);not null;index:idx_payments_school"`

	// Identitas transaksi gateway
	PaymentReference string `json:"payment_reference" gorm:"column:payment_reference;type:varchar(100);not null;uniqueIndex:uq_payments_reference"`

	// Detail
	PaymentPlan        string `json:"payment_plan" gorm:"column:payment_plan;type:varchar(15);not null"`
	PaymentAmountKobo  int64  `json:"payment_amount_kobo" gorm:"column:payment_amount_kobo;not null;default:0"`
	PaymentStatus      string `json:"payment_status" gorm:"column:payment_status;type:varchar(15);not null;default:'pending'"`
	PaymentInitiatedBy uuid.UUID `json:"payment_initiated_by" gorm:"column:payment_initiated_by;type:uuid;not null"`

	// Payload mentah terakhir dari gateway (audit)
	PaymentGatewayPayload datatypes.JSON `json:"payment_gateway_payload" gorm:"column:payment_gateway_payload;type:jsonb"`

	// Timestamps
	CreatedAt time.Time `json:"payment_created_at" gorm:"column:payment_created_at;not null;autoCreateTime"`
	UpdatedAt time.Time `json:"payment_updated_at" gorm:"column:payment_updated_at;not null;autoUpdateTime"`
}

func (SubscriptionPaymentModel) TableName() string { return "subscription_payments" }
