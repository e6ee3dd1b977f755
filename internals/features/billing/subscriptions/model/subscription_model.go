// file: internals/features/billing/subscriptions/model/subscription_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Plan berlangganan
const (
	PlanTermly = "termly" // 3 bulan
	PlanYearly = "yearly" // 12 bulan
)

// PlanMonths memetakan plan → lama perpanjangan (bulan). 0 = plan tak dikenal.
func PlanMonths(plan string) int {
	switch plan {
	case PlanTermly:
		return 3
	case PlanYearly:
		return 12
	default:
		return 0
	}
}

// SubscriptionModel merepresentasikan tabel `subscriptions` — satu
// jendela langganan aktif per tenant (unique di school_name).
type SubscriptionModel struct {
	// PK
	SubscriptionID uuid.UUID `json:"subscription_id" gorm:"column:subscription_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	// Tenant (satu baris per sekolah)
	SubscriptionSchoolName string `json:"subscription_school_name" gorm:"column:subscription_school_name;type:varchar(120);not null;uniqueIndex:uq_subscriptions_school"`

	// Jendela aktif
	SubscriptionPlan string    `json:"subscription_plan" gorm:"column:subscription_plan;type:varchar(15);not null"`
	ActivatedAt      time.Time `json:"subscription_activated_at" gorm:"column:subscription_activated_at;not null"`
	ExpiresAt        time.Time `json:"subscription_expires_at" gorm:"column:subscription_expires_at;not null;index:idx_subscriptions_expires"`

	// Timestamps
	CreatedAt time.Time `json:"subscription_created_at" gorm:"column:subscription_created_at;not null;autoCreateTime"`
	UpdatedAt time.Time `json:"subscription_updated_at" gorm:"column:subscription_updated_at;not null;autoUpdateTime"`
}

func (SubscriptionModel) TableName() string { return "subscriptions" }
