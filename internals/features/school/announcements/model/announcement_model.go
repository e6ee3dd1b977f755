// file: internals/features/school/announcements/model/announcement_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// AnnouncementModel merepresentasikan tabel `announcements` — pengumuman
// per tenant; target_classes kosong berarti seluruh sekolah.
type AnnouncementModel struct {
	// PK
	AnnouncementID uuid.UUID `json:"announcement_id" gorm:"column:announcement_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	// Tenant
	AnnouncementSchoolName string `json:"announcement_school_name" gorm:"column:announcement_school_name;type:varchar(120);not null;index:idx_announcements_school"`

	// Isi
	AnnouncementTitle string `json:"announcement_title" gorm:"column:announcement_title;type:varchar(180);not null"`
	AnnouncementBody  string `json:"announcement_body" gorm:"column:announcement_body;type:text;not null"`

	// Target (kosong = semua kelas)
	AnnouncementTargetClasses pq.StringArray `json:"announcement_target_classes" gorm:"column:announcement_target_classes;type:text[]"`

	// Pemilik
	AnnouncementCreatedBy uuid.UUID `json:"announcement_created_by" gorm:"column:announcement_created_by;type:uuid;not null"`

	// Timestamps
	CreatedAt time.Time      `json:"announcement_created_at" gorm:"column:announcement_created_at;not null;autoCreateTime"`
	UpdatedAt time.Time      `json:"announcement_updated_at" gorm:"column:announcement_updated_at;not null;autoUpdateTime"`
	DeletedAt gorm.DeletedAt `json:"announcement_deleted_at" gorm:"column:announcement_deleted_at;index"`
}

func (AnnouncementModel) TableName() string { return "announcements" }
