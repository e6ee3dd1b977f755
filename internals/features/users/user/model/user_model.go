// file: internals/features/users/user/model/user_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel merepresentasikan tabel `users`.
// scan_code adalah kredensial QR/kode unik untuk absensi.
type UserModel struct {
	// PK
	UserID uuid.UUID `json:"user_id" gorm:"column:user_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	// Tenant
	UserSchoolName string `json:"user_school_name" gorm:"column:user_school_name;type:varchar(120);not null;index:idx_users_school;uniqueIndex:uq_users_school_email,priority:1"`

	// Identitas
	UserFullName     string `json:"user_full_name" gorm:"column:user_full_name;type:varchar(150);not null"`
	UserEmail        string `json:"user_email" gorm:"column:user_email;type:varchar(150);not null;uniqueIndex:uq_users_school_email,priority:2"`
	UserPasswordHash string `json:"-" gorm:"column:user_password_hash;type:varchar(100);not null"`

	// Role & kelas
	UserRole      string `json:"user_role" gorm:"column:user_role;type:varchar(20);not null;default:'student';index:idx_users_role"`
	UserClassName string `json:"user_class_name" gorm:"column:user_class_name;type:varchar(40)"`

	// Kredensial absensi (QR / unique code)
	UserScanCode string `json:"user_scan_code" gorm:"column:user_scan_code;type:varchar(64);uniqueIndex:uq_users_scan_code"`

	// Untuk role parent: siswa yang diampu
	UserParentOf *uuid.UUID `json:"user_parent_of" gorm:"column:user_parent_of;type:uuid;index:idx_users_parent_of"`

	// Timestamps
	CreatedAt time.Time      `json:"user_created_at" gorm:"column:user_created_at;not null;autoCreateTime"`
	UpdatedAt time.Time      `json:"user_updated_at" gorm:"column:user_updated_at;not null;autoUpdateTime"`
	DeletedAt gorm.DeletedAt `json:"user_deleted_at" gorm:"column:user_deleted_at;index"`
}

func (UserModel) TableName() string { return "users" }
