// file: internals/features/school/attendance/model/attendance_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Status absensi
const (
	StatusPresent = "present"
	StatusLate    = "late"
	StatusAbsent  = "absent"
)

// Metode absensi
const (
	MethodQRScan     = "qr_scan"
	MethodUniqueCode = "unique_code"
)

// AttendanceRecordModel merepresentasikan tabel `attendance_records`.
// Append-only: status tidak pernah diubah setelah insert.
// Invariant "satu record per user per hari" dijaga oleh unique index
// (user_id, attendance_day) — bukan sekadar pre-check aplikasi.
type AttendanceRecordModel struct {
	// PK
	AttendanceID uuid.UUID `json:"attendance_id" gorm:"column:attendance_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	// Pemilik + hari (kunci unik)
	AttendanceUserID uuid.UUID `json:"attendance_user_id" gorm:"column:attendance_user_id;type:uuid;not null;uniqueIndex:uq_attendance_user_day,priority:1"`
	AttendanceDay    time.Time `json:"attendance_day" gorm:"column:attendance_day;type:date;not null;uniqueIndex:uq_attendance_user_day,priority:2"`

	// Tenant
	AttendanceSchoolName string `json:"attendance_school_name" gorm:"column:attendance_school_name;type:varchar(120);not null;index:idx_attendance_school"`

	// Hasil validasi
	AttendanceStatus string `json:"attendance_status" gorm:"column:attendance_status;type:varchar(10);not null"`
	AttendanceMethod string `json:"attendance_method" gorm:"column:attendance_method;type:varchar(15);not null"`

	// Bukti lokasi
	AttendanceLatitude  *float64 `json:"attendance_latitude" gorm:"column:attendance_latitude;type:double precision"`
	AttendanceLongitude *float64 `json:"attendance_longitude" gorm:"column:attendance_longitude;type:double precision"`
	AttendanceIPAddress string   `json:"attendance_ip_address" gorm:"column:attendance_ip_address;type:varchar(45)"`

	// Timestamp scan
	CreatedAt time.Time `json:"attendance_created_at" gorm:"column:attendance_created_at;not null;autoCreateTime"`
}

func (AttendanceRecordModel) TableName() string { return "attendance_records" }
