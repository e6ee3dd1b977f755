// file: internals/features/school/settings/model/school_setting_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// SchoolSettingModel merepresentasikan tabel `school_settings`.
// Satu baris per tenant; dibuat lazy saat admin pertama kali menulis,
// tidak pernah dihapus.
type SchoolSettingModel struct {
	// PK
	SchoolSettingID uuid.UUID `json:"school_setting_id" gorm:"column:school_setting_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	// Tenant (unik — satu settings per sekolah)
	SchoolSettingSchoolName string `json:"school_setting_school_name" gorm:"column:school_setting_school_name;type:varchar(120);not null;uniqueIndex:uq_school_settings_school"`

	// Batas terlambat "HH:MM" (dibandingkan dengan jam scan)
	SchoolSettingLateTime string `json:"school_setting_late_time" gorm:"column:school_setting_late_time;type:varchar(5);not null;default:'08:00'"`

	// Geofence
	SchoolSettingLatitude     *float64 `json:"school_setting_latitude" gorm:"column:school_setting_latitude;type:double precision"`
	SchoolSettingLongitude    *float64 `json:"school_setting_longitude" gorm:"column:school_setting_longitude;type:double precision"`
	SchoolSettingRadiusMeters float64  `json:"school_setting_radius_meters" gorm:"column:school_setting_radius_meters;type:double precision;not null;default:200"`

	// Policy: guru boleh isi nilai + auto-position untuk kelas manapun
	SchoolSettingAllowTeacherMarkAny bool `json:"school_setting_allow_teacher_mark_any" gorm:"column:school_setting_allow_teacher_mark_any;not null;default:false"`

	// Timestamps
	CreatedAt time.Time `json:"school_setting_created_at" gorm:"column:school_setting_created_at;not null;autoCreateTime"`
	UpdatedAt time.Time `json:"school_setting_updated_at" gorm:"column:school_setting_updated_at;not null;autoUpdateTime"`
}

func (SchoolSettingModel) TableName() string { return "school_settings" }

func (s *SchoolSettingModel) HasLocation() bool {
	return s.SchoolSettingLatitude != nil && s.SchoolSettingLongitude != nil
}
