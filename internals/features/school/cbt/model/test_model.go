// file: internals/features/school/cbt/model/test_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// TestModel merepresentasikan tabel `cbt_tests`.
// Soal disimpan sebagai jsonb (array QuestionPayload di service).
type TestModel struct {
	// PK
	TestID uuid.UUID `json:"test_id" gorm:"column:test_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	// Tenant
	TestSchoolName string `json:"test_school_name" gorm:"column:test_school_name;type:varchar(120);not null;index:idx_cbt_tests_school"`

	// Metadata
	TestTitle           string         `json:"test_title" gorm:"column:test_title;type:varchar(180);not null"`
	TestSubject         string         `json:"test_subject" gorm:"column:test_subject;type:varchar(80);not null"`
	TestClassNames      pq.StringArray `json:"test_class_names" gorm:"column:test_class_names;type:text[];not null"`
	TestTerm            string         `json:"test_term" gorm:"column:test_term;type:varchar(30);not null"`
	TestDurationMinutes int            `json:"test_duration_minutes" gorm:"column:test_duration_minutes;not null;default:30"`

	// Soal (jsonb)
	TestQuestions datatypes.JSON `json:"test_questions" gorm:"column:test_questions;type:jsonb;not null"`

	// Jendela pengerjaan (opsional)
	TestStartDate *time.Time `json:"test_start_date" gorm:"column:test_start_date;type:timestamptz"`
	TestEndDate   *time.Time `json:"test_end_date" gorm:"column:test_end_date;type:timestamptz"`

	// Pemilik (guru pembuat)
	TestCreatedBy uuid.UUID `json:"test_created_by" gorm:"column:test_created_by;type:uuid;not null;index:idx_cbt_tests_creator"`

	// Timestamps
	CreatedAt time.Time      `json:"test_created_at" gorm:"column:test_created_at;not null;autoCreateTime"`
	UpdatedAt time.Time      `json:"test_updated_at" gorm:"column:test_updated_at;not null;autoUpdateTime"`
	DeletedAt gorm.DeletedAt `json:"test_deleted_at" gorm:"column:test_deleted_at;index"`
}

func (TestModel) TableName() string { return "cbt_tests" }

// InWindow: true bila `now` berada dalam [start, end]; batas nil = terbuka.
func (t *TestModel) InWindow(now time.Time) bool {
	if t.TestStartDate != nil && now.Before(*t.TestStartDate) {
		return false
	}
	if t.TestEndDate != nil && now.After(*t.TestEndDate) {
		return false
	}
	return true
}

// ForClass: true bila kelas siswa termasuk target test.
func (t *TestModel) ForClass(className string) bool {
	for _, cn := range t.TestClassNames {
		if cn == className {
			return true
		}
	}
	return false
}
