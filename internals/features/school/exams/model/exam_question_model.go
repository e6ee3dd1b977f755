// file: internals/features/school/exams/model/exam_question_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Status bank soal. Transisi satu arah draft → published (tanpa unpublish).
const (
	ExamDraft     = "draft"
	ExamPublished = "published"
)

// ExamQuestionModel merepresentasikan tabel `exam_questions` (bank soal
// milik guru). Selama draft hanya pembuatnya yang boleh ubah; setelah
// published bank tampil di query ketersediaan CBT bila kelas cocok dan
// cbt_available_from sudah lewat.
type ExamQuestionModel struct {
	// PK
	ExamQuestionID uuid.UUID `json:"exam_question_id" gorm:"column:exam_question_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	// Tenant
	ExamQuestionSchoolName string `json:"exam_question_school_name" gorm:"column:exam_question_school_name;type:varchar(120);not null;index:idx_exam_questions_school"`

	// Metadata
	ExamQuestionTitle      string         `json:"exam_question_title" gorm:"column:exam_question_title;type:varchar(180);not null"`
	ExamQuestionSubject    string         `json:"exam_question_subject" gorm:"column:exam_question_subject;type:varchar(80);not null"`
	ExamQuestionClassNames pq.StringArray `json:"exam_question_class_names" gorm:"column:exam_question_class_names;type:text[];not null"`
	ExamQuestionTerm       string         `json:"exam_question_term" gorm:"column:exam_question_term;type:varchar(30);not null"`
	ExamQuestionDuration   int            `json:"exam_question_duration_minutes" gorm:"column:exam_question_duration_minutes;not null;default:60"`

	// Soal (jsonb, array QuestionPayload)
	ExamQuestionQuestions datatypes.JSON `json:"exam_question_questions" gorm:"column:exam_question_questions;type:jsonb;not null"`

	// Lifecycle
	ExamQuestionStatus           string     `json:"exam_question_status" gorm:"column:exam_question_status;type:varchar(12);not null;default:'draft'"`
	ExamQuestionCbtAvailableFrom *time.Time `json:"exam_question_cbt_available_from" gorm:"column:exam_question_cbt_available_from;type:timestamptz"`

	// Pemilik (guru pembuat)
	ExamQuestionCreatedBy uuid.UUID `json:"exam_question_created_by" gorm:"column:exam_question_created_by;type:uuid;not null;index:idx_exam_questions_creator"`

	// Timestamps
	CreatedAt time.Time      `json:"exam_question_created_at" gorm:"column:exam_question_created_at;not null;autoCreateTime"`
	UpdatedAt time.Time      `json:"exam_question_updated_at" gorm:"column:exam_question_updated_at;not null;autoUpdateTime"`
	DeletedAt gorm.DeletedAt `json:"exam_question_deleted_at" gorm:"column:exam_question_deleted_at;index"`
}

func (ExamQuestionModel) TableName() string { return "exam_questions" }

// AvailableForCBT: published + cbt_available_from sudah lewat + kelas cocok.
func (m *ExamQuestionModel) AvailableForCBT(className string, now time.Time) bool {
	if m.ExamQuestionStatus != ExamPublished {
		return false
	}
	if m.ExamQuestionCbtAvailableFrom == nil || now.Before(*m.ExamQuestionCbtAvailableFrom) {
		return false
	}
	for _, cn := range m.ExamQuestionClassNames {
		if cn == className {
			return true
		}
	}
	return false
}
