// file: internals/features/school/exams/model/exam_timetable_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ExamTimetableModel merepresentasikan tabel `exam_timetables` — jadwal
// ujian milik admin yang merujuk satu bank soal. end_time selalu hasil
// hitung start_time + durasi, tidak pernah input langsung.
type ExamTimetableModel struct {
	// PK
	TimetableID uuid.UUID `json:"timetable_id" gorm:"column:timetable_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	// Tenant
	TimetableSchoolName string `json:"timetable_school_name" gorm:"column:timetable_school_name;type:varchar(120);not null;index:idx_exam_timetables_school"`

	// Referensi bank soal
	TimetableExamQuestionID uuid.UUID `json:"timetable_exam_question_id" gorm:"column:timetable_exam_question_id;type:uuid;not null;index:idx_exam_timetables_bank"`

	// Jadwal
	TimetableClassName       string    `json:"timetable_class_name" gorm:"column:timetable_class_name;type:varchar(40);not null"`
	TimetableStartTime       time.Time `json:"timetable_start_time" gorm:"column:timetable_start_time;type:timestamptz;not null"`
	TimetableDurationMinutes int       `json:"timetable_duration_minutes" gorm:"column:timetable_duration_minutes;not null"`
	TimetableEndTime         time.Time `json:"timetable_end_time" gorm:"column:timetable_end_time;type:timestamptz;not null"`

	// Pemilik (admin pembuat)
	TimetableCreatedBy uuid.UUID `json:"timetable_created_by" gorm:"column:timetable_created_by;type:uuid;not null"`

	// Timestamps
	CreatedAt time.Time      `json:"timetable_created_at" gorm:"column:timetable_created_at;not null;autoCreateTime"`
	UpdatedAt time.Time      `json:"timetable_updated_at" gorm:"column:timetable_updated_at;not null;autoUpdateTime"`
	DeletedAt gorm.DeletedAt `json:"timetable_deleted_at" gorm:"column:timetable_deleted_at;index"`
}

func (ExamTimetableModel) TableName() string { return "exam_timetables" }

// ComputeEndTime mengisi end_time dari start + durasi.
func (m *ExamTimetableModel) ComputeEndTime() {
	m.TimetableEndTime = m.TimetableStartTime.Add(time.Duration(m.TimetableDurationMinutes) * time.Minute)
}
