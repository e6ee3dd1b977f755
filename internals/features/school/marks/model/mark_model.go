// file: internals/features/school/marks/model/mark_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// MarkModel merepresentasikan tabel `marks` — skema penilaian flat-sum
// (berbeda dengan `results` yang berbobot; keduanya sengaja TIDAK
// digabung karena semantik batas nilainya berbeda).
type MarkModel struct {
	// PK
	MarkID uuid.UUID `json:"mark_id" gorm:"column:mark_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	// Tenant + kunci kohort
	MarkSchoolName string    `json:"mark_school_name" gorm:"column:mark_school_name;type:varchar(120);not null;uniqueIndex:uq_marks_student_subject_term,priority:1;index:idx_marks_cohort,priority:1"`
	MarkStudentID  uuid.UUID `json:"mark_student_id" gorm:"column:mark_student_id;type:uuid;not null;uniqueIndex:uq_marks_student_subject_term,priority:2"`
	MarkSubject    string    `json:"mark_subject" gorm:"column:mark_subject;type:varchar(80);not null;uniqueIndex:uq_marks_student_subject_term,priority:3;index:idx_marks_cohort,priority:3"`
	MarkClassName  string    `json:"mark_class_name" gorm:"column:mark_class_name;type:varchar(40);not null;index:idx_marks_cohort,priority:2"`
	MarkTerm       string    `json:"mark_term" gorm:"column:mark_term;type:varchar(30);not null;uniqueIndex:uq_marks_student_subject_term,priority:4;index:idx_marks_cohort,priority:4"`

	// Guru yang terakhir menulis
	MarkTeacherID *uuid.UUID `json:"mark_teacher_id" gorm:"column:mark_teacher_id;type:uuid"`

	// Komponen nilai (flat sum, tanpa bobot)
	MarkFirstTest   int `json:"mark_first_test" gorm:"column:mark_first_test;not null;default:0"`
	MarkSecondTest  int `json:"mark_second_test" gorm:"column:mark_second_test;not null;default:0"`
	MarkThirdTest   int `json:"mark_third_test" gorm:"column:mark_third_test;not null;default:0"`
	MarkMidTerm     int `json:"mark_mid_term" gorm:"column:mark_mid_term;not null;default:0"`
	MarkExamination int `json:"mark_examination" gorm:"column:mark_examination;not null;default:0"`

	// Hasil hitung (recompute setiap write)
	MarkTotal    int `json:"mark_total" gorm:"column:mark_total;not null;default:0"`
	MarkPosition int `json:"mark_position" gorm:"column:mark_position;not null;default:0"`

	// Timestamps
	CreatedAt time.Time `json:"mark_created_at" gorm:"column:mark_created_at;not null;autoCreateTime"`
	UpdatedAt time.Time `json:"mark_updated_at" gorm:"column:mark_updated_at;not null;autoUpdateTime"`
}

func (MarkModel) TableName() string { return "marks" }

// Total menjumlahkan lima komponen tetap.
func (m *MarkModel) ComputeTotal() int {
	return m.MarkFirstTest + m.MarkSecondTest + m.MarkThirdTest + m.MarkMidTerm + m.MarkExamination
}
