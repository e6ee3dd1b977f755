// file: internals/features/school/results/model/result_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// ResultModel merepresentasikan tabel `results` — jalur penilaian
// legacy BERBOBOT (composite persen + grade huruf A1..F9). Terpisah
// dari `marks` (flat-sum); keduanya varian bernama, tidak digabung.
type ResultModel struct {
	// PK
	ResultID uuid.UUID `json:"result_id" gorm:"column:result_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	// Tenant + kunci
	ResultSchoolName string    `json:"result_school_name" gorm:"column:result_school_name;type:varchar(120);not null;uniqueIndex:uq_results_student_subject_term,priority:1"`
	ResultStudentID  uuid.UUID `json:"result_student_id" gorm:"column:result_student_id;type:uuid;not null;uniqueIndex:uq_results_student_subject_term,priority:2"`
	ResultSubject    string    `json:"result_subject" gorm:"column:result_subject;type:varchar(80);not null;uniqueIndex:uq_results_student_subject_term,priority:3"`
	ResultClassName  string    `json:"result_class_name" gorm:"column:result_class_name;type:varchar(40);not null"`
	ResultTerm       string    `json:"result_term" gorm:"column:result_term;type:varchar(30);not null;uniqueIndex:uq_results_student_subject_term,priority:4"`

	// Komponen (maks. 4 nilai test, opsional)
	ResultTest1   *int `json:"result_test1" gorm:"column:result_test1"`
	ResultTest2   *int `json:"result_test2" gorm:"column:result_test2"`
	ResultTest3   *int `json:"result_test3" gorm:"column:result_test3"`
	ResultTest4   *int `json:"result_test4" gorm:"column:result_test4"`
	ResultProject *int `json:"result_project" gorm:"column:result_project"`
	ResultExam    int  `json:"result_exam" gorm:"column:result_exam;not null;default:0"`

	// Hasil hitung
	ResultComposite float64 `json:"result_composite" gorm:"column:result_composite;type:double precision;not null;default:0"`
	ResultGrade     string  `json:"result_grade" gorm:"column:result_grade;type:varchar(2);not null;default:'F9'"`
	ResultRemark    string  `json:"result_remark" gorm:"column:result_remark;type:varchar(10);not null;default:'Fail'"`

	// Immutable setelah publish; edit/hapus wajib unpublish dulu
	ResultPublished bool `json:"result_published" gorm:"column:result_published;not null;default:false"`

	// Timestamps
	CreatedAt time.Time `json:"result_created_at" gorm:"column:result_created_at;not null;autoCreateTime"`
	UpdatedAt time.Time `json:"result_updated_at" gorm:"column:result_updated_at;not null;autoUpdateTime"`
}

func (ResultModel) TableName() string { return "results" }
