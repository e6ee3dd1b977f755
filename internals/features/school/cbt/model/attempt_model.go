// file: internals/features/school/cbt/model/attempt_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Status attempt
const (
	AttemptInProgress = "in_progress"
	AttemptCompleted  = "completed"
)

// TestAttemptModel merepresentasikan tabel `cbt_test_attempts`.
// Satu attempt per (test, student) — dijaga unique index, bukan
// sekadar pre-check (start konkuren resolve lewat index ini).
type TestAttemptModel struct {
	// PK
	AttemptID uuid.UUID `json:"attempt_id" gorm:"column:attempt_id;type:uuid;primaryKey;default:gen_random_uuid()"`

	// Kunci unik
	AttemptTestID    uuid.UUID `json:"attempt_test_id" gorm:"column:attempt_test_id;type:uuid;not null;uniqueIndex:uq_attempts_test_student,priority:1"`
	AttemptStudentID uuid.UUID `json:"attempt_student_id" gorm:"column:attempt_student_id;type:uuid;not null;uniqueIndex:uq_attempts_test_student,priority:2"`

	// Tenant
	AttemptSchoolName string `json:"attempt_school_name" gorm:"column:attempt_school_name;type:varchar(120);not null;index:idx_attempts_school"`

	// Jawaban: map index-soal → opsi terpilih (jsonb; last write wins)
	AttemptAnswers datatypes.JSONMap `json:"attempt_answers" gorm:"column:attempt_answers;type:jsonb"`

	// Lifecycle
	AttemptStatus     string     `json:"attempt_status" gorm:"column:attempt_status;type:varchar(15);not null;default:'in_progress'"`
	AttemptStartedAt  time.Time  `json:"attempt_started_at" gorm:"column:attempt_started_at;not null;autoCreateTime"`
	AttemptFinishedAt *time.Time `json:"attempt_finished_at" gorm:"column:attempt_finished_at;type:timestamptz"`

	// Hasil (beku setelah completed)
	AttemptScore            int `json:"attempt_score" gorm:"column:attempt_score;not null;default:0"`
	AttemptPercentage       int `json:"attempt_percentage" gorm:"column:attempt_percentage;not null;default:0"`
	AttemptTimeTakenSeconds int `json:"attempt_time_taken_seconds" gorm:"column:attempt_time_taken_seconds;not null;default:0"`
}

func (TestAttemptModel) TableName() string { return "cbt_test_attempts" }
