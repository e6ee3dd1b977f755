// file: internals/features/school/exams/model/exam_model_test.go
package model

import (
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func bank(status string, availableFrom *time.Time) *ExamQuestionModel {
	return &ExamQuestionModel{
		ExamQuestionStatus:           status,
		ExamQuestionCbtAvailableFrom: availableFrom,
		ExamQuestionClassNames:       pq.StringArray{"JSS1", "JSS2"},
	}
}

func TestAvailableForCBT(t *testing.T) {
	now := time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	// published + available_from lewat + kelas cocok
	assert.True(t, bank(ExamPublished, &past).AvailableForCBT("JSS1", now))

	// draft tidak pernah tampil
	assert.False(t, bank(ExamDraft, &past).AvailableForCBT("JSS1", now))

	// available_from masih di depan
	assert.False(t, bank(ExamPublished, &future).AvailableForCBT("JSS1", now))

	// available_from belum diisi
	assert.False(t, bank(ExamPublished, nil).AvailableForCBT("JSS1", now))

	// kelas tidak cocok
	assert.False(t, bank(ExamPublished, &past).AvailableForCBT("SS3", now))
}

func TestComputeEndTime(t *testing.T) {
	m := ExamTimetableModel{
		TimetableStartTime:       time.Date(2026, 3, 9, 9, 0, 0, 0, time.UTC),
		TimetableDurationMinutes: 90,
	}
	m.ComputeEndTime()
	assert.Equal(t, time.Date(2026, 3, 9, 10, 30, 0, 0, time.UTC), m.TimetableEndTime)
}
