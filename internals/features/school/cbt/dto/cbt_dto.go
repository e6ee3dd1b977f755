// file: internals/features/school/cbt/dto/cbt_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"schoolhub_backend/internals/features/school/cbt/model"
	"schoolhub_backend/internals/features/school/cbt/service"
)

type CreateTestRequest struct {
	Title           string                    `json:"title" validate:"required,max=180"`
	Subject         string                    `json:"subject" validate:"required,max=80"`
	ClassNames      []string                  `json:"class_names" validate:"required,min=1,dive,max=40"`
	Term            string                    `json:"term" validate:"required,max=30"`
	DurationMinutes int                       `json:"duration_minutes" validate:"required,min=1,max=480"`
	Questions       []service.QuestionPayload `json:"questions" validate:"required,min=1"`
	StartDate       *time.Time                `json:"start_date"`
	EndDate         *time.Time                `json:"end_date"`
}

type SubmitAnswerRequest struct {
	QuestionIndex int    `json:"question_index" validate:"min=0"`
	Option        string `json:"option" validate:"required"`
}

type TestSummaryResponse struct {
	ID              uuid.UUID  `json:"id"`
	Title           string     `json:"title"`
	Subject         string     `json:"subject"`
	ClassNames      []string   `json:"class_names"`
	Term            string     `json:"term"`
	DurationMinutes int        `json:"duration_minutes"`
	QuestionCount   int        `json:"question_count"`
	StartDate       *time.Time `json:"start_date,omitempty"`
	EndDate         *time.Time `json:"end_date,omitempty"`
}

type AttemptResponse struct {
	ID               uuid.UUID              `json:"id"`
	TestID           uuid.UUID              `json:"test_id"`
	StudentID        uuid.UUID              `json:"student_id"`
	Status           string                 `json:"status"`
	Answers          map[string]interface{} `json:"answers,omitempty"`
	Score            int                    `json:"score"`
	Percentage       int                    `json:"percentage"`
	TimeTakenSeconds int                    `json:"time_taken_seconds"`
	StartedAt        time.Time              `json:"started_at"`
	FinishedAt       *time.Time             `json:"finished_at,omitempty"`
}

func ToTestSummary(m *model.TestModel, questionCount int) TestSummaryResponse {
	return TestSummaryResponse{
		ID:              m.TestID,
		Title:           m.TestTitle,
		Subject:         m.TestSubject,
		ClassNames:      []string(m.TestClassNames),
		Term:            m.TestTerm,
		DurationMinutes: m.TestDurationMinutes,
		QuestionCount:   questionCount,
		StartDate:       m.TestStartDate,
		EndDate:         m.TestEndDate,
	}
}

func ToAttemptResponse(m *model.TestAttemptModel) AttemptResponse {
	return AttemptResponse{
		ID:               m.AttemptID,
		TestID:           m.AttemptTestID,
		StudentID:        m.AttemptStudentID,
		Status:           m.AttemptStatus,
		Answers:          m.AttemptAnswers,
		Score:            m.AttemptScore,
		Percentage:       m.AttemptPercentage,
		TimeTakenSeconds: m.AttemptTimeTakenSeconds,
		StartedAt:        m.AttemptStartedAt,
		FinishedAt:       m.AttemptFinishedAt,
	}
}
