// file: internals/features/school/exams/dto/exam_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	cbtService "schoolhub_backend/internals/features/school/cbt/service"
	"schoolhub_backend/internals/features/school/exams/model"
)

type CreateExamQuestionRequest struct {
	Title            string                       `json:"title" validate:"required,max=180"`
	Subject          string                       `json:"subject" validate:"required,max=80"`
	ClassNames       []string                     `json:"class_names" validate:"required,min=1,dive,max=40"`
	Term             string                       `json:"term" validate:"required,max=30"`
	DurationMinutes  int                          `json:"duration_minutes" validate:"required,min=1,max=480"`
	Questions        []cbtService.QuestionPayload `json:"questions" validate:"required,min=1"`
	CbtAvailableFrom *time.Time                   `json:"cbt_available_from"`
}

type UpdateExamQuestionRequest struct {
	Title            *string                      `json:"title" validate:"omitempty,max=180"`
	Subject          *string                      `json:"subject" validate:"omitempty,max=80"`
	ClassNames       []string                     `json:"class_names" validate:"omitempty,min=1,dive,max=40"`
	Term             *string                      `json:"term" validate:"omitempty,max=30"`
	DurationMinutes  *int                         `json:"duration_minutes" validate:"omitempty,min=1,max=480"`
	Questions        []cbtService.QuestionPayload `json:"questions" validate:"omitempty,min=1"`
	CbtAvailableFrom *time.Time                   `json:"cbt_available_from"`
}

type ExamQuestionResponse struct {
	ID               uuid.UUID  `json:"id"`
	Title            string     `json:"title"`
	Subject          string     `json:"subject"`
	ClassNames       []string   `json:"class_names"`
	Term             string     `json:"term"`
	DurationMinutes  int        `json:"duration_minutes"`
	Status           string     `json:"status"`
	QuestionCount    int        `json:"question_count"`
	CbtAvailableFrom *time.Time `json:"cbt_available_from,omitempty"`
	CreatedBy        uuid.UUID  `json:"created_by"`
	CreatedAt        time.Time  `json:"created_at"`
}

type CreateTimetableRequest struct {
	ExamQuestionID  uuid.UUID `json:"exam_question_id" validate:"required"`
	ClassName       string    `json:"class_name" validate:"required,max=40"`
	StartTime       time.Time `json:"start_time" validate:"required"`
	DurationMinutes int       `json:"duration_minutes" validate:"required,min=1,max=480"`
}

type TimetableResponse struct {
	ID              uuid.UUID `json:"id"`
	ExamQuestionID  uuid.UUID `json:"exam_question_id"`
	ClassName       string    `json:"class_name"`
	StartTime       time.Time `json:"start_time"`
	DurationMinutes int       `json:"duration_minutes"`
	EndTime         time.Time `json:"end_time"`
}

func ToExamQuestionResponse(m *model.ExamQuestionModel, questionCount int) ExamQuestionResponse {
	return ExamQuestionResponse{
		ID:               m.ExamQuestionID,
		Title:            m.ExamQuestionTitle,
		Subject:          m.ExamQuestionSubject,
		ClassNames:       []string(m.ExamQuestionClassNames),
		Term:             m.ExamQuestionTerm,
		DurationMinutes:  m.ExamQuestionDuration,
		Status:           m.ExamQuestionStatus,
		QuestionCount:    questionCount,
		CbtAvailableFrom: m.ExamQuestionCbtAvailableFrom,
		CreatedBy:        m.ExamQuestionCreatedBy,
		CreatedAt:        m.CreatedAt,
	}
}

func ToTimetableResponse(m *model.ExamTimetableModel) TimetableResponse {
	return TimetableResponse{
		ID:              m.TimetableID,
		ExamQuestionID:  m.TimetableExamQuestionID,
		ClassName:       m.TimetableClassName,
		StartTime:       m.TimetableStartTime,
		DurationMinutes: m.TimetableDurationMinutes,
		EndTime:         m.TimetableEndTime,
	}
}
