// file: internals/features/school/marks/dto/mark_dto.go
package dto

import (
	"github.com/google/uuid"

	"schoolhub_backend/internals/features/school/marks/model"
)

type ComponentScores struct {
	FirstTest   int `json:"first_test" validate:"min=0,max=100"`
	SecondTest  int `json:"second_test" validate:"min=0,max=100"`
	ThirdTest   int `json:"third_test" validate:"min=0,max=100"`
	MidTerm     int `json:"mid_term" validate:"min=0,max=100"`
	Examination int `json:"examination" validate:"min=0,max=100"`
}

type UpsertMarksRequest struct {
	ClassName    string                     `json:"class_name" validate:"required,max=40"`
	Subject      string                     `json:"subject" validate:"required,max=80"`
	Term         string                     `json:"term" validate:"required,max=30"`
	Marks        map[string]ComponentScores `json:"marks" validate:"required,min=1,dive"`
	AutoPosition bool                       `json:"auto_position"`
}

type UpsertMarksResponse struct {
	UpdatedCount int      `json:"updated_count"`
	Skipped      []string `json:"skipped,omitempty"`
}

type MarkResponse struct {
	ID          uuid.UUID `json:"id"`
	StudentID   uuid.UUID `json:"student_id"`
	Subject     string    `json:"subject"`
	ClassName   string    `json:"class_name"`
	Term        string    `json:"term"`
	FirstTest   int       `json:"first_test"`
	SecondTest  int       `json:"second_test"`
	ThirdTest   int       `json:"third_test"`
	MidTerm     int       `json:"mid_term"`
	Examination int       `json:"examination"`
	Total       int       `json:"total"`
	Position    int       `json:"position"`
}

func ToMarkResponse(m *model.MarkModel) MarkResponse {
	return MarkResponse{
		ID:          m.MarkID,
		StudentID:   m.MarkStudentID,
		Subject:     m.MarkSubject,
		ClassName:   m.MarkClassName,
		Term:        m.MarkTerm,
		FirstTest:   m.MarkFirstTest,
		SecondTest:  m.MarkSecondTest,
		ThirdTest:   m.MarkThirdTest,
		MidTerm:     m.MarkMidTerm,
		Examination: m.MarkExamination,
		Total:       m.MarkTotal,
		Position:    m.MarkPosition,
	}
}
