// file: internals/features/school/results/dto/result_dto.go
package dto

import (
	"github.com/google/uuid"

	"schoolhub_backend/internals/features/school/results/model"
)

type UpsertResultRequest struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	Subject   string    `json:"subject" validate:"required,max=80"`
	ClassName string    `json:"class_name" validate:"required,max=40"`
	Term      string    `json:"term" validate:"required,max=30"`
	Test1     *int      `json:"test1" validate:"omitempty,min=0,max=100"`
	Test2     *int      `json:"test2" validate:"omitempty,min=0,max=100"`
	Test3     *int      `json:"test3" validate:"omitempty,min=0,max=100"`
	Test4     *int      `json:"test4" validate:"omitempty,min=0,max=100"`
	Project   *int      `json:"project" validate:"omitempty,min=0,max=100"`
	Exam      int       `json:"exam" validate:"min=0,max=100"`
}

type ResultResponse struct {
	ID        uuid.UUID `json:"id"`
	StudentID uuid.UUID `json:"student_id"`
	Subject   string    `json:"subject"`
	ClassName string    `json:"class_name"`
	Term      string    `json:"term"`
	Test1     *int      `json:"test1,omitempty"`
	Test2     *int      `json:"test2,omitempty"`
	Test3     *int      `json:"test3,omitempty"`
	Test4     *int      `json:"test4,omitempty"`
	Project   *int      `json:"project,omitempty"`
	Exam      int       `json:"exam"`
	Composite float64   `json:"composite"`
	Grade     string    `json:"grade"`
	Remark    string    `json:"remark"`
	Published bool      `json:"published"`
}

func ToResultResponse(m *model.ResultModel) ResultResponse {
	return ResultResponse{
		ID:        m.ResultID,
		StudentID: m.ResultStudentID,
		Subject:   m.ResultSubject,
		ClassName: m.ResultClassName,
		Term:      m.ResultTerm,
		Test1:     m.ResultTest1,
		Test2:     m.ResultTest2,
		Test3:     m.ResultTest3,
		Test4:     m.ResultTest4,
		Project:   m.ResultProject,
		Exam:      m.ResultExam,
		Composite: m.ResultComposite,
		Grade:     m.ResultGrade,
		Remark:    m.ResultRemark,
		Published: m.ResultPublished,
	}
}
