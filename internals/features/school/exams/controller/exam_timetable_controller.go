// file: internals/features/school/exams/controller/exam_timetable_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolhub_backend/internals/features/school/exams/dto"
	"schoolhub_backend/internals/features/school/exams/model"
	helper "schoolhub_backend/internals/helpers"
	helperAuth "schoolhub_backend/internals/helpers/auth"
)

// POST /api/a/exams/timetable
// Jadwal milik admin; end_time dihitung otomatis dari start + durasi.
func (ctrl *ExamController) CreateTimetable(c *fiber.Ctx) error {
	adminID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	schoolName, err := helperAuth.GetSchoolNameFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateTimetableRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	// bank soal harus ada di tenant yang sama
	var bank model.ExamQuestionModel
	if err := ctrl.DB.
		Where("exam_question_id = ? AND exam_question_school_name = ?", req.ExamQuestionID, schoolName).
		Take(&bank).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Question bank not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	m := model.ExamTimetableModel{
		TimetableSchoolName:      schoolName,
		TimetableExamQuestionID:  req.ExamQuestionID,
		TimetableClassName:       req.ClassName,
		TimetableStartTime:       req.StartTime,
		TimetableDurationMinutes: req.DurationMinutes,
		TimetableCreatedBy:       adminID,
	}
	m.ComputeEndTime()

	if err := ctrl.DB.Create(&m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create timetable entry")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Timetable entry created", dto.ToTimetableResponse(&m))
}

// GET /api/a/exams/timetable?class_name=
func (ctrl *ExamController) ListTimetable(c *fiber.Ctx) error {
	schoolName, err := helperAuth.GetSchoolNameFromToken(c)
	if err != nil {
		return err
	}

	q := ctrl.DB.Where("timetable_school_name = ?", schoolName)
	if cn := c.Query("class_name"); cn != "" {
		q = q.Where("timetable_class_name = ?", cn)
	}

	var rows []model.ExamTimetableModel
	if err := q.Order("timetable_start_time asc").Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch timetable")
	}

	out := make([]dto.TimetableResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.ToTimetableResponse(&rows[i]))
	}
	return helper.Success(c, "OK", out)
}

// DELETE /api/a/exams/timetable/:id
func (ctrl *ExamController) DeleteTimetable(c *fiber.Ctx) error {
	schoolName, err := helperAuth.GetSchoolNameFromToken(c)
	if err != nil {
		return err
	}
	entryID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid timetable id")
	}

	res := ctrl.DB.
		Where("timetable_id = ? AND timetable_school_name = ?", entryID, schoolName).
		Delete(&model.ExamTimetableModel{})
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete timetable entry")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Timetable entry not found")
	}

	return helper.Success(c, "Timetable entry deleted", nil)
}
