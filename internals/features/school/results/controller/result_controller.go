// file: internals/features/school/results/controller/result_controller.go
package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolhub_backend/internals/features/school/results/dto"
	"schoolhub_backend/internals/features/school/results/model"
	"schoolhub_backend/internals/features/school/results/service"
	helper "schoolhub_backend/internals/helpers"
	helperAuth "schoolhub_backend/internals/helpers/auth"
)

type ResultController struct {
	DB *gorm.DB
}

func NewResultController(db *gorm.DB) *ResultController {
	return &ResultController{DB: db}
}

var validate = validator.New()

// POST /api/t/results
// Create/update result berbobot. Result yang sudah published immutable:
// wajib unpublish dulu.
func (ctrl *ResultController) Upsert(c *fiber.Ctx) error {
	schoolName, err := helperAuth.GetSchoolNameFromToken(c)
	if err != nil {
		return err
	}

	var req dto.UpsertResultRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	composite := service.Composite(
		[]*int{req.Test1, req.Test2, req.Test3, req.Test4},
		req.Project, req.Exam,
	)

	var existing model.ResultModel
	err = ctrl.DB.
		Where("result_school_name = ? AND result_student_id = ? AND result_subject = ? AND result_term = ?",
			schoolName, req.StudentID, req.Subject, req.Term).
		Take(&existing).Error

	switch {
	case err == nil:
		if existing.ResultPublished {
			return helper.Error(c, fiber.StatusForbidden, "Result is published; unpublish before editing")
		}
		existing.ResultClassName = req.ClassName
		existing.ResultTest1 = req.Test1
		existing.ResultTest2 = req.Test2
		existing.ResultTest3 = req.Test3
		existing.ResultTest4 = req.Test4
		existing.ResultProject = req.Project
		existing.ResultExam = req.Exam
		existing.ResultComposite = composite
		existing.ResultGrade = service.GradeFor(composite)
		existing.ResultRemark = service.RemarkFor(composite)
		if err := ctrl.DB.Save(&existing).Error; err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to save result")
		}
		return helper.Success(c, "Result updated", dto.ToResultResponse(&existing))

	case errors.Is(err, gorm.ErrRecordNotFound):
		m := model.ResultModel{
			ResultSchoolName: schoolName,
			ResultStudentID:  req.StudentID,
			ResultSubject:    req.Subject,
			ResultClassName:  req.ClassName,
			ResultTerm:       req.Term,
			ResultTest1:      req.Test1,
			ResultTest2:      req.Test2,
			ResultTest3:      req.Test3,
			ResultTest4:      req.Test4,
			ResultProject:    req.Project,
			ResultExam:       req.Exam,
			ResultComposite:  composite,
			ResultGrade:      service.GradeFor(composite),
			ResultRemark:     service.RemarkFor(composite),
		}
		if err := ctrl.DB.Create(&m).Error; err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to save result")
		}
		return helper.SuccessWithCode(c, fiber.StatusCreated, "Result created", dto.ToResultResponse(&m))

	default:
		return helper.Error(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
}

// PATCH /api/t/results/:id/publish
func (ctrl *ResultController) Publish(c *fiber.Ctx) error {
	return ctrl.setPublished(c, true)
}

// PATCH /api/t/results/:id/unpublish
// Langkah eksplisit sebelum edit/hapus result yang sudah terbit.
func (ctrl *ResultController) Unpublish(c *fiber.Ctx) error {
	return ctrl.setPublished(c, false)
}

// DELETE /api/t/results/:id
func (ctrl *ResultController) Delete(c *fiber.Ctx) error {
	schoolName, err := helperAuth.GetSchoolNameFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid result id")
	}

	var m model.ResultModel
	if err := ctrl.DB.
		Where("result_id = ? AND result_school_name = ?", id, schoolName).
		Take(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Result not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	if m.ResultPublished {
		return helper.Error(c, fiber.StatusForbidden, "Result is published; unpublish before deleting")
	}

	if err := ctrl.DB.Delete(&m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete result")
	}
	return helper.Success(c, "Result deleted", nil)
}

// GET /api/u/results?student_id=&term=
func (ctrl *ResultController) ListForStudent(c *fiber.Ctx) error {
	requesterID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	role, err := helperAuth.GetRoleFromToken(c)
	if err != nil {
		return err
	}

	targetID := requesterID
	if raw := c.Query("student_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid student_id")
		}
		targetID = parsed
	}
	if targetID != requesterID && !helperAuth.IsAdminRole(role) && role != "teacher" {
		return helper.Error(c, fiber.StatusForbidden, "You may only view your own results")
	}

	q := ctrl.DB.Where("result_student_id = ?", targetID)
	// siswa hanya melihat result yang sudah published
	if role == "student" || role == "parent" {
		q = q.Where("result_published = ?", true)
	}
	if term := c.Query("term"); term != "" {
		q = q.Where("result_term = ?", term)
	}

	var rows []model.ResultModel
	if err := q.Order("result_subject asc").Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch results")
	}

	out := make([]dto.ResultResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.ToResultResponse(&rows[i]))
	}
	return helper.Success(c, "OK", out)
}

func (ctrl *ResultController) setPublished(c *fiber.Ctx, published bool) error {
	schoolName, err := helperAuth.GetSchoolNameFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid result id")
	}

	res := ctrl.DB.Model(&model.ResultModel{}).
		Where("result_id = ? AND result_school_name = ?", id, schoolName).
		Update("result_published", published)
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Result not found")
	}

	msg := "Result published"
	if !published {
		msg = "Result unpublished"
	}
	return helper.Success(c, msg, nil)
}
