// file: internals/features/school/exams/controller/exam_question_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	cbtService "schoolhub_backend/internals/features/school/cbt/service"
	"schoolhub_backend/internals/features/school/exams/dto"
	"schoolhub_backend/internals/features/school/exams/model"
	helper "schoolhub_backend/internals/helpers"
	helperAuth "schoolhub_backend/internals/helpers/auth"
)

type ExamController struct {
	DB *gorm.DB
}

func NewExamController(db *gorm.DB) *ExamController {
	return &ExamController{DB: db}
}

var validate = validator.New()

// POST /api/u/exams/questions
// Bank soal baru selalu lahir sebagai draft.
func (ctrl *ExamController) CreateQuestionBank(c *fiber.Ctx) error {
	teacherID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	schoolName, err := helperAuth.GetSchoolNameFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateExamQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if err := cbtService.ValidateQuestions(req.Questions); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}

	raw, err := cbtService.EncodeQuestions(req.Questions)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to encode questions")
	}

	m := model.ExamQuestionModel{
		ExamQuestionSchoolName:       schoolName,
		ExamQuestionTitle:            req.Title,
		ExamQuestionSubject:          req.Subject,
		ExamQuestionClassNames:       pq.StringArray(req.ClassNames),
		ExamQuestionTerm:             req.Term,
		ExamQuestionDuration:         req.DurationMinutes,
		ExamQuestionQuestions:        raw,
		ExamQuestionStatus:           model.ExamDraft,
		ExamQuestionCbtAvailableFrom: req.CbtAvailableFrom,
		ExamQuestionCreatedBy:        teacherID,
	}
	if err := ctrl.DB.Create(&m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create question bank")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Question bank created", dto.ToExamQuestionResponse(&m, len(req.Questions)))
}

// PUT /api/u/exams/questions/:id
// Hanya pembuat, dan hanya selama draft. Bank published tidak bisa
// diubah lagi (tidak ada jalur unpublish).
func (ctrl *ExamController) UpdateQuestionBank(c *fiber.Ctx) error {
	teacherID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	bank, ferr := ctrl.loadOwnedBank(c, teacherID)
	if ferr != nil {
		return ferr
	}
	if bank.ExamQuestionStatus == model.ExamPublished {
		return helper.Error(c, fiber.StatusForbidden, "Published question banks cannot be edited")
	}

	var req dto.UpdateExamQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if req.Title != nil {
		bank.ExamQuestionTitle = *req.Title
	}
	if req.Subject != nil {
		bank.ExamQuestionSubject = *req.Subject
	}
	if len(req.ClassNames) > 0 {
		bank.ExamQuestionClassNames = pq.StringArray(req.ClassNames)
	}
	if req.Term != nil {
		bank.ExamQuestionTerm = *req.Term
	}
	if req.DurationMinutes != nil {
		bank.ExamQuestionDuration = *req.DurationMinutes
	}
	if req.CbtAvailableFrom != nil {
		bank.ExamQuestionCbtAvailableFrom = req.CbtAvailableFrom
	}
	if len(req.Questions) > 0 {
		if err := cbtService.ValidateQuestions(req.Questions); err != nil {
			return helper.Error(c, fiber.StatusBadRequest, err.Error())
		}
		raw, err := cbtService.EncodeQuestions(req.Questions)
		if err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to encode questions")
		}
		bank.ExamQuestionQuestions = raw
	}

	if err := ctrl.DB.Save(bank).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update question bank")
	}

	qs, _ := cbtService.DecodeQuestions(bank.ExamQuestionQuestions)
	return helper.Success(c, "Question bank updated", dto.ToExamQuestionResponse(bank, len(qs)))
}

// POST /api/u/exams/questions/:id/publish
// Transisi satu arah: draft → published. Publish ulang idempoten.
func (ctrl *ExamController) PublishQuestionBank(c *fiber.Ctx) error {
	teacherID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	bank, ferr := ctrl.loadOwnedBank(c, teacherID)
	if ferr != nil {
		return ferr
	}

	if bank.ExamQuestionStatus != model.ExamPublished {
		if err := ctrl.DB.Model(bank).
			Update("exam_question_status", model.ExamPublished).Error; err != nil {
			return helper.Error(c, fiber.StatusInternalServerError, "Failed to publish question bank")
		}
		bank.ExamQuestionStatus = model.ExamPublished
	}

	qs, _ := cbtService.DecodeQuestions(bank.ExamQuestionQuestions)
	return helper.Success(c, "Question bank published", dto.ToExamQuestionResponse(bank, len(qs)))
}

// GET /api/u/exams/questions
// Daftar bank soal milik guru yang login.
func (ctrl *ExamController) ListMyBanks(c *fiber.Ctx) error {
	teacherID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var rows []model.ExamQuestionModel
	if err := ctrl.DB.
		Where("exam_question_created_by = ?", teacherID).
		Order("exam_question_created_at desc").
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch question banks")
	}

	out := make([]dto.ExamQuestionResponse, 0, len(rows))
	for i := range rows {
		qs, err := cbtService.DecodeQuestions(rows[i].ExamQuestionQuestions)
		if err != nil {
			continue
		}
		out = append(out, dto.ToExamQuestionResponse(&rows[i], len(qs)))
	}
	return helper.Success(c, "OK", out)
}

// GET /api/u/exams/available
// Query ketersediaan CBT untuk siswa: published ∧ kelas cocok ∧
// cbt_available_from <= now.
func (ctrl *ExamController) ListAvailableForStudent(c *fiber.Ctx) error {
	schoolName, err := helperAuth.GetSchoolNameFromToken(c)
	if err != nil {
		return err
	}
	className := helperAuth.GetClassNameFromToken(c)
	if className == "" {
		return helper.Error(c, fiber.StatusForbidden, "Only students with a class may view exams")
	}

	now := time.Now()
	var rows []model.ExamQuestionModel
	if err := ctrl.DB.
		Where("exam_question_school_name = ?", schoolName).
		Where("exam_question_status = ?", model.ExamPublished).
		Where("? = ANY(exam_question_class_names)", className).
		Where("exam_question_cbt_available_from IS NOT NULL AND exam_question_cbt_available_from <= ?", now).
		Order("exam_question_cbt_available_from desc").
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch exams")
	}

	out := make([]dto.ExamQuestionResponse, 0, len(rows))
	for i := range rows {
		qs, err := cbtService.DecodeQuestions(rows[i].ExamQuestionQuestions)
		if err != nil {
			continue
		}
		out = append(out, dto.ToExamQuestionResponse(&rows[i], len(qs)))
	}
	return helper.Success(c, "OK", out)
}

// loadOwnedBank: tenant + kepemilikan; non-pemilik → 403.
func (ctrl *ExamController) loadOwnedBank(c *fiber.Ctx, teacherID uuid.UUID) (*model.ExamQuestionModel, error) {
	schoolName, err := helperAuth.GetSchoolNameFromToken(c)
	if err != nil {
		return nil, err
	}
	bankID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, helper.Error(c, fiber.StatusBadRequest, "Invalid question bank id")
	}

	var bank model.ExamQuestionModel
	if err := ctrl.DB.
		Where("exam_question_id = ? AND exam_question_school_name = ?", bankID, schoolName).
		Take(&bank).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.Error(c, fiber.StatusNotFound, "Question bank not found")
		}
		return nil, helper.Error(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	if bank.ExamQuestionCreatedBy != teacherID {
		return nil, helper.Error(c, fiber.StatusForbidden, "You do not own this question bank")
	}
	return &bank, nil
}
