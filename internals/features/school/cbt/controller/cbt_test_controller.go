// file: internals/features/school/cbt/controller/cbt_test_controller.go
package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"schoolhub_backend/internals/features/school/cbt/dto"
	"schoolhub_backend/internals/features/school/cbt/model"
	"schoolhub_backend/internals/features/school/cbt/service"
	helper "schoolhub_backend/internals/helpers"
	helperAuth "schoolhub_backend/internals/helpers/auth"
)

type CBTController struct {
	DB *gorm.DB
}

func NewCBTController(db *gorm.DB) *CBTController {
	return &CBTController{DB: db}
}

var validate = validator.New()

// POST /api/t/cbt/tests
func (ctrl *CBTController) CreateTest(c *fiber.Ctx) error {
	teacherID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	schoolName, err := helperAuth.GetSchoolNameFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateTestRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if err := service.ValidateQuestions(req.Questions); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, err.Error())
	}
	if req.StartDate != nil && req.EndDate != nil && req.EndDate.Before(*req.StartDate) {
		return helper.Error(c, fiber.StatusBadRequest, "end_date must be after start_date")
	}

	raw, err := service.EncodeQuestions(req.Questions)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to encode questions")
	}

	m := model.TestModel{
		TestSchoolName:      schoolName,
		TestTitle:           req.Title,
		TestSubject:         req.Subject,
		TestClassNames:      pq.StringArray(req.ClassNames),
		TestTerm:            req.Term,
		TestDurationMinutes: req.DurationMinutes,
		TestQuestions:       raw,
		TestStartDate:       req.StartDate,
		TestEndDate:         req.EndDate,
		TestCreatedBy:       teacherID,
	}
	if err := ctrl.DB.Create(&m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create test")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Test created", dto.ToTestSummary(&m, len(req.Questions)))
}

// GET /api/u/cbt/tests/available
// Daftar test untuk siswa: kelas cocok + dalam jendela tanggal.
func (ctrl *CBTController) ListAvailable(c *fiber.Ctx) error {
	schoolName, err := helperAuth.GetSchoolNameFromToken(c)
	if err != nil {
		return err
	}
	className := helperAuth.GetClassNameFromToken(c)
	if className == "" {
		return helper.Error(c, fiber.StatusForbidden, "Only students with a class may take tests")
	}

	now := time.Now()
	var rows []model.TestModel
	if err := ctrl.DB.
		Where("test_school_name = ?", schoolName).
		Where("? = ANY(test_class_names)", className).
		Where("(test_start_date IS NULL OR test_start_date <= ?)", now).
		Where("(test_end_date IS NULL OR test_end_date >= ?)", now).
		Order("test_created_at desc").
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch tests")
	}

	out := make([]dto.TestSummaryResponse, 0, len(rows))
	for i := range rows {
		qs, err := service.DecodeQuestions(rows[i].TestQuestions)
		if err != nil {
			continue
		}
		out = append(out, dto.ToTestSummary(&rows[i], len(qs)))
	}
	return helper.Success(c, "OK", out)
}

// GET /api/u/cbt/tests/:id/results
// Hanya pembuat test atau admin/superadmin.
func (ctrl *CBTController) TestResults(c *fiber.Ctx) error {
	requesterID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	role, err := helperAuth.GetRoleFromToken(c)
	if err != nil {
		return err
	}
	schoolName, err := helperAuth.GetSchoolNameFromToken(c)
	if err != nil {
		return err
	}

	testID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid test id")
	}

	var test model.TestModel
	if err := ctrl.DB.
		Where("test_id = ? AND test_school_name = ?", testID, schoolName).
		Take(&test).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Test not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	if test.TestCreatedBy != requesterID && !helperAuth.IsAdminRole(role) {
		return helper.Error(c, fiber.StatusForbidden, "Only the test creator may view results")
	}

	var attempts []model.TestAttemptModel
	if err := ctrl.DB.
		Where("attempt_test_id = ? AND attempt_status = ?", testID, model.AttemptCompleted).
		Order("attempt_score desc").
		Find(&attempts).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch results")
	}

	out := make([]dto.AttemptResponse, 0, len(attempts))
	for i := range attempts {
		out = append(out, dto.ToAttemptResponse(&attempts[i]))
	}
	return helper.Success(c, "OK", out)
}
