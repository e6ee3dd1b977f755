// file: internals/features/school/cbt/controller/cbt_attempt_controller.go
package controller

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"schoolhub_backend/internals/features/school/cbt/dto"
	"schoolhub_backend/internals/features/school/cbt/model"
	"schoolhub_backend/internals/features/school/cbt/service"
	helper "schoolhub_backend/internals/helpers"
	helperAuth "schoolhub_backend/internals/helpers/auth"
)

// POST /api/u/cbt/tests/:id/start
// Idempotent resume: start kedua saat in_progress mengembalikan
// attempt yang sama; attempt completed menolak start baru.
func (ctrl *CBTController) StartAttempt(c *fiber.Ctx) error {
	studentID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	schoolName, err := helperAuth.GetSchoolNameFromToken(c)
	if err != nil {
		return err
	}
	className := helperAuth.GetClassNameFromToken(c)

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

	if !test.ForClass(className) {
		return helper.Error(c, fiber.StatusForbidden, "This test is not for your class")
	}
	if !test.InWindow(time.Now()) {
		return helper.Error(c, fiber.StatusForbidden, "Test is not open at this time")
	}

	// attempt yang sudah ada?
	var existing model.TestAttemptModel
	err = ctrl.DB.
		Where("attempt_test_id = ? AND attempt_student_id = ?", testID, studentID).
		Take(&existing).Error
	switch {
	case err == nil:
		if existing.AttemptStatus == model.AttemptCompleted {
			return helper.Error(c, fiber.StatusForbidden, "You have already completed this test")
		}
		return helper.Success(c, "Attempt resumed", dto.ToAttemptResponse(&existing))
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return helper.Error(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	attempt := model.TestAttemptModel{
		AttemptTestID:     testID,
		AttemptStudentID:  studentID,
		AttemptSchoolName: schoolName,
		AttemptAnswers:    datatypes.JSONMap{},
		AttemptStatus:     model.AttemptInProgress,
	}
	if err := ctrl.DB.Create(&attempt).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// start konkuren: attempt sudah dibuat request lain — pakai itu
			if err := ctrl.DB.
				Where("attempt_test_id = ? AND attempt_student_id = ?", testID, studentID).
				Take(&attempt).Error; err != nil {
				return helper.Error(c, fiber.StatusInternalServerError, "Internal Server Error")
			}
			if attempt.AttemptStatus == model.AttemptCompleted {
				return helper.Error(c, fiber.StatusForbidden, "You have already completed this test")
			}
			return helper.Success(c, "Attempt resumed", dto.ToAttemptResponse(&attempt))
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to start attempt")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Attempt started", dto.ToAttemptResponse(&attempt))
}

// POST /api/u/cbt/attempts/:id/answers
// Simpan satu jawaban per index soal (last write wins). Kebijakan
// eksplisit: ditolak setelah completed atau setelah time budget habis.
func (ctrl *CBTController) SubmitAnswer(c *fiber.Ctx) error {
	studentID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	attemptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid attempt id")
	}

	var req dto.SubmitAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	attempt, test, err := ctrl.loadOwnedAttempt(c, attemptID, studentID)
	if err != nil {
		return err
	}

	if attempt.AttemptStatus == model.AttemptCompleted {
		return helper.Error(c, fiber.StatusForbidden, "Attempt already completed")
	}
	if service.TimeBudgetExceeded(attempt.AttemptStartedAt, time.Now(), test.TestDurationMinutes) {
		return helper.Error(c, fiber.StatusForbidden, "Time is up for this test")
	}

	qs, err := service.DecodeQuestions(test.TestQuestions)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Corrupt test questions")
	}
	if req.QuestionIndex >= len(qs) {
		return helper.Error(c, fiber.StatusBadRequest, "question_index out of range")
	}

	// upsert satu key saja via jsonb_set: submit konkuren pada index
	// BERBEDA tidak saling timpa — last write wins hanya per index
	key := strconv.Itoa(req.QuestionIndex)
	res := ctrl.DB.Model(&model.TestAttemptModel{}).
		Where("attempt_id = ? AND attempt_status = ?", attempt.AttemptID, model.AttemptInProgress).
		Update("attempt_answers", gorm.Expr(
			"jsonb_set(COALESCE(attempt_answers, '{}'::jsonb), ?, to_jsonb(?::text))",
			pq.StringArray{key}, req.Option,
		))
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to save answer")
	}
	if res.RowsAffected == 0 {
		// finish konkuren menang duluan
		return helper.Error(c, fiber.StatusForbidden, "Attempt already completed")
	}

	if attempt.AttemptAnswers == nil {
		attempt.AttemptAnswers = datatypes.JSONMap{}
	}
	attempt.AttemptAnswers[key] = req.Option

	return helper.Success(c, "Answer saved", dto.ToAttemptResponse(attempt))
}

// POST /api/u/cbt/attempts/:id/finish
// Scoring exact-match; completed tepat sekali — finish kedua (atau
// dari non-pemilik) ditolak 403 dan skor tidak berubah.
func (ctrl *CBTController) FinishAttempt(c *fiber.Ctx) error {
	studentID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	attemptID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid attempt id")
	}

	attempt, test, err := ctrl.loadOwnedAttempt(c, attemptID, studentID)
	if err != nil {
		return err
	}

	if attempt.AttemptStatus == model.AttemptCompleted {
		return helper.Error(c, fiber.StatusForbidden, "Attempt already completed")
	}

	qs, err := service.DecodeQuestions(test.TestQuestions)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Corrupt test questions")
	}

	now := time.Now()
	scored := service.Score(qs, attempt.AttemptAnswers)
	elapsed := int(now.Sub(attempt.AttemptStartedAt).Seconds())

	// transisi tepat-sekali: guard di WHERE, bukan di memori
	res := ctrl.DB.Model(&model.TestAttemptModel{}).
		Where("attempt_id = ? AND attempt_status = ?", attempt.AttemptID, model.AttemptInProgress).
		Updates(map[string]interface{}{
			"attempt_status":             model.AttemptCompleted,
			"attempt_score":              scored.Correct,
			"attempt_percentage":         scored.Percentage,
			"attempt_time_taken_seconds": elapsed,
			"attempt_finished_at":        now,
		})
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to finish attempt")
	}
	if res.RowsAffected == 0 {
		// finish konkuren menang duluan
		return helper.Error(c, fiber.StatusForbidden, "Attempt already completed")
	}

	attempt.AttemptStatus = model.AttemptCompleted
	attempt.AttemptScore = scored.Correct
	attempt.AttemptPercentage = scored.Percentage
	attempt.AttemptTimeTakenSeconds = elapsed
	attempt.AttemptFinishedAt = &now

	return helper.Success(c, "Attempt completed", dto.ToAttemptResponse(attempt))
}

// loadOwnedAttempt memuat attempt + test-nya; non-pemilik → 403.
func (ctrl *CBTController) loadOwnedAttempt(c *fiber.Ctx, attemptID, studentID uuid.UUID) (*model.TestAttemptModel, *model.TestModel, error) {
	var attempt model.TestAttemptModel
	if err := ctrl.DB.Where("attempt_id = ?", attemptID).Take(&attempt).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, helper.Error(c, fiber.StatusNotFound, "Attempt not found")
		}
		return nil, nil, helper.Error(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	if attempt.AttemptStudentID != studentID {
		return nil, nil, helper.Error(c, fiber.StatusForbidden, "This attempt does not belong to you")
	}

	var test model.TestModel
	if err := ctrl.DB.Where("test_id = ?", attempt.AttemptTestID).Take(&test).Error; err != nil {
		return nil, nil, helper.Error(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	return &attempt, &test, nil
}
