// file: internals/features/school/marks/controller/mark_controller.go
package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"schoolhub_backend/internals/features/school/marks/dto"
	"schoolhub_backend/internals/features/school/marks/model"
	"schoolhub_backend/internals/features/school/marks/service"
	settingModel "schoolhub_backend/internals/features/school/settings/model"
	userModel "schoolhub_backend/internals/features/users/user/model"
	helper "schoolhub_backend/internals/helpers"
	helperAuth "schoolhub_backend/internals/helpers/auth"
)

type MarkController struct {
	DB *gorm.DB
}

func NewMarkController(db *gorm.DB) *MarkController {
	return &MarkController{DB: db}
}

var validate = validator.New()

// POST /api/t/marks
// Batch upsert nilai satu kohort. Siswa yang tidak valid di-skip
// (log + lanjut), batch tetap sukses. auto_position butuh policy flag
// allow_teacher_mark_any — kalau false, seluruh batch ditolak SEBELUM
// ada write.
func (ctrl *MarkController) UpsertBatch(c *fiber.Ctx) error {
	teacherID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	schoolName, err := helperAuth.GetSchoolNameFromToken(c)
	if err != nil {
		return err
	}

	var req dto.UpsertMarksRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if req.AutoPosition {
		var set settingModel.SchoolSettingModel
		err := ctrl.DB.
			Where("school_setting_school_name = ?", schoolName).
			Take(&set).Error
		if err != nil || !set.SchoolSettingAllowTeacherMarkAny {
			return helper.Error(c, fiber.StatusForbidden, "Auto position is not enabled for this school")
		}
	}

	updated := 0
	skipped := make([]string, 0)

	txErr := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		for rawID, scores := range req.Marks {
			studentID, err := uuid.Parse(rawID)
			if err != nil {
				log.Printf("[WARN] marks: id siswa tidak valid %q, skip", rawID)
				skipped = append(skipped, rawID)
				continue
			}

			// skip-and-continue: siswa hilang / beda kelas / beda tenant
			var student userModel.UserModel
			if err := tx.
				Where("user_id = ? AND user_school_name = ? AND user_role = ?", studentID, schoolName, "student").
				Take(&student).Error; err != nil {
				log.Printf("[WARN] marks: siswa %s tidak ditemukan di tenant %s, skip", studentID, schoolName)
				skipped = append(skipped, rawID)
				continue
			}
			if student.UserClassName != req.ClassName {
				log.Printf("[WARN] marks: siswa %s bukan kelas %s, skip", studentID, req.ClassName)
				skipped = append(skipped, rawID)
				continue
			}

			m := model.MarkModel{
				MarkSchoolName:  schoolName,
				MarkStudentID:   studentID,
				MarkSubject:     req.Subject,
				MarkClassName:   req.ClassName,
				MarkTerm:        req.Term,
				MarkTeacherID:   &teacherID,
				MarkFirstTest:   scores.FirstTest,
				MarkSecondTest:  scores.SecondTest,
				MarkThirdTest:   scores.ThirdTest,
				MarkMidTerm:     scores.MidTerm,
				MarkExamination: scores.Examination,
			}
			m.MarkTotal = m.ComputeTotal()

			if err := tx.Clauses(clause.OnConflict{
				Columns: []clause.Column{
					{Name: "mark_school_name"},
					{Name: "mark_student_id"},
					{Name: "mark_subject"},
					{Name: "mark_term"},
				},
				DoUpdates: clause.AssignmentColumns([]string{
					"mark_class_name",
					"mark_teacher_id",
					"mark_first_test",
					"mark_second_test",
					"mark_third_test",
					"mark_mid_term",
					"mark_examination",
					"mark_total",
				}),
			}).Create(&m).Error; err != nil {
				return err
			}
			updated++
		}

		if req.AutoPosition {
			return service.RecalculatePositions(tx, schoolName, req.ClassName, req.Subject, req.Term)
		}
		return nil
	})
	if txErr != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to save marks")
	}

	return helper.Success(c, "Marks saved", dto.UpsertMarksResponse{
		UpdatedCount: updated,
		Skipped:      skipped,
	})
}

// GET /api/t/marks?class_name=&subject=&term=
func (ctrl *MarkController) ListCohort(c *fiber.Ctx) error {
	schoolName, err := helperAuth.GetSchoolNameFromToken(c)
	if err != nil {
		return err
	}

	className := c.Query("class_name")
	subject := c.Query("subject")
	term := c.Query("term")
	if className == "" || subject == "" || term == "" {
		return helper.Error(c, fiber.StatusBadRequest, "class_name, subject and term are required")
	}

	rows, err := ctrl.loadCohort(schoolName, className, subject, term)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch marks")
	}

	out := make([]dto.MarkResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.ToMarkResponse(&rows[i]))
	}
	return helper.Success(c, "OK", out)
}

func (ctrl *MarkController) loadCohort(schoolName, className, subject, term string) ([]model.MarkModel, error) {
	var rows []model.MarkModel
	err := ctrl.DB.
		Where("mark_school_name = ? AND mark_class_name = ? AND mark_subject = ? AND mark_term = ?",
			schoolName, className, subject, term).
		Order("mark_total desc").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
