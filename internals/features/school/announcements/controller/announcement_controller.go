// file: internals/features/school/announcements/controller/announcement_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"schoolhub_backend/internals/features/school/announcements/dto"
	"schoolhub_backend/internals/features/school/announcements/model"
	helper "schoolhub_backend/internals/helpers"
	helperAuth "schoolhub_backend/internals/helpers/auth"
)

type AnnouncementController struct {
	DB *gorm.DB
}

func NewAnnouncementController(db *gorm.DB) *AnnouncementController {
	return &AnnouncementController{DB: db}
}

var validate = validator.New()

// POST /api/a/announcements
func (ctrl *AnnouncementController) Create(c *fiber.Ctx) error {
	adminID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	schoolName, err := helperAuth.GetSchoolNameFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateAnnouncementRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := model.AnnouncementModel{
		AnnouncementSchoolName:    schoolName,
		AnnouncementTitle:         req.Title,
		AnnouncementBody:          req.Body,
		AnnouncementTargetClasses: pq.StringArray(req.TargetClasses),
		AnnouncementCreatedBy:     adminID,
	}
	if err := ctrl.DB.Create(&m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create announcement")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Announcement created", dto.ToAnnouncementResponse(&m))
}

// GET /api/u/announcements
// Siswa melihat pengumuman sekolah + yang menarget kelasnya.
func (ctrl *AnnouncementController) List(c *fiber.Ctx) error {
	schoolName, err := helperAuth.GetSchoolNameFromToken(c)
	if err != nil {
		return err
	}
	className := helperAuth.GetClassNameFromToken(c)

	q := ctrl.DB.Where("announcement_school_name = ?", schoolName)
	if className != "" {
		q = q.Where(
			"announcement_target_classes IS NULL OR cardinality(announcement_target_classes) = 0 OR ? = ANY(announcement_target_classes)",
			className,
		)
	}

	var rows []model.AnnouncementModel
	if err := q.Order("announcement_created_at desc").Limit(100).Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch announcements")
	}

	out := make([]dto.AnnouncementResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.ToAnnouncementResponse(&rows[i]))
	}
	return helper.Success(c, "OK", out)
}

// PUT /api/a/announcements/:id
func (ctrl *AnnouncementController) Update(c *fiber.Ctx) error {
	schoolName, err := helperAuth.GetSchoolNameFromToken(c)
	if err != nil {
		return err
	}
	annID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid announcement id")
	}

	var req dto.CreateAnnouncementRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m model.AnnouncementModel
	if err := ctrl.DB.
		Where("announcement_id = ? AND announcement_school_name = ?", annID, schoolName).
		Take(&m).Error; err != nil {
		return helper.Error(c, fiber.StatusNotFound, "Announcement not found")
	}

	m.AnnouncementTitle = req.Title
	m.AnnouncementBody = req.Body
	m.AnnouncementTargetClasses = pq.StringArray(req.TargetClasses)
	if err := ctrl.DB.Save(&m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to update announcement")
	}

	return helper.Success(c, "Announcement updated", dto.ToAnnouncementResponse(&m))
}

// DELETE /api/a/announcements/:id
func (ctrl *AnnouncementController) Delete(c *fiber.Ctx) error {
	schoolName, err := helperAuth.GetSchoolNameFromToken(c)
	if err != nil {
		return err
	}
	annID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid announcement id")
	}

	res := ctrl.DB.
		Where("announcement_id = ? AND announcement_school_name = ?", annID, schoolName).
		Delete(&model.AnnouncementModel{})
	if res.Error != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to delete announcement")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Announcement not found")
	}

	return helper.Success(c, "Announcement deleted", nil)
}
