// file: internals/features/school/settings/controller/school_setting_controller.go
package controller

import (
	"errors"
	"regexp"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"schoolhub_backend/internals/features/school/settings/dto"
	"schoolhub_backend/internals/features/school/settings/model"
	helper "schoolhub_backend/internals/helpers"
	helperAuth "schoolhub_backend/internals/helpers/auth"
)

type SchoolSettingController struct {
	DB *gorm.DB
}

func NewSchoolSettingController(db *gorm.DB) *SchoolSettingController {
	return &SchoolSettingController{DB: db}
}

var (
	validate    = validator.New()
	hhmmPattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
)

// PUT /api/a/settings
// Upsert per tenant — baris dibuat lazy saat write pertama.
func (ctrl *SchoolSettingController) Upsert(c *fiber.Ctx) error {
	schoolName, err := helperAuth.GetSchoolNameFromToken(c)
	if err != nil {
		return err
	}

	var req dto.UpsertSchoolSettingRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if !hhmmPattern.MatchString(req.LateTime) {
		return helper.Error(c, fiber.StatusBadRequest, "late_time must be HH:MM")
	}

	m := model.SchoolSettingModel{
		SchoolSettingSchoolName: schoolName,
		SchoolSettingLateTime:   req.LateTime,
		SchoolSettingLatitude:   req.Latitude,
		SchoolSettingLongitude:  req.Longitude,
	}
	if req.RadiusMeters != nil {
		m.SchoolSettingRadiusMeters = *req.RadiusMeters
	} else {
		m.SchoolSettingRadiusMeters = 200
	}
	if req.AllowTeacherMarkAny != nil {
		m.SchoolSettingAllowTeacherMarkAny = *req.AllowTeacherMarkAny
	}

	// upsert by tenant key
	if err := ctrl.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "school_setting_school_name"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"school_setting_late_time",
			"school_setting_latitude",
			"school_setting_longitude",
			"school_setting_radius_meters",
			"school_setting_allow_teacher_mark_any",
		}),
	}).Create(&m).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to save settings")
	}

	return helper.Success(c, "Settings saved", dto.ToSchoolSettingResponse(&m))
}

// GET /api/a/settings
func (ctrl *SchoolSettingController) Get(c *fiber.Ctx) error {
	schoolName, err := helperAuth.GetSchoolNameFromToken(c)
	if err != nil {
		return err
	}

	var m model.SchoolSettingModel
	if err := ctrl.DB.
		Where("school_setting_school_name = ?", schoolName).
		Take(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Settings not configured for this school")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	return helper.Success(c, "OK", dto.ToSchoolSettingResponse(&m))
}
