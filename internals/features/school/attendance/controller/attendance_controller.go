// file: internals/features/school/attendance/controller/attendance_controller.go
package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolhub_backend/internals/features/school/attendance/dto"
	"schoolhub_backend/internals/features/school/attendance/model"
	"schoolhub_backend/internals/features/school/attendance/service"
	settingModel "schoolhub_backend/internals/features/school/settings/model"
	userModel "schoolhub_backend/internals/features/users/user/model"
	helper "schoolhub_backend/internals/helpers"
	helperAuth "schoolhub_backend/internals/helpers/auth"
)

type AttendanceController struct {
	DB    *gorm.DB
	GeoIP service.GeoIPResolver
}

func NewAttendanceController(db *gorm.DB, geoip service.GeoIPResolver) *AttendanceController {
	return &AttendanceController{DB: db, GeoIP: geoip}
}

var validate = validator.New()

const msgAlreadyMarked = "Attendance already marked today"

// POST /api/attendance/mark
// Endpoint scan: resolve identitas via scan code → settings tenant →
// geofence/time validator → insert (unique index menjaga duplikat).
func (ctrl *AttendanceController) Mark(c *fiber.Ctx) error {
	var req dto.MarkAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	// 1) Identity resolver: scan code → user + tenant
	var u userModel.UserModel
	if err := ctrl.DB.Where("user_scan_code = ?", req.Code).Take(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Invalid attendance code")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	// 2) Settings tenant — selalu tenant-keyed, tanpa fallback global
	var set settingModel.SchoolSettingModel
	if err := ctrl.DB.
		Where("school_setting_school_name = ?", u.UserSchoolName).
		Take(&set).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusBadRequest, "School settings not configured")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	now := time.Now()

	// 3) Validator geofence + jam
	in := service.EvaluateInput{
		RadiusMeters: set.SchoolSettingRadiusMeters,
		LateTime:     set.SchoolSettingLateTime,
		Now:          now,
	}
	if set.HasLocation() {
		in.School = &service.GeoPoint{
			Latitude:  *set.SchoolSettingLatitude,
			Longitude: *set.SchoolSettingLongitude,
		}
	}
	if req.Latitude != nil && req.Longitude != nil {
		in.Claimed = &service.GeoPoint{Latitude: *req.Latitude, Longitude: *req.Longitude}
	} else if in.School != nil && ctrl.GeoIP != nil {
		// fallback lokasi-IP; gagal resolve = fail-open (tanpa cek tambahan)
		pt, err := ctrl.GeoIP.Resolve(c.UserContext(), c.IP())
		if err != nil {
			log.Printf("[WARN] geoip lookup gagal untuk %s: %v", c.IP(), err)
		} else {
			in.IPResolved = pt
		}
	}

	dec := service.Evaluate(in)
	if !dec.Accepted {
		return helper.Error(c, fiber.StatusForbidden, dec.Reason)
	}

	// 4) Pre-check hari ini (jawaban cepat untuk kasus umum)
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	var count int64
	if err := ctrl.DB.Model(&model.AttendanceRecordModel{}).
		Where("attendance_user_id = ? AND attendance_day = ?", u.UserID, day).
		Count(&count).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	if count > 0 {
		return helper.Error(c, fiber.StatusConflict, msgAlreadyMarked)
	}

	// 5) Insert — duplikat yang lolos pre-check (dua scan nyaris bersamaan)
	// tetap tertahan unique index dan dipetakan ke 409 yang sama.
	rec := model.AttendanceRecordModel{
		AttendanceUserID:     u.UserID,
		AttendanceDay:        day,
		AttendanceSchoolName: u.UserSchoolName,
		AttendanceStatus:     dec.Status,
		AttendanceMethod:     req.Method,
		AttendanceLatitude:   req.Latitude,
		AttendanceLongitude:  req.Longitude,
		AttendanceIPAddress:  c.IP(),
	}
	if err := ctrl.DB.Create(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.Error(c, fiber.StatusConflict, msgAlreadyMarked)
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to save attendance")
	}

	return helper.SuccessWithCode(c, fiber.StatusCreated, "Attendance marked", dto.ToAttendanceResponse(&rec))
}

// GET /api/u/attendance/history?user_id=&limit=
// Akses: diri sendiri, admin/superadmin, atau parent dari siswa tsb.
func (ctrl *AttendanceController) History(c *fiber.Ctx) error {
	requesterID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	role, err := helperAuth.GetRoleFromToken(c)
	if err != nil {
		return err
	}

	targetID := requesterID
	if raw := c.Query("user_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Invalid user_id")
		}
		targetID = parsed
	}

	if targetID != requesterID && !helperAuth.IsAdminRole(role) {
		// parent boleh lihat anaknya
		allowed := false
		if role == "parent" {
			var parent userModel.UserModel
			if err := ctrl.DB.Where("user_id = ?", requesterID).Take(&parent).Error; err == nil {
				allowed = parent.UserParentOf != nil && *parent.UserParentOf == targetID
			}
		}
		if !allowed {
			return helper.Error(c, fiber.StatusForbidden, "You may only view your own attendance history")
		}
	}

	limit := 30
	if n := c.QueryInt("limit"); n > 0 && n <= 200 {
		limit = n
	}

	var rows []model.AttendanceRecordModel
	if err := ctrl.DB.
		Where("attendance_user_id = ?", targetID).
		Order("attendance_day desc").
		Limit(limit).
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch history")
	}

	out := make([]dto.AttendanceResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.ToAttendanceResponse(&rows[i]))
	}
	return helper.Success(c, "OK", out)
}

// GET /api/a/attendance?date=YYYY-MM-DD&role=
// Admin/superadmin: seluruh record tenant, filter tanggal + role opsional.
func (ctrl *AttendanceController) ListAll(c *fiber.Ctx) error {
	schoolName, err := helperAuth.GetSchoolNameFromToken(c)
	if err != nil {
		return err
	}

	q := ctrl.DB.Model(&model.AttendanceRecordModel{}).
		Where("attendance_school_name = ?", schoolName)

	if raw := c.Query("date"); raw != "" {
		day, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "date must be YYYY-MM-DD")
		}
		q = q.Where("attendance_day = ?", day)
	}
	if role := c.Query("role"); role != "" {
		q = q.Joins("JOIN users ON users.user_id = attendance_records.attendance_user_id").
			Where("users.user_role = ?", role)
	}

	page := helper.ParsePagination(c)

	var rows []model.AttendanceRecordModel
	if err := q.Order("attendance_created_at desc").
		Limit(page.PerPage).Offset(page.Offset()).
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch attendance")
	}

	out := make([]dto.AttendanceResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.ToAttendanceResponse(&rows[i]))
	}
	return helper.Success(c, "OK", out)
}
