// file: internals/features/users/user/controller/user_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolhub_backend/internals/features/users/user/dto"
	"schoolhub_backend/internals/features/users/user/model"
	helper "schoolhub_backend/internals/helpers"
	helperAuth "schoolhub_backend/internals/helpers/auth"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// GET /api/a/users?role=&class_name=&page=&per_page=
func (ctrl *UserController) ListUsers(c *fiber.Ctx) error {
	schoolName, err := helperAuth.GetSchoolNameFromToken(c)
	if err != nil {
		return err
	}

	q := ctrl.DB.Model(&model.UserModel{}).
		Where("user_school_name = ?", schoolName)

	if role := c.Query("role"); role != "" {
		q = q.Where("user_role = ?", role)
	}
	if className := c.Query("class_name"); className != "" {
		q = q.Where("user_class_name = ?", className)
	}

	page := helper.ParsePagination(c)

	var rows []model.UserModel
	if err := q.Order("user_full_name asc").
		Limit(page.PerPage).Offset(page.Offset()).
		Find(&rows).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to fetch users")
	}

	out := make([]dto.UserResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.ToUserResponse(&rows[i]))
	}
	return helper.Success(c, "OK", out)
}

// GET /api/a/users/:id
func (ctrl *UserController) GetUser(c *fiber.Ctx) error {
	schoolName, err := helperAuth.GetSchoolNameFromToken(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid user id")
	}

	var u model.UserModel
	if err := ctrl.DB.
		Where("user_id = ? AND user_school_name = ?", id, schoolName).
		Take(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "User not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	return helper.Success(c, "OK", dto.ToUserResponse(&u))
}
