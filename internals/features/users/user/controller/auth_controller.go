// file: internals/features/users/user/controller/auth_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"schoolhub_backend/internals/configs"
	"schoolhub_backend/internals/features/users/user/dto"
	"schoolhub_backend/internals/features/users/user/model"
	helper "schoolhub_backend/internals/helpers"
	helperAuth "schoolhub_backend/internals/helpers/auth"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

var validate = validator.New()

// POST /api/a/users
// Admin membuat akun baru dalam tenant-nya. Superadmin boleh menyebut
// school_name lain lewat payload.
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	role, err := helperAuth.GetRoleFromToken(c)
	if err != nil {
		return err
	}

	schoolName, err := helperAuth.GetSchoolNameFromToken(c)
	if err != nil {
		return err
	}
	if role == "superadmin" && strings.TrimSpace(req.SchoolName) != "" {
		schoolName = strings.TrimSpace(req.SchoolName)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	m := model.UserModel{
		UserSchoolName:   schoolName,
		UserFullName:     strings.TrimSpace(req.FullName),
		UserEmail:        strings.ToLower(strings.TrimSpace(req.Email)),
		UserPasswordHash: string(hash),
		UserRole:         req.Role,
		UserClassName:    strings.TrimSpace(req.ClassName),
		UserParentOf:     req.ParentOf,
		// kredensial QR/unique-code untuk absensi
		UserScanCode: uuid.NewString(),
	}

	if err := ctrl.DB.Create(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return helper.Error(c, fiber.StatusConflict, "Email already registered for this school")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to create user")
	}

	resp := dto.ToUserResponse(&m)
	return helper.SuccessWithCode(c, fiber.StatusCreated, "User created", resp)
}

// POST /api/auth/login
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	// lookup selalu tenant-scoped: (school, email) adalah kunci identitas,
	// bukan email saja
	var u model.UserModel
	err := ctrl.DB.
		Where("user_school_name = ? AND user_email = ?",
			strings.TrimSpace(req.SchoolName),
			strings.ToLower(strings.TrimSpace(req.Email))).
		Take(&u).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusUnauthorized, "Invalid email or password")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Internal Server Error")
	}

	if bcrypt.CompareHashAndPassword([]byte(u.UserPasswordHash), []byte(req.Password)) != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Invalid email or password")
	}

	token, err := issueAccessToken(&u)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to sign token")
	}

	return helper.Success(c, "Login success", dto.LoginResponse{
		AccessToken: token,
		User:        dto.ToUserResponse(&u),
	})
}

// GET /api/u/me
func (ctrl *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var u model.UserModel
	if err := ctrl.DB.Where("user_id = ?", userID).Take(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "User not found")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
	return helper.Success(c, "OK", dto.ToUserResponse(&u))
}

func issueAccessToken(u *model.UserModel) (string, error) {
	claims := jwt.MapClaims{
		"user_id":     u.UserID.String(),
		"role":        u.UserRole,
		"school_name": u.UserSchoolName,
		"class_name":  u.UserClassName,
		"iat":         time.Now().Unix(),
		"exp":         time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}
