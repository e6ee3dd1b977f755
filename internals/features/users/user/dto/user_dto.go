// file: internals/features/users/user/dto/user_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"schoolhub_backend/internals/features/users/user/model"
)

type RegisterUserRequest struct {
	FullName   string     `json:"full_name" validate:"required,min=3,max=150"`
	Email      string     `json:"email" validate:"required,email"`
	Password   string     `json:"password" validate:"required,min=8"`
	Role       string     `json:"role" validate:"required,oneof=student teacher parent admin superadmin"`
	ClassName  string     `json:"class_name" validate:"omitempty,max=40"`
	ParentOf   *uuid.UUID `json:"parent_of"`
	SchoolName string     `json:"school_name" validate:"omitempty,max=120"`
}

// Email unik per sekolah (uq_users_school_email), jadi login WAJIB
// menyebut tenant — email yang sama boleh ada di dua sekolah.
type LoginRequest struct {
	SchoolName string `json:"school_name" validate:"required,max=120"`
	Email      string `json:"email" validate:"required,email"`
	Password   string `json:"password" validate:"required"`
}

type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}

type UserResponse struct {
	ID         uuid.UUID  `json:"id"`
	FullName   string     `json:"full_name"`
	Email      string     `json:"email"`
	Role       string     `json:"role"`
	ClassName  string     `json:"class_name,omitempty"`
	ScanCode   string     `json:"scan_code,omitempty"`
	ParentOf   *uuid.UUID `json:"parent_of,omitempty"`
	SchoolName string     `json:"school_name"`
	CreatedAt  time.Time  `json:"created_at"`
}

func ToUserResponse(m *model.UserModel) UserResponse {
	return UserResponse{
		ID:         m.UserID,
		FullName:   m.UserFullName,
		Email:      m.UserEmail,
		Role:       m.UserRole,
		ClassName:  m.UserClassName,
		ScanCode:   m.UserScanCode,
		ParentOf:   m.UserParentOf,
		SchoolName: m.UserSchoolName,
		CreatedAt:  m.CreatedAt,
	}
}
