// file: internals/features/users/user/dto/user_dto_test.go
package dto

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

var validate = validator.New()

// Email hanya unik per sekolah — login tanpa school_name ambigu saat
// email yang sama terdaftar di dua tenant, jadi field-nya wajib.
func TestLoginRequest_SchoolNameRequired(t *testing.T) {
	req := LoginRequest{
		Email:    "amina@example.com",
		Password: "rahasia-123",
	}
	assert.Error(t, validate.Struct(req), "tanpa school_name harus ditolak")

	req.SchoolName = "Sunrise Academy"
	assert.NoError(t, validate.Struct(req))
}

func TestLoginRequest_EmailFormat(t *testing.T) {
	req := LoginRequest{
		SchoolName: "Sunrise Academy",
		Email:      "bukan-email",
		Password:   "rahasia-123",
	}
	assert.Error(t, validate.Struct(req))
}
