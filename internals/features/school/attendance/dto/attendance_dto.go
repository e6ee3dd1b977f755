// file: internals/features/school/attendance/dto/attendance_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"schoolhub_backend/internals/features/school/attendance/model"
)

type MarkAttendanceRequest struct {
	Method    string   `json:"method" validate:"required,oneof=qr_scan unique_code"`
	Code      string   `json:"code" validate:"required"`
	Latitude  *float64 `json:"latitude" validate:"omitempty,min=-90,max=90"`
	Longitude *float64 `json:"longitude" validate:"omitempty,min=-180,max=180"`
}

type AttendanceResponse struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Day       string    `json:"day"`
	Status    string    `json:"status"`
	Method    string    `json:"method"`
	Latitude  *float64  `json:"latitude,omitempty"`
	Longitude *float64  `json:"longitude,omitempty"`
	MarkedAt  time.Time `json:"marked_at"`
}

func ToAttendanceResponse(m *model.AttendanceRecordModel) AttendanceResponse {
	return AttendanceResponse{
		ID:        m.AttendanceID,
		UserID:    m.AttendanceUserID,
		Day:       m.AttendanceDay.Format("2006-01-02"),
		Status:    m.AttendanceStatus,
		Method:    m.AttendanceMethod,
		Latitude:  m.AttendanceLatitude,
		Longitude: m.AttendanceLongitude,
		MarkedAt:  m.CreatedAt,
	}
}
