// file: internals/features/school/announcements/dto/announcement_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"schoolhub_backend/internals/features/school/announcements/model"
)

type CreateAnnouncementRequest struct {
	Title         string   `json:"title" validate:"required,max=180"`
	Body          string   `json:"body" validate:"required"`
	TargetClasses []string `json:"target_classes" validate:"omitempty,dive,max=40"`
}

type AnnouncementResponse struct {
	ID            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	Body          string    `json:"body"`
	TargetClasses []string  `json:"target_classes,omitempty"`
	CreatedBy     uuid.UUID `json:"created_by"`
	CreatedAt     time.Time `json:"created_at"`
}

func ToAnnouncementResponse(m *model.AnnouncementModel) AnnouncementResponse {
	return AnnouncementResponse{
		ID:            m.AnnouncementID,
		Title:         m.AnnouncementTitle,
		Body:          m.AnnouncementBody,
		TargetClasses: []string(m.AnnouncementTargetClasses),
		CreatedBy:     m.AnnouncementCreatedBy,
		CreatedAt:     m.CreatedAt,
	}
}
