// file: internals/features/school/settings/dto/school_setting_dto.go
package dto

import (
	"schoolhub_backend/internals/features/school/settings/model"
)

type UpsertSchoolSettingRequest struct {
	LateTime           string   `json:"late_time" validate:"required,len=5"` // "HH:MM"
	Latitude           *float64 `json:"latitude" validate:"omitempty,min=-90,max=90"`
	Longitude          *float64 `json:"longitude" validate:"omitempty,min=-180,max=180"`
	RadiusMeters       *float64 `json:"radius_meters" validate:"omitempty,gt=0"`
	AllowTeacherMarkAny *bool   `json:"allow_teacher_mark_any"`
}

type SchoolSettingResponse struct {
	SchoolName          string   `json:"school_name"`
	LateTime            string   `json:"late_time"`
	Latitude            *float64 `json:"latitude"`
	Longitude           *float64 `json:"longitude"`
	RadiusMeters        float64  `json:"radius_meters"`
	AllowTeacherMarkAny bool     `json:"allow_teacher_mark_any"`
}

func ToSchoolSettingResponse(m *model.SchoolSettingModel) SchoolSettingResponse {
	return SchoolSettingResponse{
		SchoolName:          m.SchoolSettingSchoolName,
		LateTime:            m.SchoolSettingLateTime,
		Latitude:            m.SchoolSettingLatitude,
		Longitude:           m.SchoolSettingLongitude,
		RadiusMeters:        m.SchoolSettingRadiusMeters,
		AllowTeacherMarkAny: m.SchoolSettingAllowTeacherMarkAny,
	}
}
