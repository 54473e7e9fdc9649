package dto

import "encoding/json"

// UpsertSettingRequest writes one application setting.
type UpsertSettingRequest struct {
	Value json.RawMessage `json:"value" binding:"required"`
}

// CreateAcademicYearRequest adds a selectable academic year.
type CreateAcademicYearRequest struct {
	Year     string `json:"year" binding:"required,len=4"`
	IsActive bool   `json:"isActive"`
}

// UpdateAcademicYearRequest toggles the active flag of a year.
type UpdateAcademicYearRequest struct {
	IsActive bool `json:"isActive"`
}
