package models

// AcademicYear defines a selectable exam year ('academic_years' table).
// Only years with IsActive set are offered to clients.
type AcademicYear struct {
	ID       int64  `json:"id" db:"id"`
	Year     string `json:"year" db:"year" example:"2081"` // Bikram Sambat year label
	IsActive bool   `json:"isActive" db:"is_active"`
}
