package models

// Subject defines an exam subject based on the 'subjects' table. Subjects
// are shared across all schools, not tenant-scoped.
type Subject struct {
	ID            int64   `json:"id" db:"id"`
	Name          string  `json:"name" db:"name" example:"Physics"`
	Grade         int     `json:"grade" db:"grade" example:"11"` // 11 or 12
	TheoryCode    string  `json:"theoryCode" db:"theory_code" example:"1011"`
	InternalCode  *string `json:"internalCode,omitempty" db:"internal_code" example:"1012"`
	Credits       float64 `json:"credits" db:"credits" example:"5"`
	FullMarks     int     `json:"fullMarks" db:"full_marks" example:"100"`
	PassMarks     int     `json:"passMarks" db:"pass_marks" example:"35"`
	TheoryFull    int     `json:"theoryFull" db:"theory_full" example:"75"`
	PracticalFull int     `json:"practicalFull" db:"practical_full" example:"25"`
}
