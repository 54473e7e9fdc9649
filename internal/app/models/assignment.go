package models

// SubjectAssignment records that a student sits for a subject in a given
// academic year ('student_subject_assignments' table).
type SubjectAssignment struct {
	ID           int64  `json:"id" db:"id"`
	StudentID    int64  `json:"studentId" db:"student_id"`
	SubjectID    int64  `json:"subjectId" db:"subject_id"`
	AcademicYear string `json:"academicYear" db:"academic_year"`

	Subject *Subject `json:"subject,omitempty"` // Relation, no db tag
}

// ExtraCreditAssignment is the at-most-one optional subject a student takes
// for extra credit in a year ('extra_credit_assignments' table).
type ExtraCreditAssignment struct {
	ID           int64  `json:"id" db:"id"`
	StudentID    int64  `json:"studentId" db:"student_id"`
	SubjectID    int64  `json:"subjectId" db:"subject_id"`
	AcademicYear string `json:"academicYear" db:"academic_year"`

	Subject *Subject `json:"subject,omitempty"`
}
