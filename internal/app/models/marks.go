package models

// StudentMark is one exam result row ('student_marks' table).
// (StudentID, SubjectID, AcademicYear) is unique. Absent students carry
// zero obtained marks with IsAbsent set.
type StudentMark struct {
	ID                int64   `json:"id" db:"id"`
	StudentID         int64   `json:"studentId" db:"student_id"`
	SubjectID         int64   `json:"subjectId" db:"subject_id"`
	AcademicYear      string  `json:"academicYear" db:"academic_year"`
	TheoryObtained    float64 `json:"theoryObtained" db:"theory_obtained"`
	PracticalObtained float64 `json:"practicalObtained" db:"practical_obtained"`
	IsAbsent          bool    `json:"isAbsent" db:"is_absent"`

	Subject *Subject `json:"subject,omitempty"` // Relation, no db tag
}
