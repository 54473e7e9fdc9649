package dto

// MarkEntry is one subject result in a marks submission.
type MarkEntry struct {
	SubjectID         int64   `json:"subjectId" binding:"required,min=1"`
	TheoryObtained    float64 `json:"theoryObtained" binding:"min=0"`
	PracticalObtained float64 `json:"practicalObtained" binding:"min=0"`
	IsAbsent          bool    `json:"isAbsent"`
}

// SaveMarksRequest replaces all marks of a student for one academic year.
type SaveMarksRequest struct {
	AcademicYear string      `json:"academicYear" binding:"required,len=4"`
	Marks        []MarkEntry `json:"marks" binding:"required,dive"`
}
