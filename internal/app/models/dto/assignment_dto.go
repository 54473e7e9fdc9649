package dto

// ReplaceAssignmentsRequest replaces the full subject assignment set of a
// student for one academic year. ExtraCreditSubjectID, when present, is
// the single optional subject; when absent any existing one is removed.
type ReplaceAssignmentsRequest struct {
	AcademicYear         string  `json:"academicYear" binding:"required,len=4"`
	SubjectIDs           []int64 `json:"subjectIds" binding:"required,dive,min=1"`
	ExtraCreditSubjectID *int64  `json:"extraCreditSubjectId,omitempty"`
}

// AssignmentSetResponse is the queryable assignment state after a replace.
type AssignmentSetResponse struct {
	StudentID            int64   `json:"studentId"`
	AcademicYear         string  `json:"academicYear"`
	SubjectIDs           []int64 `json:"subjectIds"`
	ExtraCreditSubjectID *int64  `json:"extraCreditSubjectId,omitempty"`
}
