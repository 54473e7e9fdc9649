package dto

// SubjectResult is one line of a student marksheet.
type SubjectResult struct {
	SubjectID         int64   `json:"subjectId"`
	SubjectName       string  `json:"subjectName"`
	Credits           float64 `json:"credits"`
	TheoryObtained    float64 `json:"theoryObtained"`
	PracticalObtained float64 `json:"practicalObtained"`
	IsAbsent          bool    `json:"isAbsent"`
	GradePoint        float64 `json:"gradePoint"`
	LetterGrade       string  `json:"letterGrade"`
}

// StudentResult is the full computed result of one student for one year,
// the data behind the printable marksheet.
type StudentResult struct {
	StudentSystemID string          `json:"studentSystemId"`
	StudentName     string          `json:"studentName"`
	SchoolID        int64           `json:"schoolId"`
	Grade           int             `json:"grade"`
	SymbolNo        string          `json:"symbolNo"`
	AcademicYear    string          `json:"academicYear"`
	Subjects        []SubjectResult `json:"subjects"`
	GPA             *float64        `json:"gpa,omitempty"` // Nil when the student is NG
	LetterGrade     string          `json:"letterGrade"`   // "NG" when no graded subjects
}

// SubjectPopularity counts assignments per subject.
type SubjectPopularity struct {
	SubjectID   int64  `json:"subjectId"`
	SubjectName string `json:"subjectName"`
	Assigned    int64  `json:"assigned"`
}

// SchoolSummary is the server-computed dashboard aggregate for one school
// and year.
type SchoolSummary struct {
	SchoolID           int64               `json:"schoolId"`
	AcademicYear       string              `json:"academicYear"`
	StudentCount       int64               `json:"studentCount"`
	GenderCounts       map[string]int64    `json:"genderCounts"`
	GradeCounts        map[string]int64    `json:"gradeCounts"`
	AverageGPA         *float64            `json:"averageGpa,omitempty"` // Nil when no graded students
	GradedStudents     int64               `json:"gradedStudents"`
	NotGradedStudents  int64               `json:"notGradedStudents"`
	SubjectPopularity  []SubjectPopularity `json:"subjectPopularity"`
	UnmarkedStudents   []string            `json:"unmarkedStudents"`   // Assigned subjects but no marks submitted
	UnassignedStudents []string            `json:"unassignedStudents"` // No subject assignments at all
}

// AdminSummary is the cross-tenant dashboard aggregate.
type AdminSummary struct {
	AcademicYear   string   `json:"academicYear"`
	SchoolCount    int64    `json:"schoolCount"`
	StudentCount   int64    `json:"studentCount"`
	AverageGPA     *float64 `json:"averageGpa,omitempty"`
	GradedStudents int64    `json:"gradedStudents"`
}
