package dto

// CreateStudentRequest is the payload for registering a student.
type CreateStudentRequest struct {
	SchoolID       int64   `json:"schoolId" binding:"required,min=1"`
	Name           string  `json:"name" binding:"required,min=2,max=150"`
	DobAD          *string `json:"dobAd,omitempty"`
	DobBS          *string `json:"dobBs,omitempty"`
	Gender         string  `json:"gender" binding:"required,oneof=Male Female Other"`
	Grade          int     `json:"grade" binding:"required,oneof=11 12"`
	RollNo         *string `json:"rollNo,omitempty"`
	SymbolNo       string  `json:"symbolNo" binding:"required"`
	RegistrationID *string `json:"registrationId,omitempty"`
	FatherName     *string `json:"fatherName,omitempty"`
	MotherName     *string `json:"motherName,omitempty"`
	MobileNo       *string `json:"mobileNo,omitempty"`
	AcademicYear   string  `json:"academicYear" binding:"required,len=4"`
}

// UpdateStudentRequest is the payload for updating a student record.
type UpdateStudentRequest struct {
	Name           string  `json:"name" binding:"required,min=2,max=150"`
	DobAD          *string `json:"dobAd,omitempty"`
	DobBS          *string `json:"dobBs,omitempty"`
	Gender         string  `json:"gender" binding:"required,oneof=Male Female Other"`
	Grade          int     `json:"grade" binding:"required,oneof=11 12"`
	RollNo         *string `json:"rollNo,omitempty"`
	SymbolNo       string  `json:"symbolNo" binding:"required"`
	RegistrationID *string `json:"registrationId,omitempty"`
	FatherName     *string `json:"fatherName,omitempty"`
	MotherName     *string `json:"motherName,omitempty"`
	MobileNo       *string `json:"mobileNo,omitempty"`
}

// StudentListFilter captures the query parameters of the student list.
type StudentListFilter struct {
	SchoolID     int64
	AcademicYear string
	Grade        int
	Page         int
	Size         int
}
