package models

import "time"

// Student defines a student record based on the 'students' table.
// StudentSystemID is the external key used in URLs; the database id never
// leaves the backend. (SchoolID, SymbolNo, AcademicYear) is unique.
type Student struct {
	ID              int64     `json:"id" db:"id"`
	StudentSystemID string    `json:"studentSystemId" db:"student_system_id" example:"STU-2081-00042"`
	SchoolID        int64     `json:"schoolId" db:"school_id"`
	Name            string    `json:"name" db:"name" example:"Sita Kumari Thapa"`
	DobAD           *string   `json:"dobAd,omitempty" db:"dob_ad" example:"2006-04-14"`  // Gregorian date of birth
	DobBS           *string   `json:"dobBs,omitempty" db:"dob_bs" example:"2063-01-01"`  // Bikram Sambat date of birth
	Gender          string    `json:"gender" db:"gender" example:"Female"`
	Grade           int       `json:"grade" db:"grade" example:"11"` // 11 or 12
	RollNo          *string   `json:"rollNo,omitempty" db:"roll_no" example:"12"`
	SymbolNo        string    `json:"symbolNo" db:"symbol_no" example:"S12345678"`
	RegistrationID  *string   `json:"registrationId,omitempty" db:"registration_id"`
	FatherName      *string   `json:"fatherName,omitempty" db:"father_name"`
	MotherName      *string   `json:"motherName,omitempty" db:"mother_name"`
	MobileNo        *string   `json:"mobileNo,omitempty" db:"mobile_no"`
	AcademicYear    string    `json:"academicYear" db:"academic_year" example:"2081"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt       time.Time `json:"updatedAt" db:"updated_at"`
}
