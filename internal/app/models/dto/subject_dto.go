package dto

// CreateSubjectRequest is the payload for creating a shared subject.
type CreateSubjectRequest struct {
	Name          string  `json:"name" binding:"required,min=2,max=100"`
	Grade         int     `json:"grade" binding:"required,oneof=11 12"`
	TheoryCode    string  `json:"theoryCode" binding:"required"`
	InternalCode  *string `json:"internalCode,omitempty"`
	Credits       float64 `json:"credits" binding:"required,gt=0"`
	FullMarks     int     `json:"fullMarks" binding:"required,gt=0"`
	PassMarks     int     `json:"passMarks" binding:"required,gt=0"`
	TheoryFull    int     `json:"theoryFull" binding:"required,gt=0"`
	PracticalFull int     `json:"practicalFull" binding:"omitempty,min=0"`
}

// UpdateSubjectRequest mirrors CreateSubjectRequest for updates.
type UpdateSubjectRequest = CreateSubjectRequest
