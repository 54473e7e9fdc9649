package dto

// CreateSchoolRequest is the payload for creating a school tenant.
type CreateSchoolRequest struct {
	IemisCode        string `json:"iemisCode" binding:"required" example:"270040011"`
	Name             string `json:"name" binding:"required,min=2,max=200"`
	Municipality     string `json:"municipality" binding:"required"`
	HeadTeacherName  string `json:"headTeacherName" binding:"required"`
	HeadTeacherPhone string `json:"headTeacherPhone" binding:"omitempty"`
	HeadTeacherEmail string `json:"headTeacherEmail" binding:"omitempty,email"`
	SubscriptionPlan string `json:"subscriptionPlan" binding:"omitempty,oneof=Basic Pro Enterprise"`
}

// UpdateSchoolRequest is the payload for updating a school.
type UpdateSchoolRequest struct {
	Name             string `json:"name" binding:"required,min=2,max=200"`
	Municipality     string `json:"municipality" binding:"required"`
	HeadTeacherName  string `json:"headTeacherName" binding:"required"`
	HeadTeacherPhone string `json:"headTeacherPhone" binding:"omitempty"`
	HeadTeacherEmail string `json:"headTeacherEmail" binding:"omitempty,email"`
	Status           string `json:"status" binding:"omitempty,oneof=Active Inactive"`
	SubscriptionPlan string `json:"subscriptionPlan" binding:"omitempty,oneof=Basic Pro Enterprise"`
}

// SchoolDependentCounts reports the rows blocking a school deletion.
type SchoolDependentCounts struct {
	Students int64 `json:"students"`
	Users    int64 `json:"users"`
}
