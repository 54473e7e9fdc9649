package models

import "time"

// School is the tenant entity based on the 'schools' table. All student,
// mark and assignment data is partitioned by SchoolID.
type School struct {
	ID               int64            `json:"id" db:"id" example:"1"`
	IemisCode        string           `json:"iemisCode" db:"iemis_code" example:"270040011"` // Government-issued institutional identifier, unique
	Name             string           `json:"name" db:"name" example:"Shree Janata Secondary School"`
	Municipality     string           `json:"municipality" db:"municipality" example:"Budhanilkantha"`
	HeadTeacherName  string           `json:"headTeacherName" db:"head_teacher_name" example:"Ram Prasad Sharma"`
	HeadTeacherPhone string           `json:"headTeacherPhone" db:"head_teacher_phone" example:"9841000000"`
	HeadTeacherEmail string           `json:"headTeacherEmail" db:"head_teacher_email" example:"head@school.edu.np"`
	Status           SchoolStatus     `json:"status" db:"status" example:"Active"`
	SubscriptionPlan SubscriptionPlan `json:"subscriptionPlan" db:"subscription_plan" example:"Basic"`
	CreatedAt        time.Time        `json:"createdAt" db:"created_at"`
	UpdatedAt        time.Time        `json:"updatedAt" db:"updated_at"`
}
