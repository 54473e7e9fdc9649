package models

// RoleType identifies the account role stored in the users table.
type RoleType string

const (
	// RoleAdmin has cross-tenant access to every school.
	RoleAdmin RoleType = "admin"
	// RoleSchool is scoped to a single school via User.SchoolID.
	RoleSchool RoleType = "school"
)

// IsValid reports whether the role is one of the known roles.
func (r RoleType) IsValid() bool {
	return r == RoleAdmin || r == RoleSchool
}

// SchoolStatus is the lifecycle state of a school account.
type SchoolStatus string

const (
	SchoolStatusActive   SchoolStatus = "Active"
	SchoolStatusInactive SchoolStatus = "Inactive"
)

// SubscriptionPlan is the commercial plan assigned to a school.
type SubscriptionPlan string

const (
	PlanBasic      SubscriptionPlan = "Basic"
	PlanPro        SubscriptionPlan = "Pro"
	PlanEnterprise SubscriptionPlan = "Enterprise"
)
