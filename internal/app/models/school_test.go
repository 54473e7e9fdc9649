package models

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The schema check constraints must accept every enum value the models and
// request validation allow, or valid requests die in the database.
func TestSchemaAcceptsModelEnums(t *testing.T) {
	content, err := os.ReadFile(filepath.Join("..", "..", "..", "migrations", "001_init.sql"))
	require.NoError(t, err)
	schema := string(content)

	checkClause := func(name string) string {
		re := regexp.MustCompile(name + ` CHECK \([a-z_]+ IN \(([^)]+)\)\)`)
		m := re.FindStringSubmatch(schema)
		require.Len(t, m, 2, "constraint %s not found in schema", name)
		return m[1]
	}

	plans := checkClause("schools_plan_check")
	for _, plan := range []SubscriptionPlan{PlanBasic, PlanPro, PlanEnterprise} {
		assert.Contains(t, plans, "'"+string(plan)+"'", "plan %s missing from schools_plan_check", plan)
	}

	statuses := checkClause("schools_status_check")
	for _, status := range []SchoolStatus{SchoolStatusActive, SchoolStatusInactive} {
		assert.Contains(t, statuses, "'"+string(status)+"'", "status %s missing from schools_status_check", status)
	}

	roles := checkClause("users_role_check")
	for _, role := range []RoleType{RoleAdmin, RoleSchool} {
		assert.Contains(t, roles, "'"+string(role)+"'", "role %s missing from users_role_check", role)
	}
}
