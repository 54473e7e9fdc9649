package models

import "encoding/json"

// ApplicationSetting is a key to JSON value pair in the
// 'application_settings' table, used for global configuration such as the
// application name and the current academic year.
type ApplicationSetting struct {
	Key   string          `json:"key" db:"key" example:"current_academic_year"`
	Value json.RawMessage `json:"value" db:"value"`
}
