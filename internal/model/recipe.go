package model

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// JSONBStringArray is a custom type for handling string arrays in JSONB
type JSONBStringArray []string

// Value implements the driver.Valuer interface
func (a JSONBStringArray) Value() (driver.Value, error) {
	if len(a) == 0 {
		return "[]", nil
	}
	return json.Marshal(a)
}

// Scan implements the sql.Scanner interface
func (a *JSONBStringArray) Scan(value interface{}) error {
	if value == nil {
		*a = JSONBStringArray{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, a)
}

// Recipe is a row in the shared recipes table. ID and CreatedAt are assigned
// by the database; a zero ID marks a recipe that has not been persisted yet.
type Recipe struct {
	ID          uuid.UUID        `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
	Name        string           `gorm:"size:255;not null" json:"name"`
	Category    string           `gorm:"size:50" json:"category"`
	Time        string           `gorm:"size:50" json:"time"`
	Difficulty  string           `gorm:"size:20" json:"difficulty"`
	Servings    string           `gorm:"size:50" json:"servings"`
	Description string           `gorm:"type:text" json:"description"`
	Ingredients JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"ingredients"`
	Steps       JSONBStringArray `gorm:"type:jsonb;not null;default:'[]'" json:"steps"`
	Notes       string           `gorm:"type:text" json:"notes"`
	AddedBy     string           `gorm:"size:100" json:"added_by"`
}

// Persisted reports whether the recipe already exists in the database.
// Save paths route on this instead of sniffing identifier formats.
func (r *Recipe) Persisted() bool {
	return r.ID != uuid.Nil
}
