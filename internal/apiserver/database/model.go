package database

import (
	"time"

	"gorm.io/datatypes"

	"github.com/snezamha/cms-core/internal/common/cnst"
)

// UserRole is the access level of a dashboard user.
type UserRole string

const (
	RoleSuperAdmin UserRole = "super_admin"
	RoleAdmin      UserRole = "admin"
	RoleUser       UserRole = "user"
)

// ValidRole reports whether r is one of the known roles.
func ValidRole(r UserRole) bool {
	switch r {
	case RoleSuperAdmin, RoleAdmin, RoleUser:
		return true
	}
	return false
}

// User is a dashboard account mirrored from the identity provider.
type User struct {
	ID         uint     `gorm:"primaryKey" json:"id"`
	ExternalID string   `gorm:"type:varchar(255);uniqueIndex;not null" json:"externalId"`
	Email      string   `gorm:"type:varchar(255)" json:"email"`
	Name       string   `gorm:"type:varchar(255)" json:"name"`
	Image      string   `gorm:"type:text" json:"image"`
	Role       UserRole `gorm:"type:varchar(32);not null;default:'user'" json:"role"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SettingsGeneral is the singleton row holding one JSON settings
// document per supported locale.
type SettingsGeneral struct {
	ID uint `gorm:"primaryKey" json:"id"`

	En datatypes.JSON `gorm:"type:json" json:"en"`
	Fa datatypes.JSON `gorm:"type:json" json:"fa"`
	De datatypes.JSON `gorm:"type:json" json:"de"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Locale returns the stored document for the given locale.
func (s *SettingsGeneral) Locale(locale string) datatypes.JSON {
	switch locale {
	case cnst.LangFA:
		return s.Fa
	case cnst.LangDE:
		return s.De
	default:
		return s.En
	}
}

// SetLocale replaces the stored document for the given locale.
func (s *SettingsGeneral) SetLocale(locale string, doc datatypes.JSON) {
	switch locale {
	case cnst.LangFA:
		s.Fa = doc
	case cnst.LangDE:
		s.De = doc
	default:
		s.En = doc
	}
}

// SettingsAppearance is the singleton row holding the global theme
// configuration shared by every locale.
type SettingsAppearance struct {
	ID     uint    `gorm:"primaryKey" json:"id"`
	Theme  string  `gorm:"type:varchar(32)" json:"theme"`
	Radius float64 `json:"radius"`
	Layout string  `gorm:"type:varchar(16)" json:"layout"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
