package models

import (
	"time"
)

// OwnerRoleID and OwnerRoleType identify the seeded root role
const (
	OwnerRoleID   = 0
	OwnerRoleType = "Owner"
)

// Auth represents a named role with its capability bundle.
// Role id 0 is the owner role and can never be edited or deleted.
type Auth struct {
	UUID      string    `json:"uuid" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	ID        int       `json:"id" gorm:"uniqueIndex;autoIncrement"`
	Type      string    `json:"type" gorm:"not null;uniqueIndex"`
	Admin     bool      `json:"admin" gorm:"default:false"`
	Project   bool      `json:"project" gorm:"default:false"`
	Personal  bool      `json:"personal" gorm:"default:false"`
	Financial bool      `json:"financial" gorm:"default:false"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName sets the table name for Auth model
func (Auth) TableName() string {
	return "auths"
}

// Capabilities is the permission bundle resolved from a role
type Capabilities struct {
	Admin     bool `json:"admin"`
	Project   bool `json:"project"`
	Personal  bool `json:"personal"`
	Financial bool `json:"financial"`
}

// IsOwner reports whether this is the seeded root role
func (a Auth) IsOwner() bool {
	return a.ID == OwnerRoleID
}

// Capabilities extracts the capability set from the role
func (a Auth) Capabilities() Capabilities {
	return Capabilities{
		Admin:     a.Admin,
		Project:   a.Project,
		Personal:  a.Personal,
		Financial: a.Financial,
	}
}
