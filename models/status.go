package models

import (
	"time"
)

// Status represents a workflow status assignable to projects and tasks
type Status struct {
	UUID        string    `json:"uuid" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name        string    `json:"name" gorm:"not null;uniqueIndex"`
	Description string    `json:"description" gorm:"default:null"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TableName sets the table name for Status model
func (Status) TableName() string {
	return "statuses"
}
