package models

import (
	"time"
)

// Budget is the timestamped snapshot container of a project's planned tasks.
// It is created together with its project and removed with it.
type Budget struct {
	UUID      string    `json:"uuid" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Date      time.Time `json:"date" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Relations
	Tasks []Task `json:"tasks,omitempty" gorm:"foreignKey:BudgetUUID;references:UUID;constraint:OnDelete:CASCADE"`
}
