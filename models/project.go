package models

import (
	"time"
)

// Project represents a client project with its frozen budget and live work
type Project struct {
	UUID        string    `json:"uuid" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Name        string    `json:"name" gorm:"not null"`
	Description string    `json:"description" gorm:"default:null"`
	Active      bool      `json:"active" gorm:"default:true"`
	ClientUUID  string    `json:"clientUuid" gorm:"type:uuid;not null;index"`
	StatusUUID  string    `json:"statusUuid" gorm:"type:uuid;not null;index"`
	BudgetUUID  string    `json:"budgetUuid" gorm:"type:uuid;not null;uniqueIndex"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	// Relations
	Client       Client        `json:"client,omitempty" gorm:"foreignKey:ClientUUID;references:UUID"`
	Status       Status        `json:"status,omitempty" gorm:"foreignKey:StatusUUID;references:UUID"`
	Budget       Budget        `json:"budget,omitempty" gorm:"foreignKey:BudgetUUID;references:UUID"`
	Tasks        []Task        `json:"tasks,omitempty" gorm:"foreignKey:ProjectUUID;references:UUID;constraint:OnDelete:CASCADE"`
	Transactions []Transaction `json:"transactions,omitempty" gorm:"foreignKey:ProjectUUID;references:UUID"`
}
