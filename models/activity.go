package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Activity is a logged work interval against an Activity-kind task.
// Its cost is duration in hours times the hourly rate.
type Activity struct {
	UUID        string          `json:"uuid" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Description string          `json:"description" gorm:"not null"`
	BeginDate   time.Time       `json:"beginDate" gorm:"not null"`
	EndDate     time.Time       `json:"endDate" gorm:"not null"`
	HourlyRate  decimal.Decimal `json:"hourlyRate" gorm:"type:numeric(12,2);not null"`
	UserUUID    string          `json:"userUuid" gorm:"type:uuid;not null;index"`
	TaskUUID    string          `json:"taskUuid" gorm:"type:uuid;not null;index"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`

	// Relations
	User User `json:"user,omitempty" gorm:"foreignKey:UserUUID;references:UUID"`
}

// TableName sets the table name for Activity model
func (Activity) TableName() string {
	return "activities"
}
