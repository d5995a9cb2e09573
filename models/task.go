package models

import (
	"time"

	"github.com/gestor-backend/errs"
	"github.com/shopspring/decimal"
)

// TaskType is the closed kind set for tasks. Activity tasks bill by the hour
// and accrue cost through logged activities; Expense tasks carry a planned
// cost and accrue cost through expense entries.
type TaskType string

const (
	TaskTypeActivity TaskType = "Activity"
	TaskTypeExpense  TaskType = "Expense"
)

// ParseTaskType validates a task type tag, rejecting unknown values
func ParseTaskType(s string) (TaskType, error) {
	switch TaskType(s) {
	case TaskTypeActivity, TaskTypeExpense:
		return TaskType(s), nil
	}
	return "", errs.Validation("invalid task type: " + s)
}

// Task represents a unit of planned or live work. A nil BudgetUUID marks a
// live task; a set BudgetUUID marks a frozen snapshot row of the budget.
type Task struct {
	UUID        string           `json:"uuid" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Type        TaskType         `json:"type" gorm:"type:varchar(10);not null"`
	Description string           `json:"description" gorm:"not null"`
	BeginDate   time.Time        `json:"beginDate" gorm:"not null"`
	EndDate     time.Time        `json:"endDate" gorm:"not null"`
	HourlyRate  *decimal.Decimal `json:"hourlyRate" gorm:"type:numeric(12,2);default:null"`
	Cost        *decimal.Decimal `json:"cost" gorm:"type:numeric(12,2);default:null"`
	Revenue     decimal.Decimal  `json:"revenue" gorm:"type:numeric(12,2);not null"`
	StatusUUID  string           `json:"statusUuid" gorm:"type:uuid;not null;index"`
	UserUUID    *string          `json:"userUuid" gorm:"type:uuid;default:null;index"`
	ProjectUUID string           `json:"projectUuid" gorm:"type:uuid;not null;index"`
	BudgetUUID  *string          `json:"budgetUuid" gorm:"type:uuid;default:null;index"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`

	// Relations
	Status     Status     `json:"status,omitempty" gorm:"foreignKey:StatusUUID;references:UUID"`
	User       *User      `json:"user,omitempty" gorm:"foreignKey:UserUUID;references:UUID"`
	Expenses   []Expense  `json:"expenses,omitempty" gorm:"foreignKey:TaskUUID;references:UUID;constraint:OnDelete:CASCADE"`
	Activities []Activity `json:"activities,omitempty" gorm:"foreignKey:TaskUUID;references:UUID;constraint:OnDelete:CASCADE"`
}

// IsLive reports whether the task belongs to the current plan rather than a budget snapshot
func (t Task) IsLive() bool {
	return t.BudgetUUID == nil
}
