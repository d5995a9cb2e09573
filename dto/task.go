package dto

// TaskRow is one task in a reconciliation payload. An empty uuid marks a row
// to insert; a set uuid marks an update. Money fields are BRL strings.
type TaskRow struct {
	UUID        string  `json:"uuid"`
	Type        string  `json:"type" binding:"required"`
	Description string  `json:"description" binding:"required"`
	BeginDate   string  `json:"beginDate" binding:"required"`
	EndDate     string  `json:"endDate" binding:"required"`
	HourlyRate  *string `json:"hourlyRate"`
	Cost        *string `json:"cost"`
	Revenue     string  `json:"revenue" binding:"required"`
	StatusUUID  string  `json:"statusUuid" binding:"required,uuid"`
	UserUUID    *string `json:"userUuid"`
}

// CreateTaskRequest represents a single new live task
type CreateTaskRequest struct {
	Type        string  `json:"type" binding:"required"`
	Description string  `json:"description" binding:"required"`
	BeginDate   string  `json:"beginDate" binding:"required"`
	EndDate     string  `json:"endDate" binding:"required"`
	HourlyRate  *string `json:"hourlyRate"`
	Cost        *string `json:"cost"`
	Revenue     string  `json:"revenue" binding:"required"`
	StatusUUID  string  `json:"statusUuid" binding:"required,uuid"`
	UserUUID    *string `json:"userUuid"`
	ProjectUUID string  `json:"projectUuid" binding:"required,uuid"`
}

// UpdateTaskRequest represents changes to an existing task
type UpdateTaskRequest struct {
	UUID        string  `json:"uuid" binding:"required,uuid"`
	Type        string  `json:"type" binding:"required"`
	Description string  `json:"description" binding:"required"`
	BeginDate   string  `json:"beginDate" binding:"required"`
	EndDate     string  `json:"endDate" binding:"required"`
	HourlyRate  *string `json:"hourlyRate"`
	Cost        *string `json:"cost"`
	Revenue     string  `json:"revenue" binding:"required"`
	StatusUUID  string  `json:"statusUuid" binding:"required,uuid"`
	UserUUID    *string `json:"userUuid"`
}

// TaskView is a task rendered for the boundary: dates and money formatted
type TaskView struct {
	UUID        string  `json:"uuid"`
	Type        string  `json:"type"`
	Description string  `json:"description"`
	BeginDate   string  `json:"beginDate"`
	EndDate     string  `json:"endDate"`
	HourlyRate  string  `json:"hourlyRate"`
	Cost        string  `json:"cost"`
	Revenue     string  `json:"revenue"`
	StatusUUID  string  `json:"statusUuid"`
	UserUUID    *string `json:"userUuid"`
	ProjectUUID string  `json:"projectUuid"`
	BudgetUUID  *string `json:"budgetUuid,omitempty"`
}
