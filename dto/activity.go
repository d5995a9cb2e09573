package dto

// CreateActivityRequest represents a new logged work interval
type CreateActivityRequest struct {
	Description string `json:"description" binding:"required"`
	BeginDate   string `json:"beginDate" binding:"required"`
	EndDate     string `json:"endDate" binding:"required"`
	HourlyRate  string `json:"hourlyRate" binding:"required"`
	UserUUID    string `json:"userUuid" binding:"required,uuid"`
	TaskUUID    string `json:"taskUuid" binding:"required,uuid"`
}

// UpdateActivityRequest represents changes to a logged work interval
type UpdateActivityRequest struct {
	UUID        string `json:"uuid" binding:"required,uuid"`
	Description string `json:"description" binding:"required"`
	BeginDate   string `json:"beginDate" binding:"required"`
	EndDate     string `json:"endDate" binding:"required"`
	HourlyRate  string `json:"hourlyRate" binding:"required"`
	UserUUID    string `json:"userUuid" binding:"required,uuid"`
	TaskUUID    string `json:"taskUuid" binding:"required,uuid"`
}

// ActivityFilter narrows activity listing
type ActivityFilter struct {
	Description   string
	BeginDate     *string
	EndDate       *string
	HourlyRateMin *string
	HourlyRateMax *string
	UserUUID      string
	TaskUUID      string
}

// ActivityView is a logged work interval rendered for the boundary
type ActivityView struct {
	UUID        string `json:"uuid"`
	Description string `json:"description"`
	BeginDate   string `json:"beginDate"`
	EndDate     string `json:"endDate"`
	HourlyRate  string `json:"hourlyRate"`
	UserUUID    string `json:"userUuid"`
	TaskUUID    string `json:"taskUuid"`
}
