package dto

// CreateProjectRequest represents a new project; its budget is created with it
type CreateProjectRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Active      bool   `json:"active"`
	ClientUUID  string `json:"clientUuid" binding:"required,uuid"`
	StatusUUID  string `json:"statusUuid" binding:"required,uuid"`
}

// UpdateProjectRequest represents changes to an existing project
type UpdateProjectRequest struct {
	UUID        string `json:"uuid" binding:"required,uuid"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Active      bool   `json:"active"`
	ClientUUID  string `json:"clientUuid" binding:"required,uuid"`
	StatusUUID  string `json:"statusUuid" binding:"required,uuid"`
}

// ProjectRollup is the aggregate financial view of one project. All monetary
// fields are present only when the viewer holds the financial capability;
// when absent they are omitted from the JSON body entirely.
type ProjectRollup struct {
	UUID        string `json:"uuid"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Active      bool   `json:"active"`
	ClientUUID  string `json:"clientUuid"`
	ClientName  string `json:"clientName"`
	StatusUUID  string `json:"statusUuid"`
	StatusName  string `json:"statusName"`
	BudgetUUID  string `json:"budgetUuid"`

	PrevTotal   *string `json:"prevTotal,omitempty"`
	PrevCost    *string `json:"prevCost,omitempty"`
	PrevRevenue *string `json:"prevRevenue,omitempty"`

	Total   *string `json:"total,omitempty"`
	Cost    *string `json:"cost,omitempty"`
	Revenue *string `json:"revenue,omitempty"`

	CurrentExpense *string `json:"currentExpense,omitempty"`
	CurrentIncome  *string `json:"currentIncome,omitempty"`
	CurrentRevenue *string `json:"currentRevenue,omitempty"`

	BeginDate *string `json:"beginDate"`
	EndDate   *string `json:"endDate"`

	Financial bool `json:"financial"`
}

// BudgetView is the budget snapshot with its planned tasks
type BudgetView struct {
	UUID  string     `json:"uuid"`
	Date  string     `json:"date"`
	Tasks []TaskView `json:"tasks"`
}

// UpdateBudgetRequest carries the reconciled task set for a budget snapshot
type UpdateBudgetRequest struct {
	UUID  string    `json:"uuid" binding:"required,uuid"`
	Date  string    `json:"date" binding:"required"`
	Tasks []TaskRow `json:"tasks" binding:"required,min=1,dive"`
}

// UpdateProjectTasksRequest carries the reconciled live task set for a project
type UpdateProjectTasksRequest struct {
	ProjectUUID string    `json:"projectUuid" binding:"required,uuid"`
	Tasks       []TaskRow `json:"tasks" binding:"required,min=1,dive"`
}
