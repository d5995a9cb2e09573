package repositories

import (
	"time"

	"github.com/gestor-backend/models"
	"gorm.io/gorm"
)

// ProjectRepository handles database operations for projects
type ProjectRepository struct{}

// NewProjectRepository creates a new project repository instance
func NewProjectRepository() *ProjectRepository {
	return &ProjectRepository{}
}

// ProjectFilter narrows project listing
type ProjectFilter struct {
	UUID        string
	Name        string
	Description string
	Active      *bool
	ClientUUID  string
	StatusUUID  string
}

// FindTree retrieves projects matching the filter with the full nested
// record set the rollup needs: client, status, budget snapshot tasks,
// live tasks with their expenses and activities, and realized transactions.
func (r *ProjectRepository) FindTree(filter ProjectFilter) ([]models.Project, error) {
	query := db().Model(&models.Project{}).
		Preload("Client").
		Preload("Status").
		Preload("Budget").
		Preload("Budget.Tasks", "budget_uuid IS NOT NULL").
		Preload("Budget.Tasks.Expenses").
		Preload("Budget.Tasks.Activities").
		Preload("Tasks", "budget_uuid IS NULL").
		Preload("Tasks.Expenses").
		Preload("Tasks.Activities").
		Preload("Transactions", "type IN ?", []models.TransactionType{
			models.TransactionTypeIncome,
			models.TransactionTypeExpense,
		})

	if filter.UUID != "" {
		query = query.Where("uuid = ?", filter.UUID)
	}
	if filter.Name != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Name+"%")
	}
	if filter.Description != "" {
		query = query.Where("description ILIKE ?", "%"+filter.Description+"%")
	}
	if filter.Active != nil {
		query = query.Where("active = ?", *filter.Active)
	}
	if filter.ClientUUID != "" {
		query = query.Where("client_uuid = ?", filter.ClientUUID)
	}
	if filter.StatusUUID != "" {
		query = query.Where("status_uuid = ?", filter.StatusUUID)
	}

	var projects []models.Project
	result := query.Order("name asc").Find(&projects)
	return projects, result.Error
}

// FindByUUID retrieves a project by its UUID
func (r *ProjectRepository) FindByUUID(uuid string) (models.Project, error) {
	var project models.Project
	result := db().First(&project, "uuid = ?", uuid)
	return project, result.Error
}

// CreateWithBudget inserts a project and its empty budget snapshot atomically
func (r *ProjectRepository) CreateWithBudget(project models.Project) (models.Project, error) {
	err := db().Transaction(func(tx *gorm.DB) error {
		budget := models.Budget{UUID: project.BudgetUUID, Date: time.Now()}
		if err := tx.Create(&budget).Error; err != nil {
			return err
		}
		return tx.Create(&project).Error
	})
	return project, err
}

// FindBudget retrieves a budget snapshot by its UUID
func (r *ProjectRepository) FindBudget(uuid string, budget *models.Budget) error {
	return db().First(budget, "uuid = ?", uuid).Error
}

// FindByBudget retrieves the project owning a budget snapshot
func (r *ProjectRepository) FindByBudget(budgetUUID string) (models.Project, error) {
	var project models.Project
	result := db().First(&project, "budget_uuid = ?", budgetUUID)
	return project, result.Error
}

// UpdateBudget modifies a budget snapshot
func (r *ProjectRepository) UpdateBudget(budget models.Budget) error {
	result := db().Save(&budget)
	return result.Error
}

// Update modifies an existing project
func (r *ProjectRepository) Update(project models.Project) error {
	result := db().Save(&project)
	return result.Error
}

// DeleteWithBudget removes a project, its tasks and its budget atomically
func (r *ProjectRepository) DeleteWithBudget(project models.Project) error {
	return db().Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Task{}, "project_uuid = ?", project.UUID).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.Project{}, "uuid = ?", project.UUID).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Budget{}, "uuid = ?", project.BudgetUUID).Error
	})
}
