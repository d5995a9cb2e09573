package repositories

import (
	"github.com/gestor-backend/models"
	"gorm.io/gorm"
)

// TaskRepository handles database operations for tasks
type TaskRepository struct{}

// NewTaskRepository creates a new task repository instance
func NewTaskRepository() *TaskRepository {
	return &TaskRepository{}
}

// FindByUUID retrieves a task by its UUID
func (r *TaskRepository) FindByUUID(uuid string) (models.Task, error) {
	var task models.Task
	result := db().First(&task, "uuid = ?", uuid)
	return task, result.Error
}

// FindLiveByProject retrieves the live tasks of a project
func (r *TaskRepository) FindLiveByProject(projectUUID string) ([]models.Task, error) {
	var tasks []models.Task
	result := db().
		Where("project_uuid = ? AND budget_uuid IS NULL", projectUUID).
		Order("begin_date asc").
		Find(&tasks)
	return tasks, result.Error
}

// FindByBudget retrieves the snapshot tasks of a budget
func (r *TaskRepository) FindByBudget(budgetUUID string) ([]models.Task, error) {
	var tasks []models.Task
	result := db().
		Where("budget_uuid = ?", budgetUUID).
		Order("begin_date asc").
		Find(&tasks)
	return tasks, result.Error
}

// Create inserts a new task into the database
func (r *TaskRepository) Create(task models.Task) (models.Task, error) {
	result := db().Create(&task)
	return task, result.Error
}

// Update modifies an existing task
func (r *TaskRepository) Update(task models.Task) error {
	result := db().Save(&task)
	return result.Error
}

// Delete removes a task from the database
func (r *TaskRepository) Delete(uuid string) error {
	result := db().Delete(&models.Task{}, "uuid = ?", uuid)
	return result.Error
}

// ApplyReconciliation applies a task set diff in one transaction so a failed
// validation never leaves a half-applied plan
func (r *TaskRepository) ApplyReconciliation(toCreate, toUpdate, toDelete []models.Task) error {
	return db().Transaction(func(tx *gorm.DB) error {
		for _, task := range toCreate {
			task := task
			if err := tx.Create(&task).Error; err != nil {
				return err
			}
		}
		for _, task := range toUpdate {
			task := task
			if err := tx.Save(&task).Error; err != nil {
				return err
			}
		}
		for _, task := range toDelete {
			if err := tx.Delete(&models.Task{}, "uuid = ?", task.UUID).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
