package repositories

import (
	"github.com/gestor-backend/models"
)

// StatusRepository handles database operations for workflow statuses
type StatusRepository struct{}

// NewStatusRepository creates a new status repository instance
func NewStatusRepository() *StatusRepository {
	return &StatusRepository{}
}

// Find retrieves statuses, optionally by UUID or name fragment
func (r *StatusRepository) Find(uuid, name string) ([]models.Status, error) {
	query := db().Model(&models.Status{})

	if uuid != "" {
		query = query.Where("uuid = ?", uuid)
	}
	if name != "" {
		query = query.Where("name ILIKE ?", "%"+name+"%")
	}

	var statuses []models.Status
	result := query.Order("name asc").Find(&statuses)
	return statuses, result.Error
}

// FindByUUID retrieves a status by its UUID
func (r *StatusRepository) FindByUUID(uuid string) (models.Status, error) {
	var status models.Status
	result := db().First(&status, "uuid = ?", uuid)
	return status, result.Error
}

// ExistsByName checks if a status with the given name exists
func (r *StatusRepository) ExistsByName(name string) (bool, error) {
	var count int64
	err := db().Model(&models.Status{}).Where("name = ?", name).Count(&count).Error
	return count > 0, err
}

// Create inserts a new status into the database
func (r *StatusRepository) Create(status models.Status) (models.Status, error) {
	result := db().Create(&status)
	return status, result.Error
}

// Update modifies an existing status
func (r *StatusRepository) Update(status models.Status) error {
	result := db().Save(&status)
	return result.Error
}

// Delete removes a status from the database
func (r *StatusRepository) Delete(uuid string) error {
	result := db().Delete(&models.Status{}, "uuid = ?", uuid)
	return result.Error
}

// CountReferences counts projects and tasks still using the status
func (r *StatusRepository) CountReferences(uuid string) (int64, error) {
	var projects int64
	if err := db().Model(&models.Project{}).Where("status_uuid = ?", uuid).Count(&projects).Error; err != nil {
		return 0, err
	}

	var tasks int64
	if err := db().Model(&models.Task{}).Where("status_uuid = ?", uuid).Count(&tasks).Error; err != nil {
		return 0, err
	}

	return projects + tasks, nil
}
