package repositories

import (
	"github.com/gestor-backend/models"
)

// AuthRepository handles database operations for roles
type AuthRepository struct{}

// NewAuthRepository creates a new auth repository instance
func NewAuthRepository() *AuthRepository {
	return &AuthRepository{}
}

// FindByUUID retrieves a role by its UUID
func (r *AuthRepository) FindByUUID(uuid string) (models.Auth, error) {
	var auth models.Auth
	result := db().First(&auth, "uuid = ?", uuid)
	return auth, result.Error
}

// AuthFilter narrows role listing
type AuthFilter struct {
	UUID      string
	Types     []string
	Admin     bool
	Project   bool
	Personal  bool
	Financial bool
}

// Find retrieves roles matching the filter
func (r *AuthRepository) Find(filter AuthFilter) ([]models.Auth, error) {
	query := db().Model(&models.Auth{})

	if filter.UUID != "" {
		query = query.Where("uuid = ?", filter.UUID)
	}
	if len(filter.Types) > 0 {
		query = query.Where("type IN ?", filter.Types)
	}
	if filter.Admin {
		query = query.Where("admin = true")
	}
	if filter.Project {
		query = query.Where("project = true")
	}
	if filter.Personal {
		query = query.Where("personal = true")
	}
	if filter.Financial {
		query = query.Where("financial = true")
	}

	var auths []models.Auth
	result := query.Order("id asc").Find(&auths)
	return auths, result.Error
}

// ExistsByType checks if a role with the given name exists
func (r *AuthRepository) ExistsByType(roleType string) (bool, error) {
	var count int64
	err := db().Model(&models.Auth{}).Where("type = ?", roleType).Count(&count).Error
	return count > 0, err
}

// Create inserts a new role into the database
func (r *AuthRepository) Create(auth models.Auth) (models.Auth, error) {
	result := db().Create(&auth)
	return auth, result.Error
}

// Update modifies an existing role
func (r *AuthRepository) Update(auth models.Auth) error {
	result := db().Save(&auth)
	return result.Error
}

// Delete removes a role from the database
func (r *AuthRepository) Delete(uuid string) error {
	result := db().Delete(&models.Auth{}, "uuid = ?", uuid)
	return result.Error
}

// CountUsers counts users assigned to a role
func (r *AuthRepository) CountUsers(uuid string) (int64, error) {
	var count int64
	err := db().Model(&models.User{}).Where("auth_uuid = ?", uuid).Count(&count).Error
	return count, err
}
