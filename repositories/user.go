package repositories

import (
	"github.com/gestor-backend/models"
	"github.com/shopspring/decimal"
)

// UserRepository handles database operations for users
type UserRepository struct{}

// NewUserRepository creates a new user repository instance
func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

// UserFilter narrows user listing
type UserFilter struct {
	UUID          string
	CPF           string
	Name          string
	Username      string
	Email         string
	Phone         string
	Active        *bool
	HourlyRateMin *decimal.Decimal
	HourlyRateMax *decimal.Decimal
	AuthUUIDs     []string
}

// Find retrieves users matching the filter, with their role preloaded
func (r *UserRepository) Find(filter UserFilter) ([]models.User, error) {
	query := db().Model(&models.User{}).Preload("Auth")

	if filter.UUID != "" {
		query = query.Where("uuid = ?", filter.UUID)
	}
	if filter.CPF != "" {
		query = query.Where("cpf LIKE ?", "%"+filter.CPF+"%")
	}
	if filter.Name != "" {
		query = query.Where("name ILIKE ?", "%"+filter.Name+"%")
	}
	if filter.Username != "" {
		query = query.Where("username ILIKE ?", "%"+filter.Username+"%")
	}
	if filter.Email != "" {
		query = query.Where("email ILIKE ?", "%"+filter.Email+"%")
	}
	if filter.Phone != "" {
		query = query.Where("phone LIKE ?", "%"+filter.Phone+"%")
	}
	if filter.Active != nil {
		query = query.Where("active = ?", *filter.Active)
	}
	if filter.HourlyRateMin != nil {
		query = query.Where("hourly_rate >= ?", *filter.HourlyRateMin)
	}
	if filter.HourlyRateMax != nil {
		query = query.Where("hourly_rate <= ?", *filter.HourlyRateMax)
	}
	if len(filter.AuthUUIDs) > 0 {
		query = query.Where("auth_uuid IN ?", filter.AuthUUIDs)
	}

	var users []models.User
	result := query.Order("name asc").Find(&users)
	return users, result.Error
}

// FindByUUID retrieves a user by its UUID
func (r *UserRepository) FindByUUID(uuid string) (models.User, error) {
	var user models.User
	result := db().Preload("Auth").First(&user, "uuid = ?", uuid)
	return user, result.Error
}

// FindByEmail retrieves a user by email
func (r *UserRepository) FindByEmail(email string) (models.User, error) {
	var user models.User
	result := db().First(&user, "email = ?", email)
	return user, result.Error
}

// ExistsByCPF checks if the CPF is already registered
func (r *UserRepository) ExistsByCPF(cpf string) (bool, error) {
	var count int64
	err := db().Model(&models.User{}).Where("cpf = ?", cpf).Count(&count).Error
	return count > 0, err
}

// ExistsByEmail checks if the email is already registered
func (r *UserRepository) ExistsByEmail(email string) (bool, error) {
	var count int64
	err := db().Model(&models.User{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

// Create inserts a new user into the database
func (r *UserRepository) Create(user models.User) (models.User, error) {
	result := db().Create(&user)
	return user, result.Error
}

// Update modifies an existing user
func (r *UserRepository) Update(user models.User) error {
	result := db().Save(&user)
	return result.Error
}

// UpdatePassword sets a new password hash
func (r *UserRepository) UpdatePassword(uuid, passwordHash string) error {
	result := db().Model(&models.User{}).Where("uuid = ?", uuid).Update("password", passwordHash)
	return result.Error
}

// Delete removes a user from the database
func (r *UserRepository) Delete(uuid string) error {
	result := db().Delete(&models.User{}, "uuid = ?", uuid)
	return result.Error
}
