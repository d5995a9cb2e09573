package repositories

import (
	"time"

	"github.com/gestor-backend/models"
	"github.com/shopspring/decimal"
)

// ActivityRepository handles database operations for logged work intervals
type ActivityRepository struct{}

// NewActivityRepository creates a new activity repository instance
func NewActivityRepository() *ActivityRepository {
	return &ActivityRepository{}
}

// ActivityFilter narrows activity listing
type ActivityFilter struct {
	UUID          string
	Description   string
	BeginDate     *time.Time
	EndDate       *time.Time
	HourlyRateMin *decimal.Decimal
	HourlyRateMax *decimal.Decimal
	UserUUID      string
	TaskUUID      string
}

// Find retrieves activities matching the filter
func (r *ActivityRepository) Find(filter ActivityFilter) ([]models.Activity, error) {
	query := db().Model(&models.Activity{})

	if filter.UUID != "" {
		query = query.Where("uuid = ?", filter.UUID)
	}
	if filter.Description != "" {
		query = query.Where("description ILIKE ?", "%"+filter.Description+"%")
	}
	if filter.BeginDate != nil {
		query = query.Where("begin_date >= ?", *filter.BeginDate)
	}
	if filter.EndDate != nil {
		query = query.Where("end_date <= ?", *filter.EndDate)
	}
	if filter.HourlyRateMin != nil {
		query = query.Where("hourly_rate >= ?", *filter.HourlyRateMin)
	}
	if filter.HourlyRateMax != nil {
		query = query.Where("hourly_rate <= ?", *filter.HourlyRateMax)
	}
	if filter.UserUUID != "" {
		query = query.Where("user_uuid = ?", filter.UserUUID)
	}
	if filter.TaskUUID != "" {
		query = query.Where("task_uuid = ?", filter.TaskUUID)
	}

	var activities []models.Activity
	result := query.Order("begin_date asc").Find(&activities)
	return activities, result.Error
}

// FindByUUID retrieves an activity by its UUID
func (r *ActivityRepository) FindByUUID(uuid string) (models.Activity, error) {
	var activity models.Activity
	result := db().First(&activity, "uuid = ?", uuid)
	return activity, result.Error
}

// Create inserts a new activity into the database
func (r *ActivityRepository) Create(activity models.Activity) (models.Activity, error) {
	result := db().Create(&activity)
	return activity, result.Error
}

// Update modifies an existing activity
func (r *ActivityRepository) Update(activity models.Activity) error {
	result := db().Save(&activity)
	return result.Error
}

// Delete removes an activity from the database
func (r *ActivityRepository) Delete(uuid string) error {
	result := db().Delete(&models.Activity{}, "uuid = ?", uuid)
	return result.Error
}
