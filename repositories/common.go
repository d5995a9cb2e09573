package repositories

import (
	"github.com/gestor-backend/database"
	"gorm.io/gorm"
)

// db returns the process-wide database handle
func db() *gorm.DB {
	return database.DB
}
