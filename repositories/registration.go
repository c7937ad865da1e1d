package repositories

import (
	"context"

	"github.com/jaba-landing/models"
	"gorm.io/gorm"
)

// RegistrationRepository handles database operations for signup tables
type RegistrationRepository struct {
	db *gorm.DB
}

// NewRegistrationRepository creates a new registration repository instance
func NewRegistrationRepository(db *gorm.DB) *RegistrationRepository {
	return &RegistrationRepository{db: db}
}

// Create inserts a registration into the table named by the record
func (r *RegistrationRepository) Create(ctx context.Context, record models.Registration) error {
	result := r.db.WithContext(ctx).Table(record.TableName()).Create(record)
	return result.Error
}
