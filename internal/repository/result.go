package repository

import (
	"team-registration-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ResultRepository handles database operations for match results
type ResultRepository struct {
	db *gorm.DB
}

// NewResultRepository creates a new result repository
func NewResultRepository(db *gorm.DB) *ResultRepository {
	return &ResultRepository{db: db}
}

// Create creates a new result
func (r *ResultRepository) Create(result *models.Result) error {
	return r.db.Create(result).Error
}

// GetByID retrieves a result by ID
func (r *ResultRepository) GetByID(id uuid.UUID) (*models.Result, error) {
	var result models.Result
	err := r.db.First(&result, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// GetByFixtureID retrieves the result recorded for a fixture
func (r *ResultRepository) GetByFixtureID(fixtureID uuid.UUID) (*models.Result, error) {
	var result models.Result
	err := r.db.First(&result, "fixture_id = ?", fixtureID).Error
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// List retrieves all results
func (r *ResultRepository) List() ([]models.Result, error) {
	var results []models.Result
	err := r.db.Order("created_at DESC").Find(&results).Error
	return results, err
}

// Update saves all fields of a result
func (r *ResultRepository) Update(result *models.Result) error {
	return r.db.Save(result).Error
}

// Delete deletes a result
func (r *ResultRepository) Delete(id uuid.UUID) error {
	res := r.db.Delete(&models.Result{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
