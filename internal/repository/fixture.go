package repository

import (
	"team-registration-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FixtureRepository handles database operations for fixtures
type FixtureRepository struct {
	db *gorm.DB
}

// NewFixtureRepository creates a new fixture repository
func NewFixtureRepository(db *gorm.DB) *FixtureRepository {
	return &FixtureRepository{db: db}
}

// Create creates a new fixture
func (r *FixtureRepository) Create(fixture *models.Fixture) error {
	return r.db.Create(fixture).Error
}

// GetByID retrieves a fixture by ID
func (r *FixtureRepository) GetByID(id uuid.UUID) (*models.Fixture, error) {
	var fixture models.Fixture
	err := r.db.First(&fixture, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &fixture, nil
}

// List retrieves all fixtures ordered by kickoff time
func (r *FixtureRepository) List() ([]models.Fixture, error) {
	var fixtures []models.Fixture
	err := r.db.Order("kickoff_at ASC").Find(&fixtures).Error
	return fixtures, err
}

// Update saves all fields of a fixture
func (r *FixtureRepository) Update(fixture *models.Fixture) error {
	return r.db.Save(fixture).Error
}

// SetCompleted marks a fixture completed and records the final score
func (r *FixtureRepository) SetCompleted(id uuid.UUID, score string) error {
	return r.db.Model(&models.Fixture{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"status": models.FixtureStatusCompleted,
			"score":  score,
		}).Error
}

// Delete deletes a fixture
func (r *FixtureRepository) Delete(id uuid.UUID) error {
	res := r.db.Delete(&models.Fixture{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
