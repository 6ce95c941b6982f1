package repository

import (
	"team-registration-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamRepository handles database operations for teams
type TeamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *gorm.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// Create creates a new team
func (r *TeamRepository) Create(team *models.Team) error {
	return r.db.Create(team).Error
}

// GetByID retrieves a team by ID
func (r *TeamRepository) GetByID(id uuid.UUID) (*models.Team, error) {
	var team models.Team
	err := r.db.First(&team, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// GetByName retrieves a team by its globally unique name
func (r *TeamRepository) GetByName(name string) (*models.Team, error) {
	var team models.Team
	err := r.db.First(&team, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

// List retrieves all teams, optionally filtered by verification flag
func (r *TeamRepository) List(verified *bool) ([]models.Team, error) {
	var teams []models.Team
	query := r.db.Order("created_at ASC")
	if verified != nil {
		query = query.Where("is_verified = ?", *verified)
	}
	err := query.Find(&teams).Error
	return teams, err
}

// Update saves all fields of a team
func (r *TeamRepository) Update(team *models.Team) error {
	return r.db.Save(team).Error
}

// UpdateRoster replaces the team's roster in a single column write
func (r *TeamRepository) UpdateRoster(id uuid.UUID, players models.Players) error {
	res := r.db.Model(&models.Team{}).Where("id = ?", id).Update("players", players)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// UpdateLogo sets the team's logo URL
func (r *TeamRepository) UpdateLogo(id uuid.UUID, logoURL string) error {
	res := r.db.Model(&models.Team{}).Where("id = ?", id).Update("logo_url", logoURL)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// AssignSecretKeyIfAbsent sets the team's secret key only if none is stored
// yet. The compare-and-set runs as one UPDATE, so two concurrent roster
// submissions can never both win; the returned bool reports whether this call
// assigned the key.
func (r *TeamRepository) AssignSecretKeyIfAbsent(id uuid.UUID, secretKey string) (bool, error) {
	res := r.db.Model(&models.Team{}).
		Where("id = ? AND secret_key IS NULL", id).
		Update("secret_key", secretKey)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// Delete deletes a team
func (r *TeamRepository) Delete(id uuid.UUID) error {
	res := r.db.Delete(&models.Team{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
