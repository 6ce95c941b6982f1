package repository

import (
	"team-registration-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// TeamRepositoryInterface defines the persistence operations for teams
type TeamRepositoryInterface interface {
	Create(team *models.Team) error
	GetByID(id uuid.UUID) (*models.Team, error)
	GetByName(name string) (*models.Team, error)
	List(verified *bool) ([]models.Team, error)
	Update(team *models.Team) error
	UpdateRoster(id uuid.UUID, players models.Players) error
	UpdateLogo(id uuid.UUID, logoURL string) error
	AssignSecretKeyIfAbsent(id uuid.UUID, secretKey string) (bool, error)
	Delete(id uuid.UUID) error
}

// FixtureRepositoryInterface defines the persistence operations for fixtures
type FixtureRepositoryInterface interface {
	Create(fixture *models.Fixture) error
	GetByID(id uuid.UUID) (*models.Fixture, error)
	List() ([]models.Fixture, error)
	Update(fixture *models.Fixture) error
	SetCompleted(id uuid.UUID, score string) error
	Delete(id uuid.UUID) error
}

// ResultRepositoryInterface defines the persistence operations for results
type ResultRepositoryInterface interface {
	Create(result *models.Result) error
	GetByID(id uuid.UUID) (*models.Result, error)
	GetByFixtureID(fixtureID uuid.UUID) (*models.Result, error)
	List() ([]models.Result, error)
	Update(result *models.Result) error
	Delete(id uuid.UUID) error
}
