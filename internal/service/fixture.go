package service

import (
	"errors"
	"fmt"
	"time"

	"team-registration-backend/internal/database/models"
	apperrors "team-registration-backend/internal/errors"
	"team-registration-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FixtureService handles business logic for fixtures
type FixtureService struct {
	repo      repository.FixtureRepositoryInterface
	validator *validator.Validate
}

// NewFixtureService creates a new fixture service
func NewFixtureService(repo repository.FixtureRepositoryInterface, validator *validator.Validate) *FixtureService {
	return &FixtureService{repo: repo, validator: validator}
}

// CreateFixtureRequest represents the request to schedule a fixture
type CreateFixtureRequest struct {
	HomeTeam  string    `json:"homeTeam" validate:"required"`
	AwayTeam  string    `json:"awayTeam" validate:"required"`
	Venue     string    `json:"venue,omitempty"`
	KickoffAt time.Time `json:"kickoffAt" validate:"required"`
}

// UpdateFixtureRequest represents the request to update a fixture
type UpdateFixtureRequest struct {
	HomeTeam  string               `json:"homeTeam" validate:"required"`
	AwayTeam  string               `json:"awayTeam" validate:"required"`
	Venue     string               `json:"venue,omitempty"`
	KickoffAt time.Time            `json:"kickoffAt" validate:"required"`
	Status    models.FixtureStatus `json:"status,omitempty"`
	Score     string               `json:"score,omitempty"`
}

// Create schedules a new fixture
func (s *FixtureService) Create(req *CreateFixtureRequest) (*models.Fixture, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, &apperrors.ValidationError{Message: err.Error()}
	}

	fixture := &models.Fixture{
		HomeTeam:  req.HomeTeam,
		AwayTeam:  req.AwayTeam,
		Venue:     req.Venue,
		KickoffAt: req.KickoffAt,
		Status:    models.FixtureStatusScheduled,
	}
	if err := s.repo.Create(fixture); err != nil {
		return nil, fmt.Errorf("failed to create fixture: %w", err)
	}
	return fixture, nil
}

// GetByID retrieves a fixture
func (s *FixtureService) GetByID(id uuid.UUID) (*models.Fixture, error) {
	fixture, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrFixtureNotFound
		}
		return nil, fmt.Errorf("failed to get fixture: %w", err)
	}
	return fixture, nil
}

// List retrieves all fixtures ordered by kickoff time
func (s *FixtureService) List() ([]models.Fixture, error) {
	fixtures, err := s.repo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list fixtures: %w", err)
	}
	return fixtures, nil
}

// Update updates a fixture's fields
func (s *FixtureService) Update(id uuid.UUID, req *UpdateFixtureRequest) (*models.Fixture, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, &apperrors.ValidationError{Message: err.Error()}
	}
	if req.Status != "" && !req.Status.IsValid() {
		return nil, &apperrors.ValidationError{Field: "status", Message: "unrecognized fixture status " + string(req.Status)}
	}

	fixture, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	fixture.HomeTeam = req.HomeTeam
	fixture.AwayTeam = req.AwayTeam
	fixture.Venue = req.Venue
	fixture.KickoffAt = req.KickoffAt
	if req.Status != "" {
		fixture.Status = req.Status
	}
	if req.Score != "" {
		fixture.Score = req.Score
	}

	if err := s.repo.Update(fixture); err != nil {
		return nil, fmt.Errorf("failed to update fixture: %w", err)
	}
	return fixture, nil
}

// Delete removes a fixture
func (s *FixtureService) Delete(id uuid.UUID) error {
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrFixtureNotFound
		}
		return fmt.Errorf("failed to delete fixture: %w", err)
	}
	return nil
}
