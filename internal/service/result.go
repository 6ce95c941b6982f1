package service

import (
	"errors"
	"fmt"

	"team-registration-backend/internal/database/models"
	apperrors "team-registration-backend/internal/errors"
	"team-registration-backend/internal/logger"
	"team-registration-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ResultService handles business logic for match results
type ResultService struct {
	repo        repository.ResultRepositoryInterface
	fixtureRepo repository.FixtureRepositoryInterface
	validator   *validator.Validate
	log         *logger.Logger
}

// NewResultService creates a new result service
func NewResultService(repo repository.ResultRepositoryInterface, fixtureRepo repository.FixtureRepositoryInterface, validator *validator.Validate) *ResultService {
	return &ResultService{
		repo:        repo,
		fixtureRepo: fixtureRepo,
		validator:   validator,
		log:         logger.New(),
	}
}

// CreateResultRequest represents the request to record a fixture result
type CreateResultRequest struct {
	FixtureID uuid.UUID `json:"fixtureId" validate:"required"`
	TeamA     string    `json:"teamA"`
	TeamB     string    `json:"teamB"`
	Score     string    `json:"score" validate:"required"`
	Winner    string    `json:"winner" validate:"required"`
	MVP       string    `json:"mvp,omitempty"`
	Notes     string    `json:"notes,omitempty"`
}

// UpdateResultRequest represents the request to correct a recorded result
type UpdateResultRequest struct {
	Score  string `json:"score" validate:"required"`
	Winner string `json:"winner" validate:"required"`
	MVP    string `json:"mvp,omitempty"`
	Notes  string `json:"notes,omitempty"`
}

// Create records the result of a fixture and marks the fixture completed
// with the final score.
func (s *ResultService) Create(req *CreateResultRequest) (*models.Result, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, &apperrors.ValidationError{Message: err.Error()}
	}

	if _, err := s.fixtureRepo.GetByID(req.FixtureID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrFixtureNotFound
		}
		return nil, fmt.Errorf("failed to verify fixture: %w", err)
	}

	if existing, err := s.repo.GetByFixtureID(req.FixtureID); err == nil && existing != nil {
		return nil, apperrors.ErrResultExists
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing result: %w", err)
	}

	result := &models.Result{
		FixtureID: req.FixtureID,
		TeamA:     req.TeamA,
		TeamB:     req.TeamB,
		Score:     req.Score,
		Winner:    req.Winner,
		MVP:       req.MVP,
		Notes:     req.Notes,
	}
	if err := s.repo.Create(result); err != nil {
		return nil, fmt.Errorf("failed to create result: %w", err)
	}

	if err := s.fixtureRepo.SetCompleted(req.FixtureID, req.Score); err != nil {
		// Result is recorded; the fixture status catch-up failing should not
		// fail the whole operation.
		s.log.WithField("fixture_id", req.FixtureID.String()).Warnf("failed to mark fixture completed: %v", err)
	}

	return result, nil
}

// List retrieves all results
func (s *ResultService) List() ([]models.Result, error) {
	results, err := s.repo.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list results: %w", err)
	}
	return results, nil
}

// Update corrects a recorded result
func (s *ResultService) Update(id uuid.UUID, req *UpdateResultRequest) (*models.Result, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, &apperrors.ValidationError{Message: err.Error()}
	}

	result, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrResultNotFound
		}
		return nil, fmt.Errorf("failed to get result: %w", err)
	}

	result.Score = req.Score
	result.Winner = req.Winner
	result.MVP = req.MVP
	result.Notes = req.Notes

	if err := s.repo.Update(result); err != nil {
		return nil, fmt.Errorf("failed to update result: %w", err)
	}
	return result, nil
}

// Delete removes a recorded result
func (s *ResultService) Delete(id uuid.UUID) error {
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrResultNotFound
		}
		return fmt.Errorf("failed to delete result: %w", err)
	}
	return nil
}
