package service

import (
	"context"
	"mime/multipart"

	"team-registration-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// TeamServiceInterface defines the interface for the team registry
type TeamServiceInterface interface {
	CreateShell(req *CreateTeamRequest) (*TeamResponse, error)
	UpdateRoster(ctx context.Context, teamID uuid.UUID, incoming []PlayerInput, images []*multipart.FileHeader) (*TeamResponse, string, error)
	VerifySecret(teamName, candidate string) (bool, error)
	UpdateTeam(teamID uuid.UUID, req *UpdateTeamRequest) (*TeamResponse, error)
	SetLogo(ctx context.Context, teamID uuid.UUID, file *multipart.FileHeader) (string, error)
	UpdatePlayer(teamID, playerID uuid.UUID, req *UpdatePlayerRequest) (*models.Player, error)
	SetPlayerImage(ctx context.Context, teamID, playerID uuid.UUID, file *multipart.FileHeader) (string, error)
	List(verified *bool) ([]TeamResponse, error)
	GetByName(name string) (*TeamResponse, error)
	Delete(teamID uuid.UUID) error
}

// FixtureServiceInterface defines the interface for the fixture service
type FixtureServiceInterface interface {
	Create(req *CreateFixtureRequest) (*models.Fixture, error)
	GetByID(id uuid.UUID) (*models.Fixture, error)
	List() ([]models.Fixture, error)
	Update(id uuid.UUID, req *UpdateFixtureRequest) (*models.Fixture, error)
	Delete(id uuid.UUID) error
}

// ResultServiceInterface defines the interface for the result service
type ResultServiceInterface interface {
	Create(req *CreateResultRequest) (*models.Result, error)
	List() ([]models.Result, error)
	Update(id uuid.UUID, req *UpdateResultRequest) (*models.Result, error)
	Delete(id uuid.UUID) error
}
