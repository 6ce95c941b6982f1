package service

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"time"

	"team-registration-backend/internal/database/models"
	apperrors "team-registration-backend/internal/errors"
	"team-registration-backend/internal/logger"
	"team-registration-backend/internal/repository"
	"team-registration-backend/internal/storage"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TeamService orchestrates the team lifecycle: shell creation, two-phase
// roster registration with lazy secret issuance, and secret-gated mutations.
type TeamService struct {
	repo      repository.TeamRepositoryInterface
	uploader  storage.Uploader
	validator *validator.Validate
	log       *logger.Logger
}

// NewTeamService creates a new team service
func NewTeamService(repo repository.TeamRepositoryInterface, uploader storage.Uploader, validator *validator.Validate) *TeamService {
	return &TeamService{
		repo:      repo,
		uploader:  uploader,
		validator: validator,
		log:       logger.New(),
	}
}

// CreateTeamRequest represents the request to register a team shell
type CreateTeamRequest struct {
	Name            string `json:"teamName" validate:"required,min=2,max=100"`
	Year            int    `json:"batchYear" validate:"required"`
	CaptainName     string `json:"captainName" validate:"required"`
	ViceCaptainName string `json:"viceCaptainName" validate:"required"`
}

// UpdateTeamRequest represents the request to rename a team or update its fields
type UpdateTeamRequest struct {
	Name            string `json:"teamName" validate:"required,min=2,max=100"`
	Year            int    `json:"batchYear" validate:"required"`
	CaptainName     string `json:"captainName" validate:"required"`
	ViceCaptainName string `json:"viceCaptainName" validate:"required"`
}

// UpdatePlayerRequest represents the request to update a single roster entry.
// Image is optional; when omitted the player's stored image is preserved.
type UpdatePlayerRequest struct {
	Name         string          `json:"name" validate:"required"`
	Position     models.Position `json:"position" validate:"required"`
	JerseyNumber int             `json:"jerseyNumber" validate:"required,min=1,max=99"`
	Image        *string         `json:"image,omitempty"`
}

// TeamResponse represents a team on every read path. The secret key is
// excluded by construction and only ever travels through UpdateRoster's
// dedicated return value.
type TeamResponse struct {
	ID              uuid.UUID       `json:"id"`
	Name            string          `json:"teamName"`
	Year            int             `json:"batchYear"`
	CaptainName     string          `json:"captainName"`
	ViceCaptainName string          `json:"viceCaptainName"`
	LogoURL         *string         `json:"teamLogo,omitempty"`
	IsVerified      bool            `json:"isVerified"`
	Players         []models.Player `json:"players"`
	CreatedAt       string          `json:"createdAt"`
	UpdatedAt       string          `json:"updatedAt"`
}

// CreateShell registers a new team shell: metadata only, empty roster, no
// secret key, unverified.
func (s *TeamService) CreateShell(req *CreateTeamRequest) (*TeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, &apperrors.ValidationError{Message: err.Error()}
	}

	if err := s.checkNameAvailable(req.Name, uuid.Nil); err != nil {
		return nil, err
	}

	team := &models.Team{
		Name:            req.Name,
		Year:            req.Year,
		CaptainName:     req.CaptainName,
		ViceCaptainName: req.ViceCaptainName,
		Players:         models.Players{},
	}

	if err := s.repo.Create(team); err != nil {
		return nil, fmt.Errorf("failed to create team: %w", err)
	}

	s.log.WithTeam(team.ID.String()).Infof("registered team shell %q", team.Name)
	return s.toResponse(team), nil
}

// UpdateRoster runs the second registration phase: upload player images,
// reconcile them into the submitted list, validate the merged roster, persist
// it, and issue the team's secret key if none exists yet. The returned string
// is the newly issued secret, or empty on every later call.
//
// All uploads complete before any write, so a failed upload never leaves the
// roster half-updated. The roster write and the secret assignment are each a
// single atomic statement; the assignment is a compare-and-set, so concurrent
// submissions can never persist two different secrets.
func (s *TeamService) UpdateRoster(ctx context.Context, teamID uuid.UUID, incoming []PlayerInput, images []*multipart.FileHeader) (*TeamResponse, string, error) {
	team, err := s.getTeam(teamID)
	if err != nil {
		return nil, "", err
	}

	uploadedURLs, err := s.uploadPlayerImages(ctx, incoming, images)
	if err != nil {
		return nil, "", err
	}

	merged := ReconcileImages(team.Players, incoming, uploadedURLs)
	if err := ValidateRoster(merged); err != nil {
		return nil, "", err
	}

	if err := s.withRetry("roster update", func() error {
		return s.repo.UpdateRoster(team.ID, merged)
	}); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", apperrors.ErrTeamNotFound
		}
		return nil, "", err
	}

	issuedSecret := ""
	if !team.IsRostered() {
		secret, err := GenerateSecretKey()
		if err != nil {
			return nil, "", fmt.Errorf("failed to generate secret key: %w", err)
		}
		var won bool
		if err := s.withRetry("secret assignment", func() error {
			var cerr error
			won, cerr = s.repo.AssignSecretKeyIfAbsent(team.ID, secret)
			return cerr
		}); err != nil {
			return nil, "", err
		}
		if won {
			issuedSecret = secret
			s.log.WithTeam(team.ID.String()).Info("issued team secret key")
		}
	}

	fresh, err := s.getTeam(team.ID)
	if err != nil {
		return nil, "", err
	}

	s.log.WithTeam(team.ID.String()).Infof("roster updated with %d players", len(fresh.Players))
	return s.toResponse(fresh), issuedSecret, nil
}

// VerifySecret compares a candidate secret against the stored one. The stored
// value is never revealed; only the comparison outcome is.
func (s *TeamService) VerifySecret(teamName, candidate string) (bool, error) {
	team, err := s.repo.GetByName(teamName)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, apperrors.ErrTeamNotFound
		}
		return false, fmt.Errorf("failed to get team: %w", err)
	}
	return team.SecretKey != nil && *team.SecretKey == candidate, nil
}

// UpdateTeam renames a team or updates its metadata fields. A rename
// re-checks global name uniqueness, excluding the team's own record.
func (s *TeamService) UpdateTeam(teamID uuid.UUID, req *UpdateTeamRequest) (*TeamResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, &apperrors.ValidationError{Message: err.Error()}
	}

	team, err := s.getTeam(teamID)
	if err != nil {
		return nil, err
	}

	if req.Name != team.Name {
		if err := s.checkNameAvailable(req.Name, team.ID); err != nil {
			return nil, err
		}
	}

	team.Name = req.Name
	team.Year = req.Year
	team.CaptainName = req.CaptainName
	team.ViceCaptainName = req.ViceCaptainName

	if err := s.repo.Update(team); err != nil {
		return nil, fmt.Errorf("failed to update team: %w", err)
	}

	return s.toResponse(team), nil
}

// SetLogo uploads the team logo and persists its URL
func (s *TeamService) SetLogo(ctx context.Context, teamID uuid.UUID, file *multipart.FileHeader) (string, error) {
	if file == nil {
		return "", apperrors.ErrMissingFile
	}

	team, err := s.getTeam(teamID)
	if err != nil {
		return "", err
	}

	logoURL, err := s.uploadFile(ctx, storage.FolderTeamLogos, file)
	if err != nil {
		return "", err
	}

	if err := s.repo.UpdateLogo(team.ID, logoURL); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperrors.ErrTeamNotFound
		}
		return "", fmt.Errorf("failed to persist logo URL: %w", err)
	}

	return logoURL, nil
}

// UpdatePlayer replaces the named fields of a single roster entry. When the
// request carries no image, the stored image is explicitly carried forward.
func (s *TeamService) UpdatePlayer(teamID, playerID uuid.UUID, req *UpdatePlayerRequest) (*models.Player, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, &apperrors.ValidationError{Message: err.Error()}
	}
	if !req.Position.IsValid() {
		return nil, &apperrors.ValidationError{Field: "position", Message: "unrecognized position code " + string(req.Position)}
	}

	team, err := s.getTeam(teamID)
	if err != nil {
		return nil, err
	}

	idx := team.Players.FindByID(playerID)
	if idx < 0 {
		return nil, apperrors.ErrPlayerNotFound
	}

	player := &team.Players[idx]
	player.Name = req.Name
	player.Position = req.Position
	player.JerseyNumber = req.JerseyNumber
	if req.Image != nil {
		player.Image = *req.Image
	}

	if err := s.repo.UpdateRoster(team.ID, team.Players); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to persist player update: %w", err)
	}

	updated := team.Players[idx]
	return &updated, nil
}

// SetPlayerImage uploads a replacement image for one roster entry and
// persists its URL on that player.
func (s *TeamService) SetPlayerImage(ctx context.Context, teamID, playerID uuid.UUID, file *multipart.FileHeader) (string, error) {
	if file == nil {
		return "", apperrors.ErrMissingFile
	}

	team, err := s.getTeam(teamID)
	if err != nil {
		return "", err
	}

	idx := team.Players.FindByID(playerID)
	if idx < 0 {
		return "", apperrors.ErrPlayerNotFound
	}

	imageURL, err := s.uploadFile(ctx, storage.FolderPlayerImages, file)
	if err != nil {
		return "", err
	}

	team.Players[idx].Image = imageURL
	if err := s.repo.UpdateRoster(team.ID, team.Players); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperrors.ErrTeamNotFound
		}
		return "", fmt.Errorf("failed to persist player image: %w", err)
	}

	return imageURL, nil
}

// List retrieves all teams, optionally filtered by verification flag
func (s *TeamService) List(verified *bool) ([]TeamResponse, error) {
	teams, err := s.repo.List(verified)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}

	responses := make([]TeamResponse, len(teams))
	for i := range teams {
		responses[i] = *s.toResponse(&teams[i])
	}
	return responses, nil
}

// GetByName retrieves a team by its unique name
func (s *TeamService) GetByName(name string) (*TeamResponse, error) {
	team, err := s.repo.GetByName(name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	return s.toResponse(team), nil
}

// Delete removes a team
func (s *TeamService) Delete(teamID uuid.UUID) error {
	if err := s.repo.Delete(teamID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrTeamNotFound
		}
		return fmt.Errorf("failed to delete team: %w", err)
	}
	return nil
}

func (s *TeamService) getTeam(teamID uuid.UUID) (*models.Team, error) {
	team, err := s.repo.GetByID(teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTeamNotFound
		}
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	return team, nil
}

func (s *TeamService) checkNameAvailable(name string, selfID uuid.UUID) error {
	existing, err := s.repo.GetByName(name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return fmt.Errorf("failed to check existing team by name: %w", err)
	}
	if existing.ID != selfID {
		return apperrors.ErrTeamExists
	}
	return nil
}

// uploadPlayerImages pushes every submitted file to the blob store before any
// persistence write. The returned slice is index-aligned with the submitted
// players; empty string means no upload at that slot.
func (s *TeamService) uploadPlayerImages(ctx context.Context, incoming []PlayerInput, images []*multipart.FileHeader) ([]string, error) {
	urls := make([]string, len(incoming))
	for i, fh := range images {
		if fh == nil || i >= len(incoming) {
			continue
		}
		url, err := s.uploadFile(ctx, storage.FolderPlayers, fh)
		if err != nil {
			return nil, err
		}
		urls[i] = url
	}
	return urls, nil
}

func (s *TeamService) uploadFile(ctx context.Context, folder string, fh *multipart.FileHeader) (string, error) {
	f, err := fh.Open()
	if err != nil {
		return "", apperrors.NewUploadError("opening uploaded file", err)
	}
	defer f.Close()
	return s.uploader.Upload(ctx, folder, fh.Filename, f)
}

// withRetry runs a persistence write, retrying once on conflict before
// surfacing a PersistenceError.
func (s *TeamService) withRetry(op string, fn func() error) error {
	err := fn()
	if err == nil || errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	if err = fn(); err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.NewPersistenceError(op, err)
	}
	return err
}

func (s *TeamService) toResponse(team *models.Team) *TeamResponse {
	players := team.Players
	if players == nil {
		players = models.Players{}
	}
	return &TeamResponse{
		ID:              team.ID,
		Name:            team.Name,
		Year:            team.Year,
		CaptainName:     team.CaptainName,
		ViceCaptainName: team.ViceCaptainName,
		LogoURL:         team.LogoURL,
		IsVerified:      team.IsVerified,
		Players:         players,
		CreatedAt:       team.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       team.UpdatedAt.Format(time.RFC3339),
	}
}
