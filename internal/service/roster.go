package service

import (
	"crypto/rand"
	"math/big"
	"strings"

	"team-registration-backend/internal/database/models"
	apperrors "team-registration-backend/internal/errors"

	"github.com/google/uuid"
)

// RosterSize is the exact number of players a finalized roster must hold.
const RosterSize = 16

const (
	secretKeyLength   = 20
	secretKeyAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

// PlayerInput is the wire shape of one submitted roster entry. The boundary
// parses the request body into this type exactly once; core logic never
// re-parses or branches on wire representation.
type PlayerInput struct {
	Name         string          `json:"name" validate:"required"`
	Image        string          `json:"image,omitempty"`
	Position     models.Position `json:"position" validate:"required"`
	JerseyNumber int             `json:"jerseyNumber"`
}

// ValidateRoster checks the shape and field constraints of a merged roster.
// Pure and deterministic: exactly RosterSize entries, every entry named, a
// recognized position code, and a jersey number in 1..99.
func ValidateRoster(players []models.Player) error {
	if len(players) != RosterSize {
		return &apperrors.RosterShapeError{Want: RosterSize, Got: len(players)}
	}
	for i, p := range players {
		if strings.TrimSpace(p.Name) == "" {
			return &apperrors.RosterFieldError{Index: i, Field: "name", Message: "is required"}
		}
		if p.Position == "" {
			return &apperrors.RosterFieldError{Index: i, Field: "position", Message: "is required"}
		}
		if !p.Position.IsValid() {
			return &apperrors.RosterFieldError{Index: i, Field: "position", Message: "unrecognized position code " + string(p.Position)}
		}
		if p.JerseyNumber < 1 || p.JerseyNumber > 99 {
			return &apperrors.RosterFieldError{Index: i, Field: "jerseyNumber", Message: "must be between 1 and 99"}
		}
	}
	return nil
}

// ReconcileImages merges a submitted player list with the team's current
// roster and any freshly uploaded image URLs. uploadedURLs is positionally
// sparse: an empty string at index i means no upload for that slot.
//
// Precedence per index: upload URL, then the incoming payload's image, then
// the existing player's image. An image already on record is therefore never
// erased by an edit that supplies no replacement. Player ids and goal
// counters carry forward by index so entries stay addressable across updates.
func ReconcileImages(existing models.Players, incoming []PlayerInput, uploadedURLs []string) models.Players {
	merged := make(models.Players, len(incoming))
	for i, in := range incoming {
		p := models.Player{
			Name:         in.Name,
			Position:     in.Position,
			JerseyNumber: in.JerseyNumber,
		}
		if i < len(existing) {
			p.ID = existing[i].ID
			p.Goals = existing[i].Goals
		}
		if p.ID == uuid.Nil {
			p.ID = uuid.New()
		}
		switch {
		case i < len(uploadedURLs) && uploadedURLs[i] != "":
			p.Image = uploadedURLs[i]
		case in.Image != "":
			p.Image = in.Image
		case i < len(existing):
			p.Image = existing[i].Image
		}
		merged[i] = p
	}
	return merged
}

// GenerateSecretKey produces the random access token issued on first roster
// population. Collisions across teams are treated as negligible; assignment
// is made at-most-once through the repository's compare-and-set.
func GenerateSecretKey() (string, error) {
	var b strings.Builder
	b.Grow(secretKeyLength)
	max := big.NewInt(int64(len(secretKeyAlphabet)))
	for i := 0; i < secretKeyLength; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		b.WriteByte(secretKeyAlphabet[n.Int64()])
	}
	return b.String(), nil
}
