package service_test

import (
	"fmt"
	"strings"
	"testing"

	"team-registration-backend/internal/database/models"
	apperrors "team-registration-backend/internal/errors"
	"team-registration-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validRoster builds a legal 16-player roster for validation tests
func validRoster() models.Players {
	positions := []models.Position{
		models.PositionGK,
		models.PositionRB, models.PositionCB, models.PositionCB, models.PositionLB,
		models.PositionCDM, models.PositionCM, models.PositionCAM,
		models.PositionRW, models.PositionLW, models.PositionST,
		models.PositionGK,
		models.PositionCB, models.PositionCM, models.PositionRM, models.PositionCF,
	}
	players := make(models.Players, 0, len(positions))
	for i, pos := range positions {
		players = append(players, models.Player{
			ID:           uuid.New(),
			Name:         fmt.Sprintf("Player %d", i+1),
			Position:     pos,
			JerseyNumber: i + 1,
		})
	}
	return players
}

// playerInputs derives a submission payload from a roster
func playerInputs(players models.Players) []service.PlayerInput {
	inputs := make([]service.PlayerInput, len(players))
	for i, p := range players {
		inputs[i] = service.PlayerInput{
			Name:         p.Name,
			Image:        p.Image,
			Position:     p.Position,
			JerseyNumber: p.JerseyNumber,
		}
	}
	return inputs
}

// TestValidateRoster tests the roster shape and field constraints
func TestValidateRoster(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(models.Players) models.Players
		wantErr string
	}{
		{
			name:   "Valid roster",
			mutate: func(p models.Players) models.Players { return p },
		},
		{
			name:    "Too few players",
			mutate:  func(p models.Players) models.Players { return p[:15] },
			wantErr: "exactly 16",
		},
		{
			name: "Too many players",
			mutate: func(p models.Players) models.Players {
				return append(p, models.Player{Name: "Extra", Position: models.PositionSS, JerseyNumber: 17})
			},
			wantErr: "exactly 16",
		},
		{
			name: "Blank player name",
			mutate: func(p models.Players) models.Players {
				p[4].Name = "   "
				return p
			},
			wantErr: "name",
		},
		{
			name: "Missing position",
			mutate: func(p models.Players) models.Players {
				p[7].Position = ""
				return p
			},
			wantErr: "position",
		},
		{
			name: "Unrecognized position code",
			mutate: func(p models.Players) models.Players {
				p[7].Position = "QB"
				return p
			},
			wantErr: "QB",
		},
		{
			name: "Jersey number zero",
			mutate: func(p models.Players) models.Players {
				p[0].JerseyNumber = 0
				return p
			},
			wantErr: "between 1 and 99",
		},
		{
			name: "Jersey number too large",
			mutate: func(p models.Players) models.Players {
				p[15].JerseyNumber = 100
				return p
			},
			wantErr: "between 1 and 99",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := service.ValidateRoster(tc.mutate(validRoster()))
			if tc.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErr)
				assert.True(t, apperrors.IsRosterViolation(err))
			}
		})
	}
}

// TestReconcileImagesPrecedence tests the per-slot image precedence:
// fresh upload, then submitted payload, then whatever is on record.
func TestReconcileImagesPrecedence(t *testing.T) {
	existing := validRoster()
	existing[3].Image = "https://cdn.example.com/players/existing-3.jpg"
	existing[5].Image = "https://cdn.example.com/players/existing-5.jpg"

	incoming := playerInputs(existing)
	incoming[3].Image = "" // no replacement submitted for slot 3
	incoming[5].Image = "https://cdn.example.com/players/incoming-5.jpg"

	uploaded := make([]string, len(incoming))
	uploaded[5] = "https://cdn.example.com/players/uploaded-5.jpg"

	merged := service.ReconcileImages(existing, incoming, uploaded)

	require.Len(t, merged, service.RosterSize)
	// Slot 3: nothing submitted, nothing uploaded; record survives.
	assert.Equal(t, "https://cdn.example.com/players/existing-3.jpg", merged[3].Image)
	// Slot 5: upload beats both the payload and the record.
	assert.Equal(t, "https://cdn.example.com/players/uploaded-5.jpg", merged[5].Image)
	// Untouched slot stays empty.
	assert.Empty(t, merged[0].Image)
}

// TestReconcileImagesCarriesIdentity tests that player ids and goal counters
// survive a roster resubmission, and fresh slots get new ids.
func TestReconcileImagesCarriesIdentity(t *testing.T) {
	existing := validRoster()[:4]
	existing[2].Goals = 7

	incoming := playerInputs(validRoster()) // full 16 submitted over 4 existing

	merged := service.ReconcileImages(existing, incoming, nil)

	require.Len(t, merged, service.RosterSize)
	for i := 0; i < len(existing); i++ {
		assert.Equal(t, existing[i].ID, merged[i].ID, "slot %d id must carry forward", i)
	}
	assert.Equal(t, 7, merged[2].Goals)
	for i := len(existing); i < len(merged); i++ {
		assert.NotEqual(t, uuid.Nil, merged[i].ID, "slot %d needs a fresh id", i)
		assert.Zero(t, merged[i].Goals)
	}
}

// TestGenerateSecretKey tests the format of issued secret keys
func TestGenerateSecretKey(t *testing.T) {
	const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

	first, err := service.GenerateSecretKey()
	require.NoError(t, err)
	assert.Len(t, first, 20)
	for _, c := range first {
		assert.True(t, strings.ContainsRune(alphabet, c), "unexpected character %q", c)
	}

	second, err := service.GenerateSecretKey()
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}
