package testutils

import (
	"fmt"
	"time"

	"team-registration-backend/internal/database/models"

	"github.com/google/uuid"
)

// rosterPositions is a legal 16-slot formation used by the roster builders.
var rosterPositions = []models.Position{
	models.PositionGK,
	models.PositionRB, models.PositionCB, models.PositionCB, models.PositionLB,
	models.PositionCDM, models.PositionCM, models.PositionCAM,
	models.PositionRW, models.PositionLW, models.PositionST,
	models.PositionGK,
	models.PositionCB, models.PositionCM, models.PositionRM, models.PositionCF,
}

// TeamFactory provides methods to create test Team data
type TeamFactory struct{}

// NewTeamFactory creates a new TeamFactory
func NewTeamFactory() *TeamFactory {
	return &TeamFactory{}
}

// Create creates a shell Team with default values: no roster, no secret key.
func (f *TeamFactory) Create() *models.Team {
	return &models.Team{
		ID:              uuid.New(),
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
		Name:            "Test United",
		Year:            2024,
		CaptainName:     "Test Captain",
		ViceCaptainName: "Test Vice Captain",
		IsVerified:      false,
		Players:         models.Players{},
	}
}

// WithName sets a custom name for the team
func (f *TeamFactory) WithName(name string) *models.Team {
	team := f.Create()
	team.Name = name
	return team
}

// Rostered creates a fully populated team: a 16-player roster and an issued
// secret key, the state a team reaches after its first roster submission.
func (f *TeamFactory) Rostered(name, secret string) *models.Team {
	team := f.WithName(name)
	team.SecretKey = &secret
	team.Players = f.Roster()
	return team
}

// Roster builds a valid 16-player roster with unique jersey numbers.
func (f *TeamFactory) Roster() models.Players {
	players := make(models.Players, 0, len(rosterPositions))
	for i, pos := range rosterPositions {
		players = append(players, models.Player{
			ID:           uuid.New(),
			Name:         fmt.Sprintf("Player %d", i+1),
			Position:     pos,
			JerseyNumber: i + 1,
		})
	}
	return players
}

// FixtureFactory provides methods to create test Fixture data
type FixtureFactory struct{}

// NewFixtureFactory creates a new FixtureFactory
func NewFixtureFactory() *FixtureFactory {
	return &FixtureFactory{}
}

// Create creates a scheduled test Fixture with default values
func (f *FixtureFactory) Create() *models.Fixture {
	return &models.Fixture{
		ID:        uuid.New(),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
		HomeTeam:  "Test United",
		AwayTeam:  "Test City",
		Venue:     "Main Ground",
		KickoffAt: time.Now().Add(48 * time.Hour),
		Status:    models.FixtureStatusScheduled,
	}
}

// WithTeams sets the home and away team names for the fixture
func (f *FixtureFactory) WithTeams(home, away string) *models.Fixture {
	fixture := f.Create()
	fixture.HomeTeam = home
	fixture.AwayTeam = away
	return fixture
}

// Completed creates a fixture already played to the given score
func (f *FixtureFactory) Completed(score string) *models.Fixture {
	fixture := f.Create()
	fixture.Status = models.FixtureStatusCompleted
	fixture.Score = score
	fixture.KickoffAt = time.Now().Add(-48 * time.Hour)
	return fixture
}

// ResultFactory provides methods to create test Result data
type ResultFactory struct{}

// NewResultFactory creates a new ResultFactory
func NewResultFactory() *ResultFactory {
	return &ResultFactory{}
}

// Create creates a test Result with default values
func (f *ResultFactory) Create() *models.Result {
	return &models.Result{
		ID:        uuid.New(),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
		FixtureID: uuid.New(),
		TeamA:     "Test United",
		TeamB:     "Test City",
		Score:     "2-1",
		Winner:    "Test United",
	}
}

// WithFixture sets the fixture ID for the result
func (f *ResultFactory) WithFixture(fixtureID uuid.UUID) *models.Result {
	result := f.Create()
	result.FixtureID = fixtureID
	return result
}

// FactorySet provides access to all factories
type FactorySet struct {
	Team    *TeamFactory
	Fixture *FixtureFactory
	Result  *ResultFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Team:    NewTeamFactory(),
		Fixture: NewFixtureFactory(),
		Result:  NewResultFactory(),
	}
}
