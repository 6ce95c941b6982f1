package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"team-registration-backend/internal/config"
	"team-registration-backend/internal/database"
	"team-registration-backend/internal/database/models"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type TeamData struct {
	Name            string       `yaml:"name"`
	BatchYear       int          `yaml:"batch_year"`
	CaptainName     string       `yaml:"captain_name"`
	ViceCaptainName string       `yaml:"vice_captain_name"`
	IsVerified      bool         `yaml:"is_verified"`
	Players         []PlayerData `yaml:"players,omitempty"`
}

type PlayerData struct {
	Name         string `yaml:"name"`
	Position     string `yaml:"position"`
	JerseyNumber int    `yaml:"jersey_number"`
	Image        string `yaml:"image,omitempty"`
}

type FixtureData struct {
	HomeTeam  string    `yaml:"home_team"`
	AwayTeam  string    `yaml:"away_team"`
	Venue     string    `yaml:"venue,omitempty"`
	KickoffAt time.Time `yaml:"kickoff_at"`
	Status    string    `yaml:"status,omitempty"`
	Score     string    `yaml:"score,omitempty"`
}

// File structures
type TeamsFile struct {
	Teams []TeamData `yaml:"teams"`
}

type FixturesFile struct {
	Fixtures []FixtureData `yaml:"fixtures"`
}

func main() {
	log.Println("Loading initial data from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent, // Suppress GORM logs including "record not found" during seeding
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	teams, err := loadTeamsFile(filepath.Join(dataDir, "teams.yaml"))
	if err != nil {
		return fmt.Errorf("failed to load teams: %w", err)
	}
	fixtures, err := loadFixturesFile(filepath.Join(dataDir, "fixtures.yaml"))
	if err != nil {
		return fmt.Errorf("failed to load fixtures: %w", err)
	}

	created := 0
	for _, t := range teams {
		ok, err := seedTeam(db, t)
		if err != nil {
			return fmt.Errorf("failed to seed team %q: %w", t.Name, err)
		}
		if ok {
			created++
		}
	}
	log.Printf("Teams: %d seeded, %d already present", created, len(teams)-created)

	created = 0
	for _, f := range fixtures {
		ok, err := seedFixture(db, f)
		if err != nil {
			return fmt.Errorf("failed to seed fixture %s vs %s: %w", f.HomeTeam, f.AwayTeam, err)
		}
		if ok {
			created++
		}
	}
	log.Printf("Fixtures: %d seeded, %d already present", created, len(fixtures)-created)

	return nil
}

func loadTeamsFile(path string) ([]TeamData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("No teams file at %s, skipping", path)
			return nil, nil
		}
		return nil, err
	}
	var file TeamsFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, err
	}
	return file.Teams, nil
}

func loadFixturesFile(path string) ([]FixtureData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("No fixtures file at %s, skipping", path)
			return nil, nil
		}
		return nil, err
	}
	var file FixturesFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, err
	}
	return file.Fixtures, nil
}

// seedTeam creates the team unless one with the same name already exists.
// Seeded teams never carry a secret key; that is only issued through the
// registration flow.
func seedTeam(db *gorm.DB, data TeamData) (bool, error) {
	var existing models.Team
	err := db.First(&existing, "name = ?", data.Name).Error
	if err == nil {
		return false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return false, err
	}

	players := make(models.Players, 0, len(data.Players))
	for _, p := range data.Players {
		pos := models.Position(p.Position)
		if !pos.IsValid() {
			return false, fmt.Errorf("player %q has unrecognized position %q", p.Name, p.Position)
		}
		players = append(players, models.Player{
			ID:           uuid.New(),
			Name:         p.Name,
			Image:        p.Image,
			Position:     pos,
			JerseyNumber: p.JerseyNumber,
		})
	}

	team := &models.Team{
		Name:            data.Name,
		Year:            data.BatchYear,
		CaptainName:     data.CaptainName,
		ViceCaptainName: data.ViceCaptainName,
		IsVerified:      data.IsVerified,
		Players:         players,
	}
	return true, db.Create(team).Error
}

// seedFixture creates the fixture unless the same pairing at the same kickoff
// already exists.
func seedFixture(db *gorm.DB, data FixtureData) (bool, error) {
	var existing models.Fixture
	err := db.First(&existing, "home_team = ? AND away_team = ? AND kickoff_at = ?",
		data.HomeTeam, data.AwayTeam, data.KickoffAt).Error
	if err == nil {
		return false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return false, err
	}

	status := models.FixtureStatusScheduled
	if data.Status != "" {
		status = models.FixtureStatus(data.Status)
		if !status.IsValid() {
			return false, fmt.Errorf("unrecognized fixture status %q", data.Status)
		}
	}

	fixture := &models.Fixture{
		HomeTeam:  data.HomeTeam,
		AwayTeam:  data.AwayTeam,
		Venue:     data.Venue,
		KickoffAt: data.KickoffAt,
		Status:    status,
		Score:     data.Score,
	}
	return true, db.Create(fixture).Error
}
