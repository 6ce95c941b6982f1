package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Fixture represents a scheduled match between two registered teams
type Fixture struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	HomeTeam  string        `json:"homeTeam" gorm:"size:100;not null" validate:"required"`
	AwayTeam  string        `json:"awayTeam" gorm:"size:100;not null" validate:"required"`
	Venue     string        `json:"venue,omitempty" gorm:"size:200"`
	KickoffAt time.Time     `json:"kickoffAt" gorm:"not null" validate:"required"`
	Status    FixtureStatus `json:"status" gorm:"size:20;not null;default:'scheduled'"`
	Score     string        `json:"score,omitempty" gorm:"size:20"`
}

// TableName returns the table name for Fixture
func (Fixture) TableName() string {
	return "fixtures"
}

// BeforeCreate sets the UUID if not already set
func (f *Fixture) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}
