package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Result records the outcome of a completed fixture. One result per fixture.
type Result struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	FixtureID uuid.UUID `json:"fixtureId" gorm:"type:uuid;not null;uniqueIndex" validate:"required"`
	TeamA     string    `json:"teamA" gorm:"size:100"`
	TeamB     string    `json:"teamB" gorm:"size:100"`
	Score     string    `json:"score" gorm:"size:20"` // e.g. "2-1"
	Winner    string    `json:"winner" gorm:"size:100"` // team name or "Draw"
	MVP       string    `json:"mvp,omitempty" gorm:"size:100"`
	Notes     string    `json:"notes,omitempty" gorm:"size:500"`
}

// TableName returns the table name for Result
func (Result) TableName() string {
	return "results"
}

// BeforeCreate sets the UUID if not already set
func (r *Result) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
