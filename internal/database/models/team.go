package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Team is the registration document for one team. The roster lives in the
// same row (jsonb) so roster writes and secret-key assignment stay a single
// atomic read-modify-write against one record.
//
// SecretKey is issued at most once, on first successful roster population,
// and never serializes on a read path (json:"-"); verification happens only
// through the verify-secret operation.
type Team struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Name            string  `json:"teamName" gorm:"size:100;not null;uniqueIndex" validate:"required,min=2,max=100"`
	Year            int     `json:"batchYear" gorm:"not null" validate:"required"`
	CaptainName     string  `json:"captainName" gorm:"size:100;not null" validate:"required"`
	ViceCaptainName string  `json:"viceCaptainName" gorm:"size:100;not null" validate:"required"`
	LogoURL         *string `json:"teamLogo,omitempty" gorm:"size:300"`
	SecretKey       *string `json:"-" gorm:"size:64"`
	IsVerified      bool    `json:"isVerified" gorm:"not null;default:false"`
	Players         Players `json:"players" gorm:"type:jsonb;not null;default:'[]'"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}

// BeforeCreate sets the UUID if not already set
func (t *Team) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// IsRostered reports whether the team has left the shell state, i.e. a
// roster has been populated and a secret key issued.
func (t *Team) IsRostered() bool {
	return t.SecretKey != nil
}
