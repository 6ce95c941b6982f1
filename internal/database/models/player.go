package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// Player is a roster entry embedded in its owning Team document. Players have
// no lifecycle outside the parent team; the ID is stable across roster
// updates so that per-player mutations can address an entry.
type Player struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Image        string    `json:"image,omitempty"`
	Position     Position  `json:"position"`
	JerseyNumber int       `json:"jerseyNumber"`
	Goals        int       `json:"goals"`
}

// Players is the ordered roster of a team, stored as a single jsonb column so
// that the whole roster round-trips as one document field.
type Players []Player

// Value implements driver.Valuer for jsonb storage
func (p Players) Value() (driver.Value, error) {
	if p == nil {
		p = Players{}
	}
	return json.Marshal(p)
}

// Scan implements sql.Scanner for jsonb storage
func (p *Players) Scan(value interface{}) error {
	if value == nil {
		*p = Players{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, p)
	case string:
		return json.Unmarshal([]byte(v), p)
	default:
		return fmt.Errorf("unsupported players column type %T", value)
	}
}

// GormDataType tells gorm which column type to migrate
func (Players) GormDataType() string {
	return "jsonb"
}

// FindByID returns the index of the player with the given id, or -1
func (p Players) FindByID(id uuid.UUID) int {
	for i := range p {
		if p[i].ID == id {
			return i
		}
	}
	return -1
}
