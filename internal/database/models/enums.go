package models

// Position defines the recognized field-position codes for a roster entry
type Position string

const (
	PositionGK Position = "GK"

	PositionCB Position = "CB"
	PositionRB Position = "RB"
	PositionLB Position = "LB"

	PositionCDM Position = "CDM"
	PositionCM  Position = "CM"
	PositionCAM Position = "CAM"
	PositionRM  Position = "RM"
	PositionLM  Position = "LM"
	PositionRW  Position = "RW"
	PositionLW  Position = "LW"

	PositionCF Position = "CF"
	PositionST Position = "ST"
	PositionSS Position = "SS"
)

// IsValid checks if the Position is one of the recognized codes
func (p Position) IsValid() bool {
	switch p {
	case PositionGK,
		PositionCB, PositionRB, PositionLB,
		PositionCDM, PositionCM, PositionCAM, PositionRM, PositionLM, PositionRW, PositionLW,
		PositionCF, PositionST, PositionSS:
		return true
	}
	return false
}

// FixtureStatus defines the lifecycle states of a fixture
type FixtureStatus string

const (
	FixtureStatusScheduled FixtureStatus = "scheduled"
	FixtureStatusCompleted FixtureStatus = "completed"
	FixtureStatusCancelled FixtureStatus = "cancelled"
)

// IsValid checks if the FixtureStatus is valid
func (s FixtureStatus) IsValid() bool {
	switch s {
	case FixtureStatusScheduled, FixtureStatusCompleted, FixtureStatusCancelled:
		return true
	}
	return false
}
