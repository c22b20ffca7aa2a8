package contracts

import "github.com/fortuna/services/game-recap-service/pkg/models"

// SportModule is the pluggable interface for adding new sports.
// Sport differences live here as configuration (ESPN path, default team,
// stat whitelist) and one normalization routine; the rest of the pipeline
// is sport-agnostic.
type SportModule interface {
	// Identification
	GetSportKey() string      // "basketball_nba"
	GetDisplayName() string   // "NBA"
	GetESPNSportPath() string // "basketball/nba"

	// DefaultTeam is the franchise used when no identifier is given.
	DefaultTeam() string

	// TeamStatFields is the enumerated whitelist of team statistics to
	// extract, in output order.
	TeamStatFields() []StatField

	// NormalizeSummary flattens a raw game summary payload into a recap.
	NormalizeSummary(rawData map[string]interface{}) (*models.GameRecap, error)
}

// StatField names one whitelisted team statistic: the symbolic name it is
// looked up by in the source collection, and the label it renders under.
type StatField struct {
	Name  string
	Label string
}
