package basketball_nba

import (
	"github.com/fortuna/services/game-recap-service/pkg/contracts"
)

// NBAModule implements SportModule for NBA basketball
type NBAModule struct{}

// New creates a new NBA sport module
func New() *NBAModule {
	return &NBAModule{}
}

func (m *NBAModule) GetSportKey() string {
	return "basketball_nba"
}

func (m *NBAModule) GetDisplayName() string {
	return "NBA"
}

func (m *NBAModule) GetESPNSportPath() string {
	return "basketball/nba"
}

// DefaultTeam is the franchise reported when no identifier is given.
func (m *NBAModule) DefaultTeam() string {
	return "Lakers"
}

func (m *NBAModule) TeamStatFields() []contracts.StatField {
	return teamStatFields
}
