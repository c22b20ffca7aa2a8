package basketball_nba

import "github.com/fortuna/services/game-recap-service/pkg/contracts"

// teamStatFields is the enumerated whitelist of NBA team statistics, in
// output order. Name is the symbolic key in the ESPN statistics
// collection; Label is the rendered column header.
var teamStatFields = []contracts.StatField{
	{Name: "fieldGoalsMade-fieldGoalsAttempted", Label: "FG"},
	{Name: "fieldGoalPct", Label: "FG%"},
	{Name: "threePointFieldGoalsMade-threePointFieldGoalsAttempted", Label: "3PT"},
	{Name: "threePointFieldGoalPct", Label: "3PT%"},
	{Name: "freeThrowsMade-freeThrowsAttempted", Label: "FT"},
	{Name: "freeThrowPct", Label: "FT%"},
	{Name: "totalRebounds", Label: "REB"},
	{Name: "offensiveRebounds", Label: "OREB"},
	{Name: "defensiveRebounds", Label: "DREB"},
	{Name: "assists", Label: "AST"},
	{Name: "steals", Label: "STL"},
	{Name: "blocks", Label: "BLK"},
	{Name: "totalTurnovers", Label: "TO"},
	{Name: "turnovers", Label: "Personal TO"},
	{Name: "teamTurnovers", Label: "Team TO"},
	{Name: "turnoverPoints", Label: "Pts Off TO"},
	{Name: "fastBreakPoints", Label: "Fast Break Pts"},
	{Name: "pointsInPaint", Label: "Pts in Paint"},
	{Name: "fouls", Label: "PF"},
	{Name: "technicalFouls", Label: "Tech Fouls"},
	{Name: "flagrantFouls", Label: "Flagrant Fouls"},
	{Name: "largestLead", Label: "Largest Lead"},
}
