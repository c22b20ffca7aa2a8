package basketball_nba

import (
	"fmt"

	"github.com/fortuna/services/game-recap-service/internal/payload"
	"github.com/fortuna/services/game-recap-service/pkg/models"
)

// NormalizeSummary flattens an ESPN game summary payload into a recap:
// game header, team statistic rows, player statistic rows, play-by-play
// entries, and recap text.
//
// The statistics and players sections are required; anything below them
// degrades per-field. A team statistic absent from the source collection
// stays unavailable rather than failing the row, and a missing recap
// article leaves Story empty.
func (m *NBAModule) NormalizeSummary(rawData map[string]interface{}) (*models.GameRecap, error) {
	boxscore := payload.Map(rawData, "boxscore")
	if _, ok := boxscore["teams"]; !ok {
		return nil, fmt.Errorf("%w: summary has no team statistics section", models.ErrMissingBoxScore)
	}
	if _, ok := boxscore["players"]; !ok {
		return nil, fmt.Errorf("%w: summary has no players section", models.ErrMissingBoxScore)
	}

	teams := payload.Array(boxscore, "teams")
	if len(teams) == 0 {
		return nil, fmt.Errorf("%w: summary team statistics section is empty", models.ErrMissingBoxScore)
	}

	recap := &models.GameRecap{
		GameID:   payload.String(payload.Map(rawData, "header"), "id"),
		SportKey: m.GetSportKey(),
	}

	// Scores live in a different payload section than the statistics:
	// cross-reference the header competitor list by team ID.
	scores := parseScoreMap(rawData)

	m.parseHeader(recap, teams, scores)
	m.parseTeamStats(recap, teams, scores)
	m.parsePlayers(recap, payload.Array(boxscore, "players"))
	m.parsePlays(recap, payload.Array(rawData, "plays"))

	recap.Story = payload.String(payload.Map(rawData, "article"), "story")

	return recap, nil
}

// parseScoreMap builds the teamId -> score lookup from the header
// competitor list.
func parseScoreMap(rawData map[string]interface{}) map[string]string {
	scores := make(map[string]string)

	competitions := payload.Array(payload.Map(rawData, "header"), "competitions")
	competitors := payload.Array(payload.MapAt(competitions, 0), "competitors")
	for i := range competitors {
		competitor := payload.MapAt(competitors, i)
		teamID := payload.Stringify(payload.Map(competitor, "team")["id"])
		if teamID != "" {
			scores[teamID] = payload.Stringify(competitor["score"])
		}
	}

	return scores
}

// parseHeader fills the home and away sides using the homeAway
// discriminator on the box score teams.
func (m *NBAModule) parseHeader(recap *models.GameRecap, teams []interface{}, scores map[string]string) {
	for i := range teams {
		entry := payload.MapAt(teams, i)
		team := payload.Map(entry, "team")

		side := models.TeamSide{
			TeamID:      payload.Stringify(team["id"]),
			DisplayName: payload.String(team, "displayName"),
			Score:       scores[payload.Stringify(team["id"])],
		}

		switch payload.String(entry, "homeAway") {
		case "home":
			recap.Home = side
		case "away":
			recap.Away = side
		}
	}
}

// parseTeamStats extracts the whitelisted statistic fields for each team.
// The source collection is unordered; each field is looked up by symbolic
// name and left unavailable when absent.
func (m *NBAModule) parseTeamStats(recap *models.GameRecap, teams []interface{}, scores map[string]string) {
	for i := range teams {
		entry := payload.MapAt(teams, i)
		team := payload.Map(entry, "team")
		teamID := payload.Stringify(team["id"])

		byName := make(map[string]string)
		statistics := payload.Array(entry, "statistics")
		for j := range statistics {
			stat := payload.MapAt(statistics, j)
			byName[payload.String(stat, "name")] = payload.String(stat, "displayValue")
		}

		line := models.TeamStatLine{
			TeamID:      teamID,
			DisplayName: payload.String(team, "displayName"),
			HomeAway:    payload.String(entry, "homeAway"),
			Stats:       make([]models.StatValue, 0, len(teamStatFields)),
		}

		if score, ok := scores[teamID]; ok {
			line.Score = models.StatValue{Display: score, Available: true}
		}

		for _, field := range teamStatFields {
			if display, ok := byName[field.Name]; ok {
				line.Stats = append(line.Stats, models.StatValue{Display: display, Available: true})
			} else {
				line.Stats = append(line.Stats, models.StatValue{})
			}
		}

		recap.TeamStats = append(recap.TeamStats, line)
	}
}

// parsePlayers flattens each team's statistic groups into one row per
// athlete. Group keys apply positionally to every athlete's stats array;
// an athlete appearing in more than one group accumulates into a single
// row keyed by identity instead of duplicating.
func (m *NBAModule) parsePlayers(recap *models.GameRecap, players []interface{}) {
	byIdentity := make(map[string]*models.PlayerLine)
	var order []string

	for i := range players {
		teamEntry := payload.MapAt(players, i)
		teamName := payload.String(payload.Map(teamEntry, "team"), "displayName")

		groups := payload.Array(teamEntry, "statistics")
		for j := range groups {
			group := payload.MapAt(groups, j)

			rawKeys := payload.Array(group, "keys")
			keys := make([]string, len(rawKeys))
			for k := range rawKeys {
				keys[k] = payload.Stringify(rawKeys[k])
			}

			athletes := payload.Array(group, "athletes")
			for k := range athletes {
				entry := payload.MapAt(athletes, k)
				athlete := payload.Map(entry, "athlete")

				identity := teamName + "/" + payload.Stringify(athlete["id"]) + "/" + payload.String(athlete, "displayName")
				line, ok := byIdentity[identity]
				if !ok {
					line = &models.PlayerLine{
						Team:      teamName,
						Name:      payload.String(athlete, "displayName"),
						ShortName: payload.String(athlete, "shortName"),
						Position:  payload.String(payload.Map(athlete, "position"), "displayName"),
						Jersey:    payload.Stringify(athlete["jersey"]),
						Stats:     make(map[string]string),
					}
					byIdentity[identity] = line
					order = append(order, identity)
				}

				values := payload.Array(entry, "stats")
				for s := range values {
					if s >= len(keys) {
						break
					}
					if _, seen := line.Stats[keys[s]]; !seen {
						line.StatKeys = append(line.StatKeys, keys[s])
					}
					line.Stats[keys[s]] = payload.Stringify(values[s])
				}
			}
		}
	}

	for _, identity := range order {
		recap.Players = append(recap.Players, *byIdentity[identity])
	}
}

// parsePlays passes the play-by-play log through in source order.
func (m *NBAModule) parsePlays(recap *models.GameRecap, plays []interface{}) {
	for i := range plays {
		play := payload.MapAt(plays, i)
		recap.Plays = append(recap.Plays, models.Play{
			Period: payload.String(payload.Map(play, "period"), "displayValue"),
			Clock:  payload.String(payload.Map(play, "clock"), "displayValue"),
			Text:   payload.String(play, "text"),
		})
	}
}
