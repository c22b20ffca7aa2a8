package models

// StatValue is an optional statistic display value. Fields absent from the
// source collection stay unavailable internally; the placeholder is applied
// only at the presentation boundary.
type StatValue struct {
	Display   string `json:"display"`
	Available bool   `json:"available"`
}

// Or returns the display value, or placeholder when unavailable.
func (v StatValue) Or(placeholder string) string {
	if !v.Available {
		return placeholder
	}
	return v.Display
}

// TeamSide is a team's entry in the game header.
type TeamSide struct {
	TeamID      string `json:"team_id"`
	DisplayName string `json:"display_name"`
	Score       string `json:"score"`
}

// TeamStatLine is one team's flattened statistics row. Stats holds one
// value per whitelist field, in whitelist order.
type TeamStatLine struct {
	TeamID      string      `json:"team_id"`
	DisplayName string      `json:"display_name"`
	HomeAway    string      `json:"home_away"`
	Score       StatValue   `json:"score"`
	Stats       []StatValue `json:"stats"`
}

// PlayerLine is one athlete's flattened statistics row. The statistic
// field set is determined by the source payload at run time: StatKeys
// preserves first-seen key order across statistic groups, Stats maps each
// key to its display value. A player appearing in several statistic groups
// accumulates into the one line.
type PlayerLine struct {
	Team      string            `json:"team"`
	Name      string            `json:"name"`
	ShortName string            `json:"short_name"`
	Position  string            `json:"position"`
	Jersey    string            `json:"jersey"`
	StatKeys  []string          `json:"stat_keys"`
	Stats     map[string]string `json:"stats"`
}

// Play is one play-by-play entry, in source order.
type Play struct {
	Period string `json:"period"`
	Clock  string `json:"clock"`
	Text   string `json:"text"`
}

// GameRecap is the normalized view of one completed game.
// Story is empty when the source supplies no recap article; rendering
// substitutes the placeholder.
type GameRecap struct {
	GameID    string         `json:"game_id"`
	SportKey  string         `json:"sport_key"`
	Home      TeamSide       `json:"home"`
	Away      TeamSide       `json:"away"`
	TeamStats []TeamStatLine `json:"team_stats"`
	Players   []PlayerLine   `json:"players"`
	Plays     []Play         `json:"plays"`
	Story     string         `json:"story,omitempty"`
}
