package models

// TeamRef identifies a franchise in the league directory.
// Resolved once per run and never mutated afterwards.
type TeamRef struct {
	ID           string `json:"id"`
	DisplayName  string `json:"display_name"`
	ShortName    string `json:"short_name"`
	Abbreviation string `json:"abbreviation"`
}
