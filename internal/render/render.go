// Package render turns a normalized game recap into human-readable
// sectioned text, as markdown tables or console-aligned columns.
package render

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fortuna/services/game-recap-service/pkg/contracts"
	"github.com/fortuna/services/game-recap-service/pkg/models"
)

const (
	// Placeholder renders any cell whose value the source did not supply.
	Placeholder = "N/A"

	// NoRecapPlaceholder renders when the source omits the recap article.
	NoRecapPlaceholder = "no recap available"
)

// identityColumns lead every player table, before the dynamic stat keys.
var identityColumns = []string{"team", "name", "short_name", "position", "jersey"}

// WriteMarkdown writes the full recap as markdown sections.
func WriteMarkdown(w io.Writer, recap *models.GameRecap, fields []contracts.StatField) {
	fmt.Fprintf(w, "### Game\n\n")
	fmt.Fprintf(w, "**Game ID:** %s\n", recap.GameID)
	fmt.Fprintf(w, "**Home:** %s  **Score:** %s\n", recap.Home.DisplayName, orPlaceholder(recap.Home.Score))
	fmt.Fprintf(w, "**Away:** %s  **Score:** %s\n", recap.Away.DisplayName, orPlaceholder(recap.Away.Score))

	fmt.Fprintf(w, "\n### Team Stats\n\n")
	writeMarkdownRow(w, teamStatHeader(fields))
	writeMarkdownRule(w, len(fields)+2)
	for _, line := range recap.TeamStats {
		writeMarkdownRow(w, teamStatRow(line))
	}

	fmt.Fprintf(w, "\n### Player Stats\n\n")
	columns := PlayerColumns(recap.Players)
	writeMarkdownRow(w, columns)
	writeMarkdownRule(w, len(columns))
	for _, player := range recap.Players {
		writeMarkdownRow(w, playerRow(player, columns))
	}

	fmt.Fprintf(w, "\n### Play-by-Play\n\n")
	if len(recap.Plays) == 0 {
		fmt.Fprintln(w, "no play-by-play available")
	}
	for _, play := range recap.Plays {
		fmt.Fprintf(w, "- **[%s - %s]** %s\n", play.Period, play.Clock, play.Text)
	}

	fmt.Fprintf(w, "\n### Recap\n\n")
	fmt.Fprintln(w, story(recap))
}

// WriteConsole writes the full recap as tab-aligned console sections.
func WriteConsole(w io.Writer, recap *models.GameRecap, fields []contracts.StatField) {
	fmt.Fprintf(w, "=== Game ===\n")
	fmt.Fprintf(w, "Game ID: %s\n", recap.GameID)
	fmt.Fprintf(w, "Home: %s (%s)\n", recap.Home.DisplayName, orPlaceholder(recap.Home.Score))
	fmt.Fprintf(w, "Away: %s (%s)\n", recap.Away.DisplayName, orPlaceholder(recap.Away.Score))

	fmt.Fprintf(w, "\n=== Team Stats ===\n")
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(teamStatHeader(fields), "\t"))
	for _, line := range recap.TeamStats {
		fmt.Fprintln(tw, strings.Join(teamStatRow(line), "\t"))
	}
	tw.Flush()

	fmt.Fprintf(w, "\n=== Player Stats ===\n")
	columns := PlayerColumns(recap.Players)
	tw = tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(columns, "\t"))
	for _, player := range recap.Players {
		fmt.Fprintln(tw, strings.Join(playerRow(player, columns), "\t"))
	}
	tw.Flush()

	fmt.Fprintf(w, "\n=== Play-by-Play ===\n")
	if len(recap.Plays) == 0 {
		fmt.Fprintln(w, "no play-by-play available")
	}
	for _, play := range recap.Plays {
		fmt.Fprintf(w, "[%s - %s] %s\n", play.Period, play.Clock, play.Text)
	}

	fmt.Fprintf(w, "\n=== Recap ===\n")
	fmt.Fprintln(w, story(recap))
}

// PlayerColumns derives the player table column set: the identity columns
// followed by the union of stat keys across all players, in first-seen
// order. Union, not first-record-only, so a record with extra fields
// never loses them silently.
func PlayerColumns(players []models.PlayerLine) []string {
	columns := make([]string, len(identityColumns))
	copy(columns, identityColumns)

	seen := make(map[string]bool)
	for _, player := range players {
		for _, key := range player.StatKeys {
			if !seen[key] {
				seen[key] = true
				columns = append(columns, key)
			}
		}
	}

	return columns
}

func teamStatHeader(fields []contracts.StatField) []string {
	header := []string{"Team", "Score"}
	for _, field := range fields {
		header = append(header, field.Label)
	}
	return header
}

func teamStatRow(line models.TeamStatLine) []string {
	row := []string{line.DisplayName, line.Score.Or(Placeholder)}
	for _, stat := range line.Stats {
		row = append(row, stat.Or(Placeholder))
	}
	return row
}

func playerRow(player models.PlayerLine, columns []string) []string {
	row := []string{player.Team, player.Name, player.ShortName, player.Position, player.Jersey}
	for _, key := range columns[len(identityColumns):] {
		if value, ok := player.Stats[key]; ok && value != "" {
			row = append(row, value)
		} else {
			row = append(row, Placeholder)
		}
	}
	return row
}

func story(recap *models.GameRecap) string {
	if recap.Story == "" {
		return NoRecapPlaceholder
	}
	return recap.Story
}

func orPlaceholder(s string) string {
	if s == "" {
		return Placeholder
	}
	return s
}

func writeMarkdownRow(w io.Writer, cells []string) {
	fmt.Fprintf(w, "| %s |\n", strings.Join(cells, " | "))
}

func writeMarkdownRule(w io.Writer, n int) {
	cells := make([]string, n)
	for i := range cells {
		cells[i] = "---"
	}
	fmt.Fprintf(w, "|%s|\n", strings.Join(cells, "|"))
}
