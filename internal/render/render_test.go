package render_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fortuna/services/game-recap-service/internal/render"
	"github.com/fortuna/services/game-recap-service/pkg/contracts"
	"github.com/fortuna/services/game-recap-service/pkg/models"
)

func TestPlayerColumns_UnionAcrossRecords(t *testing.T) {
	players := []models.PlayerLine{
		{Name: "A", StatKeys: []string{"minutes", "points"}},
		{Name: "B", StatKeys: []string{"points", "saves"}}, // extra key only on B
	}

	columns := render.PlayerColumns(players)

	want := []string{"team", "name", "short_name", "position", "jersey", "minutes", "points", "saves"}
	if len(columns) != len(want) {
		t.Fatalf("PlayerColumns() = %v, want %v", columns, want)
	}
	for i := range want {
		if columns[i] != want[i] {
			t.Errorf("columns[%d] = %q, want %q", i, columns[i], want[i])
		}
	}
}

func TestPlayerColumns_NoPlayers(t *testing.T) {
	columns := render.PlayerColumns(nil)
	if len(columns) != 5 {
		t.Errorf("PlayerColumns(nil) = %v, want identity columns only", columns)
	}
}

func testRecap() *models.GameRecap {
	return &models.GameRecap{
		GameID: "401585183",
		Home:   models.TeamSide{TeamID: "13", DisplayName: "Los Angeles Lakers", Score: "134"},
		Away:   models.TeamSide{TeamID: "2", DisplayName: "Boston Celtics", Score: "110"},
		TeamStats: []models.TeamStatLine{
			{
				DisplayName: "Los Angeles Lakers",
				HomeAway:    "home",
				Score:       models.StatValue{Display: "134", Available: true},
				Stats: []models.StatValue{
					{Display: "52.3", Available: true},
					{}, // unavailable field
				},
			},
		},
		Players: []models.PlayerLine{
			{
				Team: "Los Angeles Lakers", Name: "LeBron James", ShortName: "L. James",
				Position: "Small Forward", Jersey: "23",
				StatKeys: []string{"points", "rebounds"},
				Stats:    map[string]string{"points": "28", "rebounds": "8"},
			},
			{
				Team: "Los Angeles Lakers", Name: "Austin Reaves", ShortName: "A. Reaves",
				Position: "Shooting Guard", Jersey: "15",
				StatKeys: []string{"points"},
				Stats:    map[string]string{"points": "15"},
			},
		},
		Plays: []models.Play{
			{Period: "1st Quarter", Clock: "12:00", Text: "Jump Ball"},
		},
	}
}

var testFields = []contracts.StatField{
	{Name: "fieldGoalPct", Label: "FG%"},
	{Name: "threePointFieldGoalPct", Label: "3PT%"},
}

func TestWriteMarkdown(t *testing.T) {
	var buf bytes.Buffer
	render.WriteMarkdown(&buf, testRecap(), testFields)
	out := buf.String()

	for _, want := range []string{
		"**Home:** Los Angeles Lakers  **Score:** 134",
		"| Team | Score | FG% | 3PT% |",
		"| Los Angeles Lakers | 134 | 52.3 | N/A |", // unavailable renders the placeholder
		"| team | name | short_name | position | jersey | points | rebounds |",
		"| Los Angeles Lakers | Austin Reaves | A. Reaves | Shooting Guard | 15 | 15 | N/A |",
		"- **[1st Quarter - 12:00]** Jump Ball",
		"no recap available", // empty story renders the placeholder
	} {
		if !strings.Contains(out, want) {
			t.Errorf("markdown output missing %q\noutput:\n%s", want, out)
		}
	}
}

func TestWriteMarkdown_Story(t *testing.T) {
	recap := testRecap()
	recap.Story = "A statement win."

	var buf bytes.Buffer
	render.WriteMarkdown(&buf, recap, testFields)

	if !strings.Contains(buf.String(), "A statement win.") {
		t.Errorf("markdown output missing story")
	}
	if strings.Contains(buf.String(), "no recap available") {
		t.Errorf("placeholder rendered despite story present")
	}
}

func TestWriteConsole(t *testing.T) {
	var buf bytes.Buffer
	render.WriteConsole(&buf, testRecap(), testFields)
	out := buf.String()

	for _, want := range []string{
		"=== Game ===",
		"Home: Los Angeles Lakers (134)",
		"LeBron James",
		"[1st Quarter - 12:00] Jump Ball",
		"no recap available",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("console output missing %q\noutput:\n%s", want, out)
		}
	}
}

func TestWriteConsole_NoPlays(t *testing.T) {
	recap := testRecap()
	recap.Plays = nil

	var buf bytes.Buffer
	render.WriteConsole(&buf, recap, testFields)

	if !strings.Contains(buf.String(), "no play-by-play available") {
		t.Errorf("console output missing play-by-play placeholder")
	}
}
