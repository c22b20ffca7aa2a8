package schedule_test

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/fortuna/services/game-recap-service/internal/schedule"
	"github.com/fortuna/services/game-recap-service/pkg/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func event(id string, d time.Time, completed bool) models.ScheduleEvent {
	return models.ScheduleEvent{GameID: id, Date: d, Completed: completed}
}

func TestSelectLatestCompleted(t *testing.T) {
	tests := []struct {
		name          string
		events        []models.ScheduleEvent
		referenceDate time.Time
		wantID        string
		wantErr       error
	}{
		{
			name: "skips later incomplete game",
			events: []models.ScheduleEvent{
				event("g1", date(2024, 1, 10), true),
				event("g2", date(2024, 1, 15), false),
			},
			referenceDate: date(2024, 1, 20),
			wantID:        "g1",
		},
		{
			name: "picks most recent of several completed",
			events: []models.ScheduleEvent{
				event("g1", date(2024, 1, 2), true),
				event("g3", date(2024, 1, 12), true),
				event("g2", date(2024, 1, 8), true),
			},
			referenceDate: date(2024, 1, 20),
			wantID:        "g3",
		},
		{
			name: "reference date is inclusive",
			events: []models.ScheduleEvent{
				event("g1", date(2024, 1, 20), true),
			},
			referenceDate: date(2024, 1, 20),
			wantID:        "g1",
		},
		{
			name: "never selects past the reference date",
			events: []models.ScheduleEvent{
				// Future-dated completed flag is impossible upstream,
				// but the bound is enforced anyway.
				event("g1", date(2024, 1, 25), true),
				event("g2", date(2024, 1, 5), true),
			},
			referenceDate: date(2024, 1, 20),
			wantID:        "g2",
		},
		{
			name:          "empty schedule",
			events:        nil,
			referenceDate: date(2024, 1, 20),
			wantErr:       models.ErrNoCompletedGame,
		},
		{
			name: "all upcoming",
			events: []models.ScheduleEvent{
				event("g1", date(2024, 2, 1), false),
				event("g2", date(2024, 2, 3), false),
			},
			referenceDate: date(2024, 1, 20),
			wantErr:       models.ErrNoCompletedGame,
		},
		{
			name: "undated event is never selected",
			events: []models.ScheduleEvent{
				// A zero date sorts behind every real date and would
				// otherwise satisfy the inclusive cutoff.
				event("garbage", time.Time{}, true),
			},
			referenceDate: date(2024, 1, 20),
			wantErr:       models.ErrNoCompletedGame,
		},
		{
			name: "undated event loses to a dated candidate",
			events: []models.ScheduleEvent{
				event("garbage", time.Time{}, true),
				event("g1", date(2024, 1, 10), true),
			},
			referenceDate: date(2024, 1, 20),
			wantID:        "g1",
		},
		{
			name: "same-day doubleheader keeps listing order",
			events: []models.ScheduleEvent{
				event("early", date(2024, 1, 10), true),
				event("late", date(2024, 1, 10), true),
			},
			referenceDate: date(2024, 1, 20),
			wantID:        "early",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gameID, err := schedule.SelectLatestCompleted(tt.events, tt.referenceDate)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("SelectLatestCompleted() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("SelectLatestCompleted() error = %v", err)
			}
			if gameID != tt.wantID {
				t.Errorf("SelectLatestCompleted() = %q, want %q", gameID, tt.wantID)
			}
		})
	}
}

func TestSelectLatestCompleted_DoesNotMutateInput(t *testing.T) {
	events := []models.ScheduleEvent{
		event("g1", date(2024, 1, 2), true),
		event("g2", date(2024, 1, 12), true),
	}

	if _, err := schedule.SelectLatestCompleted(events, date(2024, 1, 20)); err != nil {
		t.Fatalf("SelectLatestCompleted() error = %v", err)
	}

	if events[0].GameID != "g1" || events[1].GameID != "g2" {
		t.Errorf("input slice was reordered: %v", events)
	}
}

func TestParseEvents(t *testing.T) {
	raw := `{
		"events": [
			{
				"id": "401585183",
				"date": "2024-01-10T03:00Z",
				"competitions": [{"type": {"text": "Standard"}, "boxscoreAvailable": true}]
			},
			{
				"id": "401585184",
				"date": "2024-01-15T03:00Z",
				"competitions": [{"type": {"text": "Standard"}, "boxscoreAvailable": false}]
			},
			{
				"id": "401585185",
				"date": "2024-02-18T01:00Z",
				"competitions": [{"type": {"text": "All-Star"}, "boxscoreAvailable": true}]
			},
			{
				"id": "401585186",
				"date": "not-a-date",
				"competitions": [{"type": {"text": "Standard"}, "boxscoreAvailable": true}]
			}
		]
	}`

	var payload map[string]interface{}
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		t.Fatalf("decoding fixture: %v", err)
	}

	events, err := schedule.ParseEvents(payload)
	if err != nil {
		t.Fatalf("ParseEvents() error = %v", err)
	}

	want := []models.ScheduleEvent{
		event("401585183", date(2024, 1, 10), true),
		event("401585184", date(2024, 1, 15), false),   // no box score yet
		event("401585185", date(2024, 2, 18), false),   // non-standard format
		event("401585186", time.Time{}, false),         // unparseable date demotes to incomplete
	}

	if len(events) != len(want) {
		t.Fatalf("ParseEvents() returned %d events, want %d", len(events), len(want))
	}
	for i := range want {
		if events[i] != want[i] {
			t.Errorf("events[%d] = %+v, want %+v", i, events[i], want[i])
		}
	}
}

func TestParseEvents_MissingEvents(t *testing.T) {
	_, err := schedule.ParseEvents(map[string]interface{}{})
	if !errors.Is(err, models.ErrUpstreamUnavailable) {
		t.Errorf("ParseEvents() error = %v, want ErrUpstreamUnavailable", err)
	}
}

func TestParseEvents_EmptyEventsIsValid(t *testing.T) {
	events, err := schedule.ParseEvents(map[string]interface{}{
		"events": []interface{}{},
	})
	if err != nil {
		t.Fatalf("ParseEvents() error = %v", err)
	}
	if len(events) != 0 {
		t.Errorf("ParseEvents() returned %d events, want 0", len(events))
	}
}
