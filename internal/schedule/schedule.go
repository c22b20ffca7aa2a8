// Package schedule parses team schedule payloads and selects the most
// recent completed game.
package schedule

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/fortuna/services/game-recap-service/internal/payload"
	"github.com/fortuna/services/game-recap-service/pkg/models"
)

// standardCompetitionType is the competition format that carries a real
// box score; exhibition and all-star formats do not count as completed.
const standardCompetitionType = "Standard"

// ParseEvents extracts schedule events from a raw schedule payload,
// preserving source order. An event is completed only when one of its
// competitions is the standard format and reports a box score available.
func ParseEvents(rawData map[string]interface{}) ([]models.ScheduleEvent, error) {
	if _, ok := rawData["events"]; !ok {
		return nil, fmt.Errorf("%w: schedule payload missing events", models.ErrUpstreamUnavailable)
	}

	entries := payload.Array(rawData, "events")
	events := make([]models.ScheduleEvent, 0, len(entries))

	for i := range entries {
		entry := payload.MapAt(entries, i)

		completed := false
		competitions := payload.Array(entry, "competitions")
		for j := range competitions {
			competition := payload.MapAt(competitions, j)
			compType := payload.Map(competition, "type")
			if payload.String(compType, "text") == standardCompetitionType &&
				payload.Bool(competition, "boxscoreAvailable") {
				completed = true
				break
			}
		}

		date := parseEventDate(payload.String(entry, "date"))
		if date.IsZero() {
			// An undatable event can never be "the most recent": without
			// this it would sort behind every real date and still satisfy
			// the inclusive cutoff.
			completed = false
		}

		events = append(events, models.ScheduleEvent{
			GameID:    payload.Stringify(entry["id"]),
			Date:      date,
			Completed: completed,
		})
	}

	return events, nil
}

// SelectLatestCompleted returns the game ID of the most recent completed
// event at or before referenceDate (calendar-date precision, inclusive).
//
// Events are stably sorted by date descending, so same-day doubleheaders
// resolve to whichever event the source listed first; the source has not
// been observed to produce them and no further tie-break is guaranteed.
// Events without a date are never selected. ErrNoCompletedGame is the
// normal outcome when nothing qualifies.
func SelectLatestCompleted(events []models.ScheduleEvent, referenceDate time.Time) (string, error) {
	sorted := make([]models.ScheduleEvent, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})

	cutoff := truncateToDate(referenceDate)
	for _, event := range sorted {
		if event.Completed && !event.Date.IsZero() && !event.Date.After(cutoff) {
			return event.GameID, nil
		}
	}

	return "", models.ErrNoCompletedGame
}

// parseEventDate parses an ESPN event date to calendar precision.
// ESPN emits minute-precision timestamps ("2025-11-11T23:30Z") that are
// not strict RFC3339; only the date prefix matters here.
func parseEventDate(dateStr string) time.Time {
	datePart, _, _ := strings.Cut(dateStr, "T")

	t, err := time.Parse("2006-01-02", datePart)
	if err != nil {
		return time.Time{}
	}

	return t
}

// truncateToDate drops the time-of-day component, keeping the UTC date.
func truncateToDate(t time.Time) time.Time {
	year, month, day := t.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
