package models

import "errors"

// Failure kinds for the recap pipeline. Each stage wraps its underlying
// cause with fmt.Errorf("...: %w", ...) around one of these sentinels so
// callers can classify with errors.Is.
var (
	// ErrTeamNotFound means no team in the league directory matched the query.
	ErrTeamNotFound = errors.New("team not found")

	// ErrUpstreamUnavailable means a fetch failed or a payload did not have
	// the expected nesting.
	ErrUpstreamUnavailable = errors.New("upstream unavailable")

	// ErrNoCompletedGame means the schedule has no completed game at or
	// before the reference date. This is a normal outcome, not a fault.
	ErrNoCompletedGame = errors.New("no completed game")

	// ErrMissingBoxScore means the game summary lacks the statistics or
	// players sections the normalizer depends on.
	ErrMissingBoxScore = errors.New("missing box score")
)
