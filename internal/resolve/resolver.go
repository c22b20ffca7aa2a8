// Package resolve maps a free-form team query to a canonical team ID
// using the league team directory.
package resolve

import (
	"context"
	"fmt"
	"strings"

	"github.com/fortuna/services/game-recap-service/internal/payload"
	"github.com/fortuna/services/game-recap-service/pkg/models"
)

// directoryFetcher is the slice of the ESPN client the resolver needs.
type directoryFetcher interface {
	FetchTeamDirectory(ctx context.Context, sportPath string) (map[string]interface{}, error)
}

// Resolver resolves team identifiers against the league directory.
// Pure lookup: one directory fetch per Resolve call, no caching.
type Resolver struct {
	client    directoryFetcher
	sportPath string
}

// New creates a resolver for one sport's directory
func New(client directoryFetcher, sportPath string) *Resolver {
	return &Resolver{
		client:    client,
		sportPath: sportPath,
	}
}

// Resolve maps a team name or numeric ID to a TeamRef.
//
// A numeric identifier is trusted as a canonical team ID and returned
// without a lookup. Anything else is matched case-insensitively against
// the directory: substring on the display name, substring on the short
// name, exact on the abbreviation. The first team in directory order
// satisfying any predicate wins; ties go to the earlier listing.
func (r *Resolver) Resolve(ctx context.Context, identifier string) (models.TeamRef, error) {
	if isNumeric(identifier) {
		return models.TeamRef{ID: identifier}, nil
	}

	rawData, err := r.client.FetchTeamDirectory(ctx, r.sportPath)
	if err != nil {
		return models.TeamRef{}, fmt.Errorf("fetching team directory: %w", err)
	}

	teams, err := ParseTeamDirectory(rawData)
	if err != nil {
		return models.TeamRef{}, err
	}

	team, ok := MatchTeam(teams, identifier)
	if !ok {
		return models.TeamRef{}, fmt.Errorf("%w: no team matching %q", models.ErrTeamNotFound, identifier)
	}

	return team, nil
}

// ParseTeamDirectory extracts the team listing from a raw directory
// payload, preserving directory order. A payload without the expected
// sports/leagues/teams nesting counts as the upstream being unavailable.
func ParseTeamDirectory(rawData map[string]interface{}) ([]models.TeamRef, error) {
	sports := payload.Array(rawData, "sports")
	if len(sports) == 0 {
		return nil, fmt.Errorf("%w: directory payload missing sports", models.ErrUpstreamUnavailable)
	}

	leagues := payload.Array(payload.MapAt(sports, 0), "leagues")
	if len(leagues) == 0 {
		return nil, fmt.Errorf("%w: directory payload missing leagues", models.ErrUpstreamUnavailable)
	}

	entries := payload.Array(payload.MapAt(leagues, 0), "teams")
	if len(entries) == 0 {
		return nil, fmt.Errorf("%w: directory payload missing teams", models.ErrUpstreamUnavailable)
	}

	teams := make([]models.TeamRef, 0, len(entries))
	for i := range entries {
		team := payload.Map(payload.MapAt(entries, i), "team")
		teams = append(teams, models.TeamRef{
			ID:           payload.Stringify(team["id"]),
			DisplayName:  payload.String(team, "displayName"),
			ShortName:    payload.String(team, "shortDisplayName"),
			Abbreviation: payload.String(team, "abbreviation"),
		})
	}

	return teams, nil
}

// MatchTeam returns the first team in listing order that matches the
// query. First-match, not best-match: a query matching several teams
// resolves to the earliest listing.
func MatchTeam(teams []models.TeamRef, query string) (models.TeamRef, bool) {
	q := strings.ToLower(query)

	for _, team := range teams {
		if strings.Contains(strings.ToLower(team.DisplayName), q) ||
			strings.Contains(strings.ToLower(team.ShortName), q) ||
			strings.ToLower(team.Abbreviation) == q {
			return team, true
		}
	}

	return models.TeamRef{}, false
}

// isNumeric reports whether s is a plain decimal number
func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
