// Package pipeline runs the full recap pipeline for one sport:
// resolve -> schedule -> select -> summary -> normalize.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/fortuna/services/game-recap-service/internal/resolve"
	"github.com/fortuna/services/game-recap-service/internal/schedule"
	"github.com/fortuna/services/game-recap-service/pkg/contracts"
	"github.com/fortuna/services/game-recap-service/pkg/models"
)

// gameFetcher is the slice of the ESPN client the pipeline needs.
type gameFetcher interface {
	FetchTeamDirectory(ctx context.Context, sportPath string) (map[string]interface{}, error)
	FetchTeamSchedule(ctx context.Context, sportPath string, teamID string) (map[string]interface{}, error)
	FetchGameSummary(ctx context.Context, sportPath string, gameID string) (map[string]interface{}, error)
}

// Pipeline produces the recap of a team's most recent completed game.
// Stateless: every run fetches fresh, owns its own working set, and the
// three fetches are strictly sequential (each needs the prior result).
type Pipeline struct {
	module   contracts.SportModule
	client   gameFetcher
	resolver *resolve.Resolver
}

// New creates a pipeline for one sport module
func New(module contracts.SportModule, client gameFetcher) *Pipeline {
	return &Pipeline{
		module:   module,
		client:   client,
		resolver: resolve.New(client, module.GetESPNSportPath()),
	}
}

// Module returns the sport module this pipeline serves.
func (p *Pipeline) Module() contracts.SportModule {
	return p.module
}

// LatestRecap resolves identifier to a team, picks its most recent
// completed game at or before referenceDate, and normalizes that game's
// summary. An empty identifier falls back to the module's default team.
//
// Failure kinds per stage: ErrTeamNotFound / ErrUpstreamUnavailable from
// resolution, ErrUpstreamUnavailable from either fetch,
// ErrNoCompletedGame from selection (a normal outcome for callers to
// short-circuit on), ErrMissingBoxScore from normalization.
func (p *Pipeline) LatestRecap(ctx context.Context, identifier string, referenceDate time.Time) (*models.GameRecap, error) {
	if identifier == "" {
		identifier = p.module.DefaultTeam()
	}

	team, err := p.resolver.Resolve(ctx, identifier)
	if err != nil {
		return nil, fmt.Errorf("resolving team: %w", err)
	}

	scheduleData, err := p.client.FetchTeamSchedule(ctx, p.module.GetESPNSportPath(), team.ID)
	if err != nil {
		return nil, fmt.Errorf("fetching schedule: %w", err)
	}

	events, err := schedule.ParseEvents(scheduleData)
	if err != nil {
		return nil, fmt.Errorf("parsing schedule: %w", err)
	}

	gameID, err := schedule.SelectLatestCompleted(events, referenceDate)
	if err != nil {
		return nil, err
	}

	summaryData, err := p.client.FetchGameSummary(ctx, p.module.GetESPNSportPath(), gameID)
	if err != nil {
		return nil, fmt.Errorf("fetching game summary: %w", err)
	}

	recap, err := p.module.NormalizeSummary(summaryData)
	if err != nil {
		return nil, fmt.Errorf("normalizing game %s: %w", gameID, err)
	}

	if recap.GameID == "" {
		recap.GameID = gameID
	}

	return recap, nil
}
