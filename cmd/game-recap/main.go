package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fortuna/services/game-recap-service/internal/cache"
	"github.com/fortuna/services/game-recap-service/internal/pipeline"
	"github.com/fortuna/services/game-recap-service/internal/providers/espn"
	"github.com/fortuna/services/game-recap-service/internal/publisher"
	"github.com/fortuna/services/game-recap-service/internal/registry"
	"github.com/fortuna/services/game-recap-service/internal/render"
	"github.com/fortuna/services/game-recap-service/pkg/models"
	"github.com/redis/go-redis/v9"
)

func main() {
	// Command surface: one optional positional argument, team name or
	// numeric ID. Empty falls back to the sport module's default team.
	var team string
	if len(os.Args) > 1 {
		team = os.Args[1]
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	sportRegistry := registry.New()
	module, err := sportRegistry.GetModule("basketball_nba")
	if err != nil {
		log.Fatalf("Failed to load sport module: %v", err)
	}

	espnClient := espn.New()
	pipe := pipeline.New(module, espnClient)

	recap, err := pipe.LatestRecap(ctx, team, time.Now().UTC())
	if errors.Is(err, models.ErrNoCompletedGame) {
		// Normal outcome: nothing to report yet.
		fmt.Println("no completed game found")
		return
	}
	if err != nil {
		log.Fatalf("Failed to build recap: %v", err)
	}

	render.WriteMarkdown(os.Stdout, recap, module.TeamStatFields())

	// Optional: snapshot and publish the recap for other services.
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		publishRecap(ctx, redisURL, recap)
	}
}

// publishRecap writes the recap snapshot to Redis and publishes it on
// the recap stream. Failures are logged, never fatal: the report has
// already been emitted.
func publishRecap(ctx context.Context, redisURL string, recap *models.GameRecap) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("Failed to parse Redis URL: %v", err)
		return
	}

	redisClient := redis.NewClient(opts)
	defer redisClient.Close()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Printf("Failed to connect to Redis: %v", err)
		return
	}

	if err := cache.NewRedisWriter(redisClient).WriteRecap(ctx, recap); err != nil {
		log.Printf("Failed to write recap snapshot: %v", err)
	}
	if err := publisher.NewStreamPublisher(redisClient).PublishRecap(ctx, recap); err != nil {
		log.Printf("Failed to publish recap: %v", err)
	}
}
