package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/fortuna/services/game-recap-service/pkg/models"
	"github.com/redis/go-redis/v9"
)

// RecapTTL bounds how long a recap snapshot stays readable. Recaps are
// for completed games, so the final-game TTL applies to everything.
const RecapTTL = 6 * time.Hour

// RedisWriter writes recap snapshots to Redis for other services to read.
// The pipeline itself never reads these back; every run fetches fresh.
type RedisWriter struct {
	client *redis.Client
}

// NewRedisWriter creates a new Redis writer
func NewRedisWriter(client *redis.Client) *RedisWriter {
	return &RedisWriter{
		client: client,
	}
}

// RecapKey is the cache key a recap snapshot is stored under
func RecapKey(sportKey, gameID string) string {
	return fmt.Sprintf("recap:%s:%s", sportKey, gameID)
}

// WriteRecap stores a normalized recap snapshot
func (w *RedisWriter) WriteRecap(ctx context.Context, recap *models.GameRecap) error {
	key := RecapKey(recap.SportKey, recap.GameID)

	data, err := json.Marshal(recap)
	if err != nil {
		return fmt.Errorf("marshaling recap: %w", err)
	}

	return w.client.Set(ctx, key, data, RecapTTL).Err()
}

// ReadRecap retrieves a recap snapshot from Redis
func (w *RedisWriter) ReadRecap(ctx context.Context, sportKey, gameID string) (*models.GameRecap, error) {
	key := RecapKey(sportKey, gameID)

	data, err := w.client.Get(ctx, key).Result()
	if err != nil {
		return nil, err
	}

	var recap models.GameRecap
	if err := json.Unmarshal([]byte(data), &recap); err != nil {
		return nil, fmt.Errorf("unmarshaling recap: %w", err)
	}

	return &recap, nil
}
