package publisher

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fortuna/services/game-recap-service/pkg/models"
	"github.com/redis/go-redis/v9"
)

// StreamPublisher publishes normalized recaps to Redis streams
type StreamPublisher struct {
	client *redis.Client
}

// NewStreamPublisher creates a new stream publisher
func NewStreamPublisher(client *redis.Client) *StreamPublisher {
	return &StreamPublisher{
		client: client,
	}
}

// StreamKey is the sport-specific stream recaps are published on
func StreamKey(sportKey string) string {
	return fmt.Sprintf("recaps.%s", sportKey)
}

// PublishRecap publishes a recap to the sport-specific stream
func (p *StreamPublisher) PublishRecap(ctx context.Context, recap *models.GameRecap) error {
	streamKey := StreamKey(recap.SportKey)

	data, err := json.Marshal(recap)
	if err != nil {
		return fmt.Errorf("marshaling recap: %w", err)
	}

	return p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: streamKey,
		Values: map[string]interface{}{
			"data":    string(data),
			"game_id": recap.GameID,
			"sport":   recap.SportKey,
		},
	}).Err()
}
