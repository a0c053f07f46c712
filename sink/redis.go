package sink

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/theoremus-urban-solutions/siri-relay/config"
)

// Redis stream entry fields
const (
	FieldPayload      = "payload"
	FieldPartitionKey = "partition_key"
)

// RedisPublisher appends records to a Redis stream with XADD.
type RedisPublisher struct {
	client *redis.Client
	maxLen int64
}

func NewRedisPublisher(ctx context.Context, cfg config.RedisConfig) (*RedisPublisher, error) {
	opt, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis URL: %w", err)
	}
	client := redis.NewClient(opt)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}
	return NewRedisPublisherFromClient(client, cfg.MaxLen), nil
}

// NewRedisPublisherFromClient wraps an existing client. maxLen > 0 trims the stream
// approximately to that many entries.
func NewRedisPublisherFromClient(client *redis.Client, maxLen int64) *RedisPublisher {
	return &RedisPublisher{client: client, maxLen: maxLen}
}

func (p *RedisPublisher) Publish(ctx context.Context, stream string, payload []byte, partitionKey string) error {
	args := &redis.XAddArgs{
		Stream: stream,
		Values: map[string]interface{}{
			FieldPayload:      string(payload),
			FieldPartitionKey: partitionKey,
		},
	}
	if p.maxLen > 0 {
		args.MaxLen = p.maxLen
		args.Approx = true
	}
	if err := p.client.XAdd(ctx, args).Err(); err != nil {
		return fmt.Errorf("redis xadd %s: %w", stream, err)
	}
	return nil
}

func (p *RedisPublisher) Close() error {
	return p.client.Close()
}
