package sink

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/theoremus-urban-solutions/siri-relay/config"
)

// Publisher sends one payload to a stream.
type Publisher interface {
	Publish(ctx context.Context, stream string, payload []byte, partitionKey string) error
	Close() error
}

// New builds the publisher selected by cfg.Kind. stream is the key records will be
// published under; only backends that provision resources at startup use it.
func New(ctx context.Context, cfg config.SinkConfig, stream string, logger *slog.Logger) (Publisher, error) {
	switch cfg.Kind {
	case config.SinkLog, "":
		return NewLogPublisher(logger), nil
	case config.SinkKinesis:
		return NewKinesisPublisher(ctx, cfg.Kinesis)
	case config.SinkNATS:
		return NewNATSPublisher(ctx, cfg.NATS, stream, logger)
	case config.SinkRedis:
		return NewRedisPublisher(ctx, cfg.Redis)
	case config.SinkOpenSearch:
		return NewOpenSearchPublisher(cfg.OpenSearch)
	default:
		return nil, fmt.Errorf("unknown sink kind %q", cfg.Kind)
	}
}
