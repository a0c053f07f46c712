package sink

import (
	"context"
	"log/slog"
)

// LogPublisher writes records to the logger instead of a stream.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(ctx context.Context, stream string, payload []byte, partitionKey string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p.logger.InfoContext(ctx, "record published",
		"stream", stream,
		"partition_key", partitionKey,
		"bytes", len(payload),
		"payload", string(payload),
	)
	return nil
}

func (p *LogPublisher) Close() error { return nil }
