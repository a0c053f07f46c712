package sink

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	"github.com/theoremus-urban-solutions/siri-relay/config"
)

// PartitionKeyHeader carries the partition key on NATS messages.
const PartitionKeyHeader = "Siri-Partition-Key"

// NATSPublisher publishes records to JetStream; the stream key is the subject.
type NATSPublisher struct {
	conn *nats.Conn
	js   jetstream.JetStream
}

// With CreateStream set, a JetStream stream named cfg.StreamName capturing subject is
// created or updated at startup.
func NewNATSPublisher(ctx context.Context, cfg config.NATSConfig, subject string, logger *slog.Logger) (*NATSPublisher, error) {
	if logger == nil {
		logger = slog.Default()
	}
	opts := []nats.Option{
		nats.Name(cfg.Name),
		nats.Timeout(cfg.Timeout),
		nats.MaxReconnects(-1),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("nats disconnected", "error", err)
			}
		}),
		nats.ReconnectHandler(func(_ *nats.Conn) {
			logger.Info("nats reconnected")
		}),
	}
	if cfg.Token != "" {
		opts = append(opts, nats.Token(cfg.Token))
	}

	conn, err := nats.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}
	js, err := jetstream.New(conn)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("create jetstream context: %w", err)
	}

	if cfg.CreateStream {
		_, err := js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
			Name:     cfg.StreamName,
			Subjects: []string{subject},
			Storage:  jetstream.FileStorage,
		})
		if err != nil {
			conn.Close()
			return nil, fmt.Errorf("create stream %s: %w", cfg.StreamName, err)
		}
		logger.Info("jetstream stream ready", "stream", cfg.StreamName)
	}

	return &NATSPublisher{conn: conn, js: js}, nil
}

func (p *NATSPublisher) Publish(ctx context.Context, stream string, payload []byte, partitionKey string) error {
	msg := &nats.Msg{
		Subject: stream,
		Data:    payload,
		Header:  nats.Header{},
	}
	msg.Header.Set(PartitionKeyHeader, partitionKey)

	if _, err := p.js.PublishMsg(ctx, msg); err != nil {
		return fmt.Errorf("jetstream publish %s: %w", stream, err)
	}
	return nil
}

func (p *NATSPublisher) Close() error {
	if p.conn == nil {
		return nil
	}
	return p.conn.Drain()
}
