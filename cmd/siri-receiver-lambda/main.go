// Command siri-receiver-lambda forwards SIRI notifications delivered as
// {"bodyXml": "..."} Lambda events. Configuration comes from SIRI_RELAY_*
// environment variables; the sink defaults to kinesis.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/theoremus-urban-solutions/siri-relay/config"
	"github.com/theoremus-urban-solutions/siri-relay/formatter"
	"github.com/theoremus-urban-solutions/siri-relay/internal/logging"
	"github.com/theoremus-urban-solutions/siri-relay/notification"
	"github.com/theoremus-urban-solutions/siri-relay/sink"
)

func main() {
	if os.Getenv(config.EnvPrefix+"_SINK_KIND") == "" {
		_ = os.Setenv(config.EnvPrefix+"_SINK_KIND", config.SinkKinesis)
	}
	cfg, err := config.LoadAppConfig("")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger := logging.InitLogging(cfg.Logging.Level, "json")

	h, err := newHandler(context.Background(), cfg, logger)
	if err != nil {
		logger.Error("cold start failed", "error", err)
		os.Exit(1)
	}
	lambda.Start(h.HandleEvent)
}

// newHandler builds the handler once per execution environment; the sink client is
// reused across invocations.
func newHandler(ctx context.Context, cfg *config.AppConfig, logger *slog.Logger) (*notification.Handler, error) {
	pub, err := sink.New(ctx, cfg.Sink, cfg.Receiver.Stream, logger)
	if err != nil {
		return nil, fmt.Errorf("create sink: %w", err)
	}
	codec, err := formatter.NewCodec(cfg.Receiver.Codec)
	if err != nil {
		return nil, err
	}
	return notification.NewHandler(pub, cfg.Receiver.Stream,
		notification.WithCodec(codec),
		notification.WithClassifier(notification.NewClassifier(cfg.Receiver.ExcludedTypes...)),
		notification.WithLogger(logger),
	), nil
}
