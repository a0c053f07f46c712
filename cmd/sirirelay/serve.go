package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	sirirelay "github.com/theoremus-urban-solutions/siri-relay"
	"github.com/theoremus-urban-solutions/siri-relay/formatter"
	"github.com/theoremus-urban-solutions/siri-relay/notification"
	"github.com/theoremus-urban-solutions/siri-relay/sink"
	"github.com/theoremus-urban-solutions/siri-relay/subscription"
)

func newServeCommand(ctx *commandContext) *cobra.Command {
	var subscribe bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP notification receiver",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger := ctx.logger()

			sigCtx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			pub, err := sink.New(sigCtx, cfg.Sink, cfg.Receiver.Stream, logger)
			if err != nil {
				return fmt.Errorf("create sink: %w", err)
			}
			defer func() {
				if err := pub.Close(); err != nil {
					logger.Warn("sink close failed", "error", err)
				}
			}()

			codec, err := formatter.NewCodec(cfg.Receiver.Codec)
			if err != nil {
				return err
			}
			h := notification.NewHandler(pub, cfg.Receiver.Stream,
				notification.WithCodec(codec),
				notification.WithClassifier(notification.NewClassifier(cfg.Receiver.ExcludedTypes...)),
				notification.WithLogger(logger),
			)
			srv := sirirelay.NewServer(cfg.Server, h, logger)

			ln, err := srv.Listen()
			if err != nil {
				return err
			}
			logger.Info("receiver started",
				"sink", cfg.Sink.Kind,
				"stream", cfg.Receiver.Stream,
				"codec", codec.Name(),
			)

			g, gctx := errgroup.WithContext(sigCtx)
			g.Go(func() error {
				return srv.Serve(gctx, ln)
			})
			if subscribe {
				client := subscription.NewClient(cfg.Subscription, logger)
				g.Go(func() error {
					resp, err := client.Subscribe(gctx)
					if err != nil {
						return fmt.Errorf("subscribe: %w", err)
					}
					logger.Info("subscription sent", "status", resp.StatusCode)
					return nil
				})
			}
			if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&subscribe, "subscribe", false, "Send the configured subscription request once the listener is up")
	return cmd
}
