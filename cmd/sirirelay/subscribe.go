package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/theoremus-urban-solutions/siri-relay/subscription"
)

func newSubscribeCommand(ctx *commandContext) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "subscribe",
		Short: "Send the configured SIRI subscription request",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			client := subscription.NewClient(cfg.Subscription, ctx.logger())

			if dryRun {
				body, err := client.Request()
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(body))
				return nil
			}

			resp, err := client.Subscribe(cmd.Context())
			if resp.Body != "" {
				fmt.Fprintln(cmd.OutOrStdout(), resp.Body)
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "subscription accepted (HTTP %d)\n", resp.StatusCode)
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the request instead of sending it")
	return cmd
}
