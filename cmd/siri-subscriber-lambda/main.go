// Command siri-subscriber-lambda sends the configured SIRI subscription request
// each time it is invoked, typically from a schedule.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"

	"github.com/theoremus-urban-solutions/siri-relay/config"
	"github.com/theoremus-urban-solutions/siri-relay/internal/logging"
	"github.com/theoremus-urban-solutions/siri-relay/notification"
	"github.com/theoremus-urban-solutions/siri-relay/subscription"
)

type subscriber interface {
	Subscribe(ctx context.Context) (subscription.Response, error)
}

func main() {
	cfg, err := config.LoadAppConfig("")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger := logging.InitLogging(cfg.Logging.Level, "json")
	client := subscription.NewClient(cfg.Subscription, logger)

	lambda.Start(func(ctx context.Context) (events.APIGatewayProxyResponse, error) {
		return handle(ctx, client)
	})
}

func handle(ctx context.Context, s subscriber) (events.APIGatewayProxyResponse, error) {
	resp, err := s.Subscribe(ctx)
	if err != nil {
		return events.APIGatewayProxyResponse{StatusCode: resp.StatusCode, Body: resp.Body}, err
	}
	return events.APIGatewayProxyResponse{
		StatusCode: resp.StatusCode,
		Body:       notification.AckBody,
	}, nil
}
