package subscription

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/theoremus-urban-solutions/siri-relay/config"
	"github.com/theoremus-urban-solutions/siri-relay/metrics"
)

// ClientNameHeader identifies the client to Entur.
const ClientNameHeader = "ET-Client-Name"

// maxResponseBytes caps how much of the producer's answer is kept.
const maxResponseBytes = 1 << 20

// Response is the producer's answer to a subscription request.
type Response struct {
	StatusCode int
	Body       string
}

// Client posts subscription requests. It sends each request once.
type Client struct {
	cfg        config.SubscriptionConfig
	httpClient *http.Client
	logger     *slog.Logger
	now        func() time.Time
	ids        IDFunc
}

func NewClient(cfg config.SubscriptionConfig, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
		now:        time.Now,
		ids:        TimeUUID,
	}
}

// Request builds the subscription document that Subscribe would send now.
func (c *Client) Request() ([]byte, error) {
	doc, err := BuildRequest(c.cfg, c.now(), c.ids)
	if err != nil {
		return nil, err
	}
	return doc.Marshal()
}

// Subscribe sends the subscription request. A non-2xx answer is returned together
// with an error.
func (c *Client) Subscribe(ctx context.Context) (Response, error) {
	body, err := c.Request()
	if err != nil {
		return Response{}, fmt.Errorf("build subscription request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.URL, bytes.NewReader(body))
	if err != nil {
		return Response{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/xml")
	req.Header.Set("Content-Type", "application/xml")
	req.Header.Set(ClientNameHeader, c.cfg.ClientName)

	c.logger.InfoContext(ctx, "sending subscription request",
		"url", c.cfg.URL,
		"type", c.cfg.Type,
		"consumer_address", c.cfg.ConsumerAddress,
	)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.SubscriptionRequestsTotal.WithLabelValues("error").Inc()
		return Response{}, fmt.Errorf("failed to post subscription to %s: %w", c.cfg.URL, err)
	}
	defer func() { _ = resp.Body.Close() }()

	metrics.SubscriptionRequestsTotal.WithLabelValues(strconv.Itoa(resp.StatusCode)).Inc()
	answer, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return Response{StatusCode: resp.StatusCode}, fmt.Errorf("read subscription response: %w", err)
	}
	out := Response{StatusCode: resp.StatusCode, Body: string(answer)}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return out, fmt.Errorf("HTTP %d from %s", resp.StatusCode, c.cfg.URL)
	}
	c.logger.InfoContext(ctx, "subscription accepted", "status", resp.StatusCode)
	return out, nil
}
