package sink

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"

	"github.com/opensearch-project/opensearch-go/v2"
	"github.com/opensearch-project/opensearch-go/v2/opensearchapi"

	"github.com/theoremus-urban-solutions/siri-relay/config"
)

// OpenSearchPublisher indexes each record as a document; the stream key is the index.
// Payloads must be JSON.
type OpenSearchPublisher struct {
	client *opensearch.Client
}

func NewOpenSearchPublisher(cfg config.OpenSearchConfig) (*OpenSearchPublisher, error) {
	transport := &http.Transport{
		TLSClientConfig: &tls.Config{
			InsecureSkipVerify: cfg.TLSSkipVerify,
		},
	}
	client, err := opensearch.NewClient(opensearch.Config{
		Addresses: []string{cfg.URL},
		Username:  cfg.Username,
		Password:  cfg.Password,
		Transport: transport,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create opensearch client: %w", err)
	}
	return &OpenSearchPublisher{client: client}, nil
}

func (p *OpenSearchPublisher) Publish(ctx context.Context, stream string, payload []byte, partitionKey string) error {
	req := opensearchapi.IndexRequest{
		Index:   stream,
		Body:    bytes.NewReader(payload),
		Routing: partitionKey,
	}
	res, err := req.Do(ctx, p.client)
	if err != nil {
		return fmt.Errorf("opensearch index %s: %w", stream, err)
	}
	defer res.Body.Close()

	if res.IsError() {
		body, _ := io.ReadAll(res.Body)
		return fmt.Errorf("opensearch index %s: %s: %s", stream, res.Status(), bytes.TrimSpace(body))
	}
	return nil
}

func (p *OpenSearchPublisher) Close() error { return nil }
