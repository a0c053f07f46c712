package sink

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/kinesis"

	"github.com/theoremus-urban-solutions/siri-relay/config"
)

// kinesisAPI is the part of the Kinesis client the publisher uses.
type kinesisAPI interface {
	PutRecord(ctx context.Context, params *kinesis.PutRecordInput, optFns ...func(*kinesis.Options)) (*kinesis.PutRecordOutput, error)
}

// KinesisPublisher puts records on an AWS Kinesis data stream.
type KinesisPublisher struct {
	client kinesisAPI
}

// NewKinesisPublisher loads AWS credentials from the default chain (environment,
// shared config, Lambda execution role).
func NewKinesisPublisher(ctx context.Context, cfg config.KinesisConfig) (*KinesisPublisher, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if cfg.Region != "" {
		opts = append(opts, awsconfig.WithRegion(cfg.Region))
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	client := kinesis.NewFromConfig(awsCfg, func(o *kinesis.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})
	return &KinesisPublisher{client: client}, nil
}

func newKinesisPublisherWithClient(client kinesisAPI) *KinesisPublisher {
	return &KinesisPublisher{client: client}
}

func (p *KinesisPublisher) Publish(ctx context.Context, stream string, payload []byte, partitionKey string) error {
	_, err := p.client.PutRecord(ctx, &kinesis.PutRecordInput{
		StreamName:   aws.String(stream),
		Data:         payload,
		PartitionKey: aws.String(partitionKey),
	})
	if err != nil {
		return fmt.Errorf("kinesis put record: %w", err)
	}
	return nil
}

func (p *KinesisPublisher) Close() error { return nil }
