package sink

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/kinesis"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theoremus-urban-solutions/siri-relay/config"
)

type fakeKinesis struct {
	inputs []*kinesis.PutRecordInput
	err    error
}

func (f *fakeKinesis) PutRecord(_ context.Context, in *kinesis.PutRecordInput, _ ...func(*kinesis.Options)) (*kinesis.PutRecordOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.inputs = append(f.inputs, in)
	return &kinesis.PutRecordOutput{ShardId: aws.String("shardId-000000000000")}, nil
}

func TestKinesisPublisher_Publish(t *testing.T) {
	fake := &fakeKinesis{}
	p := newKinesisPublisherWithClient(fake)

	err := p.Publish(context.Background(), "siri-stream", []byte(`{"ServiceDelivery":null}`), "20240501100000")
	require.NoError(t, err)
	require.Len(t, fake.inputs, 1)

	in := fake.inputs[0]
	assert.Equal(t, "siri-stream", aws.ToString(in.StreamName))
	assert.Equal(t, "20240501100000", aws.ToString(in.PartitionKey))
	assert.Equal(t, `{"ServiceDelivery":null}`, string(in.Data))
}

func TestKinesisPublisher_Error(t *testing.T) {
	boom := errors.New("ResourceNotFoundException")
	p := newKinesisPublisherWithClient(&fakeKinesis{err: boom})

	err := p.Publish(context.Background(), "missing", []byte("{}"), "k")
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

func TestRedisPublisher_Publish(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	p := NewRedisPublisherFromClient(client, 0)
	defer p.Close()

	ctx := context.Background()
	require.NoError(t, p.Publish(ctx, "siri", []byte(`{"a":1}`), "20240501100000"))
	require.NoError(t, p.Publish(ctx, "siri", []byte(`{"a":2}`), "20240501100001"))

	msgs, err := client.XRange(ctx, "siri", "-", "+").Result()
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, `{"a":1}`, msgs[0].Values[FieldPayload])
	assert.Equal(t, "20240501100000", msgs[0].Values[FieldPartitionKey])
	assert.Equal(t, "20240501100001", msgs[1].Values[FieldPartitionKey])
}

func TestNewRedisPublisher_FromURL(t *testing.T) {
	mr := miniredis.RunT(t)

	p, err := NewRedisPublisher(context.Background(), config.RedisConfig{URL: "redis://" + mr.Addr() + "/0"})
	require.NoError(t, err)
	defer p.Close()

	require.NoError(t, p.Publish(context.Background(), "s", []byte("x"), "k"))
	assert.True(t, mr.Exists("s"))
}

func TestNewRedisPublisher_BadURL(t *testing.T) {
	_, err := NewRedisPublisher(context.Background(), config.RedisConfig{URL: "http://not-redis"})
	assert.Error(t, err)
}

func TestLogPublisher_Publish(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	p := NewLogPublisher(logger)

	require.NoError(t, p.Publish(context.Background(), "siri", []byte(`{"k":"v"}`), "20240501100000"))
	out := buf.String()
	assert.Contains(t, out, "record published")
	assert.Contains(t, out, "stream=siri")
	assert.Contains(t, out, "partition_key=20240501100000")
}

func TestLogPublisher_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := NewLogPublisher(nil).Publish(ctx, "siri", nil, "k")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNew_SelectsBackend(t *testing.T) {
	p, err := New(context.Background(), config.SinkConfig{Kind: config.SinkLog}, "siri", nil)
	require.NoError(t, err)
	assert.IsType(t, &LogPublisher{}, p)

	mr := miniredis.RunT(t)
	p, err = New(context.Background(), config.SinkConfig{
		Kind:  config.SinkRedis,
		Redis: config.RedisConfig{URL: "redis://" + mr.Addr()},
	}, "siri", nil)
	require.NoError(t, err)
	assert.IsType(t, &RedisPublisher{}, p)
	_ = p.Close()

	p, err = New(context.Background(), config.SinkConfig{
		Kind:       config.SinkOpenSearch,
		OpenSearch: config.OpenSearchConfig{URL: "http://localhost:9200"},
	}, "siri", nil)
	require.NoError(t, err)
	assert.IsType(t, &OpenSearchPublisher{}, p)

	_, err = New(context.Background(), config.SinkConfig{Kind: "kafka"}, "siri", nil)
	assert.Error(t, err)
}
