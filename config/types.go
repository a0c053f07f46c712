package config

import "time"

// Sink kinds
const (
	SinkLog        = "log"
	SinkKinesis    = "kinesis"
	SinkNATS       = "nats"
	SinkRedis      = "redis"
	SinkOpenSearch = "opensearch"
)

// Payload codecs
const (
	CodecJSON     = "json"
	CodecProtobuf = "protobuf"
)

// Subscription types
const (
	SubscriptionVM = "vm"
	SubscriptionET = "et"
)

// ServerConfig contains HTTP receiver configuration
type ServerConfig struct {
	Port         int           `mapstructure:"port" yaml:"port" validate:"gt=0,lte=65535"`
	ReadTimeout  time.Duration `mapstructure:"readTimeout" yaml:"readTimeout" validate:"gte=0"`
	WriteTimeout time.Duration `mapstructure:"writeTimeout" yaml:"writeTimeout" validate:"gte=0"`
	IdleTimeout  time.Duration `mapstructure:"idleTimeout" yaml:"idleTimeout" validate:"gte=0"`
	MaxBodyBytes int64         `mapstructure:"maxBodyBytes" yaml:"maxBodyBytes" validate:"gt=0"`
}

// LoggingConfig contains log level and output format
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" validate:"oneof=debug info warn error"`
	Format string `mapstructure:"format" yaml:"format" validate:"oneof=json text"`
}

// ReceiverConfig controls how inbound notifications are filtered and forwarded
type ReceiverConfig struct {
	Stream        string   `mapstructure:"stream" yaml:"stream"`
	Codec         string   `mapstructure:"codec" yaml:"codec" validate:"oneof=json protobuf"`
	ExcludedTypes []string `mapstructure:"excludedTypes" yaml:"excludedTypes"` // added to HeartbeatNotification
}

// KinesisConfig contains AWS Kinesis settings; credentials come from the default AWS chain
type KinesisConfig struct {
	Region   string `mapstructure:"region" yaml:"region"`
	Endpoint string `mapstructure:"endpoint" yaml:"endpoint" validate:"omitempty,url"`
}

// NATSConfig contains NATS JetStream settings
type NATSConfig struct {
	URL          string        `mapstructure:"url" yaml:"url" validate:"omitempty,url"`
	Name         string        `mapstructure:"name" yaml:"name"`
	Token        string        `mapstructure:"token" yaml:"token"`
	Timeout      time.Duration `mapstructure:"timeout" yaml:"timeout" validate:"gte=0"`
	CreateStream bool          `mapstructure:"createStream" yaml:"createStream"`
	StreamName   string        `mapstructure:"streamName" yaml:"streamName"`
}

// RedisConfig contains Redis stream settings
type RedisConfig struct {
	URL    string `mapstructure:"url" yaml:"url" validate:"omitempty,url"`
	MaxLen int64  `mapstructure:"maxLen" yaml:"maxLen" validate:"gte=0"`
}

// OpenSearchConfig contains OpenSearch indexing settings
type OpenSearchConfig struct {
	URL           string `mapstructure:"url" yaml:"url" validate:"omitempty,url"`
	Username      string `mapstructure:"username" yaml:"username"`
	Password      string `mapstructure:"password" yaml:"password"`
	TLSSkipVerify bool   `mapstructure:"tlsSkipVerify" yaml:"tlsSkipVerify"`
}

// SinkConfig selects the forwarding sink
type SinkConfig struct {
	Kind       string           `mapstructure:"kind" yaml:"kind" validate:"oneof=log kinesis nats redis opensearch"`
	Kinesis    KinesisConfig    `mapstructure:"kinesis" yaml:"kinesis"`
	NATS       NATSConfig       `mapstructure:"nats" yaml:"nats"`
	Redis      RedisConfig      `mapstructure:"redis" yaml:"redis"`
	OpenSearch OpenSearchConfig `mapstructure:"opensearch" yaml:"opensearch"`
}

// SubscriptionConfig describes the subscription request sent to the SIRI producer
type SubscriptionConfig struct {
	URL                    string        `mapstructure:"url" yaml:"url" validate:"required,url"`
	ClientName             string        `mapstructure:"clientName" yaml:"clientName"`
	RequestorRef           string        `mapstructure:"requestorRef" yaml:"requestorRef"`
	ConsumerAddress        string        `mapstructure:"consumerAddress" yaml:"consumerAddress" validate:"omitempty,url"`
	SubscriberRef          string        `mapstructure:"subscriberRef" yaml:"subscriberRef"`
	SubscriptionIdentifier string        `mapstructure:"subscriptionIdentifier" yaml:"subscriptionIdentifier"`
	Type                   string        `mapstructure:"type" yaml:"type" validate:"oneof=vm et"`
	HeartbeatInterval      time.Duration `mapstructure:"heartbeatInterval" yaml:"heartbeatInterval" validate:"gte=0"`
	PreviewInterval        time.Duration `mapstructure:"previewInterval" yaml:"previewInterval" validate:"gte=0"`
	InitialTermination     time.Duration `mapstructure:"initialTermination" yaml:"initialTermination" validate:"gte=0"` // 0 leaves InitialTerminationTime empty
	Timeout                time.Duration `mapstructure:"timeout" yaml:"timeout" validate:"gte=0"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Server       ServerConfig       `mapstructure:"server" yaml:"server"`
	Logging      LoggingConfig      `mapstructure:"logging" yaml:"logging"`
	Receiver     ReceiverConfig     `mapstructure:"receiver" yaml:"receiver"`
	Sink         SinkConfig         `mapstructure:"sink" yaml:"sink"`
	Subscription SubscriptionConfig `mapstructure:"subscription" yaml:"subscription"`
}
