package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes environment overrides, e.g. SIRI_RELAY_SINK_KIND.
const EnvPrefix = "SIRI_RELAY"

// DefaultSubscriptionURL is the Entur subscription endpoint for Ruter (RUT) data.
const DefaultSubscriptionURL = "https://api.entur.org/anshar/1.0/subscribe/RUT"

var searchPaths = []string{"config.yml", "./config/config.yml", "/etc/siri-relay/config.yml"}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 16181)
	v.SetDefault("server.readTimeout", "10s")
	v.SetDefault("server.writeTimeout", "30s")
	v.SetDefault("server.idleTimeout", "60s")
	v.SetDefault("server.maxBodyBytes", 10<<20)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")

	v.SetDefault("receiver.stream", "siri-notifications")
	v.SetDefault("receiver.codec", CodecJSON)
	v.SetDefault("receiver.excludedTypes", []string{})

	v.SetDefault("sink.kind", SinkLog)
	v.SetDefault("sink.kinesis.region", "")
	v.SetDefault("sink.kinesis.endpoint", "")
	v.SetDefault("sink.nats.url", "nats://127.0.0.1:4222")
	v.SetDefault("sink.nats.name", "siri-relay")
	v.SetDefault("sink.nats.token", "")
	v.SetDefault("sink.nats.timeout", "5s")
	v.SetDefault("sink.nats.createStream", false)
	v.SetDefault("sink.nats.streamName", "SIRI")
	v.SetDefault("sink.redis.url", "redis://localhost:6379/0")
	v.SetDefault("sink.redis.maxLen", 0)
	v.SetDefault("sink.opensearch.url", "https://localhost:9200")
	v.SetDefault("sink.opensearch.username", "admin")
	v.SetDefault("sink.opensearch.password", "")
	v.SetDefault("sink.opensearch.tlsSkipVerify", false)

	v.SetDefault("subscription.url", DefaultSubscriptionURL)
	v.SetDefault("subscription.clientName", "")
	v.SetDefault("subscription.requestorRef", "")
	v.SetDefault("subscription.consumerAddress", "")
	v.SetDefault("subscription.subscriberRef", "")
	v.SetDefault("subscription.subscriptionIdentifier", "")
	v.SetDefault("subscription.type", SubscriptionVM)
	v.SetDefault("subscription.heartbeatInterval", "30s")
	v.SetDefault("subscription.previewInterval", "24h")
	v.SetDefault("subscription.initialTermination", "0s")
	v.SetDefault("subscription.timeout", "30s")
}

// LoadAppConfig loads and validates the application configuration.
// An explicit path must exist; with an empty path the search paths are tried and
// defaults are used when none of them exists.
func LoadAppConfig(path string) (*AppConfig, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path == "" {
		path = findConfigFile()
	}
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg AppConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func findConfigFile() string {
	for _, p := range searchPaths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// Validate checks struct tags and sink specific requirements.
func (c *AppConfig) Validate() error {
	v := validator.New()
	if err := v.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	switch c.Sink.Kind {
	case SinkKinesis, SinkRedis, SinkOpenSearch, SinkNATS:
		if c.Receiver.Stream == "" {
			return errors.New("invalid config: receiver.stream is required for sink " + c.Sink.Kind)
		}
	}
	if c.Sink.Kind == SinkNATS && c.Sink.NATS.URL == "" {
		return errors.New("invalid config: sink.nats.url is required")
	}
	if c.Sink.Kind == SinkRedis && c.Sink.Redis.URL == "" {
		return errors.New("invalid config: sink.redis.url is required")
	}
	if c.Sink.Kind == SinkOpenSearch && c.Sink.OpenSearch.URL == "" {
		return errors.New("invalid config: sink.opensearch.url is required")
	}
	// OpenSearch indexes JSON documents only
	if c.Sink.Kind == SinkOpenSearch && c.Receiver.Codec == CodecProtobuf {
		return errors.New("invalid config: sink opensearch requires receiver.codec json")
	}
	return nil
}

// YAML renders the effective configuration.
func (c *AppConfig) YAML() ([]byte, error) {
	return yaml.Marshal(c)
}

// Redacted returns a copy of c with secrets masked, for printing.
func (c *AppConfig) Redacted() AppConfig {
	out := *c
	if out.Sink.OpenSearch.Password != "" {
		out.Sink.OpenSearch.Password = "******"
	}
	if out.Sink.NATS.Token != "" {
		out.Sink.NATS.Token = "******"
	}
	return out
}
