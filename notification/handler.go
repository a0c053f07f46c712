package notification

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/theoremus-urban-solutions/siri-relay/formatter"
	"github.com/theoremus-urban-solutions/siri-relay/metrics"
	"github.com/theoremus-urban-solutions/siri-relay/sink"
	"github.com/theoremus-urban-solutions/siri-relay/utils"
	"github.com/theoremus-urban-solutions/siri-relay/xmltree"
)

// AckBody is the body returned for every accepted notification.
const AckBody = "Siri data received"

// Event is the serverless invocation input.
type Event struct {
	BodyXML string `json:"bodyXml"`
}

// Result is returned for every notification that could be parsed, whether or not it
// was forwarded.
type Result struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}

// Accepted is the fixed success result.
func Accepted() Result {
	return Result{StatusCode: http.StatusOK, Body: AckBody}
}

// Handler runs the receive pipeline for one notification at a time. It holds no
// per-notification state and is safe for concurrent use.
type Handler struct {
	publisher  sink.Publisher
	codec      formatter.Codec
	classifier *Classifier
	stream     string
	logger     *slog.Logger
	now        func() time.Time

	lastReceived  atomic.Int64
	lastForwarded atomic.Int64
}

// Option customizes a Handler.
type Option func(*Handler)

// WithCodec sets the payload codec. The default is canonical JSON.
func WithCodec(c formatter.Codec) Option {
	return func(h *Handler) { h.codec = c }
}

// WithClassifier replaces the default heartbeat-only classifier.
func WithClassifier(c *Classifier) Option {
	return func(h *Handler) { h.classifier = c }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(h *Handler) { h.logger = l }
}

// WithClock sets the clock used for partition keys.
func WithClock(now func() time.Time) Option {
	return func(h *Handler) { h.now = now }
}

func NewHandler(publisher sink.Publisher, stream string, opts ...Option) *Handler {
	h := &Handler{
		publisher:  publisher,
		codec:      formatter.JSONCodec{},
		classifier: NewClassifier(),
		stream:     stream,
		logger:     slog.Default(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Handle parses, flattens, classifies and, when allowed, publishes one notification.
// raw is UTF-8 text. Errors are *MalformedInputError or *PublishError; otherwise the
// result is always Accepted().
func (h *Handler) Handle(ctx context.Context, raw string) (Result, error) {
	metrics.NotificationBytesTotal.Add(float64(len(raw)))

	tree, err := Parse(raw)
	if err != nil {
		return h.reject(ctx, err, len(raw))
	}
	return h.forward(ctx, tree)
}

// HandleDocument is Handle for a notification received as bytes, such as an HTTP
// request body; a non-UTF-8 document is decoded through its declared charset.
func (h *Handler) HandleDocument(ctx context.Context, body []byte) (Result, error) {
	metrics.NotificationBytesTotal.Add(float64(len(body)))

	tree, err := ParseDocument(body)
	if err != nil {
		return h.reject(ctx, err, len(body))
	}
	return h.forward(ctx, tree)
}

func (h *Handler) reject(ctx context.Context, err error, size int) (Result, error) {
	metrics.NotificationsTotal.WithLabelValues(metrics.OutcomeMalformed).Inc()
	h.logger.WarnContext(ctx, "rejecting notification", "error", err, "bytes", size)
	return Result{}, err
}

func (h *Handler) forward(ctx context.Context, tree *xmltree.Tree) (Result, error) {
	h.lastReceived.Store(h.now().Unix())
	rec := Flatten(tree)
	h.logger.DebugContext(ctx, "notification record", "record", string(formatter.BuildJSON(rec)))

	if rec.Len() == 0 {
		metrics.NotificationsTotal.WithLabelValues(metrics.OutcomeEmpty).Inc()
		h.logger.WarnContext(ctx, "notification has no Siri envelope, nothing to forward")
		return Accepted(), nil
	}
	if !h.classifier.Allow(rec) {
		metrics.NotificationsTotal.WithLabelValues(metrics.OutcomeDropped).Inc()
		h.logger.DebugContext(ctx, "notification dropped", "types", recordTypes(rec))
		return Accepted(), nil
	}

	payload, err := h.codec.Encode(rec)
	if err != nil {
		metrics.NotificationsTotal.WithLabelValues(metrics.OutcomePublishFailed).Inc()
		return Result{}, &PublishError{Stream: h.stream, Err: err}
	}

	now := h.now()
	key := utils.PartitionKey(now)
	start := time.Now()
	err = h.publisher.Publish(ctx, h.stream, payload, key)
	metrics.PublishDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.NotificationsTotal.WithLabelValues(metrics.OutcomePublishFailed).Inc()
		h.logger.ErrorContext(ctx, "publish failed", "stream", h.stream, "error", err)
		return Result{}, &PublishError{Stream: h.stream, Err: err}
	}

	h.lastForwarded.Store(now.Unix())
	metrics.NotificationsTotal.WithLabelValues(metrics.OutcomeForwarded).Inc()
	h.logger.InfoContext(ctx, "notification forwarded",
		"stream", h.stream,
		"partition_key", key,
		"types", recordTypes(rec),
		"bytes", len(payload),
	)
	return Accepted(), nil
}

// HandleEvent is the serverless entry point.
func (h *Handler) HandleEvent(ctx context.Context, ev Event) (Result, error) {
	return h.Handle(ctx, ev.BodyXML)
}

// LastReceived is the unix time of the last well-formed notification, heartbeats
// included, 0 if none.
func (h *Handler) LastReceived() int64 {
	return h.lastReceived.Load()
}

// LastForwarded is the unix time of the last forwarded notification, 0 if none.
func (h *Handler) LastForwarded() int64 {
	return h.lastForwarded.Load()
}

// IsMalformed reports whether err came from an unparseable notification.
func IsMalformed(err error) bool {
	var m *MalformedInputError
	return errors.As(err, &m)
}

// IsPublishFailure reports whether err came from the sink.
func IsPublishFailure(err error) bool {
	var p *PublishError
	return errors.As(err, &p)
}

// recordTypes lists the top-level element names of rec, usually the delivery types.
func recordTypes(rec *xmltree.Tree) []string {
	keys := rec.Keys()
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		out = append(out, k.Name)
	}
	return out
}
