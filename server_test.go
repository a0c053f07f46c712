package sirirelay

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theoremus-urban-solutions/siri-relay/config"
	"github.com/theoremus-urban-solutions/siri-relay/internal/logging"
	"github.com/theoremus-urban-solutions/siri-relay/internal/testutil"
	"github.com/theoremus-urban-solutions/siri-relay/notification"
)

type memPublisher struct {
	mu       sync.Mutex
	payloads [][]byte
	err      error
}

func (p *memPublisher) Publish(_ context.Context, _ string, payload []byte, _ string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.payloads = append(p.payloads, payload)
	return nil
}

func (p *memPublisher) Close() error { return nil }

func newTestServer(t *testing.T, pub *memPublisher) (*Server, *httptest.Server) {
	t.Helper()
	h := notification.NewHandler(pub, "siri", notification.WithLogger(logging.Discard()))
	s := NewServer(config.ServerConfig{Port: 16181, MaxBodyBytes: 64 << 10}, h, logging.Discard())
	ts := httptest.NewServer(s.Routes())
	t.Cleanup(ts.Close)
	return s, ts
}

func postXML(t *testing.T, url, body string) (int, notification.Result) {
	t.Helper()
	resp, err := http.Post(url+NotificationsPath, "application/xml", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	var res notification.Result
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	return resp.StatusCode, res
}

func TestNotification_Forwarded(t *testing.T) {
	pub := &memPublisher{}
	_, ts := newTestServer(t, pub)

	status, res := postXML(t, ts.URL, testutil.LoadSiri(t, "vm_delivery.xml"))
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, notification.Accepted(), res)
	assert.Len(t, pub.payloads, 1)
}

func TestNotification_HeartbeatAccepted(t *testing.T) {
	pub := &memPublisher{}
	_, ts := newTestServer(t, pub)

	status, res := postXML(t, ts.URL, testutil.LoadSiri(t, "heartbeat.xml"))
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Siri data received", res.Body)
	assert.Empty(t, pub.payloads)
}

func TestNotification_Malformed(t *testing.T) {
	pub := &memPublisher{}
	_, ts := newTestServer(t, pub)

	status, res := postXML(t, ts.URL, testutil.LoadSiri(t, "malformed.xml"))
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Contains(t, res.Body, "malformed")
	assert.Empty(t, pub.payloads)
}

func TestNotification_PublishFailure(t *testing.T) {
	pub := &memPublisher{err: errors.New("connection refused")}
	_, ts := newTestServer(t, pub)

	status, res := postXML(t, ts.URL, testutil.LoadSiri(t, "et_delivery.xml"))
	assert.Equal(t, http.StatusBadGateway, status)
	assert.Contains(t, res.Body, "connection refused")
}

func TestNotification_TooLarge(t *testing.T) {
	pub := &memPublisher{}
	_, ts := newTestServer(t, pub)

	big := "<Siri><ServiceDelivery>" + strings.Repeat("x", 128<<10) + "</ServiceDelivery></Siri>"
	status, _ := postXML(t, ts.URL, big)
	assert.Equal(t, http.StatusRequestEntityTooLarge, status)
	assert.Empty(t, pub.payloads)
}

func TestNotification_MethodNotAllowed(t *testing.T) {
	_, ts := newTestServer(t, &memPublisher{})

	resp, err := http.Get(ts.URL + NotificationsPath)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	assert.Equal(t, http.MethodPost, resp.Header.Get("Allow"))
}

func TestHealth(t *testing.T) {
	_, ts := newTestServer(t, &memPublisher{})

	get := func() healthResponse {
		resp, err := http.Get(ts.URL + "/api/health")
		require.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
		var h healthResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&h))
		return h
	}

	h := get()
	assert.Equal(t, "ok", h.Status)
	assert.Zero(t, h.LastNotificationEpoch)
	assert.Empty(t, h.LastNotification)

	postXML(t, ts.URL, testutil.LoadSiri(t, "vm_delivery.xml"))
	h = get()
	assert.NotZero(t, h.LastNotificationEpoch)
	assert.NotEmpty(t, h.LastNotification)
	assert.NotZero(t, h.LastForwardedEpoch)
}

func TestHealth_HeartbeatsKeepNotificationFresh(t *testing.T) {
	_, ts := newTestServer(t, &memPublisher{})

	postXML(t, ts.URL, testutil.LoadSiri(t, "heartbeat.xml"))

	resp, err := http.Get(ts.URL + "/api/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	var h healthResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&h))

	assert.NotZero(t, h.LastNotificationEpoch)
	assert.Zero(t, h.LastForwardedEpoch, "heartbeats are not forwarded")
}

func TestNotification_DeclaredCharsetBody(t *testing.T) {
	pub := &memPublisher{}
	_, ts := newTestServer(t, pub)

	// "Snarøya" in ISO-8859-1
	body := "<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?><Siri><ServiceDelivery><DestinationName>Snar\xf8ya</DestinationName></ServiceDelivery></Siri>"
	status, _ := postXML(t, ts.URL, body)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, pub.payloads, 1)
	assert.JSONEq(t, `{"ServiceDelivery":{"DestinationName":"Snarøya"}}`, string(pub.payloads[0]))
}

func TestMetricsEndpoint(t *testing.T) {
	_, ts := newTestServer(t, &memPublisher{})
	postXML(t, ts.URL, testutil.LoadSiri(t, "heartbeat.xml"))

	resp, err := http.Get(ts.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	b, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(b), "siri_relay_notifications_total")
}

func TestServe_ShutsDownOnCancel(t *testing.T) {
	h := notification.NewHandler(&memPublisher{}, "siri", notification.WithLogger(logging.Discard()))
	s := NewServer(config.ServerConfig{Port: 1, MaxBodyBytes: 1024}, h, logging.Discard())

	ln, err := netListen(t)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/api/health")
	require.NoError(t, err)
	resp.Body.Close()

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func netListen(t *testing.T) (net.Listener, error) {
	t.Helper()
	return net.Listen("tcp", "127.0.0.1:0")
}
