package notification

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theoremus-urban-solutions/siri-relay/internal/testutil"
	"github.com/theoremus-urban-solutions/siri-relay/siri"
)

func TestClassifier_Allow(t *testing.T) {
	c := NewClassifier()
	cases := []struct {
		fixture string
		want    bool
	}{
		{"heartbeat.xml", false},
		{"vm_delivery.xml", true},
		{"et_delivery.xml", true},
	}
	for _, tc := range cases {
		t.Run(tc.fixture, func(t *testing.T) {
			tree, err := Parse(testutil.LoadSiri(t, tc.fixture))
			require.NoError(t, err)
			assert.Equal(t, tc.want, c.Allow(Flatten(tree)))
		})
	}
}

func TestClassifier_HeartbeatWins(t *testing.T) {
	tree, err := Parse(`<Siri><ServiceDelivery/><HeartbeatNotification/></Siri>`)
	require.NoError(t, err)
	assert.False(t, NewClassifier().Allow(Flatten(tree)))
}

func TestClassifier_AttributeNamedLikeType(t *testing.T) {
	tree, err := Parse(`<Siri><ServiceDelivery HeartbeatNotification="true"/></Siri>`)
	require.NoError(t, err)
	assert.True(t, NewClassifier().Allow(Flatten(tree)))
}

func TestClassifier_ExtraExclusions(t *testing.T) {
	c := NewClassifier(siri.SubscriptionResponse, "")
	assert.Equal(t, []string{siri.HeartbeatNotification, siri.SubscriptionResponse}, c.Excluded())

	tree, err := Parse(`<Siri><SubscriptionResponse><Status>true</Status></SubscriptionResponse></Siri>`)
	require.NoError(t, err)
	assert.False(t, c.Allow(Flatten(tree)))
	assert.True(t, NewClassifier().Allow(Flatten(tree)))
}
