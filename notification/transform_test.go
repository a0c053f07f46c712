package notification

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theoremus-urban-solutions/siri-relay/internal/testutil"
	"github.com/theoremus-urban-solutions/siri-relay/xmltree"
)

func TestParse_Malformed(t *testing.T) {
	_, err := Parse(testutil.LoadSiri(t, "malformed.xml"))
	require.Error(t, err)

	var malformed *MalformedInputError
	require.True(t, errors.As(err, &malformed))
	assert.NotNil(t, malformed.Unwrap())
	assert.Contains(t, err.Error(), "malformed SIRI notification")
}

func TestFlatten_DropsEnvelopeAttributes(t *testing.T) {
	tree, err := Parse(testutil.LoadSiri(t, "vm_delivery.xml"))
	require.NoError(t, err)

	rec := Flatten(tree)
	require.Equal(t, 1, rec.Len())
	for _, k := range rec.Keys() {
		assert.False(t, k.IsAttribute(), "attribute %q leaked into record", k.Name)
	}

	sd, ok := rec.Lookup("ServiceDelivery")
	require.True(t, ok)
	vmd, ok := sd.Tree().Lookup("VehicleMonitoringDelivery")
	require.True(t, ok)

	// only the envelope level is filtered
	version, ok := vmd.Tree().Get(xmltree.AttributeKey("version"))
	require.True(t, ok)
	assert.Equal(t, "2.0", version.Str())

	activities, _ := vmd.Tree().Lookup("VehicleActivity")
	assert.Len(t, activities.Items(), 2)
}

func TestFlatten_KeepsOrder(t *testing.T) {
	tree, err := Parse(`<Siri a="1"><Zeta/><Alpha>x</Alpha><Mid b="2"><X/></Mid></Siri>`)
	require.NoError(t, err)

	rec := Flatten(tree)
	keys := rec.Keys()
	require.Len(t, keys, 3)
	assert.Equal(t, "Zeta", keys[0].Name)
	assert.Equal(t, "Alpha", keys[1].Name)
	assert.Equal(t, "Mid", keys[2].Name)
}

func TestFlatten_NoEnvelope(t *testing.T) {
	cases := map[string]string{
		"other root":      testutil.LoadSiri(t, "no_envelope.xml"),
		"lowercase root":  `<siri><HeartbeatNotification/></siri>`,
		"empty envelope":  `<Siri/>`,
		"text envelope":   `<Siri>hello</Siri>`,
		"attributes only": `<Siri version="2.0" xmlns="http://www.siri.org.uk/siri"/>`,
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			tree, err := Parse(input)
			require.NoError(t, err)

			rec := Flatten(tree)
			assert.Equal(t, 0, rec.Len())
			assert.True(t, NewClassifier().Allow(rec))
		})
	}
	assert.Equal(t, 0, Flatten(nil).Len())
}

func TestFlatten_Idempotent(t *testing.T) {
	raw := testutil.LoadSiri(t, "et_delivery.xml")

	first, err := Parse(raw)
	require.NoError(t, err)
	second, err := Parse(raw)
	require.NoError(t, err)

	assert.True(t, Flatten(first).Equal(Flatten(second)))
}
