package xmltree

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTree_MarshalJSONKeepsOrder(t *testing.T) {
	tr := NewTree()
	tr.Add(ElementKey("Zulu"), StringValue("z"))
	tr.Add(AttributeKey("version"), StringValue("2.0"))
	tr.Add(ElementKey("Alpha"), NullValue())
	tr.Add(ElementKey("Zulu"), StringValue("zz"))

	out, err := json.Marshal(tr)
	require.NoError(t, err)
	assert.Equal(t, `{"Zulu":["z","zz"],"@version":"2.0","Alpha":null}`, string(out))
}

func TestTree_SetReplacesInPlace(t *testing.T) {
	tr := NewTree()
	tr.Set(ElementKey("A"), StringValue("1"))
	tr.Set(ElementKey("B"), StringValue("2"))
	tr.Set(ElementKey("A"), StringValue("3"))

	require.Equal(t, 2, tr.Len())
	v, _ := tr.Lookup("A")
	assert.Equal(t, "3", v.Str())
	assert.Equal(t, "A", tr.Keys()[0].Name)
}

func TestTree_ElementAndAttributeWithSameName(t *testing.T) {
	tr := NewTree()
	tr.Add(AttributeKey("version"), StringValue("attr"))
	tr.Add(ElementKey("version"), StringValue("elem"))

	require.Equal(t, 2, tr.Len())
	a, _ := tr.Get(AttributeKey("version"))
	e, _ := tr.Lookup("version")
	assert.Equal(t, "attr", a.Str())
	assert.Equal(t, "elem", e.Str())
}

func TestTree_Equal(t *testing.T) {
	build := func(order ...string) *Tree {
		tr := NewTree()
		for _, n := range order {
			tr.Add(ElementKey(n), StringValue(n))
		}
		return tr
	}
	assert.True(t, build("a", "b").Equal(build("a", "b")))
	assert.False(t, build("a", "b").Equal(build("b", "a")))
	assert.False(t, build("a").Equal(build("a", "b")))
	assert.True(t, NewTree().Equal(nil))
}

func TestTree_Interface(t *testing.T) {
	inner := NewTree()
	inner.Add(AttributeKey("id"), StringValue("7"))
	inner.Add(ElementKey("Ref"), StringValue("RUT:Line:1"))

	tr := NewTree()
	tr.Add(ElementKey("Inner"), TreeValue(inner))
	tr.Add(ElementKey("List"), ListValue(StringValue("a"), NullValue()))

	assert.Equal(t, map[string]any{
		"Inner": map[string]any{"@id": "7", "Ref": "RUT:Line:1"},
		"List":  []any{"a", nil},
	}, tr.Interface())
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "mapping", Mapping.String())
	assert.Equal(t, "sequence", Sequence.String())
}
