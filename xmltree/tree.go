package xmltree

import (
	"bytes"
)

// Role tells what part of the XML document a key was decoded from.
type Role uint8

const (
	Element Role = iota
	Attribute
	Text
)

// TextName is the key name used for the character data of mixed-content elements.
const TextName = "text"

// Key identifies an entry of a Tree.
type Key struct {
	Name string
	Role Role
}

// ElementKey returns the key of a child element called name.
func ElementKey(name string) Key { return Key{Name: name, Role: Element} }

// AttributeKey returns the key of an attribute called name.
func AttributeKey(name string) Key { return Key{Name: name, Role: Attribute} }

// IsAttribute reports whether k was decoded from an attribute.
func (k Key) IsAttribute() bool { return k.Role == Attribute }

// Label is the key as it appears in the JSON rendering.
func (k Key) Label() string {
	switch k.Role {
	case Attribute:
		return "@" + k.Name
	case Text:
		return "#" + TextName
	default:
		return k.Name
	}
}

// Entry is a single key/value pair of a Tree.
type Entry struct {
	Key   Key
	Value Value
}

// Tree is an insertion-ordered mapping from Key to Value.
// The zero value is not usable; create trees with NewTree.
type Tree struct {
	entries []Entry
	index   map[Key]int
}

func NewTree() *Tree {
	return &Tree{index: map[Key]int{}}
}

// Add inserts v under k. A second value for an existing key turns the entry into a
// Sequence that stays at the position of the first occurrence.
func (t *Tree) Add(k Key, v Value) {
	i, ok := t.index[k]
	if !ok {
		t.index[k] = len(t.entries)
		t.entries = append(t.entries, Entry{Key: k, Value: v})
		return
	}
	cur := t.entries[i].Value
	if cur.kind == Sequence {
		cur.items = append(cur.items, v)
		t.entries[i].Value = cur
		return
	}
	t.entries[i].Value = ListValue(cur, v)
}

// Set stores v under k, replacing any previous value in place.
func (t *Tree) Set(k Key, v Value) {
	if i, ok := t.index[k]; ok {
		t.entries[i].Value = v
		return
	}
	t.index[k] = len(t.entries)
	t.entries = append(t.entries, Entry{Key: k, Value: v})
}

func (t *Tree) Get(k Key) (Value, bool) {
	if t == nil {
		return Value{}, false
	}
	i, ok := t.index[k]
	if !ok {
		return Value{}, false
	}
	return t.entries[i].Value, true
}

// Lookup returns the value of the child element called name.
func (t *Tree) Lookup(name string) (Value, bool) {
	return t.Get(ElementKey(name))
}

// Has reports whether t has a child element called name.
func (t *Tree) Has(name string) bool {
	_, ok := t.Lookup(name)
	return ok
}

func (t *Tree) Len() int {
	if t == nil {
		return 0
	}
	return len(t.entries)
}

// Entries returns the entries of t in insertion order.
func (t *Tree) Entries() []Entry {
	if t == nil {
		return nil
	}
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Keys returns the keys of t in insertion order.
func (t *Tree) Keys() []Key {
	if t == nil {
		return nil
	}
	out := make([]Key, len(t.entries))
	for i, e := range t.entries {
		out[i] = e.Key
	}
	return out
}

// Equal reports whether both trees hold the same entries in the same order.
func (t *Tree) Equal(o *Tree) bool {
	if t.Len() != o.Len() {
		return false
	}
	for i := 0; i < t.Len(); i++ {
		a, b := t.entries[i], o.entries[i]
		if a.Key != b.Key || !a.Value.Equal(b.Value) {
			return false
		}
	}
	return true
}

// Interface converts t to a map keyed by Key.Label. Order is lost.
func (t *Tree) Interface() map[string]any {
	out := make(map[string]any, t.Len())
	if t == nil {
		return out
	}
	for _, e := range t.entries {
		out[e.Key.Label()] = e.Value.Interface()
	}
	return out
}

// MarshalJSON renders t as a JSON object whose members follow insertion order.
func (t *Tree) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := t.writeJSON(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (t *Tree) writeJSON(buf *bytes.Buffer) error {
	buf.WriteByte('{')
	if t != nil {
		for i, e := range t.entries {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSONString(buf, e.Key.Label()); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := e.Value.writeJSON(buf); err != nil {
				return err
			}
		}
	}
	buf.WriteByte('}')
	return nil
}
