package xmltree

import (
	"bytes"
	"encoding/json"
)

// Kind identifies which variant a Value holds.
type Kind uint8

const (
	Null Kind = iota
	String
	Mapping
	Sequence
)

func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case String:
		return "string"
	case Mapping:
		return "mapping"
	case Sequence:
		return "sequence"
	default:
		return "unknown"
	}
}

// Value is a decoded XML value: null, a string, a nested Tree or a sequence of values.
type Value struct {
	kind  Kind
	str   string
	tree  *Tree
	items []Value
}

// NullValue returns the value of an empty element.
func NullValue() Value { return Value{kind: Null} }

// StringValue wraps element text or an attribute value.
func StringValue(s string) Value { return Value{kind: String, str: s} }

// TreeValue wraps a nested mapping. A nil tree is treated as an empty one.
func TreeValue(t *Tree) Value {
	if t == nil {
		t = NewTree()
	}
	return Value{kind: Mapping, tree: t}
}

// ListValue wraps repeated sibling values.
func ListValue(items ...Value) Value {
	return Value{kind: Sequence, items: items}
}

func (v Value) Kind() Kind { return v.kind }

// Str returns the string payload; empty for non-String values.
func (v Value) Str() string { return v.str }

// Tree returns the nested mapping, or nil when v is not a Mapping.
func (v Value) Tree() *Tree {
	if v.kind != Mapping {
		return nil
	}
	return v.tree
}

// Items returns the elements of a Sequence, or nil otherwise.
func (v Value) Items() []Value {
	if v.kind != Sequence {
		return nil
	}
	return v.items
}

// Equal reports whether v and o hold structurally equal data.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case Null:
		return true
	case String:
		return v.str == o.str
	case Mapping:
		return v.tree.Equal(o.tree)
	case Sequence:
		if len(v.items) != len(o.items) {
			return false
		}
		for i := range v.items {
			if !v.items[i].Equal(o.items[i]) {
				return false
			}
		}
		return true
	}
	return false
}

// Interface converts v to plain Go values: nil, string, map[string]any or []any.
func (v Value) Interface() any {
	switch v.kind {
	case String:
		return v.str
	case Mapping:
		return v.tree.Interface()
	case Sequence:
		out := make([]any, len(v.items))
		for i, item := range v.items {
			out[i] = item.Interface()
		}
		return out
	default:
		return nil
	}
}

// MarshalJSON renders v, keeping mapping key order.
func (v Value) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := v.writeJSON(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (v Value) writeJSON(buf *bytes.Buffer) error {
	switch v.kind {
	case String:
		return writeJSONString(buf, v.str)
	case Mapping:
		return v.tree.writeJSON(buf)
	case Sequence:
		buf.WriteByte('[')
		for i, item := range v.items {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := item.writeJSON(buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil
	default:
		buf.WriteString("null")
		return nil
	}
}

func writeJSONString(buf *bytes.Buffer, s string) error {
	b, err := json.Marshal(s)
	if err != nil {
		return err
	}
	buf.Write(b)
	return nil
}
