package formatter

import (
	"github.com/theoremus-urban-solutions/siri-relay/xmltree"
)

// JSONCodec writes the canonical text form of a record: a JSON object whose members
// follow document order. Attribute keys are prefixed with "@", text content is "#text".
type JSONCodec struct{}

func (JSONCodec) Name() string        { return "json" }
func (JSONCodec) ContentType() string { return "application/json" }

func (JSONCodec) Encode(rec *xmltree.Tree) ([]byte, error) {
	if rec == nil {
		rec = xmltree.NewTree()
	}
	return rec.MarshalJSON()
}

// BuildJSON returns the canonical JSON of rec, or "{}" if it cannot be rendered.
func BuildJSON(rec *xmltree.Tree) []byte {
	b, err := JSONCodec{}.Encode(rec)
	if err != nil {
		return []byte("{}")
	}
	return b
}
