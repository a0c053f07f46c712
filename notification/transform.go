package notification

import (
	"bytes"

	"github.com/theoremus-urban-solutions/siri-relay/siri"
	"github.com/theoremus-urban-solutions/siri-relay/xmltree"
)

// Parse decodes raw notification text. raw is UTF-8 whatever encoding its XML
// declaration names. Every decoding failure is a *MalformedInputError.
func Parse(raw string) (*xmltree.Tree, error) {
	tree, err := xmltree.ParseString(raw)
	if err != nil {
		return nil, &MalformedInputError{Err: err}
	}
	return tree, nil
}

// ParseDocument decodes a notification received as bytes, honouring its declared
// charset.
func ParseDocument(body []byte) (*xmltree.Tree, error) {
	tree, err := xmltree.Parse(bytes.NewReader(body))
	if err != nil {
		return nil, &MalformedInputError{Err: err}
	}
	return tree, nil
}

// Flatten returns the children of the Siri envelope without its attributes, in
// document order. A tree without the envelope yields an empty record.
func Flatten(tree *xmltree.Tree) *xmltree.Tree {
	rec := xmltree.NewTree()
	if tree == nil {
		return rec
	}
	env, ok := tree.Lookup(siri.Envelope)
	if !ok || env.Kind() != xmltree.Mapping {
		return rec
	}
	for _, e := range env.Tree().Entries() {
		if e.Key.IsAttribute() {
			continue
		}
		rec.Set(e.Key, e.Value)
	}
	return rec
}
