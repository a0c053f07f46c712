package formatter

import (
	"fmt"

	"github.com/theoremus-urban-solutions/siri-relay/xmltree"
)

// Codec turns a record into a sink payload.
type Codec interface {
	Name() string
	ContentType() string
	Encode(rec *xmltree.Tree) ([]byte, error)
}

// NewCodec returns the codec registered under name ("json" or "protobuf").
func NewCodec(name string) (Codec, error) {
	switch name {
	case "", "json":
		return JSONCodec{}, nil
	case "protobuf":
		return ProtobufCodec{}, nil
	default:
		return nil, fmt.Errorf("unknown codec %q", name)
	}
}
