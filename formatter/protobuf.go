package formatter

import (
	"fmt"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/theoremus-urban-solutions/siri-relay/xmltree"
)

// ProtobufCodec writes a record as a serialized google.protobuf.Struct.
// Struct fields are a map, so member order is not kept.
type ProtobufCodec struct{}

func (ProtobufCodec) Name() string        { return "protobuf" }
func (ProtobufCodec) ContentType() string { return "application/x-protobuf" }

func (ProtobufCodec) Encode(rec *xmltree.Tree) ([]byte, error) {
	s, err := structpb.NewStruct(rec.Interface())
	if err != nil {
		return nil, fmt.Errorf("build struct: %w", err)
	}
	b, err := proto.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("marshal struct: %w", err)
	}
	return b, nil
}
