// Package formatter serializes filtered SIRI records for the forwarding sinks.
//
// This package is organized into:
// - codec.go: Codec interface and lookup by name
// - json.go: canonical JSON serialization (key order preserved)
// - protobuf.go: google.protobuf.Struct serialization for binary sinks
package formatter
