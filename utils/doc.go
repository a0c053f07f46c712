// Package utils provides small helpers shared by the relay packages.
//
// It contains:
//   - Time formatting (ISO 8601 timestamps and durations)
//   - Partition key derivation for stream sinks
package utils
