// Package sink forwards encoded SIRI records to a streaming backend.
//
// Every backend implements Publisher. A publish call maps the stream key, payload and
// partition key onto the backend's own model:
//
//   - kinesis: PutRecord(StreamName, Data, PartitionKey)
//   - nats: JetStream publish on subject <stream>, partition key in a header
//   - redis: XADD <stream> with payload and partition_key fields
//   - opensearch: index the payload into index <stream>, routed by partition key
//   - log: one log line per record, for local runs
//
// Publishers make a single attempt; retries are left to the backend client or runtime.
package sink
