// Package subscription sends SIRI subscription requests to a producer.
//
// The producer (Entur's Anshar for Norwegian data) answers with a
// SubscriptionResponse and then pushes deliveries and heartbeats to the
// ConsumerAddress given in the request. Requests are sent once; renewing a
// subscription is left to whoever schedules the subscriber.
package subscription
