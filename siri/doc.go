// Package siri defines SIRI (Service Interface for Real-time Information) names and the
// request types the relay sends.
//
// SIRI is a European standard (CEN/TS 15531) for real-time public transport information.
// Inbound notifications are never decoded into typed structs; they go through the generic
// xmltree decoder and are only inspected by element name. This package therefore holds:
//
//   - envelope and notification element names (Siri, HeartbeatNotification, ...)
//   - the SubscriptionRequest document posted to the Entur subscription endpoint
//
// Subscription types carry XML struct tags and are serialized with encoding/xml.
package siri
