// Package notification turns pushed SIRI notifications into stream records.
//
// A notification goes through four steps: Parse decodes the XML into an
// xmltree.Tree, Flatten descends into the Siri envelope and drops its attributes,
// a Classifier decides whether the record is worth forwarding (heartbeats are not),
// and Handler publishes forwarded records to a sink.Publisher.
package notification
