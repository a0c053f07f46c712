package siri

import (
	"encoding/xml"
)

// Header is the XML declaration written before outgoing documents.
const Header = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` + "\n"

// SubscriptionDocument is the Siri envelope carrying a SubscriptionRequest.
type SubscriptionDocument struct {
	XMLName             xml.Name            `xml:"Siri"`
	Version             string              `xml:"version,attr"`
	Xmlns               string              `xml:"xmlns,attr"`
	XmlnsNs2            string              `xml:"xmlns:ns2,attr"`
	XmlnsNs3            string              `xml:"xmlns:ns3,attr"`
	XmlnsNs4            string              `xml:"xmlns:ns4,attr"`
	SubscriptionRequest SubscriptionRequest `xml:"SubscriptionRequest"`
}

// NewSubscriptionDocument wraps req in an envelope with the standard namespace set.
func NewSubscriptionDocument(req SubscriptionRequest) SubscriptionDocument {
	return SubscriptionDocument{
		Version:             Version,
		Xmlns:               NamespaceSiri,
		XmlnsNs2:            NamespaceACSB,
		XmlnsNs3:            NamespaceIFOPT,
		XmlnsNs4:            NamespaceDatex2,
		SubscriptionRequest: req,
	}
}

// SubscriptionRequest asks a producer to push deliveries to ConsumerAddress.
// Exactly one of the typed subscription requests is expected to be set.
type SubscriptionRequest struct {
	RequestTimestamp                      string                                 `xml:"RequestTimestamp"`
	RequestorRef                          string                                 `xml:"RequestorRef"`
	MessageIdentifier                     string                                 `xml:"MessageIdentifier"`
	ConsumerAddress                       string                                 `xml:"ConsumerAddress"`
	SubscriptionContext                   SubscriptionContext                    `xml:"SubscriptionContext"`
	VehicleMonitoringSubscriptionRequest  *VehicleMonitoringSubscriptionRequest  `xml:"VehicleMonitoringSubscriptionRequest,omitempty"`
	EstimatedTimetableSubscriptionRequest *EstimatedTimetableSubscriptionRequest `xml:"EstimatedTimetableSubscriptionRequest,omitempty"`
}

// SubscriptionContext holds settings shared by all subscriptions of a request.
type SubscriptionContext struct {
	HeartbeatInterval string `xml:"HeartbeatInterval"` // ISO 8601 duration, e.g. PT30S
}

// VehicleMonitoringSubscriptionRequest subscribes to SIRI-VM deliveries.
type VehicleMonitoringSubscriptionRequest struct {
	SubscriberRef            string                   `xml:"SubscriberRef"`
	SubscriptionIdentifier   string                   `xml:"SubscriptionIdentifier"`
	InitialTerminationTime   string                   `xml:"InitialTerminationTime"`
	VehicleMonitoringRequest VehicleMonitoringRequest `xml:"VehicleMonitoringRequest"`
}

// VehicleMonitoringRequest describes the SIRI-VM data wanted.
type VehicleMonitoringRequest struct {
	Version           string `xml:"version,attr"`
	RequestTimestamp  string `xml:"RequestTimestamp"`
	MessageIdentifier string `xml:"MessageIdentifier"`
	PreviewInterval   string `xml:"PreviewInterval"`
}

// EstimatedTimetableSubscriptionRequest subscribes to SIRI-ET deliveries.
type EstimatedTimetableSubscriptionRequest struct {
	SubscriberRef             string                    `xml:"SubscriberRef"`
	SubscriptionIdentifier    string                    `xml:"SubscriptionIdentifier"`
	InitialTerminationTime    string                    `xml:"InitialTerminationTime"`
	EstimatedTimetableRequest EstimatedTimetableRequest `xml:"EstimatedTimetableRequest"`
}

// EstimatedTimetableRequest describes the SIRI-ET data wanted.
type EstimatedTimetableRequest struct {
	Version           string `xml:"version,attr"`
	RequestTimestamp  string `xml:"RequestTimestamp"`
	MessageIdentifier string `xml:"MessageIdentifier"`
	PreviewInterval   string `xml:"PreviewInterval"`
}

// Marshal serializes the document with the XML declaration prepended.
func (d SubscriptionDocument) Marshal() ([]byte, error) {
	body, err := xml.MarshalIndent(d, "", "    ")
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, len(Header)+len(body))
	out = append(out, Header...)
	return append(out, body...), nil
}
