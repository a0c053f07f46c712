package siri

// Envelope is the root element of every SIRI document.
const Envelope = "Siri"

// Version is the SIRI version announced in outgoing requests.
const Version = "2.0"

// Namespaces declared on outgoing documents.
const (
	NamespaceSiri   = "http://www.siri.org.uk/siri"
	NamespaceACSB   = "http://www.ifopt.org.uk/acsb"
	NamespaceIFOPT  = "http://www.ifopt.org.uk/ifopt"
	NamespaceDatex2 = "http://datex2.eu/schema/2_0RC1/2_0"
)

// Notification element names found directly under the envelope.
const (
	HeartbeatNotification              = "HeartbeatNotification"
	ServiceDelivery                    = "ServiceDelivery"
	SubscriptionResponse               = "SubscriptionResponse"
	TerminateSubscriptionResponse      = "TerminateSubscriptionResponse"
	SubscriptionTerminatedNotification = "SubscriptionTerminatedNotification"
	DataReadyNotification              = "DataReadyNotification"
	CheckStatusResponse                = "CheckStatusResponse"
	VehicleMonitoringDelivery          = "VehicleMonitoringDelivery"
	EstimatedTimetableDelivery         = "EstimatedTimetableDelivery"
	SituationExchangeDelivery          = "SituationExchangeDelivery"
)
