package subscription

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/theoremus-urban-solutions/siri-relay/config"
	"github.com/theoremus-urban-solutions/siri-relay/siri"
	"github.com/theoremus-urban-solutions/siri-relay/utils"
)

// IDFunc generates message identifiers.
type IDFunc func() string

// TimeUUID returns a time-based (version 1) UUID, falling back to a random one when
// the clock sequence cannot be initialised.
func TimeUUID() string {
	id, err := uuid.NewUUID()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// BuildRequest builds the subscription document described by cfg at time now.
func BuildRequest(cfg config.SubscriptionConfig, now time.Time, ids IDFunc) (siri.SubscriptionDocument, error) {
	if ids == nil {
		ids = TimeUUID
	}
	ts := utils.Iso8601(now)

	req := siri.SubscriptionRequest{
		RequestTimestamp:  ts,
		RequestorRef:      cfg.RequestorRef,
		MessageIdentifier: ids(),
		ConsumerAddress:   cfg.ConsumerAddress,
		SubscriptionContext: siri.SubscriptionContext{
			HeartbeatInterval: utils.IsoDuration(cfg.HeartbeatInterval),
		},
	}

	var termination string
	if cfg.InitialTermination > 0 {
		termination = utils.Iso8601(now.Add(cfg.InitialTermination))
	}
	preview := utils.IsoDuration(cfg.PreviewInterval)

	switch cfg.Type {
	case config.SubscriptionVM, "":
		req.VehicleMonitoringSubscriptionRequest = &siri.VehicleMonitoringSubscriptionRequest{
			SubscriberRef:          cfg.SubscriberRef,
			SubscriptionIdentifier: cfg.SubscriptionIdentifier,
			InitialTerminationTime: termination,
			VehicleMonitoringRequest: siri.VehicleMonitoringRequest{
				Version:           siri.Version,
				RequestTimestamp:  ts,
				MessageIdentifier: ids(),
				PreviewInterval:   preview,
			},
		}
	case config.SubscriptionET:
		req.EstimatedTimetableSubscriptionRequest = &siri.EstimatedTimetableSubscriptionRequest{
			SubscriberRef:          cfg.SubscriberRef,
			SubscriptionIdentifier: cfg.SubscriptionIdentifier,
			InitialTerminationTime: termination,
			EstimatedTimetableRequest: siri.EstimatedTimetableRequest{
				Version:           siri.Version,
				RequestTimestamp:  ts,
				MessageIdentifier: ids(),
				PreviewInterval:   preview,
			},
		}
	default:
		return siri.SubscriptionDocument{}, fmt.Errorf("unknown subscription type %q", cfg.Type)
	}

	return siri.NewSubscriptionDocument(req), nil
}
