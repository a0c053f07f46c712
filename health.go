package sirirelay

import (
	"encoding/json"
	"net/http"

	"github.com/theoremus-urban-solutions/siri-relay/utils"
)

// healthResponse reports notification liveness. Heartbeats count as received, so a
// subscription delivering only heartbeats still shows a recent last_notification_epoch.
type healthResponse struct {
	Status                string `json:"status"`
	LastNotificationEpoch int64  `json:"last_notification_epoch"`
	LastNotification      string `json:"last_notification,omitempty"`
	LastForwardedEpoch    int64  `json:"last_forwarded_epoch"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	received := s.handler.LastReceived()
	resp := healthResponse{
		Status:                "ok",
		LastNotificationEpoch: received,
		LastForwardedEpoch:    s.handler.LastForwarded(),
	}
	if received > 0 {
		resp.LastNotification = utils.Iso8601FromUnixSeconds(received)
	}
	_ = json.NewEncoder(w).Encode(resp)
}
