package sirirelay

import (
	"encoding/json"
	"net/http"

	"github.com/theoremus-urban-solutions/siri-relay/notification"
)

// writeResult answers with the same {statusCode, body} shape the serverless
// receiver returns.
func writeResult(w http.ResponseWriter, status int, msg string) {
	b, _ := json.Marshal(notification.Result{StatusCode: status, Body: msg})
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(b)
}
