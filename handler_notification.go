package sirirelay

import (
	"errors"
	"io"
	"net/http"

	"github.com/theoremus-urban-solutions/siri-relay/notification"
)

func (s *Server) handleNotification(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeResult(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.logger.Warn("notification too large", "limit", tooLarge.Limit, "remote", r.RemoteAddr)
			writeResult(w, http.StatusRequestEntityTooLarge, "notification too large")
			return
		}
		writeResult(w, http.StatusBadRequest, "failed to read body: "+err.Error())
		return
	}

	res, err := s.handler.HandleDocument(r.Context(), body)
	switch {
	case err == nil:
		writeResult(w, res.StatusCode, res.Body)
	case notification.IsMalformed(err):
		writeResult(w, http.StatusBadRequest, err.Error())
	case notification.IsPublishFailure(err):
		writeResult(w, http.StatusBadGateway, err.Error())
	default:
		s.logger.Error("notification failed", "error", err)
		writeResult(w, http.StatusInternalServerError, err.Error())
	}
}
