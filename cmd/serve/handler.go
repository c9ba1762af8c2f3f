package serve

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/ccm2020/home-assistant/search"
)

func (s *Server) handleRelated(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxRequestBytes))
	if err != nil {
		s.reject(w, r, 0, codeInvalidFormat, "failed to read request body")
		return
	}

	var instance any
	if err := json.Unmarshal(body, &instance); err != nil {
		s.reject(w, r, 0, codeInvalidFormat, "request body is not valid JSON")
		return
	}
	msgID := messageID(instance)

	if err := s.schema.Validate(instance); err != nil {
		s.reject(w, r, msgID, codeInvalidFormat, err.Error())
		return
	}

	var req relatedRequest
	if err := json.Unmarshal(body, &req); err != nil {
		s.reject(w, r, msgID, codeInvalidFormat, err.Error())
		return
	}

	results, err := s.engine.Search(search.Kind(req.ItemType), req.ItemID)
	if err != nil {
		code, status := codeUnknownError, http.StatusInternalServerError
		if errors.Is(err, search.ErrInvalidKind) {
			code, status = codeInvalidFormat, http.StatusBadRequest
		}
		s.metrics.searchesFailed.WithLabelValues(code).Inc()
		s.logger.Error("related search failed", "error", err, "request_id", requestID(r.Context()))
		s.writeMessage(w, status, failureMessage(req.ID, code, err.Error()))
		return
	}

	s.metrics.relatedItems.WithLabelValues(req.ItemType).Observe(float64(results.Len()))
	s.writeMessage(w, http.StatusOK, successMessage(req.ID, results.Sorted()))
}

func (s *Server) reject(w http.ResponseWriter, r *http.Request, msgID int, code, message string) {
	s.metrics.searchesFailed.WithLabelValues(code).Inc()
	s.logger.Debug("request rejected", "code", code, "message", message, "request_id", requestID(r.Context()))
	s.writeMessage(w, http.StatusBadRequest, failureMessage(msgID, code, message))
}

// messageID extracts the id of a message that failed validation, so the
// error can still be correlated by the caller.
func messageID(instance any) int {
	msg, ok := instance.(map[string]any)
	if !ok {
		return 0
	}
	id, ok := msg["id"].(float64)
	if !ok || id != float64(int(id)) {
		return 0
	}
	return int(id)
}
