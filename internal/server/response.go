package server

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/sheikh-saqib/customer-account-ledger/internal/ledgererr"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeServiceError maps a service error kind onto an HTTP status.
func (s *Server) writeServiceError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch ledgererr.KindOf(err) {
	case ledgererr.InvalidInput:
		status = http.StatusBadRequest
	case ledgererr.NotFound, ledgererr.UnknownLedger, ledgererr.NoPriorBalance:
		status = http.StatusNotFound
	case ledgererr.Conflict:
		status = http.StatusConflict
	case ledgererr.StoreUnavailable:
		status = http.StatusServiceUnavailable
		s.logger.Error("store failure", zap.Error(err))
	}
	writeError(w, status, err.Error())
}
