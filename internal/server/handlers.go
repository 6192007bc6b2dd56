package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"
)

func parseBalance(raw json.RawMessage) (int64, error) {
	s := strings.Trim(strings.TrimSpace(string(raw)), `"`)
	return strconv.ParseInt(s, 10, 64)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleGetCustomerAccountIDs(w http.ResponseWriter, r *http.Request) {
	ids, err := s.svc.ListAccountIDs(r.Context())
	if err != nil {
		s.writeServiceError(w, err)
		return
	}

	out := make([]map[string]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, map[string]string{"customerAccountId": id})
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleGetCustomerAccountData(w http.ResponseWriter, r *http.Request) {
	account, err := s.svc.GetAccount(r.Context(), r.URL.Query().Get("customerAccountId"))
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, account)
}

func (s *Server) handleGetCurrentLedgerBalances(w http.ResponseWriter, r *http.Request) {
	balances, err := s.svc.CurrentBalances(r.Context(), r.URL.Query().Get("customerAccountId"))
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, balances)
}

func (s *Server) handleGetPreviousLedgerBalance(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	ledgerName := q.Get("ledgerName")

	balance, err := s.svc.PreviousBalance(r.Context(), q.Get("customerAccountId"), ledgerName)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{ledgerName: balance})
}

func (s *Server) handleGetLedgerBalanceByDate(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	ledgerName := q.Get("ledgerName")

	entry, err := s.svc.BalanceAsOf(r.Context(), q.Get("customerAccountId"), ledgerName, q.Get("timestamp"))
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		ledgerName:  entry.Balance,
		"timestamp": entry.Timestamp.Format(time.RFC3339Nano),
	})
}

func (s *Server) handleCreateCustomerAccount(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CustomerAccountID string `json:"customerAccountId"`
		FirstName         string `json:"firstName"`
		LastName          string `json:"lastName"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	account, err := s.svc.CreateAccount(r.Context(), req.CustomerAccountID, req.FirstName, req.LastName)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, account)
}

func (s *Server) handleUpdateLedgerBalance(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CustomerAccountID string          `json:"customerAccountId"`
		LedgerName        string          `json:"ledgerName"`
		NewBalance        json.RawMessage `json:"newBalance"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// newBalance may arrive as a JSON number or a numeric string.
	balance, err := parseBalance(req.NewBalance)
	if err != nil {
		writeError(w, http.StatusBadRequest, "newBalance must be an integer")
		return
	}

	entry, err := s.svc.AppendEntry(r.Context(), req.CustomerAccountID, req.LedgerName, balance)
	if err != nil {
		s.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"customerAccountId": req.CustomerAccountID,
		"ledgerName":        req.LedgerName,
		"entry":             entry,
	})
}
