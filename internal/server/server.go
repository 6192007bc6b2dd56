// Package server exposes the ledger service over HTTP. Routes and
// response shapes follow the service's original wire contract; error
// kinds map onto HTTP statuses here and nowhere else.
package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/sheikh-saqib/customer-account-ledger/internal/ledger"
)

type Server struct {
	svc    *ledger.Service
	logger *zap.Logger
}

func New(svc *ledger.Service, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{svc: svc, logger: logger}
}

// Router builds the chi router with the standard middleware stack.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/health", s.handleHealth)
	r.Get("/getCustomerAccountIds", s.handleGetCustomerAccountIDs)
	r.Get("/getCustomerAccountData", s.handleGetCustomerAccountData)
	r.Get("/getCurrentLedgerBalances", s.handleGetCurrentLedgerBalances)
	r.Get("/getPreviousLedgerBalance", s.handleGetPreviousLedgerBalance)
	r.Get("/getLedgerBalanceByDate", s.handleGetLedgerBalanceByDate)
	r.Post("/createCustomerAccount", s.handleCreateCustomerAccount)
	r.Post("/updateLedgerBalance", s.handleUpdateLedgerBalance)

	return r
}
