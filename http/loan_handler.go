package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"calcdrills/domain"
	"calcdrills/service"
)

type solveRequest struct {
	Principal float64 `json:"principal"`
	Rate      float64 `json:"rate"`
	Periods   int     `json:"periods"`
	Epsilon   float64 `json:"epsilon,omitempty"`
}

type LoanHandler struct {
	service *service.LoanService
	log     *logrus.Logger
}

func NewLoanHandler(service *service.LoanService, log *logrus.Logger) *LoanHandler {
	return &LoanHandler{service: service, log: log}
}

func (h *LoanHandler) SolvePayment(w http.ResponseWriter, r *http.Request) {

	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req solveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Epsilon < 0 {
		http.Error(w, service.ErrInvalidEpsilon.Error(), http.StatusBadRequest)
		return
	}

	terms := domain.LoanTerms{Principal: req.Principal, Rate: req.Rate, Periods: req.Periods}
	report, err := h.service.Solve(r.Context(), terms, req.Epsilon)
	if err != nil {
		status := http.StatusBadRequest
		switch {
		case errors.Is(err, service.ErrNoConvergence):
			status = http.StatusUnprocessableEntity
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			status = http.StatusServiceUnavailable
		}
		entryFor(r, h.log).WithError(err).Warn("solve rejected")
		http.Error(w, err.Error(), status)
		return
	}

	writeJSON(w, r, h.log, roundReport(report))
}

func (h *LoanHandler) History(w http.ResponseWriter, r *http.Request) {
	reports, err := h.service.History(r.Context())
	if err != nil {
		entryFor(r, h.log).WithError(err).Error("history lookup failed")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	for i := range reports {
		reports[i] = roundReport(reports[i])
	}
	writeJSON(w, r, h.log, reports)
}

func roundReport(report domain.SolveReport) domain.SolveReport {
	report.BruteForce.Payment = service.RoundPayment(report.BruteForce.Payment)
	report.Bisection.Payment = service.RoundPayment(report.Bisection.Payment)
	return report
}
