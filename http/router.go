package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// NewRouter wires the loan and calendar endpoints. The solve endpoint is
// the only expensive one and sits behind the rate limiter.
func NewRouter(
	loanHandler *LoanHandler,
	calendarHandler *CalendarHandler,
	limiter *RateLimiter,
	log *logrus.Logger,
) *mux.Router {
	r := mux.NewRouter()
	r.Use(RequestLogger(log))

	r.Handle("/loan/solve",
		RateLimitMiddleware(limiter, http.HandlerFunc(loanHandler.SolvePayment)),
	).Methods(http.MethodPost)
	r.HandleFunc("/loan/history", loanHandler.History).Methods(http.MethodGet)
	r.HandleFunc("/calendar/sundays", calendarHandler.SundayStarts).Methods(http.MethodGet)

	return r
}
