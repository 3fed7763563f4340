package http

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"calcdrills/service"
)

type CalendarHandler struct {
	service *service.CalendarService
	log     *logrus.Logger
}

func NewCalendarHandler(service *service.CalendarService, log *logrus.Logger) *CalendarHandler {
	return &CalendarHandler{service: service, log: log}
}

// SundayStarts lists the months of 1900-1999 that began on a Sunday.
func (h *CalendarHandler) SundayStarts(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.SundayStarts(r.Context())
	if err != nil {
		entryFor(r, h.log).WithError(err).Error("century scan failed")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, r, h.log, result)
}
