package http

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
)

// writeJSON encodes into a buffer first so a failed encode does not leave
// a half written 200 behind.
func writeJSON(w http.ResponseWriter, r *http.Request, log *logrus.Logger, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		entryFor(r, log).WithError(err).Error("error encoding response")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if _, err := buf.WriteTo(w); err != nil {
		entryFor(r, log).WithError(err).Warn("error writing response")
	}
}
