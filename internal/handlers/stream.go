package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"medtrack/internal/contextutil"
	"medtrack/internal/service"
)

// StreamHandler pushes the medication list to the client as Server-Sent Events.
type StreamHandler struct {
	medications service.MedicationService
}

// NewStreamHandler creates a new StreamHandler.
func NewStreamHandler(medications service.MedicationService) *StreamHandler {
	return &StreamHandler{medications: medications}
}

// ServeHTTP sends one event with the full ordered list per store emission
// until the client disconnects.
func (h *StreamHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	flusher, ok := w.(http.Flusher)
	if !ok {
		logger.ErrorContext(ctx, "streaming not supported by response writer")
		writeError(w, http.StatusInternalServerError, "Streaming not supported")
		return
	}

	sub, err := h.medications.Subscribe(ctx)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to subscribe to medications")
		return
	}
	defer sub.Close()

	// Set up Server-Sent Events headers
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	events := 0
	for records := range sub.Updates() {
		resp, err := NewMedicationResponses(records)
		if err != nil {
			logger.WarnContext(ctx, "failed to render description", "error", err)
		}
		payload, err := json.Marshal(resp)
		if err != nil {
			logger.ErrorContext(ctx, "failed to encode event", "error", err)
			return
		}
		if _, err := fmt.Fprintf(w, "data: %s\n\n", payload); err != nil {
			logger.DebugContext(ctx, "client went away", "error", err)
			return
		}
		flusher.Flush()
		events++
	}

	logger.DebugContext(ctx, "stream closed", "events", events)
}
