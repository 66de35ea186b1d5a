package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"medtrack/internal/contextutil"
	"medtrack/internal/markdown"
	"medtrack/internal/medication"
	"medtrack/internal/service"
)

// MedicationHandler serves the medication collection.
type MedicationHandler struct {
	medications service.MedicationService
}

// NewMedicationHandler creates a new MedicationHandler.
func NewMedicationHandler(medications service.MedicationService) *MedicationHandler {
	return &MedicationHandler{medications: medications}
}

// MedicationRequest is the body of create and update requests.
type MedicationRequest struct {
	Name        string `json:"name"`
	StartDate   string `json:"start_date"`
	Time        string `json:"time"`
	Frequency   string `json:"frequency,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
	Description string `json:"description,omitempty"`
}

// Draft converts the request to a draft. An empty frequency means daily.
func (req MedicationRequest) Draft() medication.Draft {
	d := medication.NewDraft()
	d.Name = req.Name
	d.StartDate = req.StartDate
	d.Time = req.Time
	if req.Frequency != "" {
		d.Frequency = medication.Frequency(req.Frequency)
	}
	d.EndDate = req.EndDate
	d.Description = req.Description
	return d
}

// MedicationResponse is a medication as returned by the API.
type MedicationResponse struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	StartDate       string `json:"start_date"`
	Time            string `json:"time"`
	Frequency       string `json:"frequency"`
	FrequencyLabel  string `json:"frequency_label"`
	EndDate         string `json:"end_date"`
	Description     string `json:"description"`
	DescriptionHTML string `json:"description_html"`
}

// CreateResponse carries the id assigned to a new medication.
type CreateResponse struct {
	ID int64 `json:"id"`
}

// NewMedicationResponse converts a record, rendering its description to HTML.
func NewMedicationResponse(r medication.Record) (MedicationResponse, error) {
	html, err := markdown.HTML(r.Description)
	return MedicationResponse{
		ID:              r.ID,
		Name:            r.Name,
		StartDate:       r.StartDate,
		Time:            r.Time,
		Frequency:       string(r.Frequency),
		FrequencyLabel:  r.Frequency.Label(),
		EndDate:         r.EndDate,
		Description:     r.Description,
		DescriptionHTML: html,
	}, err
}

// NewMedicationResponses converts a list of records. Description rendering
// failures are logged by the caller and leave description_html empty.
func NewMedicationResponses(records []medication.Record) ([]MedicationResponse, error) {
	out := make([]MedicationResponse, 0, len(records))
	var firstErr error
	for _, r := range records {
		resp, err := NewMedicationResponse(r)
		if err != nil && firstErr == nil {
			firstErr = err
		}
		out = append(out, resp)
	}
	return out, firstErr
}

// List returns all medications ordered by name.
func (h *MedicationHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	records, err := h.medications.Snapshot(ctx)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to list medications")
		return
	}

	resp, err := NewMedicationResponses(records)
	if err != nil {
		contextutil.LoggerFromContext(ctx).WarnContext(ctx, "failed to render description", "error", err)
	}
	writeJSON(ctx, w, http.StatusOK, resp)
}

// Create adds a medication and returns its id.
func (h *MedicationHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var req MedicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	id, err := h.medications.Create(ctx, req.Draft())
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to create medication")
		return
	}

	writeJSON(ctx, w, http.StatusCreated, CreateResponse{ID: id})
}

// Update replaces the medication named by the {id} URL parameter.
func (h *MedicationHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var req MedicationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.medications.Update(ctx, id, req.Draft()); err != nil {
		handleServiceError(w, ctx, err, "Failed to update medication")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Delete removes the medication named by the {id} URL parameter.
func (h *MedicationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := h.medications.Delete(ctx, id); err != nil {
		handleServiceError(w, ctx, err, "Failed to delete medication")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// parseID reads a positive id from the URL and writes a 400 otherwise.
func parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		contextutil.LoggerFromContext(r.Context()).WarnContext(r.Context(), "invalid medication id", "id", raw)
		writeError(w, http.StatusBadRequest, "Invalid medication id")
		return 0, false
	}
	return id, true
}
