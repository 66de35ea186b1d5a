package handlers

import (
	"encoding/json"
	"net/http"

	"medtrack/internal/contextutil"
	"medtrack/internal/service"
)

// ThemeHandler reads and writes the dark mode preference.
type ThemeHandler struct {
	theme service.ThemeService
}

// NewThemeHandler creates a new ThemeHandler.
func NewThemeHandler(theme service.ThemeService) *ThemeHandler {
	return &ThemeHandler{theme: theme}
}

// ThemeBody is the request and response payload of the theme endpoints.
type ThemeBody struct {
	DarkMode *bool `json:"dark_mode"`
}

// Get returns the stored preference.
func (h *ThemeHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	enabled, err := h.theme.DarkMode(ctx)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to read theme")
		return
	}

	writeJSON(ctx, w, http.StatusOK, ThemeBody{DarkMode: &enabled})
}

// Put stores the preference and echoes it back.
func (h *ThemeHandler) Put(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var body ThemeBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.DarkMode == nil {
		logger.WarnContext(ctx, "invalid theme body", "error", err)
		writeError(w, http.StatusBadRequest, "Body must be {\"dark_mode\": true|false}")
		return
	}

	if err := h.theme.SetDarkMode(ctx, *body.DarkMode); err != nil {
		handleServiceError(w, ctx, err, "Failed to save theme")
		return
	}

	writeJSON(ctx, w, http.StatusOK, body)
}
