package http

import (
	"errors"
	"net/http"

	"adspaces/internal/core"
	"adspaces/internal/expiry"
	applog "adspaces/internal/log"
)

// expirationItem is one feed entry as served to clients. Amounts are not
// included; the feed is about deadlines, not money.
type expirationItem struct {
	Kind          expiry.Kind    `json:"kind"`
	SourceID      int64          `json:"source_id"`
	Label         string         `json:"label"`
	DueAt         core.Date      `json:"due_at"`
	DaysRemaining int            `json:"days_remaining"`
	Urgency       expiry.Urgency `json:"urgency"`
}

type expirationsResponse struct {
	WindowDays int              `json:"window_days"`
	Count      int              `json:"count"`
	Items      []expirationItem `json:"items"`
}

// handleExpirations serves GET /api/expirations?window=N&limit=M.
// limit trims the response to the M most urgent entries; the engine
// itself never truncates.
func (s *Server) handleExpirations(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	windowDays, err := parseIntParam(r, "window", expiry.DefaultWindowDays)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	limit, err := parseIntParam(r, "limit", 0)
	if err != nil || limit < 0 {
		writeError(w, http.StatusBadRequest, "parameter \"limit\" must be a non-negative integer")
		return
	}

	items, err := s.expirations.Upcoming(r.Context(), s.now(), windowDays)
	if err != nil {
		if errors.Is(err, expiry.ErrInvalidWindow) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		applog.FromContext(r.Context()).ErrorContext(r.Context(), "Expiration feed failed",
			applog.FieldError, err, applog.FieldWindowDays, windowDays)
		writeError(w, http.StatusInternalServerError, "failed to collect upcoming expirations")
		return
	}

	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}

	writeJSON(w, http.StatusOK, expirationsResponse{
		WindowDays: windowDays,
		Count:      len(items),
		Items:      toExpirationItems(items),
	})
}

func toExpirationItems(records []expiry.Record) []expirationItem {
	items := make([]expirationItem, 0, len(records))
	for _, rec := range records {
		items = append(items, expirationItem{
			Kind:          rec.Kind,
			SourceID:      rec.SourceID,
			Label:         rec.Label,
			DueAt:         rec.DueAt,
			DaysRemaining: rec.DaysRemaining,
			Urgency:       rec.Urgency,
		})
	}
	return items
}
