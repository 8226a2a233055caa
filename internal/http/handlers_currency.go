package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"adspaces/internal/currency"
	applog "adspaces/internal/log"
)

type currencyProfile struct {
	Code   string `json:"code"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

type currencyResponse struct {
	Active    string            `json:"active"`
	Available []currencyProfile `json:"available"`
}

type setCurrencyRequest struct {
	Code string `json:"code"`
}

// handleCurrency serves the display-currency preference.
// GET returns the active code and the registered profiles; PUT selects a
// new one.
func (s *Server) handleCurrency(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.handleGetCurrency(w, r)
	case http.MethodPut:
		s.handleSetCurrency(w, r)
	default:
		w.Header().Set("Allow", "GET, PUT")
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (s *Server) handleGetCurrency(w http.ResponseWriter, r *http.Request) {
	pref := s.preference(r.Context())
	writeJSON(w, http.StatusOK, currencyResponse{
		Active:    pref.Active().Code,
		Available: availableProfiles(s.registry),
	})
}

func (s *Server) handleSetCurrency(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := applog.FromContext(ctx)

	var req setCurrencyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "request body must be JSON with a code field")
		return
	}
	code := strings.ToUpper(sanitizeInput(req.Code))
	if code == "" {
		writeError(w, http.StatusBadRequest, "code is required")
		return
	}

	pref := s.preference(ctx)
	if err := pref.SetCurrency(ctx, code); err != nil {
		if errors.Is(err, currency.ErrInvalidCurrency) {
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			return
		}
		// The selection applied in memory but did not persist. The
		// response still reflects the new currency.
		logger.WarnContext(ctx, "Display currency persisted with errors",
			applog.FieldError, err, applog.FieldCurrency, code)
	} else {
		logger.InfoContext(ctx, "Display currency changed", applog.FieldCurrency, code)
	}

	writeJSON(w, http.StatusOK, currencyResponse{
		Active:    pref.Active().Code,
		Available: availableProfiles(s.registry),
	})
}

func availableProfiles(registry *currency.Registry) []currencyProfile {
	profiles := registry.Profiles()
	out := make([]currencyProfile, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, currencyProfile{Code: p.Code, Symbol: p.Symbol, Name: p.Name})
	}
	return out
}
