package http

import (
	"net/http"

	"adspaces/internal/core"
	"adspaces/internal/currency"
	"adspaces/internal/expiry"
	applog "adspaces/internal/log"
)

const dashboardRevenueMonths = 6

// dashboardMonth carries one month of the revenue chart with amounts
// already converted and formatted in the display currency.
type dashboardMonth struct {
	Year    int    `json:"year"`
	Month   int    `json:"month"`
	Revenue string `json:"revenue"`
	Costs   string `json:"costs"`
	Profit  string `json:"profit"`
}

type dashboardCounts struct {
	Clients     int `json:"clients"`
	Landlords   int `json:"landlords"`
	Structures  int `json:"structures"`
	AdLocations int `json:"ad_locations"`
}

type dashboardResponse struct {
	Currency    string           `json:"currency"`
	Expirations []expirationItem `json:"expirations"`
	Revenue     []dashboardMonth `json:"revenue"`
	Counts      dashboardCounts  `json:"counts"`
}

// handleDashboard serves GET /api/dashboard: the default-window expiration
// feed, the rolling revenue chart, and collection counts in one payload.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	ctx := r.Context()
	logger := applog.FromContext(ctx)
	now := s.now()
	pref := s.preference(ctx)

	upcoming, err := s.expirations.Upcoming(ctx, now, expiry.DefaultWindowDays)
	if err != nil {
		logger.ErrorContext(ctx, "Dashboard expiration feed failed", applog.FieldError, err)
		writeError(w, http.StatusInternalServerError, "failed to build dashboard")
		return
	}

	overview, err := s.revenue.Overview(ctx, now, dashboardRevenueMonths)
	if err != nil {
		logger.ErrorContext(ctx, "Dashboard revenue overview failed", applog.FieldError, err)
		writeError(w, http.StatusInternalServerError, "failed to build dashboard")
		return
	}

	resp := dashboardResponse{
		Currency:    pref.Active().Code,
		Expirations: toExpirationItems(upcoming),
		Revenue:     make([]dashboardMonth, 0, len(overview.Months)),
	}
	for _, m := range overview.Months {
		month, err := formatDashboardMonth(pref, m)
		if err != nil {
			logger.ErrorContext(ctx, "Dashboard amount formatting failed", applog.FieldError, err)
			writeError(w, http.StatusInternalServerError, "failed to build dashboard")
			return
		}
		resp.Revenue = append(resp.Revenue, month)
	}

	counts, err := s.collectionCounts(r)
	if err != nil {
		logger.ErrorContext(ctx, "Dashboard counts failed", applog.FieldError, err)
		writeError(w, http.StatusInternalServerError, "failed to build dashboard")
		return
	}
	resp.Counts = counts

	writeJSON(w, http.StatusOK, resp)
}

// formatDashboardMonth renders one revenue month in the display currency.
func formatDashboardMonth(pref *currency.Preference, m core.MonthRevenue) (dashboardMonth, error) {
	revenue, err := pref.Format(m.Revenue.Cents, "")
	if err != nil {
		return dashboardMonth{}, err
	}
	costs, err := pref.Format(m.Costs.Cents, "")
	if err != nil {
		return dashboardMonth{}, err
	}
	profit, err := pref.Format(m.Profit.Cents, "")
	if err != nil {
		return dashboardMonth{}, err
	}
	return dashboardMonth{
		Year:    m.Year,
		Month:   m.Month,
		Revenue: revenue,
		Costs:   costs,
		Profit:  profit,
	}, nil
}

func (s *Server) collectionCounts(r *http.Request) (dashboardCounts, error) {
	ctx := r.Context()
	clients, err := s.provider.ListClients(ctx)
	if err != nil {
		return dashboardCounts{}, err
	}
	landlords, err := s.provider.ListLandlords(ctx)
	if err != nil {
		return dashboardCounts{}, err
	}
	structures, err := s.provider.ListStructures(ctx)
	if err != nil {
		return dashboardCounts{}, err
	}
	locations, err := s.provider.ListAdLocations(ctx)
	if err != nil {
		return dashboardCounts{}, err
	}
	return dashboardCounts{
		Clients:     len(clients),
		Landlords:   len(landlords),
		Structures:  len(structures),
		AdLocations: len(locations),
	}, nil
}
