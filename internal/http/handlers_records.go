package http

import (
	"net/http"

	"adspaces/internal/core"
	"adspaces/internal/currency"
	applog "adspaces/internal/log"
)

// Record payloads carry amounts twice: raw base-currency cents for
// programmatic consumers and a string formatted in the display currency.

type clientItem struct {
	ID              int64              `json:"id"`
	Name            string             `json:"name"`
	Company         string             `json:"company,omitempty"`
	Email           string             `json:"email,omitempty"`
	Phone           string             `json:"phone,omitempty"`
	RentAmount      core.Money         `json:"rent_amount_cents"`
	RentFormatted   string             `json:"rent_amount"`
	RentalStartDate core.Date          `json:"rental_start_date"`
	RentalEndDate   core.Date          `json:"rental_end_date"`
	PaymentStatus   core.PaymentStatus `json:"payment_status"`
	AccountStatus   core.AccountStatus `json:"account_status"`
}

type landlordItem struct {
	ID                int64              `json:"id"`
	Name              string             `json:"name"`
	Company           string             `json:"company,omitempty"`
	Email             string             `json:"email,omitempty"`
	Phone             string             `json:"phone,omitempty"`
	RentAmount        core.Money         `json:"rent_amount_cents"`
	RentFormatted     string             `json:"rent_amount"`
	ContractStartDate core.Date          `json:"contract_start_date"`
	ContractEndDate   core.Date          `json:"contract_end_date"`
	PaymentStatus     core.PaymentStatus `json:"payment_status"`
}

type structureItem struct {
	ID                  int64                  `json:"id"`
	AdLocationID        int64                  `json:"ad_location_id"`
	LicenseExpiryDate   core.Date              `json:"license_expiry_date"`
	LastMaintenanceDate core.Date              `json:"last_maintenance_date"`
	NextMaintenanceDate core.Date              `json:"next_maintenance_date"`
	MaintenanceStatus   core.MaintenanceStatus `json:"maintenance_status"`
	TechnicianNotes     string                 `json:"technician_notes,omitempty"`
}

type adLocationItem struct {
	ID                 int64                   `json:"id"`
	Title              string                  `json:"title"`
	Address            string                  `json:"address"`
	Type               string                  `json:"type"`
	Dimensions         string                  `json:"dimensions,omitempty"`
	PriceEstimate      core.Money              `json:"price_estimate_cents"`
	PriceFormatted     string                  `json:"price_estimate"`
	AvailabilityStatus core.AvailabilityStatus `json:"availability_status"`
}

type listResponse[T any] struct {
	Count int `json:"count"`
	Items []T `json:"items"`
}

func (s *Server) handleClients(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}
	clients, err := s.provider.ListClients(r.Context())
	if err != nil {
		s.listError(w, r, "clients", err)
		return
	}
	pref := s.preference(r.Context())
	items := make([]clientItem, 0, len(clients))
	for _, c := range clients {
		items = append(items, clientItem{
			ID:              c.ID,
			Name:            c.Name,
			Company:         c.Company,
			Email:           c.Email,
			Phone:           c.Phone,
			RentAmount:      c.RentAmount,
			RentFormatted:   formatOrEmpty(pref, c.RentAmount),
			RentalStartDate: c.RentalStartDate,
			RentalEndDate:   c.RentalEndDate,
			PaymentStatus:   c.PaymentStatus,
			AccountStatus:   c.AccountStatus,
		})
	}
	writeJSON(w, http.StatusOK, listResponse[clientItem]{Count: len(items), Items: items})
}

func (s *Server) handleLandlords(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}
	landlords, err := s.provider.ListLandlords(r.Context())
	if err != nil {
		s.listError(w, r, "landlords", err)
		return
	}
	pref := s.preference(r.Context())
	items := make([]landlordItem, 0, len(landlords))
	for _, l := range landlords {
		items = append(items, landlordItem{
			ID:                l.ID,
			Name:              l.Name,
			Company:           l.Company,
			Email:             l.Email,
			Phone:             l.Phone,
			RentAmount:        l.RentAmount,
			RentFormatted:     formatOrEmpty(pref, l.RentAmount),
			ContractStartDate: l.ContractStartDate,
			ContractEndDate:   l.ContractEndDate,
			PaymentStatus:     l.PaymentStatus,
		})
	}
	writeJSON(w, http.StatusOK, listResponse[landlordItem]{Count: len(items), Items: items})
}

func (s *Server) handleStructures(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}
	structures, err := s.provider.ListStructures(r.Context())
	if err != nil {
		s.listError(w, r, "structures", err)
		return
	}
	items := make([]structureItem, 0, len(structures))
	for _, st := range structures {
		items = append(items, structureItem{
			ID:                  st.ID,
			AdLocationID:        st.AdLocationID,
			LicenseExpiryDate:   st.LicenseExpiryDate,
			LastMaintenanceDate: st.LastMaintenanceDate,
			NextMaintenanceDate: st.NextMaintenanceDate,
			MaintenanceStatus:   st.MaintenanceStatus,
			TechnicianNotes:     st.TechnicianNotes,
		})
	}
	writeJSON(w, http.StatusOK, listResponse[structureItem]{Count: len(items), Items: items})
}

func (s *Server) handleAdLocations(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}
	locations, err := s.provider.ListAdLocations(r.Context())
	if err != nil {
		s.listError(w, r, "ad locations", err)
		return
	}
	pref := s.preference(r.Context())
	items := make([]adLocationItem, 0, len(locations))
	for _, loc := range locations {
		items = append(items, adLocationItem{
			ID:                 loc.ID,
			Title:              loc.Title,
			Address:            loc.Address,
			Type:               loc.Type,
			Dimensions:         loc.Dimensions,
			PriceEstimate:      loc.PriceEstimate,
			PriceFormatted:     formatOrEmpty(pref, loc.PriceEstimate),
			AvailabilityStatus: loc.AvailabilityStatus,
		})
	}
	writeJSON(w, http.StatusOK, listResponse[adLocationItem]{Count: len(items), Items: items})
}

func requireGet(w http.ResponseWriter, r *http.Request) bool {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return false
	}
	return true
}

func (s *Server) listError(w http.ResponseWriter, r *http.Request, collection string, err error) {
	applog.FromContext(r.Context()).ErrorContext(r.Context(), "Record listing failed",
		applog.FieldError, err, applog.FieldOperation, applog.OpList, "collection", collection)
	writeError(w, http.StatusInternalServerError, "failed to list "+collection)
}

// formatOrEmpty renders a base-currency amount in the display currency.
// Base amounts always convert, so an error here means a registry bug; the
// raw cents field still carries the value.
func formatOrEmpty(pref *currency.Preference, m core.Money) string {
	formatted, err := pref.Format(m.Cents, "")
	if err != nil {
		return ""
	}
	return formatted
}
