package google

import (
	"testing"

	"adspaces/internal/core"
)

func row(vals ...interface{}) []interface{} { return vals }

func TestParseClients(t *testing.T) {
	values := [][]interface{}{
		row("ID", "Name", "Company", "RentAmount", "RentalStartDate", "RentalEndDate", "PaymentStatus", "AccountStatus"),
		row("1", "Acme Media", "Acme", "2500.00", "2025-01-01", "2026-03-15", "current", "active"),
		row("2", "Open Ended Co", "", "1200", "2025-06-01", "", "late", "active"),
		row("", "no id", "", "1", "", "", "", ""),     // skipped
		row("abc", "bad id", "", "1", "", "", "", ""), // skipped
	}

	clients, err := parseClients(values)
	if err != nil {
		t.Fatalf("parseClients: %v", err)
	}
	if len(clients) != 2 {
		t.Fatalf("parsed %d clients, want 2", len(clients))
	}

	first := clients[0]
	if first.ID != 1 || first.Name != "Acme Media" {
		t.Errorf("first = %+v", first)
	}
	if first.RentAmount.Cents != 250000 {
		t.Errorf("RentAmount = %d, want 250000", first.RentAmount.Cents)
	}
	if first.RentalEndDate.Format("2006-01-02") != "2026-03-15" {
		t.Errorf("RentalEndDate = %v", first.RentalEndDate)
	}
	if first.PaymentStatus != core.PaymentCurrent {
		t.Errorf("PaymentStatus = %q", first.PaymentStatus)
	}

	if !clients[1].RentalEndDate.IsEmpty() {
		t.Errorf("empty end date cell should parse to empty date, got %v", clients[1].RentalEndDate)
	}
}

func TestParseClientsMissingHeaders(t *testing.T) {
	values := [][]interface{}{
		row("Name", "RentAmount"),
		row("Acme", "2500"),
	}
	if _, err := parseClients(values); err == nil {
		t.Fatal("expected error for missing ID header")
	}
}

func TestParseClientsColumnOrderIndependent(t *testing.T) {
	values := [][]interface{}{
		row("RentAmount", "ID", "Name"),
		row("99.50", "4", "Shuffled"),
	}
	clients, err := parseClients(values)
	if err != nil {
		t.Fatalf("parseClients: %v", err)
	}
	if len(clients) != 1 || clients[0].ID != 4 || clients[0].RentAmount.Cents != 9950 {
		t.Fatalf("parsed %+v", clients)
	}
}

func TestParseStructures(t *testing.T) {
	values := [][]interface{}{
		row("ID", "AdLocationID", "LicenseExpiryDate", "MaintenanceStatus", "TechnicianNotes"),
		row("3", "5", "2026-04-01", "ok", "replaced panel"),
		row("4", "", "2026-05-01", "ok", ""), // no location reference, skipped
	}
	structures, err := parseStructures(values)
	if err != nil {
		t.Fatalf("parseStructures: %v", err)
	}
	if len(structures) != 1 {
		t.Fatalf("parsed %d structures, want 1", len(structures))
	}
	s := structures[0]
	if s.AdLocationID != 5 || s.MaintenanceStatus != core.MaintenanceOK {
		t.Errorf("structure = %+v", s)
	}
}

func TestParseAdLocations(t *testing.T) {
	values := [][]interface{}{
		row("ID", "Title", "Address", "Type", "PriceEstimate", "AvailabilityStatus"),
		row("5", "North Bridge", "Av. Reforma 100", "billboard", "5000", "rented"),
	}
	locations, err := parseAdLocations(values)
	if err != nil {
		t.Fatalf("parseAdLocations: %v", err)
	}
	if len(locations) != 1 {
		t.Fatalf("parsed %d locations, want 1", len(locations))
	}
	loc := locations[0]
	if loc.PriceEstimate.Cents != 500000 || loc.AvailabilityStatus != core.AvailabilityRented {
		t.Errorf("location = %+v", loc)
	}
}

func TestParseEmptySheet(t *testing.T) {
	clients, err := parseClients(nil)
	if err != nil {
		t.Fatalf("empty sheet should not error, got %v", err)
	}
	if len(clients) != 0 {
		t.Fatalf("parsed %d clients from empty sheet", len(clients))
	}
}
