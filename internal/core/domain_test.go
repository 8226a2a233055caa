package core

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDateValidate(t *testing.T) {
	cases := []struct {
		d  Date
		ok bool
	}{
		{NewDate(2026, 1, 1), true},
		{NewDate(2026, 12, 31), true},
		{Date{Time: time.Time{}}, false}, // zero time
	}
	for i, tc := range cases {
		err := tc.d.Validate()
		if tc.ok && err != nil {
			t.Fatalf("case %d expected ok, got %v", i, err)
		}
		if !tc.ok && err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-03-15")
	if err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if d.Year() != 2026 || d.Month() != 3 || d.Day() != 15 {
		t.Fatalf("parsed %v", d)
	}
	if _, err := ParseDate("15/03/2026"); err == nil {
		t.Fatal("expected error for wrong format")
	}
}

func TestDateJSONRoundTrip(t *testing.T) {
	b, err := json.Marshal(NewDate(2026, 3, 15))
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `"2026-03-15"` {
		t.Fatalf("marshaled %s", b)
	}

	var d Date
	if err := json.Unmarshal(b, &d); err != nil {
		t.Fatal(err)
	}
	if !d.Equal(NewDate(2026, 3, 15).Time) {
		t.Fatalf("round trip gave %v", d)
	}

	// Empty dates serialize as null and null deserializes as empty.
	b, _ = json.Marshal(Date{})
	if string(b) != "null" {
		t.Fatalf("empty date marshaled %s", b)
	}
	if err := json.Unmarshal([]byte("null"), &d); err != nil {
		t.Fatal(err)
	}
	if !d.IsEmpty() {
		t.Fatal("null should deserialize to empty date")
	}
}

func TestMoneyValidate(t *testing.T) {
	if err := (Money{Cents: 1}).Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if err := (Money{Cents: 0}).Validate(); err == nil {
		t.Fatal("expected error for zero")
	}
	if err := (Money{Cents: -100}).Validate(); err == nil {
		t.Fatal("expected error for negative")
	}
}

func TestClientValidate(t *testing.T) {
	good := Client{
		Name:            "Acme Media",
		RentAmount:      Money{Cents: 250000},
		RentalStartDate: NewDate(2025, 1, 1),
		RentalEndDate:   NewDate(2026, 1, 1),
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	// Open-ended rentals carry no end date.
	openEnded := good
	openEnded.RentalEndDate = Date{}
	if err := openEnded.Validate(); err != nil {
		t.Fatalf("open-ended rental should validate, got %v", err)
	}

	bads := []Client{
		{Name: "", RentAmount: Money{Cents: 100}},
		{Name: "x", RentAmount: Money{Cents: 0}},
		{Name: "x", RentAmount: Money{Cents: 100}, RentalStartDate: NewDate(2026, 1, 1), RentalEndDate: NewDate(2025, 1, 1)},
	}
	for i, c := range bads {
		if err := c.Validate(); err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}
}

func TestLandlordValidate(t *testing.T) {
	good := Landlord{
		Name:              "Grupo Norte",
		RentAmount:        Money{Cents: 80000},
		ContractStartDate: NewDate(2024, 6, 1),
		ContractEndDate:   NewDate(2026, 6, 1),
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	inverted := good
	inverted.ContractEndDate = NewDate(2023, 1, 1)
	if err := inverted.Validate(); err == nil {
		t.Fatal("expected error for end before start")
	}
}

func TestStructureValidate(t *testing.T) {
	good := Structure{ID: 1, AdLocationID: 5, LicenseExpiryDate: NewDate(2026, 4, 1)}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	// Unlicensed structures are fine.
	unlicensed := Structure{ID: 2, AdLocationID: 5}
	if err := unlicensed.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	orphan := Structure{ID: 3}
	if err := orphan.Validate(); err == nil {
		t.Fatal("expected error for missing ad location")
	}
}

func TestAdLocationValidate(t *testing.T) {
	good := AdLocation{Title: "North Bridge", Address: "Av. Reforma 100", PriceEstimate: Money{Cents: 500000}}
	if err := good.Validate(); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}

	bads := []AdLocation{
		{Title: "", Address: "a", PriceEstimate: Money{Cents: 1}},
		{Title: "t", Address: "", PriceEstimate: Money{Cents: 1}},
		{Title: "t", Address: "a", PriceEstimate: Money{Cents: 0}},
	}
	for i, a := range bads {
		if err := a.Validate(); err == nil {
			t.Fatalf("case %d expected error", i)
		}
	}
}
