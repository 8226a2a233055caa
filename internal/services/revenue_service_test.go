package services

import (
	"context"
	"testing"
	"time"

	"adspaces/internal/core"
)

func TestRevenueOverview(t *testing.T) {
	provider := &stubProvider{
		clients: []core.Client{
			// Active all six months at $2,000/mo.
			{ID: 1, Name: "Acme", RentAmount: core.Money{Cents: 200000},
				RentalStartDate: core.NewDate(2023, 1, 1)},
			// Starts in May 2024 at $1,000/mo.
			{ID: 2, Name: "Globex", RentAmount: core.Money{Cents: 100000},
				RentalStartDate: core.NewDate(2024, 5, 1)},
			// Ended March 2024.
			{ID: 3, Name: "Initech", RentAmount: core.Money{Cents: 50000},
				RentalStartDate: core.NewDate(2023, 1, 1),
				RentalEndDate:   core.NewDate(2024, 3, 31)},
		},
		landlords: []core.Landlord{
			// Open-ended contract at $2,500/mo: June runs at a loss.
			{ID: 4, Name: "Rossi", RentAmount: core.Money{Cents: 250000},
				ContractStartDate: core.NewDate(2023, 1, 1)},
		},
	}
	svc := NewRevenueService(provider, provider)
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	overview, err := svc.Overview(context.Background(), now, 6)
	if err != nil {
		t.Fatalf("Overview() error = %v", err)
	}
	if len(overview.Months) != 6 {
		t.Fatalf("got %d months, want 6", len(overview.Months))
	}

	first := overview.Months[0] // January 2024
	if first.Year != 2024 || first.Month != 1 {
		t.Fatalf("first month = %d-%d, want 2024-1", first.Year, first.Month)
	}
	if first.Revenue.Cents != 250000 {
		t.Errorf("Jan revenue = %d, want 250000 (Acme + Initech)", first.Revenue.Cents)
	}

	last := overview.Months[5] // June 2024
	if last.Year != 2024 || last.Month != 6 {
		t.Fatalf("last month = %d-%d, want 2024-6", last.Year, last.Month)
	}
	if last.Revenue.Cents != 300000 {
		t.Errorf("Jun revenue = %d, want 300000 (Acme + Globex)", last.Revenue.Cents)
	}
	if last.Costs.Cents != 250000 {
		t.Errorf("Jun costs = %d, want 250000", last.Costs.Cents)
	}
	if last.Profit.Cents != 50000 {
		t.Errorf("Jun profit = %d, want 50000", last.Profit.Cents)
	}

	// Initech's rental ended 2024-03-31, so April excludes it.
	apr := overview.Months[3]
	if apr.Revenue.Cents != 200000 {
		t.Errorf("Apr revenue = %d, want 200000 (Acme only)", apr.Revenue.Cents)
	}
}

func TestRevenueOverview_NegativeProfit(t *testing.T) {
	provider := &stubProvider{
		landlords: []core.Landlord{
			{ID: 1, Name: "Rossi", RentAmount: core.Money{Cents: 100000},
				ContractStartDate: core.NewDate(2023, 1, 1)},
		},
	}
	svc := NewRevenueService(provider, provider)
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	overview, err := svc.Overview(context.Background(), now, 1)
	if err != nil {
		t.Fatalf("Overview() error = %v", err)
	}
	if got := overview.Months[0].Profit.Cents; got != -100000 {
		t.Errorf("profit = %d, want -100000", got)
	}
}

func TestRevenueOverview_InvalidMonths(t *testing.T) {
	svc := NewRevenueService(&stubProvider{}, &stubProvider{})
	if _, err := svc.Overview(context.Background(), time.Now(), 0); err == nil {
		t.Fatal("expected error for zero months")
	}
}
