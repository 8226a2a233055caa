package services

import (
	"context"
	"fmt"
	"time"

	"adspaces/internal/core"
	"adspaces/internal/records"
)

// RevenueService summarizes monthly money flow: client rentals coming in,
// landlord contracts going out.
type RevenueService struct {
	clients   records.ClientLister
	landlords records.LandlordLister
}

func NewRevenueService(clients records.ClientLister, landlords records.LandlordLister) *RevenueService {
	return &RevenueService{clients: clients, landlords: landlords}
}

// Overview returns per-month revenue/costs/profit for the months leading
// up to and including the month of now, oldest first. A rental or
// contract counts toward a month when it started on or before the first
// of that month and had not ended before it; open-ended agreements count
// indefinitely.
func (s *RevenueService) Overview(ctx context.Context, now time.Time, months int) (core.RevenueOverview, error) {
	if months < 1 {
		return core.RevenueOverview{}, fmt.Errorf("months must be at least 1, got %d", months)
	}

	clients, err := s.clients.ListClients(ctx)
	if err != nil {
		return core.RevenueOverview{}, fmt.Errorf("list clients: %w", err)
	}
	landlords, err := s.landlords.ListLandlords(ctx)
	if err != nil {
		return core.RevenueOverview{}, fmt.Errorf("list landlords: %w", err)
	}

	var overview core.RevenueOverview
	for i := months - 1; i >= 0; i-- {
		monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -i, 0)

		var revenue, costs int64
		for _, c := range clients {
			if activeIn(monthStart, c.RentalStartDate, c.RentalEndDate) {
				revenue += c.RentAmount.Cents
			}
		}
		for _, l := range landlords {
			if activeIn(monthStart, l.ContractStartDate, l.ContractEndDate) {
				costs += l.RentAmount.Cents
			}
		}

		overview.Months = append(overview.Months, core.MonthRevenue{
			Year:    monthStart.Year(),
			Month:   int(monthStart.Month()),
			Revenue: core.Money{Cents: revenue},
			Costs:   core.Money{Cents: costs},
			Profit:  core.Money{Cents: revenue - costs},
		})
	}
	return overview, nil
}

func activeIn(monthStart time.Time, start, end core.Date) bool {
	if start.IsEmpty() || start.After(monthStart) {
		return false
	}
	return end.IsEmpty() || !end.Before(monthStart)
}
