package expiry

import (
	"errors"
	"testing"
	"time"

	"adspaces/internal/core"
)

func client(id int64, name string, end core.Date) core.Client {
	return core.Client{ID: id, Name: name, RentalEndDate: end}
}

func landlord(id int64, name string, end core.Date) core.Landlord {
	return core.Landlord{ID: id, Name: name, ContractEndDate: end}
}

func structure(id int64, expiry core.Date) core.Structure {
	return core.Structure{ID: id, AdLocationID: id, LicenseExpiryDate: expiry}
}

func TestCollectUpcoming_Window(t *testing.T) {
	now := time.Date(2024, 6, 1, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		end  core.Date
		want bool
	}{
		{"due today - included", core.NewDate(2024, 6, 1), true},
		{"due tomorrow - included", core.NewDate(2024, 6, 2), true},
		{"30 days out - boundary included", core.NewDate(2024, 7, 1), true},
		{"31 days out - excluded", core.NewDate(2024, 7, 2), false},
		{"yesterday - excluded", core.NewDate(2024, 5, 31), false},
		{"no deadline - excluded", core.Date{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CollectUpcoming([]core.Client{client(1, "Acme", tt.end)}, nil, nil, now, 30)
			if err != nil {
				t.Fatalf("CollectUpcoming() error = %v", err)
			}
			if (len(got) == 1) != tt.want {
				t.Errorf("included = %v, want %v", len(got) == 1, tt.want)
			}
		})
	}
}

func TestCollectUpcoming_DaysRemaining(t *testing.T) {
	// Late in the day: only calendar dates may influence the day count.
	now := time.Date(2024, 6, 1, 23, 59, 0, 0, time.UTC)

	got, err := CollectUpcoming([]core.Client{client(1, "Acme", core.NewDate(2024, 6, 6))}, nil, nil, now, 30)
	if err != nil {
		t.Fatalf("CollectUpcoming() error = %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d records, want 1", len(got))
	}
	if got[0].DaysRemaining != 5 {
		t.Errorf("DaysRemaining = %d, want 5", got[0].DaysRemaining)
	}
}

func TestUrgencyFor(t *testing.T) {
	tests := []struct {
		days int
		want Urgency
	}{
		{0, Critical},
		{7, Critical},
		{8, Warning},
		{14, Warning},
		{15, Notice},
		{30, Notice},
	}

	for _, tt := range tests {
		if got := UrgencyFor(tt.days); got != tt.want {
			t.Errorf("UrgencyFor(%d) = %v, want %v", tt.days, got, tt.want)
		}
	}
}

func TestCollectUpcoming_SortAndTiebreak(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	in5 := core.NewDate(2024, 6, 6)
	in20 := core.NewDate(2024, 6, 21)

	rentals := []core.Client{
		client(1, "Acme", in20),
		client(2, "Globex", in5),
	}
	contracts := []core.Landlord{landlord(3, "Rossi", in5)}
	licenses := []core.Structure{structure(4, in5)}

	got, err := CollectUpcoming(rentals, contracts, licenses, now, 30)
	if err != nil {
		t.Fatalf("CollectUpcoming() error = %v", err)
	}
	if len(got) != 4 {
		t.Fatalf("got %d records, want 4", len(got))
	}

	// Ties at 5 days keep the rental/contract/license fan-in order.
	wantOrder := []struct {
		kind Kind
		id   int64
	}{
		{KindRental, 2},
		{KindContract, 3},
		{KindLicense, 4},
		{KindRental, 1},
	}
	for i, w := range wantOrder {
		if got[i].Kind != w.kind || got[i].SourceID != w.id {
			t.Errorf("position %d = %s#%d, want %s#%d", i, got[i].Kind, got[i].SourceID, w.kind, w.id)
		}
	}
	for i := 1; i < len(got); i++ {
		if got[i].DaysRemaining < got[i-1].DaysRemaining {
			t.Errorf("feed not sorted at position %d", i)
		}
	}
}

func TestCollectUpcoming_Labels(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	due := core.NewDate(2024, 6, 10)

	got, err := CollectUpcoming(
		[]core.Client{client(7, "Acme", due)},
		[]core.Landlord{landlord(8, "Rossi", due)},
		[]core.Structure{structure(9, due)},
		now, 30,
	)
	if err != nil {
		t.Fatalf("CollectUpcoming() error = %v", err)
	}

	want := []string{"Acme - Rental", "Rossi - Contract", "Structure #9 - License"}
	if len(got) != len(want) {
		t.Fatalf("got %d records, want %d", len(got), len(want))
	}
	for i, w := range want {
		if got[i].Label != w {
			t.Errorf("label %d = %q, want %q", i, got[i].Label, w)
		}
	}
}

func TestCollectUpcoming_TwoCriticalSameDay(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	due := core.NewDate(2024, 6, 6)

	got, err := CollectUpcoming(
		[]core.Client{client(1, "Acme", due)},
		[]core.Landlord{landlord(2, "Rossi", due)},
		nil, now, 30,
	)
	if err != nil {
		t.Fatalf("CollectUpcoming() error = %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d records, want 2", len(got))
	}
	if got[0].Kind != KindRental || got[0].SourceID != 1 || got[0].Urgency != Critical {
		t.Errorf("first = %+v, want rental#1 critical", got[0])
	}
	if got[1].Kind != KindContract || got[1].SourceID != 2 || got[1].Urgency != Critical {
		t.Errorf("second = %+v, want contract#2 critical", got[1])
	}
}

func TestCollectUpcoming_InvalidWindow(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	for _, window := range []int{0, -1} {
		_, err := CollectUpcoming(nil, nil, nil, now, window)
		if !errors.Is(err, ErrInvalidWindow) {
			t.Errorf("windowDays=%d: error = %v, want ErrInvalidWindow", window, err)
		}
	}
}

func TestCollectUpcoming_EmptyInputs(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	got, err := CollectUpcoming(nil, nil, nil, now, 30)
	if err != nil {
		t.Fatalf("CollectUpcoming() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("got %d records, want 0", len(got))
	}
}
