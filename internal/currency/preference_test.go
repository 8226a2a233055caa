package currency

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

type memStore struct {
	values map[string]string
	getErr error
	setErr error
}

func newMemStore() *memStore {
	return &memStore{values: make(map[string]string)}
}

func (s *memStore) Get(_ context.Context, key string) (string, bool, error) {
	if s.getErr != nil {
		return "", false, s.getErr
	}
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *memStore) Set(_ context.Context, key, value string) error {
	if s.setErr != nil {
		return s.setErr
	}
	s.values[key] = value
	return nil
}

func TestLoad(t *testing.T) {
	ctx := context.Background()
	reg := DefaultRegistry()

	tests := []struct {
		name  string
		store Store
		want  string
	}{
		{"nil store - base", nil, "USD"},
		{"absent key - base", newMemStore(), "USD"},
		{"persisted code", &memStore{values: map[string]string{PreferenceKey: "EUR"}}, "EUR"},
		{"unregistered persisted code - base", &memStore{values: map[string]string{PreferenceKey: "JPY"}}, "USD"},
		{"store failure - base", &memStore{getErr: errors.New("storage disabled")}, "USD"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Load(ctx, reg, tt.store)
			if got := p.Active().Code; got != tt.want {
				t.Errorf("Active() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSetCurrency(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	p := Load(ctx, DefaultRegistry(), store)

	if err := p.SetCurrency(ctx, "MXN"); err != nil {
		t.Fatalf("SetCurrency(MXN) error = %v", err)
	}
	if p.Active().Code != "MXN" {
		t.Errorf("Active() = %q, want MXN", p.Active().Code)
	}
	if store.values[PreferenceKey] != "MXN" {
		t.Errorf("persisted value = %q, want MXN", store.values[PreferenceKey])
	}
}

func TestSetCurrency_InvalidCode(t *testing.T) {
	ctx := context.Background()
	p := Load(ctx, DefaultRegistry(), newMemStore())

	err := p.SetCurrency(ctx, "ZZZ")
	if !errors.Is(err, ErrInvalidCurrency) {
		t.Fatalf("error = %v, want ErrInvalidCurrency", err)
	}
	if p.Active().Code != "USD" {
		t.Errorf("Active() changed to %q after failed SetCurrency", p.Active().Code)
	}
}

func TestSetCurrency_PersistFailure(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	store.setErr = errors.New("storage disabled")
	p := Load(ctx, DefaultRegistry(), store)

	err := p.SetCurrency(ctx, "EUR")
	if err == nil {
		t.Fatal("expected persistence error")
	}
	// Selection still applies for the current session.
	if p.Active().Code != "EUR" {
		t.Errorf("Active() = %q, want EUR despite persist failure", p.Active().Code)
	}
}

func TestConvert(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name   string
		active string
		minor  int64
		from   string
		want   float64
	}{
		{"USD to MXN", "MXN", 250000, "USD", 43750},
		{"empty from means base", "MXN", 250000, "", 43750},
		{"same currency is identity", "MXN", 250000, "MXN", 2500},
		{"zero", "EUR", 0, "USD", 0},
		{"negative", "USD", -123456, "USD", -1234.56},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Load(ctx, DefaultRegistry(), nil)
			if err := p.SetCurrency(ctx, tt.active); err != nil {
				t.Fatalf("SetCurrency(%s) error = %v", tt.active, err)
			}
			got, err := p.Convert(tt.minor, tt.from)
			if err != nil {
				t.Fatalf("Convert() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Convert(%d, %q) = %v, want %v", tt.minor, tt.from, got, tt.want)
			}
		})
	}
}

func TestConvert_UnknownFrom(t *testing.T) {
	p := Load(context.Background(), DefaultRegistry(), nil)
	_, err := p.Convert(100, "ZZZ")
	if !errors.Is(err, ErrUnknownCurrency) {
		t.Fatalf("error = %v, want ErrUnknownCurrency", err)
	}
}

func TestFormat(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name   string
		active string
		minor  int64
		from   string
		want   string
	}{
		{"zero dollars", "USD", 0, "USD", "$0.00"},
		{"grouping", "USD", 123456789, "USD", "$1,234,567.89"},
		{"converted to pesos", "MXN", 250000, "USD", "$43,750.00"},
		{"euro symbol", "EUR", 10000, "EUR", "€100.00"},
		{"pound symbol", "GBP", 100000, "USD", "£790.00"},
		{"negative sign before symbol", "USD", -250000, "USD", "-$2,500.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Load(ctx, DefaultRegistry(), nil)
			if err := p.SetCurrency(ctx, tt.active); err != nil {
				t.Fatalf("SetCurrency(%s) error = %v", tt.active, err)
			}
			got, err := p.Format(tt.minor, tt.from)
			if err != nil {
				t.Fatalf("Format() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Format(%d, %q) = %q, want %q", tt.minor, tt.from, got, tt.want)
			}
		})
	}
}

func TestRegistry(t *testing.T) {
	reg := DefaultRegistry()

	if reg.Base().Code != "USD" {
		t.Errorf("Base() = %q, want USD", reg.Base().Code)
	}
	if !reg.Base().RateToBase.Equal(decimal.NewFromInt(1)) {
		t.Errorf("base rate = %v, want 1", reg.Base().RateToBase)
	}
	profiles := reg.Profiles()
	if len(profiles) != 5 {
		t.Fatalf("got %d profiles, want 5", len(profiles))
	}
	if profiles[0].Code != "USD" {
		t.Errorf("first profile = %q, want base first", profiles[0].Code)
	}
	if _, ok := reg.Lookup("MXN"); !ok {
		t.Error("Lookup(MXN) = not found")
	}
	if _, ok := reg.Lookup("JPY"); ok {
		t.Error("Lookup(JPY) unexpectedly found")
	}
}
