package currency

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// PreferenceKey is the storage key under which the selected display
// currency is persisted.
const PreferenceKey = "currency"

// Store is the persisted-preference collaborator: a get/set-by-key string
// store. The second Get result reports whether the key was present.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// Preference is the selected display currency for one session, loaded
// from the store at session start and written back on every change.
// Construct one per session or request; it is not safe for concurrent
// mutation.
type Preference struct {
	registry *Registry
	store    Store
	active   string
}

var printer = message.NewPrinter(language.English)

// Load reads the persisted display currency and returns a Preference
// bound to store. A nil store, an absent key, a store failure, or a
// stored code that is no longer registered all fall back to the base
// currency; formatting must keep working without persistence.
func Load(ctx context.Context, registry *Registry, store Store) *Preference {
	p := &Preference{
		registry: registry,
		store:    store,
		active:   registry.Base().Code,
	}
	if store == nil {
		return p
	}
	code, ok, err := store.Get(ctx, PreferenceKey)
	if err != nil {
		slog.WarnContext(ctx, "Failed to load display currency, using base",
			"error", err, "base", p.active)
		return p
	}
	if !ok {
		return p
	}
	if _, known := registry.Lookup(code); !known {
		slog.WarnContext(ctx, "Persisted display currency is not registered, using base",
			"code", code, "base", p.active)
		return p
	}
	p.active = code
	return p
}

// Active returns the profile of the selected display currency.
func (p *Preference) Active() Profile {
	return p.registry.profiles[p.active]
}

// SetCurrency selects a new display currency and persists the choice.
// An unregistered code returns ErrInvalidCurrency and leaves the
// selection untouched. A persistence failure is returned for the caller
// to log, but the in-memory selection is already updated: formatting for
// the current session must not depend on the store being writable.
func (p *Preference) SetCurrency(ctx context.Context, code string) error {
	if _, ok := p.registry.Lookup(code); !ok {
		return fmt.Errorf("%w: %q", ErrInvalidCurrency, code)
	}
	p.active = code
	if p.store == nil {
		return nil
	}
	if err := p.store.Set(ctx, PreferenceKey, code); err != nil {
		return fmt.Errorf("persist display currency: %w", err)
	}
	return nil
}

// Convert turns an integer minor-unit amount denominated in from into a
// major-unit amount in the active display currency. An empty from means
// the base currency. Zero and negative amounts are valid; an
// unregistered from returns ErrUnknownCurrency.
func (p *Preference) Convert(amountMinorUnits int64, from string) (float64, error) {
	if from == "" {
		from = p.registry.base
	}
	// Same currency is exact: no trip through the rate table, so the
	// result is x/100 regardless of how rates are quoted.
	if from == p.active {
		return float64(amountMinorUnits) / 100, nil
	}
	src, ok := p.registry.Lookup(from)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownCurrency, from)
	}
	major := decimal.NewFromInt(amountMinorUnits).Div(decimal.NewFromInt(100))
	inBase := major.Div(src.RateToBase)
	converted := inBase.Mul(p.Active().RateToBase)
	return converted.InexactFloat64(), nil
}

// Format converts like Convert and renders the result with the active
// currency's symbol, thousands grouping, and exactly two fractional
// digits. The sign precedes the symbol: "-$2,500.00".
func (p *Preference) Format(amountMinorUnits int64, from string) (string, error) {
	v, err := p.Convert(amountMinorUnits, from)
	if err != nil {
		return "", err
	}
	sign := ""
	if v < 0 {
		sign = "-"
		v = math.Abs(v)
	}
	n := printer.Sprintf("%v", number.Decimal(v,
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))
	return sign + p.Active().Symbol + n, nil
}
