// Package currency converts and formats monetary amounts. Every amount in
// the system is stored as integer cents of one base currency; this package
// renders them in whichever display currency the user selected.
package currency

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidCurrency reports an attempt to select a display currency
	// that is not registered. This is configuration, not user input, so
	// callers must surface it instead of falling back silently.
	ErrInvalidCurrency = errors.New("invalid currency code")

	// ErrUnknownCurrency reports a conversion from an unregistered code.
	ErrUnknownCurrency = errors.New("unknown currency code")
)

// Profile is static reference data for one supported currency.
// RateToBase means: one base-currency unit equals RateToBase units of
// this currency.
type Profile struct {
	Code       string
	Symbol     string
	Name       string
	RateToBase decimal.Decimal
}

// Registry holds the supported currency profiles. The base currency always
// has rate 1 by construction.
type Registry struct {
	base     string
	profiles map[string]Profile
	codes    []string
}

// NewRegistry builds a registry from a base profile and any number of
// additional profiles. The base profile's rate is forced to 1.
func NewRegistry(base Profile, others ...Profile) *Registry {
	base.RateToBase = decimal.NewFromInt(1)
	r := &Registry{
		base:     base.Code,
		profiles: map[string]Profile{base.Code: base},
		codes:    []string{base.Code},
	}
	for _, p := range others {
		if _, dup := r.profiles[p.Code]; dup {
			continue
		}
		r.profiles[p.Code] = p
		r.codes = append(r.codes, p.Code)
	}
	return r
}

// DefaultRegistry returns the stock registry: USD base plus the display
// currencies the application supports.
func DefaultRegistry() *Registry {
	return NewRegistry(
		Profile{Code: "USD", Symbol: "$", Name: "US Dollar"},
		Profile{Code: "MXN", Symbol: "$", Name: "Mexican Peso", RateToBase: decimal.NewFromFloat(17.5)},
		Profile{Code: "EUR", Symbol: "€", Name: "Euro", RateToBase: decimal.NewFromFloat(0.92)},
		Profile{Code: "GBP", Symbol: "£", Name: "British Pound", RateToBase: decimal.NewFromFloat(0.79)},
		Profile{Code: "CAD", Symbol: "$", Name: "Canadian Dollar", RateToBase: decimal.NewFromFloat(1.35)},
	)
}

// Base returns the base-currency profile.
func (r *Registry) Base() Profile {
	return r.profiles[r.base]
}

// Lookup returns the profile for code.
func (r *Registry) Lookup(code string) (Profile, bool) {
	p, ok := r.profiles[code]
	return p, ok
}

// Profiles lists every registered profile in registration order, base
// first.
func (r *Registry) Profiles() []Profile {
	out := make([]Profile, 0, len(r.codes))
	for _, code := range r.codes {
		out = append(out, r.profiles[code])
	}
	return out
}
