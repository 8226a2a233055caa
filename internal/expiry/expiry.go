// Package expiry scans heterogeneous business records for approaching
// deadlines and produces a single urgency-ranked feed.
//
// Three record classes carry deadlines: client rentals end, landlord
// contracts end, and structure licenses expire. None of those records know
// about each other; this package normalizes each class to a common shape
// and runs one shared window/urgency/sort pass over the result.
package expiry

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"adspaces/internal/core"
)

// Kind identifies the record class a deadline originates from.
type Kind string

const (
	KindRental   Kind = "rental"
	KindContract Kind = "contract"
	KindLicense  Kind = "license"
)

// Urgency is a coarse three-level ranking of how soon a deadline falls.
type Urgency string

const (
	Critical Urgency = "critical" // 7 days or less
	Warning  Urgency = "warning"  // 8 to 14 days
	Notice   Urgency = "notice"   // 15 days or more
)

// Record is one upcoming deadline. DaysRemaining is always derived from
// DueAt and the reference time of the aggregation call, never stored.
type Record struct {
	Kind          Kind
	SourceID      int64
	Label         string
	DueAt         core.Date
	DaysRemaining int
	Urgency       Urgency
}

// ErrInvalidWindow is returned when windowDays is not a positive number
// of days.
var ErrInvalidWindow = errors.New("window must be at least one day")

// DefaultWindowDays is the horizon used by dashboard callers.
const DefaultWindowDays = 30

// deadline is the normalized shape every record class reduces to before
// the shared filtering pass.
type deadline struct {
	id    int64
	label string
	dueAt core.Date
}

// CollectUpcoming returns every deadline falling inside the inclusive
// window [now, now+windowDays], sorted by days remaining. Ties keep the
// fixed source order rentals, contracts, licenses. Records without a
// deadline are skipped; that is a normal state, not an error. The result
// is never truncated; callers take the top N themselves.
//
// now is injected so results are deterministic under test. Only its
// calendar date matters.
func CollectUpcoming(rentals []core.Client, contracts []core.Landlord, licenses []core.Structure, now time.Time, windowDays int) ([]Record, error) {
	if windowDays < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidWindow, windowDays)
	}

	var out []Record
	collect := func(kind Kind, deadlines []deadline) {
		for _, d := range deadlines {
			days, ok := daysUntil(now, d.dueAt, windowDays)
			if !ok {
				continue
			}
			out = append(out, Record{
				Kind:          kind,
				SourceID:      d.id,
				Label:         d.label,
				DueAt:         d.dueAt,
				DaysRemaining: days,
				Urgency:       UrgencyFor(days),
			})
		}
	}

	// Fixed fan-in order; the stable sort below relies on it for ties.
	collect(KindRental, rentalDeadlines(rentals))
	collect(KindContract, contractDeadlines(contracts))
	collect(KindLicense, licenseDeadlines(licenses))

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DaysRemaining < out[j].DaysRemaining
	})
	return out, nil
}

// UrgencyFor maps whole days remaining to an urgency level.
func UrgencyFor(daysRemaining int) Urgency {
	switch {
	case daysRemaining <= 7:
		return Critical
	case daysRemaining <= 14:
		return Warning
	default:
		return Notice
	}
}

// daysUntil returns the whole calendar days from now to due and whether
// due falls inside the inclusive window. Both instants are truncated to
// their UTC calendar date first, so the time-of-day of now never shifts
// a boundary.
func daysUntil(now time.Time, due core.Date, windowDays int) (int, bool) {
	if due.IsEmpty() {
		return 0, false
	}
	today := midnight(now)
	dueDay := midnight(due.Time)
	days := int(dueDay.Sub(today).Hours() / 24)
	if days < 0 || days > windowDays {
		return 0, false
	}
	return days, true
}

func midnight(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
