package core

import (
	"errors"
	"strconv"
	"strings"
	"time"
)

const (
	PaymentCurrent PaymentStatus = "current"
	PaymentLate    PaymentStatus = "late"
	PaymentUnpaid  PaymentStatus = "unpaid"

	AccountActive    AccountStatus = "active"
	AccountSuspended AccountStatus = "suspended"

	MaintenanceOK        MaintenanceStatus = "ok"
	MaintenanceScheduled MaintenanceStatus = "scheduled"
	MaintenanceOverdue   MaintenanceStatus = "overdue"

	AvailabilityAvailable AvailabilityStatus = "available"
	AvailabilityRented    AvailabilityStatus = "rented"
	AvailabilityReserved  AvailabilityStatus = "reserved"
)

type (
	PaymentStatus      string
	AccountStatus      string
	MaintenanceStatus  string
	AvailabilityStatus string

	Date struct {
		time.Time
	}

	Money struct {
		Cents int64
	}

	// Client rents advertising space. RentalEndDate is zero for
	// open-ended rentals.
	Client struct {
		ID              int64
		Name            string
		Company         string
		Email           string
		Phone           string
		RentAmount      Money // monthly, base-currency cents
		RentalStartDate Date
		RentalEndDate   Date
		PaymentStatus   PaymentStatus
		AccountStatus   AccountStatus
	}

	// Landlord owns the ground a structure stands on. ContractEndDate is
	// zero for evergreen contracts.
	Landlord struct {
		ID                int64
		Name              string
		Company           string
		Email             string
		Phone             string
		RentAmount        Money // monthly, base-currency cents
		ContractStartDate Date
		ContractEndDate   Date
		PaymentStatus     PaymentStatus
	}

	// Structure is the physical installation (billboard, totem, wall).
	// LicenseExpiryDate is zero when no municipal license applies.
	Structure struct {
		ID                  int64
		AdLocationID        int64
		LicenseExpiryDate   Date
		LastMaintenanceDate Date
		NextMaintenanceDate Date
		MaintenanceStatus   MaintenanceStatus
		TechnicianNotes     string
	}

	// AdLocation is a sellable advertising placement.
	AdLocation struct {
		ID                 int64
		Title              string
		Address            string
		Type               string // billboard, mural, digital, ...
		Dimensions         string
		PriceEstimate      Money // monthly, base-currency cents
		AvailabilityStatus AvailabilityStatus
	}
)

var (
	ErrInvalidDay    = errors.New("invalid day")
	ErrInvalidMonth  = errors.New("invalid month")
	ErrInvalidAmount = errors.New("invalid amount")
	ErrEmptyName     = errors.New("empty name")
	ErrEmptyTitle    = errors.New("empty title")
	ErrEmptyAddress  = errors.New("empty address")
)

func (d Date) Validate() error {
	if d.IsZero() {
		return errors.New("date cannot be zero")
	}
	// Check basic ranges
	_, month, day := d.Date()
	if day < 1 || day > 31 {
		return ErrInvalidDay
	}
	if month < 1 || month > 12 {
		return ErrInvalidMonth
	}
	return nil
}

// Day returns the day of the month
func (d Date) Day() int {
	return d.Time.Day()
}

// Month returns the month
func (d Date) Month() int {
	return int(d.Time.Month())
}

// Year returns the year
func (d Date) Year() int {
	return d.Time.Year()
}

// NewDate creates a new Date from year, month, day
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a date string in YYYY-MM-DD format.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, err
	}
	return Date{Time: t}, nil
}

// IsEmpty returns true if the date is zero. Optional deadline fields use
// the zero value to mean "no deadline".
func (d Date) IsEmpty() bool {
	return d.IsZero()
}

// MarshalJSON renders the date as "YYYY-MM-DD", or null when empty.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsEmpty() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Format("2006-01-02") + `"`), nil
}

// UnmarshalJSON accepts "YYYY-MM-DD", "", or null (the latter two mean no
// date).
func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalJSON renders money as bare integer cents.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatInt(m.Cents, 10)), nil
}

// UnmarshalJSON accepts bare integer cents.
func (m *Money) UnmarshalJSON(data []byte) error {
	cents, err := strconv.ParseInt(strings.TrimSpace(string(data)), 10, 64)
	if err != nil {
		return ErrInvalidAmount
	}
	m.Cents = cents
	return nil
}

func (m Money) Validate() error {
	if m.Cents <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

func (c Client) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrEmptyName
	}
	if len(c.Name) > 200 {
		return errors.New("name too long (max 200 characters)")
	}
	if err := c.RentAmount.Validate(); err != nil {
		return err
	}
	if !c.RentalEndDate.IsEmpty() {
		if err := c.RentalEndDate.Validate(); err != nil {
			return errors.New("invalid rental end date: " + err.Error())
		}
		if !c.RentalStartDate.IsEmpty() && c.RentalEndDate.Before(c.RentalStartDate.Time) {
			return errors.New("rental end date must not precede start date")
		}
	}
	return nil
}

func (l Landlord) Validate() error {
	if strings.TrimSpace(l.Name) == "" {
		return ErrEmptyName
	}
	if len(l.Name) > 200 {
		return errors.New("name too long (max 200 characters)")
	}
	if err := l.RentAmount.Validate(); err != nil {
		return err
	}
	if !l.ContractEndDate.IsEmpty() {
		if err := l.ContractEndDate.Validate(); err != nil {
			return errors.New("invalid contract end date: " + err.Error())
		}
		if !l.ContractStartDate.IsEmpty() && l.ContractEndDate.Before(l.ContractStartDate.Time) {
			return errors.New("contract end date must not precede start date")
		}
	}
	return nil
}

func (s Structure) Validate() error {
	if s.AdLocationID <= 0 {
		return errors.New("structure must reference an ad location")
	}
	if !s.LicenseExpiryDate.IsEmpty() {
		if err := s.LicenseExpiryDate.Validate(); err != nil {
			return errors.New("invalid license expiry date: " + err.Error())
		}
	}
	return nil
}

func (a AdLocation) Validate() error {
	if strings.TrimSpace(a.Title) == "" {
		return ErrEmptyTitle
	}
	if strings.TrimSpace(a.Address) == "" {
		return ErrEmptyAddress
	}
	return a.PriceEstimate.Validate()
}
