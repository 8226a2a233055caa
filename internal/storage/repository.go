package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"adspaces/internal/core"

	_ "modernc.org/sqlite"
)

// SQLiteRepository is the durable store for inventory records and the
// persisted display-currency preference.
type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// CreateClient inserts a client and returns its ID.
func (r *SQLiteRepository) CreateClient(ctx context.Context, c core.Client) (int64, error) {
	if err := c.Validate(); err != nil {
		return 0, fmt.Errorf("validate client: %w", err)
	}
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO clients (name, company, email, phone, rent_amount_cents,
			rental_start_date, rental_end_date, payment_status, account_status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		c.Name, c.Company, c.Email, c.Phone, c.RentAmount.Cents,
		dateArg(c.RentalStartDate), dateArg(c.RentalEndDate),
		string(c.PaymentStatus), string(c.AccountStatus))
	if err != nil {
		return 0, fmt.Errorf("create client: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("client insert id: %w", err)
	}
	slog.InfoContext(ctx, "Client saved", "id", id, "name", c.Name)
	return id, nil
}

// ListClients returns every client ordered by ID.
func (r *SQLiteRepository) ListClients(ctx context.Context) ([]core.Client, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, company, email, phone, rent_amount_cents,
			rental_start_date, rental_end_date, payment_status, account_status
		FROM clients ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()

	var out []core.Client
	for rows.Next() {
		var c core.Client
		var start, end sql.NullString
		var payment, account string
		if err := rows.Scan(&c.ID, &c.Name, &c.Company, &c.Email, &c.Phone,
			&c.RentAmount.Cents, &start, &end, &payment, &account); err != nil {
			return nil, fmt.Errorf("scan client: %w", err)
		}
		if c.RentalStartDate, err = scanDate(start); err != nil {
			return nil, fmt.Errorf("client %d rental start: %w", c.ID, err)
		}
		if c.RentalEndDate, err = scanDate(end); err != nil {
			return nil, fmt.Errorf("client %d rental end: %w", c.ID, err)
		}
		c.PaymentStatus = core.PaymentStatus(payment)
		c.AccountStatus = core.AccountStatus(account)
		out = append(out, c)
	}
	return out, rows.Err()
}

// CreateLandlord inserts a landlord and returns its ID.
func (r *SQLiteRepository) CreateLandlord(ctx context.Context, l core.Landlord) (int64, error) {
	if err := l.Validate(); err != nil {
		return 0, fmt.Errorf("validate landlord: %w", err)
	}
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO landlords (name, company, email, phone, rent_amount_cents,
			contract_start_date, contract_end_date, payment_status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		l.Name, l.Company, l.Email, l.Phone, l.RentAmount.Cents,
		dateArg(l.ContractStartDate), dateArg(l.ContractEndDate),
		string(l.PaymentStatus))
	if err != nil {
		return 0, fmt.Errorf("create landlord: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("landlord insert id: %w", err)
	}
	slog.InfoContext(ctx, "Landlord saved", "id", id, "name", l.Name)
	return id, nil
}

// ListLandlords returns every landlord ordered by ID.
func (r *SQLiteRepository) ListLandlords(ctx context.Context) ([]core.Landlord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, company, email, phone, rent_amount_cents,
			contract_start_date, contract_end_date, payment_status
		FROM landlords ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list landlords: %w", err)
	}
	defer rows.Close()

	var out []core.Landlord
	for rows.Next() {
		var l core.Landlord
		var start, end sql.NullString
		var payment string
		if err := rows.Scan(&l.ID, &l.Name, &l.Company, &l.Email, &l.Phone,
			&l.RentAmount.Cents, &start, &end, &payment); err != nil {
			return nil, fmt.Errorf("scan landlord: %w", err)
		}
		if l.ContractStartDate, err = scanDate(start); err != nil {
			return nil, fmt.Errorf("landlord %d contract start: %w", l.ID, err)
		}
		if l.ContractEndDate, err = scanDate(end); err != nil {
			return nil, fmt.Errorf("landlord %d contract end: %w", l.ID, err)
		}
		l.PaymentStatus = core.PaymentStatus(payment)
		out = append(out, l)
	}
	return out, rows.Err()
}

// CreateStructure inserts a structure and returns its ID.
func (r *SQLiteRepository) CreateStructure(ctx context.Context, s core.Structure) (int64, error) {
	if err := s.Validate(); err != nil {
		return 0, fmt.Errorf("validate structure: %w", err)
	}
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO structures (ad_location_id, license_expiry_date,
			last_maintenance_date, next_maintenance_date, maintenance_status, technician_notes)
		VALUES (?, ?, ?, ?, ?, ?)`,
		s.AdLocationID, dateArg(s.LicenseExpiryDate),
		dateArg(s.LastMaintenanceDate), dateArg(s.NextMaintenanceDate),
		string(s.MaintenanceStatus), s.TechnicianNotes)
	if err != nil {
		return 0, fmt.Errorf("create structure: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("structure insert id: %w", err)
	}
	slog.InfoContext(ctx, "Structure saved", "id", id, "ad_location_id", s.AdLocationID)
	return id, nil
}

// ListStructures returns every structure ordered by ID.
func (r *SQLiteRepository) ListStructures(ctx context.Context) ([]core.Structure, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, ad_location_id, license_expiry_date, last_maintenance_date,
			next_maintenance_date, maintenance_status, technician_notes
		FROM structures ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list structures: %w", err)
	}
	defer rows.Close()

	var out []core.Structure
	for rows.Next() {
		var s core.Structure
		var license, last, next sql.NullString
		var status string
		if err := rows.Scan(&s.ID, &s.AdLocationID, &license, &last, &next,
			&status, &s.TechnicianNotes); err != nil {
			return nil, fmt.Errorf("scan structure: %w", err)
		}
		if s.LicenseExpiryDate, err = scanDate(license); err != nil {
			return nil, fmt.Errorf("structure %d license expiry: %w", s.ID, err)
		}
		if s.LastMaintenanceDate, err = scanDate(last); err != nil {
			return nil, fmt.Errorf("structure %d last maintenance: %w", s.ID, err)
		}
		if s.NextMaintenanceDate, err = scanDate(next); err != nil {
			return nil, fmt.Errorf("structure %d next maintenance: %w", s.ID, err)
		}
		s.MaintenanceStatus = core.MaintenanceStatus(status)
		out = append(out, s)
	}
	return out, rows.Err()
}

// CreateAdLocation inserts an ad location and returns its ID.
func (r *SQLiteRepository) CreateAdLocation(ctx context.Context, a core.AdLocation) (int64, error) {
	if err := a.Validate(); err != nil {
		return 0, fmt.Errorf("validate ad location: %w", err)
	}
	res, err := r.db.ExecContext(ctx, `
		INSERT INTO ad_locations (title, address, type, dimensions,
			price_estimate_cents, availability_status)
		VALUES (?, ?, ?, ?, ?, ?)`,
		a.Title, a.Address, a.Type, a.Dimensions,
		a.PriceEstimate.Cents, string(a.AvailabilityStatus))
	if err != nil {
		return 0, fmt.Errorf("create ad location: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("ad location insert id: %w", err)
	}
	slog.InfoContext(ctx, "Ad location saved", "id", id, "title", a.Title)
	return id, nil
}

// ListAdLocations returns every ad location ordered by ID.
func (r *SQLiteRepository) ListAdLocations(ctx context.Context) ([]core.AdLocation, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, address, type, dimensions, price_estimate_cents, availability_status
		FROM ad_locations ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list ad locations: %w", err)
	}
	defer rows.Close()

	var out []core.AdLocation
	for rows.Next() {
		var a core.AdLocation
		var status string
		if err := rows.Scan(&a.ID, &a.Title, &a.Address, &a.Type, &a.Dimensions,
			&a.PriceEstimate.Cents, &status); err != nil {
			return nil, fmt.Errorf("scan ad location: %w", err)
		}
		a.AvailabilityStatus = core.AvailabilityStatus(status)
		out = append(out, a)
	}
	return out, rows.Err()
}

// dateArg converts an optional Date to its stored form. Zero dates are
// stored as NULL.
func dateArg(d core.Date) any {
	if d.IsEmpty() {
		return nil
	}
	return d.Format("2006-01-02")
}

// scanDate parses a nullable stored date back into a core.Date.
func scanDate(s sql.NullString) (core.Date, error) {
	if !s.Valid || s.String == "" {
		return core.Date{}, nil
	}
	return core.ParseDate(s.String)
}
