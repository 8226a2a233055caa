package google

import (
	"fmt"
	"strconv"
	"strings"

	"adspaces/internal/core"
)

// Each sheet's first row is a header; rows are matched to columns by
// header name so column order in the spreadsheet does not matter.
// Malformed rows are skipped rather than failing the whole read: a shared
// spreadsheet routinely carries half-filled rows.

func parseClients(values [][]interface{}) ([]core.Client, error) {
	cols, rows, err := headerColumns(values, "ID", "Name")
	if err != nil {
		return nil, fmt.Errorf("clients sheet: %w", err)
	}
	var out []core.Client
	for _, row := range rows {
		id, ok := parseID(cell(row, col(cols, "ID")))
		if !ok {
			continue
		}
		c := core.Client{
			ID:            id,
			Name:          cell(row, col(cols, "Name")),
			Company:       cell(row, col(cols, "Company")),
			Email:         cell(row, col(cols, "Email")),
			Phone:         cell(row, col(cols, "Phone")),
			PaymentStatus: core.PaymentStatus(cell(row, col(cols, "PaymentStatus"))),
			AccountStatus: core.AccountStatus(cell(row, col(cols, "AccountStatus"))),
		}
		c.RentAmount.Cents = parseCents(cell(row, col(cols, "RentAmount")))
		c.RentalStartDate = parseOptionalDate(cell(row, col(cols, "RentalStartDate")))
		c.RentalEndDate = parseOptionalDate(cell(row, col(cols, "RentalEndDate")))
		out = append(out, c)
	}
	return out, nil
}

func parseLandlords(values [][]interface{}) ([]core.Landlord, error) {
	cols, rows, err := headerColumns(values, "ID", "Name")
	if err != nil {
		return nil, fmt.Errorf("landlords sheet: %w", err)
	}
	var out []core.Landlord
	for _, row := range rows {
		id, ok := parseID(cell(row, col(cols, "ID")))
		if !ok {
			continue
		}
		l := core.Landlord{
			ID:            id,
			Name:          cell(row, col(cols, "Name")),
			Company:       cell(row, col(cols, "Company")),
			Email:         cell(row, col(cols, "Email")),
			Phone:         cell(row, col(cols, "Phone")),
			PaymentStatus: core.PaymentStatus(cell(row, col(cols, "PaymentStatus"))),
		}
		l.RentAmount.Cents = parseCents(cell(row, col(cols, "RentAmount")))
		l.ContractStartDate = parseOptionalDate(cell(row, col(cols, "ContractStartDate")))
		l.ContractEndDate = parseOptionalDate(cell(row, col(cols, "ContractEndDate")))
		out = append(out, l)
	}
	return out, nil
}

func parseStructures(values [][]interface{}) ([]core.Structure, error) {
	cols, rows, err := headerColumns(values, "ID", "AdLocationID")
	if err != nil {
		return nil, fmt.Errorf("structures sheet: %w", err)
	}
	var out []core.Structure
	for _, row := range rows {
		id, ok := parseID(cell(row, col(cols, "ID")))
		if !ok {
			continue
		}
		locID, ok := parseID(cell(row, col(cols, "AdLocationID")))
		if !ok {
			continue
		}
		s := core.Structure{
			ID:                id,
			AdLocationID:      locID,
			MaintenanceStatus: core.MaintenanceStatus(cell(row, col(cols, "MaintenanceStatus"))),
			TechnicianNotes:   cell(row, col(cols, "TechnicianNotes")),
		}
		s.LicenseExpiryDate = parseOptionalDate(cell(row, col(cols, "LicenseExpiryDate")))
		s.LastMaintenanceDate = parseOptionalDate(cell(row, col(cols, "LastMaintenanceDate")))
		s.NextMaintenanceDate = parseOptionalDate(cell(row, col(cols, "NextMaintenanceDate")))
		out = append(out, s)
	}
	return out, nil
}

func parseAdLocations(values [][]interface{}) ([]core.AdLocation, error) {
	cols, rows, err := headerColumns(values, "ID", "Title")
	if err != nil {
		return nil, fmt.Errorf("ad locations sheet: %w", err)
	}
	var out []core.AdLocation
	for _, row := range rows {
		id, ok := parseID(cell(row, col(cols, "ID")))
		if !ok {
			continue
		}
		a := core.AdLocation{
			ID:                 id,
			Title:              cell(row, col(cols, "Title")),
			Address:            cell(row, col(cols, "Address")),
			Type:               cell(row, col(cols, "Type")),
			Dimensions:         cell(row, col(cols, "Dimensions")),
			AvailabilityStatus: core.AvailabilityStatus(cell(row, col(cols, "AvailabilityStatus"))),
		}
		a.PriceEstimate.Cents = parseCents(cell(row, col(cols, "PriceEstimate")))
		out = append(out, a)
	}
	return out, nil
}

// headerColumns maps header names to column indexes and returns the data
// rows. required headers must all be present.
func headerColumns(values [][]interface{}, required ...string) (map[string]int, [][]interface{}, error) {
	if len(values) == 0 {
		return map[string]int{}, nil, nil
	}
	cols := make(map[string]int)
	for i, h := range values[0] {
		name := strings.TrimSpace(fmt.Sprint(h))
		if name != "" {
			cols[name] = i
		}
	}
	var missing []string
	for _, name := range required {
		if _, ok := cols[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, nil, fmt.Errorf("missing headers %s", strings.Join(missing, ","))
	}
	return cols, values[1:], nil
}

// cell returns the trimmed string value at col, or "" when the row is
// short or the header was absent.
func cell(row []interface{}, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return strings.TrimSpace(fmt.Sprint(row[col]))
}

// col resolves a header name to its column index, -1 when absent.
func col(cols map[string]int, name string) int {
	if i, ok := cols[name]; ok {
		return i
	}
	return -1
}

func parseID(s string) (int64, bool) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// parseCents reads a major-unit decimal amount as entered in the sheet
// ("2500" or "2500.00") into cents. Unparseable cells become zero.
func parseCents(s string) int64 {
	if s == "" {
		return 0
	}
	cents, err := core.ParseDecimalToCents(s)
	if err != nil {
		return 0
	}
	return cents
}

func parseOptionalDate(s string) core.Date {
	if s == "" {
		return core.Date{}
	}
	d, err := core.ParseDate(s)
	if err != nil {
		return core.Date{}
	}
	return d
}
