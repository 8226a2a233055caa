package expiry

import (
	"fmt"

	"adspaces/internal/core"
)

// The adapters below are the only place that knows which field carries
// each record class's deadline and how its feed label is composed.

func rentalDeadlines(clients []core.Client) []deadline {
	ds := make([]deadline, 0, len(clients))
	for _, c := range clients {
		ds = append(ds, deadline{
			id:    c.ID,
			label: c.Name + " - Rental",
			dueAt: c.RentalEndDate,
		})
	}
	return ds
}

func contractDeadlines(landlords []core.Landlord) []deadline {
	ds := make([]deadline, 0, len(landlords))
	for _, l := range landlords {
		ds = append(ds, deadline{
			id:    l.ID,
			label: l.Name + " - Contract",
			dueAt: l.ContractEndDate,
		})
	}
	return ds
}

func licenseDeadlines(structures []core.Structure) []deadline {
	ds := make([]deadline, 0, len(structures))
	for _, s := range structures {
		ds = append(ds, deadline{
			id:    s.ID,
			label: fmt.Sprintf("Structure #%d - License", s.ID),
			dueAt: s.LicenseExpiryDate,
		})
	}
	return ds
}
