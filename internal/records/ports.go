// Package records defines the ports through which record providers supply
// the inventory collections. The expiration feed and the dashboard only
// depend on these interfaces; where the records actually live (SQLite,
// seed files, a shared spreadsheet) is a backend decision.
package records

import (
	"context"

	"adspaces/internal/core"
)

type (
	ClientLister interface {
		ListClients(ctx context.Context) ([]core.Client, error)
	}

	LandlordLister interface {
		ListLandlords(ctx context.Context) ([]core.Landlord, error)
	}

	StructureLister interface {
		ListStructures(ctx context.Context) ([]core.Structure, error)
	}

	AdLocationLister interface {
		ListAdLocations(ctx context.Context) ([]core.AdLocation, error)
	}

	// Provider bundles the four collections a full backend serves.
	Provider interface {
		ClientLister
		LandlordLister
		StructureLister
		AdLocationLister
	}
)
