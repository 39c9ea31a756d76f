package ports

import (
	"context"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/party"
	"freight/internal/core/domain/model/shipment"
)

// Directory resolves identities to roles, companies and the reference data
// loads point at. Lookups signal NotFound when the entity is absent.
type Directory interface {
	AppUser(ctx context.Context, id kernel.UUID) (*party.AppUser, error)

	// ResolveRole returns the active profiles and staff flags of an AppUser.
	ResolveRole(ctx context.Context, appUserID kernel.UUID) (party.RoleResolution, error)

	// CompanyOf returns the company the AppUser manages or, failing that, the
	// one employing it.
	CompanyOf(ctx context.Context, appUserID kernel.UUID) (*party.Company, error)

	// Colleagues returns the roster of the AppUser's company, manager
	// included. A user without a company gets an empty set, not an error.
	Colleagues(ctx context.Context, appUserID kernel.UUID) (party.Employees, error)

	Profile(ctx context.Context, id kernel.UUID) (*party.Profile, error)
	Shipment(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)
	Facility(ctx context.Context, id kernel.UUID) (*shipment.Facility, error)
}
