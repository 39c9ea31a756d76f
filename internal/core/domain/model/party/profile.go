package party

import (
	"errors"
	"fmt"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

// ErrProfileIsNotConstructed is returned when a Profile was not built by NewProfile or RestoreProfile.
var ErrProfileIsNotConstructed = errors.New("Profile must be created via NewProfile constructor")

// Profile is the role-specific extension of an AppUser: its Carrier,
// Dispatcher or ShipmentParty record. An AppUser owns at most one profile per role.
type Profile struct {
	id        kernel.UUID
	appUserID kernel.UUID
	role      Role
	active    bool

	guard guard.ConstructorGuard
}

// NewProfile creates an active profile for a profile-backed role.
func NewProfile(id, appUserID kernel.UUID, role Role) (*Profile, error) {
	return RestoreProfile(id, appUserID, role, true)
}

// RestoreProfile rebuilds a profile from persistence.
func RestoreProfile(id, appUserID kernel.UUID, role Role, active bool) (*Profile, error) {
	if err := errors.Join(id.Validate(), appUserID.Validate(), role.Validate()); err != nil {
		return nil, err
	}
	if !role.HasProfile() {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"profile role is invalid",
			fmt.Errorf("%s has no sub-profile", role),
		)
	}
	return &Profile{
		id:        id,
		appUserID: appUserID,
		role:      role,
		active:    active,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (p *Profile) Validate() error {
	if p == nil {
		return ErrProfileIsNotConstructed
	}
	return p.guard.Validate(ErrProfileIsNotConstructed)
}

func (p *Profile) ID() kernel.UUID        { return p.id }
func (p *Profile) AppUserID() kernel.UUID { return p.appUserID }
func (p *Profile) Role() Role             { return p.role }
func (p *Profile) IsActive() bool         { return p.active }

// Deactivate hides the profile from role resolution.
func (p *Profile) Deactivate() {
	p.active = false
}

// RequireRole checks that the profile is active and of the expected sub-type.
func (p *Profile) RequireRole(role Role) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if p.role != role {
		return errs.NewValueIsInvalidErrorWithCause(
			"profile role mismatch",
			fmt.Errorf("profile %s is a %s, expected %s", p.id, p.role, role),
		)
	}
	if !p.active {
		return errs.NewObjectNotFoundErrorWithCause(role.String(), p.id.String(), errors.New("profile is inactive"))
	}
	return nil
}

// RoleResolution is the answer to "which roles does this AppUser hold":
// one optional profile per profile-backed role plus the two staff flags.
type RoleResolution struct {
	Carrier       *Profile
	Dispatcher    *Profile
	ShipmentParty *Profile
	IsManager     bool
	IsSupport     bool
}

// Profile returns the resolved profile for role, if any.
func (r RoleResolution) Profile(role Role) (*Profile, bool) {
	var p *Profile
	switch role {
	case RoleCarrier:
		p = r.Carrier
	case RoleDispatcher:
		p = r.Dispatcher
	case RoleShipmentParty:
		p = r.ShipmentParty
	case UnknownRole, RoleManager, RoleSupport:
		return nil, false
	}
	return p, p != nil
}

// IsEmpty reports whether no role was resolved at all.
func (r RoleResolution) IsEmpty() bool {
	return r.Carrier == nil && r.Dispatcher == nil && r.ShipmentParty == nil && !r.IsManager && !r.IsSupport
}
