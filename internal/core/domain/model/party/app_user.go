package party

import (
	"errors"
	"fmt"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

// ErrAppUserIsNotConstructed is returned when an AppUser was not built by NewAppUser.
var ErrAppUserIsNotConstructed = errors.New("AppUser must be created via NewAppUser constructor")

// AppUser is a person account. Its user type fixes which roles it may take;
// the selected role is the lens it currently acts under.
type AppUser struct {
	id           kernel.UUID
	userType     UserType
	selectedRole Role

	guard guard.ConstructorGuard
}

// NewAppUser validates that selected is one of the roles userType grants.
func NewAppUser(id kernel.UUID, userType UserType, selected Role) (*AppUser, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if len(userType.Roles()) == 0 {
		return nil, errs.NewValueIsRequiredError("user type")
	}

	u := &AppUser{
		id:       id,
		userType: userType,
		guard:    guard.NewConstructorGuard(),
	}
	if err := u.SelectRole(selected); err != nil {
		return nil, err
	}
	return u, nil
}

// Validate ensures the user was built by NewAppUser.
func (u *AppUser) Validate() error {
	if u == nil {
		return ErrAppUserIsNotConstructed
	}
	return u.guard.Validate(ErrAppUserIsNotConstructed)
}

func (u *AppUser) ID() kernel.UUID         { return u.id }
func (u *AppUser) UserType() UserType      { return u.userType }
func (u *AppUser) SelectedRole() Role      { return u.selectedRole }
func (u *AppUser) IsManager() bool         { return u.userType.Has(RoleManager) }
func (u *AppUser) IsSupport() bool         { return u.userType.Has(RoleSupport) }
func (u *AppUser) CanActAs(role Role) bool { return u.userType.Has(role) }

// SelectRole switches the acting lens. The role must be granted by the user type.
func (u *AppUser) SelectRole(role Role) error {
	if err := role.Validate(); err != nil {
		return err
	}
	if !u.userType.Has(role) {
		return errs.NewValueIsInvalidErrorWithCause(
			"selected role is invalid",
			fmt.Errorf("%s is not permitted for user type %s", role, u.userType),
		)
	}
	u.selectedRole = role
	return nil
}
