package party

import (
	"fmt"
	"sort"
	"strings"

	"freight/internal/pkg/errs"
)

// Role is one lens an AppUser can act under.
type Role int

const (
	// UnknownRole catches uninitialized values.
	UnknownRole Role = iota
	RoleCarrier
	RoleDispatcher
	RoleShipmentParty
	RoleManager
	RoleSupport
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		UnknownRole:       "unknown",
		RoleCarrier:       "carrier",
		RoleDispatcher:    "dispatcher",
		RoleShipmentParty: "shipment party",
		RoleManager:       "manager",
		RoleSupport:       "support",
	}
}

// String returns the persisted name of the role.
func (r Role) String() string {
	if s, ok := getRoleStrings()[r]; ok {
		return s
	}
	return "unknown"
}

// Validate rejects UnknownRole and out-of-range values.
func (r Role) Validate() error {
	if r <= UnknownRole || r > RoleSupport {
		return errs.NewValueIsInvalidErrorWithCause("role is invalid", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// HasProfile reports whether the role is backed by a sub-profile
// (carrier, dispatcher, shipment party).
func (r Role) HasProfile() bool {
	return r == RoleCarrier || r == RoleDispatcher || r == RoleShipmentParty
}

// ParseRole is the inverse of String.
func ParseRole(s string) (Role, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for r, name := range getRoleStrings() {
		if r != UnknownRole && name == needle {
			return r, nil
		}
	}
	return UnknownRole, errs.NewValueIsInvalidErrorWithCause("role is invalid", fmt.Errorf("%q is not a known role", s))
}

// UserType is the set of roles an AppUser is entitled to. It is either a
// non-empty combination of carrier, dispatcher and shipment party, or exactly
// one of manager or support.
type UserType uint8

func bit(r Role) UserType {
	return 1 << uint(r)
}

// NewUserType builds a UserType from roles, rejecting empty sets, unknown roles
// and manager or support mixed with anything else.
func NewUserType(roles ...Role) (UserType, error) {
	if len(roles) == 0 {
		return 0, errs.NewValueIsRequiredError("user type")
	}

	var ut UserType
	for _, r := range roles {
		if err := r.Validate(); err != nil {
			return 0, err
		}
		ut |= bit(r)
	}

	exclusive := ut.Has(RoleManager) || ut.Has(RoleSupport)
	if exclusive && len(ut.Roles()) > 1 {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"user type is invalid",
			fmt.Errorf("%s cannot be combined with other roles", ut),
		)
	}
	return ut, nil
}

// ParseUserType accepts the hyphen-joined form, e.g. "carrier-dispatcher".
func ParseUserType(s string) (UserType, error) {
	if strings.TrimSpace(s) == "" {
		return 0, errs.NewValueIsRequiredError("user type")
	}
	parts := strings.Split(s, "-")
	roles := make([]Role, 0, len(parts))
	for _, p := range parts {
		r, err := ParseRole(p)
		if err != nil {
			return 0, err
		}
		roles = append(roles, r)
	}
	return NewUserType(roles...)
}

// Has reports whether role belongs to the set.
func (u UserType) Has(role Role) bool {
	return role > UnknownRole && u&bit(role) != 0
}

// Roles lists the roles in declaration order.
func (u UserType) Roles() []Role {
	roles := make([]Role, 0, 3)
	for r := RoleCarrier; r <= RoleSupport; r++ {
		if u.Has(r) {
			roles = append(roles, r)
		}
	}
	return roles
}

// String renders the hyphen-joined legacy form.
func (u UserType) String() string {
	names := make([]string, 0, 3)
	for _, r := range u.Roles() {
		names = append(names, r.String())
	}
	sort.Strings(names)
	return strings.Join(names, "-")
}
