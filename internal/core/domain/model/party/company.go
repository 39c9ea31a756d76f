package party

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

// ErrCompanyIsNotConstructed is returned when a Company was not built by NewCompany.
var ErrCompanyIsNotConstructed = errors.New("Company must be created via NewCompany constructor")

// identifierPattern accepts EINs ("12-3456789"), SCACs ("ABCD") and other
// registry identifiers made of upper-case letters, digits and hyphens.
var identifierPattern = regexp.MustCompile(`^[A-Z0-9][A-Z0-9-]{1,31}$`)

// Company is the organisational owner of employees and the unit of access control.
type Company struct {
	id         kernel.UUID
	identifier string
	name       string
	managerID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewCompany validates the identifier and requires a manager.
func NewCompany(id kernel.UUID, identifier, name string, managerID kernel.UUID) (*Company, error) {
	c := &Company{guard: guard.NewConstructorGuard()}
	if err := errors.Join(
		id.Validate(),
		managerID.Validate(),
		c.setIdentifier(identifier),
		c.setName(name),
	); err != nil {
		return nil, err
	}
	c.id = id
	c.managerID = managerID
	return c, nil
}

func (c *Company) Validate() error {
	if c == nil {
		return ErrCompanyIsNotConstructed
	}
	return c.guard.Validate(ErrCompanyIsNotConstructed)
}

func (c *Company) ID() kernel.UUID        { return c.id }
func (c *Company) Identifier() string     { return c.identifier }
func (c *Company) Name() string           { return c.name }
func (c *Company) ManagerID() kernel.UUID { return c.managerID }

func (c *Company) setIdentifier(identifier string) error {
	normalized := strings.ToUpper(strings.TrimSpace(identifier))
	if normalized == "" {
		return errs.NewValueIsRequiredError("company identifier")
	}
	if !identifierPattern.MatchString(normalized) {
		return errs.NewValueIsInvalidErrorWithCause(
			"company identifier",
			fmt.Errorf("%q is not a valid EIN/SCAC identifier", identifier),
		)
	}
	c.identifier = normalized
	return nil
}

func (c *Company) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("company name")
	}
	c.name = strings.TrimSpace(name)
	return nil
}

// Employees is the set of AppUsers employed by one company, manager included.
type Employees map[kernel.UUID]struct{}

// NewEmployees builds the set from a list of AppUser ids.
func NewEmployees(ids ...kernel.UUID) Employees {
	set := make(Employees, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

// Contains reports membership. The zero UUID is never a member.
func (e Employees) Contains(id kernel.UUID) bool {
	if id.IsZero() {
		return false
	}
	_, ok := e[id]
	return ok
}

// ContainsAny reports whether at least one id is a member.
func (e Employees) ContainsAny(ids ...kernel.UUID) bool {
	for _, id := range ids {
		if e.Contains(id) {
			return true
		}
	}
	return false
}
