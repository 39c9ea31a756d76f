package shipment

import (
	"errors"
	"fmt"
	"strings"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"
)

var ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment constructor")

// Shipment groups related loads. Its creator and any delegated admins give
// their companies visibility over every load inside it.
type Shipment struct {
	id        kernel.UUID
	name      string
	createdBy kernel.UUID
	admins    []kernel.UUID

	guard guard.ConstructorGuard
}

func NewShipment(id kernel.UUID, name string, createdBy kernel.UUID) (*Shipment, error) {
	return RestoreShipment(id, name, createdBy, nil)
}

func RestoreShipment(id kernel.UUID, name string, createdBy kernel.UUID, admins []kernel.UUID) (*Shipment, error) {
	s := &Shipment{guard: guard.NewConstructorGuard()}
	if err := errors.Join(s.setID(id), s.setName(name), s.setCreatedBy(createdBy)); err != nil {
		return nil, err
	}
	for _, admin := range admins {
		if err := s.AddAdmin(admin); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *Shipment) Validate() error {
	if s == nil {
		return ErrShipmentIsNotConstructed
	}
	return s.guard.Validate(ErrShipmentIsNotConstructed)
}

func (s *Shipment) ID() kernel.UUID        { return s.id }
func (s *Shipment) Name() string           { return s.name }
func (s *Shipment) CreatedBy() kernel.UUID { return s.createdBy }

// Admins returns a copy of the delegated admin AppUsers.
func (s *Shipment) Admins() []kernel.UUID {
	out := make([]kernel.UUID, len(s.admins))
	copy(out, s.admins)
	return out
}

// AddAdmin delegates read/write access. The (shipment, admin) pair is unique.
func (s *Shipment) AddAdmin(appUserID kernel.UUID) error {
	if err := appUserID.Validate(); err != nil {
		return err
	}
	for _, admin := range s.admins {
		if admin.IsEqual(appUserID) {
			return errs.NewConflictErrorWithCause(
				"shipment admin",
				fmt.Errorf("%s is already an admin of shipment %s", appUserID, s.id),
			)
		}
	}
	s.admins = append(s.admins, appUserID)
	return nil
}

// Stakeholders is the creator followed by the admins.
func (s *Shipment) Stakeholders() []kernel.UUID {
	return append([]kernel.UUID{s.createdBy}, s.admins...)
}

func (s *Shipment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Shipment) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	s.name = name
	return nil
}

func (s *Shipment) setCreatedBy(id kernel.UUID) error {
	if id.IsZero() {
		return errs.NewValueIsRequiredError("created_by")
	}
	s.createdBy = id
	return nil
}
