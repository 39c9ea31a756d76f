package shipment

import (
	"errors"
	"strings"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
)

// Facility is a named address owned by a shipment party profile.
type Facility struct {
	id      kernel.UUID
	ownerID kernel.UUID
	name    string
	address string
}

func NewFacility(id, ownerID kernel.UUID, name, address string) (*Facility, error) {
	name = strings.TrimSpace(name)
	address = strings.TrimSpace(address)

	var nameErr, addressErr error
	if name == "" {
		nameErr = errs.NewValueIsRequiredError("facility name")
	}
	if address == "" {
		addressErr = errs.NewValueIsRequiredError("facility address")
	}
	if err := errors.Join(id.Validate(), ownerID.Validate(), nameErr, addressErr); err != nil {
		return nil, err
	}
	return &Facility{id: id, ownerID: ownerID, name: name, address: address}, nil
}

func (f *Facility) ID() kernel.UUID      { return f.id }
func (f *Facility) OwnerID() kernel.UUID { return f.ownerID }
func (f *Facility) Name() string         { return f.name }
func (f *Facility) Address() string      { return f.address }
