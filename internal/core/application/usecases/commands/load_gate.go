package commands

import (
	"context"
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/load"
	"freight/internal/core/domain/model/party"
	"freight/internal/core/domain/model/shipment"
	"freight/internal/core/domain/services"
	"freight/internal/core/ports"
	"freight/internal/pkg/errs"
)

// loadGate answers the visibility question every load command starts with.
type loadGate struct {
	directory ports.Directory
	policy    services.AccessPolicy
}

func newLoadGate(directory ports.Directory) loadGate {
	return loadGate{directory: directory, policy: services.NewAccessPolicy()}
}

func (g loadGate) colleagues(ctx context.Context, actor kernel.UUID) (party.Employees, error) {
	return g.directory.Colleagues(ctx, actor)
}

// authorizeView returns PermissionDenied when the requester's company has no
// relation to the load or its shipment.
func (g loadGate) authorizeView(ctx context.Context, l *load.Load, colleagues party.Employees) error {
	var s *shipment.Shipment
	found, err := g.directory.Shipment(ctx, l.ShipmentID())
	switch {
	case err == nil:
		s = found
	case !errors.Is(err, errs.ErrObjectNotFound):
		return err
	}
	return g.policy.AuthorizeView(l, s, colleagues)
}
