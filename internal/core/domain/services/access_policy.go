package services

import (
	"fmt"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/load"
	"freight/internal/core/domain/model/offer"
	"freight/internal/core/domain/model/party"
	"freight/internal/core/domain/model/shipment"
	"freight/internal/pkg/errs"
)

// AccessPolicy decides who may see and act on a load. Authorization is
// company-scoped: any employee of a party's company may act for that party.
//
// colleagues is always the requester's own company roster (manager included);
// an empty set means the requester has no company.
type AccessPolicy struct{}

func NewAccessPolicy() AccessPolicy {
	return AccessPolicy{}
}

// CanView is the per-row visibility predicate. It holds when the requester's
// company employs the load's creator, any assigned party, the shipment's
// creator or one of the shipment's delegated admins.
func (AccessPolicy) CanView(l *load.Load, s *shipment.Shipment, colleagues party.Employees) bool {
	if len(colleagues) == 0 {
		return false
	}
	if colleagues.ContainsAny(l.PartyAppUsers()...) {
		return true
	}
	return s != nil && colleagues.ContainsAny(s.Stakeholders()...)
}

// ActsFor reports whether actor may act on behalf of owner: the same AppUser,
// or a fellow employee.
func (AccessPolicy) ActsFor(actor, owner kernel.UUID, colleagues party.Employees) bool {
	if actor.IsEqual(owner) {
		return true
	}
	return colleagues.Contains(actor) && colleagues.Contains(owner)
}

// AuthorizeView returns PermissionDenied when CanView fails.
func (p AccessPolicy) AuthorizeView(l *load.Load, s *shipment.Shipment, colleagues party.Employees) error {
	if !p.CanView(l, s, colleagues) {
		return errs.NewPermissionDeniedErrorWithCause("view load", fmt.Errorf("load %s", l.ID()))
	}
	return nil
}

// AuthorizeStatusChange gates explicit status requests: transit and delivery
// belong to the dispatcher side, cancellation to any core party or the creator.
func (p AccessPolicy) AuthorizeStatusChange(
	l *load.Load,
	target load.Status,
	actor kernel.UUID,
	colleagues party.Employees,
) error {
	var owners []kernel.UUID
	switch target {
	case load.InTransit, load.Delivered:
		owners = []kernel.UUID{l.Dispatcher().AppUserID}
	case load.Canceled:
		owners = append(l.CoreParticipants(), l.CreatedBy())
	default:
		return nil // rejected by the state machine
	}
	for _, owner := range owners {
		if p.ActsFor(actor, owner, colleagues) {
			return nil
		}
	}
	return errs.NewPermissionDeniedErrorWithCause(
		"update load status",
		fmt.Errorf("%s may not move load %s to %s", actor, l.Name(), target),
	)
}

// AuthorizeCreator gates draft publishing and soft deletion.
func (p AccessPolicy) AuthorizeCreator(l *load.Load, actor kernel.UUID, colleagues party.Employees, action string) error {
	if p.ActsFor(actor, l.CreatedBy(), colleagues) {
		return nil
	}
	return errs.NewPermissionDeniedErrorWithCause(action, fmt.Errorf("load %s", l.Name()))
}

// AuthorizeDispatcher gates opening offer threads.
func (p AccessPolicy) AuthorizeDispatcher(l *load.Load, actor kernel.UUID, colleagues party.Employees) error {
	if p.ActsFor(actor, l.Dispatcher().AppUserID, colleagues) {
		return nil
	}
	return errs.NewPermissionDeniedErrorWithCause(
		"create offer",
		fmt.Errorf("only the dispatcher of load %s may open offers", l.Name()),
	)
}

// OfferSide resolves which side of the thread the actor speaks for. Exact
// identity wins over company membership.
func (p AccessPolicy) OfferSide(o *offer.Offer, actor kernel.UUID, colleagues party.Employees) (offer.Side, error) {
	switch {
	case actor.IsEqual(o.Dispatcher().AppUserID):
		return offer.SideDispatcher, nil
	case actor.IsEqual(o.Counterparty().AppUserID):
		return offer.SideCounterparty, nil
	case p.ActsFor(actor, o.Dispatcher().AppUserID, colleagues):
		return offer.SideDispatcher, nil
	case p.ActsFor(actor, o.Counterparty().AppUserID, colleagues):
		return offer.SideCounterparty, nil
	}
	return 0, errs.NewPermissionDeniedErrorWithCause("act on offer", fmt.Errorf("offer %s", o.ID()))
}

// VisibleOffers splits offers by role: the dispatcher's company sees both
// legs, a customer's or carrier's company only its own threads.
func (p AccessPolicy) VisibleOffers(l *load.Load, offers []*offer.Offer, actor kernel.UUID, colleagues party.Employees) []*offer.Offer {
	if p.ActsFor(actor, l.Dispatcher().AppUserID, colleagues) {
		return offers
	}
	visible := make([]*offer.Offer, 0, len(offers))
	for _, o := range offers {
		if p.ActsFor(actor, o.Counterparty().AppUserID, colleagues) {
			visible = append(visible, o)
		}
	}
	return visible
}
