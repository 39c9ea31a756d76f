package commands_test

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/load"
	"freight/internal/core/domain/model/offer"
	"freight/internal/core/domain/model/party"
	"freight/internal/core/domain/model/shipment"
	"freight/internal/core/ports"
	"freight/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// world is a small party directory: one AppUser per role, each in its own company.
type world struct {
	users      map[kernel.UUID]*party.AppUser
	profiles   map[kernel.UUID]*party.Profile
	colleagues map[kernel.UUID]party.Employees
	shipment   *shipment.Shipment
	pickUp     *shipment.Facility
	dropOff    *shipment.Facility

	dispatcher, customer, shipper, consignee, carrier *party.Profile
}

func newWorld(t *testing.T) *world {
	t.Helper()
	w := &world{
		users:      map[kernel.UUID]*party.AppUser{},
		profiles:   map[kernel.UUID]*party.Profile{},
		colleagues: map[kernel.UUID]party.Employees{},
	}
	w.dispatcher = w.addUser(t, party.RoleDispatcher)
	w.customer = w.addUser(t, party.RoleShipmentParty)
	w.shipper = w.addUser(t, party.RoleShipmentParty)
	w.consignee = w.addUser(t, party.RoleShipmentParty)
	w.carrier = w.addUser(t, party.RoleCarrier)

	var err error
	w.shipment, err = shipment.NewShipment(kernel.NewUUID(), "coils", w.dispatcher.AppUserID())
	require.NoError(t, err)
	w.pickUp, err = shipment.NewFacility(kernel.NewUUID(), w.shipper.ID(), "Mill", "1 Mill Rd")
	require.NoError(t, err)
	w.dropOff, err = shipment.NewFacility(kernel.NewUUID(), w.consignee.ID(), "Yard", "9 Yard St")
	require.NoError(t, err)
	return w
}

func (w *world) addUser(t *testing.T, role party.Role) *party.Profile {
	t.Helper()
	ut, err := party.NewUserType(role)
	require.NoError(t, err)
	u, err := party.NewAppUser(kernel.NewUUID(), ut, role)
	require.NoError(t, err)
	p, err := party.NewProfile(kernel.NewUUID(), u.ID(), role)
	require.NoError(t, err)

	w.users[u.ID()] = u
	w.profiles[p.ID()] = p
	w.colleagues[u.ID()] = party.NewEmployees(u.ID())
	return p
}

func (w *world) ref(p *party.Profile) load.PartyRef {
	return load.PartyRef{ProfileID: p.ID(), AppUserID: p.AppUserID()}
}

func (w *world) createLoadParams(loadID kernel.UUID) commands.CreateLoadParams {
	now := time.Now()
	return commands.CreateLoadParams{
		LoadID:       loadID,
		ShipmentID:   w.shipment.ID(),
		Actor:        w.dispatcher.AppUserID(),
		Customer:     w.customer.ID(),
		Shipper:      w.shipper.ID(),
		Consignee:    w.consignee.ID(),
		Dispatcher:   w.dispatcher.ID(),
		PickUp:       w.pickUp.ID(),
		Destination:  w.dropOff.ID(),
		PickUpDate:   now.Add(24 * time.Hour),
		DeliveryDate: now.Add(96 * time.Hour),
		Freight: load.Freight{
			Weight:        decimal.NewFromInt(18000),
			Quantity:      decimal.NewFromInt(12),
			Commodity:     "steel",
			EquipmentType: "flatbed",
			Type:          load.FTL,
		},
	}
}

// newLoad builds a load owned by the world's parties in the given status.
func (w *world) newLoad(t *testing.T, status load.Status) *load.Load {
	t.Helper()
	now := time.Now()
	l, err := load.NewLoad(load.NewLoadParams{
		ID:         kernel.NewUUID(),
		ShipmentID: w.shipment.ID(),
		CreatedBy:  w.dispatcher.AppUserID(),
		Parties: load.Parties{
			Customer:   w.ref(w.customer),
			Shipper:    w.ref(w.shipper),
			Consignee:  w.ref(w.consignee),
			Dispatcher: w.ref(w.dispatcher),
		},
		PickUpLocation: w.pickUp.ID(),
		Destination:    w.dropOff.ID(),
		Schedule:       load.Schedule{PickUpDate: now.Add(time.Hour), DeliveryDate: now.Add(48 * time.Hour)},
		Freight:        load.Freight{Type: load.LTL},
	}, now)
	require.NoError(t, err)
	if status == load.Created {
		return l
	}

	restored, err := load.RestoreLoad(load.Snapshot{
		ID:             l.ID(),
		Name:           l.Name(),
		ShipmentID:     l.ShipmentID(),
		CreatedBy:      l.CreatedBy(),
		Parties:        l.Parties(),
		PickUpLocation: l.PickUpLocation(),
		Destination:    l.Destination(),
		Schedule:       l.Schedule(),
		Freight:        l.Freight(),
		Status:         status,
		CreatedAt:      l.CreatedAt(),
		UpdatedAt:      l.UpdatedAt(),
		Version:        1,
	})
	require.NoError(t, err)
	return restored
}

// fakeDirectory serves the world.
type fakeDirectory struct{ w *world }

func (d fakeDirectory) AppUser(_ context.Context, id kernel.UUID) (*party.AppUser, error) {
	if u, ok := d.w.users[id]; ok {
		return u, nil
	}
	return nil, errs.NewObjectNotFoundError("app user", id.String())
}

func (d fakeDirectory) ResolveRole(_ context.Context, id kernel.UUID) (party.RoleResolution, error) {
	var r party.RoleResolution
	for _, p := range d.w.profiles {
		if !p.AppUserID().IsEqual(id) {
			continue
		}
		switch p.Role() {
		case party.RoleCarrier:
			r.Carrier = p
		case party.RoleDispatcher:
			r.Dispatcher = p
		case party.RoleShipmentParty:
			r.ShipmentParty = p
		case party.UnknownRole, party.RoleManager, party.RoleSupport:
		}
	}
	return r, nil
}

func (d fakeDirectory) CompanyOf(_ context.Context, id kernel.UUID) (*party.Company, error) {
	return nil, errs.NewObjectNotFoundError("company", id.String())
}

func (d fakeDirectory) Colleagues(_ context.Context, id kernel.UUID) (party.Employees, error) {
	return d.w.colleagues[id], nil
}

func (d fakeDirectory) Profile(_ context.Context, id kernel.UUID) (*party.Profile, error) {
	if p, ok := d.w.profiles[id]; ok {
		return p, nil
	}
	return nil, errs.NewObjectNotFoundError("profile", id.String())
}

func (d fakeDirectory) Shipment(_ context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	if d.w.shipment.ID().IsEqual(id) {
		return d.w.shipment, nil
	}
	return nil, errs.NewObjectNotFoundError("shipment", id.String())
}

func (d fakeDirectory) Facility(_ context.Context, id kernel.UUID) (*shipment.Facility, error) {
	for _, f := range []*shipment.Facility{d.w.pickUp, d.w.dropOff} {
		if f.ID().IsEqual(id) {
			return f, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("facility", id.String())
}

// memoryStore is an in-memory unit of work: every UoW shares the same maps.
type memoryStore struct {
	mu     sync.Mutex
	loads  map[kernel.UUID]*load.Load
	offers map[kernel.UUID]*offer.Offer
}

func newMemoryStore() *memoryStore {
	return &memoryStore{loads: map[kernel.UUID]*load.Load{}, offers: map[kernel.UUID]*offer.Offer{}}
}

func (s *memoryStore) Create() ports.UnitOfWork               { return s }
func (s *memoryStore) Begin(context.Context) error            { return nil }
func (s *memoryStore) Commit(context.Context) error           { return nil }
func (s *memoryStore) Rollback(context.Context) error         { return nil }
func (s *memoryStore) LoadRepository() ports.LoadRepository   { return memoryLoads{s} }
func (s *memoryStore) OfferRepository() ports.OfferRepository { return memoryOffers{s} }

type memoryLoads struct{ s *memoryStore }

func (r memoryLoads) Add(_ context.Context, l *load.Load) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.loads[l.ID()] = l
	return nil
}

func (r memoryLoads) Update(ctx context.Context, l *load.Load) error { return r.Add(ctx, l) }

func (r memoryLoads) Get(_ context.Context, id kernel.UUID) (*load.Load, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if l, ok := r.s.loads[id]; ok {
		return l, nil
	}
	return nil, errs.NewObjectNotFoundError("load", id.String())
}

func (r memoryLoads) GetForUpdate(ctx context.Context, id kernel.UUID) (*load.Load, error) {
	l, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if l.IsDeleted() {
		return nil, errs.NewObjectNotFoundError("load", id.String())
	}
	return l, nil
}

func (r memoryLoads) DeleteExpired(context.Context, time.Time) (int64, error) { return 0, nil }

type memoryOffers struct{ s *memoryStore }

func (r memoryOffers) Add(_ context.Context, o *offer.Offer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.offers[o.ID()] = o
	return nil
}

func (r memoryOffers) Update(ctx context.Context, o *offer.Offer) error { return r.Add(ctx, o) }

func (r memoryOffers) Get(_ context.Context, id kernel.UUID) (*offer.Offer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if o, ok := r.s.offers[id]; ok {
		return o, nil
	}
	return nil, errs.NewObjectNotFoundError("offer", id.String())
}

func (r memoryOffers) GetForUpdate(ctx context.Context, id kernel.UUID) (*offer.Offer, error) {
	return r.Get(ctx, id)
}

func (r memoryOffers) ListByLoad(_ context.Context, loadID kernel.UUID) ([]*offer.Offer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]*offer.Offer, 0)
	for _, o := range r.s.offers {
		if o.LoadID().IsEqual(loadID) {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt().Before(out[j].CreatedAt()) })
	return out, nil
}

// recordingNotifier keeps every delivered notification.
type recordingNotifier struct {
	mu   sync.Mutex
	sent []ports.Notification
}

func (n *recordingNotifier) Notify(_ context.Context, msg ports.Notification) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, msg)
	return nil
}

func (n *recordingNotifier) actions(recipient kernel.UUID) []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	var out []string
	for _, msg := range n.sent {
		if msg.Recipient.IsEqual(recipient) {
			out = append(out, msg.Action)
		}
	}
	return out
}

// memoryAgreements is an in-memory document service.
type memoryAgreements struct {
	agreed map[kernel.UUID]ports.FinalAgreement
}

func (a *memoryAgreements) Get(_ context.Context, loadID kernel.UUID) (ports.FinalAgreement, error) {
	return a.agreed[loadID], nil
}

func (a *memoryAgreements) SetPartyAgreed(_ context.Context, loadID kernel.UUID, p ports.AgreementParty) error {
	fa := a.agreed[loadID]
	fa.LoadID = loadID
	switch p {
	case ports.AgreementCustomer:
		fa.DidCustomerAgree = true
	case ports.AgreementCarrier:
		fa.DidCarrierAgree = true
	}
	a.agreed[loadID] = fa
	return nil
}
