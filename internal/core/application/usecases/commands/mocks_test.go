package commands_test

import (
	"context"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/load"
	"freight/internal/core/domain/model/offer"
	"freight/internal/core/domain/model/party"
	"freight/internal/core/domain/model/shipment"
	"freight/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockLoadRepository struct{ mock.Mock }

func (m *MockLoadRepository) Add(ctx context.Context, l *load.Load) error {
	return m.Called(ctx, l).Error(0)
}

func (m *MockLoadRepository) Update(ctx context.Context, l *load.Load) error {
	return m.Called(ctx, l).Error(0)
}

func (m *MockLoadRepository) Get(ctx context.Context, id kernel.UUID) (*load.Load, error) {
	args := m.Called(ctx, id)
	l, _ := args.Get(0).(*load.Load)
	return l, args.Error(1)
}

func (m *MockLoadRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*load.Load, error) {
	args := m.Called(ctx, id)
	l, _ := args.Get(0).(*load.Load)
	return l, args.Error(1)
}

func (m *MockLoadRepository) DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

type MockOfferRepository struct{ mock.Mock }

func (m *MockOfferRepository) Add(ctx context.Context, o *offer.Offer) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOfferRepository) Update(ctx context.Context, o *offer.Offer) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOfferRepository) Get(ctx context.Context, id kernel.UUID) (*offer.Offer, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*offer.Offer)
	return o, args.Error(1)
}

func (m *MockOfferRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*offer.Offer, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*offer.Offer)
	return o, args.Error(1)
}

func (m *MockOfferRepository) ListByLoad(ctx context.Context, loadID kernel.UUID) ([]*offer.Offer, error) {
	args := m.Called(ctx, loadID)
	offers, _ := args.Get(0).([]*offer.Offer)
	return offers, args.Error(1)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockUoW) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *MockUoW) LoadRepository() ports.LoadRepository {
	return m.Called().Get(0).(ports.LoadRepository)
}

func (m *MockUoW) OfferRepository() ports.OfferRepository {
	return m.Called().Get(0).(ports.OfferRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() ports.UnitOfWork {
	return m.Called().Get(0).(ports.UnitOfWork)
}

type MockDirectory struct{ mock.Mock }

func (m *MockDirectory) AppUser(ctx context.Context, id kernel.UUID) (*party.AppUser, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*party.AppUser)
	return u, args.Error(1)
}

func (m *MockDirectory) ResolveRole(ctx context.Context, id kernel.UUID) (party.RoleResolution, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(party.RoleResolution), args.Error(1)
}

func (m *MockDirectory) CompanyOf(ctx context.Context, id kernel.UUID) (*party.Company, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*party.Company)
	return c, args.Error(1)
}

func (m *MockDirectory) Colleagues(ctx context.Context, id kernel.UUID) (party.Employees, error) {
	args := m.Called(ctx, id)
	e, _ := args.Get(0).(party.Employees)
	return e, args.Error(1)
}

func (m *MockDirectory) Profile(ctx context.Context, id kernel.UUID) (*party.Profile, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*party.Profile)
	return p, args.Error(1)
}

func (m *MockDirectory) Shipment(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(*shipment.Shipment)
	return s, args.Error(1)
}

func (m *MockDirectory) Facility(ctx context.Context, id kernel.UUID) (*shipment.Facility, error) {
	args := m.Called(ctx, id)
	f, _ := args.Get(0).(*shipment.Facility)
	return f, args.Error(1)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) Notify(ctx context.Context, n ports.Notification) error {
	return m.Called(ctx, n).Error(0)
}

type MockFinalAgreements struct{ mock.Mock }

func (m *MockFinalAgreements) Get(ctx context.Context, loadID kernel.UUID) (ports.FinalAgreement, error) {
	args := m.Called(ctx, loadID)
	return args.Get(0).(ports.FinalAgreement), args.Error(1)
}

func (m *MockFinalAgreements) SetPartyAgreed(ctx context.Context, loadID kernel.UUID, p ports.AgreementParty) error {
	return m.Called(ctx, loadID, p).Error(0)
}
