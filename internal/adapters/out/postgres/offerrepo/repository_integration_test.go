package offerrepo_test

import (
	"context"
	"testing"
	"time"

	"freight/internal/adapters/out/postgres/offerrepo"
	"freight/internal/adapters/out/postgres/pgtest"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/load"
	"freight/internal/core/domain/model/offer"
	"freight/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

type OfferRepositoryTestSuite struct {
	suite.Suite
	database     *pgtest.Database
	repo         *offerrepo.GormOfferRepository
	dispatcher   load.PartyRef
	counterparty load.PartyRef
}

type noopTracker struct{}

func (noopTracker) TrackAggregate(kernel.UUID, any) {}

func (suite *OfferRepositoryTestSuite) SetupSuite() {
	database, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.database = database
	suite.repo = offerrepo.NewGormOfferRepository(database.DB, noopTracker{})
	suite.dispatcher = load.PartyRef{ProfileID: kernel.NewUUID(), AppUserID: kernel.NewUUID()}
	suite.counterparty = load.PartyRef{ProfileID: kernel.NewUUID(), AppUserID: kernel.NewUUID()}
}

func (suite *OfferRepositoryTestSuite) SetupTest() {
	suite.Require().NoError(suite.database.Truncate())
}

func (suite *OfferRepositoryTestSuite) TearDownSuite() {
	suite.Require().NoError(suite.database.Terminate(context.Background()))
}

func (suite *OfferRepositoryTestSuite) newOffer(loadID kernel.UUID, amount float64) *offer.Offer {
	o, err := offer.NewOffer(kernel.NewUUID(), loadID, suite.dispatcher, suite.counterparty, offer.ToCustomer, kernel.MustMoney(amount), time.Now())
	suite.Require().NoError(err)
	return o
}

func (suite *OfferRepositoryTestSuite) TestRoundTripKeepsInitialAndCurrent() {
	ctx := suite.T().Context()
	o := suite.newOffer(kernel.NewUUID(), 500)
	suite.Require().NoError(suite.repo.Add(ctx, o))

	locked, err := suite.repo.GetForUpdate(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(locked.Counter(offer.SideCounterparty, kernel.MustMoney(450), time.Now()))
	suite.Require().NoError(suite.repo.Update(ctx, locked))

	got, err := suite.repo.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal("500.00", got.Initial().String())
	suite.Equal("450.00", got.Current().String())
	suite.Equal(offer.SideCounterparty, got.LastMover())
	suite.Equal(offer.Pending, got.Status())
	suite.Equal(1, got.Version())
}

func (suite *OfferRepositoryTestSuite) TestSecondLiveThreadIsConflict() {
	ctx := suite.T().Context()
	loadID := kernel.NewUUID()
	suite.Require().NoError(suite.repo.Add(ctx, suite.newOffer(loadID, 500)))

	err := suite.repo.Add(ctx, suite.newOffer(loadID, 520))

	suite.Require().ErrorIs(err, errs.ErrConflict)
}

func (suite *OfferRepositoryTestSuite) TestRejectedThreadFreesTheSlot() {
	ctx := suite.T().Context()
	loadID := kernel.NewUUID()
	first := suite.newOffer(loadID, 500)
	suite.Require().NoError(suite.repo.Add(ctx, first))
	suite.Require().NoError(first.Respond(offer.SideCounterparty, offer.Reject, time.Now()))
	suite.Require().NoError(suite.repo.Update(ctx, first))

	suite.Require().NoError(suite.repo.Add(ctx, suite.newOffer(loadID, 480)))

	offers, err := suite.repo.ListByLoad(ctx, loadID)
	suite.Require().NoError(err)
	suite.Len(offers, 2)
	suite.Equal(offer.Rejected, offers[0].Status())
}

func (suite *OfferRepositoryTestSuite) TestGet_Missing() {
	_, err := suite.repo.Get(suite.T().Context(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestOfferRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(OfferRepositoryTestSuite))
}
