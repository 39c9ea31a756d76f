package offer_test

import (
	"testing"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/load"
	"freight/internal/core/domain/model/offer"
	"freight/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, time.March, 10, 9, 0, 0, 0, time.UTC)

func ref() load.PartyRef {
	return load.PartyRef{ProfileID: kernel.NewUUID(), AppUserID: kernel.NewUUID()}
}

func newOffer(t *testing.T, direction offer.Direction, amount float64) *offer.Offer {
	t.Helper()
	o, err := offer.NewOffer(kernel.NewUUID(), kernel.NewUUID(), ref(), ref(), direction, kernel.MustMoney(amount), now)
	require.NoError(t, err)
	return o
}

func TestNewOffer(t *testing.T) {
	t.Run("should open a pending thread", func(t *testing.T) {
		o := newOffer(t, offer.ToCustomer, 500)

		require.NoError(t, o.Validate())
		assert.Equal(t, offer.Pending, o.Status())
		assert.Equal(t, "500.00", o.Initial().String())
		assert.True(t, o.Current().IsEqual(o.Initial()))
		assert.Equal(t, offer.SideDispatcher, o.LastMover())
	})

	t.Run("should reject a zero initial amount", func(t *testing.T) {
		_, err := offer.NewOffer(kernel.NewUUID(), kernel.NewUUID(), ref(), ref(), offer.ToCarrier, kernel.ZeroMoney(), now)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should require both parties and a direction", func(t *testing.T) {
		_, err := offer.NewOffer(kernel.NewUUID(), kernel.NewUUID(), load.PartyRef{}, load.PartyRef{},
			offer.UnknownDirection, kernel.MustMoney(10), now)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "dispatcher")
		assert.Contains(t, err.Error(), "counterparty")
		assert.Contains(t, err.Error(), "offer direction is invalid")
	})
}

func TestOffer_Counter(t *testing.T) {
	t.Run("counter keeps the initial amount", func(t *testing.T) {
		o := newOffer(t, offer.ToCustomer, 500)

		require.NoError(t, o.Counter(offer.SideCounterparty, kernel.MustMoney(450), now))

		assert.Equal(t, "500.00", o.Initial().String())
		assert.Equal(t, "450.00", o.Current().String())
		assert.Equal(t, offer.SideCounterparty, o.LastMover())
		assert.Equal(t, offer.Pending, o.Status())
	})

	t.Run("should reject the same amount", func(t *testing.T) {
		o := newOffer(t, offer.ToCustomer, 500)

		err := o.Counter(offer.SideCounterparty, kernel.MustMoney(500), now)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject zero", func(t *testing.T) {
		o := newOffer(t, offer.ToCustomer, 500)

		require.ErrorIs(t, o.Counter(offer.SideCounterparty, kernel.ZeroMoney(), now), errs.ErrValueIsOutOfRange)
	})

	t.Run("should reject counters on a terminal thread", func(t *testing.T) {
		o := newOffer(t, offer.ToCarrier, 300)
		require.NoError(t, o.Respond(offer.SideCounterparty, offer.Reject, now))

		err := o.Counter(offer.SideDispatcher, kernel.MustMoney(350), now)

		require.ErrorIs(t, err, errs.ErrConflict)
	})
}

func TestOffer_Respond(t *testing.T) {
	t.Run("second accept is a conflict", func(t *testing.T) {
		o := newOffer(t, offer.ToCarrier, 300)

		require.NoError(t, o.Respond(offer.SideCounterparty, offer.Accept, now))
		err := o.Respond(offer.SideCounterparty, offer.Accept, now)

		require.ErrorIs(t, err, errs.ErrConflict)
		assert.Equal(t, offer.Accepted, o.Status())
	})

	t.Run("last mover cannot answer its own amount", func(t *testing.T) {
		o := newOffer(t, offer.ToCustomer, 500)

		err := o.Respond(offer.SideDispatcher, offer.Accept, now)

		require.ErrorIs(t, err, errs.ErrPermissionDenied)
		assert.Equal(t, offer.Pending, o.Status())
	})

	t.Run("dispatcher accepts a counter", func(t *testing.T) {
		o := newOffer(t, offer.ToCustomer, 500)
		require.NoError(t, o.Counter(offer.SideCounterparty, kernel.MustMoney(450), now))

		require.NoError(t, o.Respond(offer.SideDispatcher, offer.Accept, now))

		assert.Equal(t, offer.Accepted, o.Status())
		assert.Equal(t, "450.00", o.Current().String())
	})
}

func TestOffer_Recipient(t *testing.T) {
	o := newOffer(t, offer.ToCustomer, 500)

	assert.Equal(t, o.Counterparty().AppUserID, o.Recipient(offer.SideDispatcher))
	assert.Equal(t, o.Dispatcher().AppUserID, o.Recipient(offer.SideCounterparty))
	assert.Equal(t, o.Dispatcher().AppUserID, o.Party(offer.SideDispatcher))
}

func TestLegsAndSlots(t *testing.T) {
	loadID := kernel.NewUUID()
	d, c, k := ref(), ref(), ref()

	customer, err := offer.NewOffer(kernel.NewUUID(), loadID, d, c, offer.ToCustomer, kernel.MustMoney(500), now)
	require.NoError(t, err)
	carrier, err := offer.NewOffer(kernel.NewUUID(), loadID, d, k, offer.ToCarrier, kernel.MustMoney(300), now)
	require.NoError(t, err)

	cust, carr := offer.Legs([]*offer.Offer{customer, carrier})
	assert.Equal(t, load.LegPending, cust)
	assert.Equal(t, load.LegPending, carr)

	require.ErrorIs(t, offer.EnsureSlotFree([]*offer.Offer{customer}, loadID, offer.ToCustomer), errs.ErrConflict)
	require.NoError(t, offer.EnsureSlotFree([]*offer.Offer{customer}, loadID, offer.ToCarrier))

	require.NoError(t, carrier.Respond(offer.SideCounterparty, offer.Reject, now))
	require.NoError(t, offer.EnsureSlotFree([]*offer.Offer{carrier}, loadID, offer.ToCarrier))
	_, carr = offer.Legs([]*offer.Offer{customer, carrier})
	assert.Equal(t, load.LegOpen, carr)

	require.NoError(t, customer.Respond(offer.SideCounterparty, offer.Accept, now))
	require.ErrorIs(t, offer.EnsureSlotFree([]*offer.Offer{customer}, loadID, offer.ToCustomer), errs.ErrConflict)

	customerAgreed, carrierAgreed := offer.Agreement([]*offer.Offer{customer, carrier})
	assert.True(t, customerAgreed)
	assert.False(t, carrierAgreed)
}

func TestParsers(t *testing.T) {
	d, err := offer.ParseDirection("Carrier")
	require.NoError(t, err)
	assert.Equal(t, offer.ToCarrier, d)

	_, err = offer.ParseDirection("shipper")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	dec, err := offer.ParseDecision("reject")
	require.NoError(t, err)
	assert.Equal(t, offer.Reject, dec)

	_, err = offer.ParseDecision("maybe")
	require.Error(t, err)
}
