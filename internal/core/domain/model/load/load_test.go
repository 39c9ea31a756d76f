package load_test

import (
	"regexp"
	"testing"
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/load"
	"freight/internal/core/domain/model/party"
	"freight/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, time.March, 10, 15, 30, 0, 0, time.UTC)

func ref() load.PartyRef {
	return load.PartyRef{ProfileID: kernel.NewUUID(), AppUserID: kernel.NewUUID()}
}

func validParams() load.NewLoadParams {
	return load.NewLoadParams{
		ID:         kernel.NewUUID(),
		ShipmentID: kernel.NewUUID(),
		CreatedBy:  kernel.NewUUID(),
		Parties: load.Parties{
			Customer:   ref(),
			Shipper:    ref(),
			Consignee:  ref(),
			Dispatcher: ref(),
		},
		PickUpLocation: kernel.NewUUID(),
		Destination:    kernel.NewUUID(),
		Schedule: load.Schedule{
			PickUpDate:   now.Add(24 * time.Hour),
			DeliveryDate: now.Add(72 * time.Hour),
		},
		Freight: load.Freight{
			Length:        decimal.NewFromInt(40),
			Width:         decimal.NewFromInt(8),
			Height:        decimal.NewFromInt(9),
			Weight:        decimal.NewFromInt(12000),
			Quantity:      decimal.NewFromInt(20),
			Commodity:     " steel coils ",
			EquipmentType: "flatbed",
			Type:          load.FTL,
		},
	}
}

func newLoad(t *testing.T) *load.Load {
	t.Helper()
	l, err := load.NewLoad(validParams(), now)
	require.NoError(t, err)
	return l
}

func TestNewLoad(t *testing.T) {
	t.Run("should create a load in Created status", func(t *testing.T) {
		params := validParams()

		l, err := load.NewLoad(params, now)

		require.NoError(t, err)
		require.NoError(t, l.Validate())
		assert.Equal(t, load.Created, l.Status())
		assert.False(t, l.HasCarrier())
		assert.Equal(t, "steel coils", l.Freight().Commodity)
		assert.Equal(t, now, l.CreatedAt())
		assert.Regexp(t, regexp.MustCompile(`^L-20260310-[0-9A-F]{8}$`), l.Name())
	})

	t.Run("should allow pick up later the same day", func(t *testing.T) {
		params := validParams()
		params.Schedule.PickUpDate = time.Date(2026, time.March, 10, 8, 0, 0, 0, time.UTC)

		_, err := load.NewLoad(params, now)

		require.NoError(t, err)
	})

	t.Run("should reject delivery not after pick up", func(t *testing.T) {
		params := validParams()
		params.Schedule.DeliveryDate = params.Schedule.PickUpDate

		_, err := load.NewLoad(params, now)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.ErrorIs(t, err, load.ErrDeliveryNotAfterPickUp)
	})

	t.Run("should reject pick up before creation date", func(t *testing.T) {
		params := validParams()
		params.Schedule.PickUpDate = now.Add(-48 * time.Hour)

		_, err := load.NewLoad(params, now)

		require.ErrorIs(t, err, load.ErrPickUpBeforeCreation)
	})

	t.Run("should reject the same facility for pick up and destination", func(t *testing.T) {
		params := validParams()
		params.Destination = params.PickUpLocation

		_, err := load.NewLoad(params, now)

		require.ErrorIs(t, err, load.ErrSameFacility)
		assert.True(t, errs.IsValidation(err))
	})

	t.Run("should require all core parties", func(t *testing.T) {
		params := validParams()
		params.Parties.Dispatcher = load.PartyRef{}
		params.Parties.Consignee = load.PartyRef{}

		_, err := load.NewLoad(params, now)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "dispatcher")
		assert.Contains(t, err.Error(), "consignee")
	})

	t.Run("should reject negative weight", func(t *testing.T) {
		params := validParams()
		params.Freight.Weight = decimal.NewFromInt(-1)

		_, err := load.NewLoad(params, now)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should reject measures the loads table cannot hold", func(t *testing.T) {
		params := validParams()
		params.Freight.Length = decimal.RequireFromString("10000000000")

		_, err := load.NewLoad(params, now)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.Contains(t, err.Error(), "length")
	})

	t.Run("should reject sub-cent precision", func(t *testing.T) {
		params := validParams()
		params.Freight.Height = decimal.RequireFromString("1.005")

		_, err := load.NewLoad(params, now)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "height")
	})

	t.Run("should accept the largest storable weight", func(t *testing.T) {
		params := validParams()
		params.Freight.Weight = decimal.RequireFromString("9999999999.99")

		l, err := load.NewLoad(params, now)

		require.NoError(t, err)
		assert.Equal(t, "9999999999.99", l.Freight().Weight.String())
	})

	t.Run("should reject unknown load type", func(t *testing.T) {
		params := validParams()
		params.Freight.Type = load.UnknownType

		_, err := load.NewLoad(params, now)

		require.Error(t, err)
	})
}

func TestNewPartyRef(t *testing.T) {
	profile, err := party.NewProfile(kernel.NewUUID(), kernel.NewUUID(), party.RoleShipmentParty)
	require.NoError(t, err)

	r, err := load.NewPartyRef(profile, party.RoleShipmentParty)
	require.NoError(t, err)
	assert.True(t, r.ProfileID.IsEqual(profile.ID()))
	assert.True(t, r.AppUserID.IsEqual(profile.AppUserID()))

	_, err = load.NewPartyRef(profile, party.RoleCarrier)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	profile.Deactivate()
	_, err = load.NewPartyRef(profile, party.RoleShipmentParty)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestLoad_Validate(t *testing.T) {
	var l load.Load
	require.ErrorIs(t, l.Validate(), load.ErrLoadIsNotConstructed)

	var nilLoad *load.Load
	require.ErrorIs(t, nilLoad.Validate(), load.ErrLoadIsNotConstructed)
}

func TestLoad_CarrierAssignment(t *testing.T) {
	t.Run("should assign once and accept the same carrier again", func(t *testing.T) {
		l := newLoad(t)
		carrier := ref()

		require.NoError(t, l.AssignCarrier(carrier, now))
		require.NoError(t, l.AssignCarrier(carrier, now))
		assert.True(t, l.Carrier().IsEqual(carrier))
	})

	t.Run("should reject a different carrier", func(t *testing.T) {
		l := newLoad(t)
		require.NoError(t, l.AssignCarrier(ref(), now))

		err := l.AssignCarrier(ref(), now)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should unassign while negotiating", func(t *testing.T) {
		l := newLoad(t)
		require.NoError(t, l.AssignCarrier(ref(), now))

		require.NoError(t, l.UnassignCarrier(now))

		assert.False(t, l.HasCarrier())
	})

	t.Run("should not assign after negotiation", func(t *testing.T) {
		l := newLoad(t)
		require.NoError(t, l.UpdateStatus(load.Canceled, now))

		require.Error(t, l.AssignCarrier(ref(), now))
	})
}

func TestLoad_Lifecycle(t *testing.T) {
	l := newLoad(t)
	carrier := ref()
	require.NoError(t, l.AssignCarrier(carrier, now))

	changed, err := l.ApplyNegotiation(load.LegPending, load.LegOpen, now)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, load.AwaitingCustomer, l.Status())

	changed, err = l.ApplyNegotiation(load.LegPending, load.LegOpen, now)
	require.NoError(t, err)
	assert.False(t, changed)

	_, err = l.ApplyNegotiation(load.LegAccepted, load.LegAccepted, now)
	require.NoError(t, err)
	assert.Equal(t, load.ReadyForPickup, l.Status())

	require.NoError(t, l.UpdateStatus(load.InTransit, now))
	assert.Nil(t, l.ActualDeliveryDate())

	deliveredAt := now.Add(48 * time.Hour)
	require.NoError(t, l.UpdateStatus(load.Delivered, deliveredAt))
	require.NotNil(t, l.ActualDeliveryDate())
	assert.Equal(t, deliveredAt, *l.ActualDeliveryDate())
	assert.True(t, l.IsDeliveredOnTime())

	err = l.UpdateStatus(load.Canceled, now)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestLoad_Participants(t *testing.T) {
	params := validParams()
	params.Parties.Shipper = params.Parties.Customer
	params.CreatedBy = params.Parties.Dispatcher.AppUserID
	l, err := load.NewLoad(params, now)
	require.NoError(t, err)

	assert.Len(t, l.CoreParticipants(), 3)
	assert.Len(t, l.PartyAppUsers(), 3)

	carrier := ref()
	require.NoError(t, l.AssignCarrier(carrier, now))
	assert.Contains(t, l.PartyAppUsers(), carrier.AppUserID)
	assert.NotContains(t, l.CoreParticipants(), carrier.AppUserID)
}

func TestLoad_DraftAndRetention(t *testing.T) {
	retention := 30 * 24 * time.Hour

	t.Run("drafts expire after the retention window", func(t *testing.T) {
		params := validParams()
		params.Draft = true
		l, err := load.NewLoad(params, now)
		require.NoError(t, err)

		assert.False(t, l.IsExpired(now.Add(29*24*time.Hour), retention))
		assert.True(t, l.IsExpired(now.Add(31*24*time.Hour), retention))

		require.NoError(t, l.Publish(now))
		assert.False(t, l.IsExpired(now.Add(31*24*time.Hour), retention))
		require.Error(t, l.Publish(now))
	})

	t.Run("soft deleted loads expire from their last update", func(t *testing.T) {
		l := newLoad(t)
		deletedAt := now.Add(10 * 24 * time.Hour)
		require.NoError(t, l.SoftDelete(deletedAt))

		assert.False(t, l.IsExpired(deletedAt.Add(29*24*time.Hour), retention))
		assert.True(t, l.IsExpired(deletedAt.Add(31*24*time.Hour), retention))
		require.ErrorIs(t, l.SoftDelete(now), errs.ErrConflict)
	})
}

func TestLoad_DeletedLoadRejectsChanges(t *testing.T) {
	deletedAt := now.Add(time.Hour)
	later := now.Add(2 * time.Hour)

	tests := []struct {
		name   string
		change func(l *load.Load) error
	}{
		{"cancel", func(l *load.Load) error { return l.UpdateStatus(load.Canceled, later) }},
		{"negotiate", func(l *load.Load) error {
			_, err := l.ApplyNegotiation(load.LegPending, load.LegOpen, later)
			return err
		}},
		{"assign carrier", func(l *load.Load) error { return l.AssignCarrier(ref(), later) }},
		{"unassign carrier", func(l *load.Load) error { return l.UnassignCarrier(later) }},
		{"publish", func(l *load.Load) error { return l.Publish(later) }},
		{"take offers", func(l *load.Load) error { return l.RequireNegotiating() }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := validParams()
			params.Draft = true
			l, err := load.NewLoad(params, now)
			require.NoError(t, err)
			require.NoError(t, l.SoftDelete(deletedAt))

			err = tt.change(l)

			require.ErrorIs(t, err, errs.ErrObjectNotFound)
			assert.Equal(t, load.Created, l.Status())
			assert.False(t, l.HasCarrier())
			assert.Equal(t, deletedAt, l.UpdatedAt())
		})
	}
}

func TestLoad_RequireNegotiating(t *testing.T) {
	l := newLoad(t)
	require.NoError(t, l.RequireNegotiating())

	require.NoError(t, l.UpdateStatus(load.Canceled, now.Add(time.Hour)))
	err := l.RequireNegotiating()
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Contains(t, err.Error(), "no longer takes offers")
}

func TestRestoreLoad(t *testing.T) {
	original := newLoad(t)

	restored, err := load.RestoreLoad(load.Snapshot{
		ID:             original.ID(),
		Name:           original.Name(),
		ShipmentID:     original.ShipmentID(),
		CreatedBy:      original.CreatedBy(),
		Parties:        original.Parties(),
		PickUpLocation: original.PickUpLocation(),
		Destination:    original.Destination(),
		Schedule:       original.Schedule(),
		Freight:        original.Freight(),
		Status:         load.InTransit,
		CreatedAt:      original.CreatedAt(),
		UpdatedAt:      original.UpdatedAt(),
		Version:        3,
	})

	require.NoError(t, err)
	assert.True(t, restored.IsEqual(original))
	assert.Equal(t, 3, restored.Version())
	assert.Equal(t, load.InTransit, restored.Status())

	_, err = load.RestoreLoad(load.Snapshot{})
	require.Error(t, err)
}
