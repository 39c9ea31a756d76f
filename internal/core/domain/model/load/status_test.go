package load_test

import (
	"fmt"
	"testing"

	"freight/internal/core/domain/model/load"
	"freight/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	for _, status := range load.AllStatuses() {
		t.Run(fmt.Sprintf("should validate %s", status), func(t *testing.T) {
			require.NoError(t, status.Validate())
		})
	}

	t.Run("should reject Unknown status", func(t *testing.T) {
		err := load.Unknown.Validate()

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "0 is not a valid status")
	})

	t.Run("should reject out of range status", func(t *testing.T) {
		require.Error(t, load.Status(42).Validate())
	})
}

func TestParseStatus(t *testing.T) {
	for _, status := range load.AllStatuses() {
		parsed, err := load.ParseStatus(status.String())

		require.NoError(t, err)
		assert.Equal(t, status, parsed)
	}

	_, err := load.ParseStatus("Lost")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestStatus_Negotiate(t *testing.T) {
	cases := []struct {
		customer, carrier load.LegState
		want              load.Status
	}{
		{load.LegOpen, load.LegOpen, load.Created},
		{load.LegPending, load.LegOpen, load.AwaitingCustomer},
		{load.LegPending, load.LegPending, load.AwaitingCustomer},
		{load.LegAccepted, load.LegOpen, load.AssigningCarrier},
		{load.LegAccepted, load.LegPending, load.AwaitingCarrier},
		{load.LegOpen, load.LegPending, load.AwaitingCarrier},
		{load.LegOpen, load.LegAccepted, load.AwaitingDispatcher},
		{load.LegPending, load.LegAccepted, load.AwaitingDispatcher},
		{load.LegAccepted, load.LegAccepted, load.ReadyForPickup},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("customer %s carrier %s", tc.customer, tc.carrier), func(t *testing.T) {
			got, err := load.Created.Negotiate(tc.customer, tc.carrier)

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	t.Run("should not move a load out of transit", func(t *testing.T) {
		_, err := load.InTransit.Negotiate(load.LegAccepted, load.LegAccepted)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should not reopen a ready load", func(t *testing.T) {
		_, err := load.ReadyForPickup.Negotiate(load.LegAccepted, load.LegOpen)

		require.Error(t, err)
	})
}

func TestStatus_RequestTransition(t *testing.T) {
	t.Run("should follow the delivery sequence", func(t *testing.T) {
		s, err := load.ReadyForPickup.RequestTransition(load.InTransit)
		require.NoError(t, err)
		assert.Equal(t, load.InTransit, s)

		s, err = s.RequestTransition(load.Delivered)
		require.NoError(t, err)
		assert.Equal(t, load.Delivered, s)
	})

	t.Run("should not skip from Created to Delivered", func(t *testing.T) {
		_, err := load.Created.RequestTransition(load.Delivered)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should not start transit before ready", func(t *testing.T) {
		_, err := load.AwaitingCarrier.RequestTransition(load.InTransit)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject negotiation statuses as explicit targets", func(t *testing.T) {
		_, err := load.Created.RequestTransition(load.ReadyForPickup)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "status transition is invalid")
	})

	t.Run("should cancel any non-terminal status", func(t *testing.T) {
		for _, status := range load.AllStatuses() {
			if status.IsTerminal() {
				continue
			}
			s, err := status.RequestTransition(load.Canceled)

			require.NoError(t, err, status.String())
			assert.Equal(t, load.Canceled, s)
		}
	})

	t.Run("cancellation is irreversible", func(t *testing.T) {
		_, err := load.Canceled.RequestTransition(load.Canceled)
		require.Error(t, err)

		_, err = load.Delivered.RequestTransition(load.Canceled)
		require.Error(t, err)
	})
}
