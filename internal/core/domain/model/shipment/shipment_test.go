package shipment_test

import (
	"testing"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/shipment"
	"freight/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewShipment(t *testing.T) {
	t.Run("should create shipment", func(t *testing.T) {
		creator := kernel.NewUUID()

		s, err := shipment.NewShipment(kernel.NewUUID(), "  March coils ", creator)

		require.NoError(t, err)
		require.NoError(t, s.Validate())
		assert.Equal(t, "March coils", s.Name())
		assert.Empty(t, s.Admins())
		assert.Equal(t, []kernel.UUID{creator}, s.Stakeholders())
	})

	t.Run("should join validation errors", func(t *testing.T) {
		_, err := shipment.NewShipment(kernel.UUID{}, " ", kernel.UUID{})

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "name")
		assert.Contains(t, err.Error(), "created_by")
	})

	t.Run("default value is not constructed", func(t *testing.T) {
		var s shipment.Shipment
		require.ErrorIs(t, s.Validate(), shipment.ErrShipmentIsNotConstructed)
	})
}

func TestShipment_AddAdmin(t *testing.T) {
	s, err := shipment.NewShipment(kernel.NewUUID(), "coils", kernel.NewUUID())
	require.NoError(t, err)
	admin := kernel.NewUUID()

	require.NoError(t, s.AddAdmin(admin))
	err = s.AddAdmin(admin)

	require.ErrorIs(t, err, errs.ErrConflict)
	assert.Len(t, s.Admins(), 1)
	assert.Len(t, s.Stakeholders(), 2)

	s.Admins()[0] = kernel.NewUUID()
	assert.True(t, s.Admins()[0].IsEqual(admin))
}

func TestNewFacility(t *testing.T) {
	f, err := shipment.NewFacility(kernel.NewUUID(), kernel.NewUUID(), "Dock 4", "1 Harbor Rd")
	require.NoError(t, err)
	assert.Equal(t, "Dock 4", f.Name())

	_, err = shipment.NewFacility(kernel.NewUUID(), kernel.NewUUID(), "", "")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}
