package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"freight/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const loadID = "0b7e4f0a-5c1e-4b8e-9a51-3f7d2c9e6a10"

func TestTypedErrors(t *testing.T) {
	lockTimeout := errors.New("canceling statement due to lock timeout")
	terminal := errors.New("offer is already Accepted")

	tests := []struct {
		name     string
		err      error
		sentinel error
		message  string
		cause    error
	}{
		{
			name:     "missing load",
			err:      errs.NewObjectNotFoundError("load", loadID),
			sentinel: errs.ErrObjectNotFound,
			message:  "object not found: " + loadID,
		},
		{
			name:     "missing load behind a failed lock",
			err:      errs.NewObjectNotFoundErrorWithCause("load", loadID, lockTimeout),
			sentinel: errs.ErrObjectNotFound,
			message:  "object not found: param is: load, ID is: " + loadID + " (cause: canceling statement due to lock timeout)",
			cause:    lockTimeout,
		},
		{
			name:     "unknown load type",
			err:      errs.NewValueIsInvalidError("load_type"),
			sentinel: errs.ErrValueIsInvalid,
			message:  "value is invalid: load_type",
		},
		{
			name:     "delivery before pick up",
			err:      errs.NewValueIsInvalidErrorWithCause("delivery_date", errors.New("delivery date precedes pick up date")),
			sentinel: errs.ErrValueIsInvalid,
			message:  "value is invalid: delivery_date (cause: delivery date precedes pick up date)",
		},
		{
			name:     "negative weight",
			err:      errs.NewValueIsOutOfRangeError("weight", "-12.50", "0", "9999999999.99"),
			sentinel: errs.ErrValueIsOutOfRange,
			message:  "value is invalid: -12.50 is weight, min value is 0, max value is 9999999999.99",
		},
		{
			name:     "page size above the limit",
			err:      errs.NewValueIsOutOfRangeErrorWithCause("limit", 1000, 1, 100, errors.New("page too large")),
			sentinel: errs.ErrValueIsOutOfRange,
			message:  "value is invalid: 1000 is limit, min value is 1, max value is 100 (cause: page too large)",
		},
		{
			name:     "load without a dispatcher",
			err:      errs.NewValueIsRequiredError("dispatcher"),
			sentinel: errs.ErrValueIsRequired,
			message:  "value is required: dispatcher",
		},
		{
			name:     "offer without an amount",
			err:      errs.NewValueIsRequiredErrorWithCause("amount", errors.New("amount must be positive")),
			sentinel: errs.ErrValueIsRequired,
			message:  "value is required: amount (cause: amount must be positive)",
		},
		{
			name:     "outsider views a load",
			err:      errs.NewPermissionDeniedError("view load"),
			sentinel: errs.ErrPermissionDenied,
			message:  "permission denied: view load",
		},
		{
			name:     "customer starts transit",
			err:      errs.NewPermissionDeniedErrorWithCause("update load status", errors.New("In Transit belongs to the dispatcher side")),
			sentinel: errs.ErrPermissionDenied,
			message:  "permission denied: update load status (cause: In Transit belongs to the dispatcher side)",
		},
		{
			name:     "stale load version",
			err:      errs.NewConflictError("load"),
			sentinel: errs.ErrConflict,
			message:  "conflict: load",
		},
		{
			name:     "second response on an offer",
			err:      errs.NewConflictErrorWithCause("offer", terminal),
			sentinel: errs.ErrConflict,
			message:  "conflict: offer (cause: offer is already Accepted)",
			cause:    terminal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, tt.err, tt.sentinel)
			assert.Equal(t, tt.message, tt.err.Error())
			assert.Equal(t, tt.sentinel, errors.Unwrap(tt.err))

			wrapped := fmt.Errorf("handle command: %w", tt.err)
			require.ErrorIs(t, wrapped, tt.sentinel)
			assert.Equal(t, tt.err, errors.Unwrap(wrapped))

			if tt.cause != nil {
				assert.NotErrorIs(t, tt.err, tt.cause)
			}
		})
	}
}

func TestTypedErrorFields(t *testing.T) {
	t.Run("object not found keeps the id as given", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("offer", 456)

		assert.Equal(t, "offer", err.ParamName)
		assert.Equal(t, 456, err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: %!s(int=456)", err.Error())
	})

	t.Run("out of range flattens line breaks", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("commodity", "steel\ncoils", 0, 10)

		assert.Equal(t, "steel\ncoils", err.Value)
		assert.Contains(t, err.Error(), "steel coils")
		assert.NotContains(t, err.Error(), "\n")
	})

	t.Run("permission denied is matched with errors.As", func(t *testing.T) {
		cause := errors.New("requester has no company")
		var denied *errs.PermissionDeniedError

		require.ErrorAs(t, fmt.Errorf("list loads: %w", errs.NewPermissionDeniedErrorWithCause("list loads", cause)), &denied)
		assert.Equal(t, "list loads", denied.Action)
		assert.Equal(t, cause, denied.Cause)
	})

	t.Run("conflict is matched with errors.As", func(t *testing.T) {
		var conflict *errs.ConflictError

		require.ErrorAs(t, errors.Join(errs.NewConflictError("load"), errs.NewConflictError("offer")), &conflict)
		assert.Equal(t, "load", conflict.ParamName)
		require.NoError(t, conflict.Cause)
	})
}

func TestIsValidation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"invalid", errs.NewValueIsInvalidError("selected role"), true},
		{"required", errs.NewValueIsRequiredError("customer"), true},
		{"out of range", errs.NewValueIsOutOfRangeError("height", -1, 0, 100), true},
		{"joined with a validation error", errors.Join(errors.New("x"), errs.NewValueIsInvalidError("status")), true},
		{"not found", errs.NewObjectNotFoundError("load", loadID), false},
		{"permission denied", errs.NewPermissionDeniedError("view load"), false},
		{"conflict", errs.NewConflictError("offer"), false},
		{"plain", errors.New("broker down"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, errs.IsValidation(tt.err))
		})
	}
}

func TestSentinelErrors(t *testing.T) {
	assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
	assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
	assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
	assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
	assert.Equal(t, "permission denied", errs.ErrPermissionDenied.Error())
	assert.Equal(t, "conflict", errs.ErrConflict.Error())
}
