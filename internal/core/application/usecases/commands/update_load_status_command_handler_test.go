package commands_test

import (
	"errors"
	"testing"
	"time"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/load"
	"freight/internal/core/domain/model/party"
	"freight/internal/core/ports"
	"freight/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func statusChangedTo(status load.Status) any {
	return mock.MatchedBy(func(n ports.Notification) bool {
		return n.Action == ports.ActionLoadStatusChanged && n.Payload == status.String()
	})
}

func TestUpdateLoadStatusCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	w := newWorld(t)
	l := w.newLoad(t, load.ReadyForPickup)
	actor := w.dispatcher.AppUserID()
	cmd, err := commands.NewUpdateLoadStatusCommand(l.ID(), actor, load.InTransit)
	require.NoError(t, err)

	repo := new(MockLoadRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("LoadRepository").Return(repo).Once(),
		repo.On("GetForUpdate", ctx, l.ID()).Return(l, nil).Once(),
		uow.On("LoadRepository").Return(repo).Once(),
		repo.On("Update", ctx, l).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := new(MockNotifier)
	parties := l.Parties()
	for _, recipient := range []kernel.UUID{parties.Customer.AppUserID, parties.Shipper.AppUserID, parties.Consignee.AppUserID} {
		notifier.On("Notify", ctx, mock.MatchedBy(func(n ports.Notification) bool {
			return n.Recipient.IsEqual(recipient) && n.Action == ports.ActionLoadStatusChanged
		})).Return(nil).Once()
	}

	h := commands.NewUpdateLoadStatusCommandHandler(factory, fakeDirectory{w: w}, notifier, nil)
	err = h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, load.InTransit, l.Status())
	uow.AssertExpectations(t)
	repo.AssertExpectations(t)
	notifier.AssertExpectations(t)
	notifier.AssertNumberOfCalls(t, "Notify", 3)
}

func TestUpdateLoadStatusCommandHandler_Handle_DeletedLoadIsNotFound(t *testing.T) {
	ctx := t.Context()
	w := newWorld(t)
	l := w.newLoad(t, load.AwaitingCarrier)
	require.NoError(t, l.SoftDelete(time.Now()))
	cmd, err := commands.NewUpdateLoadStatusCommand(l.ID(), w.dispatcher.AppUserID(), load.Canceled)
	require.NoError(t, err)

	repo := new(MockLoadRepository)
	repo.On("GetForUpdate", ctx, l.ID()).Return(l, nil).Once()
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("LoadRepository").Return(repo)
	uow.On("Rollback", ctx).Return(nil)
	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()
	notifier := new(MockNotifier)

	err = commands.NewUpdateLoadStatusCommandHandler(factory, fakeDirectory{w: w}, notifier, nil).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	assert.Equal(t, load.AwaitingCarrier, l.Status())
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
}

func TestUpdateLoadStatusCommandHandler_Handle_NotifierFailureIsSwallowed(t *testing.T) {
	ctx := t.Context()
	w := newWorld(t)
	store := newMemoryStore()
	l := w.newLoad(t, load.AwaitingCarrier)
	require.NoError(t, store.LoadRepository().Add(ctx, l))

	notifier := new(MockNotifier)
	notifier.On("Notify", ctx, statusChangedTo(load.Canceled)).Return(errors.New("broker down"))

	cmd, err := commands.NewUpdateLoadStatusCommand(l.ID(), w.customer.AppUserID(), load.Canceled)
	require.NoError(t, err)

	err = commands.NewUpdateLoadStatusCommandHandler(store, fakeDirectory{w: w}, notifier, nil).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, load.Canceled, l.Status())
	notifier.AssertNumberOfCalls(t, "Notify", 3)
}

func TestUpdateLoadStatusCommandHandler_Handle_Rejections(t *testing.T) {
	ctx := t.Context()

	cases := []struct {
		name   string
		status load.Status
		target load.Status
		want   error
	}{
		{name: "cannot skip from Created to Delivered", status: load.Created, target: load.Delivered, want: errs.ErrValueIsInvalid},
		{name: "cannot cancel a delivered load", status: load.Delivered, target: load.Canceled, want: errs.ErrValueIsInvalid},
		{name: "negotiation statuses cannot be requested", status: load.Created, target: load.ReadyForPickup, want: errs.ErrValueIsInvalid},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := newWorld(t)
			store := newMemoryStore()
			l := w.newLoad(t, tc.status)
			require.NoError(t, store.LoadRepository().Add(ctx, l))
			cmd, err := commands.NewUpdateLoadStatusCommand(l.ID(), w.dispatcher.AppUserID(), tc.target)
			require.NoError(t, err)

			err = commands.NewUpdateLoadStatusCommandHandler(store, fakeDirectory{w: w}, nil, nil).Handle(ctx, cmd)

			require.ErrorIs(t, err, tc.want)
			assert.Equal(t, tc.status, l.Status())
		})
	}

	t.Run("customer cannot start transit", func(t *testing.T) {
		w := newWorld(t)
		store := newMemoryStore()
		l := w.newLoad(t, load.ReadyForPickup)
		require.NoError(t, store.LoadRepository().Add(ctx, l))
		cmd, err := commands.NewUpdateLoadStatusCommand(l.ID(), w.customer.AppUserID(), load.InTransit)
		require.NoError(t, err)

		err = commands.NewUpdateLoadStatusCommandHandler(store, fakeDirectory{w: w}, nil, nil).Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrPermissionDenied)
	})

	t.Run("unrelated company cannot see the load", func(t *testing.T) {
		w := newWorld(t)
		store := newMemoryStore()
		l := w.newLoad(t, load.ReadyForPickup)
		require.NoError(t, store.LoadRepository().Add(ctx, l))
		outsider := w.addUser(t, party.RoleDispatcher)
		cmd, err := commands.NewUpdateLoadStatusCommand(l.ID(), outsider.AppUserID(), load.Canceled)
		require.NoError(t, err)

		err = commands.NewUpdateLoadStatusCommandHandler(store, fakeDirectory{w: w}, nil, nil).Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrPermissionDenied)
	})

	t.Run("missing load is not found", func(t *testing.T) {
		w := newWorld(t)
		cmd, err := commands.NewUpdateLoadStatusCommand(w.shipment.ID(), w.dispatcher.AppUserID(), load.Canceled)
		require.NoError(t, err)

		err = commands.NewUpdateLoadStatusCommandHandler(newMemoryStore(), fakeDirectory{w: w}, nil, nil).Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})
}

func TestManageLoadCommandHandler(t *testing.T) {
	ctx := t.Context()
	w := newWorld(t)
	store := newMemoryStore()
	l := w.newLoad(t, load.Created)
	require.NoError(t, store.LoadRepository().Add(ctx, l))
	h := commands.NewManageLoadCommandHandler(store, fakeDirectory{w: w})

	t.Run("only the creator side may delete", func(t *testing.T) {
		cmd, err := commands.NewSoftDeleteLoadCommand(l.ID(), w.customer.AppUserID())
		require.NoError(t, err)

		require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrPermissionDenied)
		assert.False(t, l.IsDeleted())
	})

	t.Run("creator soft deletes once", func(t *testing.T) {
		cmd, err := commands.NewSoftDeleteLoadCommand(l.ID(), w.dispatcher.AppUserID())
		require.NoError(t, err)

		require.NoError(t, h.Handle(ctx, cmd))
		assert.True(t, l.IsDeleted())
		require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrObjectNotFound)
	})

	t.Run("deleted load cannot be published", func(t *testing.T) {
		cmd, err := commands.NewPublishLoadCommand(l.ID(), w.dispatcher.AppUserID())
		require.NoError(t, err)

		require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrObjectNotFound)
	})

	t.Run("publishing a non-draft is invalid", func(t *testing.T) {
		live := w.newLoad(t, load.Created)
		require.NoError(t, store.LoadRepository().Add(ctx, live))
		cmd, err := commands.NewPublishLoadCommand(live.ID(), w.dispatcher.AppUserID())
		require.NoError(t, err)

		require.ErrorIs(t, h.Handle(ctx, cmd), errs.ErrValueIsInvalid)
	})
}
