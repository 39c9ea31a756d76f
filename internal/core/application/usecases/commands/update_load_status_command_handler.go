package commands

import (
	"context"
	"log/slog"
	"time"

	"freight/internal/core/domain/model/load"
	"freight/internal/core/ports"
)

// UpdateLoadStatusCommandHandler applies explicit status requests under a
// row lock. In Transit and Delivered belong to the dispatcher side; any core
// party or the creator may cancel. Skipping states is a validation error.
type UpdateLoadStatusCommandHandler struct {
	uowFactory    ports.UnitOfWorkFactory
	gate          loadGate
	notifications notifications
}

// NewUpdateLoadStatusCommandHandler creates a handler for explicit status changes.
// Requires a UnitOfWorkFactory for the row lock and a Directory to resolve the actor's company.
func NewUpdateLoadStatusCommandHandler(
	uowFactory ports.UnitOfWorkFactory,
	directory ports.Directory,
	notifier ports.Notifier,
	logger *slog.Logger,
) UpdateLoadStatusCommandHandler {
	return UpdateLoadStatusCommandHandler{
		uowFactory:    uowFactory,
		gate:          newLoadGate(directory),
		notifications: newNotifications(notifier, logger),
	}
}

func (h UpdateLoadStatusCommandHandler) Handle(ctx context.Context, cmd UpdateLoadStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	colleagues, err := h.gate.colleagues(ctx, cmd.Actor())
	if err != nil {
		return err
	}

	var updated *load.Load
	err = inTransaction(ctx, h.uowFactory, func(uow ports.UnitOfWork) error {
		l, err := uow.LoadRepository().GetForUpdate(ctx, cmd.LoadID())
		if err != nil {
			return err
		}
		if err = h.gate.authorizeView(ctx, l, colleagues); err != nil {
			return err
		}
		if err = h.gate.policy.AuthorizeStatusChange(l, cmd.Target(), cmd.Actor(), colleagues); err != nil {
			return err
		}
		if err = l.UpdateStatus(cmd.Target(), time.Now()); err != nil {
			return err
		}
		updated = l
		return uow.LoadRepository().Update(ctx, l)
	})
	if err != nil {
		return err
	}

	h.notifications.loadStatusChanged(ctx, updated, cmd.Actor())
	return nil
}
