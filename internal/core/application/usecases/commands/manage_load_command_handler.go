package commands

import (
	"context"
	"time"

	"freight/internal/core/ports"
	"freight/internal/pkg/errs"
)

// ManageLoadCommandHandler handles the creator-side housekeeping actions.
// Only the creator, or a colleague of the creator, may run them.
type ManageLoadCommandHandler struct {
	uowFactory ports.UnitOfWorkFactory
	gate       loadGate
}

// NewManageLoadCommandHandler creates a handler for soft deletion and publishing.
func NewManageLoadCommandHandler(uowFactory ports.UnitOfWorkFactory, directory ports.Directory) ManageLoadCommandHandler {
	return ManageLoadCommandHandler{uowFactory: uowFactory, gate: newLoadGate(directory)}
}

func (h ManageLoadCommandHandler) Handle(ctx context.Context, cmd ManageLoadCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	colleagues, err := h.gate.colleagues(ctx, cmd.Actor())
	if err != nil {
		return err
	}

	return inTransaction(ctx, h.uowFactory, func(uow ports.UnitOfWork) error {
		l, err := uow.LoadRepository().GetForUpdate(ctx, cmd.LoadID())
		if err != nil {
			return err
		}
		if err = h.gate.authorizeView(ctx, l, colleagues); err != nil {
			return err
		}
		if err = h.gate.policy.AuthorizeCreator(l, cmd.Actor(), colleagues, cmd.Action().String()); err != nil {
			return err
		}

		now := time.Now()
		switch cmd.Action() {
		case SoftDeleteLoad:
			err = l.SoftDelete(now)
		case PublishLoad:
			err = l.Publish(now)
		default:
			err = errs.NewValueIsInvalidError("load action")
		}
		if err != nil {
			return err
		}
		return uow.LoadRepository().Update(ctx, l)
	})
}
