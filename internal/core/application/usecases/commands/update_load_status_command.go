package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/load"
	"freight/internal/pkg/guard"
)

var ErrUpdateLoadStatusCommandIsNotConstructed = errors.New(
	"UpdateLoadStatusCommand must be created via NewUpdateLoadStatusCommand constructor",
)

// UpdateLoadStatusCommand is an explicit status request: In Transit,
// Delivered or Canceled.
type UpdateLoadStatusCommand struct { //nolint:recvcheck //using for validation
	loadID kernel.UUID
	actor  kernel.UUID
	target load.Status

	guard guard.ConstructorGuard
}

func NewUpdateLoadStatusCommand(loadID, actor kernel.UUID, target load.Status) (UpdateLoadStatusCommand, error) {
	if err := errors.Join(loadID.Validate(), actor.Validate(), target.Validate()); err != nil {
		return UpdateLoadStatusCommand{}, err
	}
	return UpdateLoadStatusCommand{
		loadID: loadID,
		actor:  actor,
		target: target,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateLoadStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateLoadStatusCommandIsNotConstructed)
}

func (c UpdateLoadStatusCommand) LoadID() kernel.UUID { return c.loadID }
func (c UpdateLoadStatusCommand) Actor() kernel.UUID  { return c.actor }
func (c UpdateLoadStatusCommand) Target() load.Status { return c.target }
