package commands

import (
	"errors"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/guard"
)

var ErrManageLoadCommandIsNotConstructed = errors.New(
	"ManageLoadCommand must be created via NewSoftDeleteLoadCommand or NewPublishLoadCommand",
)

// LoadAction is a creator-side housekeeping action.
type LoadAction int

const (
	SoftDeleteLoad LoadAction = iota + 1
	PublishLoad
)

func (a LoadAction) String() string {
	switch a {
	case SoftDeleteLoad:
		return "delete load"
	case PublishLoad:
		return "publish load"
	}
	return "unknown"
}

// ManageLoadCommand soft-deletes a load or publishes a draft.
type ManageLoadCommand struct { //nolint:recvcheck //using for validation
	loadID kernel.UUID
	actor  kernel.UUID
	action LoadAction

	guard guard.ConstructorGuard
}

func NewSoftDeleteLoadCommand(loadID, actor kernel.UUID) (ManageLoadCommand, error) {
	return newManageLoadCommand(loadID, actor, SoftDeleteLoad)
}

func NewPublishLoadCommand(loadID, actor kernel.UUID) (ManageLoadCommand, error) {
	return newManageLoadCommand(loadID, actor, PublishLoad)
}

func newManageLoadCommand(loadID, actor kernel.UUID, action LoadAction) (ManageLoadCommand, error) {
	if err := errors.Join(loadID.Validate(), actor.Validate()); err != nil {
		return ManageLoadCommand{}, err
	}
	return ManageLoadCommand{loadID: loadID, actor: actor, action: action, guard: guard.NewConstructorGuard()}, nil
}

func (c ManageLoadCommand) Validate() error {
	return c.guard.Validate(ErrManageLoadCommandIsNotConstructed)
}

func (c ManageLoadCommand) LoadID() kernel.UUID { return c.loadID }
func (c ManageLoadCommand) Actor() kernel.UUID  { return c.actor }
func (c ManageLoadCommand) Action() LoadAction  { return c.action }
