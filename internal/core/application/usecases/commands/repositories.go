// Package commands contains the write side of the freight core: load
// lifecycle, offer negotiation and retention. Every command follows the same
// shape: a guarded value object, a handler that validates it, runs the change
// inside one unit of work and fans out notifications after commit.
package commands

import (
	"context"

	"freight/internal/core/ports"
)

// inTransaction runs fn inside a fresh unit of work and commits when fn
// succeeds. The deferred rollback is a no-op after a successful commit.
//
// Example:
//
//	err := inTransaction(ctx, h.uowFactory, func(uow ports.UnitOfWork) error {
//	    l, err := uow.LoadRepository().GetForUpdate(ctx, id)
//	    if err != nil {
//	        return err
//	    }
//	    // mutate l
//	    return uow.LoadRepository().Update(ctx, l)
//	})
func inTransaction(ctx context.Context, factory ports.UnitOfWorkFactory, fn func(uow ports.UnitOfWork) error) error {
	uow := factory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := fn(uow); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
