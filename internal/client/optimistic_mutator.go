package client

import (
	"context"
	"errors"

	api "tawsil/internal/adapters/in/http"
)

// OptimisticMutator applies a mutation to the local order list before the
// server confirms it, and undoes it when the server refuses. Either the
// whole mutation lands or none of it does.
//
// When the snapshot taken before the mutation is no longer trustworthy
// (the loader was reset while the request ran), the mutator falls back to
// the refresh callback instead of restoring stale data.
type OptimisticMutator struct {
	loader  *PageLoader
	refresh func(context.Context) error
}

// NewOptimisticMutator creates a mutator over the loader. refresh may be
// nil; without it a stale snapshot is simply dropped.
func NewOptimisticMutator(loader *PageLoader, refresh func(context.Context) error) *OptimisticMutator {
	return &OptimisticMutator{loader: loader, refresh: refresh}
}

// Mutate applies the local change, then runs the remote commit. On commit
// failure the local list is restored to the pre-mutation snapshot and the
// commit error is returned.
func (m *OptimisticMutator) Mutate(
	ctx context.Context,
	apply func([]api.Order) []api.Order,
	commit func(context.Context) error,
) error {
	snapshot, generation := m.loader.snapshot()
	m.loader.mutate(apply)

	err := commit(ctx)
	if err == nil {
		return nil
	}

	if !m.loader.restore(snapshot, generation) && m.refresh != nil {
		if refreshErr := m.refresh(ctx); refreshErr != nil {
			return errors.Join(err, refreshErr)
		}
	}
	return err
}
