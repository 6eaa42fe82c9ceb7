package client

import (
	"context"
	"errors"
	"testing"

	api "tawsil/internal/adapters/in/http"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadedLoader(t *testing.T, ids ...string) (*PageLoader, *fakeFetcher) {
	t.Helper()

	orders := make([]api.Order, 0, len(ids))
	for _, id := range ids {
		orders = append(orders, orderStub(id))
	}

	fetcher := newFakeFetcher()
	fetcher.addPage("new", 1, api.OrderPage{Orders: orders, Total: int64(len(orders)), HasMore: false})

	loader := NewPageLoader(fetcher, "new", 4)
	require.NoError(t, loader.RequestMore(context.Background()))
	return loader, fetcher
}

func dropOrder(id string) func([]api.Order) []api.Order {
	return func(orders []api.Order) []api.Order {
		kept := make([]api.Order, 0, len(orders))
		for _, o := range orders {
			if o.ID != id {
				kept = append(kept, o)
			}
		}
		return kept
	}
}

func TestOptimisticMutator_CommitSuccessKeepsMutation(t *testing.T) {
	loader, _ := loadedLoader(t, "a", "b")
	mutator := NewOptimisticMutator(loader, nil)

	err := mutator.Mutate(context.Background(), dropOrder("a"), func(context.Context) error {
		// mutation is already visible while the request runs
		assert.Equal(t, []string{"b"}, orderIDs(loader.Orders()))
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, orderIDs(loader.Orders()))
}

func TestOptimisticMutator_CommitFailureReverts(t *testing.T) {
	loader, _ := loadedLoader(t, "a", "b")
	mutator := NewOptimisticMutator(loader, nil)

	commitErr := errors.New("forbidden")
	err := mutator.Mutate(context.Background(), dropOrder("a"), func(context.Context) error {
		return commitErr
	})

	require.ErrorIs(t, err, commitErr)
	assert.Equal(t, []string{"a", "b"}, orderIDs(loader.Orders()))
}

func TestOptimisticMutator_StaleSnapshotTriggersRefresh(t *testing.T) {
	loader, fetcher := loadedLoader(t, "a", "b")
	fetcher.addPage("done", 1, api.OrderPage{
		Orders: []api.Order{orderStub("z")}, Total: 1, HasMore: false,
	})

	refreshed := false
	mutator := NewOptimisticMutator(loader, func(ctx context.Context) error {
		refreshed = true
		return loader.RequestMore(ctx)
	})

	commitErr := errors.New("conflict")
	err := mutator.Mutate(context.Background(), dropOrder("a"), func(context.Context) error {
		// the user switched tabs while the request was running, so the
		// pre-mutation snapshot no longer describes the visible list
		loader.Reset("done")
		return commitErr
	})

	require.ErrorIs(t, err, commitErr)
	assert.True(t, refreshed)
	assert.Equal(t, []string{"z"}, orderIDs(loader.Orders()))
}

func TestOptimisticMutator_StaleSnapshotWithoutRefresh(t *testing.T) {
	loader, _ := loadedLoader(t, "a")
	mutator := NewOptimisticMutator(loader, nil)

	commitErr := errors.New("conflict")
	err := mutator.Mutate(context.Background(), dropOrder("a"), func(context.Context) error {
		loader.Reset("done")
		return commitErr
	})

	require.ErrorIs(t, err, commitErr)
	// no refresh configured: the reset list stays as Reset left it
	assert.Empty(t, loader.Orders())
}
