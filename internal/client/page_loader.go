package client

import (
	"context"
	"sync"

	api "tawsil/internal/adapters/in/http"
)

// defaultPageLimit matches the server default when the caller does not care.
const defaultPageLimit = 4

// PageFetcher fetches one page of the tab-scoped order listing.
type PageFetcher interface {
	OrderPage(ctx context.Context, tab string, page, limit int) (api.OrderPage, error)
}

// PageLoader accumulates pages of one tab into a stable local list.
//
// It is built for a scroll-driven UI: RequestMore is level-triggered and
// idempotent, so the view layer may call it on every scroll event. At most
// one fetch is in flight; extra requests are dropped, never queued. Reset
// switches tabs and bumps an internal generation counter, so a fetch that
// was already in flight for the old tab gets its result discarded instead
// of leaking into the new list.
type PageLoader struct {
	fetcher PageFetcher
	limit   int

	mu         sync.Mutex
	tab        string
	orders     []api.Order
	seen       map[string]struct{}
	nextPage   int
	hasMore    bool
	inFlight   bool
	generation uint64
}

// NewPageLoader creates a loader for the given tab. A non-positive limit
// falls back to the server default page size.
func NewPageLoader(fetcher PageFetcher, tab string, limit int) *PageLoader {
	if limit <= 0 {
		limit = defaultPageLimit
	}
	return &PageLoader{
		fetcher:  fetcher,
		limit:    limit,
		tab:      tab,
		seen:     make(map[string]struct{}),
		nextPage: 1,
		hasMore:  true,
	}
}

// Reset switches the loader to a tab and clears the accumulated list.
// Any fetch still in flight belongs to the previous generation and will be
// discarded when it returns.
func (l *PageLoader) Reset(tab string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.generation++
	l.tab = tab
	l.orders = nil
	l.seen = make(map[string]struct{})
	l.nextPage = 1
	l.hasMore = true
	l.inFlight = false
}

// RequestMore fetches the next page if nothing is in flight and more data
// exists. Calling it again while a fetch is running is a no-op.
func (l *PageLoader) RequestMore(ctx context.Context) error {
	l.mu.Lock()
	if l.inFlight || !l.hasMore {
		l.mu.Unlock()
		return nil
	}
	l.inFlight = true
	generation := l.generation
	tab := l.tab
	page := l.nextPage
	l.mu.Unlock()

	resp, err := l.fetcher.OrderPage(ctx, tab, page, l.limit)

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.generation != generation {
		// Reset happened while we were fetching; the result belongs to a
		// list that no longer exists.
		return nil
	}

	l.inFlight = false
	if err != nil {
		return err
	}

	for _, order := range resp.Orders {
		if _, ok := l.seen[order.ID]; ok {
			continue
		}
		l.seen[order.ID] = struct{}{}
		l.orders = append(l.orders, order)
	}
	l.nextPage = page + 1
	l.hasMore = resp.HasMore
	return nil
}

// Orders returns a copy of the accumulated list.
func (l *PageLoader) Orders() []api.Order {
	l.mu.Lock()
	defer l.mu.Unlock()

	orders := make([]api.Order, len(l.orders))
	copy(orders, l.orders)
	return orders
}

// HasMore reports whether another page may exist.
func (l *PageLoader) HasMore() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.hasMore
}

// Tab returns the tab the loader currently accumulates.
func (l *PageLoader) Tab() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.tab
}

func (l *PageLoader) snapshot() ([]api.Order, uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()

	orders := make([]api.Order, len(l.orders))
	copy(orders, l.orders)
	return orders, l.generation
}

func (l *PageLoader) mutate(apply func([]api.Order) []api.Order) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.replaceLocked(apply(l.orders))
}

// restore puts a snapshot back unless the loader moved to a new generation
// in the meantime. Returns false when the snapshot is stale.
func (l *PageLoader) restore(orders []api.Order, generation uint64) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.generation != generation {
		return false
	}
	l.replaceLocked(orders)
	return true
}

func (l *PageLoader) replaceLocked(orders []api.Order) {
	l.orders = orders
	l.seen = make(map[string]struct{}, len(orders))
	for _, order := range orders {
		l.seen[order.ID] = struct{}{}
	}
}
