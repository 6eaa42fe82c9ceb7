package queries

import (
	"errors"

	"tawsil/internal/core/domain/model/account"
	"tawsil/internal/core/domain/services"
	"tawsil/internal/pkg/errs"
	"tawsil/internal/pkg/guard"
)

var ErrGetOrderPageQueryIsNotConstructed = errors.New(
	"GetOrderPageQuery must be created via NewGetOrderPageQuery constructor",
)

const (
	// DefaultPageLimit matches the page size the clients request by default.
	DefaultPageLimit = 4

	maxPageLimit = 100
)

// GetOrderPageQuery retrieves one page of the tab-scoped order listing.
// Page numbering starts at 1; zero values fall back to the defaults.
type GetOrderPageQuery struct { //nolint:recvcheck //using for validation
	principal account.Principal
	tab       services.Tab
	page      int
	limit     int

	guard guard.ConstructorGuard
}

// NewGetOrderPageQuery creates a paged listing query.
// A page or limit of zero selects the default; negatives are rejected.
func NewGetOrderPageQuery(
	principal account.Principal,
	tab services.Tab,
	page, limit int,
) (GetOrderPageQuery, error) {
	q := GetOrderPageQuery{
		tab:   tab,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		q.setPrincipal(principal),
		q.setPage(page),
		q.setLimit(limit),
	); err != nil {
		return GetOrderPageQuery{}, err
	}

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderPageQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderPageQueryIsNotConstructed)
}

// Principal returns the requesting principal.
func (q GetOrderPageQuery) Principal() account.Principal {
	return q.principal
}

// Tab returns the requested visibility tab.
func (q GetOrderPageQuery) Tab() services.Tab {
	return q.tab
}

// Page returns the 1-based page number.
func (q GetOrderPageQuery) Page() int {
	return q.page
}

// Limit returns the page size.
func (q GetOrderPageQuery) Limit() int {
	return q.limit
}

// Offset returns the number of rows the page skips.
func (q GetOrderPageQuery) Offset() int {
	return (q.page - 1) * q.limit
}

func (q *GetOrderPageQuery) setPrincipal(principal account.Principal) error {
	if err := principal.Validate(); err != nil {
		return err
	}

	q.principal = principal
	return nil
}

func (q *GetOrderPageQuery) setPage(page int) error {
	if page == 0 {
		q.page = 1
		return nil
	}
	if page < 0 {
		return errs.NewValueIsOutOfRangeError("page", page, 1, nil)
	}

	q.page = page
	return nil
}

func (q *GetOrderPageQuery) setLimit(limit int) error {
	if limit == 0 {
		q.limit = DefaultPageLimit
		return nil
	}
	if limit < 0 || limit > maxPageLimit {
		return errs.NewValueIsOutOfRangeError("limit", limit, 1, maxPageLimit)
	}

	q.limit = limit
	return nil
}

// GetOrderPageQueryResponse is one page of the listing plus the paging
// metadata the clients use to decide whether to request more.
type GetOrderPageQueryResponse struct {
	Orders  []OrderResponse
	Total   int64
	HasMore bool
}
