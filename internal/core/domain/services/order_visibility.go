package services

import (
	"fmt"
	"time"

	"tawsil/internal/core/domain/model/account"
	"tawsil/internal/core/domain/model/order"
	"tawsil/internal/pkg/errs"
)

// Tab is the named visibility partition couriers and administrators page
// through. Managers have no tab concept; their view is always "my own
// non-deleted orders".
type Tab int

const (
	// TabUnspecified means no tab parameter was supplied.
	TabUnspecified Tab = iota
	// TabNew lists unclaimed NEW orders (late ones included).
	TabNew
	// TabInProgress lists accepted orders.
	TabInProgress
	// TabDone lists completed orders.
	TabDone
)

// TabFromString parses a tab parameter. The empty string maps to
// TabUnspecified; any other unknown value is a validation error.
func TabFromString(s string) (Tab, error) {
	switch s {
	case "":
		return TabUnspecified, nil
	case "new":
		return TabNew, nil
	case "inProgress":
		return TabInProgress, nil
	case "done":
		return TabDone, nil
	}
	return TabUnspecified, errs.NewValueIsInvalidErrorWithCause("tab",
		fmt.Errorf("%q is not a valid tab", s))
}

// String returns the wire name of the tab.
func (t Tab) String() string {
	switch t {
	case TabNew:
		return "new"
	case TabInProgress:
		return "inProgress"
	case TabDone:
		return "done"
	case TabUnspecified:
		return ""
	}
	return ""
}

// OrderFilter is the predicate a listing applies over the order collection.
// It is a plain value: the postgres read side translates it to SQL and the
// in-memory Matches method gives tests and the domain one shared meaning.
type OrderFilter struct {
	// MatchNone short-circuits to an empty result set. A courier who
	// supplies no tab gets this: absence of a tab yields nothing, not
	// "all orders".
	MatchNone bool

	// OwnerEmail, when non-empty, restricts to orders owned by that
	// requester.
	OwnerEmail string

	// Statuses, when non-empty, restricts to the given stored statuses.
	Statuses []order.Status

	// RequireUnassigned restricts to orders with no courier claim yet.
	RequireUnassigned bool

	// AssignedTo, when non-empty, restricts to orders claimed by that
	// courier.
	AssignedTo string

	// ExcludeDeleted hides soft-deleted orders. Administrators are the
	// only principals for whom this is false.
	ExcludeDeleted bool
}

// BuildOrderFilter produces the filter for a principal and requested tab.
//
// Managers ignore the tab entirely and always see their own non-deleted
// orders. Couriers see unclaimed NEW orders, their own accepted orders, or
// their own completed deliveries depending on the tab; no tab means an
// empty view. Administrators see the same status groupings without the
// assignment restriction, with NOT_RECEIVED added to done, and including
// soft-deleted records.
func BuildOrderFilter(p account.Principal, tab Tab) (OrderFilter, error) {
	if err := p.Validate(); err != nil {
		return OrderFilter{}, err
	}

	switch p.Role() {
	case account.RoleManager:
		return OrderFilter{
			OwnerEmail:     p.Email(),
			ExcludeDeleted: true,
		}, nil

	case account.RoleMurasel:
		switch tab {
		case TabNew:
			return OrderFilter{
				Statuses:          []order.Status{order.StatusNew},
				RequireUnassigned: true,
				ExcludeDeleted:    true,
			}, nil
		case TabInProgress:
			return OrderFilter{
				Statuses:       []order.Status{order.StatusInProgress},
				AssignedTo:     p.Email(),
				ExcludeDeleted: true,
			}, nil
		case TabDone:
			return OrderFilter{
				Statuses:       []order.Status{order.StatusDelivered, order.StatusDeliveredLate},
				AssignedTo:     p.Email(),
				ExcludeDeleted: true,
			}, nil
		case TabUnspecified:
			return OrderFilter{MatchNone: true, ExcludeDeleted: true}, nil
		}
		return OrderFilter{MatchNone: true, ExcludeDeleted: true}, nil

	case account.RoleAdmin:
		switch tab {
		case TabNew:
			return OrderFilter{
				Statuses:          []order.Status{order.StatusNew},
				RequireUnassigned: true,
			}, nil
		case TabInProgress:
			return OrderFilter{
				Statuses: []order.Status{order.StatusInProgress},
			}, nil
		case TabDone:
			return OrderFilter{
				Statuses: []order.Status{
					order.StatusDelivered,
					order.StatusDeliveredLate,
					order.StatusNotReceived,
				},
			}, nil
		case TabUnspecified:
			// no tab constraint: admins browse the whole collection
			return OrderFilter{}, nil
		}
		return OrderFilter{}, nil

	case account.RoleNone:
		return OrderFilter{}, errs.NewForbiddenError("no role assigned")
	}

	return OrderFilter{}, errs.NewForbiddenError("no role assigned")
}

// Matches evaluates the filter against a single order in memory.
// The displayed-late variant of NEW needs no special casing: late orders
// are stored as NEW, so the StatusNew constraint already covers them.
func (f OrderFilter) Matches(o *order.Order, _ time.Time) bool {
	if f.MatchNone {
		return false
	}
	if f.ExcludeDeleted && o.IsDeleted() {
		return false
	}
	if f.OwnerEmail != "" && o.UserEmail() != f.OwnerEmail {
		return false
	}
	if len(f.Statuses) > 0 && !f.matchesStatus(o.Status()) {
		return false
	}
	if f.RequireUnassigned && o.DeliveryPerson() != nil {
		return false
	}
	if f.AssignedTo != "" {
		if o.DeliveryPerson() == nil || *o.DeliveryPerson() != f.AssignedTo {
			return false
		}
	}
	return true
}

func (f OrderFilter) matchesStatus(s order.Status) bool {
	for _, status := range f.Statuses {
		if status == s {
			return true
		}
	}
	return false
}
