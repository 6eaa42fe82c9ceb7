package order

import (
	"errors"
	"fmt"
	"time"

	"tawsil/internal/core/domain/model/account"
	"tawsil/internal/core/domain/model/kernel"
	"tawsil/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Details holds the descriptive order fields fixed at creation time. They
// may still be replaced as a whole while the order is NEW; once a courier
// accepts, they are frozen.
type Details struct {
	CustomerName  string
	Location      string
	MapLink       string
	DeliveryTime  time.Time
	ReceiverName  string
	ReceiverPhone string
	Note          string
	Items         []Item
}

func (d Details) validate() error {
	return errors.Join(
		requireField("customerName", d.CustomerName),
		requireField("location", d.Location),
		requireField("mapLink", d.MapLink),
		requireField("receiverName", d.ReceiverName),
		requireField("receiverPhone", d.ReceiverPhone),
		requireTime("deliveryTime", d.DeliveryTime),
	)
}

func requireField(name, value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}

func requireTime(name string, value time.Time) error {
	if value.IsZero() {
		return errs.NewValueIsRequiredError(name)
	}
	return nil
}

// Snapshot is the full stored state of an order, used to reconstruct the
// aggregate from persistence.
type Snapshot struct {
	ID             kernel.UUID
	UserEmail      string
	Details        Details
	Status         Status
	DeliveryPerson *string
	StartedAt      *time.Time
	EndedAt        *time.Time
	CourierNote    string
	IsDeleted      bool
	CreatedAt      time.Time
}

// Order is the aggregate root of the delivery lifecycle. It owns the status
// state machine, the role constraints on each transition, and the timestamp
// side effects transitions carry.
//
// Invariants:
//   - deliveryPerson is set if and only if the status has reached
//     InProgress or later.
//   - endedAt is set if and only if the status is terminal.
//   - Status transitions are monotonic; terminal states are final.
//   - Soft deletion hides the order from everyone but administrators.
type Order struct {
	id             kernel.UUID
	userEmail      string
	details        Details
	status         Status
	deliveryPerson *string
	startedAt      *time.Time
	endedAt        *time.Time
	courierNote    string
	isDeleted      bool
	createdAt      time.Time

	isConstructed bool
}

// NewOrder creates a new order in NEW status owned by the given requester.
// All descriptive fields except the free-text note are required; items are
// validated individually by NewItem before they reach this constructor.
func NewOrder(id kernel.UUID, userEmail string, details Details, createdAt time.Time) (*Order, error) {
	o := &Order{
		status:        StatusNew,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setUserEmail(userEmail),
		o.setDetails(details),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from its stored snapshot and verifies
// the cross-field invariants persisted data must satisfy.
func RestoreOrder(s Snapshot) (*Order, error) {
	o := &Order{
		status:         s.Status,
		deliveryPerson: s.DeliveryPerson,
		startedAt:      s.StartedAt,
		endedAt:        s.EndedAt,
		courierNote:    s.CourierNote,
		isDeleted:      s.IsDeleted,
		createdAt:      s.CreatedAt,
		isConstructed:  true,
	}

	if err := errors.Join(
		o.setID(s.ID),
		o.setUserEmail(s.UserEmail),
		o.setDetails(s.Details),
		s.Status.Validate(),
	); err != nil {
		return nil, err
	}

	if err := o.validateLifecycleInvariants(); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order was created via a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// UserEmail returns the owning requester's email.
func (o *Order) UserEmail() string {
	return o.userEmail
}

// Details returns the descriptive order fields.
func (o *Order) Details() Details {
	return o.details
}

// Status returns the stored lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// DeliveryPerson returns the assigned courier's email, nil while unassigned.
func (o *Order) DeliveryPerson() *string {
	return o.deliveryPerson
}

// StartedAt returns the acceptance instant, nil before acceptance.
func (o *Order) StartedAt() *time.Time {
	return o.startedAt
}

// EndedAt returns the completion instant, nil before a terminal transition.
func (o *Order) EndedAt() *time.Time {
	return o.endedAt
}

// CourierNote returns the courier's free-text note.
func (o *Order) CourierNote() string {
	return o.courierNote
}

// IsDeleted reports whether the order has been soft-deleted.
func (o *Order) IsDeleted() bool {
	return o.isDeleted
}

// CreatedAt returns the creation instant.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// DisplayStatus derives the presentation state at the given instant.
func (o *Order) DisplayStatus(now time.Time) DisplayStatus {
	return o.status.Display(o.details.DeliveryTime, now)
}

// VisibleTo reports whether the principal may see this order at all.
// Soft-deleted orders are visible only to administrators.
func (o *Order) VisibleTo(p account.Principal) bool {
	return !o.isDeleted || p.Role() == account.RoleAdmin
}

// IsOwnedBy reports whether the principal is the owning requester.
func (o *Order) IsOwnedBy(p account.Principal) bool {
	return o.userEmail == p.Email()
}

// IsAssignedTo reports whether the principal is the assigned courier.
func (o *Order) IsAssignedTo(p account.Principal) bool {
	return o.deliveryPerson != nil && *o.deliveryPerson == p.Email()
}

// Edit replaces the descriptive fields. Permitted only while the order is
// still NEW (including its displayed-late variant) and only for the owning
// requester or an administrator.
func (o *Order) Edit(p account.Principal, details Details) error {
	if o.status != StatusNew {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s order can no longer be edited", o.status))
	}
	if !o.canBeManagedBy(p) {
		return errs.NewForbiddenError("only the owning manager or an admin may edit an order")
	}

	return o.setDetails(details)
}

// TransitionTo validates and applies a status transition requested by the
// given actor at the given instant. Side effects follow the transition
// contract: acceptance sets startedAt (once) and claims deliveryPerson;
// completion variants set endedAt and derive delivered vs. deliveredLate
// from the delivery deadline, regardless of which variant was requested.
func (o *Order) TransitionTo(p account.Principal, requested Status, now time.Time) error {
	if err := requested.Validate(); err != nil {
		return err
	}
	if o.status.IsTerminal() {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is a terminal status", o.status))
	}

	switch {
	case requested == StatusInProgress:
		return o.accept(p, now)
	case requested.IsCompletion():
		return o.complete(p, now)
	case requested == StatusNotReceived:
		return o.markNotReceived(p, now)
	default:
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("transition from %s to %s is not permitted", o.status, requested))
	}
}

// SetCourierNote records the courier's free-text note. Permitted for the
// assigned courier or an administrator at any point after acceptance.
func (o *Order) SetCourierNote(p account.Principal, note string) error {
	if p.Role() != account.RoleAdmin && !(p.Role() == account.RoleMurasel && o.IsAssignedTo(p)) {
		return errs.NewForbiddenError("only the assigned courier or an admin may set the courier note")
	}

	o.courierNote = note
	return nil
}

// MarkDeleted soft-deletes the order on behalf of its owning manager.
// Administrators hard-delete instead; couriers may never delete.
func (o *Order) MarkDeleted(p account.Principal) error {
	if !(p.Role() == account.RoleManager && o.IsOwnedBy(p)) {
		return errs.NewForbiddenError("only the owning manager may soft-delete an order")
	}

	o.isDeleted = true
	return nil
}

// accept applies NEW -> IN_PROGRESS. First acceptance claims the order for
// the actor; a re-confirmation by the already assigned courier is permitted
// and never resets startedAt. A courier who lost the race to another gets a
// conflict, so the caller can tell "refresh your view" from "not allowed".
func (o *Order) accept(p account.Principal, now time.Time) error {
	if p.Role() != account.RoleAdmin && p.Role() != account.RoleMurasel {
		return errs.NewForbiddenError("only a courier or an admin may accept an order")
	}

	if o.status != StatusNew && o.status != StatusInProgress {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to accept", o.status))
	}

	if p.Role() == account.RoleMurasel && o.deliveryPerson != nil && *o.deliveryPerson != p.Email() {
		return errs.NewConflictErrorWithCause("order", o.id.String(),
			fmt.Errorf("already accepted by %s", *o.deliveryPerson))
	}

	o.status = StatusInProgress
	if o.deliveryPerson == nil {
		email := p.Email()
		o.deliveryPerson = &email
	}
	if o.startedAt == nil {
		o.startedAt = &now
	}
	return nil
}

// complete applies IN_PROGRESS -> DELIVERED or DELIVERED_LATE, choosing the
// late variant when the delivery deadline has passed at transition time.
func (o *Order) complete(p account.Principal, now time.Time) error {
	if err := o.requireInProgressActor(p); err != nil {
		return err
	}

	if now.After(o.details.DeliveryTime) {
		o.status = StatusDeliveredLate
	} else {
		o.status = StatusDelivered
	}
	o.endedAt = &now
	return nil
}

// markNotReceived applies IN_PROGRESS -> NOT_RECEIVED.
func (o *Order) markNotReceived(p account.Principal, now time.Time) error {
	if err := o.requireInProgressActor(p); err != nil {
		return err
	}

	o.status = StatusNotReceived
	o.endedAt = &now
	return nil
}

func (o *Order) requireInProgressActor(p account.Principal) error {
	if o.status != StatusInProgress {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to complete", o.status))
	}
	if p.Role() != account.RoleAdmin && !(p.Role() == account.RoleMurasel && o.IsAssignedTo(p)) {
		return errs.NewForbiddenError("only the assigned courier or an admin may complete an order")
	}
	return nil
}

func (o *Order) canBeManagedBy(p account.Principal) bool {
	return p.Role() == account.RoleAdmin ||
		(p.Role() == account.RoleManager && o.IsOwnedBy(p))
}

// validateLifecycleInvariants checks the cross-field rules stored data must
// satisfy: courier assignment iff accepted, endedAt iff terminal.
func (o *Order) validateLifecycleInvariants() error {
	assigned := o.deliveryPerson != nil
	accepted := o.status == StatusInProgress || o.status.IsTerminal()

	if assigned != accepted {
		return errs.NewValueIsInvalidErrorWithCause("deliveryPerson",
			fmt.Errorf("assignment does not match status %s", o.status))
	}

	ended := o.endedAt != nil
	if ended != o.status.IsTerminal() {
		return errs.NewValueIsInvalidErrorWithCause("endedAt",
			fmt.Errorf("completion timestamp does not match status %s", o.status))
	}

	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setUserEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("userEmail")
	}
	o.userEmail = email
	return nil
}

func (o *Order) setDetails(details Details) error {
	if err := details.validate(); err != nil {
		return err
	}
	o.details = details
	return nil
}
