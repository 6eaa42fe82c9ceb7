package order

import (
	"fmt"
	"time"

	"tawsil/internal/pkg/errs"
)

// Status represents the stored lifecycle state of an order.
//
// State transitions:
//
//	New ──> InProgress ──┬──> Delivered
//	                     ├──> DeliveredLate
//	                     └──> NotReceived
//
// The three completion states are terminal. The displayed "late" state is
// derived, never stored; see DisplayStatus.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	StatusUnknown Status = iota

	// StatusNew is the initial status. Orders in this status are visible to
	// couriers and may still be edited by their owner.
	StatusNew

	// StatusInProgress indicates a courier has accepted the order.
	StatusInProgress

	// StatusDelivered indicates delivery completed before the deadline.
	StatusDelivered

	// StatusDeliveredLate indicates delivery completed after the deadline.
	StatusDeliveredLate

	// StatusNotReceived indicates the receiver never took the delivery.
	StatusNotReceived
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:       "unknown",
		StatusNew:           "new",
		StatusInProgress:    "inProgress",
		StatusDelivered:     "delivered",
		StatusDeliveredLate: "deliveredLate",
		StatusNotReceived:   "notReceived",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusNew:           "new",
		StatusInProgress:    "inProgress",
		StatusDelivered:     "delivered",
		StatusDeliveredLate: "deliveredLate",
		StatusNotReceived:   "notReceived",
	}
}

// StatusFromString parses a status wire name.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks the status is one of the defined stored values.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status is one of the three completion
// states, from which no further transitions are permitted.
func (s Status) IsTerminal() bool {
	return s == StatusDelivered || s == StatusDeliveredLate || s == StatusNotReceived
}

// IsCompletion reports whether the requested status names one of the two
// delivered variants. The variant actually stored is derived from the
// delivery deadline, not from the request.
func (s Status) IsCompletion() bool {
	return s == StatusDelivered || s == StatusDeliveredLate
}

// DisplayStatus is the presentation state of an order. It equals the stored
// status except for NEW orders past their delivery time, which are shown as
// late while remaining NEW in storage.
type DisplayStatus int

const (
	// DisplayUnknown mirrors StatusUnknown.
	DisplayUnknown DisplayStatus = iota
	// DisplayNew mirrors StatusNew within the delivery window.
	DisplayNew
	// DisplayLate marks a NEW order whose delivery time has passed.
	DisplayLate
	// DisplayInProgress mirrors StatusInProgress.
	DisplayInProgress
	// DisplayDelivered mirrors StatusDelivered.
	DisplayDelivered
	// DisplayDeliveredLate mirrors StatusDeliveredLate.
	DisplayDeliveredLate
	// DisplayNotReceived mirrors StatusNotReceived.
	DisplayNotReceived
)

// String returns the wire name of the display status.
func (d DisplayStatus) String() string {
	switch d {
	case DisplayNew:
		return "new"
	case DisplayLate:
		return "late"
	case DisplayInProgress:
		return "inProgress"
	case DisplayDelivered:
		return "delivered"
	case DisplayDeliveredLate:
		return "deliveredLate"
	case DisplayNotReceived:
		return "notReceived"
	case DisplayUnknown:
		return "unknown"
	}
	return "unknown"
}

// Display derives the presentation state for a stored status given the
// order's delivery deadline and the current time. This is the single source
// of truth for the "late" presentation; callers must not re-derive it.
func (s Status) Display(deliveryTime, now time.Time) DisplayStatus {
	switch s {
	case StatusNew:
		if now.After(deliveryTime) {
			return DisplayLate
		}
		return DisplayNew
	case StatusInProgress:
		return DisplayInProgress
	case StatusDelivered:
		return DisplayDelivered
	case StatusDeliveredLate:
		return DisplayDeliveredLate
	case StatusNotReceived:
		return DisplayNotReceived
	case StatusUnknown:
		return DisplayUnknown
	}
	return DisplayUnknown
}
