package delivery

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Status is the lifecycle state of a delivery.
//
//	Assigned ──pickup──> PickedUp ──transit──> InTransit ──deliver──> Delivered
//	Assigned | PickedUp | InTransit ──fail──> Failed
type Status int

const (
	Unknown Status = iota
	Assigned
	PickedUp
	InTransit
	Delivered
	Failed
)

var statusNames = map[Status]string{
	Assigned:  "Assigned",
	PickedUp:  "PickedUp",
	InTransit: "InTransit",
	Delivered: "Delivered",
	Failed:    "Failed",
}

// ActiveStatuses are the non-terminal statuses, in workflow order.
func ActiveStatuses() []Status {
	return []Status{Assigned, PickedUp, InTransit}
}

// ParseStatus maps a stored or wire name back to its Status. Names are
// case-sensitive. Returns a ValueIsInvalidError for anything else.
//
// Example:
//
//	s, _ := delivery.ParseStatus("InTransit") // delivery.InTransit
func ParseStatus(s string) (Status, error) {
	for status, name := range statusNames {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a delivery status", s))
}

// String returns the wire name, or "Unknown" for values outside the workflow.
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "Unknown"
}

// Validate rejects Unknown and any value outside the declared statuses.
func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// IsTerminal reports whether no further transition is possible. Delivered and
// Failed are terminal; a courier is released when a delivery reaches either.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Failed
}

// PickUp moves Assigned to PickedUp.
// Every transition method returns the next status without changing s. From any
// other status it returns Unknown and an InvalidStateError naming the
// operation and the current status.
//
// Example:
//
//	next, err := delivery.Assigned.PickUp()   // PickedUp, nil
//	_, err = delivery.Delivered.PickUp()      // InvalidStateError
func (s Status) PickUp() (Status, error) {
	return s.transition("pick up", PickedUp, Assigned)
}

// StartTransit moves PickedUp to InTransit.
func (s Status) StartTransit() (Status, error) {
	return s.transition("start transit of", InTransit, PickedUp)
}

// Deliver moves InTransit to Delivered. Deliveries cannot skip PickedUp or
// InTransit on the way.
func (s Status) Deliver() (Status, error) {
	return s.transition("deliver", Delivered, InTransit)
}

// Fail moves any active status to Failed. An order whose only deliveries are
// Failed may be assigned again.
func (s Status) Fail() (Status, error) {
	return s.transition("fail", Failed, ActiveStatuses()...)
}

func (s Status) transition(operation string, to Status, from ...Status) (Status, error) {
	for _, allowed := range from {
		if s == allowed {
			return to, nil
		}
	}
	return Unknown, errs.NewInvalidStateError("delivery", operation, s.String())
}
