package order

import (
	"fmt"

	"fulfillment/internal/pkg/errs"
)

// Status is the lifecycle state of an order.
type Status int

const (
	Unknown Status = iota
	Created
	Confirmed
	Processing
	ReadyForDelivery
	Cancelled
)

var statusNames = map[Status]string{
	Created:          "Created",
	Confirmed:        "Confirmed",
	Processing:       "Processing",
	ReadyForDelivery: "ReadyForDelivery",
	Cancelled:        "Cancelled",
}

// ParseStatus maps the wire name of a status back to its value.
func ParseStatus(s string) (Status, error) {
	for status, name := range statusNames {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not an order status", s))
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return "Unknown"
}

func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// IsTerminal reports whether no transition leaves s.
func (s Status) IsTerminal() bool {
	return s == Cancelled
}

// Confirm transitions Created -> Confirmed.
func (s Status) Confirm() (Status, error) {
	return s.transition("confirm", Created, Confirmed)
}

// Process transitions Confirmed -> Processing.
func (s Status) Process() (Status, error) {
	return s.transition("process", Confirmed, Processing)
}

// MarkReady transitions Processing -> ReadyForDelivery.
func (s Status) MarkReady() (Status, error) {
	return s.transition("mark ready", Processing, ReadyForDelivery)
}

// Cancel transitions Created -> Cancelled. Cancellation is only offered before
// confirmation.
func (s Status) Cancel() (Status, error) {
	return s.transition("cancel", Created, Cancelled)
}

func (s Status) transition(operation string, from, to Status) (Status, error) {
	if s != from {
		return Unknown, errs.NewInvalidStateError("order", operation, s.String())
	}
	return to, nil
}
