package commands

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
	"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
)

// OrderAction names one edge of the order state machine.
type OrderAction string

const (
	ConfirmOrder OrderAction = "confirm"
	ProcessOrder OrderAction = "process"
	ReadyOrder   OrderAction = "ready"
	CancelOrder  OrderAction = "cancel"
)

func ParseOrderAction(s string) (OrderAction, error) {
	action := OrderAction(strings.ToLower(strings.TrimSpace(s)))
	switch action {
	case ConfirmOrder, ProcessOrder, ReadyOrder, CancelOrder:
		return action, nil
	}
	return "", errs.NewValueIsInvalidErrorWithCause("action", fmt.Errorf("unknown order action %q", s))
}

func (a OrderAction) apply(o *order.Order, now time.Time) error {
	switch a {
	case ConfirmOrder:
		return o.Confirm(now)
	case ProcessOrder:
		return o.Process(now)
	case ReadyOrder:
		return o.MarkReady(now)
	case CancelOrder:
		return o.Cancel(now)
	}
	return errs.NewValueIsInvalidError("action")
}

// ChangeOrderStatusCommand moves an order along one edge of its state machine.
type ChangeOrderStatusCommand struct {
	orderID kernel.UUID
	action  OrderAction

	guard guard.ConstructorGuard
}

func NewChangeOrderStatusCommand(orderID kernel.UUID, action OrderAction) (ChangeOrderStatusCommand, error) {
	_, actionErr := ParseOrderAction(string(action))
	if err := errors.Join(orderID.Validate(), actionErr); err != nil {
		return ChangeOrderStatusCommand{}, err
	}
	return ChangeOrderStatusCommand{orderID: orderID, action: action, guard: guard.NewConstructorGuard()}, nil
}

func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

func (c ChangeOrderStatusCommand) OrderID() kernel.UUID { return c.orderID }
func (c ChangeOrderStatusCommand) Action() OrderAction  { return c.action }
