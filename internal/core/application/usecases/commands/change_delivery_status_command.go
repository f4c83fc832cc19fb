package commands

import (
	"errors"
	"fmt"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"
)

var ErrChangeDeliveryStatusCommandIsNotConstructed = errors.New(
	"ChangeDeliveryStatusCommand must be created via NewChangeDeliveryStatusCommand constructor",
)

// DeliveryAction names one edge of the delivery state machine.
type DeliveryAction string

const (
	PickUpDelivery  DeliveryAction = "pickup"
	TransitDelivery DeliveryAction = "transit"
	DeliverDelivery DeliveryAction = "deliver"
	FailDelivery    DeliveryAction = "fail"
)

func ParseDeliveryAction(s string) (DeliveryAction, error) {
	action := DeliveryAction(strings.ToLower(strings.TrimSpace(s)))
	switch action {
	case PickUpDelivery, TransitDelivery, DeliverDelivery, FailDelivery:
		return action, nil
	}
	return "", errs.NewValueIsInvalidErrorWithCause("action", fmt.Errorf("unknown delivery action %q", s))
}

type ChangeDeliveryStatusCommand struct {
	deliveryID kernel.UUID
	action     DeliveryAction

	guard guard.ConstructorGuard
}

func NewChangeDeliveryStatusCommand(deliveryID kernel.UUID, action DeliveryAction) (ChangeDeliveryStatusCommand, error) {
	_, actionErr := ParseDeliveryAction(string(action))
	if err := errors.Join(deliveryID.Validate(), actionErr); err != nil {
		return ChangeDeliveryStatusCommand{}, err
	}
	return ChangeDeliveryStatusCommand{deliveryID: deliveryID, action: action, guard: guard.NewConstructorGuard()}, nil
}

func (c ChangeDeliveryStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeDeliveryStatusCommandIsNotConstructed)
}

func (c ChangeDeliveryStatusCommand) DeliveryID() kernel.UUID { return c.deliveryID }
func (c ChangeDeliveryStatusCommand) Action() DeliveryAction  { return c.action }
