package order

import (
	"errors"
	"math"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
	"fulfillment/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// PriceScale is the number of decimal places money amounts may carry.
const PriceScale = 2

// MaxAmount is the exclusive upper bound for unit prices and order totals.
// Amounts are stored as numeric(14,2), which leaves twelve integer digits.
var MaxAmount = decimal.New(1, 12)

var ErrItemIsNotConstructed = errs.NewValueIsRequiredError("item must be created via NewItem")

// Item is one order line. Items are immutable values.
type Item struct {
	productName string
	quantity    int
	unitPrice   decimal.Decimal
	weight      kernel.Weight
	guard       guard.ConstructorGuard
}

// NewItem validates a line and returns every violation at once:
//   - productName must not be blank after trimming
//   - quantity >= 1
//   - 0 <= unitPrice < MaxAmount with at most PriceScale decimal places
//   - weight >= 0 kg per unit
//
// Prices are never rounded: a price that cannot be stored exactly is rejected,
// so the stored lines always add up to the stored total.
//
// Example:
//
//	item, err := order.NewItem("Widget", 2, decimal.RequireFromString("10.50"), 1.5)
//	// item.LineTotal() == 21.00, item.LineWeight() == 3 kg
func NewItem(productName string, quantity int, unitPrice decimal.Decimal, weightKg float64) (Item, error) {
	item := Item{
		productName: strings.TrimSpace(productName),
		quantity:    quantity,
		unitPrice:   unitPrice,
	}

	var nameErr, quantityErr, priceErr error
	if item.productName == "" {
		nameErr = errs.NewValueIsRequiredError("productName")
	}
	if quantity < 1 {
		quantityErr = errs.NewValueIsOutOfRangeError("quantity", quantity, 1, "unbounded")
	}
	switch {
	case unitPrice.IsNegative() || unitPrice.GreaterThanOrEqual(MaxAmount):
		priceErr = errs.NewValueIsOutOfRangeError("unitPrice", unitPrice.String(), 0, MaxAmount.String())
	case !unitPrice.Equal(unitPrice.Truncate(PriceScale)):
		priceErr = errs.NewValueIsInvalidError("unitPrice")
	}
	weight, weightErr := kernel.NewWeight(weightKg)

	if err := errors.Join(nameErr, quantityErr, priceErr, weightErr); err != nil {
		return Item{}, err
	}

	item.weight = weight
	item.guard = guard.NewConstructorGuard()
	return item, nil
}

// Validate reports ErrItemIsNotConstructed for a zero Item that bypassed NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// ProductName is the trimmed, non-blank product name.
func (i Item) ProductName() string { return i.productName }

// Quantity is the number of units, at least one.
func (i Item) Quantity() int { return i.quantity }

// UnitPrice is the price of one unit with at most PriceScale decimal places.
func (i Item) UnitPrice() decimal.Decimal { return i.unitPrice }

// Weight is the weight of one unit.
func (i Item) Weight() kernel.Weight { return i.weight }

// LineTotal is quantity × unitPrice.
func (i Item) LineTotal() decimal.Decimal {
	return i.unitPrice.Mul(decimal.NewFromInt(int64(i.quantity)))
}

// LineWeight is quantity × weight.
func (i Item) LineWeight() kernel.Weight {
	return kernel.Weight(float64(i.quantity) * i.weight.Kilograms())
}

// Totals sums price and weight over items. Weight is rounded to the gram so
// that repeated float additions cannot drift across the capacity boundary.
func Totals(items []Item) (decimal.Decimal, kernel.Weight) {
	price := decimal.Zero
	var weight float64
	for _, item := range items {
		price = price.Add(item.LineTotal())
		weight += item.LineWeight().Kilograms()
	}
	return price, kernel.Weight(math.Round(weight*1000) / 1000)
}
