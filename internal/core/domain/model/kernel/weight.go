package kernel

import (
	"math"

	"fulfillment/internal/pkg/errs"
)

// Weight is a value object that represents a mass in kilograms.
// It is used for item weights, order totals and vehicle capacities, so all
// capacity checks compare values of one type and one unit.
//
// The zero value is a valid weight of 0 kg. Values obtained through NewWeight
// are never negative, NaN or infinite.
//
// Example usage:
//
//	w, err := kernel.NewWeight(2.5)
//	if err != nil {
//	    // handle error
//	}
//	w.Exceeds(courier.BikeMaxWeight) // false, a bike carries up to 10 kg
type Weight float64

// NewWeight creates a Weight from kilograms.
// Returns a ValueIsInvalidError for NaN or infinite input and a
// ValueIsOutOfRangeError for negative input.
//
// Example:
//
//	w, _ := kernel.NewWeight(1.5)
//	fmt.Println(w.Kilograms()) // 1.5
func NewWeight(kg float64) (Weight, error) {
	if math.IsNaN(kg) || math.IsInf(kg, 0) {
		return 0, errs.NewValueIsInvalidError("weight")
	}
	if kg < 0 {
		return 0, errs.NewValueIsOutOfRangeError("weight", kg, 0, "unbounded")
	}
	return Weight(kg), nil
}

// Kilograms returns the weight as a plain float64 for persistence and
// transport. Domain code compares Weight values directly.
func (w Weight) Kilograms() float64 {
	return float64(w)
}

// Exceeds reports whether w is strictly heavier than limit.
// A load exactly at the limit does not exceed it.
//
// Example:
//
//	kernel.Weight(10).Exceeds(kernel.Weight(10)) // false
//	kernel.Weight(10.001).Exceeds(10)           // true
func (w Weight) Exceeds(limit Weight) bool {
	return w > limit
}
