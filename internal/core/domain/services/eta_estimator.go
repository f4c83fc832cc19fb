package services

import (
	"math"
	"time"

	"fulfillment/internal/pkg/errs"
)

// DefaultAverageSpeedKmh is used when no courier speed is configured.
const DefaultAverageSpeedKmh = 30.0

// ETAEstimator derives an estimated delivery time from a distance using a
// fixed average speed. Results are rounded to the second.
type ETAEstimator struct {
	averageSpeedKmh float64
}

func NewETAEstimator(averageSpeedKmh float64) (ETAEstimator, error) {
	if math.IsNaN(averageSpeedKmh) || math.IsInf(averageSpeedKmh, 0) || averageSpeedKmh <= 0 {
		return ETAEstimator{}, errs.NewValueIsOutOfRangeError("averageSpeedKmh", averageSpeedKmh, "greater than 0", "unbounded")
	}
	return ETAEstimator{averageSpeedKmh: averageSpeedKmh}, nil
}

func (e ETAEstimator) AverageSpeedKmh() float64 {
	if e.averageSpeedKmh == 0 {
		return DefaultAverageSpeedKmh
	}
	return e.averageSpeedKmh
}

// maxTravelSeconds is the largest whole number of seconds a time.Duration holds.
const maxTravelSeconds = float64(math.MaxInt64 / int64(time.Second))

// TravelTime returns how long a courier needs to cover distanceKm. Travel
// times too long for a time.Duration saturate at the largest representable
// whole second instead of wrapping around.
func (e ETAEstimator) TravelTime(distanceKm float64) time.Duration {
	seconds := math.Round(distanceKm / e.AverageSpeedKmh() * 3600)
	if seconds >= maxTravelSeconds {
		return time.Duration(maxTravelSeconds) * time.Second
	}
	return time.Duration(seconds) * time.Second
}

// Estimate returns the arrival time for a delivery leaving at from.
func (e ETAEstimator) Estimate(from time.Time, distanceKm float64) time.Time {
	return from.Add(e.TravelTime(distanceKm))
}
