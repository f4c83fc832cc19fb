// Package services provides domain services that coordinate the order, courier
// and delivery aggregates.
//
// The package includes:
//   - DeliveryDispatcher: binds a ready order to an available courier and drives
//     courier availability through the terminal delivery transitions
//   - ETAEstimator: a pure distance to arrival time function
//
// Services never persist anything. Callers load the aggregates inside one unit
// of work, call the service, then save every aggregate it touched.
package services
