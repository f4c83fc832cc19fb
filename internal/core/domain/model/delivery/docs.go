// Package delivery implements the Delivery aggregate: the fulfillment record
// linking one ready order to one courier, tracked from assignment to
// completion or failure.
//
// Delivered and Failed are terminal. Releasing the courier on a terminal
// transition is coordinated by services.DeliveryDispatcher, which owns both
// aggregates for the duration of the transition.
package delivery
