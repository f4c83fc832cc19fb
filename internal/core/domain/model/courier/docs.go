// Package courier implements the courier fleet model.
//
// A Courier carries a Vehicle, a closed variant over {Bike, Car}. The variant
// fixes the weight class (BikeMaxWeight, CarMaxWeight) and its required fields:
// a licence plate is present for a car and absent for a bike.
//
// Availability is owned by the delivery assignment flow: Occupy is called when
// a delivery is assigned and Release when that delivery reaches a terminal
// status.
package courier
