// Package kernel holds the value objects shared by every aggregate of the
// fulfillment domain:
//   - UUID: opaque entity identity
//   - Address: postal address of a customer
//   - Weight: non-negative mass in kilograms
//
// Value objects are immutable and must be created through their constructors;
// a zero value fails Validate.
package kernel
