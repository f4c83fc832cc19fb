// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries bypass the aggregates and return flat read models built with
// squirrel and executed through gorm.
package queries
