// Package customer contains the Customer aggregate: the identity and postal
// address an Order is placed for.
//
// A customer is mutable only through Update, which revalidates every field.
// Deletion is decided by the application layer, which must refuse it while any
// Order still references the customer.
package customer
