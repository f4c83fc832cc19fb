// Package ports defines the contracts between the domain core and the
// infrastructure: aggregate repositories, the unit of work that binds them to
// one transaction, and the publisher of status change events.
package ports
