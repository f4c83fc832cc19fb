// Package order implements the Order aggregate and its status workflow.
//
// State transitions:
//
//	Created ──confirm──> Confirmed ──process──> Processing ──markReady──> ReadyForDelivery
//	   │
//	   └──cancel──> Cancelled (terminal)
//
// Totals are derived from the item lines on construction and never stored
// independently. An order's own status never advances past ReadyForDelivery:
// delivery completion is tracked on the Delivery aggregate only.
package order
