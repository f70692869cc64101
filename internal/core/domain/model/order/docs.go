// Package order provides the Order aggregate as the console sees it and the
// status state machine that governs which changes an admin may request.
//
// The package includes:
//   - Order: a snapshot of a backend order (customer, driver, line items, totals)
//   - Status: the lifecycle enum and its transition rules
//   - Patch: the shallow field update used to mutate orders held in memory
//
// Lifecycle:
//
//	pending ──┬──> accepted ──> assigning ──> delivering ──> completed
//	          │       (driver assignment)   (driver app)   (driver app)
//	          └──> declined
//
// Only pending orders offer admin choices (accepted, declined). The move from
// accepted to assigning is a side effect of assigning a driver; later moves are
// made by the driver app and are display-only here.
package order
