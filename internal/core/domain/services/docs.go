// Package services contains domain services that coordinate several domain objects.
//
// DriverDispatcher derives the optimistic effect of assigning a driver to an order:
// the driver record to show and the status the order moves to.
package services
