// Package state holds the per-session, in-memory state of the console.
//
// Session owns the bearer token. OrderStore and DriverDirectory cache the lists
// loaded from the backend. DetailFetcher keeps the single "currently viewed" order.
// FlightRegistry tracks the one outstanding backend request per order, and
// NoticeBoard collects the messages produced when requests settle.
//
// Every type is safe for concurrent use and hands out copies, never references
// to its internal state.
package state
