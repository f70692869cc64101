// Package commands contains the admin operations that modify console state.
//
// Every command follows the same pattern: a value built through its constructor
// (guarded against zero-value use) and a handler whose Handle method validates
// the command before acting. Status changes and driver assignments apply their
// effect to the order store immediately and settle against the backend in the
// background; their handlers return a Ticket for the final outcome.
package commands
