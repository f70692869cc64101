// Package queries contains read operations over the console's state.
// Implements the Query pattern for the read side: every query is a guarded value
// and every handler returns a read model shaped for one screen of the console.
package queries
