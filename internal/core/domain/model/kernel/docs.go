// Package kernel provides core domain primitives shared by the console's domain model.
//
// The package includes:
//   - ID: the positive integer identifier the backend assigns to orders, drivers and users
//   - UUID: a value object for identifiers the console mints itself (flight tokens, journal entries)
//   - Money: an exact decimal amount for order totals and line-item prices
//
// These primitives are immutable and safe for concurrent use.
package kernel
