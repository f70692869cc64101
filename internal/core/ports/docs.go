// Package ports defines the contracts between the console's core and its adapters.
// Gateways front the platform's REST backend; JournalRepository fronts the audit store.
// The interfaces establish dependency inversion and make the core testable with mocks.
package ports
