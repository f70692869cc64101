// Package backend is the console's client for the food delivery platform's REST API.
//
// Client implements the core's gateway ports. Every request except login carries
// the session's bearer token. Successful responses are validated against the
// embedded OpenAPI document before they are decoded, so a backend that changes
// its payloads fails loudly with a SchemaError instead of producing half-filled orders.
package backend
