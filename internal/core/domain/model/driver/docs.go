// Package driver models the drivers an admin can assign to orders.
//
// Drivers are reference data: the console reads them from the backend's
// user-by-role listing and never mutates them. A placeholder driver carries only
// an identifier and stands in for a driver the console has not loaded yet.
package driver
