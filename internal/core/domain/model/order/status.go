package order

import (
	"errors"
	"fmt"
	"slices"

	"dashboard/internal/pkg/errs"
)

var (
	// ErrTransitionNotAllowed is returned when an admin requests a status the
	// current status does not offer.
	ErrTransitionNotAllowed = errors.New("status transition is not allowed")

	// ErrAssignmentNotAllowed is returned when a driver cannot be assigned in the
	// order's current state.
	ErrAssignmentNotAllowed = errors.New("driver assignment is not allowed")
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Pending ──┬──> Accepted ──> Assigning ──> Delivering ──> Completed
//	          └──> Declined
//
// Declined and Completed are terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending is a freshly placed order awaiting the admin's decision.
	Pending

	// Accepted orders wait for a driver.
	Accepted

	// Declined orders were refused by the admin. Terminal.
	Declined

	// Assigning orders have a driver being dispatched.
	Assigning

	// Delivering orders are on their way. Set by the driver app.
	Delivering

	// Completed orders were delivered. Terminal.
	Completed
)

// getStatusStrings maps statuses to their backend wire values.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Pending:    "pending",
		Accepted:   "accepted",
		Declined:   "declined",
		Assigning:  "assigning",
		Delivering: "delivering",
		Completed:  "completed",
	}
}

// getAdminChoices lists the statuses an admin may request from each status.
// Statuses missing from the map offer no choice.
func getAdminChoices() map[Status][]Status {
	//nolint:exhaustive // only pending offers admin decisions
	return map[Status][]Status{
		Pending: {Accepted, Declined},
	}
}

// ParseStatus converts a wire value into a Status.
func ParseStatus(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if status != Unknown && str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a known status", s))
}

// Validate checks that the status is one of the known lifecycle values.
func (s Status) Validate() error {
	if s <= Unknown || s > Completed {
		return errs.NewValueIsOutOfRangeError("status", int(s), int(Pending), int(Completed))
	}
	return nil
}

// String returns the wire value, "unknown" for invalid statuses.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further transitions happen.
func (s Status) IsTerminal() bool {
	return s == Declined || s == Completed
}

// AdminChoices returns the statuses an admin may request from s. The result
// is a fresh slice; an empty result means the UI offers no status control.
func (s Status) AdminChoices() []Status {
	return slices.Clone(getAdminChoices()[s])
}

// ValidateChange checks that an admin may move an order from s to next.
//
// Example:
//
//	if err := order.Pending.ValidateChange(order.Accepted); err != nil {
//	    // never reached: pending offers accepted
//	}
//	err := order.Accepted.ValidateChange(order.Declined)
//	// errors.Is(err, order.ErrTransitionNotAllowed) == true
func (s Status) ValidateChange(next Status) error {
	if err := next.Validate(); err != nil {
		return err
	}
	if !slices.Contains(getAdminChoices()[s], next) {
		return fmt.Errorf("%w: %s to %s", ErrTransitionNotAllowed, s, next)
	}
	return nil
}

// ValidateAssign checks that a driver may be assigned from s.
// Only accepted and assigning orders take a driver.
func (s Status) ValidateAssign() error {
	if s != Accepted && s != Assigning {
		return fmt.Errorf("%w: order is %s", ErrAssignmentNotAllowed, s)
	}
	return nil
}

// Assign returns the status that follows a driver assignment:
// accepted advances to assigning, assigning stays as it is.
func (s Status) Assign() (Status, error) {
	if err := s.ValidateAssign(); err != nil {
		return Unknown, err
	}
	return Assigning, nil
}

// ValidateCanHaveDriver enforces that only accepted, assigning, delivering and
// completed orders carry a driver. Pending and declined orders never do.
func (s Status) ValidateCanHaveDriver(hasDriver bool) error {
	if !hasDriver {
		return nil
	}
	if s == Pending || s == Declined || s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause(
			"driver",
			fmt.Errorf("%s is not a valid status to have a driver", s),
		)
	}
	return nil
}
