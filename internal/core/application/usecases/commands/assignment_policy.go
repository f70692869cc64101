package commands

import (
	"fmt"
	"strings"

	"dashboard/internal/pkg/errs"
)

// AssignmentFailurePolicy decides what a failed driver assignment does to the
// optimistic state.
type AssignmentFailurePolicy string

const (
	// KeepOnFailure leaves the optimistic driver and status in place and only
	// posts an error notice.
	KeepOnFailure AssignmentFailurePolicy = "keep"

	// RollbackOnFailure restores the driver and status captured at call time. On
	// success the driver reported by the backend replaces the optimistic one.
	RollbackOnFailure AssignmentFailurePolicy = "rollback"
)

// ParseAssignmentFailurePolicy parses a policy name; the empty string means KeepOnFailure.
func ParseAssignmentFailurePolicy(s string) (AssignmentFailurePolicy, error) {
	switch p := AssignmentFailurePolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return KeepOnFailure, nil
	case KeepOnFailure, RollbackOnFailure:
		return p, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause(
			"assignment_failure_policy",
			fmt.Errorf("%q is neither %q nor %q", s, KeepOnFailure, RollbackOnFailure),
		)
	}
}
