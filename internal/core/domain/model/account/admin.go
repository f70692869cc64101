// Package account models the platform user operating the console.
package account

import (
	"errors"
	"fmt"
	"strings"

	"dashboard/internal/core/domain/model/kernel"
	"dashboard/internal/pkg/errs"
)

// AdminRoleID is the backend role identifier of administrators.
const AdminRoleID = 1

// ErrNotAdmin is returned when a non-admin user tries to open a session.
var ErrNotAdmin = errors.New("only admin can log in")

// User is a platform user as returned by the backend login and profile endpoints.
type User struct {
	ID     kernel.ID
	Name   string
	Email  string
	RoleID int
}

// IsAdmin reports whether the user holds the admin role.
func (u User) IsAdmin() bool {
	return u.RoleID == AdminRoleID
}

// ValidateAdmin checks identity and role.
func (u User) ValidateAdmin() error {
	if err := u.ID.Validate(); err != nil {
		return err
	}
	if !u.IsAdmin() {
		return fmt.Errorf("%w: role %d", ErrNotAdmin, u.RoleID)
	}
	return nil
}

// Credentials are the login form values.
type Credentials struct {
	Email    string
	Password string
}

// NewCredentials trims the email and requires both fields.
func NewCredentials(email, password string) (Credentials, error) {
	email = strings.TrimSpace(email)

	var err error
	if email == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("email"))
	} else if !strings.Contains(email, "@") {
		err = errors.Join(err, errs.NewValueIsInvalidErrorWithCause("email", fmt.Errorf("%q has no @", email)))
	}
	if password == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("password"))
	}
	if err != nil {
		return Credentials{}, err
	}

	return Credentials{Email: email, Password: password}, nil
}
