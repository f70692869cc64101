package kernel

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"dashboard/internal/pkg/errs"
)

// ErrIDIsNotConstructed is returned when validating the zero ID.
var ErrIDIsNotConstructed = errs.NewValueIsRequiredError("ID must be created via NewID or ParseID")

// ID is a backend-assigned identifier. Valid IDs are strictly positive.
//
// Example:
//
//	id, err := kernel.ParseID("7")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(id) // 7
type ID int64

// NewID validates v and returns it as an ID.
func NewID(v int64) (ID, error) {
	if v <= 0 {
		return 0, errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not greater than 0", v))
	}
	return ID(v), nil
}

// ParseID parses the decimal string form used in URLs and form values.
// Surrounding whitespace is ignored.
func ParseID(s string) (ID, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	return NewID(v)
}

// Validate reports whether the ID is usable.
func (id ID) Validate() error {
	if id <= 0 {
		return ErrIDIsNotConstructed
	}
	return nil
}

// Int64 returns the raw value.
func (id ID) Int64() int64 {
	return int64(id)
}

// String returns the decimal representation.
func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// MarshalJSON encodes the ID as a JSON number.
func (id ID) MarshalJSON() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalJSON accepts a JSON number or a quoted decimal string, since
// form-driven clients send "3" where the backend sends 3. null leaves the ID unchanged.
func (id *ID) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}

	var s string
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
	} else {
		s = string(data)
	}

	parsed, err := ParseID(s)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
