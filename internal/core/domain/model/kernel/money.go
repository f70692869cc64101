package kernel

import (
	"fmt"

	"dashboard/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Money is a non-negative exact amount in the platform currency.
// The backend serialises amounts either as JSON numbers or as strings ("12.50");
// both decode without loss.
type Money struct {
	amount decimal.Decimal
}

// Zero is the empty amount.
var Zero = Money{amount: decimal.Zero}

// NewMoney validates amount and wraps it.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%s is negative", amount))
	}
	return Money{amount: amount}, nil
}

// MoneyFromString parses a decimal string such as "12.50".
func MoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewMoney(d)
}

// Decimal returns the underlying amount.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Times returns m multiplied by a quantity.
func (m Money) Times(quantity int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(quantity)))}
}

// IsEqual compares amounts numerically, so 12.5 equals 12.50.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String renders the amount with two decimal places.
func (m Money) String() string {
	return m.amount.StringFixed(2)
}

// MarshalJSON encodes the amount as a quoted two-decimal string.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.String() + `"`), nil
}

// UnmarshalJSON accepts numbers and numeric strings.
func (m *Money) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	parsed, err := NewMoney(d)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
