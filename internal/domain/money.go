package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Money is an exact decimal amount with two fraction digits (currency
// minor units). The zero value is 0.00. Arithmetic never goes through
// binary floating point.
type Money struct {
	d decimal.Decimal
}

// ParseMoney parses a decimal string such as "799.90". Values with more
// than two fraction digits are rejected rather than rounded.
func ParseMoney(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, fmt.Errorf("parse money %q: %w", s, err)
	}
	if d.Exponent() < -2 {
		return Money{}, fmt.Errorf("parse money %q: more than two fraction digits", s)
	}
	return Money{d: d}, nil
}

// MoneyFromCents builds a Money from an integer amount of minor units.
func MoneyFromCents(cents int64) Money {
	return Money{d: decimal.New(cents, -2)}
}

func (m Money) Add(o Money) Money {
	return Money{d: m.d.Add(o.d)}
}

// MultiplyQty scales the amount by a line quantity.
func (m Money) MultiplyQty(qty int) Money {
	return Money{d: m.d.Mul(decimal.NewFromInt(int64(qty)))}
}

func (m Money) Cmp(o Money) int {
	return m.d.Cmp(o.d)
}

func (m Money) Equal(o Money) bool {
	return m.d.Equal(o.d)
}

func (m Money) IsZero() bool {
	return m.d.IsZero()
}

func (m Money) IsNegative() bool {
	return m.d.IsNegative()
}

// String renders with exactly two fraction digits, e.g. "1799.70".
func (m Money) String() string {
	return m.d.StringFixed(2)
}

// MarshalJSON encodes the amount as a fixed two-digit decimal string,
// the durable wire shape for totals and unit prices.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.String() + `"`), nil
}

func (m *Money) UnmarshalJSON(b []byte) error {
	s := string(b)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}
	parsed, err := ParseMoney(s)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
