// Package money holds currency amounts as integer cents.
//
// Amounts cross the API as JSON numbers with two decimals and are stored as
// bigint cents, so comparisons such as "paid in full" are exact.
package money

import (
	"bytes"
	"fmt"

	"github.com/shopspring/decimal"
)

// Cents is an amount in hundredths of the currency unit.
type Cents int64

var hundred = decimal.NewFromInt(100)

// FromDecimal rounds d half away from zero to the nearest cent.
func FromDecimal(d decimal.Decimal) Cents {
	return Cents(d.Mul(hundred).Round(0).IntPart())
}

// FromFloat converts a float amount, rounding to the nearest cent.
func FromFloat(f float64) Cents {
	return FromDecimal(decimal.NewFromFloat(f))
}

// Parse reads a decimal string such as "1250.5".
func Parse(s string) (Cents, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return FromDecimal(d), nil
}

// Decimal returns the amount in currency units.
func (c Cents) Decimal() decimal.Decimal {
	return decimal.New(int64(c), -2)
}

// Float64 returns the amount in currency units.
func (c Cents) Float64() float64 {
	return c.Decimal().InexactFloat64()
}

func (c Cents) String() string {
	return c.Decimal().StringFixed(2)
}

// SubFloor returns c - o, floored at zero.
func (c Cents) SubFloor(o Cents) Cents {
	if c <= o {
		return 0
	}
	return c - o
}

// MarshalJSON writes the amount as a JSON number with two decimals.
func (c Cents) MarshalJSON() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalJSON accepts a JSON number or a numeric string.
func (c *Cents) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*c = 0
		return nil
	}
	data = bytes.Trim(data, `"`)
	v, err := Parse(string(data))
	if err != nil {
		return err
	}
	*c = v
	return nil
}
