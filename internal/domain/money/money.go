package money

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// Scale is the fixed number of decimal places persisted and displayed.
const Scale int32 = 2

var (
	ErrNegativeAmount = errors.New("money cannot be negative")
	ErrInvalidAmount  = errors.New("invalid money amount")
)

var hundred = decimal.NewFromInt(100)

// Money is an exact decimal amount in the subscription's currency, excluding tax.
// Intermediate arithmetic keeps full precision; Round is applied by callers once, at the end.
type Money struct {
	amount decimal.Decimal
}

func Zero() Money {
	return Money{amount: decimal.Zero}
}

func New(amount decimal.Decimal) Money {
	return Money{amount: amount}
}

func NewNonNegative(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, ErrNegativeAmount
	}
	return Money{amount: amount}, nil
}

func Parse(s string) (Money, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Money{}, errors.Join(ErrInvalidAmount, err)
	}
	return Money{amount: d}, nil
}

func MustParse(s string) Money {
	m, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return m
}

// FromMinorUnits converts an integer amount in cents (Stripe's representation).
func FromMinorUnits(cents int64) Money {
	return Money{amount: decimal.New(cents, -Scale)}
}

func (m Money) MinorUnits() int64 {
	return m.amount.Round(Scale).Shift(Scale).IntPart()
}

func (m Money) Decimal() decimal.Decimal { return m.amount }
func (m Money) IsNegative() bool         { return m.amount.IsNegative() }
func (m Money) IsZero() bool             { return m.amount.IsZero() }

func (m Money) Add(other Money) Money { return Money{amount: m.amount.Add(other.amount)} }
func (m Money) Sub(other Money) Money { return Money{amount: m.amount.Sub(other.amount)} }

func (m Money) Mul(factor decimal.Decimal) Money {
	return Money{amount: m.amount.Mul(factor)}
}

func (m Money) Round() Money {
	return Money{amount: m.amount.Round(Scale)}
}

func (m Money) Min(other Money) Money {
	if m.amount.GreaterThan(other.amount) {
		return other
	}
	return m
}

func (m Money) Max(other Money) Money {
	if m.amount.LessThan(other.amount) {
		return other
	}
	return m
}

func (m Money) Equal(other Money) bool       { return m.amount.Equal(other.amount) }
func (m Money) GreaterThan(other Money) bool { return m.amount.GreaterThan(other.amount) }
func (m Money) LessThan(other Money) bool    { return m.amount.LessThan(other.amount) }

// WithinTolerance reports |m - other| <= tolerance.
func (m Money) WithinTolerance(other, tolerance Money) bool {
	return m.amount.Sub(other.amount).Abs().LessThanOrEqual(tolerance.amount)
}

// PercentOf returns m / base * 100, or zero when base is zero.
func (m Money) PercentOf(base Money) decimal.Decimal {
	if base.amount.IsZero() {
		return decimal.Zero
	}
	return m.amount.Div(base.amount).Mul(hundred)
}

func (m Money) String() string {
	return m.amount.StringFixed(Scale)
}

func (m Money) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Money) UnmarshalText(b []byte) error {
	parsed, err := Parse(string(b))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
