package entities

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Money is a BRL amount. Every value that leaves the domain is rounded to cents.
type Money = decimal.Decimal

// DateLayout is the wire format for due dates, payment dates and block dates.
const DateLayout = "2006-01-02"

const centPlaces = 2

var (
	// Zero is the neutral amount.
	Zero = decimal.Zero

	// RoundingTolerance is the largest difference accepted between the schedule sum and the order total.
	RoundingTolerance = decimal.New(1, -centPlaces)
)

// Cents rounds m half-up to cents.
func Cents(m Money) Money {
	return m.Round(centPlaces)
}

// NewMoney parses a decimal string such as "330.00".
func NewMoney(s string) (Money, error) {
	m, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return Zero, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return Cents(m), nil
}

// MustMoney is NewMoney for constants and tests.
func MustMoney(s string) Money {
	m, err := NewMoney(s)
	if err != nil {
		panic(err)
	}
	return m
}

// SumMoney adds all amounts.
func SumMoney(values ...Money) Money {
	total := Zero
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}

// WithinTolerance reports whether a and b differ by at most one cent.
func WithinTolerance(a, b Money) bool {
	return a.Sub(b).Abs().LessThanOrEqual(RoundingTolerance)
}

// DateOnly drops the clock part of t, keeping its calendar day.
func DateOnly(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD date.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ValidationError("date is required")
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, ValidationError("invalid date %q, expected %s", s, DateLayout)
	}
	return t, nil
}

// FormatDate renders t as YYYY-MM-DD, or "" for the zero time.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}
