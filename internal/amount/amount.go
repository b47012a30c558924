package amount

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// MinorUnitsPerMajor is the scale the upstream API expects amounts in
// (kobo per naira, cents per dollar).
const MinorUnitsPerMajor = 100

var (
	maxMinor = decimal.NewFromInt(math.MaxInt64)
	minID    = decimal.NewFromInt(math.MinInt64)
)

// ToMinorUnits returns price * quantity * MinorUnitsPerMajor in base 10.
// The product must fit an int64 minor-unit value.
func ToMinorUnits(price, quantity int64) (string, error) {
	if price < 0 {
		return "", fmt.Errorf("price must not be negative: %d", price)
	}
	if quantity <= 0 {
		return "", fmt.Errorf("quantity must be positive: %d", quantity)
	}
	total := decimal.NewFromInt(price).
		Mul(decimal.NewFromInt(quantity)).
		Mul(decimal.NewFromInt(MinorUnitsPerMajor))
	if total.GreaterThan(maxMinor) {
		return "", fmt.Errorf("amount %s overflows minor units", total.String())
	}
	return total.String(), nil
}

// ParseQuantity accepts a positive base-10 integer, surrounding spaces allowed.
func ParseQuantity(in string) (int64, error) {
	s := strings.TrimSpace(in)
	if s == "" {
		return 0, fmt.Errorf("quantity is required")
	}
	q, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("quantity must be an integer: %q", in)
	}
	if q <= 0 {
		return 0, fmt.Errorf("quantity must be positive: %d", q)
	}
	return q, nil
}

// ParseProductID compares ids loosely: " 2", "+2", "2.0" and "2e0" all
// name product 2. Numbers with a fractional part name no product.
func ParseProductID(in string) (int64, error) {
	s := strings.TrimSpace(in)
	if s == "" {
		return 0, fmt.Errorf("id is required")
	}
	if id, err := strconv.ParseInt(s, 10, 64); err == nil {
		return id, nil
	}

	d, err := decimal.NewFromString(strings.TrimPrefix(s, "+"))
	if err != nil {
		return 0, fmt.Errorf("id must be numeric: %q", in)
	}
	if !d.IsInteger() {
		return 0, fmt.Errorf("id must be a whole number: %q", in)
	}
	if d.GreaterThan(maxMinor) || d.LessThan(minID) {
		return 0, fmt.Errorf("id out of range: %q", in)
	}
	return d.IntPart(), nil
}
