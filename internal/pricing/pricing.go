// Package pricing derives booking totals from a trip's price record. It
// is purely computational: no rounding rules beyond whole Vietnamese
// đồng, no tax or discount logic.
package pricing

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Amount is a price value that may arrive over the wire as a JSON
// number or as a numeric string ("150000"). Both forms decode to the
// same value; non-finite and non-numeric input decodes as absent.
type Amount struct {
	value float64
	valid bool
}

// NewAmount creates a present Amount.
func NewAmount(v float64) Amount {
	return Amount{value: v, valid: isFinite(v)}
}

// Float64 returns the value and whether it is present.
func (a Amount) Float64() (float64, bool) {
	return a.value, a.valid
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" || s == `""` {
		*a = Amount{}
		return nil
	}
	s = strings.Trim(s, `"`)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || !isFinite(v) {
		*a = Amount{}
		return nil
	}
	*a = Amount{value: v, valid: true}
	return nil
}

func (a Amount) MarshalJSON() ([]byte, error) {
	if !a.valid {
		return []byte("null"), nil
	}
	return json.Marshal(a.value)
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// UnitPrice resolves the per-seat price with the unified fallback order:
// the price record's priceTrip when present, then the trip-level base
// price, then zero. Every layout goes through this single accessor.
func UnitPrice(priceTrip Amount, basePrice float64) float64 {
	if v, ok := priceTrip.Float64(); ok {
		return v
	}
	if isFinite(basePrice) && basePrice != 0 {
		return basePrice
	}
	return 0
}

// Total is the running booking total: unit price times seat count.
func Total(unit float64, count int) float64 {
	if count < 0 {
		return 0
	}
	return unit * float64(count)
}

// FormatVND renders an amount as Vietnamese currency: thousands groups
// separated by dots and a "đ" suffix (150000 -> "150.000đ").
func FormatVND(amount float64) string {
	n := int64(math.Round(amount))
	neg := n < 0
	if neg {
		n = -n
	}
	digits := strconv.FormatInt(n, 10)
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 && !(neg && b.Len() == 1) {
			b.WriteByte('.')
		}
		b.WriteString(digits[i : i+3])
	}
	b.WriteString("đ")
	return b.String()
}
