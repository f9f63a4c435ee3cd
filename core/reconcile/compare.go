package reconcile

import (
	"math"
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// numericNoise matches every character that cannot be part of a number.
var numericNoise = regexp.MustCompile(`[^0-9.\-]`)

// numericPrefix matches the longest leading decimal literal.
var numericPrefix = regexp.MustCompile(`^-?(\d+(\.\d*)?|\.\d+)`)

// dateLayouts are tried in order when a Date field is compared.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-1-2",
	"2006/1/2",
	"2006.1.2",
	"1/2/2006",
	"1/2/2006 15:04:05",
	"1/2/2006 15:04",
	"1-2-2006",
	"1/2/06",
	"Jan 2, 2006",
	"January 2, 2006",
	"Jan 2 2006",
	"2 Jan 2006",
	"2 January 2006",
	"2-Jan-2006",
	"2-Jan-06",
	time.RFC1123,
	time.RFC1123Z,
	time.RFC850,
	time.ANSIC,
}

// parseNumber strips currency symbols, separators and whitespace and parses the
// leading decimal literal that remains.
func parseNumber(raw string) (decimal.Decimal, bool) {
	cleaned := numericNoise.ReplaceAllString(raw, "")
	lit := numericPrefix.FindString(cleaned)
	if lit == "" {
		return decimal.Zero, false
	}
	lit = strings.TrimSuffix(lit, ".")
	if strings.HasPrefix(lit, "-.") {
		lit = "-0" + lit[1:]
	} else if strings.HasPrefix(lit, ".") {
		lit = "0" + lit
	}
	d, err := decimal.NewFromString(lit)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// parseDate parses a calendar date in any of the supported layouts.
// Values without a zone are read as UTC.
func parseDate(raw string) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// dayDistance returns |a-b| in fractional days.
func dayDistance(a, b time.Time) float64 {
	d := a.Sub(b)
	if d < 0 {
		d = -d
	}
	return d.Hours() / 24
}

// percentDifference returns |a-b| relative to the mean magnitude, in percent.
// The second return value is false when both magnitudes are zero.
func percentDifference(a, b decimal.Decimal) (decimal.Decimal, bool) {
	avg := a.Abs().Add(b.Abs()).Div(decimal.NewFromInt(2))
	if avg.IsZero() {
		return decimal.Zero, false
	}
	return a.Sub(b).Abs().Div(avg).Mul(decimal.NewFromInt(100)), true
}

// Equal reports whether two raw values match for the given field type.
// A nil tolerance means exact, case-insensitive, trimmed comparison. Values that
// fail to parse as the expected type fall back to trimmed exact comparison.
func Equal(valueA, valueB, fieldType string, tolerance *ToleranceSetting) bool {
	if valueA == "" && valueB == "" {
		return true
	}
	if valueA == "" || valueB == "" {
		return false
	}

	if tolerance == nil {
		return strings.EqualFold(strings.TrimSpace(valueA), strings.TrimSpace(valueB))
	}
	// Validate rejects these; callers of Reconcile may not have run it.
	if math.IsNaN(tolerance.Value) || math.IsInf(tolerance.Value, 0) {
		return strings.TrimSpace(valueA) == strings.TrimSpace(valueB)
	}

	if fieldType == FieldDate {
		dateA, okA := parseDate(valueA)
		dateB, okB := parseDate(valueB)
		if !okA || !okB {
			return strings.TrimSpace(valueA) == strings.TrimSpace(valueB)
		}
		return dayDistance(dateA, dateB) <= tolerance.Value
	}

	numA, okA := parseNumber(valueA)
	numB, okB := parseNumber(valueB)
	if !okA || !okB {
		return strings.TrimSpace(valueA) == strings.TrimSpace(valueB)
	}

	limit := decimal.NewFromFloat(tolerance.Value)
	if tolerance.Kind == TolerancePercentage {
		pct, ok := percentDifference(numA, numB)
		if !ok {
			return numA.Sub(numB).IsZero()
		}
		return pct.LessThanOrEqual(limit)
	}
	return numA.Sub(numB).Abs().LessThanOrEqual(limit)
}
