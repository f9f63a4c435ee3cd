package reconcile

import (
	"fmt"
	"strconv"
)

// Explain describes why two values of a field were judged different.
// It is only meaningful after Equal has returned false for the same arguments.
func Explain(fieldType, valueA, valueB string, tolerance *ToleranceSetting) string {
	if tolerance != nil {
		if fieldType == FieldDate {
			dateA, okA := parseDate(valueA)
			dateB, okB := parseDate(valueB)
			if okA && okB {
				days := strconv.FormatFloat(dayDistance(dateA, dateB), 'f', 1, 64)
				return fmt.Sprintf("%s differs by %s days (%s vs %s)", fieldType, days, valueA, valueB)
			}
		} else {
			numA, okA := parseNumber(valueA)
			numB, okB := parseNumber(valueB)
			if okA && okB {
				if tolerance.Kind == TolerancePercentage {
					pct, _ := percentDifference(numA, numB)
					return fmt.Sprintf("%s differs by %s%% (%s vs %s)", fieldType, pct.StringFixed(2), valueA, valueB)
				}
				diff := numA.Sub(numB).Abs()
				return fmt.Sprintf("%s differs by %s (%s vs %s)", fieldType, diff.StringFixed(2), valueA, valueB)
			}
		}
	}
	return fmt.Sprintf("%s differs (%s vs %s)", fieldType, valueA, valueB)
}
