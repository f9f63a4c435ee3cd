package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExplain(t *testing.T) {
	tests := []struct {
		name      string
		fieldType string
		a, b      string
		tolerance *ToleranceSetting
		want      string
	}{
		{
			name:      "absolute difference",
			fieldType: FieldAmount,
			a:         "100.00",
			b:         "100.02",
			tolerance: &ToleranceSetting{FieldType: FieldAmount, Kind: ToleranceAbsolute, Value: 0.01},
			want:      "Amount differs by 0.02 (100.00 vs 100.02)",
		},
		{
			name:      "percentage difference",
			fieldType: FieldTax,
			a:         "100",
			b:         "120",
			tolerance: &ToleranceSetting{FieldType: FieldTax, Kind: TolerancePercentage, Value: 5},
			want:      "Tax differs by 18.18% (100 vs 120)",
		},
		{
			name:      "day difference",
			fieldType: FieldDate,
			a:         "2024-01-01",
			b:         "2024-01-04",
			tolerance: &ToleranceSetting{FieldType: FieldDate, Kind: ToleranceDays, Value: 1},
			want:      "Date differs by 3.0 days (2024-01-01 vs 2024-01-04)",
		},
		{
			name:      "fractional days",
			fieldType: FieldDate,
			a:         "2024-01-01T00:00:00Z",
			b:         "2024-01-02T12:00:00Z",
			tolerance: &ToleranceSetting{FieldType: FieldDate, Kind: ToleranceDays, Value: 1},
			want:      "Date differs by 1.5 days (2024-01-01T00:00:00Z vs 2024-01-02T12:00:00Z)",
		},
		{
			name:      "no tolerance",
			fieldType: FieldDescription,
			a:         "Widget",
			b:         "Gadget",
			want:      "Description differs (Widget vs Gadget)",
		},
		{
			name:      "unparseable number",
			fieldType: FieldQuantity,
			a:         "n/a",
			b:         "5",
			tolerance: &ToleranceSetting{FieldType: FieldQuantity, Kind: ToleranceAbsolute, Value: 1},
			want:      "Quantity differs (n/a vs 5)",
		},
		{
			name:      "unparseable date",
			fieldType: FieldDate,
			a:         "soon",
			b:         "2024-01-01",
			tolerance: &ToleranceSetting{FieldType: FieldDate, Kind: ToleranceDays, Value: 1},
			want:      "Date differs (soon vs 2024-01-01)",
		},
		{
			name:      "empty side",
			fieldType: FieldAmount,
			a:         "",
			b:         "5",
			tolerance: &ToleranceSetting{FieldType: FieldAmount, Kind: ToleranceAbsolute, Value: 1},
			want:      "Amount differs ( vs 5)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Explain(tt.fieldType, tt.a, tt.b, tt.tolerance))
		})
	}
}
