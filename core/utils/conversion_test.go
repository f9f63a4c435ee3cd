package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToInt(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want int
	}{
		{"int", 7, 7},
		{"int64", int64(8), 8},
		{"float", 9.9, 9},
		{"string", " 10 ", 10},
		{"bytes", []byte("11"), 11},
		{"bad string", "ten", -1},
		{"nil", nil, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ToInt(tt.in, -1))
		})
	}
}

func TestToBool(t *testing.T) {
	for _, v := range []any{true, 1, "1", "TRUE", "yes", " on ", []byte("true")} {
		assert.True(t, ToBool(v), "%v", v)
	}
	for _, v := range []any{false, 0, 2, "", "no", "off", nil, 1.0} {
		assert.False(t, ToBool(v), "%v", v)
	}
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 1, Clamp(-5, 1, 100))
	assert.Equal(t, 100, Clamp(500, 1, 100))
	assert.Equal(t, 50, Clamp(50, 1, 100))
}
