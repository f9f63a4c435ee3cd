package server_test

import (
	"testing"

	"reconciler/core/server"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		port    string
		wantErr bool
	}{
		{"Default", "8080", false},
		{"Lowest", "1", false},
		{"Zero", "0", true},
		{"TooHigh", "70000", true},
		{"NotANumber", "http", true},
		{"Empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := server.Config{Port: tt.port}.Validate()
			assert.Equal(t, tt.wantErr, err != nil)
		})
	}
}

func TestConfig_BodyLimit(t *testing.T) {
	assert.Equal(t, 32<<20, server.Config{}.BodyLimit())
	assert.Equal(t, 5<<20, server.Config{MaxUploadMB: 5}.BodyLimit())
	assert.Equal(t, ":9000", server.Config{Port: "9000"}.Address())
}
