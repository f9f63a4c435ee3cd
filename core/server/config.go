package server

import (
	"fmt"
	"strconv"
)

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret required in the X-API-Key header. Empty disables auth.
	ApiKey string `mapstructure:"api_key" default:""`
	// MaxUploadMB caps the request body, and so the size of uploaded datasets.
	MaxUploadMB int `mapstructure:"max_upload_mb" default:"32"`
	// ReadTimeoutSeconds bounds reading a whole request.
	ReadTimeoutSeconds int `mapstructure:"read_timeout_seconds" default:"60"`
}

// Address returns the listen address.
func (c Config) Address() string {
	return ":" + c.Port
}

// BodyLimit returns MaxUploadMB in bytes, defaulting to 32 MiB.
func (c Config) BodyLimit() int {
	if c.MaxUploadMB <= 0 {
		return 32 << 20
	}
	return c.MaxUploadMB << 20
}

// Validate checks that the port is a usable TCP port.
func (c Config) Validate() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("invalid server port %q", c.Port)
	}
	return nil
}
