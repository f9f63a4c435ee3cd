// Package utils provides small conversion helpers shared by the CLI and the
// HTTP handlers, mostly for turning query and form values into typed options.
package utils
