package profile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"reconciler/core/reconcile"

	"gopkg.in/yaml.v3"
)

// ErrEmptyProfile is returned when a profile declares no mappings.
var ErrEmptyProfile = errors.New("profile declares no mappings")

// Profile is a reusable reconciliation setup stored as YAML.
type Profile struct {
	Name          string                       `yaml:"name" json:"name"`
	Description   string                       `yaml:"description,omitempty" json:"description,omitempty"`
	ReportUnkeyed *bool                        `yaml:"report_unkeyed,omitempty" json:"report_unkeyed,omitempty"`
	Mappings      []reconcile.FieldMapping     `yaml:"mappings" json:"mappings"`
	Tolerances    []reconcile.ToleranceSetting `yaml:"tolerances" json:"tolerances"`
}

// Options returns the engine options described by the profile.
func (p *Profile) Options() reconcile.Options {
	return reconcile.Options{ReportUnkeyed: p.ReportUnkeyed != nil && *p.ReportUnkeyed}
}

// Input builds an engine input for the two datasets.
func (p *Profile) Input(a, b *reconcile.Dataset) reconcile.Input {
	return reconcile.Input{
		A:          a,
		B:          b,
		Mappings:   p.Mappings,
		Tolerances: p.Tolerances,
		Options:    p.Options(),
	}
}

// Decode reads and validates a profile.
func Decode(r io.Reader) (*Profile, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var p Profile
	if err := dec.Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyProfile
		}
		return nil, fmt.Errorf("failed to decode profile: %w", err)
	}
	if len(p.Mappings) == 0 {
		return nil, ErrEmptyProfile
	}
	if err := reconcile.Validate(p.Mappings, p.Tolerances); err != nil {
		return nil, fmt.Errorf("invalid profile %q: %w", p.Name, err)
	}

	return &p, nil
}

// Load reads a profile from disk.
func Load(path string) (*Profile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}
	return Decode(bytes.NewReader(raw))
}

// Encode writes p as YAML.
func Encode(w io.Writer, p *Profile) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(p); err != nil {
		return fmt.Errorf("failed to encode profile: %w", err)
	}
	return enc.Close()
}
