package reconcile

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrNoReferenceMapping is returned when no mapping is flagged as reference.
	ErrNoReferenceMapping = errors.New("no reference mapping configured")
	// ErrMultipleReferenceMappings is returned when more than one mapping is flagged as reference.
	ErrMultipleReferenceMappings = errors.New("more than one reference mapping configured")
	// ErrUnknownToleranceKind is returned for tolerance kinds other than absolute, percentage or days.
	ErrUnknownToleranceKind = errors.New("unknown tolerance kind")
	// ErrNegativeTolerance is returned for tolerance values below zero.
	ErrNegativeTolerance = errors.New("tolerance value must not be negative")
	// ErrInvalidTolerance is returned for NaN or infinite tolerance values.
	ErrInvalidTolerance = errors.New("tolerance value must be a finite number")
	// ErrDuplicateTolerance is returned when a field type has more than one tolerance setting.
	ErrDuplicateTolerance = errors.New("duplicate tolerance for field type")
	// ErrIncompleteMapping is returned when a mapping lacks one of its field names.
	ErrIncompleteMapping = errors.New("mapping is missing a field name")
)

// IsValidationError reports whether err stems from Validate.
func IsValidationError(err error) bool {
	for _, target := range []error{
		ErrNoReferenceMapping,
		ErrMultipleReferenceMappings,
		ErrUnknownToleranceKind,
		ErrNegativeTolerance,
		ErrInvalidTolerance,
		ErrDuplicateTolerance,
		ErrIncompleteMapping,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// Validate checks that mappings and tolerances describe a runnable reconciliation.
func Validate(mappings []FieldMapping, tolerances []ToleranceSetting) error {
	refs := 0
	for i, m := range mappings {
		if m.FieldA == "" || m.FieldB == "" {
			return fmt.Errorf("mapping %d: %w", i, ErrIncompleteMapping)
		}
		if m.IsReference {
			refs++
		}
	}
	switch {
	case refs == 0:
		return ErrNoReferenceMapping
	case refs > 1:
		return fmt.Errorf("%w: found %d", ErrMultipleReferenceMappings, refs)
	}

	seen := make(map[string]struct{}, len(tolerances))
	for _, t := range tolerances {
		if !t.Kind.Valid() {
			return fmt.Errorf("%w: %q for %s", ErrUnknownToleranceKind, t.Kind, t.FieldType)
		}
		if math.IsNaN(t.Value) || math.IsInf(t.Value, 0) {
			return fmt.Errorf("%w: %s has %v", ErrInvalidTolerance, t.FieldType, t.Value)
		}
		if t.Value < 0 {
			return fmt.Errorf("%w: %s has %v", ErrNegativeTolerance, t.FieldType, t.Value)
		}
		if _, dup := seen[t.FieldType]; dup {
			return fmt.Errorf("%w: %s", ErrDuplicateTolerance, t.FieldType)
		}
		seen[t.FieldType] = struct{}{}
	}

	return nil
}
