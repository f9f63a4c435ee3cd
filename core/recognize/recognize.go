package recognize

import (
	"regexp"
	"strings"

	"reconciler/core/reconcile"
)

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]`)

// Normalize lowercases a header and replaces every non-alphanumeric character
// with an underscore.
func Normalize(header string) string {
	return nonAlphanumeric.ReplaceAllString(strings.ToLower(header), "_")
}

// FieldType returns the semantic type proposed for a header, if any.
// A type matches when the normalised header contains one of its synonyms or a
// synonym contains the normalised header.
func FieldType(header string) (string, bool) {
	normalized := Normalize(header)
	if normalized == "" {
		return "", false
	}
	for _, entry := range FieldSynonyms {
		for _, synonym := range entry.Synonyms {
			if strings.Contains(normalized, synonym) || strings.Contains(synonym, normalized) {
				return entry.FieldType, true
			}
		}
	}
	return "", false
}

// Recognize proposes a semantic type for each header it can classify.
func Recognize(headers []string) map[string]string {
	recognized := make(map[string]string)
	for _, h := range headers {
		if ft, ok := FieldType(h); ok {
			recognized[h] = ft
		}
	}
	return recognized
}

// Annotate fills ds.RecognizedFields from its headers.
func Annotate(ds *reconcile.Dataset) {
	if ds == nil {
		return
	}
	ds.RecognizedFields = Recognize(ds.Headers)
}

// SuggestMappings pairs each recognised header of a with the first header of b
// that has the same type. Invoice Number pairs become the reference mapping;
// only the first such pair is flagged.
func SuggestMappings(a, b *reconcile.Dataset) []reconcile.FieldMapping {
	typesA := recognizedOf(a)
	typesB := recognizedOf(b)

	mappings := []reconcile.FieldMapping{}
	hasReference := false
	for _, headerA := range a.Headers {
		fieldType, ok := typesA[headerA]
		if !ok {
			continue
		}
		for _, headerB := range b.Headers {
			if typesB[headerB] != fieldType {
				continue
			}
			isRef := fieldType == reconcile.FieldInvoiceNumber && !hasReference
			hasReference = hasReference || isRef
			mappings = append(mappings, reconcile.FieldMapping{
				FieldA:      headerA,
				FieldB:      headerB,
				FieldType:   fieldType,
				IsReference: isRef,
			})
			break
		}
	}
	return mappings
}

func recognizedOf(ds *reconcile.Dataset) map[string]string {
	if ds.RecognizedFields != nil {
		return ds.RecognizedFields
	}
	return Recognize(ds.Headers)
}

// DefaultTolerances proposes one tolerance per numeric or date field type used
// by the mappings: one day for dates, 0.01 for amounts and tax, 1 for quantities.
func DefaultTolerances(mappings []reconcile.FieldMapping) []reconcile.ToleranceSetting {
	tolerances := []reconcile.ToleranceSetting{}
	seen := make(map[string]bool)
	for _, m := range mappings {
		if seen[m.FieldType] {
			continue
		}
		var t reconcile.ToleranceSetting
		switch m.FieldType {
		case reconcile.FieldDate:
			t = reconcile.ToleranceSetting{FieldType: m.FieldType, Kind: reconcile.ToleranceDays, Value: 1}
		case reconcile.FieldAmount, reconcile.FieldTax:
			t = reconcile.ToleranceSetting{FieldType: m.FieldType, Kind: reconcile.ToleranceAbsolute, Value: 0.01}
		case reconcile.FieldQuantity:
			t = reconcile.ToleranceSetting{FieldType: m.FieldType, Kind: reconcile.ToleranceAbsolute, Value: 1}
		default:
			continue
		}
		seen[m.FieldType] = true
		tolerances = append(tolerances, t)
	}
	return tolerances
}
