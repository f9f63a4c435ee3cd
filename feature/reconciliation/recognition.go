package reconciliation

import (
	"reconciler/core/recognize"
	"reconciler/core/reconcile"
)

// RecognizeRequest carries the headers of both files.
type RecognizeRequest struct {
	HeadersA []string `json:"headers_a"`
	HeadersB []string `json:"headers_b"`
}

// RecognizedField is one header with its detected type and badge colour.
type RecognizedField struct {
	Header    string `json:"header"`
	FieldType string `json:"field_type,omitempty"`
	Color     string `json:"color,omitempty"`
}

// Recognition is the header analysis used to prefill the mapping editor.
type Recognition struct {
	FieldsA    []RecognizedField            `json:"fields_a"`
	FieldsB    []RecognizedField            `json:"fields_b"`
	Mappings   []reconcile.FieldMapping     `json:"mappings"`
	Tolerances []reconcile.ToleranceSetting `json:"tolerances"`
}

// Recognize types the headers and suggests mappings with default tolerances.
func Recognize(headersA, headersB []string) *Recognition {
	a := &reconcile.Dataset{Headers: headersA}
	b := &reconcile.Dataset{Headers: headersB}
	recognize.Annotate(a)
	recognize.Annotate(b)

	mappings := recognize.SuggestMappings(a, b)
	return &Recognition{
		FieldsA:    recognizedFields(a),
		FieldsB:    recognizedFields(b),
		Mappings:   mappings,
		Tolerances: recognize.DefaultTolerances(mappings),
	}
}

func recognizedFields(ds *reconcile.Dataset) []RecognizedField {
	fields := make([]RecognizedField, 0, len(ds.Headers))
	for _, h := range ds.Headers {
		f := RecognizedField{Header: h}
		if ft, ok := ds.RecognizedFields[h]; ok {
			f.FieldType = ft
			f.Color = recognize.Color(ft)
		}
		fields = append(fields, f)
	}
	return fields
}
