package ingest

import (
	"bytes"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// decodeText turns raw file bytes into UTF-8 text.
// A UTF-8 or UTF-16 byte order mark selects that encoding; text without a BOM
// that is not valid UTF-8 is read as Windows-1252, the usual spreadsheet export
// encoding.
func decodeText(name string, raw []byte) (string, error) {
	out, _, err := transform.Bytes(unicode.BOMOverride(transform.Nop), raw)
	if err != nil {
		return "", newError(name, ErrInvalidEncoding, "could not decode file: %v", err)
	}

	if !utf8.Valid(out) {
		out, err = charmap.Windows1252.NewDecoder().Bytes(out)
		if err != nil {
			return "", newError(name, ErrInvalidEncoding, "could not decode file: %v", err)
		}
	}

	if bytes.IndexByte(out, 0) >= 0 {
		return "", newError(name, ErrInvalidEncoding, "file contains binary data and is not readable as text")
	}

	return string(out), nil
}
