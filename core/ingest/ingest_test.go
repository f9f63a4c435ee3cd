package ingest

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"reconciler/core/reconcile"
	"reconciler/core/storage/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/unicode"
)

func TestParse_CSV(t *testing.T) {
	input := "Invoice No , Amount,Notes\n" +
		"INV-1,\"1,200.50\",\"He said \"\"hi\"\"\"\n" +
		"\n" +
		"INV-2, 30 \n" +
		"INV-3,40,\"multi\nline\"\n"

	ds, err := Parse("a.csv", strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, "a.csv", ds.Name)
	assert.Equal(t, []string{"Invoice No", "Amount", "Notes"}, ds.Headers)
	require.Len(t, ds.Rows, 3)
	assert.Equal(t, reconcile.Row{"Invoice No": "INV-1", "Amount": "1,200.50", "Notes": `He said "hi"`}, ds.Rows[0])
	assert.Equal(t, reconcile.Row{"Invoice No": "INV-2", "Amount": "30", "Notes": ""}, ds.Rows[1])
	assert.Equal(t, "multi\nline", ds.Rows[2]["Notes"])
}

func TestParse_CSVBareQuote(t *testing.T) {
	ds, err := Parse("a.csv", strings.NewReader("id,desc\n1,5\" screen\n2,\"quoted\"\n"))
	require.NoError(t, err)

	require.Len(t, ds.Rows, 2)
	assert.Equal(t, `5" screen`, ds.Rows[0]["desc"])
	assert.Equal(t, "quoted", ds.Rows[1]["desc"])
}

func TestParse_HeaderNormalization(t *testing.T) {
	ds, err := Parse("dup.csv", strings.NewReader(",,\n ,amount,amount\n1,2,3\n"))
	require.NoError(t, err)

	assert.Equal(t, []string{"Column 1", "amount", "amount (2)"}, ds.Headers)
	assert.Equal(t, reconcile.Row{"Column 1": "1", "amount": "2", "amount (2)": "3"}, ds.Rows[0])
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		wantErr error
	}{
		{"empty", "a.csv", "", ErrEmptyFile},
		{"whitespace only", "a.csv", "\n \n\t\n", ErrEmptyFile},
		{"blank header", "a.csv", ",,,\n,,\n", ErrNoHeader},
		{"unsupported extension", "a.pdf", "id\n1\n", ErrUnsupportedExtension},
		{"legacy excel", "a.xls", "id\n1\n", ErrUnsupportedExtension},
		{"binary content", "a.csv", "id\x00\x01\n1\n", ErrInvalidEncoding},
		{"broken workbook", "a.xlsx", "not a zip", ErrMalformed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.file, strings.NewReader(tt.content))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.True(t, IsIngestError(err))
			assert.Contains(t, err.Error(), tt.file)
		})
	}
}

func TestParse_Encodings(t *testing.T) {
	t.Run("utf-8 bom", func(t *testing.T) {
		ds, err := Parse("bom.csv", strings.NewReader("\xef\xbb\xbfid,name\n1,x\n"))
		require.NoError(t, err)
		assert.Equal(t, []string{"id", "name"}, ds.Headers)
	})

	t.Run("utf-16 with bom", func(t *testing.T) {
		enc := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder()
		raw, err := enc.String("id,name\n1,Zoë\n")
		require.NoError(t, err)

		ds, err := Parse("wide.csv", strings.NewReader(raw))
		require.NoError(t, err)
		assert.Equal(t, "Zoë", ds.Rows[0]["name"])
	})

	t.Run("windows-1252", func(t *testing.T) {
		ds, err := Parse("legacy.csv", strings.NewReader("id,name\n1,caf\xe9\n"))
		require.NoError(t, err)
		assert.Equal(t, "café", ds.Rows[0]["name"])
	})
}

func TestParse_XLSX(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]any{"Invoice Number", "Total"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]any{"INV-1", "10.50"}))
	require.NoError(t, f.SetSheetRow(sheet, "A3", &[]any{"INV-2"}))
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	ds, err := Parse("book.XLSX", bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)

	assert.Equal(t, []string{"Invoice Number", "Total"}, ds.Headers)
	require.Len(t, ds.Rows, 2)
	assert.Equal(t, "10.50", ds.Rows[0]["Total"])
	assert.Equal(t, "", ds.Rows[1]["Total"])
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.csv")
	require.NoError(t, os.WriteFile(path, []byte("id\n1\n2\n"), 0o600))

	ds, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "ledger.csv", ds.Name)
	assert.Len(t, ds.Rows, 2)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
	assert.False(t, IsIngestError(err))
}

func TestLoadObject(t *testing.T) {
	mockClient := new(mocks.Client)
	mockClient.On("GetObject", mock.Anything, "uploads", "in/a.csv", mock.Anything).
		Return(mocks.Body("id,amt\n1,2\n"), nil)
	mockClient.On("GetObject", mock.Anything, "uploads", "in/missing.csv", mock.Anything).
		Return(nil, errors.New("not found"))

	ds, err := Load(context.Background(), mockClient, "s3://uploads/in/a.csv")
	require.NoError(t, err)
	assert.Equal(t, "in/a.csv", ds.Name)
	assert.Equal(t, "2", ds.Rows[0]["amt"])

	_, err = LoadObject(context.Background(), mockClient, "uploads", "in/missing.csv")
	assert.ErrorContains(t, err, "not found")

	_, err = Load(context.Background(), nil, "s3://uploads/in/a.csv")
	assert.ErrorContains(t, err, "object storage is not configured")

	mockClient.AssertExpectations(t)
}

func TestSplitObjectURI(t *testing.T) {
	tests := []struct {
		in          string
		bucket, key string
		ok          bool
	}{
		{"s3://b/k.csv", "b", "k.csv", true},
		{"s3://b/dir/k.csv", "b", "dir/k.csv", true},
		{"s3://b", "", "", false},
		{"s3:///k.csv", "", "", false},
		{"local/k.csv", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			bucket, key, ok := SplitObjectURI(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.bucket, bucket)
			assert.Equal(t, tt.key, key)
		})
	}
}
