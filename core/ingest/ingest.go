package ingest

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"reconciler/core/reconcile"
	"reconciler/core/storage"

	"github.com/minio/minio-go/v7"
)

// Supported lists the file extensions Parse understands.
var Supported = []string{".csv", ".txt", ".xlsx", ".xlsm"}

// Parse reads a whole file and turns it into a Dataset.
// The parser is selected by the extension of name.
func Parse(name string, r io.Reader) (*reconcile.Dataset, error) {
	ext := strings.ToLower(filepath.Ext(name))
	switch ext {
	case ".csv", ".txt", ".xlsx", ".xlsm":
	default:
		return nil, newError(name, ErrUnsupportedExtension,
			"unsupported file type %q (supported: %s)", ext, strings.Join(Supported, ", "))
	}

	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return nil, newError(name, ErrEmptyFile, "file is empty")
	}

	if ext == ".xlsx" || ext == ".xlsm" {
		return parseXLSX(name, raw)
	}

	text, err := decodeText(name, raw)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return nil, newError(name, ErrEmptyFile, "file is empty")
	}
	return parseCSV(name, text)
}

// LoadFile parses a file from the local filesystem.
func LoadFile(path string) (*reconcile.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	return Parse(filepath.Base(path), f)
}

// LoadObject parses an object stored in the bucket.
func LoadObject(ctx context.Context, client storage.Client, bucket, objectName string) (*reconcile.Dataset, error) {
	obj, err := client.GetObject(ctx, bucket, objectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get object %s: %w", objectName, err)
	}
	defer obj.Close()

	return Parse(objectName, obj)
}

// Load resolves a dataset location. Locations of the form s3://bucket/key are
// read from object storage; anything else is a local path.
func Load(ctx context.Context, client storage.Client, location string) (*reconcile.Dataset, error) {
	bucket, key, ok := SplitObjectURI(location)
	if !ok {
		return LoadFile(location)
	}
	if client == nil {
		return nil, fmt.Errorf("object storage is not configured for %s", location)
	}
	return LoadObject(ctx, client, bucket, key)
}

// SplitObjectURI splits s3://bucket/key into its parts.
func SplitObjectURI(location string) (bucket, key string, ok bool) {
	rest, found := strings.CutPrefix(location, "s3://")
	if !found {
		return "", "", false
	}
	bucket, key, found = strings.Cut(rest, "/")
	if !found || bucket == "" || key == "" {
		return "", "", false
	}
	return bucket, key, true
}
