// Package storage wraps the MinIO client used to keep uploaded datasets and
// exported reports in S3 compatible object storage.
//
// The Client interface exposes only the calls the application makes, which keeps
// it mockable (see core/storage/mocks). EnsureBucket, PutBytes and RemovePrefix
// cover the publishing flow of a reconciliation run:
//
//	datasets/<run-id>/a.csv
//	datasets/<run-id>/b.xlsx
//	reports/<run-id>.csv
//
// Ingestion reads objects back through GetObject when a dataset is given as an
// s3://bucket/object location.
package storage
