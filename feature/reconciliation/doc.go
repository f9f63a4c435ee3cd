// Package reconciliation exposes the reconciliation engine over HTTP and keeps
// a history of runs.
//
// # Flow
//
// A run starts from two uploaded files (POST /reconcile), two objects of the
// configured bucket (POST /reconcile/objects) or two parsed datasets (CLI).
// Headers are recognised, mappings are suggested when the client sends none,
// and the engine runs through the result cache. When a database is connected
// the run and its results are stored; when object storage is enabled the raw
// uploads are archived under the dataset prefix.
//
// # HTTP Endpoints
//
//   - POST /recognize : header typing and mapping suggestions.
//   - POST /reconcile : multipart upload (file_a, file_b, config).
//   - POST /reconcile/objects : reconcile two bucket objects.
//   - GET /reconcile/runs : recent runs (supports ?limit=).
//   - GET /reconcile/runs/:id : one run (supports ?status= and ?search=).
//   - GET /reconcile/runs/:id/export : CSV download (same filters).
//   - POST /reconcile/runs/:id/publish : upload the CSV report to the bucket.
//   - DELETE /reconcile/runs/:id : remove a run and its objects.
//
// Validation and ingestion errors answer 400, unknown runs 404, and history or
// storage operations without a backend 503.
package reconciliation
