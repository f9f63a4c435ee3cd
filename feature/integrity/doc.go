// Package integrity checks the infrastructure the reconciliation service relies on.
//
// # Checks Provided
//
//   - Structure: the bucket holds the dataset and report folders (see storage.Config prefixes).
//   - Server: the run history tables carry every column declared by the gorm models,
//     with matching types where the model declares one.
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/structure : Runs structure check (supports ?fix=true).
//   - GET /integrity/server : Runs schema check.
package integrity
