// Package middleware groups the Fiber middleware shared by all features.
//
//   - auth: X-API-Key validation, with public path prefixes for /metrics and /swagger.
//   - rayid: a per-request UUID stored in locals and echoed in the X-Ray-ID header,
//     picked up by logger.WithRayID.
//
// Register rayid first so every later middleware can log the ray ID.
package middleware
