// Package integrity provides system health checks.
//
// # Checks Provided
//
//   - Storage: Checks that the bucket exists and holds the archive folders (boms/, reports/).
//   - Schema: Validates that every table matches its GORM model (columns and declared types).
//
// # HTTP Endpoints
//
//   - GET /integrity : Runs all checks.
//   - GET /integrity/storage : Runs the storage check (supports ?fix=true).
//   - GET /integrity/schema : Runs the schema check.
package integrity
