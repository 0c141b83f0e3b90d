// Package bom turns uploaded bills of materials into builds.
//
// An upload is parsed (CSV or JSON), reconciled against the team's inventory by
// core/reconcile and persisted in a single transaction while holding the team's
// BOM lock. Processed runs deduct stock and add the build cost to the team's
// spend; simulated runs only record the build. Successful uploads are archived to
// object storage under boms/ and reports/ when an Archiver is configured.
//
// # HTTP Endpoints (current team required)
//
//   - POST /bom/upload : Reconcile a CSV (multipart) or JSON parts list.
//   - GET /builds : Build history, newest first.
//   - GET /builds/:id : One build priced at current inventory.
//   - GET /builds/:id/bom : The archived BOM CSV of a build.
package bom
