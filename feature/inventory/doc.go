// Package inventory manages a team's parts: listing, saving, stock updates and deletion.
//
// It also produces the inventory snapshot that BOM reconciliation runs against.
//
// # HTTP Endpoints (current team required)
//
//   - GET /inventory : List parts.
//   - PUT /inventory : Create or replace a part by part number.
//   - PATCH /inventory/:partNumber/stock : Set stock.
//   - DELETE /inventory/:partNumber : Delete a part.
package inventory
