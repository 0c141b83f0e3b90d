package bom

import (
	"time"

	"team-inventory/core/reconcile"

	"github.com/shopspring/decimal"
)

// DefaultBuildName is used when an upload does not name its build.
const DefaultBuildName = "Unnamed Build"

// UploadRequest is a BOM ready for reconciliation.
type UploadRequest struct {
	BuildName string
	Simulate  bool
	Lines     []reconcile.Line
	// RawCSV is the uploaded file, archived as is when present.
	RawCSV []byte
}

// UploadJSONRequest is the JSON form of an upload.
type UploadJSONRequest struct {
	PartsList  []reconcile.Line `json:"partsList"`
	BuildName  string           `json:"buildName"`
	Simulation bool             `json:"simulation"`
}

// BuildSummary is one entry of the build history.
type BuildSummary struct {
	ID        uint            `json:"id"`
	Name      string          `json:"name"`
	Timestamp time.Time       `json:"timestamp"`
	Status    string          `json:"status"`
	PartCount int             `json:"part_count"`
	TotalCost decimal.Decimal `json:"total_cost"`
}

// BuildPartDetail is a build line enriched with the current inventory.
type BuildPartDetail struct {
	PartNumber string          `json:"part_number"`
	Quantity   int             `json:"quantity"`
	Name       string          `json:"name"`
	Category   string          `json:"category"`
	InStock    *int            `json:"in_stock"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

// BuildDetail is a build with its enriched lines.
type BuildDetail struct {
	BuildSummary
	Parts []BuildPartDetail `json:"parts"`
}
