package reconcile

import (
	"github.com/shopspring/decimal"
)

func init() {
	// Money fields are JSON numbers on the wire.
	decimal.MarshalJSONWithoutQuotes = true
}

// Status classifies a reconciled line.
type Status string

const (
	StatusOK           Status = "ok"
	StatusLow          Status = "low"
	StatusInsufficient Status = "insufficient"
	StatusMissing      Status = "missing"
)

// AlertType names the problem an Alert reports.
type AlertType string

const (
	AlertMissing      AlertType = "missing"
	AlertInsufficient AlertType = "insufficient"
	AlertLow          AlertType = "low"
)

// BuildStatus is the persisted status of a build.
type BuildStatus string

const (
	BuildSimulated BuildStatus = "simulated"
	BuildProcessed BuildStatus = "processed"
)

// IsValid reports whether s is a known build status.
func (s BuildStatus) IsValid() bool {
	return s == BuildSimulated || s == BuildProcessed
}

// Line is one parsed BOM row.
type Line struct {
	PartNumber string `json:"part_number"`
	Quantity   int    `json:"quantity"`
	Name       string `json:"name"`
}

// Part is the inventory state the engine needs for one part number.
type Part struct {
	ID          uint
	PartNumber  string
	Name        string
	InStock     int
	MinRequired int
	UnitPrice   decimal.Decimal
}

// Snapshot is a point-in-time lookup of a team's inventory by part number.
type Snapshot interface {
	Lookup(partNumber string) (Part, bool)
}

// PartMap is a Snapshot backed by a map.
type PartMap map[string]Part

// Lookup implements Snapshot.
func (m PartMap) Lookup(partNumber string) (Part, bool) {
	p, ok := m[partNumber]
	return p, ok
}

// Result is the outcome for one input line.
type Result struct {
	PartNumber string          `json:"part_number"`
	Name       string          `json:"name"`
	Needed     int             `json:"needed"`
	Available  int             `json:"available"`
	Remaining  *int            `json:"remaining,omitempty"`
	Status     Status          `json:"status"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

// Alert flags a line that needs attention.
type Alert struct {
	Type       AlertType `json:"type"`
	PartNumber string    `json:"part_number"`
	Name       string    `json:"name"`
	Needed     int       `json:"needed"`
	Available  int       `json:"available"`
	Shortage   *int      `json:"shortage,omitempty"`
	Remaining  *int      `json:"remaining,omitempty"`
	Minimum    *int      `json:"minimum,omitempty"`
}

// Summary aggregates a report.
type Summary struct {
	TotalParts   int             `json:"total_parts"`
	Missing      int             `json:"missing"`
	Insufficient int             `json:"insufficient"`
	LowStock     int             `json:"low_stock"`
	OK           int             `json:"ok"`
	TotalCost    decimal.Decimal `json:"total_cost"`
}

// Report is the response returned for one BOM run.
type Report struct {
	Success    bool     `json:"success"`
	Simulation bool     `json:"simulation"`
	BuildID    uint     `json:"buildId"`
	Results    []Result `json:"results"`
	Alerts     []Alert  `json:"alerts"`
	Summary    Summary  `json:"summary"`
}

// BuildPart is a line as recorded on the build, with the quantity the user submitted.
type BuildPart struct {
	PartNumber string `json:"part_number"`
	Quantity   int    `json:"quantity"`
	Name       string `json:"name"`
}

// StockChange sets a part's stock to NewStock.
type StockChange struct {
	PartID     uint
	PartNumber string
	NewStock   int
}

// Options control a reconciliation run.
type Options struct {
	// Simulate computes the full report without planning any stock or spend mutation.
	Simulate bool
}

// Mode returns "simulate" or "real".
func (o Options) Mode() string {
	if o.Simulate {
		return "simulate"
	}
	return "real"
}

// BuildStatus returns the status the run's build is recorded with.
func (o Options) BuildStatus() BuildStatus {
	if o.Simulate {
		return BuildSimulated
	}
	return BuildProcessed
}

// Plan is a computed reconciliation plus the mutations needed to persist it.
type Plan struct {
	Report      Report
	BuildStatus BuildStatus
	BuildParts  []BuildPart
	TotalCost   decimal.Decimal
	// StockChanges and SpendIncrements hold one entry per matched line, in input order.
	// Both are empty for simulated runs.
	StockChanges    []StockChange
	SpendIncrements []decimal.Decimal
}
