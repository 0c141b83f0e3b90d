package inventory

import (
	"time"

	"github.com/shopspring/decimal"
)

// SavePartRequest creates or replaces a part.
type SavePartRequest struct {
	PartNumber  string          `json:"part_number" validate:"required,max=64"`
	Name        string          `json:"name" validate:"required,max=255"`
	Category    string          `json:"category" validate:"required"`
	InStock     int             `json:"in_stock" validate:"min=0"`
	MinRequired int             `json:"min_required" validate:"min=0"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Supplier    string          `json:"supplier" validate:"omitempty,oneof=robosource vexstore other"`
	SupplierURL string          `json:"supplier_url" validate:"omitempty,url"`
	LastOrdered *time.Time      `json:"last_ordered"`
}

// UpdateStockRequest sets the stock of one part.
type UpdateStockRequest struct {
	InStock *int `json:"in_stock" validate:"required,min=0"`
}
