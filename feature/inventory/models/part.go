package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Supplier identifies where a part is ordered from.
type Supplier string

const (
	SupplierRoboSource Supplier = "robosource"
	SupplierVexStore   Supplier = "vexstore"
	SupplierOther      Supplier = "other"
)

// IsValid reports whether s is a known supplier.
func (s Supplier) IsValid() bool {
	switch s {
	case SupplierRoboSource, SupplierVexStore, SupplierOther:
		return true
	}
	return false
}

// ParseSupplier normalizes a supplier string. Empty input defaults to other.
func ParseSupplier(v string) (Supplier, bool) {
	v = strings.ToLower(strings.TrimSpace(v))
	if v == "" {
		return SupplierOther, true
	}
	s := Supplier(v)
	return s, s.IsValid()
}

// Categories is the fixed list of part categories.
var Categories = []string{
	"Gears",
	"Motors",
	"Structure",
	"Motion",
	"Wheels",
	"Chain & Sprockets",
	"Electronics",
	"Pneumatics",
	"Hardware",
	"Sensors",
	"Custom",
}

// IsValidCategory reports whether c is one of Categories.
func IsValidCategory(c string) bool {
	for _, known := range Categories {
		if known == c {
			return true
		}
	}
	return false
}

// Part is one inventory line owned by a team.
type Part struct {
	ID          uint            `gorm:"primaryKey;column:id" json:"-"`
	TeamID      uint            `gorm:"column:team_id;not null;uniqueIndex:idx_parts_team_part" json:"-"`
	PartNumber  string          `gorm:"column:part_number;type:varchar(64);not null;uniqueIndex:idx_parts_team_part" json:"part_number"`
	Name        string          `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Category    string          `gorm:"column:category;type:varchar(64);not null" json:"category"`
	InStock     int             `gorm:"column:in_stock;not null;default:0" json:"in_stock"`
	MinRequired int             `gorm:"column:min_required;not null;default:0" json:"min_required"`
	UnitPrice   decimal.Decimal `gorm:"column:unit_price;type:decimal(12,2);not null;default:0" json:"unit_price"`
	Supplier    Supplier        `gorm:"column:supplier;type:varchar(16);not null;default:other" json:"supplier"`
	SupplierURL string          `gorm:"column:supplier_url;type:varchar(512)" json:"supplier_url,omitempty"`
	LastOrdered *time.Time      `gorm:"column:last_ordered" json:"last_ordered,omitempty"`
	CreatedAt   time.Time       `gorm:"column:created_at" json:"-"`
	UpdatedAt   time.Time       `gorm:"column:updated_at" json:"-"`
}

func (Part) TableName() string {
	return "parts"
}

// StockValue is in_stock × unit_price.
func (p Part) StockValue() decimal.Decimal {
	return p.UnitPrice.Mul(decimal.NewFromInt(int64(p.InStock)))
}
