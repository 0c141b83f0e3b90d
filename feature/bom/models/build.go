package models

import (
	"time"

	"team-inventory/core/reconcile"

	"github.com/shopspring/decimal"
)

// Build statuses as stored.
const (
	StatusSimulated = string(reconcile.BuildSimulated)
	StatusProcessed = string(reconcile.BuildProcessed)
)

// Build is the persisted record of one BOM run.
type Build struct {
	ID        uint            `gorm:"primaryKey;column:id"`
	TeamID    uint            `gorm:"column:team_id;not null;index"`
	Name      string          `gorm:"column:name;type:varchar(255);not null"`
	Status    string          `gorm:"column:status;type:varchar(16);not null"`
	TotalCost decimal.Decimal `gorm:"column:total_cost;type:decimal(12,2);not null;default:0"`
	CreatedAt time.Time       `gorm:"column:created_at;index"`
	Parts     []BuildPart     `gorm:"foreignKey:BuildID;constraint:OnDelete:CASCADE"`
}

func (Build) TableName() string {
	return "builds"
}

// BuildPart is one BOM line as the user submitted it.
type BuildPart struct {
	ID         uint   `gorm:"primaryKey;column:id"`
	BuildID    uint   `gorm:"column:build_id;not null;index"`
	Position   int    `gorm:"column:position;not null"`
	PartNumber string `gorm:"column:part_number;type:varchar(64);not null"`
	Quantity   int    `gorm:"column:quantity;not null"`
	Name       string `gorm:"column:name;type:varchar(255)"`
}

func (BuildPart) TableName() string {
	return "build_parts"
}
