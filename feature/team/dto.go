package team

import (
	"team-inventory/feature/team/models"

	"github.com/shopspring/decimal"
)

// LookupResponse answers whether a team number is registered.
type LookupResponse struct {
	Exists bool         `json:"exists"`
	Team   *models.Team `json:"team,omitempty"`
}

// LoginRequest selects the current team.
type LoginRequest struct {
	TeamNumber string `json:"teamNumber" validate:"required,max=16"`
}

// NewMember is a member listed at registration.
type NewMember struct {
	Name string `json:"name" validate:"required,max=255"`
	Role string `json:"role" validate:"omitempty,oneof=captain driver builder programmer mentor notebook"`
}

// RegisterRequest creates a team.
type RegisterRequest struct {
	TeamNumber   string          `json:"teamNumber" validate:"required,max=16"`
	Name         string          `json:"name" validate:"max=255"`
	Organization string          `json:"organization" validate:"max=255"`
	Budget       decimal.Decimal `json:"budget"`
	Members      []NewMember     `json:"members" validate:"dive"`
}

// UpdateTeamRequest edits a team. Nil fields are left unchanged.
type UpdateTeamRequest struct {
	Name         *string          `json:"name" validate:"omitempty,min=1,max=255"`
	Organization *string          `json:"organization" validate:"omitempty,max=255"`
	Budget       *decimal.Decimal `json:"budget"`
}

// AddMemberRequest adds one member to the current team.
type AddMemberRequest struct {
	Name   string `json:"name" validate:"required,max=255"`
	Email  string `json:"email" validate:"omitempty,email"`
	Role   string `json:"role" validate:"omitempty,oneof=captain driver builder programmer mentor notebook"`
	Avatar string `json:"avatar" validate:"omitempty,url"`
}

// MonthlySpend is the processed build cost of one calendar month ("2006-01").
type MonthlySpend struct {
	Month  string          `json:"month"`
	Amount decimal.Decimal `json:"amount"`
}

// CategoryShare is the stock value held in one category.
type CategoryShare struct {
	Category   string          `json:"category"`
	Amount     decimal.Decimal `json:"amount"`
	Percentage float64         `json:"percentage"`
}

// FinancialStats summarizes a team's budget and inventory value.
type FinancialStats struct {
	TotalBudget       decimal.Decimal `json:"totalBudget"`
	TotalSpent        decimal.Decimal `json:"totalSpent"`
	Remaining         decimal.Decimal `json:"remaining"`
	InventoryValue    decimal.Decimal `json:"inventoryValue"`
	PendingOrders     int             `json:"pendingOrders"`
	MonthlySpend      []MonthlySpend  `json:"monthlySpend"`
	CategoryBreakdown []CategoryShare `json:"categoryBreakdown"`
}
