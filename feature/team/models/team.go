package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Role is a member's role on the team.
type Role string

const (
	RoleCaptain    Role = "captain"
	RoleDriver     Role = "driver"
	RoleBuilder    Role = "builder"
	RoleProgrammer Role = "programmer"
	RoleMentor     Role = "mentor"
	RoleNotebook   Role = "notebook"
)

// IsValid reports whether r is a known role.
func (r Role) IsValid() bool {
	switch r {
	case RoleCaptain, RoleDriver, RoleBuilder, RoleProgrammer, RoleMentor, RoleNotebook:
		return true
	}
	return false
}

// ParseRole normalizes a role string. Empty input defaults to builder.
func ParseRole(v string) (Role, bool) {
	v = strings.ToLower(strings.TrimSpace(v))
	if v == "" {
		return RoleBuilder, true
	}
	r := Role(v)
	return r, r.IsValid()
}

// Team is a robotics team and its budget.
type Team struct {
	ID           uint            `gorm:"primaryKey;column:id" json:"id"`
	Number       string          `gorm:"column:number;type:varchar(16);not null;uniqueIndex" json:"number"`
	Name         string          `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Organization string          `gorm:"column:organization;type:varchar(255)" json:"organization"`
	Budget       decimal.Decimal `gorm:"column:budget;type:decimal(12,2);not null;default:0" json:"budget"`
	Spent        decimal.Decimal `gorm:"column:spent;type:decimal(12,2);not null;default:0" json:"spent"`
	CreatedAt    time.Time       `gorm:"column:created_at" json:"created"`
	Members      []Member        `gorm:"foreignKey:TeamID;constraint:OnDelete:CASCADE" json:"members"`
}

func (Team) TableName() string {
	return "teams"
}

// NormalizeNumber upper-cases and trims a team number.
func NormalizeNumber(number string) string {
	return strings.ToUpper(strings.TrimSpace(number))
}

// Member belongs to exactly one team.
type Member struct {
	ID       string    `gorm:"primaryKey;column:id;type:varchar(36)" json:"id"`
	TeamID   uint      `gorm:"column:team_id;not null;index" json:"-"`
	Name     string    `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Email    string    `gorm:"column:email;type:varchar(255)" json:"email"`
	Role     Role      `gorm:"column:role;type:varchar(16);not null;default:builder" json:"role"`
	Avatar   string    `gorm:"column:avatar;type:varchar(512)" json:"avatar,omitempty"`
	JoinedAt time.Time `gorm:"column:joined_at" json:"joined"`
}

func (Member) TableName() string {
	return "team_members"
}
