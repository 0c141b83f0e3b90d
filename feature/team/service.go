package team

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	apperrors "team-inventory/core/errors"
	"team-inventory/core/validation"
	"team-inventory/feature/team/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service manages teams, their members and finances.
type Service struct {
	repo   Repository
	logger *zap.Logger
	now    func() time.Time
}

// NewService creates a new team service.
func NewService(repo Repository, logger *zap.Logger) *Service {
	return &Service{repo: repo, logger: logger, now: func() time.Time { return time.Now().UTC() }}
}

// Lookup reports whether number is registered and returns the team if so.
func (s *Service) Lookup(ctx context.Context, number string) (*LookupResponse, error) {
	team, err := s.repo.FindByNumber(ctx, models.NormalizeNumber(number))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &LookupResponse{Exists: false}, nil
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeInternal, err, "failed to look up team")
	}
	return &LookupResponse{Exists: true, Team: team}, nil
}

// ResolveTeam maps a team number to its id.
func (s *Service) ResolveTeam(ctx context.Context, number string) (uint, error) {
	team, err := s.repo.FindByNumber(ctx, models.NormalizeNumber(number))
	if err != nil {
		return 0, mapNotFound(err, "failed to resolve team")
	}
	return team.ID, nil
}

// Get returns a team with its members.
func (s *Service) Get(ctx context.Context, teamID uint) (*models.Team, error) {
	team, err := s.repo.FindByID(ctx, teamID)
	if err != nil {
		return nil, mapNotFound(err, "failed to load team")
	}
	return team, nil
}

// Register creates a team. The number must not be taken.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*models.Team, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	if req.Budget.IsNegative() {
		return nil, apperrors.New(apperrors.CodeValidation, "validation failed").
			WithDetails(map[string]string{"budget": "must be at least 0"})
	}

	number := models.NormalizeNumber(req.TeamNumber)
	if _, err := s.repo.FindByNumber(ctx, number); err == nil {
		return nil, apperrors.New(apperrors.CodeConflict, "Team already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Wrap(apperrors.CodeInternal, err, "failed to check team")
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = req.TeamNumber
	}

	now := s.now()
	team := &models.Team{
		Number:       number,
		Name:         name,
		Organization: req.Organization,
		Budget:       req.Budget.Round(2),
		Spent:        decimal.Zero,
		CreatedAt:    now,
	}
	for _, m := range req.Members {
		role, _ := models.ParseRole(m.Role)
		team.Members = append(team.Members, models.Member{
			ID:       uuid.NewString(),
			Name:     m.Name,
			Role:     role,
			JoinedAt: now,
		})
	}

	if err := s.repo.Create(ctx, team); err != nil {
		return nil, apperrors.Wrap(apperrors.CodeInternal, err, "failed to create team")
	}
	s.logger.Info("Team registered", zap.String("team_number", team.Number), zap.Int("members", len(team.Members)))
	return team, nil
}

// Update edits the team's name, organization and budget.
func (s *Service) Update(ctx context.Context, teamID uint, req UpdateTeamRequest) (*models.Team, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	team, err := s.Get(ctx, teamID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		team.Name = *req.Name
	}
	if req.Organization != nil {
		team.Organization = *req.Organization
	}
	if req.Budget != nil {
		if req.Budget.IsNegative() {
			return nil, apperrors.New(apperrors.CodeValidation, "validation failed").
				WithDetails(map[string]string{"budget": "must be at least 0"})
		}
		team.Budget = req.Budget.Round(2)
	}

	if err := s.repo.Update(ctx, team); err != nil {
		return nil, apperrors.Wrap(apperrors.CodeInternal, err, "failed to update team")
	}
	return team, nil
}

// AddMember adds a member to the team.
func (s *Service) AddMember(ctx context.Context, teamID uint, req AddMemberRequest) (*models.Member, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	role, _ := models.ParseRole(req.Role)
	member := &models.Member{
		ID:       uuid.NewString(),
		TeamID:   teamID,
		Name:     req.Name,
		Email:    req.Email,
		Role:     role,
		Avatar:   req.Avatar,
		JoinedAt: s.now(),
	}
	if err := s.repo.AddMember(ctx, member); err != nil {
		return nil, apperrors.Wrap(apperrors.CodeInternal, err, "failed to add member")
	}
	return member, nil
}

// RemoveMember removes a member from the team.
func (s *Service) RemoveMember(ctx context.Context, teamID uint, memberID string) error {
	if err := s.repo.RemoveMember(ctx, teamID, memberID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.New(apperrors.CodeNotFound, "Member not found")
		}
		return apperrors.Wrap(apperrors.CodeInternal, err, "failed to remove member")
	}
	return nil
}

// IncrementSpent adds amount to the team's spend. tx may be nil.
func (s *Service) IncrementSpent(ctx context.Context, tx *gorm.DB, teamID uint, amount decimal.Decimal) error {
	if err := s.repo.WithTx(tx).IncrementSpent(ctx, teamID, amount); err != nil {
		return mapNotFound(err, "failed to update team spend")
	}
	return nil
}

// Finances computes budget, inventory value, monthly spend and category breakdown.
func (s *Service) Finances(ctx context.Context, teamID uint) (*FinancialStats, error) {
	team, err := s.Get(ctx, teamID)
	if err != nil {
		return nil, err
	}
	parts, err := s.repo.ListParts(ctx, teamID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeInternal, err, "failed to load inventory")
	}
	builds, err := s.repo.ListProcessedBuilds(ctx, teamID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeInternal, err, "failed to load builds")
	}

	stats := &FinancialStats{
		TotalBudget:       team.Budget,
		TotalSpent:        team.Spent,
		Remaining:         team.Budget.Sub(team.Spent),
		InventoryValue:    decimal.Zero,
		MonthlySpend:      []MonthlySpend{},
		CategoryBreakdown: []CategoryShare{},
	}

	byCategory := map[string]decimal.Decimal{}
	for _, p := range parts {
		value := p.StockValue()
		stats.InventoryValue = stats.InventoryValue.Add(value)
		byCategory[p.Category] = byCategory[p.Category].Add(value)
	}
	for category, amount := range byCategory {
		share := CategoryShare{Category: category, Amount: amount.Round(2)}
		if stats.InventoryValue.IsPositive() {
			share.Percentage = amount.Div(stats.InventoryValue).Mul(decimal.NewFromInt(100)).Round(2).InexactFloat64()
		}
		stats.CategoryBreakdown = append(stats.CategoryBreakdown, share)
	}
	sort.Slice(stats.CategoryBreakdown, func(i, j int) bool {
		a, b := stats.CategoryBreakdown[i], stats.CategoryBreakdown[j]
		if !a.Amount.Equal(b.Amount) {
			return a.Amount.GreaterThan(b.Amount)
		}
		return a.Category < b.Category
	})
	stats.InventoryValue = stats.InventoryValue.Round(2)

	// builds arrive oldest first
	for _, b := range builds {
		month := b.CreatedAt.UTC().Format("2006-01")
		last := len(stats.MonthlySpend) - 1
		if last >= 0 && stats.MonthlySpend[last].Month == month {
			stats.MonthlySpend[last].Amount = stats.MonthlySpend[last].Amount.Add(b.TotalCost)
			continue
		}
		stats.MonthlySpend = append(stats.MonthlySpend, MonthlySpend{Month: month, Amount: b.TotalCost})
	}

	return stats, nil
}

func mapNotFound(err error, otherwise string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.New(apperrors.CodeNotFound, "Team not found")
	}
	return apperrors.Wrap(apperrors.CodeInternal, err, otherwise)
}
