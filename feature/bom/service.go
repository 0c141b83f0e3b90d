package bom

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	apperrors "team-inventory/core/errors"
	"team-inventory/core/lock"
	"team-inventory/core/metrics"
	"team-inventory/core/reconcile"
	"team-inventory/feature/inventory"
	invmodels "team-inventory/feature/inventory/models"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Deps are the collaborators of the BOM service.
type Deps struct {
	DB      *gorm.DB
	Spend   SpendIncrementer
	Locker  lock.Locker
	Metrics *metrics.BOMMetrics
	// Archiver may be nil.
	Archiver *Archiver
	Logger   *zap.Logger
}

// Service runs BOM uploads and serves the build history.
type Service struct {
	db       *gorm.DB
	builds   Repository
	parts    inventory.Repository
	spend    SpendIncrementer
	locker   lock.Locker
	metrics  *metrics.BOMMetrics
	archiver *Archiver
	logger   *zap.Logger
}

func NewService(deps Deps) *Service {
	locker := deps.Locker
	if locker == nil {
		locker = lock.NewLocalLocker()
	}
	l := deps.Logger
	if l == nil {
		l = zap.NewNop()
	}
	return &Service{
		db:       deps.DB,
		builds:   NewRepository(deps.DB),
		parts:    inventory.NewRepository(deps.DB),
		spend:    deps.Spend,
		locker:   locker,
		metrics:  deps.Metrics,
		archiver: deps.Archiver,
		logger:   l,
	}
}

func lockKey(teamID uint) string {
	return fmt.Sprintf("bom:team:%d", teamID)
}

// Upload reconciles a BOM against the team's inventory and records the build.
// Runs of one team are serialized and each run commits or rolls back as a whole.
func (s *Service) Upload(ctx context.Context, teamID uint, teamNumber string, req UploadRequest) (*reconcile.Report, error) {
	lines := CleanLines(req.Lines)
	if len(lines) == 0 {
		return nil, apperrors.New(apperrors.CodeValidation, "BOM contains no valid parts")
	}
	name := strings.TrimSpace(req.BuildName)
	if name == "" {
		name = DefaultBuildName
	}
	opts := reconcile.Options{Simulate: req.Simulate}

	start := time.Now()
	plan, err := s.run(ctx, teamID, name, lines, opts)
	s.metrics.ObserveRun(opts.Mode(), outcome(err), time.Since(start))
	if err != nil {
		return nil, err
	}

	for _, r := range plan.Report.Results {
		s.metrics.AddLine(string(r.Status))
	}
	for _, a := range plan.Report.Alerts {
		s.metrics.AddAlert(string(a.Type))
	}

	s.logger.Info("BOM processed",
		zap.Uint("teamId", teamID),
		zap.Uint("buildId", plan.Report.BuildID),
		zap.String("mode", opts.Mode()),
		zap.Int("lines", len(lines)),
		zap.Int("alerts", len(plan.Report.Alerts)),
		zap.String("totalCost", plan.TotalCost.StringFixed(2)),
	)

	if s.archiver != nil {
		if err := s.archiver.Store(ctx, teamNumber, req.RawCSV, lines, &plan.Report); err != nil {
			s.logger.Warn("Failed to archive BOM", zap.Uint("buildId", plan.Report.BuildID), zap.Error(err))
		}
	}

	return &plan.Report, nil
}

func (s *Service) run(ctx context.Context, teamID uint, name string, lines []reconcile.Line, opts reconcile.Options) (*reconcile.Plan, error) {
	release, err := s.locker.Lock(ctx, lockKey(teamID))
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeDependency, err, "failed to acquire BOM lock")
	}
	defer release()

	var plan *reconcile.Plan
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		snapshot, err := s.parts.WithTx(tx).Snapshot(ctx, teamID)
		if err != nil {
			return apperrors.Wrap(apperrors.CodeInternal, err, "failed to load inventory")
		}
		plan = reconcile.Reconcile(lines, snapshot, opts)
		ledger := newLedger(tx, s.builds, s.parts, s.spend)
		if _, err := reconcile.Apply(ctx, ledger, teamID, name, plan); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		var appErr *apperrors.Error
		if errors.As(err, &appErr) {
			return nil, err
		}
		return nil, apperrors.Wrap(apperrors.CodeInternal, err, "failed to process BOM")
	}
	return plan, nil
}

func outcome(err error) string {
	if err != nil {
		return metrics.OutcomeFailure
	}
	return metrics.OutcomeSuccess
}

// ListBuilds returns the team's builds newest first.
func (s *Service) ListBuilds(ctx context.Context, teamID uint) ([]BuildSummary, error) {
	rows, err := s.builds.List(ctx, teamID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeInternal, err, "failed to list builds")
	}
	out := make([]BuildSummary, len(rows))
	for i, r := range rows {
		out[i] = BuildSummary{
			ID:        r.ID,
			Name:      r.Name,
			Timestamp: r.CreatedAt,
			Status:    r.Status,
			PartCount: r.PartCount,
			TotalCost: r.TotalCost,
		}
	}
	return out, nil
}

// GetBuild returns one build with its lines priced at today's inventory.
func (s *Service) GetBuild(ctx context.Context, teamID, buildID uint) (*BuildDetail, error) {
	build, err := s.builds.Find(ctx, teamID, buildID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.CodeNotFound, "Build not found")
		}
		return nil, apperrors.Wrap(apperrors.CodeInternal, err, "failed to load build")
	}
	parts, err := s.parts.List(ctx, teamID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeInternal, err, "failed to load inventory")
	}
	byNumber := make(map[string]invmodels.Part, len(parts))
	for _, p := range parts {
		byNumber[p.PartNumber] = p
	}

	detail := &BuildDetail{
		BuildSummary: BuildSummary{
			ID:        build.ID,
			Name:      build.Name,
			Timestamp: build.CreatedAt,
			Status:    build.Status,
			PartCount: len(build.Parts),
			TotalCost: build.TotalCost,
		},
		Parts: make([]BuildPartDetail, 0, len(build.Parts)),
	}
	for _, bp := range build.Parts {
		d := BuildPartDetail{
			PartNumber: bp.PartNumber,
			Quantity:   bp.Quantity,
			Name:       bp.Name,
			Category:   "N/A",
			UnitPrice:  decimal.Zero,
		}
		if p, ok := byNumber[bp.PartNumber]; ok {
			stock := p.InStock
			d.InStock = &stock
			d.Category = p.Category
			d.UnitPrice = p.UnitPrice
			if p.Name != "" {
				d.Name = p.Name
			}
		}
		if d.Name == "" {
			d.Name = "Unknown"
		}
		d.TotalPrice = d.UnitPrice.Mul(decimal.NewFromInt(int64(bp.Quantity))).Round(2)
		detail.Parts = append(detail.Parts, d)
	}
	return detail, nil
}

// BuildBOM returns the archived BOM of one build as CSV.
func (s *Service) BuildBOM(ctx context.Context, teamID uint, teamNumber string, buildID uint) ([]byte, error) {
	if _, err := s.builds.Find(ctx, teamID, buildID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.New(apperrors.CodeNotFound, "Build not found")
		}
		return nil, apperrors.Wrap(apperrors.CodeInternal, err, "failed to load build")
	}
	if s.archiver == nil {
		return nil, apperrors.New(apperrors.CodeNotFound, "BOM archive is disabled")
	}
	body, err := s.archiver.Fetch(ctx, teamNumber, buildID)
	if err != nil {
		if errors.Is(err, ErrNotArchived) {
			return nil, apperrors.New(apperrors.CodeNotFound, "BOM not archived")
		}
		return nil, apperrors.Wrap(apperrors.CodeDependency, err, "failed to download BOM")
	}
	return body, nil
}
