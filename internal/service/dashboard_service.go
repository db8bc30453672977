package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"eldercare-mis/config"
	"eldercare-mis/internal/dto"
	"eldercare-mis/internal/model"
	"eldercare-mis/internal/repository"
)

// DashboardService aggregate reports over full table scans
type DashboardService interface {
	Overview(ctx context.Context) (*dto.OverviewResponse, error)
	// FinancialTrends daily ledger totals over the trailing window; nil days
	// uses the configured default
	FinancialTrends(ctx context.Context, days *int) (*dto.FinancialTrendResponse, error)
	DonationTrends(ctx context.Context, days *int) (*dto.DonationTrendResponse, error)
	TopDonors(ctx context.Context, limit *int) (*dto.TopDonorsResponse, error)
	ExpenseBreakdown(ctx context.Context) (*dto.ExpenseBreakdownResponse, error)
}

type dashboardService struct {
	repo   *repository.Repository
	cfg    config.ReportConfig
	logger *zap.Logger
	now    func() time.Time
}

// NewDashboardService creates a DashboardService
func NewDashboardService(repo *repository.Repository, cfg config.ReportConfig, logger *zap.Logger) DashboardService {
	return &dashboardService{repo: repo, cfg: cfg, logger: logger, now: time.Now}
}

// ────────────────────── Overview ──────────────────────

func (s *dashboardService) Overview(ctx context.Context) (*dto.OverviewResponse, error) {
	records, err := s.repo.FinancialRecord.List(ctx, repository.FinancialRecordFilter{})
	if err != nil {
		s.logger.Error("overview: load financial records failed", zap.Error(err))
		return nil, err
	}
	donations, err := s.repo.Donation.List(ctx, repository.DonationFilter{})
	if err != nil {
		s.logger.Error("overview: load donations failed", zap.Error(err))
		return nil, err
	}
	donors, err := s.repo.Donor.List(ctx, "")
	if err != nil {
		s.logger.Error("overview: load donors failed", zap.Error(err))
		return nil, err
	}
	items, err := s.repo.Inventory.List(ctx)
	if err != nil {
		s.logger.Error("overview: load inventory failed", zap.Error(err))
		return nil, err
	}
	active, err := s.repo.Staff.List(ctx, repository.StaffFilter{Status: model.StaffStatusActive})
	if err != nil {
		s.logger.Error("overview: load staff failed", zap.Error(err))
		return nil, err
	}

	ledger := SummarizeLedger(records)

	donated := decimal.Zero
	for _, d := range donations {
		donated = donated.Add(d.Amount)
	}

	lowStock := 0
	for _, it := range items {
		if it.Quantity < s.cfg.LowStockThreshold {
			lowStock++
		}
	}

	return &dto.OverviewResponse{
		Financial: dto.OverviewFinancial{
			TotalIncome:  money(ledger.Income),
			TotalExpense: money(ledger.Expense),
			Net:          money(ledger.Net()),
		},
		Donations: dto.OverviewDonations{TotalAmount: money(donated), Count: len(donations)},
		Donors:    dto.OverviewDonors{Count: len(donors)},
		Inventory: dto.OverviewInventory{TotalItems: len(items), LowStockCount: lowStock},
		Staff:     dto.OverviewStaff{ActiveCount: len(active)},
	}, nil
}

// ────────────────────── Trends ──────────────────────

func (s *dashboardService) FinancialTrends(ctx context.Context, days *int) (*dto.FinancialTrendResponse, error) {
	since := s.windowStart(days)
	records, err := s.repo.FinancialRecord.List(ctx, repository.FinancialRecordFilter{
		DateRange: repository.DateRange{From: &since},
	})
	if err != nil {
		s.logger.Error("financial trends: load records failed", zap.Error(err))
		return nil, err
	}
	return &dto.FinancialTrendResponse{Trends: FinancialTrend(records)}, nil
}

func (s *dashboardService) DonationTrends(ctx context.Context, days *int) (*dto.DonationTrendResponse, error) {
	since := s.windowStart(days)
	donations, err := s.repo.Donation.List(ctx, repository.DonationFilter{Since: &since})
	if err != nil {
		s.logger.Error("donation trends: load donations failed", zap.Error(err))
		return nil, err
	}
	return &dto.DonationTrendResponse{Trends: DonationTrend(donations)}, nil
}

// windowStart first day of the trailing window: today (UTC) minus days
func (s *dashboardService) windowStart(days *int) model.Date {
	return model.DateOf(s.now().UTC()).AddDays(-intOr(days, s.cfg.TrendDays))
}

// ────────────────────── Rankings ──────────────────────

func (s *dashboardService) TopDonors(ctx context.Context, limit *int) (*dto.TopDonorsResponse, error) {
	donors, err := s.repo.Donor.List(ctx, "")
	if err != nil {
		s.logger.Error("top donors: load donors failed", zap.Error(err))
		return nil, err
	}
	return &dto.TopDonorsResponse{TopDonors: TopDonors(donors, intOr(limit, s.cfg.TopDonorLimit))}, nil
}

func (s *dashboardService) ExpenseBreakdown(ctx context.Context) (*dto.ExpenseBreakdownResponse, error) {
	expenses, err := s.repo.Expense.List(ctx, repository.ExpenseFilter{})
	if err != nil {
		s.logger.Error("expense breakdown: load expenses failed", zap.Error(err))
		return nil, err
	}
	return &dto.ExpenseBreakdownResponse{Breakdown: ExpenseBreakdown(expenses)}, nil
}
