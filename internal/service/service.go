package service

import (
	"go.uber.org/zap"

	"eldercare-mis/config"
	"eldercare-mis/internal/repository"
)

// Service aggregate of every service
type Service struct {
	Financial FinancialService
	Donation  DonationService
	Inventory InventoryService
	Staff     StaffService
	Dashboard DashboardService
	Export    ExportService
}

// NewService builds the aggregate
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	logger *zap.Logger,
) *Service {
	return &Service{
		Financial: NewFinancialService(repo, logger),
		Donation:  NewDonationService(repo, logger),
		Inventory: NewInventoryService(repo, logger),
		Staff:     NewStaffService(repo, logger),
		Dashboard: NewDashboardService(repo, cfg.Report, logger),
		Export:    NewExportService(repo, logger),
	}
}
