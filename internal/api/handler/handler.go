package handler

import "eldercare-mis/internal/service"

// Handler aggregate of every handler
type Handler struct {
	Financial *FinancialHandler
	Donation  *DonationHandler
	Inventory *InventoryHandler
	Staff     *StaffHandler
	Dashboard *DashboardHandler
	Export    *ExportHandler
	Health    *HealthHandler
}

// NewHandler creates the Handler aggregate
func NewHandler(svc *service.Service, db Pinger) *Handler {
	return &Handler{
		Financial: NewFinancialHandler(svc.Financial),
		Donation:  NewDonationHandler(svc.Donation),
		Inventory: NewInventoryHandler(svc.Inventory),
		Staff:     NewStaffHandler(svc.Staff),
		Dashboard: NewDashboardHandler(svc.Dashboard),
		Export:    NewExportHandler(svc.Export),
		Health:    NewHealthHandler(db),
	}
}
