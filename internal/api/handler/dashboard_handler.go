package handler

import (
	"github.com/gin-gonic/gin"

	"eldercare-mis/internal/dto"
	"eldercare-mis/internal/service"
	"eldercare-mis/pkg/response"
)

// DashboardHandler aggregate report endpoints
type DashboardHandler struct {
	dashSvc service.DashboardService
}

// NewDashboardHandler creates a DashboardHandler
func NewDashboardHandler(dashSvc service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashSvc: dashSvc}
}

// Overview GET /api/dashboard/overview
func (h *DashboardHandler) Overview(c *gin.Context) {
	overview, err := h.dashSvc.Overview(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, "Dashboard overview retrieved successfully", overview)
}

// FinancialTrends GET /api/dashboard/financial-trends?days
func (h *DashboardHandler) FinancialTrends(c *gin.Context) {
	var req dto.TrendRequest
	if !bindQuery(c, &req) {
		return
	}

	trends, err := h.dashSvc.FinancialTrends(c.Request.Context(), req.Days)
	if err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, "Financial trends retrieved successfully", trends)
}

// DonationTrends GET /api/dashboard/donation-trends?days
func (h *DashboardHandler) DonationTrends(c *gin.Context) {
	var req dto.TrendRequest
	if !bindQuery(c, &req) {
		return
	}

	trends, err := h.dashSvc.DonationTrends(c.Request.Context(), req.Days)
	if err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, "Donation trends retrieved successfully", trends)
}

// TopDonors GET /api/dashboard/top-donors?limit
func (h *DashboardHandler) TopDonors(c *gin.Context) {
	var req dto.TopDonorsRequest
	if !bindQuery(c, &req) {
		return
	}

	top, err := h.dashSvc.TopDonors(c.Request.Context(), req.Limit)
	if err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, "Top donors retrieved successfully", top)
}

// ExpenseBreakdown GET /api/dashboard/expense-breakdown
func (h *DashboardHandler) ExpenseBreakdown(c *gin.Context) {
	breakdown, err := h.dashSvc.ExpenseBreakdown(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, "Expense breakdown retrieved successfully", breakdown)
}
