package handler

import (
	"github.com/gin-gonic/gin"

	"eldercare-mis/internal/dto"
	"eldercare-mis/internal/service"
	"eldercare-mis/pkg/response"
)

// FinancialHandler ledger and expense endpoints
type FinancialHandler struct {
	finSvc service.FinancialService
}

// NewFinancialHandler creates a FinancialHandler
func NewFinancialHandler(finSvc service.FinancialService) *FinancialHandler {
	return &FinancialHandler{finSvc: finSvc}
}

// ListRecords GET /api/financial/records?type&start_date&end_date
func (h *FinancialHandler) ListRecords(c *gin.Context) {
	var req dto.FinancialRecordListRequest
	if !bindQuery(c, &req) {
		return
	}

	records, err := h.finSvc.ListRecords(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, "Financial records retrieved successfully", records)
}

// GetRecord GET /api/financial/records/:id
func (h *FinancialHandler) GetRecord(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	record, err := h.finSvc.GetRecord(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, "Financial record retrieved successfully", record)
}

// CreateRecord POST /api/financial/records
func (h *FinancialHandler) CreateRecord(c *gin.Context) {
	var req dto.CreateFinancialRecordRequest
	if !bindJSON(c, &req) {
		return
	}

	record, err := h.finSvc.CreateRecord(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Created(c, "Financial record created successfully", record)
}

// UpdateRecord PUT /api/financial/records/:id
func (h *FinancialHandler) UpdateRecord(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.UpdateFinancialRecordRequest
	if !bindJSON(c, &req) {
		return
	}

	record, err := h.finSvc.UpdateRecord(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, "Financial record updated successfully", record)
}

// GetRecordLinks GET /api/financial/records/:id/links
func (h *FinancialHandler) GetRecordLinks(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	links, err := h.finSvc.GetRecordLinks(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, "Financial record links retrieved successfully", links)
}

// Summary GET /api/financial/summary?start_date&end_date
func (h *FinancialHandler) Summary(c *gin.Context) {
	var req dto.DateRangeQuery
	if !bindQuery(c, &req) {
		return
	}

	summary, err := h.finSvc.Summary(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, "Financial summary retrieved successfully", summary)
}

// ── expenses ──

// ListExpenses GET /api/financial/expenses?type&start_date&end_date
func (h *FinancialHandler) ListExpenses(c *gin.Context) {
	var req dto.ExpenseListRequest
	if !bindQuery(c, &req) {
		return
	}

	expenses, err := h.finSvc.ListExpenses(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, "Expenses retrieved successfully", expenses)
}

// CreateExpense POST /api/financial/expenses
func (h *FinancialHandler) CreateExpense(c *gin.Context) {
	var req dto.CreateExpenseRequest
	if !bindJSON(c, &req) {
		return
	}

	expense, err := h.finSvc.CreateExpense(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Created(c, "Expense created successfully", expense)
}
