package dto

import "github.com/shopspring/decimal"

// ── financial records ──

// DateRangeQuery optional inclusive date window, YYYY-MM-DD
type DateRangeQuery struct {
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
}

// FinancialRecordListRequest query of GET /financial/records
type FinancialRecordListRequest struct {
	Type string `form:"type"`
	DateRangeQuery
}

// CreateFinancialRecordRequest body of POST /financial/records
type CreateFinancialRecordRequest struct {
	Date        *string          `json:"date"`
	Type        *string          `json:"type"`
	AccountCode *string          `json:"account_code"`
	Amount      *decimal.Decimal `json:"amount"`
	Description *string          `json:"description"`
}

// UpdateFinancialRecordRequest body of PUT /financial/records/:id
type UpdateFinancialRecordRequest struct {
	Date        *string          `json:"date"`
	Type        *string          `json:"type"`
	AccountCode *string          `json:"account_code"`
	Amount      *decimal.Decimal `json:"amount"`
	Description *string          `json:"description"`
}

// FinancialRecordResponse a ledger entry
type FinancialRecordResponse struct {
	ID          uint    `json:"id"`
	Date        string  `json:"date"`
	Type        string  `json:"type"`
	Amount      float64 `json:"amount"`
	AccountCode *string `json:"account_code"`
	Description *string `json:"description"`
}

// LedgerLinksResponse source entities behind a ledger entry
type LedgerLinksResponse struct {
	FinancialRecordID uint   `json:"financial_record_id"`
	DonationIDs       []uint `json:"donation_ids"`
	PurchaseOrderIDs  []uint `json:"purchase_order_ids"`
	PayrollRecordIDs  []uint `json:"payroll_record_ids"`
}

// FinancialSummaryResponse totals of GET /financial/summary
type FinancialSummaryResponse struct {
	ByType       map[string]float64 `json:"by_type"`
	TotalIncome  float64            `json:"total_income"`
	TotalExpense float64            `json:"total_expense"`
	Net          float64            `json:"net"`
}

// ── expenses ──

// ExpenseListRequest query of GET /financial/expenses
type ExpenseListRequest struct {
	Type string `form:"type"`
	DateRangeQuery
}

// CreateExpenseRequest body of POST /financial/expenses
type CreateExpenseRequest struct {
	Date        *string          `json:"date"`
	Type        *string          `json:"type"`
	Amount      *decimal.Decimal `json:"amount"`
	Description *string          `json:"description"`
	StaffID     *uint            `json:"staff_id"`
}

// ExpenseResponse an operating expense
type ExpenseResponse struct {
	ID          uint    `json:"id"`
	Date        string  `json:"date"`
	Type        string  `json:"type"`
	Amount      float64 `json:"amount"`
	Description *string `json:"description"`
	StaffID     *uint   `json:"staff_id"`
}
