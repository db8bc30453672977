package dto

// ── dashboard ──

// TrendRequest query of the trend endpoints
type TrendRequest struct {
	Days *int `form:"days" binding:"omitempty,min=0"`
}

// TopDonorsRequest query of GET /dashboard/top-donors
type TopDonorsRequest struct {
	Limit *int `form:"limit" binding:"omitempty,min=0"`
}

// OverviewResponse body of GET /dashboard/overview
type OverviewResponse struct {
	Financial OverviewFinancial `json:"financial"`
	Donations OverviewDonations `json:"donations"`
	Donors    OverviewDonors    `json:"donors"`
	Inventory OverviewInventory `json:"inventory"`
	Staff     OverviewStaff     `json:"staff"`
}

// OverviewFinancial ledger totals
type OverviewFinancial struct {
	TotalIncome  float64 `json:"total_income"`
	TotalExpense float64 `json:"total_expense"`
	Net          float64 `json:"net"`
}

// OverviewDonations donation totals
type OverviewDonations struct {
	TotalAmount float64 `json:"total_amount"`
	Count       int     `json:"count"`
}

// OverviewDonors donor count
type OverviewDonors struct {
	Count int `json:"count"`
}

// OverviewInventory stock counts
type OverviewInventory struct {
	TotalItems    int `json:"total_items"`
	LowStockCount int `json:"low_stock_count"`
}

// OverviewStaff active staff count
type OverviewStaff struct {
	ActiveCount int `json:"active_count"`
}

// FinancialTrendPoint ledger totals of one day
type FinancialTrendPoint struct {
	Date    string  `json:"date"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
}

// FinancialTrendResponse body of GET /dashboard/financial-trends
type FinancialTrendResponse struct {
	Trends []FinancialTrendPoint `json:"trends"`
}

// DonationTrendPoint donation totals of one day
type DonationTrendPoint struct {
	Date   string  `json:"date"`
	Count  int     `json:"count"`
	Amount float64 `json:"amount"`
}

// DonationTrendResponse body of GET /dashboard/donation-trends
type DonationTrendResponse struct {
	Trends []DonationTrendPoint `json:"trends"`
}

// TopDonor one ranked donor
type TopDonor struct {
	ID             uint    `json:"id"`
	Name           string  `json:"name"`
	TotalDonations float64 `json:"total_donations"`
	DonationCount  int     `json:"donation_count"`
	Region         *string `json:"region"`
	Age            *int    `json:"age"`
}

// TopDonorsResponse body of GET /dashboard/top-donors
type TopDonorsResponse struct {
	TopDonors []TopDonor `json:"top_donors"`
}

// ExpenseBreakdownResponse body of GET /dashboard/expense-breakdown
type ExpenseBreakdownResponse struct {
	Breakdown map[string]float64 `json:"breakdown"`
}
