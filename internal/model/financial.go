package model

import "github.com/shopspring/decimal"

// Ledger transaction types. Income and Donation are income-class; every
// other type counts as expense.
const (
	TransactionIncome   = "Income"
	TransactionExpense  = "Expense"
	TransactionDonation = "Donation"
)

// IsIncomeType reports whether a transaction type counts as income
func IsIncomeType(transactionType string) bool {
	return transactionType == TransactionIncome || transactionType == TransactionDonation
}

// FinancialRecord general ledger entry (table financial_record)
type FinancialRecord struct {
	FinancialRecordID uint            `gorm:"primaryKey"                  json:"id"`
	TransactionDate   Date            `gorm:"not null;index"              json:"date"`
	TransactionType   string          `gorm:"type:varchar(50);not null;index" json:"type"`
	AccountCode       *string         `gorm:"type:varchar(50)"            json:"account_code"`
	Amount            decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	Description       *string         `gorm:"type:text"                   json:"description"`
}

// TableName table name
func (FinancialRecord) TableName() string { return "financial_record" }

// ExpenseTypeOther label for expenses without a type
const ExpenseTypeOther = "Other"

// Expense operating expense (table expense)
type Expense struct {
	ExpenseID   uint            `gorm:"primaryKey"                  json:"id"`
	Date        Date            `gorm:"not null"                    json:"date"`
	Type        string          `gorm:"type:varchar(100);not null"  json:"type"`
	Amount      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	Description *string         `gorm:"type:text"                   json:"description"`
	StaffID     *uint           `json:"staff_id"`

	Staff *Staff `gorm:"foreignKey:StaffID;references:StaffID" json:"-"`
}

// TableName table name
func (Expense) TableName() string { return "expense" }

// LedgerLinks the source entities a financial record is linked to
type LedgerLinks struct {
	FinancialRecordID uint
	DonationIDs       []uint
	PurchaseOrderIDs  []uint
	PayrollRecordIDs  []uint
}
