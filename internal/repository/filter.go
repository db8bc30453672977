package repository

import (
	"gorm.io/gorm"

	"eldercare-mis/internal/model"
)

// DateRange inclusive bounds on a date column; nil bounds are open
type DateRange struct {
	From *model.Date
	To   *model.Date
}

func (d DateRange) apply(db *gorm.DB, column string) *gorm.DB {
	if d.From != nil {
		db = db.Where(column+" >= ?", *d.From)
	}
	if d.To != nil {
		db = db.Where(column+" <= ?", *d.To)
	}
	return db
}

// FinancialRecordFilter list filter for financial records
type FinancialRecordFilter struct {
	Type string
	DateRange
}

// ExpenseFilter list filter for expenses
type ExpenseFilter struct {
	Type string
	DateRange
}

// DonationFilter list filter for donations
type DonationFilter struct {
	Status  string
	DonorID *uint
	Since   *model.Date
}

// StaffFilter list filter for staff
type StaffFilter struct {
	Status string
	Role   string
}

// AttendanceFilter list filter for attendance
type AttendanceFilter struct {
	StaffID *uint
	DateRange
}
