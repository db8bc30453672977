package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repository aggregate of every repository
type Repository struct {
	db *gorm.DB

	Staff             StaffRepository
	Attendance        AttendanceRepository
	Schedule          ScheduleRepository
	PerformanceReview PerformanceReviewRepository
	Payroll           PayrollRepository
	Donor             DonorRepository
	Gift              GiftRepository
	Donation          DonationRepository
	FinancialRecord   FinancialRecordRepository
	Expense           ExpenseRepository
	Inventory         InventoryRepository
	DemandPlan        DemandPlanRepository
	Supplier          SupplierRepository
	PurchaseOrder     PurchaseOrderRepository
	Access            AccessRepository
}

// NewRepository builds the aggregate over db
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		db:                db,
		Staff:             NewStaffRepo(db),
		Attendance:        NewAttendanceRepo(db),
		Schedule:          NewScheduleRepo(db),
		PerformanceReview: NewPerformanceReviewRepo(db),
		Payroll:           NewPayrollRepo(db),
		Donor:             NewDonorRepo(db),
		Gift:              NewGiftRepo(db),
		Donation:          NewDonationRepo(db),
		FinancialRecord:   NewFinancialRecordRepo(db),
		Expense:           NewExpenseRepo(db),
		Inventory:         NewInventoryRepo(db),
		DemandPlan:        NewDemandPlanRepo(db),
		Supplier:          NewSupplierRepo(db),
		PurchaseOrder:     NewPurchaseOrderRepo(db),
		Access:            NewAccessRepo(db),
	}
}

// WithTx returns an aggregate whose repositories all run on tx
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return NewRepository(tx)
}

// Transaction runs fn as one unit of work: committed when fn returns nil,
// rolled back on error or panic. An aggregate without a database handle
// (assembled from mocks) runs fn directly.
func (r *Repository) Transaction(ctx context.Context, fn func(txRepo *Repository) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(r.WithTx(tx))
	})
}

// Ping checks the underlying connection
func (r *Repository) Ping(ctx context.Context) error {
	if r.db == nil {
		return nil
	}
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
