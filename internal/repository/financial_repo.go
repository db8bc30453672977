package repository

import (
	"context"

	"gorm.io/gorm"

	"eldercare-mis/internal/model"
)

// FinancialRecordRepository ledger data access
type FinancialRecordRepository interface {
	Create(ctx context.Context, rec *model.FinancialRecord) error
	GetByID(ctx context.Context, id uint) (*model.FinancialRecord, error)
	List(ctx context.Context, filter FinancialRecordFilter) ([]model.FinancialRecord, error)
	Update(ctx context.Context, rec *model.FinancialRecord) error

	LinkDonation(ctx context.Context, donationID, recordID uint) error
	LinkPurchaseOrder(ctx context.Context, orderID, recordID uint) error
	LinkPayroll(ctx context.Context, payrollID, recordID uint) error
	GetLinks(ctx context.Context, recordID uint) (*model.LedgerLinks, error)
}

type financialRecordRepo struct {
	db *gorm.DB
}

// NewFinancialRecordRepo creates a FinancialRecordRepository
func NewFinancialRecordRepo(db *gorm.DB) FinancialRecordRepository {
	return &financialRecordRepo{db: db}
}

func (r *financialRecordRepo) Create(ctx context.Context, rec *model.FinancialRecord) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *financialRecordRepo) GetByID(ctx context.Context, id uint) (*model.FinancialRecord, error) {
	var rec model.FinancialRecord
	err := r.db.WithContext(ctx).
		Where("financial_record_id = ?", id).
		First(&rec).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *financialRecordRepo) List(ctx context.Context, filter FinancialRecordFilter) ([]model.FinancialRecord, error) {
	var list []model.FinancialRecord
	db := r.db.WithContext(ctx)

	if filter.Type != "" {
		db = db.Where("transaction_type = ?", filter.Type)
	}
	db = filter.DateRange.apply(db, "transaction_date")

	err := db.Order("transaction_date DESC, financial_record_id DESC").Find(&list).Error
	return list, err
}

func (r *financialRecordRepo) Update(ctx context.Context, rec *model.FinancialRecord) error {
	return r.db.WithContext(ctx).Save(rec).Error
}

// ── ledger links ──

func (r *financialRecordRepo) LinkDonation(ctx context.Context, donationID, recordID uint) error {
	return r.db.WithContext(ctx).Create(&model.DonationFinancialRecord{
		DonationID:        donationID,
		FinancialRecordID: recordID,
	}).Error
}

func (r *financialRecordRepo) LinkPurchaseOrder(ctx context.Context, orderID, recordID uint) error {
	return r.db.WithContext(ctx).Create(&model.PurchaseOrderFinancialRecord{
		PurchaseOrderID:   orderID,
		FinancialRecordID: recordID,
	}).Error
}

func (r *financialRecordRepo) LinkPayroll(ctx context.Context, payrollID, recordID uint) error {
	return r.db.WithContext(ctx).Create(&model.PayrollFinancialRecord{
		PayrollRecordID:   payrollID,
		FinancialRecordID: recordID,
	}).Error
}

func (r *financialRecordRepo) GetLinks(ctx context.Context, recordID uint) (*model.LedgerLinks, error) {
	links := &model.LedgerLinks{FinancialRecordID: recordID}
	db := r.db.WithContext(ctx)

	if err := db.Model(&model.DonationFinancialRecord{}).
		Where("financial_record_id = ?", recordID).
		Order("donation_id").
		Pluck("donation_id", &links.DonationIDs).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&model.PurchaseOrderFinancialRecord{}).
		Where("financial_record_id = ?", recordID).
		Order("purchase_order_id").
		Pluck("purchase_order_id", &links.PurchaseOrderIDs).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&model.PayrollFinancialRecord{}).
		Where("financial_record_id = ?", recordID).
		Order("payroll_record_id").
		Pluck("payroll_record_id", &links.PayrollRecordIDs).Error; err != nil {
		return nil, err
	}
	return links, nil
}

// ── expense ──

// ExpenseRepository expense data access
type ExpenseRepository interface {
	Create(ctx context.Context, e *model.Expense) error
	List(ctx context.Context, filter ExpenseFilter) ([]model.Expense, error)
}

type expenseRepo struct {
	db *gorm.DB
}

// NewExpenseRepo creates an ExpenseRepository
func NewExpenseRepo(db *gorm.DB) ExpenseRepository {
	return &expenseRepo{db: db}
}

func (r *expenseRepo) Create(ctx context.Context, e *model.Expense) error {
	return r.db.WithContext(ctx).Omit("Staff").Create(e).Error
}

func (r *expenseRepo) List(ctx context.Context, filter ExpenseFilter) ([]model.Expense, error) {
	var list []model.Expense
	db := r.db.WithContext(ctx)

	if filter.Type != "" {
		db = db.Where("type = ?", filter.Type)
	}
	db = filter.DateRange.apply(db, "date")

	err := db.Order("date DESC, expense_id DESC").Find(&list).Error
	return list, err
}
