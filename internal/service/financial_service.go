package service

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"eldercare-mis/internal/dto"
	"eldercare-mis/internal/model"
	"eldercare-mis/internal/repository"
	pkgerrors "eldercare-mis/pkg/errors"
)

// FinancialService ledger and expense operations
type FinancialService interface {
	ListRecords(ctx context.Context, req *dto.FinancialRecordListRequest) ([]dto.FinancialRecordResponse, error)
	GetRecord(ctx context.Context, id uint) (*dto.FinancialRecordResponse, error)
	CreateRecord(ctx context.Context, req *dto.CreateFinancialRecordRequest) (*dto.FinancialRecordResponse, error)
	UpdateRecord(ctx context.Context, id uint, req *dto.UpdateFinancialRecordRequest) (*dto.FinancialRecordResponse, error)
	GetRecordLinks(ctx context.Context, id uint) (*dto.LedgerLinksResponse, error)
	Summary(ctx context.Context, req *dto.DateRangeQuery) (*dto.FinancialSummaryResponse, error)

	ListExpenses(ctx context.Context, req *dto.ExpenseListRequest) ([]dto.ExpenseResponse, error)
	CreateExpense(ctx context.Context, req *dto.CreateExpenseRequest) (*dto.ExpenseResponse, error)
}

type financialService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewFinancialService creates a FinancialService
func NewFinancialService(repo *repository.Repository, logger *zap.Logger) FinancialService {
	return &financialService{repo: repo, logger: logger}
}

// ────────────────────── Records ──────────────────────

func (s *financialService) ListRecords(ctx context.Context, req *dto.FinancialRecordListRequest) ([]dto.FinancialRecordResponse, error) {
	dr, err := queryRange(req.DateRangeQuery)
	if err != nil {
		return nil, err
	}

	records, err := s.repo.FinancialRecord.List(ctx, repository.FinancialRecordFilter{Type: req.Type, DateRange: dr})
	if err != nil {
		s.logger.Error("list financial records failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.FinancialRecordResponse, 0, len(records))
	for i := range records {
		result = append(result, toFinancialRecordResponse(&records[i]))
	}
	return result, nil
}

func (s *financialService) GetRecord(ctx context.Context, id uint) (*dto.FinancialRecordResponse, error) {
	rec, err := s.getRecord(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toFinancialRecordResponse(rec)
	return &resp, nil
}

func (s *financialService) CreateRecord(ctx context.Context, req *dto.CreateFinancialRecordRequest) (*dto.FinancialRecordResponse, error) {
	if req.Amount == nil || req.Amount.IsZero() {
		return nil, pkgerrors.InvalidFields("Amount is required", map[string]string{"amount": "required"})
	}
	date, err := dateOrDefault(req.Date, model.Today())
	if err != nil {
		return nil, err
	}

	rec := &model.FinancialRecord{
		TransactionDate: date,
		TransactionType: stringOr(req.Type, model.TransactionExpense),
		AccountCode:     req.AccountCode,
		Amount:          cents(*req.Amount),
		Description:     req.Description,
	}
	if err := s.repo.FinancialRecord.Create(ctx, rec); err != nil {
		s.logger.Error("create financial record failed", zap.Error(err))
		return nil, err
	}

	resp := toFinancialRecordResponse(rec)
	return &resp, nil
}

// UpdateRecord overwrites only the fields present in req. Linked source
// entities are left alone.
func (s *financialService) UpdateRecord(ctx context.Context, id uint, req *dto.UpdateFinancialRecordRequest) (*dto.FinancialRecordResponse, error) {
	rec, err := s.getRecord(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Date != nil {
		d, err := parseDate(*req.Date)
		if err != nil {
			return nil, err
		}
		rec.TransactionDate = d
	}
	if req.Type != nil {
		rec.TransactionType = *req.Type
	}
	if req.Amount != nil {
		rec.Amount = cents(*req.Amount)
	}
	if req.AccountCode != nil {
		rec.AccountCode = req.AccountCode
	}
	if req.Description != nil {
		rec.Description = req.Description
	}

	if err := s.repo.FinancialRecord.Update(ctx, rec); err != nil {
		s.logger.Error("update financial record failed", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	resp := toFinancialRecordResponse(rec)
	return &resp, nil
}

func (s *financialService) GetRecordLinks(ctx context.Context, id uint) (*dto.LedgerLinksResponse, error) {
	if _, err := s.getRecord(ctx, id); err != nil {
		return nil, err
	}

	links, err := s.repo.FinancialRecord.GetLinks(ctx, id)
	if err != nil {
		s.logger.Error("load ledger links failed", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	return &dto.LedgerLinksResponse{
		FinancialRecordID: links.FinancialRecordID,
		DonationIDs:       nonNilIDs(links.DonationIDs),
		PurchaseOrderIDs:  nonNilIDs(links.PurchaseOrderIDs),
		PayrollRecordIDs:  nonNilIDs(links.PayrollRecordIDs),
	}, nil
}

func (s *financialService) Summary(ctx context.Context, req *dto.DateRangeQuery) (*dto.FinancialSummaryResponse, error) {
	dr, err := queryRange(*req)
	if err != nil {
		return nil, err
	}

	records, err := s.repo.FinancialRecord.List(ctx, repository.FinancialRecordFilter{DateRange: dr})
	if err != nil {
		s.logger.Error("load financial records for summary failed", zap.Error(err))
		return nil, err
	}

	sum := SummarizeLedger(records)
	resp := &dto.FinancialSummaryResponse{
		ByType:       make(map[string]float64, len(sum.ByType)),
		TotalIncome:  money(sum.Income),
		TotalExpense: money(sum.Expense),
		Net:          money(sum.Net()),
	}
	for t, amt := range sum.ByType {
		resp.ByType[t] = money(amt)
	}
	return resp, nil
}

// ────────────────────── Expenses ──────────────────────

func (s *financialService) ListExpenses(ctx context.Context, req *dto.ExpenseListRequest) ([]dto.ExpenseResponse, error) {
	dr, err := queryRange(req.DateRangeQuery)
	if err != nil {
		return nil, err
	}

	expenses, err := s.repo.Expense.List(ctx, repository.ExpenseFilter{Type: req.Type, DateRange: dr})
	if err != nil {
		s.logger.Error("list expenses failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.ExpenseResponse, 0, len(expenses))
	for i := range expenses {
		result = append(result, toExpenseResponse(&expenses[i]))
	}
	return result, nil
}

func (s *financialService) CreateExpense(ctx context.Context, req *dto.CreateExpenseRequest) (*dto.ExpenseResponse, error) {
	date, err := dateOrDefault(req.Date, model.Today())
	if err != nil {
		return nil, err
	}

	e := &model.Expense{
		Date:        date,
		Type:        stringOr(req.Type, model.ExpenseTypeOther),
		Amount:      decimalOrZero(req.Amount),
		Description: req.Description,
		StaffID:     req.StaffID,
	}
	if err := s.repo.Expense.Create(ctx, e); err != nil {
		s.logger.Error("create expense failed", zap.Error(err))
		return nil, err
	}

	resp := toExpenseResponse(e)
	return &resp, nil
}

// ── helpers ──

func (s *financialService) getRecord(ctx context.Context, id uint) (*model.FinancialRecord, error) {
	rec, err := s.repo.FinancialRecord.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.NotFound("Financial record", id)
		}
		s.logger.Error("get financial record failed", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return rec, nil
}

func toFinancialRecordResponse(r *model.FinancialRecord) dto.FinancialRecordResponse {
	return dto.FinancialRecordResponse{
		ID:          r.FinancialRecordID,
		Date:        r.TransactionDate.String(),
		Type:        r.TransactionType,
		Amount:      money(r.Amount),
		AccountCode: r.AccountCode,
		Description: r.Description,
	}
}

func toExpenseResponse(e *model.Expense) dto.ExpenseResponse {
	return dto.ExpenseResponse{
		ID:          e.ExpenseID,
		Date:        e.Date.String(),
		Type:        e.Type,
		Amount:      money(e.Amount),
		Description: e.Description,
		StaffID:     e.StaffID,
	}
}

func nonNilIDs(ids []uint) []uint {
	if ids == nil {
		return []uint{}
	}
	return ids
}
