package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"eldercare-mis/internal/dto"
	"eldercare-mis/internal/model"
	"eldercare-mis/internal/repository"
	pkgerrors "eldercare-mis/pkg/errors"
)

// Attendance status assigned when the payload carries none
const AttendanceStatusPresent = "Present"

// StaffService staff records, attendance, schedules, reviews and payroll
type StaffService interface {
	ListStaff(ctx context.Context, req *dto.StaffListRequest) ([]dto.StaffResponse, error)
	GetStaff(ctx context.Context, id uint) (*dto.StaffResponse, error)
	CreateStaff(ctx context.Context, req *dto.CreateStaffRequest) (*dto.StaffResponse, error)
	UpdateStaff(ctx context.Context, id uint, req *dto.UpdateStaffRequest) (*dto.StaffResponse, error)

	ListAttendance(ctx context.Context, req *dto.AttendanceListRequest) ([]dto.AttendanceResponse, error)
	CreateAttendance(ctx context.Context, req *dto.CreateAttendanceRequest) (*dto.AttendanceResponse, error)

	ListSchedules(ctx context.Context, req *dto.StaffQuery) ([]dto.ScheduleResponse, error)
	CreateSchedule(ctx context.Context, req *dto.CreateScheduleRequest) (*dto.ScheduleResponse, error)

	ListReviews(ctx context.Context, req *dto.StaffQuery) ([]dto.PerformanceReviewResponse, error)
	CreateReview(ctx context.Context, req *dto.CreatePerformanceReviewRequest) (*dto.PerformanceReviewResponse, error)

	ListPayroll(ctx context.Context, req *dto.StaffQuery) ([]dto.PayrollResponse, error)
	GetPayroll(ctx context.Context, id uint) (*dto.PayrollResponse, error)
	CreatePayroll(ctx context.Context, req *dto.CreatePayrollRequest) (*dto.PayrollResponse, error)
}

type staffService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewStaffService creates a StaffService
func NewStaffService(repo *repository.Repository, logger *zap.Logger) StaffService {
	return &staffService{repo: repo, logger: logger}
}

// ────────────────────── Staff ──────────────────────

func (s *staffService) ListStaff(ctx context.Context, req *dto.StaffListRequest) ([]dto.StaffResponse, error) {
	list, err := s.repo.Staff.List(ctx, repository.StaffFilter{Status: req.Status, Role: req.Role})
	if err != nil {
		s.logger.Error("list staff failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.StaffResponse, 0, len(list))
	for i := range list {
		result = append(result, toStaffResponse(&list[i]))
	}
	return result, nil
}

func (s *staffService) GetStaff(ctx context.Context, id uint) (*dto.StaffResponse, error) {
	staff, err := s.getStaff(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toStaffResponse(staff)
	return &resp, nil
}

func (s *staffService) CreateStaff(ctx context.Context, req *dto.CreateStaffRequest) (*dto.StaffResponse, error) {
	staff := &model.Staff{
		Name:        req.Name,
		Role:        req.Role,
		ContactInfo: req.ContactInfo,
		Status:      stringOr(req.Status, model.StaffStatusActive),
	}
	if err := s.repo.Staff.Create(ctx, staff); err != nil {
		s.logger.Error("create staff failed", zap.Error(err))
		return nil, err
	}

	resp := toStaffResponse(staff)
	return &resp, nil
}

func (s *staffService) UpdateStaff(ctx context.Context, id uint, req *dto.UpdateStaffRequest) (*dto.StaffResponse, error) {
	staff, err := s.getStaff(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		staff.Name = *req.Name
	}
	if req.Role != nil {
		staff.Role = req.Role
	}
	if req.ContactInfo != nil {
		staff.ContactInfo = req.ContactInfo
	}
	if req.Status != nil {
		staff.Status = *req.Status
	}

	if err := s.repo.Staff.Update(ctx, staff); err != nil {
		s.logger.Error("update staff failed", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	resp := toStaffResponse(staff)
	return &resp, nil
}

// ────────────────────── Attendance ──────────────────────

func (s *staffService) ListAttendance(ctx context.Context, req *dto.AttendanceListRequest) ([]dto.AttendanceResponse, error) {
	dr, err := queryRange(req.DateRangeQuery)
	if err != nil {
		return nil, err
	}

	list, err := s.repo.Attendance.List(ctx, repository.AttendanceFilter{StaffID: req.StaffID, DateRange: dr})
	if err != nil {
		s.logger.Error("list attendance failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.AttendanceResponse, 0, len(list))
	for i := range list {
		result = append(result, toAttendanceResponse(&list[i]))
	}
	return result, nil
}

func (s *staffService) CreateAttendance(ctx context.Context, req *dto.CreateAttendanceRequest) (*dto.AttendanceResponse, error) {
	date, err := dateOrDefault(req.Date, model.Today())
	if err != nil {
		return nil, err
	}
	checkIn, err := optionalTime(req.CheckIn)
	if err != nil {
		return nil, err
	}
	checkOut, err := optionalTime(req.CheckOut)
	if err != nil {
		return nil, err
	}

	a := &model.Attendance{
		Date:     date,
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Status:   stringOr(req.Status, AttendanceStatusPresent),
		StaffID:  req.StaffID,
	}
	if err := s.repo.Attendance.Create(ctx, a); err != nil {
		s.logger.Error("create attendance failed", zap.Uint("staff_id", req.StaffID), zap.Error(err))
		return nil, err
	}

	resp := toAttendanceResponse(a)
	return &resp, nil
}

// ────────────────────── Schedules ──────────────────────

func (s *staffService) ListSchedules(ctx context.Context, req *dto.StaffQuery) ([]dto.ScheduleResponse, error) {
	list, err := s.repo.Schedule.List(ctx, req.StaffID)
	if err != nil {
		s.logger.Error("list schedules failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.ScheduleResponse, 0, len(list))
	for i := range list {
		result = append(result, toScheduleResponse(&list[i]))
	}
	return result, nil
}

func (s *staffService) CreateSchedule(ctx context.Context, req *dto.CreateScheduleRequest) (*dto.ScheduleResponse, error) {
	shiftDate, err := dateOrDefault(req.ShiftDate, model.Today())
	if err != nil {
		return nil, err
	}

	sch := &model.Schedule{
		ShiftDate: shiftDate,
		ShiftType: req.ShiftType,
		Field:     req.Field,
		Hours:     nonZero(req.Hours),
		Location:  req.Location,
		StaffID:   req.StaffID,
	}
	if err := s.repo.Schedule.Create(ctx, sch); err != nil {
		s.logger.Error("create schedule failed", zap.Uint("staff_id", req.StaffID), zap.Error(err))
		return nil, err
	}

	resp := toScheduleResponse(sch)
	return &resp, nil
}

// ────────────────────── Performance reviews ──────────────────────

func (s *staffService) ListReviews(ctx context.Context, req *dto.StaffQuery) ([]dto.PerformanceReviewResponse, error) {
	list, err := s.repo.PerformanceReview.List(ctx, req.StaffID)
	if err != nil {
		s.logger.Error("list performance reviews failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.PerformanceReviewResponse, 0, len(list))
	for i := range list {
		result = append(result, toReviewResponse(&list[i]))
	}
	return result, nil
}

func (s *staffService) CreateReview(ctx context.Context, req *dto.CreatePerformanceReviewRequest) (*dto.PerformanceReviewResponse, error) {
	reviewDate, err := dateOrDefault(req.ReviewDate, model.Today())
	if err != nil {
		return nil, err
	}

	pr := &model.PerformanceReview{
		ReviewDate: reviewDate,
		Score:      nonZero(req.Score),
		Comments:   req.Comments,
		StaffID:    req.StaffID,
	}
	if err := s.repo.PerformanceReview.Create(ctx, pr); err != nil {
		s.logger.Error("create performance review failed", zap.Uint("staff_id", req.StaffID), zap.Error(err))
		return nil, err
	}

	resp := toReviewResponse(pr)
	return &resp, nil
}

// ────────────────────── Payroll ──────────────────────

func (s *staffService) ListPayroll(ctx context.Context, req *dto.StaffQuery) ([]dto.PayrollResponse, error) {
	list, err := s.repo.Payroll.List(ctx, req.StaffID)
	if err != nil {
		s.logger.Error("list payroll failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.PayrollResponse, 0, len(list))
	for i := range list {
		result = append(result, toPayrollResponse(&list[i]))
	}
	return result, nil
}

func (s *staffService) GetPayroll(ctx context.Context, id uint) (*dto.PayrollResponse, error) {
	p, err := s.repo.Payroll.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.NotFound("Payroll record", id)
		}
		s.logger.Error("get payroll record failed", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	resp := toPayrollResponse(p)
	return &resp, nil
}

// CreatePayroll stores the payroll run and its ledger entry in one
// transaction. Every run is booked as an expense.
func (s *staffService) CreatePayroll(ctx context.Context, req *dto.CreatePayrollRequest) (*dto.PayrollResponse, error) {
	paymentDate, err := dateOrDefault(req.PaymentDate, model.Today())
	if err != nil {
		return nil, err
	}

	p := &model.PayrollRecord{
		PayPeriod:   req.PayPeriod,
		Amount:      decimalOrZero(req.Amount),
		PaymentDate: paymentDate,
		StaffID:     req.StaffID,
	}

	var recordID uint
	err = s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		if err := tx.Payroll.Create(ctx, p); err != nil {
			return fmt.Errorf("create payroll record: %w", err)
		}
		id, err := RecordMonetaryEvent(ctx, tx, MonetaryEvent{
			Source:      SourcePayroll,
			SourceID:    p.PayrollRecordID,
			Date:        p.PaymentDate,
			Amount:      p.Amount,
			Description: fmt.Sprintf("Payroll for %s", p.PayPeriod),
		})
		recordID = id
		return err
	})
	if err != nil {
		s.logger.Error("create payroll failed", zap.Uint("staff_id", req.StaffID), zap.Error(err))
		return nil, err
	}

	resp := toPayrollResponse(p)
	resp.FinancialRecordID = &recordID
	return &resp, nil
}

// ── helpers ──

func (s *staffService) getStaff(ctx context.Context, id uint) (*model.Staff, error) {
	staff, err := s.repo.Staff.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.NotFound("Staff member", id)
		}
		s.logger.Error("get staff failed", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return staff, nil
}

func toStaffResponse(s *model.Staff) dto.StaffResponse {
	return dto.StaffResponse{
		ID:          s.StaffID,
		Name:        s.Name,
		Role:        s.Role,
		ContactInfo: s.ContactInfo,
		Status:      s.Status,
	}
}

func toAttendanceResponse(a *model.Attendance) dto.AttendanceResponse {
	return dto.AttendanceResponse{
		ID:        a.AttendanceID,
		Date:      a.Date.String(),
		CheckIn:   optionalClock(a.CheckIn),
		CheckOut:  optionalClock(a.CheckOut),
		Status:    a.Status,
		StaffID:   a.StaffID,
		StaffName: staffName(a.Staff),
	}
}

func toScheduleResponse(s *model.Schedule) dto.ScheduleResponse {
	return dto.ScheduleResponse{
		ID:        s.ScheduleID,
		ShiftDate: s.ShiftDate.String(),
		ShiftType: s.ShiftType,
		Field:     s.Field,
		Hours:     optionalFloat(s.Hours),
		Location:  s.Location,
		StaffID:   s.StaffID,
		StaffName: staffName(s.Staff),
	}
}

func toReviewResponse(pr *model.PerformanceReview) dto.PerformanceReviewResponse {
	return dto.PerformanceReviewResponse{
		ID:         pr.PerformanceReviewID,
		ReviewDate: pr.ReviewDate.String(),
		Score:      optionalFloat(pr.Score),
		Comments:   pr.Comments,
		StaffID:    pr.StaffID,
		StaffName:  staffName(pr.Staff),
	}
}

func toPayrollResponse(p *model.PayrollRecord) dto.PayrollResponse {
	return dto.PayrollResponse{
		ID:          p.PayrollRecordID,
		PayPeriod:   p.PayPeriod,
		Amount:      money(p.Amount),
		PaymentDate: p.PaymentDate.String(),
		StaffID:     p.StaffID,
		StaffName:   staffName(p.Staff),
	}
}
