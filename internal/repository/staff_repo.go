package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"eldercare-mis/internal/model"
)

// StaffRepository staff data access
type StaffRepository interface {
	Create(ctx context.Context, staff *model.Staff) error
	GetByID(ctx context.Context, id uint) (*model.Staff, error)
	List(ctx context.Context, filter StaffFilter) ([]model.Staff, error)
	Update(ctx context.Context, staff *model.Staff) error
}

type staffRepo struct {
	db *gorm.DB
}

// NewStaffRepo creates a StaffRepository
func NewStaffRepo(db *gorm.DB) StaffRepository {
	return &staffRepo{db: db}
}

func (r *staffRepo) Create(ctx context.Context, staff *model.Staff) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(staff).Error
}

func (r *staffRepo) GetByID(ctx context.Context, id uint) (*model.Staff, error) {
	var staff model.Staff
	err := r.db.WithContext(ctx).
		Where("staff_id = ?", id).
		First(&staff).Error
	if err != nil {
		return nil, err
	}
	return &staff, nil
}

func (r *staffRepo) List(ctx context.Context, filter StaffFilter) ([]model.Staff, error) {
	var list []model.Staff
	db := r.db.WithContext(ctx)

	if filter.Status != "" {
		db = db.Where("status = ?", filter.Status)
	}
	if filter.Role != "" {
		db = db.Where("role = ?", filter.Role)
	}

	err := db.Order("staff_id ASC").Find(&list).Error
	return list, err
}

func (r *staffRepo) Update(ctx context.Context, staff *model.Staff) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(staff).Error
}

// ── attendance ──

// AttendanceRepository attendance data access
type AttendanceRepository interface {
	Create(ctx context.Context, a *model.Attendance) error
	List(ctx context.Context, filter AttendanceFilter) ([]model.Attendance, error)
}

type attendanceRepo struct {
	db *gorm.DB
}

// NewAttendanceRepo creates an AttendanceRepository
func NewAttendanceRepo(db *gorm.DB) AttendanceRepository {
	return &attendanceRepo{db: db}
}

func (r *attendanceRepo) Create(ctx context.Context, a *model.Attendance) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(a).Error
}

func (r *attendanceRepo) List(ctx context.Context, filter AttendanceFilter) ([]model.Attendance, error) {
	var list []model.Attendance
	db := r.db.WithContext(ctx).Preload("Staff")

	if filter.StaffID != nil {
		db = db.Where("staff_id = ?", *filter.StaffID)
	}
	db = filter.DateRange.apply(db, "date")

	err := db.Order("date DESC, attendance_id DESC").Find(&list).Error
	return list, err
}

// ── schedule ──

// ScheduleRepository shift schedule data access
type ScheduleRepository interface {
	Create(ctx context.Context, s *model.Schedule) error
	List(ctx context.Context, staffID *uint) ([]model.Schedule, error)
}

type scheduleRepo struct {
	db *gorm.DB
}

// NewScheduleRepo creates a ScheduleRepository
func NewScheduleRepo(db *gorm.DB) ScheduleRepository {
	return &scheduleRepo{db: db}
}

func (r *scheduleRepo) Create(ctx context.Context, s *model.Schedule) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(s).Error
}

func (r *scheduleRepo) List(ctx context.Context, staffID *uint) ([]model.Schedule, error) {
	var list []model.Schedule
	db := r.db.WithContext(ctx).Preload("Staff")
	if staffID != nil {
		db = db.Where("staff_id = ?", *staffID)
	}
	err := db.Order("shift_date DESC, schedule_id DESC").Find(&list).Error
	return list, err
}

// ── performance review ──

// PerformanceReviewRepository review data access
type PerformanceReviewRepository interface {
	Create(ctx context.Context, pr *model.PerformanceReview) error
	List(ctx context.Context, staffID *uint) ([]model.PerformanceReview, error)
}

type performanceReviewRepo struct {
	db *gorm.DB
}

// NewPerformanceReviewRepo creates a PerformanceReviewRepository
func NewPerformanceReviewRepo(db *gorm.DB) PerformanceReviewRepository {
	return &performanceReviewRepo{db: db}
}

func (r *performanceReviewRepo) Create(ctx context.Context, pr *model.PerformanceReview) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(pr).Error
}

func (r *performanceReviewRepo) List(ctx context.Context, staffID *uint) ([]model.PerformanceReview, error) {
	var list []model.PerformanceReview
	db := r.db.WithContext(ctx).Preload("Staff")
	if staffID != nil {
		db = db.Where("staff_id = ?", *staffID)
	}
	err := db.Order("review_date DESC, performance_review_id DESC").Find(&list).Error
	return list, err
}

// ── payroll ──

// PayrollRepository payroll data access
type PayrollRepository interface {
	Create(ctx context.Context, p *model.PayrollRecord) error
	GetByID(ctx context.Context, id uint) (*model.PayrollRecord, error)
	List(ctx context.Context, staffID *uint) ([]model.PayrollRecord, error)
}

type payrollRepo struct {
	db *gorm.DB
}

// NewPayrollRepo creates a PayrollRepository
func NewPayrollRepo(db *gorm.DB) PayrollRepository {
	return &payrollRepo{db: db}
}

func (r *payrollRepo) Create(ctx context.Context, p *model.PayrollRecord) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(p).Error
}

func (r *payrollRepo) GetByID(ctx context.Context, id uint) (*model.PayrollRecord, error) {
	var p model.PayrollRecord
	err := r.db.WithContext(ctx).
		Preload("Staff").
		Where("payroll_record_id = ?", id).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *payrollRepo) List(ctx context.Context, staffID *uint) ([]model.PayrollRecord, error) {
	var list []model.PayrollRecord
	db := r.db.WithContext(ctx).Preload("Staff")
	if staffID != nil {
		db = db.Where("staff_id = ?", *staffID)
	}
	err := db.Order("payment_date DESC, payroll_record_id DESC").Find(&list).Error
	return list, err
}
