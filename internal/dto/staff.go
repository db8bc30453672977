package dto

import "github.com/shopspring/decimal"

// ── staff ──

// StaffListRequest query of GET /staff/staff
type StaffListRequest struct {
	Status string `form:"status"`
	Role   string `form:"role"`
}

// CreateStaffRequest body of POST /staff/staff
type CreateStaffRequest struct {
	Name        string  `json:"name" binding:"required"`
	Role        *string `json:"role"`
	ContactInfo *string `json:"contact_info"`
	Status      *string `json:"status"`
}

// UpdateStaffRequest body of PUT /staff/staff/:id
type UpdateStaffRequest struct {
	Name        *string `json:"name"`
	Role        *string `json:"role"`
	ContactInfo *string `json:"contact_info"`
	Status      *string `json:"status"`
}

// StaffResponse a staff member
type StaffResponse struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Role        *string `json:"role"`
	ContactInfo *string `json:"contact_info"`
	Status      string  `json:"status"`
}

// StaffQuery staff_id filter shared by the per-staff lists
type StaffQuery struct {
	StaffID *uint `form:"staff_id"`
}

// ── attendance ──

// AttendanceListRequest query of GET /staff/attendance
type AttendanceListRequest struct {
	StaffQuery
	DateRangeQuery
}

// CreateAttendanceRequest body of POST /staff/attendance; times are HH:MM:SS
type CreateAttendanceRequest struct {
	Date     *string `json:"date"`
	CheckIn  *string `json:"check_in"`
	CheckOut *string `json:"check_out"`
	Status   *string `json:"status"`
	StaffID  uint    `json:"staff_id" binding:"required"`
}

// AttendanceResponse an attendance entry
type AttendanceResponse struct {
	ID        uint    `json:"id"`
	Date      string  `json:"date"`
	CheckIn   *string `json:"check_in"`
	CheckOut  *string `json:"check_out"`
	Status    string  `json:"status"`
	StaffID   uint    `json:"staff_id"`
	StaffName *string `json:"staff_name"`
}

// ── schedules ──

// CreateScheduleRequest body of POST /staff/schedules
type CreateScheduleRequest struct {
	ShiftDate *string          `json:"shift_date"`
	ShiftType *string          `json:"shift_type"`
	Field     *string          `json:"field"`
	Hours     *decimal.Decimal `json:"hours"`
	Location  *string          `json:"location"`
	StaffID   uint             `json:"staff_id" binding:"required"`
}

// ScheduleResponse a shift assignment
type ScheduleResponse struct {
	ID        uint     `json:"id"`
	ShiftDate string   `json:"shift_date"`
	ShiftType *string  `json:"shift_type"`
	Field     *string  `json:"field"`
	Hours     *float64 `json:"hours"`
	Location  *string  `json:"location"`
	StaffID   uint     `json:"staff_id"`
	StaffName *string  `json:"staff_name"`
}

// ── performance reviews ──

// CreatePerformanceReviewRequest body of POST /staff/performance-reviews
type CreatePerformanceReviewRequest struct {
	ReviewDate *string          `json:"review_date"`
	Score      *decimal.Decimal `json:"score"`
	Comments   *string          `json:"comments"`
	StaffID    uint             `json:"staff_id" binding:"required"`
}

// PerformanceReviewResponse a review
type PerformanceReviewResponse struct {
	ID         uint     `json:"id"`
	ReviewDate string   `json:"review_date"`
	Score      *float64 `json:"score"`
	Comments   *string  `json:"comments"`
	StaffID    uint     `json:"staff_id"`
	StaffName  *string  `json:"staff_name"`
}

// ── payroll ──

// CreatePayrollRequest body of POST /staff/payroll
type CreatePayrollRequest struct {
	PayPeriod   string           `json:"pay_period" binding:"required"`
	Amount      *decimal.Decimal `json:"amount"`
	PaymentDate *string          `json:"payment_date"`
	StaffID     uint             `json:"staff_id" binding:"required"`
}

// PayrollResponse a payroll run; FinancialRecordID is set on create
type PayrollResponse struct {
	ID                uint    `json:"id"`
	PayPeriod         string  `json:"pay_period"`
	Amount            float64 `json:"amount"`
	PaymentDate       string  `json:"payment_date"`
	StaffID           uint    `json:"staff_id"`
	StaffName         *string `json:"staff_name"`
	FinancialRecordID *uint   `json:"financial_record_id,omitempty"`
}
