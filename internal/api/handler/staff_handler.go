package handler

import (
	"github.com/gin-gonic/gin"

	"eldercare-mis/internal/dto"
	"eldercare-mis/internal/service"
	"eldercare-mis/pkg/response"
)

// StaffHandler staff, attendance, schedules, reviews and payroll
type StaffHandler struct {
	staffSvc service.StaffService
}

// NewStaffHandler creates a StaffHandler
func NewStaffHandler(staffSvc service.StaffService) *StaffHandler {
	return &StaffHandler{staffSvc: staffSvc}
}

// ────────────────────── Staff ──────────────────────

// ListStaff GET /api/staff/staff?status&role
func (h *StaffHandler) ListStaff(c *gin.Context) {
	var req dto.StaffListRequest
	if !bindQuery(c, &req) {
		return
	}

	staff, err := h.staffSvc.ListStaff(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, "Staff members retrieved successfully", staff)
}

// GetStaff GET /api/staff/staff/:id
func (h *StaffHandler) GetStaff(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	staff, err := h.staffSvc.GetStaff(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, "Staff member retrieved successfully", staff)
}

// CreateStaff POST /api/staff/staff
func (h *StaffHandler) CreateStaff(c *gin.Context) {
	var req dto.CreateStaffRequest
	if !bindJSON(c, &req) {
		return
	}

	staff, err := h.staffSvc.CreateStaff(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Created(c, "Staff member created successfully", staff)
}

// UpdateStaff PUT /api/staff/staff/:id
func (h *StaffHandler) UpdateStaff(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.UpdateStaffRequest
	if !bindJSON(c, &req) {
		return
	}

	staff, err := h.staffSvc.UpdateStaff(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, "Staff member updated successfully", staff)
}

// ────────────────────── Attendance ──────────────────────

// ListAttendance GET /api/staff/attendance?staff_id&start_date&end_date
func (h *StaffHandler) ListAttendance(c *gin.Context) {
	var req dto.AttendanceListRequest
	if !bindQuery(c, &req) {
		return
	}

	list, err := h.staffSvc.ListAttendance(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, "Attendance records retrieved successfully", list)
}

// CreateAttendance POST /api/staff/attendance
func (h *StaffHandler) CreateAttendance(c *gin.Context) {
	var req dto.CreateAttendanceRequest
	if !bindJSON(c, &req) {
		return
	}

	a, err := h.staffSvc.CreateAttendance(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Created(c, "Attendance record created successfully", a)
}

// ────────────────────── Schedules ──────────────────────

// ListSchedules GET /api/staff/schedules?staff_id
func (h *StaffHandler) ListSchedules(c *gin.Context) {
	var req dto.StaffQuery
	if !bindQuery(c, &req) {
		return
	}

	list, err := h.staffSvc.ListSchedules(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, "Schedules retrieved successfully", list)
}

// CreateSchedule POST /api/staff/schedules
func (h *StaffHandler) CreateSchedule(c *gin.Context) {
	var req dto.CreateScheduleRequest
	if !bindJSON(c, &req) {
		return
	}

	sch, err := h.staffSvc.CreateSchedule(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Created(c, "Schedule created successfully", sch)
}

// ────────────────────── Performance reviews ──────────────────────

// ListReviews GET /api/staff/performance-reviews?staff_id
func (h *StaffHandler) ListReviews(c *gin.Context) {
	var req dto.StaffQuery
	if !bindQuery(c, &req) {
		return
	}

	list, err := h.staffSvc.ListReviews(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, "Performance reviews retrieved successfully", list)
}

// CreateReview POST /api/staff/performance-reviews
func (h *StaffHandler) CreateReview(c *gin.Context) {
	var req dto.CreatePerformanceReviewRequest
	if !bindJSON(c, &req) {
		return
	}

	review, err := h.staffSvc.CreateReview(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Created(c, "Performance review created successfully", review)
}

// ────────────────────── Payroll ──────────────────────

// ListPayroll GET /api/staff/payroll?staff_id
func (h *StaffHandler) ListPayroll(c *gin.Context) {
	var req dto.StaffQuery
	if !bindQuery(c, &req) {
		return
	}

	list, err := h.staffSvc.ListPayroll(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, "Payroll records retrieved successfully", list)
}

// GetPayroll GET /api/staff/payroll/:id
func (h *StaffHandler) GetPayroll(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	p, err := h.staffSvc.GetPayroll(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, "Payroll record retrieved successfully", p)
}

// CreatePayroll POST /api/staff/payroll
// Every payroll run is booked in the ledger as an expense.
func (h *StaffHandler) CreatePayroll(c *gin.Context) {
	var req dto.CreatePayrollRequest
	if !bindJSON(c, &req) {
		return
	}

	p, err := h.staffSvc.CreatePayroll(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Created(c, "Payroll record created successfully", p)
}
