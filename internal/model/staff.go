package model

import (
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// Staff status values
const (
	StaffStatusActive   = "Active"
	StaffStatusInactive = "Inactive"
)

// Staff employee of the organization (table staff)
type Staff struct {
	StaffID     uint    `gorm:"primaryKey"                                  json:"id"`
	Name        string  `gorm:"type:varchar(200);not null"                  json:"name"`
	Role        *string `gorm:"type:varchar(100)"                           json:"role"`
	ContactInfo *string `gorm:"type:varchar(200)"                           json:"contact_info"`
	Status      string  `gorm:"type:varchar(50);not null;default:'Active';index" json:"status"`
}

// TableName table name
func (Staff) TableName() string { return "staff" }

// Attendance daily attendance of a staff member (table attendance)
type Attendance struct {
	AttendanceID uint            `gorm:"primaryKey"                                    json:"id"`
	Date         Date            `gorm:"not null;index"                                json:"date"`
	CheckIn      *datatypes.Time `gorm:"type:time"                                     json:"check_in"`
	CheckOut     *datatypes.Time `gorm:"type:time"                                     json:"check_out"`
	Status       string          `gorm:"type:varchar(50);not null;default:'Present'"   json:"status"`
	StaffID      uint            `gorm:"not null;index"                                json:"staff_id"`

	Staff *Staff `gorm:"foreignKey:StaffID;references:StaffID" json:"-"`
}

// TableName table name
func (Attendance) TableName() string { return "attendance" }

// Schedule shift assignment (table schedule)
type Schedule struct {
	ScheduleID uint             `gorm:"primaryKey"              json:"id"`
	ShiftDate  Date             `gorm:"not null"                json:"shift_date"`
	ShiftType  *string          `gorm:"type:varchar(50)"        json:"shift_type"`
	Field      *string          `gorm:"type:varchar(100)"       json:"field"`
	Hours      *decimal.Decimal `gorm:"type:decimal(4,2)"       json:"hours"`
	Location   *string          `gorm:"type:varchar(200)"       json:"location"`
	StaffID    uint             `gorm:"not null;index"          json:"staff_id"`

	Staff *Staff `gorm:"foreignKey:StaffID;references:StaffID" json:"-"`
}

// TableName table name
func (Schedule) TableName() string { return "schedule" }

// PerformanceReview periodic staff review (table performance_review)
type PerformanceReview struct {
	PerformanceReviewID uint             `gorm:"primaryKey"        json:"id"`
	ReviewDate          Date             `gorm:"not null"          json:"review_date"`
	Score               *decimal.Decimal `gorm:"type:decimal(5,2)" json:"score"`
	Comments            *string          `gorm:"type:text"         json:"comments"`
	StaffID             uint             `gorm:"not null;index"    json:"staff_id"`

	Staff *Staff `gorm:"foreignKey:StaffID;references:StaffID" json:"-"`
}

// TableName table name
func (PerformanceReview) TableName() string { return "performance_review" }

// PayrollRecord one payroll run for a staff member (table payroll_record)
type PayrollRecord struct {
	PayrollRecordID uint            `gorm:"primaryKey"                 json:"id"`
	PayPeriod       string          `gorm:"type:varchar(50);not null"  json:"pay_period"`
	Amount          decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"amount"`
	PaymentDate     Date            `gorm:"not null"                   json:"payment_date"`
	StaffID         uint            `gorm:"not null;index"             json:"staff_id"`

	Staff *Staff `gorm:"foreignKey:StaffID;references:StaffID" json:"-"`
}

// TableName table name
func (PayrollRecord) TableName() string { return "payroll_record" }

// PayrollFinancialRecord ledger link for a payroll run
type PayrollFinancialRecord struct {
	PayrollRecordID   uint `gorm:"primaryKey;autoIncrement:false"`
	FinancialRecordID uint `gorm:"primaryKey;autoIncrement:false"`

	PayrollRecord   *PayrollRecord   `gorm:"foreignKey:PayrollRecordID;references:PayrollRecordID;constraint:OnDelete:CASCADE"`
	FinancialRecord *FinancialRecord `gorm:"foreignKey:FinancialRecordID;references:FinancialRecordID;constraint:OnDelete:CASCADE"`
}

// TableName table name
func (PayrollFinancialRecord) TableName() string { return "payroll_financial_record" }
