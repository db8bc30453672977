package model

import "github.com/shopspring/decimal"

// Donation types
const (
	DonationMonetary = "Monetary"
	DonationGift     = "Gift"
)

// Donor (table donor)
type Donor struct {
	DonorID          uint    `gorm:"primaryKey"                json:"id"`
	Name             string  `gorm:"type:varchar(200);not null" json:"name"`
	ContactInfo      *string `gorm:"type:varchar(200)"         json:"contact_info"`
	RegistrationDate Date    `gorm:"not null"                  json:"registration_date"`
	Age              *int    `json:"age"`
	Region           *string `gorm:"type:varchar(100);index"   json:"region"`

	Donations []Donation `gorm:"foreignKey:DonorID;references:DonorID" json:"-"`
}

// TableName table name
func (Donor) TableName() string { return "donor" }

// Gift in-kind gift (table gift)
type Gift struct {
	GiftID           uint   `gorm:"primaryKey"                 json:"id"`
	GiftType         string `gorm:"type:varchar(100);not null" json:"type"`
	Quantity         int    `gorm:"not null"                   json:"quantity"`
	DistributionDate *Date  `json:"distribution_date"`
}

// TableName table name
func (Gift) TableName() string { return "gift" }

// Donation (table donation)
type Donation struct {
	DonationID   uint            `gorm:"primaryKey"                                  json:"id"`
	DonationType string          `gorm:"type:varchar(50);not null"                   json:"type"`
	Status       string          `gorm:"type:varchar(50);not null;default:'Pending';index" json:"status"`
	Amount       decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"       json:"amount"`
	DonationDate Date            `gorm:"not null;index"                              json:"date"`
	DonorID      uint            `gorm:"not null;index"                              json:"donor_id"`
	StaffID      *uint           `json:"staff_id"`
	GiftID       *uint           `json:"gift_id"`

	Donor *Donor `gorm:"foreignKey:DonorID;references:DonorID" json:"-"`
	Staff *Staff `gorm:"foreignKey:StaffID;references:StaffID" json:"-"`
	Gift  *Gift  `gorm:"foreignKey:GiftID;references:GiftID"    json:"-"`
}

// TableName table name
func (Donation) TableName() string { return "donation" }

// IsMonetary reports whether the donation moves money into the ledger
func (d *Donation) IsMonetary() bool {
	return d.DonationType == DonationMonetary && !d.Amount.IsZero()
}

// DonationFinancialRecord ledger link for a monetary donation
type DonationFinancialRecord struct {
	DonationID        uint `gorm:"primaryKey;autoIncrement:false"`
	FinancialRecordID uint `gorm:"primaryKey;autoIncrement:false"`

	Donation        *Donation        `gorm:"foreignKey:DonationID;references:DonationID;constraint:OnDelete:CASCADE"`
	FinancialRecord *FinancialRecord `gorm:"foreignKey:FinancialRecordID;references:FinancialRecordID;constraint:OnDelete:CASCADE"`
}

// TableName table name
func (DonationFinancialRecord) TableName() string { return "donation_financial_record" }
