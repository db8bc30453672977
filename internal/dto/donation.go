package dto

import "github.com/shopspring/decimal"

// ── donations ──

// DonationListRequest query of GET /donation/donations
type DonationListRequest struct {
	Status  string `form:"status"`
	DonorID *uint  `form:"donor_id"`
}

// CreateDonationRequest body of POST /donation/donations
type CreateDonationRequest struct {
	Type    *string          `json:"type"`
	Status  *string          `json:"status"`
	Amount  *decimal.Decimal `json:"amount"`
	Date    *string          `json:"date"`
	DonorID uint             `json:"donor_id" binding:"required"`
	StaffID *uint            `json:"staff_id"`
	GiftID  *uint            `json:"gift_id"`
}

// UpdateDonationRequest body of PUT /donation/donations/:id
type UpdateDonationRequest struct {
	Type    *string          `json:"type"`
	Status  *string          `json:"status"`
	Amount  *decimal.Decimal `json:"amount"`
	Date    *string          `json:"date"`
	DonorID *uint            `json:"donor_id"`
	StaffID *uint            `json:"staff_id"`
	GiftID  *uint            `json:"gift_id"`
}

// DonationResponse a donation
type DonationResponse struct {
	ID        uint    `json:"id"`
	Type      string  `json:"type"`
	Status    string  `json:"status"`
	Amount    float64 `json:"amount"`
	Date      string  `json:"date"`
	DonorID   uint    `json:"donor_id"`
	DonorName *string `json:"donor_name,omitempty"`
	StaffID   *uint   `json:"staff_id"`
	GiftID    *uint   `json:"gift_id"`
}

// ── donors ──

// DonorListRequest query of GET /donation/donors
type DonorListRequest struct {
	Region string `form:"region"`
}

// CreateDonorRequest body of POST /donation/donors
type CreateDonorRequest struct {
	Name             string  `json:"name" binding:"required"`
	ContactInfo      *string `json:"contact_info"`
	RegistrationDate *string `json:"registration_date"`
	Age              *int    `json:"age"`
	Region           *string `json:"region"`
}

// UpdateDonorRequest body of PUT /donation/donors/:id
type UpdateDonorRequest struct {
	Name             *string `json:"name"`
	ContactInfo      *string `json:"contact_info"`
	RegistrationDate *string `json:"registration_date"`
	Age              *int    `json:"age"`
	Region           *string `json:"region"`
}

// DonorResponse a donor; TotalDonations is filled on list
type DonorResponse struct {
	ID               uint     `json:"id"`
	Name             string   `json:"name"`
	ContactInfo      *string  `json:"contact_info"`
	RegistrationDate string   `json:"registration_date"`
	Age              *int     `json:"age"`
	Region           *string  `json:"region"`
	TotalDonations   *float64 `json:"total_donations,omitempty"`
}

// DemographicsResponse donor counts by age band and region
type DemographicsResponse struct {
	AgeGroups   map[string]int `json:"age_groups"`
	Regions     map[string]int `json:"regions"`
	TotalDonors int            `json:"total_donors"`
}

// ── gifts ──

// CreateGiftRequest body of POST /donation/gifts
type CreateGiftRequest struct {
	Type             string  `json:"type" binding:"required"`
	Quantity         *int    `json:"quantity"`
	DistributionDate *string `json:"distribution_date"`
}

// GiftResponse an in-kind gift
type GiftResponse struct {
	ID               uint    `json:"id"`
	Type             string  `json:"type"`
	Quantity         int     `json:"quantity"`
	DistributionDate *string `json:"distribution_date"`
}
