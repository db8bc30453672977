package handler

import (
	"github.com/gin-gonic/gin"

	"eldercare-mis/internal/dto"
	"eldercare-mis/internal/service"
	"eldercare-mis/pkg/response"
)

// DonationHandler donations, donors and gifts
type DonationHandler struct {
	donationSvc service.DonationService
}

// NewDonationHandler creates a DonationHandler
func NewDonationHandler(donationSvc service.DonationService) *DonationHandler {
	return &DonationHandler{donationSvc: donationSvc}
}

// ────────────────────── Donations ──────────────────────

// ListDonations GET /api/donation/donations?status&donor_id
func (h *DonationHandler) ListDonations(c *gin.Context) {
	var req dto.DonationListRequest
	if !bindQuery(c, &req) {
		return
	}

	donations, err := h.donationSvc.ListDonations(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, "Donations retrieved successfully", donations)
}

// GetDonation GET /api/donation/donations/:id
func (h *DonationHandler) GetDonation(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	donation, err := h.donationSvc.GetDonation(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, "Donation retrieved successfully", donation)
}

// CreateDonation POST /api/donation/donations
// A monetary donation with a non-zero amount is booked in the ledger.
func (h *DonationHandler) CreateDonation(c *gin.Context) {
	var req dto.CreateDonationRequest
	if !bindJSON(c, &req) {
		return
	}

	donation, err := h.donationSvc.CreateDonation(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Created(c, "Donation created successfully", donation)
}

// UpdateDonation PUT /api/donation/donations/:id
func (h *DonationHandler) UpdateDonation(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.UpdateDonationRequest
	if !bindJSON(c, &req) {
		return
	}

	donation, err := h.donationSvc.UpdateDonation(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, "Donation updated successfully", donation)
}

// ────────────────────── Donors ──────────────────────

// ListDonors GET /api/donation/donors?region
func (h *DonationHandler) ListDonors(c *gin.Context) {
	var req dto.DonorListRequest
	if !bindQuery(c, &req) {
		return
	}

	donors, err := h.donationSvc.ListDonors(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, "Donors retrieved successfully", donors)
}

// GetDonor GET /api/donation/donors/:id
func (h *DonationHandler) GetDonor(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	donor, err := h.donationSvc.GetDonor(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, "Donor retrieved successfully", donor)
}

// CreateDonor POST /api/donation/donors
func (h *DonationHandler) CreateDonor(c *gin.Context) {
	var req dto.CreateDonorRequest
	if !bindJSON(c, &req) {
		return
	}

	donor, err := h.donationSvc.CreateDonor(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Created(c, "Donor created successfully", donor)
}

// UpdateDonor PUT /api/donation/donors/:id
func (h *DonationHandler) UpdateDonor(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.UpdateDonorRequest
	if !bindJSON(c, &req) {
		return
	}

	donor, err := h.donationSvc.UpdateDonor(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, "Donor updated successfully", donor)
}

// Demographics GET /api/donation/demographics
func (h *DonationHandler) Demographics(c *gin.Context) {
	demo, err := h.donationSvc.Demographics(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, "Donor demographics retrieved successfully", demo)
}

// ────────────────────── Gifts ──────────────────────

// ListGifts GET /api/donation/gifts
func (h *DonationHandler) ListGifts(c *gin.Context) {
	gifts, err := h.donationSvc.ListGifts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, "Gifts retrieved successfully", gifts)
}

// CreateGift POST /api/donation/gifts
func (h *DonationHandler) CreateGift(c *gin.Context) {
	var req dto.CreateGiftRequest
	if !bindJSON(c, &req) {
		return
	}

	gift, err := h.donationSvc.CreateGift(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Created(c, "Gift created successfully", gift)
}
