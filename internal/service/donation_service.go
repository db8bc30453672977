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

// Donation status assigned when the payload carries none
const DonationStatusPending = "Pending"

// DonationService donations, donors and gifts
type DonationService interface {
	ListDonations(ctx context.Context, req *dto.DonationListRequest) ([]dto.DonationResponse, error)
	GetDonation(ctx context.Context, id uint) (*dto.DonationResponse, error)
	CreateDonation(ctx context.Context, req *dto.CreateDonationRequest) (*dto.DonationResponse, error)
	UpdateDonation(ctx context.Context, id uint, req *dto.UpdateDonationRequest) (*dto.DonationResponse, error)

	ListDonors(ctx context.Context, req *dto.DonorListRequest) ([]dto.DonorResponse, error)
	GetDonor(ctx context.Context, id uint) (*dto.DonorResponse, error)
	CreateDonor(ctx context.Context, req *dto.CreateDonorRequest) (*dto.DonorResponse, error)
	UpdateDonor(ctx context.Context, id uint, req *dto.UpdateDonorRequest) (*dto.DonorResponse, error)
	Demographics(ctx context.Context) (*dto.DemographicsResponse, error)

	ListGifts(ctx context.Context) ([]dto.GiftResponse, error)
	CreateGift(ctx context.Context, req *dto.CreateGiftRequest) (*dto.GiftResponse, error)
}

type donationService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewDonationService creates a DonationService
func NewDonationService(repo *repository.Repository, logger *zap.Logger) DonationService {
	return &donationService{repo: repo, logger: logger}
}

// ────────────────────── Donations ──────────────────────

func (s *donationService) ListDonations(ctx context.Context, req *dto.DonationListRequest) ([]dto.DonationResponse, error) {
	list, err := s.repo.Donation.List(ctx, repository.DonationFilter{
		Status:  req.Status,
		DonorID: req.DonorID,
	})
	if err != nil {
		s.logger.Error("list donations failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.DonationResponse, 0, len(list))
	for i := range list {
		resp := toDonationResponse(&list[i])
		if list[i].Donor != nil {
			name := list[i].Donor.Name
			resp.DonorName = &name
		}
		result = append(result, resp)
	}
	return result, nil
}

func (s *donationService) GetDonation(ctx context.Context, id uint) (*dto.DonationResponse, error) {
	d, err := s.getDonation(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toDonationResponse(d)
	return &resp, nil
}

// CreateDonation stores the donation and, for a monetary donation with a
// non-zero amount, its ledger entry in the same transaction.
func (s *donationService) CreateDonation(ctx context.Context, req *dto.CreateDonationRequest) (*dto.DonationResponse, error) {
	date, err := dateOrDefault(req.Date, model.Today())
	if err != nil {
		return nil, err
	}

	d := &model.Donation{
		DonationType: stringOr(req.Type, model.DonationMonetary),
		Status:       stringOr(req.Status, DonationStatusPending),
		Amount:       decimalOrZero(req.Amount),
		DonationDate: date,
		DonorID:      req.DonorID,
		StaffID:      req.StaffID,
		GiftID:       req.GiftID,
	}

	err = s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		if err := tx.Donation.Create(ctx, d); err != nil {
			return fmt.Errorf("create donation: %w", err)
		}
		if !d.IsMonetary() {
			return nil
		}
		_, err := RecordMonetaryEvent(ctx, tx, MonetaryEvent{
			Source:      SourceDonation,
			SourceID:    d.DonationID,
			Date:        d.DonationDate,
			Amount:      d.Amount,
			Description: fmt.Sprintf("Donation from donor %d", d.DonorID),
		})
		return err
	})
	if err != nil {
		s.logger.Error("create donation failed", zap.Uint("donor_id", req.DonorID), zap.Error(err))
		return nil, err
	}

	resp := toDonationResponse(d)
	return &resp, nil
}

// UpdateDonation overwrites only the fields present in req. An amount change
// is not carried into the ledger entry booked at creation.
func (s *donationService) UpdateDonation(ctx context.Context, id uint, req *dto.UpdateDonationRequest) (*dto.DonationResponse, error) {
	d, err := s.getDonation(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Date != nil {
		date, err := parseDate(*req.Date)
		if err != nil {
			return nil, err
		}
		d.DonationDate = date
	}
	if req.Type != nil {
		d.DonationType = *req.Type
	}
	if req.Status != nil {
		d.Status = *req.Status
	}
	if req.Amount != nil {
		d.Amount = cents(*req.Amount)
	}
	if req.DonorID != nil {
		d.DonorID = *req.DonorID
	}
	if req.StaffID != nil {
		d.StaffID = req.StaffID
	}
	if req.GiftID != nil {
		d.GiftID = req.GiftID
	}

	// the ledger is append-only: a linked financial record keeps its amount
	if err := s.repo.Donation.Update(ctx, d); err != nil {
		s.logger.Error("update donation failed", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	resp := toDonationResponse(d)
	return &resp, nil
}

// ────────────────────── Donors ──────────────────────

func (s *donationService) ListDonors(ctx context.Context, req *dto.DonorListRequest) ([]dto.DonorResponse, error) {
	donors, err := s.repo.Donor.List(ctx, req.Region)
	if err != nil {
		s.logger.Error("list donors failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.DonorResponse, 0, len(donors))
	for i := range donors {
		resp := toDonorResponse(&donors[i])
		total := money(DonorTotal(&donors[i]))
		resp.TotalDonations = &total
		result = append(result, resp)
	}
	return result, nil
}

func (s *donationService) GetDonor(ctx context.Context, id uint) (*dto.DonorResponse, error) {
	donor, err := s.getDonor(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toDonorResponse(donor)
	return &resp, nil
}

func (s *donationService) CreateDonor(ctx context.Context, req *dto.CreateDonorRequest) (*dto.DonorResponse, error) {
	regDate, err := dateOrDefault(req.RegistrationDate, model.Today())
	if err != nil {
		return nil, err
	}

	donor := &model.Donor{
		Name:             req.Name,
		ContactInfo:      req.ContactInfo,
		RegistrationDate: regDate,
		Age:              req.Age,
		Region:           req.Region,
	}
	if err := s.repo.Donor.Create(ctx, donor); err != nil {
		s.logger.Error("create donor failed", zap.Error(err))
		return nil, err
	}

	resp := toDonorResponse(donor)
	return &resp, nil
}

func (s *donationService) UpdateDonor(ctx context.Context, id uint, req *dto.UpdateDonorRequest) (*dto.DonorResponse, error) {
	donor, err := s.getDonor(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.RegistrationDate != nil {
		d, err := parseDate(*req.RegistrationDate)
		if err != nil {
			return nil, err
		}
		donor.RegistrationDate = d
	}
	if req.Name != nil {
		donor.Name = *req.Name
	}
	if req.ContactInfo != nil {
		donor.ContactInfo = req.ContactInfo
	}
	if req.Age != nil {
		donor.Age = req.Age
	}
	if req.Region != nil {
		donor.Region = req.Region
	}

	if err := s.repo.Donor.Update(ctx, donor); err != nil {
		s.logger.Error("update donor failed", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	resp := toDonorResponse(donor)
	return &resp, nil
}

func (s *donationService) Demographics(ctx context.Context) (*dto.DemographicsResponse, error) {
	donors, err := s.repo.Donor.List(ctx, "")
	if err != nil {
		s.logger.Error("load donors for demographics failed", zap.Error(err))
		return nil, err
	}
	resp := Demographics(donors)
	return &resp, nil
}

// ────────────────────── Gifts ──────────────────────

func (s *donationService) ListGifts(ctx context.Context) ([]dto.GiftResponse, error) {
	gifts, err := s.repo.Gift.List(ctx)
	if err != nil {
		s.logger.Error("list gifts failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.GiftResponse, 0, len(gifts))
	for i := range gifts {
		result = append(result, toGiftResponse(&gifts[i]))
	}
	return result, nil
}

func (s *donationService) CreateGift(ctx context.Context, req *dto.CreateGiftRequest) (*dto.GiftResponse, error) {
	distributed, err := optionalDate(req.DistributionDate)
	if err != nil {
		return nil, err
	}

	gift := &model.Gift{
		GiftType:         req.Type,
		Quantity:         intOr(req.Quantity, 1),
		DistributionDate: distributed,
	}
	if err := s.repo.Gift.Create(ctx, gift); err != nil {
		s.logger.Error("create gift failed", zap.Error(err))
		return nil, err
	}

	resp := toGiftResponse(gift)
	return &resp, nil
}

// ── helpers ──

func (s *donationService) getDonation(ctx context.Context, id uint) (*model.Donation, error) {
	d, err := s.repo.Donation.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.NotFound("Donation", id)
		}
		s.logger.Error("get donation failed", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return d, nil
}

func (s *donationService) getDonor(ctx context.Context, id uint) (*model.Donor, error) {
	donor, err := s.repo.Donor.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.NotFound("Donor", id)
		}
		s.logger.Error("get donor failed", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return donor, nil
}

func toDonationResponse(d *model.Donation) dto.DonationResponse {
	return dto.DonationResponse{
		ID:      d.DonationID,
		Type:    d.DonationType,
		Status:  d.Status,
		Amount:  money(d.Amount),
		Date:    d.DonationDate.String(),
		DonorID: d.DonorID,
		StaffID: d.StaffID,
		GiftID:  d.GiftID,
	}
}

func toDonorResponse(d *model.Donor) dto.DonorResponse {
	return dto.DonorResponse{
		ID:               d.DonorID,
		Name:             d.Name,
		ContactInfo:      d.ContactInfo,
		RegistrationDate: d.RegistrationDate.String(),
		Age:              d.Age,
		Region:           d.Region,
	}
}

func toGiftResponse(g *model.Gift) dto.GiftResponse {
	return dto.GiftResponse{
		ID:               g.GiftID,
		Type:             g.GiftType,
		Quantity:         g.Quantity,
		DistributionDate: model.DatePtr(g.DistributionDate),
	}
}
