package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"eldercare-mis/internal/model"
)

// DonorRepository donor data access
type DonorRepository interface {
	Create(ctx context.Context, donor *model.Donor) error
	GetByID(ctx context.Context, id uint) (*model.Donor, error)
	// List returns donors with their donations preloaded
	List(ctx context.Context, region string) ([]model.Donor, error)
	Update(ctx context.Context, donor *model.Donor) error
}

type donorRepo struct {
	db *gorm.DB
}

// NewDonorRepo creates a DonorRepository
func NewDonorRepo(db *gorm.DB) DonorRepository {
	return &donorRepo{db: db}
}

func (r *donorRepo) Create(ctx context.Context, donor *model.Donor) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(donor).Error
}

func (r *donorRepo) GetByID(ctx context.Context, id uint) (*model.Donor, error) {
	var donor model.Donor
	err := r.db.WithContext(ctx).
		Where("donor_id = ?", id).
		First(&donor).Error
	if err != nil {
		return nil, err
	}
	return &donor, nil
}

func (r *donorRepo) List(ctx context.Context, region string) ([]model.Donor, error) {
	var donors []model.Donor
	db := r.db.WithContext(ctx).Preload("Donations")
	if region != "" {
		db = db.Where("region = ?", region)
	}
	err := db.Order("registration_date DESC, donor_id ASC").Find(&donors).Error
	return donors, err
}

func (r *donorRepo) Update(ctx context.Context, donor *model.Donor) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(donor).Error
}

// ── gift ──

// GiftRepository gift data access
type GiftRepository interface {
	Create(ctx context.Context, gift *model.Gift) error
	List(ctx context.Context) ([]model.Gift, error)
}

type giftRepo struct {
	db *gorm.DB
}

// NewGiftRepo creates a GiftRepository
func NewGiftRepo(db *gorm.DB) GiftRepository {
	return &giftRepo{db: db}
}

func (r *giftRepo) Create(ctx context.Context, gift *model.Gift) error {
	return r.db.WithContext(ctx).Create(gift).Error
}

func (r *giftRepo) List(ctx context.Context) ([]model.Gift, error) {
	var gifts []model.Gift
	err := r.db.WithContext(ctx).Order("gift_id ASC").Find(&gifts).Error
	return gifts, err
}

// ── donation ──

// DonationRepository donation data access
type DonationRepository interface {
	Create(ctx context.Context, d *model.Donation) error
	GetByID(ctx context.Context, id uint) (*model.Donation, error)
	List(ctx context.Context, filter DonationFilter) ([]model.Donation, error)
	Update(ctx context.Context, d *model.Donation) error
}

type donationRepo struct {
	db *gorm.DB
}

// NewDonationRepo creates a DonationRepository
func NewDonationRepo(db *gorm.DB) DonationRepository {
	return &donationRepo{db: db}
}

func (r *donationRepo) Create(ctx context.Context, d *model.Donation) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(d).Error
}

func (r *donationRepo) GetByID(ctx context.Context, id uint) (*model.Donation, error) {
	var d model.Donation
	err := r.db.WithContext(ctx).
		Where("donation_id = ?", id).
		First(&d).Error
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *donationRepo) List(ctx context.Context, filter DonationFilter) ([]model.Donation, error) {
	var list []model.Donation
	db := r.db.WithContext(ctx).Preload("Donor")

	if filter.Status != "" {
		db = db.Where("status = ?", filter.Status)
	}
	if filter.DonorID != nil {
		db = db.Where("donor_id = ?", *filter.DonorID)
	}
	if filter.Since != nil {
		db = db.Where("donation_date >= ?", *filter.Since)
	}

	err := db.Order("donation_date DESC, donation_id DESC").Find(&list).Error
	return list, err
}

func (r *donationRepo) Update(ctx context.Context, d *model.Donation) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(d).Error
}
