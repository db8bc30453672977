package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"eldercare-mis/internal/model"
)

// InventoryRepository stock item data access
type InventoryRepository interface {
	Create(ctx context.Context, item *model.Inventory) error
	GetByID(ctx context.Context, id uint) (*model.Inventory, error)
	List(ctx context.Context) ([]model.Inventory, error)
	Update(ctx context.Context, item *model.Inventory) error
}

type inventoryRepo struct {
	db *gorm.DB
}

// NewInventoryRepo creates an InventoryRepository
func NewInventoryRepo(db *gorm.DB) InventoryRepository {
	return &inventoryRepo{db: db}
}

func (r *inventoryRepo) Create(ctx context.Context, item *model.Inventory) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(item).Error
}

func (r *inventoryRepo) GetByID(ctx context.Context, id uint) (*model.Inventory, error) {
	var item model.Inventory
	err := r.db.WithContext(ctx).
		Where("inventory_id = ?", id).
		First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *inventoryRepo) List(ctx context.Context) ([]model.Inventory, error) {
	var list []model.Inventory
	err := r.db.WithContext(ctx).Order("inventory_id ASC").Find(&list).Error
	return list, err
}

func (r *inventoryRepo) Update(ctx context.Context, item *model.Inventory) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(item).Error
}

// ── demand plan ──

// DemandPlanRepository demand plan data access
type DemandPlanRepository interface {
	Create(ctx context.Context, plan *model.DemandPlan) error
	List(ctx context.Context) ([]model.DemandPlan, error)
}

type demandPlanRepo struct {
	db *gorm.DB
}

// NewDemandPlanRepo creates a DemandPlanRepository
func NewDemandPlanRepo(db *gorm.DB) DemandPlanRepository {
	return &demandPlanRepo{db: db}
}

func (r *demandPlanRepo) Create(ctx context.Context, plan *model.DemandPlan) error {
	return r.db.WithContext(ctx).Create(plan).Error
}

func (r *demandPlanRepo) List(ctx context.Context) ([]model.DemandPlan, error) {
	var list []model.DemandPlan
	err := r.db.WithContext(ctx).Order("plan_date DESC, demand_plan_id DESC").Find(&list).Error
	return list, err
}

// ── supplier ──

// SupplierRepository supplier data access
type SupplierRepository interface {
	Create(ctx context.Context, s *model.Supplier) error
	GetByID(ctx context.Context, id uint) (*model.Supplier, error)
	List(ctx context.Context) ([]model.Supplier, error)
	Update(ctx context.Context, s *model.Supplier) error
}

type supplierRepo struct {
	db *gorm.DB
}

// NewSupplierRepo creates a SupplierRepository
func NewSupplierRepo(db *gorm.DB) SupplierRepository {
	return &supplierRepo{db: db}
}

func (r *supplierRepo) Create(ctx context.Context, s *model.Supplier) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *supplierRepo) GetByID(ctx context.Context, id uint) (*model.Supplier, error) {
	var s model.Supplier
	err := r.db.WithContext(ctx).
		Where("supplier_id = ?", id).
		First(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *supplierRepo) List(ctx context.Context) ([]model.Supplier, error) {
	var list []model.Supplier
	err := r.db.WithContext(ctx).Order("supplier_id ASC").Find(&list).Error
	return list, err
}

func (r *supplierRepo) Update(ctx context.Context, s *model.Supplier) error {
	return r.db.WithContext(ctx).Save(s).Error
}

// ── purchase order ──

// PurchaseOrderRepository purchase order data access
type PurchaseOrderRepository interface {
	Create(ctx context.Context, po *model.PurchaseOrder) error
	// AddItems inserts order lines for an existing order
	AddItems(ctx context.Context, items []model.PurchaseOrderInventory) error
	// GetByID loads the order with supplier and lines
	GetByID(ctx context.Context, id uint) (*model.PurchaseOrder, error)
	List(ctx context.Context, status string) ([]model.PurchaseOrder, error)
}

type purchaseOrderRepo struct {
	db *gorm.DB
}

// NewPurchaseOrderRepo creates a PurchaseOrderRepository
func NewPurchaseOrderRepo(db *gorm.DB) PurchaseOrderRepository {
	return &purchaseOrderRepo{db: db}
}

func (r *purchaseOrderRepo) Create(ctx context.Context, po *model.PurchaseOrder) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(po).Error
}

func (r *purchaseOrderRepo) AddItems(ctx context.Context, items []model.PurchaseOrderInventory) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(&items).Error
}

func (r *purchaseOrderRepo) preloaded(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Supplier").
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("inventory_id ASC")
		}).
		Preload("Items.Inventory")
}

func (r *purchaseOrderRepo) GetByID(ctx context.Context, id uint) (*model.PurchaseOrder, error) {
	var po model.PurchaseOrder
	err := r.preloaded(ctx).
		Where("purchase_order_id = ?", id).
		First(&po).Error
	if err != nil {
		return nil, err
	}
	return &po, nil
}

func (r *purchaseOrderRepo) List(ctx context.Context, status string) ([]model.PurchaseOrder, error) {
	var list []model.PurchaseOrder
	db := r.preloaded(ctx)
	if status != "" {
		db = db.Where("status = ?", status)
	}
	err := db.Order("order_date DESC, purchase_order_id DESC").Find(&list).Error
	return list, err
}
