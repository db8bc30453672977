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

// InventoryService stock, demand plans, suppliers and purchase orders
type InventoryService interface {
	ListItems(ctx context.Context) ([]dto.InventoryResponse, error)
	GetItem(ctx context.Context, id uint) (*dto.InventoryResponse, error)
	CreateItem(ctx context.Context, req *dto.CreateInventoryRequest) (*dto.InventoryResponse, error)
	UpdateItem(ctx context.Context, id uint, req *dto.UpdateInventoryRequest) (*dto.InventoryResponse, error)

	ListDemandPlans(ctx context.Context) ([]dto.DemandPlanResponse, error)
	CreateDemandPlan(ctx context.Context, req *dto.CreateDemandPlanRequest) (*dto.DemandPlanResponse, error)

	ListSuppliers(ctx context.Context) ([]dto.SupplierResponse, error)
	GetSupplier(ctx context.Context, id uint) (*dto.SupplierResponse, error)
	CreateSupplier(ctx context.Context, req *dto.CreateSupplierRequest) (*dto.SupplierResponse, error)
	UpdateSupplier(ctx context.Context, id uint, req *dto.UpdateSupplierRequest) (*dto.SupplierResponse, error)

	ListPurchaseOrders(ctx context.Context, req *dto.PurchaseOrderListRequest) ([]dto.PurchaseOrderResponse, error)
	GetPurchaseOrder(ctx context.Context, id uint) (*dto.PurchaseOrderResponse, error)
	CreatePurchaseOrder(ctx context.Context, req *dto.CreatePurchaseOrderRequest) (*dto.PurchaseOrderResponse, error)
}

type inventoryService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewInventoryService creates an InventoryService
func NewInventoryService(repo *repository.Repository, logger *zap.Logger) InventoryService {
	return &inventoryService{repo: repo, logger: logger}
}

// ────────────────────── Items ──────────────────────

func (s *inventoryService) ListItems(ctx context.Context) ([]dto.InventoryResponse, error) {
	items, err := s.repo.Inventory.List(ctx)
	if err != nil {
		s.logger.Error("list inventory failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.InventoryResponse, 0, len(items))
	for i := range items {
		result = append(result, toInventoryResponse(&items[i]))
	}
	return result, nil
}

func (s *inventoryService) GetItem(ctx context.Context, id uint) (*dto.InventoryResponse, error) {
	item, err := s.getItem(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toInventoryResponse(item)
	return &resp, nil
}

func (s *inventoryService) CreateItem(ctx context.Context, req *dto.CreateInventoryRequest) (*dto.InventoryResponse, error) {
	item := &model.Inventory{
		ItemName:     req.ItemName,
		Quantity:     intOr(req.Quantity, 0),
		Location:     req.Location,
		DemandPlanID: req.DemandPlanID,
	}
	if err := s.repo.Inventory.Create(ctx, item); err != nil {
		s.logger.Error("create inventory item failed", zap.Error(err))
		return nil, err
	}

	resp := toInventoryResponse(item)
	return &resp, nil
}

func (s *inventoryService) UpdateItem(ctx context.Context, id uint, req *dto.UpdateInventoryRequest) (*dto.InventoryResponse, error) {
	item, err := s.getItem(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.ItemName != nil {
		item.ItemName = *req.ItemName
	}
	if req.Quantity != nil {
		item.Quantity = *req.Quantity
	}
	if req.Location != nil {
		item.Location = req.Location
	}
	if req.DemandPlanID != nil {
		item.DemandPlanID = req.DemandPlanID
	}

	if err := s.repo.Inventory.Update(ctx, item); err != nil {
		s.logger.Error("update inventory item failed", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	resp := toInventoryResponse(item)
	return &resp, nil
}

// ────────────────────── Demand plans ──────────────────────

func (s *inventoryService) ListDemandPlans(ctx context.Context) ([]dto.DemandPlanResponse, error) {
	plans, err := s.repo.DemandPlan.List(ctx)
	if err != nil {
		s.logger.Error("list demand plans failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.DemandPlanResponse, 0, len(plans))
	for i := range plans {
		result = append(result, toDemandPlanResponse(&plans[i]))
	}
	return result, nil
}

func (s *inventoryService) CreateDemandPlan(ctx context.Context, req *dto.CreateDemandPlanRequest) (*dto.DemandPlanResponse, error) {
	planDate, err := dateOrDefault(req.PlanDate, model.Today())
	if err != nil {
		return nil, err
	}

	plan := &model.DemandPlan{
		ItemName:         req.ItemName,
		ForecastQuantity: intOr(req.ForecastQuantity, 0),
		PlanDate:         planDate,
	}
	if err := s.repo.DemandPlan.Create(ctx, plan); err != nil {
		s.logger.Error("create demand plan failed", zap.Error(err))
		return nil, err
	}

	resp := toDemandPlanResponse(plan)
	return &resp, nil
}

// ────────────────────── Suppliers ──────────────────────

func (s *inventoryService) ListSuppliers(ctx context.Context) ([]dto.SupplierResponse, error) {
	suppliers, err := s.repo.Supplier.List(ctx)
	if err != nil {
		s.logger.Error("list suppliers failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.SupplierResponse, 0, len(suppliers))
	for i := range suppliers {
		result = append(result, toSupplierResponse(&suppliers[i]))
	}
	return result, nil
}

func (s *inventoryService) GetSupplier(ctx context.Context, id uint) (*dto.SupplierResponse, error) {
	sup, err := s.getSupplier(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toSupplierResponse(sup)
	return &resp, nil
}

func (s *inventoryService) CreateSupplier(ctx context.Context, req *dto.CreateSupplierRequest) (*dto.SupplierResponse, error) {
	sup := &model.Supplier{
		Name:        req.Name,
		ContactInfo: req.ContactInfo,
		Address:     req.Address,
	}
	if err := s.repo.Supplier.Create(ctx, sup); err != nil {
		s.logger.Error("create supplier failed", zap.Error(err))
		return nil, err
	}

	resp := toSupplierResponse(sup)
	return &resp, nil
}

func (s *inventoryService) UpdateSupplier(ctx context.Context, id uint, req *dto.UpdateSupplierRequest) (*dto.SupplierResponse, error) {
	sup, err := s.getSupplier(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		sup.Name = *req.Name
	}
	if req.ContactInfo != nil {
		sup.ContactInfo = req.ContactInfo
	}
	if req.Address != nil {
		sup.Address = req.Address
	}

	if err := s.repo.Supplier.Update(ctx, sup); err != nil {
		s.logger.Error("update supplier failed", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}

	resp := toSupplierResponse(sup)
	return &resp, nil
}

// ────────────────────── Purchase orders ──────────────────────

func (s *inventoryService) ListPurchaseOrders(ctx context.Context, req *dto.PurchaseOrderListRequest) ([]dto.PurchaseOrderResponse, error) {
	orders, err := s.repo.PurchaseOrder.List(ctx, req.Status)
	if err != nil {
		s.logger.Error("list purchase orders failed", zap.Error(err))
		return nil, err
	}

	result := make([]dto.PurchaseOrderResponse, 0, len(orders))
	for i := range orders {
		result = append(result, toPurchaseOrderResponse(&orders[i]))
	}
	return result, nil
}

func (s *inventoryService) GetPurchaseOrder(ctx context.Context, id uint) (*dto.PurchaseOrderResponse, error) {
	po, err := s.repo.PurchaseOrder.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.NotFound("Purchase order", id)
		}
		s.logger.Error("get purchase order failed", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	resp := toPurchaseOrderResponse(po)
	return &resp, nil
}

// CreatePurchaseOrder stores the order, its lines and its ledger entry in
// one transaction. Every order is booked, a zero total included.
func (s *inventoryService) CreatePurchaseOrder(ctx context.Context, req *dto.CreatePurchaseOrderRequest) (*dto.PurchaseOrderResponse, error) {
	orderDate, err := dateOrDefault(req.OrderDate, model.Today())
	if err != nil {
		return nil, err
	}

	po := &model.PurchaseOrder{
		OrderDate:    orderDate,
		TotalAmount:  decimalOrZero(req.TotalAmount),
		Status:       stringOr(req.Status, model.OrderStatusPending),
		SupplierID:   req.SupplierID,
		DemandPlanID: req.DemandPlanID,
	}

	err = s.repo.Transaction(ctx, func(tx *repository.Repository) error {
		if err := tx.PurchaseOrder.Create(ctx, po); err != nil {
			return fmt.Errorf("create purchase order: %w", err)
		}

		lines := make([]model.PurchaseOrderInventory, 0, len(req.Items))
		for _, it := range req.Items {
			lines = append(lines, model.PurchaseOrderInventory{
				PurchaseOrderID: po.PurchaseOrderID,
				InventoryID:     it.InventoryID,
				Quantity:        intOr(it.Quantity, 1),
			})
		}
		if err := tx.PurchaseOrder.AddItems(ctx, lines); err != nil {
			return fmt.Errorf("add purchase order items: %w", err)
		}
		po.Items = lines

		_, err := RecordMonetaryEvent(ctx, tx, MonetaryEvent{
			Source:      SourcePurchaseOrder,
			SourceID:    po.PurchaseOrderID,
			Date:        po.OrderDate,
			Amount:      po.TotalAmount,
			Description: fmt.Sprintf("Purchase Order #%d", po.PurchaseOrderID),
		})
		return err
	})
	if err != nil {
		s.logger.Error("create purchase order failed", zap.Uint("supplier_id", req.SupplierID), zap.Error(err))
		return nil, err
	}

	resp := toPurchaseOrderResponse(po)
	return &resp, nil
}

// ── helpers ──

func (s *inventoryService) getItem(ctx context.Context, id uint) (*model.Inventory, error) {
	item, err := s.repo.Inventory.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.NotFound("Inventory item", id)
		}
		s.logger.Error("get inventory item failed", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return item, nil
}

func (s *inventoryService) getSupplier(ctx context.Context, id uint) (*model.Supplier, error) {
	sup, err := s.repo.Supplier.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.NotFound("Supplier", id)
		}
		s.logger.Error("get supplier failed", zap.Uint("id", id), zap.Error(err))
		return nil, err
	}
	return sup, nil
}

func toInventoryResponse(i *model.Inventory) dto.InventoryResponse {
	return dto.InventoryResponse{
		ID:           i.InventoryID,
		ItemName:     i.ItemName,
		Quantity:     i.Quantity,
		Location:     i.Location,
		DemandPlanID: i.DemandPlanID,
	}
}

func toDemandPlanResponse(p *model.DemandPlan) dto.DemandPlanResponse {
	return dto.DemandPlanResponse{
		ID:               p.DemandPlanID,
		ItemName:         p.ItemName,
		ForecastQuantity: p.ForecastQuantity,
		PlanDate:         p.PlanDate.String(),
	}
}

func toSupplierResponse(s *model.Supplier) dto.SupplierResponse {
	return dto.SupplierResponse{
		ID:          s.SupplierID,
		Name:        s.Name,
		ContactInfo: s.ContactInfo,
		Address:     s.Address,
	}
}

func toPurchaseOrderResponse(po *model.PurchaseOrder) dto.PurchaseOrderResponse {
	resp := dto.PurchaseOrderResponse{
		ID:           po.PurchaseOrderID,
		OrderDate:    po.OrderDate.String(),
		TotalAmount:  money(po.TotalAmount),
		Status:       po.Status,
		SupplierID:   po.SupplierID,
		DemandPlanID: po.DemandPlanID,
		Items:        make([]dto.PurchaseOrderItemResponse, 0, len(po.Items)),
	}
	if po.Supplier != nil {
		name := po.Supplier.Name
		resp.SupplierName = &name
	}
	for _, it := range po.Items {
		line := dto.PurchaseOrderItemResponse{
			InventoryID: it.InventoryID,
			Quantity:    it.Quantity,
		}
		if it.Inventory != nil {
			name := it.Inventory.ItemName
			line.ItemName = &name
		}
		resp.Items = append(resp.Items, line)
	}
	return resp
}
