package handler

import (
	"github.com/gin-gonic/gin"

	"eldercare-mis/internal/dto"
	"eldercare-mis/internal/service"
	"eldercare-mis/pkg/response"
)

// InventoryHandler stock, demand plans, suppliers and purchase orders
type InventoryHandler struct {
	invSvc service.InventoryService
}

// NewInventoryHandler creates an InventoryHandler
func NewInventoryHandler(invSvc service.InventoryService) *InventoryHandler {
	return &InventoryHandler{invSvc: invSvc}
}

// ────────────────────── Items ──────────────────────

// ListItems GET /api/inventory/items
func (h *InventoryHandler) ListItems(c *gin.Context) {
	items, err := h.invSvc.ListItems(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, "Inventory items retrieved successfully", items)
}

// GetItem GET /api/inventory/items/:id
func (h *InventoryHandler) GetItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	item, err := h.invSvc.GetItem(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, "Inventory item retrieved successfully", item)
}

// CreateItem POST /api/inventory/items
func (h *InventoryHandler) CreateItem(c *gin.Context) {
	var req dto.CreateInventoryRequest
	if !bindJSON(c, &req) {
		return
	}

	item, err := h.invSvc.CreateItem(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Created(c, "Inventory item created successfully", item)
}

// UpdateItem PUT /api/inventory/items/:id
func (h *InventoryHandler) UpdateItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.UpdateInventoryRequest
	if !bindJSON(c, &req) {
		return
	}

	item, err := h.invSvc.UpdateItem(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, "Inventory item updated successfully", item)
}

// ────────────────────── Demand plans ──────────────────────

// ListDemandPlans GET /api/inventory/demand-plans
func (h *InventoryHandler) ListDemandPlans(c *gin.Context) {
	plans, err := h.invSvc.ListDemandPlans(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, "Demand plans retrieved successfully", plans)
}

// CreateDemandPlan POST /api/inventory/demand-plans
func (h *InventoryHandler) CreateDemandPlan(c *gin.Context) {
	var req dto.CreateDemandPlanRequest
	if !bindJSON(c, &req) {
		return
	}

	plan, err := h.invSvc.CreateDemandPlan(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Created(c, "Demand plan created successfully", plan)
}

// ────────────────────── Suppliers ──────────────────────

// ListSuppliers GET /api/inventory/suppliers
func (h *InventoryHandler) ListSuppliers(c *gin.Context) {
	suppliers, err := h.invSvc.ListSuppliers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, "Suppliers retrieved successfully", suppliers)
}

// GetSupplier GET /api/inventory/suppliers/:id
func (h *InventoryHandler) GetSupplier(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	supplier, err := h.invSvc.GetSupplier(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, "Supplier retrieved successfully", supplier)
}

// CreateSupplier POST /api/inventory/suppliers
func (h *InventoryHandler) CreateSupplier(c *gin.Context) {
	var req dto.CreateSupplierRequest
	if !bindJSON(c, &req) {
		return
	}

	supplier, err := h.invSvc.CreateSupplier(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Created(c, "Supplier created successfully", supplier)
}

// UpdateSupplier PUT /api/inventory/suppliers/:id
func (h *InventoryHandler) UpdateSupplier(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req dto.UpdateSupplierRequest
	if !bindJSON(c, &req) {
		return
	}

	supplier, err := h.invSvc.UpdateSupplier(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, "Supplier updated successfully", supplier)
}

// ────────────────────── Purchase orders ──────────────────────

// ListPurchaseOrders GET /api/inventory/purchase-orders?status
func (h *InventoryHandler) ListPurchaseOrders(c *gin.Context) {
	var req dto.PurchaseOrderListRequest
	if !bindQuery(c, &req) {
		return
	}

	orders, err := h.invSvc.ListPurchaseOrders(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, "Purchase orders retrieved successfully", orders)
}

// GetPurchaseOrder GET /api/inventory/purchase-orders/:id
func (h *InventoryHandler) GetPurchaseOrder(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	order, err := h.invSvc.GetPurchaseOrder(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	response.OK(c, "Purchase order retrieved successfully", order)
}

// CreatePurchaseOrder POST /api/inventory/purchase-orders
// Every order is booked in the ledger as an expense.
func (h *InventoryHandler) CreatePurchaseOrder(c *gin.Context) {
	var req dto.CreatePurchaseOrderRequest
	if !bindJSON(c, &req) {
		return
	}

	order, err := h.invSvc.CreatePurchaseOrder(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	response.Created(c, "Purchase order created successfully", order)
}
