package dto

import "github.com/shopspring/decimal"

// ── inventory items ──

// CreateInventoryRequest body of POST /inventory/items
type CreateInventoryRequest struct {
	ItemName     string  `json:"item_name" binding:"required"`
	Quantity     *int    `json:"quantity"`
	Location     *string `json:"location"`
	DemandPlanID *uint   `json:"demand_plan_id"`
}

// UpdateInventoryRequest body of PUT /inventory/items/:id
type UpdateInventoryRequest struct {
	ItemName     *string `json:"item_name"`
	Quantity     *int    `json:"quantity"`
	Location     *string `json:"location"`
	DemandPlanID *uint   `json:"demand_plan_id"`
}

// InventoryResponse a stock item
type InventoryResponse struct {
	ID           uint    `json:"id"`
	ItemName     string  `json:"item_name"`
	Quantity     int     `json:"quantity"`
	Location     *string `json:"location"`
	DemandPlanID *uint   `json:"demand_plan_id"`
}

// ── demand plans ──

// CreateDemandPlanRequest body of POST /inventory/demand-plans
type CreateDemandPlanRequest struct {
	ItemName         string  `json:"item_name" binding:"required"`
	ForecastQuantity *int    `json:"forecast_quantity"`
	PlanDate         *string `json:"plan_date"`
}

// DemandPlanResponse a demand forecast
type DemandPlanResponse struct {
	ID               uint   `json:"id"`
	ItemName         string `json:"item_name"`
	ForecastQuantity int    `json:"forecast_quantity"`
	PlanDate         string `json:"plan_date"`
}

// ── suppliers ──

// CreateSupplierRequest body of POST /inventory/suppliers
type CreateSupplierRequest struct {
	Name        string  `json:"name" binding:"required"`
	ContactInfo *string `json:"contact_info"`
	Address     *string `json:"address"`
}

// UpdateSupplierRequest body of PUT /inventory/suppliers/:id
type UpdateSupplierRequest struct {
	Name        *string `json:"name"`
	ContactInfo *string `json:"contact_info"`
	Address     *string `json:"address"`
}

// SupplierResponse a supplier
type SupplierResponse struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	ContactInfo *string `json:"contact_info"`
	Address     *string `json:"address"`
}

// ── purchase orders ──

// PurchaseOrderListRequest query of GET /inventory/purchase-orders
type PurchaseOrderListRequest struct {
	Status string `form:"status"`
}

// PurchaseOrderItemRequest one order line
type PurchaseOrderItemRequest struct {
	InventoryID uint `json:"inventory_id" binding:"required"`
	Quantity    *int `json:"quantity"`
}

// CreatePurchaseOrderRequest body of POST /inventory/purchase-orders
type CreatePurchaseOrderRequest struct {
	OrderDate    *string                    `json:"order_date"`
	TotalAmount  *decimal.Decimal           `json:"total_amount"`
	Status       *string                    `json:"status"`
	SupplierID   uint                       `json:"supplier_id" binding:"required"`
	DemandPlanID *uint                      `json:"demand_plan_id"`
	Items        []PurchaseOrderItemRequest `json:"items" binding:"dive"`
}

// PurchaseOrderItemResponse one order line with its item name
type PurchaseOrderItemResponse struct {
	InventoryID uint    `json:"inventory_id"`
	ItemName    *string `json:"item_name"`
	Quantity    int     `json:"quantity"`
}

// PurchaseOrderResponse a purchase order with supplier and lines
type PurchaseOrderResponse struct {
	ID           uint                        `json:"id"`
	OrderDate    string                      `json:"order_date"`
	TotalAmount  float64                     `json:"total_amount"`
	Status       string                      `json:"status"`
	SupplierID   uint                        `json:"supplier_id"`
	SupplierName *string                     `json:"supplier_name"`
	DemandPlanID *uint                       `json:"demand_plan_id"`
	Items        []PurchaseOrderItemResponse `json:"items"`
}
