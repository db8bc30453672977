package model

import "github.com/shopspring/decimal"

// Purchase order statuses
const (
	OrderStatusPending = "Pending"
)

// DemandPlan forecast of required stock (table demand_plan)
type DemandPlan struct {
	DemandPlanID     uint   `gorm:"primaryKey"                 json:"id"`
	ItemName         string `gorm:"type:varchar(200);not null" json:"item_name"`
	ForecastQuantity int    `gorm:"not null"                   json:"forecast_quantity"`
	PlanDate         Date   `gorm:"not null"                   json:"plan_date"`
}

// TableName table name
func (DemandPlan) TableName() string { return "demand_plan" }

// Inventory stock item (table inventory)
type Inventory struct {
	InventoryID  uint    `gorm:"primaryKey"                 json:"id"`
	ItemName     string  `gorm:"type:varchar(200);not null" json:"item_name"`
	Quantity     int     `gorm:"not null;default:0"         json:"quantity"`
	Location     *string `gorm:"type:varchar(200)"          json:"location"`
	DemandPlanID *uint   `json:"demand_plan_id"`

	DemandPlan *DemandPlan `gorm:"foreignKey:DemandPlanID;references:DemandPlanID" json:"-"`
}

// TableName table name
func (Inventory) TableName() string { return "inventory" }

// Supplier (table supplier)
type Supplier struct {
	SupplierID  uint    `gorm:"primaryKey"                 json:"id"`
	Name        string  `gorm:"type:varchar(200);not null" json:"name"`
	ContactInfo *string `gorm:"type:varchar(200)"          json:"contact_info"`
	Address     *string `gorm:"type:varchar(500)"          json:"address"`
}

// TableName table name
func (Supplier) TableName() string { return "supplier" }

// PurchaseOrder (table purchase_order)
type PurchaseOrder struct {
	PurchaseOrderID uint            `gorm:"primaryKey"                                  json:"id"`
	OrderDate       Date            `gorm:"not null"                                    json:"order_date"`
	TotalAmount     decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"       json:"total_amount"`
	Status          string          `gorm:"type:varchar(50);not null;default:'Pending';index" json:"status"`
	SupplierID      uint            `gorm:"not null"                                    json:"supplier_id"`
	DemandPlanID    *uint           `json:"demand_plan_id"`

	Supplier   *Supplier                `gorm:"foreignKey:SupplierID;references:SupplierID"         json:"-"`
	DemandPlan *DemandPlan              `gorm:"foreignKey:DemandPlanID;references:DemandPlanID"     json:"-"`
	Items      []PurchaseOrderInventory `gorm:"foreignKey:PurchaseOrderID;references:PurchaseOrderID" json:"-"`
}

// TableName table name
func (PurchaseOrder) TableName() string { return "purchase_order" }

// PurchaseOrderInventory order line (table purchase_order_inventory)
type PurchaseOrderInventory struct {
	PurchaseOrderID uint `gorm:"primaryKey;autoIncrement:false" json:"purchase_order_id"`
	InventoryID     uint `gorm:"primaryKey;autoIncrement:false" json:"inventory_id"`
	Quantity        int  `gorm:"not null"                       json:"quantity"`

	Inventory *Inventory `gorm:"foreignKey:InventoryID;references:InventoryID" json:"-"`
}

// TableName table name
func (PurchaseOrderInventory) TableName() string { return "purchase_order_inventory" }

// PurchaseOrderFinancialRecord ledger link for a purchase order
type PurchaseOrderFinancialRecord struct {
	PurchaseOrderID   uint `gorm:"primaryKey;autoIncrement:false"`
	FinancialRecordID uint `gorm:"primaryKey;autoIncrement:false"`

	PurchaseOrder   *PurchaseOrder   `gorm:"foreignKey:PurchaseOrderID;references:PurchaseOrderID;constraint:OnDelete:CASCADE"`
	FinancialRecord *FinancialRecord `gorm:"foreignKey:FinancialRecordID;references:FinancialRecordID;constraint:OnDelete:CASCADE"`
}

// TableName table name
func (PurchaseOrderFinancialRecord) TableName() string { return "purchase_order_financial_record" }
