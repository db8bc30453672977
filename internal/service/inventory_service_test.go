package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"eldercare-mis/internal/dto"
	"eldercare-mis/internal/model"
	pkgerrors "eldercare-mis/pkg/errors"
)

func setupTestInventoryService() (InventoryService, *mockStore) {
	repo, st := newMockRepository()
	return NewInventoryService(repo, zap.NewNop()), st
}

// ── Purchase orders ──

func TestInventoryService_CreatePurchaseOrder_BooksExpense(t *testing.T) {
	svc, st := setupTestInventoryService()
	ctx := context.Background()

	sup, _ := svc.CreateSupplier(ctx, &dto.CreateSupplierRequest{Name: "Acme"})
	item, _ := svc.CreateItem(ctx, &dto.CreateInventoryRequest{ItemName: "Gloves"})

	po, err := svc.CreatePurchaseOrder(ctx, &dto.CreatePurchaseOrderRequest{
		SupplierID:  sup.ID,
		TotalAmount: decPtr("320.40"),
		OrderDate:   strPtr("2024-04-02"),
		Items:       []dto.PurchaseOrderItemRequest{{InventoryID: item.ID, Quantity: intPtr(40)}},
	})
	if err != nil {
		t.Fatalf("CreatePurchaseOrder should succeed: %v", err)
	}
	if po.Status != model.OrderStatusPending {
		t.Errorf("expected default status Pending, got %s", po.Status)
	}
	if len(po.Items) != 1 || po.Items[0].Quantity != 40 {
		t.Errorf("unexpected order lines %+v", po.Items)
	}

	if len(st.records) != 1 {
		t.Fatalf("expected exactly 1 financial record, got %d", len(st.records))
	}
	for id, rec := range st.records {
		if rec.TransactionType != model.TransactionExpense {
			t.Errorf("expected type Expense, got %s", rec.TransactionType)
		}
		if !rec.Amount.Equal(decimal.RequireFromString("320.40")) || rec.TransactionDate.String() != "2024-04-02" {
			t.Errorf("record must match the order: %+v", rec)
		}
		if links := st.orderLinks[id]; len(links) != 1 || links[0] != po.ID {
			t.Errorf("expected link to order %d, got %v", po.ID, links)
		}
	}
}

func TestInventoryService_CreatePurchaseOrder_ZeroTotalStillBooked(t *testing.T) {
	svc, st := setupTestInventoryService()
	ctx := context.Background()
	sup, _ := svc.CreateSupplier(ctx, &dto.CreateSupplierRequest{Name: "Acme"})

	po, err := svc.CreatePurchaseOrder(ctx, &dto.CreatePurchaseOrderRequest{SupplierID: sup.ID})
	if err != nil {
		t.Fatalf("CreatePurchaseOrder should succeed: %v", err)
	}
	if len(st.records) != 1 {
		t.Fatalf("zero-total order must still be booked, got %d records", len(st.records))
	}
	for id, rec := range st.records {
		if !rec.Amount.IsZero() {
			t.Errorf("expected zero amount, got %s", rec.Amount)
		}
		if *rec.Description != "Purchase Order #"+itoa(po.ID) {
			t.Errorf("unexpected description %q", *rec.Description)
		}
		if len(st.orderLinks[id]) != 1 {
			t.Error("zero-total order must be linked")
		}
	}
}

func TestInventoryService_CreatePurchaseOrder_MalformedDate(t *testing.T) {
	svc, st := setupTestInventoryService()

	_, err := svc.CreatePurchaseOrder(context.Background(), &dto.CreatePurchaseOrderRequest{
		SupplierID: 1,
		OrderDate:  strPtr("2024-13-40"),
	})
	if !pkgerrors.IsClientInput(err) {
		t.Fatalf("expected client input error, got %v", err)
	}
	if len(st.orders) != 0 || len(st.records) != 0 {
		t.Error("nothing should be persisted")
	}
}

func TestInventoryService_ListPurchaseOrders_Enriched(t *testing.T) {
	svc, _ := setupTestInventoryService()
	ctx := context.Background()

	sup, _ := svc.CreateSupplier(ctx, &dto.CreateSupplierRequest{Name: "Acme"})
	item, _ := svc.CreateItem(ctx, &dto.CreateInventoryRequest{ItemName: "Masks"})
	_, _ = svc.CreatePurchaseOrder(ctx, &dto.CreatePurchaseOrderRequest{
		SupplierID: sup.ID,
		Items:      []dto.PurchaseOrderItemRequest{{InventoryID: item.ID}},
	})
	_, _ = svc.CreatePurchaseOrder(ctx, &dto.CreatePurchaseOrderRequest{SupplierID: sup.ID, Status: strPtr("Delivered")})

	list, err := svc.ListPurchaseOrders(ctx, &dto.PurchaseOrderListRequest{Status: model.OrderStatusPending})
	if err != nil {
		t.Fatalf("ListPurchaseOrders should succeed: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 pending order, got %d", len(list))
	}
	po := list[0]
	if po.SupplierName == nil || *po.SupplierName != "Acme" {
		t.Errorf("expected supplier_name Acme, got %v", po.SupplierName)
	}
	if len(po.Items) != 1 || po.Items[0].ItemName == nil || *po.Items[0].ItemName != "Masks" || po.Items[0].Quantity != 1 {
		t.Errorf("unexpected items %+v", po.Items)
	}
}

func TestInventoryService_GetPurchaseOrder_NotFound(t *testing.T) {
	svc, _ := setupTestInventoryService()

	_, err := svc.GetPurchaseOrder(context.Background(), 3)
	if !pkgerrors.IsNotFound(err) {
		t.Errorf("expected not found, got %v", err)
	}
}

// ── Items / suppliers ──

func TestInventoryService_UpdateItem_Partial(t *testing.T) {
	svc, _ := setupTestInventoryService()
	ctx := context.Background()

	item, _ := svc.CreateItem(ctx, &dto.CreateInventoryRequest{ItemName: "Soap", Quantity: intPtr(12), Location: strPtr("B1")})

	updated, err := svc.UpdateItem(ctx, item.ID, &dto.UpdateInventoryRequest{Quantity: intPtr(3)})
	if err != nil {
		t.Fatalf("UpdateItem should succeed: %v", err)
	}
	if updated.Quantity != 3 || updated.ItemName != "Soap" || *updated.Location != "B1" {
		t.Errorf("unexpected item after update: %+v", updated)
	}
}

func TestInventoryService_Supplier_GetAndUpdate(t *testing.T) {
	svc, _ := setupTestInventoryService()
	ctx := context.Background()

	if _, err := svc.GetSupplier(ctx, 1); !pkgerrors.IsNotFound(err) {
		t.Errorf("expected not found, got %v", err)
	}

	sup, _ := svc.CreateSupplier(ctx, &dto.CreateSupplierRequest{Name: "Acme", Address: strPtr("1 Road")})
	updated, err := svc.UpdateSupplier(ctx, sup.ID, &dto.UpdateSupplierRequest{ContactInfo: strPtr("555-0100")})
	if err != nil {
		t.Fatalf("UpdateSupplier should succeed: %v", err)
	}
	if *updated.ContactInfo != "555-0100" || *updated.Address != "1 Road" || updated.Name != "Acme" {
		t.Errorf("unexpected supplier after update: %+v", updated)
	}
}

func TestInventoryService_CreateDemandPlan(t *testing.T) {
	svc, _ := setupTestInventoryService()
	ctx := context.Background()

	plan, err := svc.CreateDemandPlan(ctx, &dto.CreateDemandPlanRequest{ItemName: "Rice", ForecastQuantity: intPtr(200)})
	if err != nil {
		t.Fatalf("CreateDemandPlan should succeed: %v", err)
	}
	if plan.PlanDate != model.Today().String() || plan.ForecastQuantity != 200 {
		t.Errorf("unexpected plan %+v", plan)
	}

	_, err = svc.CreateDemandPlan(ctx, &dto.CreateDemandPlanRequest{ItemName: "Rice", PlanDate: strPtr("2024-2-1")})
	if !pkgerrors.IsClientInput(err) {
		t.Errorf("expected client input error, got %v", err)
	}
}
