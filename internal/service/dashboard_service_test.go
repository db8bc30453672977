package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"eldercare-mis/config"
	"eldercare-mis/internal/model"
)

var fixedNow = time.Date(2024, time.June, 15, 23, 30, 0, 0, time.UTC)

func setupTestDashboardService() (*dashboardService, *mockStore) {
	repo, st := newMockRepository()
	svc := NewDashboardService(repo, config.ReportConfig{
		LowStockThreshold: 10,
		TrendDays:         30,
		TopDonorLimit:     10,
	}, zap.NewNop()).(*dashboardService)
	svc.now = func() time.Time { return fixedNow }
	return svc, st
}

func seedRecord(st *mockStore, date, typ, amount string) {
	r := rec(date, typ, amount)
	r.FinancialRecordID = st.id()
	st.records[r.FinancialRecordID] = &r
}

func seedDonation(st *mockStore, donorID uint, date, amount string) {
	d, _ := model.ParseDate(date)
	don := &model.Donation{
		DonationID:   st.id(),
		DonationType: model.DonationMonetary,
		Status:       "Completed",
		Amount:       decimal.RequireFromString(amount),
		DonationDate: d,
		DonorID:      donorID,
	}
	st.donations[don.DonationID] = don
}

func seedDonor(st *mockStore, name string) uint {
	d := &model.Donor{DonorID: st.id(), Name: name}
	st.donors[d.DonorID] = d
	return d.DonorID
}

// ── Overview ──

func TestDashboardService_Overview(t *testing.T) {
	svc, st := setupTestDashboardService()

	seedRecord(st, "2024-06-01", model.TransactionIncome, "1000")
	seedRecord(st, "2024-06-02", model.TransactionExpense, "300")
	seedRecord(st, "2024-06-03", "Utilities", "50")
	donor := seedDonor(st, "Ada")
	seedDonation(st, donor, "2024-06-04", "500")

	for _, q := range []int{3, 10, 25} {
		it := &model.Inventory{InventoryID: st.id(), ItemName: "x", Quantity: q}
		st.inventory[it.InventoryID] = it
	}
	for _, status := range []string{model.StaffStatusActive, model.StaffStatusActive, model.StaffStatusInactive} {
		s := &model.Staff{StaffID: st.id(), Name: "s", Status: status}
		st.staff[s.StaffID] = s
	}

	got, err := svc.Overview(context.Background())
	if err != nil {
		t.Fatalf("Overview should succeed: %v", err)
	}

	if got.Financial.TotalIncome != 1000 || got.Financial.TotalExpense != 350 || got.Financial.Net != 650 {
		t.Errorf("unexpected financial block %+v", got.Financial)
	}
	if got.Donations.TotalAmount != 500 || got.Donations.Count != 1 {
		t.Errorf("unexpected donations block %+v", got.Donations)
	}
	if got.Donors.Count != 1 {
		t.Errorf("expected 1 donor, got %d", got.Donors.Count)
	}
	if got.Inventory.TotalItems != 3 || got.Inventory.LowStockCount != 1 {
		t.Errorf("unexpected inventory block %+v", got.Inventory)
	}
	if got.Staff.ActiveCount != 2 {
		t.Errorf("expected 2 active staff, got %d", got.Staff.ActiveCount)
	}
}

func TestDashboardService_Overview_Empty(t *testing.T) {
	svc, _ := setupTestDashboardService()

	got, err := svc.Overview(context.Background())
	if err != nil {
		t.Fatalf("Overview should succeed: %v", err)
	}
	if got.Financial.Net != 0 || got.Donations.Count != 0 || got.Inventory.TotalItems != 0 {
		t.Errorf("expected zeroed overview, got %+v", got)
	}
}

// ── Trends ──

func TestDashboardService_FinancialTrends_Window(t *testing.T) {
	svc, st := setupTestDashboardService()

	seedRecord(st, "2024-05-15", model.TransactionIncome, "1")   // today-31, outside
	seedRecord(st, "2024-05-16", model.TransactionIncome, "100") // today-30, first day in
	seedRecord(st, "2024-06-15", model.TransactionExpense, "40")

	got, err := svc.FinancialTrends(context.Background(), nil)
	if err != nil {
		t.Fatalf("FinancialTrends should succeed: %v", err)
	}
	if len(got.Trends) != 2 {
		t.Fatalf("expected 2 days without zero-fill, got %+v", got.Trends)
	}
	if got.Trends[0].Date != "2024-05-16" || got.Trends[0].Income != 100 {
		t.Errorf("unexpected first point %+v", got.Trends[0])
	}
	if got.Trends[1].Date != "2024-06-15" || got.Trends[1].Expense != 40 {
		t.Errorf("unexpected last point %+v", got.Trends[1])
	}

	got, _ = svc.FinancialTrends(context.Background(), intPtr(0))
	if len(got.Trends) != 1 || got.Trends[0].Date != "2024-06-15" {
		t.Errorf("days=0 should keep only today, got %+v", got.Trends)
	}
}

func TestDashboardService_FinancialTrends_FutureDatedIncluded(t *testing.T) {
	svc, st := setupTestDashboardService()

	seedRecord(st, "2024-06-15", model.TransactionIncome, "10")
	seedRecord(st, "2024-07-01", model.TransactionExpense, "25") // post-dated entry

	got, err := svc.FinancialTrends(context.Background(), intPtr(7))
	if err != nil {
		t.Fatalf("FinancialTrends should succeed: %v", err)
	}
	if len(got.Trends) != 2 {
		t.Fatalf("window has no upper bound, expected 2 days, got %+v", got.Trends)
	}
	if got.Trends[1].Date != "2024-07-01" || got.Trends[1].Expense != 25 {
		t.Errorf("unexpected future point %+v", got.Trends[1])
	}
}

func TestDashboardService_DonationTrends(t *testing.T) {
	svc, st := setupTestDashboardService()
	donor := seedDonor(st, "Ada")

	seedDonation(st, donor, "2024-06-01", "10")
	seedDonation(st, donor, "2024-06-01", "15")
	seedDonation(st, donor, "2024-06-10", "5")

	got, err := svc.DonationTrends(context.Background(), intPtr(7))
	if err != nil {
		t.Fatalf("DonationTrends should succeed: %v", err)
	}
	if len(got.Trends) != 1 || got.Trends[0].Date != "2024-06-10" || got.Trends[0].Count != 1 {
		t.Errorf("expected only 2024-06-10 within 7 days, got %+v", got.Trends)
	}

	got, _ = svc.DonationTrends(context.Background(), nil)
	if len(got.Trends) != 2 || got.Trends[0].Count != 2 || got.Trends[0].Amount != 25 {
		t.Errorf("unexpected default window trends %+v", got.Trends)
	}
}

// ── Rankings ──

func TestDashboardService_TopDonors(t *testing.T) {
	svc, st := setupTestDashboardService()

	zero := seedDonor(st, "Zero")
	seedDonation(st, zero, "2024-06-01", "0")
	small := seedDonor(st, "Small")
	seedDonation(st, small, "2024-06-01", "20")
	big := seedDonor(st, "Big")
	seedDonation(st, big, "2024-06-01", "200")

	got, err := svc.TopDonors(context.Background(), nil)
	if err != nil {
		t.Fatalf("TopDonors should succeed: %v", err)
	}
	if len(got.TopDonors) != 2 || got.TopDonors[0].Name != "Big" || got.TopDonors[1].Name != "Small" {
		t.Errorf("unexpected ranking %+v", got.TopDonors)
	}

	got, _ = svc.TopDonors(context.Background(), intPtr(1))
	if len(got.TopDonors) != 1 {
		t.Errorf("expected ranking truncated to 1, got %d", len(got.TopDonors))
	}
}

func TestDashboardService_ExpenseBreakdown(t *testing.T) {
	svc, st := setupTestDashboardService()

	for _, e := range []model.Expense{
		{Type: "Food", Amount: decimal.NewFromInt(12)},
		{Type: "", Amount: decimal.NewFromInt(8)},
	} {
		e := e
		e.ExpenseID = st.id()
		st.expenses[e.ExpenseID] = &e
	}

	got, err := svc.ExpenseBreakdown(context.Background())
	if err != nil {
		t.Fatalf("ExpenseBreakdown should succeed: %v", err)
	}
	if got.Breakdown["Food"] != 12 || got.Breakdown[model.ExpenseTypeOther] != 8 {
		t.Errorf("unexpected breakdown %+v", got.Breakdown)
	}
}
