package repository_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"eldercare-mis/config"
	"eldercare-mis/internal/model"
	"eldercare-mis/internal/repository"
	"eldercare-mis/pkg/database"
)

// ═══════════════════════════════════════════════════════════
// Test Setup
// ═══════════════════════════════════════════════════════════

func newTestRepo(t *testing.T) (*repository.Repository, *gorm.DB) {
	t.Helper()
	cfg := &config.DatabaseConfig{
		Driver: config.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "mis.db"),
	}
	db, err := database.NewDB(cfg, "silent", zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db, cfg.Driver, zap.NewNop(), model.All()...))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	return repository.NewRepository(db), db
}

func date(t *testing.T, s string) model.Date {
	t.Helper()
	d, err := model.ParseDate(s)
	require.NoError(t, err)
	return d
}

func ptr[T any](v T) *T { return &v }

// ═══════════════════════════════════════════════════════════
// FinancialRecordRepository
// ═══════════════════════════════════════════════════════════

func TestFinancialRecordRepo_ListFiltersAndOrder(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	for _, r := range []model.FinancialRecord{
		{TransactionDate: date(t, "2024-01-10"), TransactionType: "Income", Amount: decimal.NewFromInt(100)},
		{TransactionDate: date(t, "2024-02-10"), TransactionType: "Expense", Amount: decimal.NewFromInt(40)},
		{TransactionDate: date(t, "2024-03-10"), TransactionType: "Income", Amount: decimal.RequireFromString("12.34")},
	} {
		r := r
		require.NoError(t, repo.FinancialRecord.Create(ctx, &r))
	}

	all, err := repo.FinancialRecord.List(ctx, repository.FinancialRecordFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "2024-03-10", all[0].TransactionDate.String(), "newest first")
	assert.True(t, all[0].Amount.Equal(decimal.RequireFromString("12.34")), "decimal survives storage")

	income, err := repo.FinancialRecord.List(ctx, repository.FinancialRecordFilter{Type: "Income"})
	require.NoError(t, err)
	assert.Len(t, income, 2)

	from, to := date(t, "2024-02-10"), date(t, "2024-03-10")
	ranged, err := repo.FinancialRecord.List(ctx, repository.FinancialRecordFilter{
		DateRange: repository.DateRange{From: &from, To: &to},
	})
	require.NoError(t, err)
	assert.Len(t, ranged, 2, "both bounds are inclusive")
}

func TestFinancialRecordRepo_GetByID_NotFound(t *testing.T) {
	repo, _ := newTestRepo(t)

	_, err := repo.FinancialRecord.GetByID(context.Background(), 404)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestFinancialRecordRepo_Links(t *testing.T) {
	repo, db := newTestRepo(t)
	ctx := context.Background()

	donor := &model.Donor{Name: "Ada", RegistrationDate: model.Today()}
	require.NoError(t, repo.Donor.Create(ctx, donor))
	don := &model.Donation{DonationType: model.DonationMonetary, Status: "Pending", Amount: decimal.NewFromInt(5), DonationDate: model.Today(), DonorID: donor.DonorID}
	require.NoError(t, repo.Donation.Create(ctx, don))
	rec := &model.FinancialRecord{TransactionDate: model.Today(), TransactionType: model.TransactionDonation, Amount: decimal.NewFromInt(5)}
	require.NoError(t, repo.FinancialRecord.Create(ctx, rec))

	require.NoError(t, repo.FinancialRecord.LinkDonation(ctx, don.DonationID, rec.FinancialRecordID))
	assert.Error(t, repo.FinancialRecord.LinkDonation(ctx, don.DonationID, rec.FinancialRecordID), "composite key rejects duplicates")

	links, err := repo.FinancialRecord.GetLinks(ctx, rec.FinancialRecordID)
	require.NoError(t, err)
	assert.Equal(t, []uint{don.DonationID}, links.DonationIDs)
	assert.Empty(t, links.PurchaseOrderIDs)
	assert.Empty(t, links.PayrollRecordIDs)

	// deleting the ledger entry cascades to its link row
	require.NoError(t, db.Delete(&model.FinancialRecord{}, rec.FinancialRecordID).Error)
	var n int64
	require.NoError(t, db.Model(&model.DonationFinancialRecord{}).Count(&n).Error)
	assert.Zero(t, n)
}

func TestRepository_TransactionRollsBack(t *testing.T) {
	repo, db := newTestRepo(t)
	ctx := context.Background()
	boom := errors.New("boom")

	err := repo.Transaction(ctx, func(tx *repository.Repository) error {
		if err := tx.Staff.Create(ctx, &model.Staff{Name: "Mia", Status: model.StaffStatusActive}); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	var n int64
	require.NoError(t, db.Model(&model.Staff{}).Count(&n).Error)
	assert.Zero(t, n)
	assert.NoError(t, repo.Ping(ctx))
}

// ═══════════════════════════════════════════════════════════
// Donation / Donor
// ═══════════════════════════════════════════════════════════

func TestDonationRepo_ListPreloadsDonor(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	ada := &model.Donor{Name: "Ada", RegistrationDate: model.Today(), Region: ptr("North")}
	bob := &model.Donor{Name: "Bob", RegistrationDate: model.Today()}
	require.NoError(t, repo.Donor.Create(ctx, ada))
	require.NoError(t, repo.Donor.Create(ctx, bob))

	for _, d := range []model.Donation{
		{DonationType: "Monetary", Status: "Completed", Amount: decimal.NewFromInt(10), DonationDate: date(t, "2024-05-01"), DonorID: ada.DonorID},
		{DonationType: "Monetary", Status: "Pending", Amount: decimal.NewFromInt(20), DonationDate: date(t, "2024-05-03"), DonorID: ada.DonorID},
		{DonationType: "Gift", Status: "Pending", DonationDate: date(t, "2024-05-02"), DonorID: bob.DonorID},
	} {
		d := d
		require.NoError(t, repo.Donation.Create(ctx, &d))
	}

	list, err := repo.Donation.List(ctx, repository.DonationFilter{DonorID: &ada.DonorID})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "2024-05-03", list[0].DonationDate.String())
	require.NotNil(t, list[0].Donor)
	assert.Equal(t, "Ada", list[0].Donor.Name)

	pending, err := repo.Donation.List(ctx, repository.DonationFilter{Status: "Pending"})
	require.NoError(t, err)
	assert.Len(t, pending, 2)

	since := date(t, "2024-05-02")
	recent, err := repo.Donation.List(ctx, repository.DonationFilter{Since: &since})
	require.NoError(t, err)
	assert.Len(t, recent, 2)

	donors, err := repo.Donor.List(ctx, "North")
	require.NoError(t, err)
	require.Len(t, donors, 1)
	assert.Len(t, donors[0].Donations, 2, "donor list carries its donations")
}

func TestDonorRepo_UpdateIgnoresLoadedDonations(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	donor := &model.Donor{Name: "Ada", RegistrationDate: model.Today()}
	require.NoError(t, repo.Donor.Create(ctx, donor))
	require.NoError(t, repo.Donation.Create(ctx, &model.Donation{
		DonationType: "Monetary", Status: "Pending", Amount: decimal.NewFromInt(1), DonationDate: model.Today(), DonorID: donor.DonorID,
	}))

	donors, err := repo.Donor.List(ctx, "")
	require.NoError(t, err)
	loaded := donors[0]
	loaded.Age = ptr(44)
	require.NoError(t, repo.Donor.Update(ctx, &loaded))

	got, err := repo.Donor.GetByID(ctx, donor.DonorID)
	require.NoError(t, err)
	assert.Equal(t, 44, *got.Age)
}

// ═══════════════════════════════════════════════════════════
// Purchase orders / staff
// ═══════════════════════════════════════════════════════════

func TestPurchaseOrderRepo_Preloads(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	sup := &model.Supplier{Name: "Acme"}
	require.NoError(t, repo.Supplier.Create(ctx, sup))
	gloves := &model.Inventory{ItemName: "Gloves", Quantity: 3}
	masks := &model.Inventory{ItemName: "Masks"}
	require.NoError(t, repo.Inventory.Create(ctx, gloves))
	require.NoError(t, repo.Inventory.Create(ctx, masks))

	po := &model.PurchaseOrder{OrderDate: model.Today(), TotalAmount: decimal.NewFromInt(90), Status: "Pending", SupplierID: sup.SupplierID}
	require.NoError(t, repo.PurchaseOrder.Create(ctx, po))
	require.NoError(t, repo.PurchaseOrder.AddItems(ctx, []model.PurchaseOrderInventory{
		{PurchaseOrderID: po.PurchaseOrderID, InventoryID: masks.InventoryID, Quantity: 10},
		{PurchaseOrderID: po.PurchaseOrderID, InventoryID: gloves.InventoryID, Quantity: 1},
	}))
	require.NoError(t, repo.PurchaseOrder.AddItems(ctx, nil))

	got, err := repo.PurchaseOrder.GetByID(ctx, po.PurchaseOrderID)
	require.NoError(t, err)
	require.NotNil(t, got.Supplier)
	assert.Equal(t, "Acme", got.Supplier.Name)
	require.Len(t, got.Items, 2)
	assert.Equal(t, "Gloves", got.Items[0].Inventory.ItemName, "lines ordered by inventory id")
	assert.Equal(t, 10, got.Items[1].Quantity)

	delivered, err := repo.PurchaseOrder.List(ctx, "Delivered")
	require.NoError(t, err)
	assert.Empty(t, delivered)
}

func TestStaffRepos_Filters(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	nurse := &model.Staff{Name: "Mia", Role: ptr("Nurse"), Status: model.StaffStatusActive}
	cook := &model.Staff{Name: "Sam", Role: ptr("Cook"), Status: model.StaffStatusInactive}
	require.NoError(t, repo.Staff.Create(ctx, nurse))
	require.NoError(t, repo.Staff.Create(ctx, cook))

	active, err := repo.Staff.List(ctx, repository.StaffFilter{Status: model.StaffStatusActive})
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "Mia", active[0].Name)

	for _, d := range []string{"2024-06-01", "2024-06-15"} {
		require.NoError(t, repo.Attendance.Create(ctx, &model.Attendance{Date: date(t, d), Status: "Present", StaffID: nurse.StaffID}))
	}
	require.NoError(t, repo.Attendance.Create(ctx, &model.Attendance{Date: date(t, "2024-06-15"), Status: "Absent", StaffID: cook.StaffID}))

	from := date(t, "2024-06-10")
	list, err := repo.Attendance.List(ctx, repository.AttendanceFilter{
		StaffID:   &nurse.StaffID,
		DateRange: repository.DateRange{From: &from},
	})
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.NotNil(t, list[0].Staff)
	assert.Equal(t, "Mia", list[0].Staff.Name)

	require.NoError(t, repo.Payroll.Create(ctx, &model.PayrollRecord{PayPeriod: "2024-06", Amount: decimal.NewFromInt(2000), PaymentDate: model.Today(), StaffID: nurse.StaffID}))
	payroll, err := repo.Payroll.List(ctx, &cook.StaffID)
	require.NoError(t, err)
	assert.Empty(t, payroll)
}

// ═══════════════════════════════════════════════════════════
// AccessRepository
// ═══════════════════════════════════════════════════════════

func TestAccessRepo_EnsureIsIdempotent(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	admin, err := repo.Access.EnsureRole(ctx, "admin")
	require.NoError(t, err)
	again, err := repo.Access.EnsureRole(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, admin.RoleID, again.RoleID)

	perm, err := repo.Access.EnsurePermission(ctx, "finance:write")
	require.NoError(t, err)
	require.NoError(t, repo.Access.GrantPermission(ctx, admin.RoleID, perm.PermissionID))
	require.NoError(t, repo.Access.GrantPermission(ctx, admin.RoleID, perm.PermissionID))

	user := &model.User{UserName: "admin", PasswordHash: "x"}
	require.NoError(t, repo.Access.CreateUser(ctx, user))
	require.NoError(t, repo.Access.AssignRole(ctx, user.UserID, admin.RoleID))
	require.NoError(t, repo.Access.AssignRole(ctx, user.UserID, admin.RoleID))

	got, err := repo.Access.GetUserByName(ctx, "admin")
	require.NoError(t, err)
	assert.Len(t, got.Roles, 1)

	n, err := repo.Access.CountUsers(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)
}
