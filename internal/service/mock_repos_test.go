package service

import (
	"context"
	"sort"

	"gorm.io/gorm"

	"eldercare-mis/internal/model"
	"eldercare-mis/internal/repository"
)

// newMockRepository assembles an aggregate of map-backed repositories. It has
// no database handle, so Transaction runs its callback directly.
func newMockRepository() (*repository.Repository, *mockStore) {
	st := newMockStore()
	repo := &repository.Repository{
		Staff:             &mockStaffRepo{st},
		Attendance:        &mockAttendanceRepo{st},
		Schedule:          &mockScheduleRepo{st},
		PerformanceReview: &mockReviewRepo{st},
		Payroll:           &mockPayrollRepo{st},
		Donor:             &mockDonorRepo{st},
		Gift:              &mockGiftRepo{st},
		Donation:          &mockDonationRepo{st},
		FinancialRecord:   &mockFinancialRecordRepo{st},
		Expense:           &mockExpenseRepo{st},
		Inventory:         &mockInventoryRepo{st},
		DemandPlan:        &mockDemandPlanRepo{st},
		Supplier:          &mockSupplierRepo{st},
		PurchaseOrder:     &mockPurchaseOrderRepo{st},
	}
	return repo, st
}

// mockStore shared in-memory tables
type mockStore struct {
	nextID uint

	staff      map[uint]*model.Staff
	attendance map[uint]*model.Attendance
	schedules  map[uint]*model.Schedule
	reviews    map[uint]*model.PerformanceReview
	payroll    map[uint]*model.PayrollRecord
	donors     map[uint]*model.Donor
	gifts      map[uint]*model.Gift
	donations  map[uint]*model.Donation
	records    map[uint]*model.FinancialRecord
	expenses   map[uint]*model.Expense
	inventory  map[uint]*model.Inventory
	plans      map[uint]*model.DemandPlan
	suppliers  map[uint]*model.Supplier
	orders     map[uint]*model.PurchaseOrder

	donationLinks map[uint][]uint // financial record → donations
	orderLinks    map[uint][]uint
	payrollLinks  map[uint][]uint

	// injected failures
	linkErr error
}

func newMockStore() *mockStore {
	return &mockStore{
		staff:         make(map[uint]*model.Staff),
		attendance:    make(map[uint]*model.Attendance),
		schedules:     make(map[uint]*model.Schedule),
		reviews:       make(map[uint]*model.PerformanceReview),
		payroll:       make(map[uint]*model.PayrollRecord),
		donors:        make(map[uint]*model.Donor),
		gifts:         make(map[uint]*model.Gift),
		donations:     make(map[uint]*model.Donation),
		records:       make(map[uint]*model.FinancialRecord),
		expenses:      make(map[uint]*model.Expense),
		inventory:     make(map[uint]*model.Inventory),
		plans:         make(map[uint]*model.DemandPlan),
		suppliers:     make(map[uint]*model.Supplier),
		orders:        make(map[uint]*model.PurchaseOrder),
		donationLinks: make(map[uint][]uint),
		orderLinks:    make(map[uint][]uint),
		payrollLinks:  make(map[uint][]uint),
	}
}

func (st *mockStore) id() uint {
	st.nextID++
	return st.nextID
}

func sortedIDs[V any](m map[uint]V) []uint {
	ids := make([]uint, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func inRange(d model.Date, r repository.DateRange) bool {
	if r.From != nil && d.Before(*r.From) {
		return false
	}
	if r.To != nil && r.To.Before(d) {
		return false
	}
	return true
}

// ── Mock StaffRepository ──

type mockStaffRepo struct{ st *mockStore }

func (m *mockStaffRepo) Create(_ context.Context, s *model.Staff) error {
	s.StaffID = m.st.id()
	m.st.staff[s.StaffID] = s
	return nil
}

func (m *mockStaffRepo) GetByID(_ context.Context, id uint) (*model.Staff, error) {
	if s, ok := m.st.staff[id]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockStaffRepo) List(_ context.Context, f repository.StaffFilter) ([]model.Staff, error) {
	var result []model.Staff
	for _, id := range sortedIDs(m.st.staff) {
		s := m.st.staff[id]
		if f.Status != "" && s.Status != f.Status {
			continue
		}
		if f.Role != "" && (s.Role == nil || *s.Role != f.Role) {
			continue
		}
		result = append(result, *s)
	}
	return result, nil
}

func (m *mockStaffRepo) Update(_ context.Context, s *model.Staff) error {
	cp := *s
	m.st.staff[s.StaffID] = &cp
	return nil
}

// ── Mock AttendanceRepository ──

type mockAttendanceRepo struct{ st *mockStore }

func (m *mockAttendanceRepo) Create(_ context.Context, a *model.Attendance) error {
	a.AttendanceID = m.st.id()
	m.st.attendance[a.AttendanceID] = a
	return nil
}

func (m *mockAttendanceRepo) List(_ context.Context, f repository.AttendanceFilter) ([]model.Attendance, error) {
	var result []model.Attendance
	for _, id := range sortedIDs(m.st.attendance) {
		a := *m.st.attendance[id]
		if f.StaffID != nil && a.StaffID != *f.StaffID {
			continue
		}
		if !inRange(a.Date, f.DateRange) {
			continue
		}
		a.Staff = m.st.staff[a.StaffID]
		result = append(result, a)
	}
	return result, nil
}

// ── Mock ScheduleRepository ──

type mockScheduleRepo struct{ st *mockStore }

func (m *mockScheduleRepo) Create(_ context.Context, s *model.Schedule) error {
	s.ScheduleID = m.st.id()
	m.st.schedules[s.ScheduleID] = s
	return nil
}

func (m *mockScheduleRepo) List(_ context.Context, staffID *uint) ([]model.Schedule, error) {
	var result []model.Schedule
	for _, id := range sortedIDs(m.st.schedules) {
		s := *m.st.schedules[id]
		if staffID != nil && s.StaffID != *staffID {
			continue
		}
		s.Staff = m.st.staff[s.StaffID]
		result = append(result, s)
	}
	return result, nil
}

// ── Mock PerformanceReviewRepository ──

type mockReviewRepo struct{ st *mockStore }

func (m *mockReviewRepo) Create(_ context.Context, pr *model.PerformanceReview) error {
	pr.PerformanceReviewID = m.st.id()
	m.st.reviews[pr.PerformanceReviewID] = pr
	return nil
}

func (m *mockReviewRepo) List(_ context.Context, staffID *uint) ([]model.PerformanceReview, error) {
	var result []model.PerformanceReview
	for _, id := range sortedIDs(m.st.reviews) {
		pr := *m.st.reviews[id]
		if staffID != nil && pr.StaffID != *staffID {
			continue
		}
		pr.Staff = m.st.staff[pr.StaffID]
		result = append(result, pr)
	}
	return result, nil
}

// ── Mock PayrollRepository ──

type mockPayrollRepo struct{ st *mockStore }

func (m *mockPayrollRepo) Create(_ context.Context, p *model.PayrollRecord) error {
	p.PayrollRecordID = m.st.id()
	m.st.payroll[p.PayrollRecordID] = p
	return nil
}

func (m *mockPayrollRepo) GetByID(_ context.Context, id uint) (*model.PayrollRecord, error) {
	if p, ok := m.st.payroll[id]; ok {
		cp := *p
		cp.Staff = m.st.staff[p.StaffID]
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockPayrollRepo) List(_ context.Context, staffID *uint) ([]model.PayrollRecord, error) {
	var result []model.PayrollRecord
	for _, id := range sortedIDs(m.st.payroll) {
		p := *m.st.payroll[id]
		if staffID != nil && p.StaffID != *staffID {
			continue
		}
		p.Staff = m.st.staff[p.StaffID]
		result = append(result, p)
	}
	return result, nil
}

// ── Mock DonorRepository ──

type mockDonorRepo struct{ st *mockStore }

func (m *mockDonorRepo) Create(_ context.Context, d *model.Donor) error {
	d.DonorID = m.st.id()
	m.st.donors[d.DonorID] = d
	return nil
}

func (m *mockDonorRepo) GetByID(_ context.Context, id uint) (*model.Donor, error) {
	if d, ok := m.st.donors[id]; ok {
		cp := *d
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockDonorRepo) List(_ context.Context, region string) ([]model.Donor, error) {
	var result []model.Donor
	for _, id := range sortedIDs(m.st.donors) {
		d := *m.st.donors[id]
		if region != "" && (d.Region == nil || *d.Region != region) {
			continue
		}
		d.Donations = nil
		for _, did := range sortedIDs(m.st.donations) {
			if don := m.st.donations[did]; don.DonorID == d.DonorID {
				d.Donations = append(d.Donations, *don)
			}
		}
		result = append(result, d)
	}
	return result, nil
}

func (m *mockDonorRepo) Update(_ context.Context, d *model.Donor) error {
	cp := *d
	m.st.donors[d.DonorID] = &cp
	return nil
}

// ── Mock GiftRepository ──

type mockGiftRepo struct{ st *mockStore }

func (m *mockGiftRepo) Create(_ context.Context, g *model.Gift) error {
	g.GiftID = m.st.id()
	m.st.gifts[g.GiftID] = g
	return nil
}

func (m *mockGiftRepo) List(_ context.Context) ([]model.Gift, error) {
	var result []model.Gift
	for _, id := range sortedIDs(m.st.gifts) {
		result = append(result, *m.st.gifts[id])
	}
	return result, nil
}

// ── Mock DonationRepository ──

type mockDonationRepo struct{ st *mockStore }

func (m *mockDonationRepo) Create(_ context.Context, d *model.Donation) error {
	d.DonationID = m.st.id()
	cp := *d
	m.st.donations[d.DonationID] = &cp
	return nil
}

func (m *mockDonationRepo) GetByID(_ context.Context, id uint) (*model.Donation, error) {
	if d, ok := m.st.donations[id]; ok {
		cp := *d
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockDonationRepo) List(_ context.Context, f repository.DonationFilter) ([]model.Donation, error) {
	var result []model.Donation
	for _, id := range sortedIDs(m.st.donations) {
		d := *m.st.donations[id]
		if f.Status != "" && d.Status != f.Status {
			continue
		}
		if f.DonorID != nil && d.DonorID != *f.DonorID {
			continue
		}
		if f.Since != nil && d.DonationDate.Before(*f.Since) {
			continue
		}
		d.Donor = m.st.donors[d.DonorID]
		result = append(result, d)
	}
	return result, nil
}

func (m *mockDonationRepo) Update(_ context.Context, d *model.Donation) error {
	cp := *d
	m.st.donations[d.DonationID] = &cp
	return nil
}

// ── Mock FinancialRecordRepository ──

type mockFinancialRecordRepo struct{ st *mockStore }

func (m *mockFinancialRecordRepo) Create(_ context.Context, r *model.FinancialRecord) error {
	r.FinancialRecordID = m.st.id()
	cp := *r
	m.st.records[r.FinancialRecordID] = &cp
	return nil
}

func (m *mockFinancialRecordRepo) GetByID(_ context.Context, id uint) (*model.FinancialRecord, error) {
	if r, ok := m.st.records[id]; ok {
		cp := *r
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockFinancialRecordRepo) List(_ context.Context, f repository.FinancialRecordFilter) ([]model.FinancialRecord, error) {
	var result []model.FinancialRecord
	for _, id := range sortedIDs(m.st.records) {
		r := *m.st.records[id]
		if f.Type != "" && r.TransactionType != f.Type {
			continue
		}
		if !inRange(r.TransactionDate, f.DateRange) {
			continue
		}
		result = append(result, r)
	}
	return result, nil
}

func (m *mockFinancialRecordRepo) Update(_ context.Context, r *model.FinancialRecord) error {
	cp := *r
	m.st.records[r.FinancialRecordID] = &cp
	return nil
}

func (m *mockFinancialRecordRepo) LinkDonation(_ context.Context, donationID, recordID uint) error {
	if m.st.linkErr != nil {
		return m.st.linkErr
	}
	m.st.donationLinks[recordID] = append(m.st.donationLinks[recordID], donationID)
	return nil
}

func (m *mockFinancialRecordRepo) LinkPurchaseOrder(_ context.Context, orderID, recordID uint) error {
	if m.st.linkErr != nil {
		return m.st.linkErr
	}
	m.st.orderLinks[recordID] = append(m.st.orderLinks[recordID], orderID)
	return nil
}

func (m *mockFinancialRecordRepo) LinkPayroll(_ context.Context, payrollID, recordID uint) error {
	if m.st.linkErr != nil {
		return m.st.linkErr
	}
	m.st.payrollLinks[recordID] = append(m.st.payrollLinks[recordID], payrollID)
	return nil
}

func (m *mockFinancialRecordRepo) GetLinks(_ context.Context, recordID uint) (*model.LedgerLinks, error) {
	return &model.LedgerLinks{
		FinancialRecordID: recordID,
		DonationIDs:       m.st.donationLinks[recordID],
		PurchaseOrderIDs:  m.st.orderLinks[recordID],
		PayrollRecordIDs:  m.st.payrollLinks[recordID],
	}, nil
}

// ── Mock ExpenseRepository ──

type mockExpenseRepo struct{ st *mockStore }

func (m *mockExpenseRepo) Create(_ context.Context, e *model.Expense) error {
	e.ExpenseID = m.st.id()
	m.st.expenses[e.ExpenseID] = e
	return nil
}

func (m *mockExpenseRepo) List(_ context.Context, f repository.ExpenseFilter) ([]model.Expense, error) {
	var result []model.Expense
	for _, id := range sortedIDs(m.st.expenses) {
		e := *m.st.expenses[id]
		if f.Type != "" && e.Type != f.Type {
			continue
		}
		if !inRange(e.Date, f.DateRange) {
			continue
		}
		result = append(result, e)
	}
	return result, nil
}

// ── Mock InventoryRepository ──

type mockInventoryRepo struct{ st *mockStore }

func (m *mockInventoryRepo) Create(_ context.Context, i *model.Inventory) error {
	i.InventoryID = m.st.id()
	m.st.inventory[i.InventoryID] = i
	return nil
}

func (m *mockInventoryRepo) GetByID(_ context.Context, id uint) (*model.Inventory, error) {
	if i, ok := m.st.inventory[id]; ok {
		cp := *i
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockInventoryRepo) List(_ context.Context) ([]model.Inventory, error) {
	var result []model.Inventory
	for _, id := range sortedIDs(m.st.inventory) {
		result = append(result, *m.st.inventory[id])
	}
	return result, nil
}

func (m *mockInventoryRepo) Update(_ context.Context, i *model.Inventory) error {
	cp := *i
	m.st.inventory[i.InventoryID] = &cp
	return nil
}

// ── Mock DemandPlanRepository ──

type mockDemandPlanRepo struct{ st *mockStore }

func (m *mockDemandPlanRepo) Create(_ context.Context, p *model.DemandPlan) error {
	p.DemandPlanID = m.st.id()
	m.st.plans[p.DemandPlanID] = p
	return nil
}

func (m *mockDemandPlanRepo) List(_ context.Context) ([]model.DemandPlan, error) {
	var result []model.DemandPlan
	for _, id := range sortedIDs(m.st.plans) {
		result = append(result, *m.st.plans[id])
	}
	return result, nil
}

// ── Mock SupplierRepository ──

type mockSupplierRepo struct{ st *mockStore }

func (m *mockSupplierRepo) Create(_ context.Context, s *model.Supplier) error {
	s.SupplierID = m.st.id()
	m.st.suppliers[s.SupplierID] = s
	return nil
}

func (m *mockSupplierRepo) GetByID(_ context.Context, id uint) (*model.Supplier, error) {
	if s, ok := m.st.suppliers[id]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockSupplierRepo) List(_ context.Context) ([]model.Supplier, error) {
	var result []model.Supplier
	for _, id := range sortedIDs(m.st.suppliers) {
		result = append(result, *m.st.suppliers[id])
	}
	return result, nil
}

func (m *mockSupplierRepo) Update(_ context.Context, s *model.Supplier) error {
	cp := *s
	m.st.suppliers[s.SupplierID] = &cp
	return nil
}

// ── Mock PurchaseOrderRepository ──

type mockPurchaseOrderRepo struct{ st *mockStore }

func (m *mockPurchaseOrderRepo) Create(_ context.Context, po *model.PurchaseOrder) error {
	po.PurchaseOrderID = m.st.id()
	cp := *po
	m.st.orders[po.PurchaseOrderID] = &cp
	return nil
}

func (m *mockPurchaseOrderRepo) AddItems(_ context.Context, items []model.PurchaseOrderInventory) error {
	for _, it := range items {
		if po, ok := m.st.orders[it.PurchaseOrderID]; ok {
			po.Items = append(po.Items, it)
		}
	}
	return nil
}

func (m *mockPurchaseOrderRepo) load(po model.PurchaseOrder) model.PurchaseOrder {
	po.Supplier = m.st.suppliers[po.SupplierID]
	items := make([]model.PurchaseOrderInventory, len(po.Items))
	for i, it := range po.Items {
		it.Inventory = m.st.inventory[it.InventoryID]
		items[i] = it
	}
	po.Items = items
	return po
}

func (m *mockPurchaseOrderRepo) GetByID(_ context.Context, id uint) (*model.PurchaseOrder, error) {
	if po, ok := m.st.orders[id]; ok {
		cp := m.load(*po)
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockPurchaseOrderRepo) List(_ context.Context, status string) ([]model.PurchaseOrder, error) {
	var result []model.PurchaseOrder
	for _, id := range sortedIDs(m.st.orders) {
		po := m.st.orders[id]
		if status != "" && po.Status != status {
			continue
		}
		result = append(result, m.load(*po))
	}
	return result, nil
}
