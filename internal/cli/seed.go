package cli

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"eldercare-mis/internal/dto"
	"eldercare-mis/internal/model"
	"eldercare-mis/internal/repository"
	"eldercare-mis/internal/service"
)

// ErrAlreadySeeded is returned when users exist and --force was not given
var ErrAlreadySeeded = errors.New("database already contains users, use --force to seed again")

// SeedOptions seed command flags
type SeedOptions struct {
	AdminUser     string
	AdminPassword string
	RandomSeed    int64
	Force         bool
}

// NewSeedCommand creates the seed command.
func NewSeedCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SeedOptions{}

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Populate the database with sample data",
		Long: `Populate the database with a realistic sample organization: staff, donors,
donations, inventory, suppliers, purchase orders, expenses, payroll, attendance,
schedules and reviews. Money-moving records are created through the services so
every one of them carries its ledger entry. An admin account is created with a
bcrypt-hashed password.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(rootOpts)
			if err != nil {
				return err
			}
			defer e.close()

			repo := repository.NewRepository(e.db)
			seeder := NewSeeder(service.NewService(e.cfg, repo, e.logger), repo.Access, e.logger)
			summary, err := seeder.Run(cmd.Context(), opts)
			if err != nil {
				return err
			}
			summary.Print(cmd.OutOrStdout())
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.AdminUser, "admin-user", "admin", "admin account name")
	cmd.Flags().StringVar(&opts.AdminPassword, "admin-password", "admin123", "admin account password")
	cmd.Flags().Int64Var(&opts.RandomSeed, "random-seed", 1, "seed for the sample data generator")
	cmd.Flags().BoolVar(&opts.Force, "force", false, "seed even when users already exist")

	return cmd
}

// ────────────────────────────── Seeder ──────────────────────────────

// Seeder writes sample data through the service layer
type Seeder struct {
	svc    *service.Service
	access repository.AccessRepository
	logger *zap.Logger
	today  model.Date
	rnd    *rand.Rand
}

// NewSeeder creates a Seeder
func NewSeeder(svc *service.Service, access repository.AccessRepository, logger *zap.Logger) *Seeder {
	return &Seeder{svc: svc, access: access, logger: logger, today: model.Today()}
}

// Run seeds every group in dependency order
func (s *Seeder) Run(ctx context.Context, opts *SeedOptions) (*SeedSummary, error) {
	if !opts.Force {
		n, err := s.access.CountUsers(ctx)
		if err != nil {
			return nil, fmt.Errorf("count users: %w", err)
		}
		if n > 0 {
			return nil, ErrAlreadySeeded
		}
	}
	s.rnd = rand.New(rand.NewSource(opts.RandomSeed))
	sum := &SeedSummary{}

	staffIDs, err := s.seedStaff(ctx, sum)
	if err != nil {
		return nil, err
	}
	donorIDs, err := s.seedDonors(ctx, sum)
	if err != nil {
		return nil, err
	}
	if err := s.seedDonations(ctx, sum, donorIDs, staffIDs); err != nil {
		return nil, err
	}
	if err := s.seedSupplyChain(ctx, sum); err != nil {
		return nil, err
	}
	if err := s.seedExpenses(ctx, sum, staffIDs); err != nil {
		return nil, err
	}
	if err := s.seedStaffRecords(ctx, sum, staffIDs); err != nil {
		return nil, err
	}
	if err := s.seedLedger(ctx, sum); err != nil {
		return nil, err
	}
	if err := s.seedAccess(ctx, sum, opts, staffIDs[0]); err != nil {
		return nil, err
	}

	s.logger.Info("sample data seeded", zap.Int("donations", sum.Donations), zap.Int("purchase_orders", sum.PurchaseOrders), zap.Int("payroll", sum.Payroll))
	return sum, nil
}

// ── helpers ──

func (s *Seeder) between(lo, hi int) int { return lo + s.rnd.Intn(hi-lo+1) }

func (s *Seeder) pick(options []string) string { return options[s.rnd.Intn(len(options))] }

func (s *Seeder) daysAgo(lo, hi int) string { return s.today.AddDays(-s.between(lo, hi)).String() }

func (s *Seeder) money(lo, hi int) *decimal.Decimal {
	d := decimal.NewFromInt(int64(s.between(lo, hi)))
	return &d
}

func str(v string) *string { return &v }

func num(v int) *int { return &v }

// ── staff & donors ──

func (s *Seeder) seedStaff(ctx context.Context, sum *SeedSummary) ([]uint, error) {
	members := []struct{ name, role, contact string }{
		{"John Smith", "Manager", "john.smith@eldercare.org"},
		{"Sarah Johnson", "Nurse", "sarah.j@eldercare.org"},
		{"Michael Chen", "Caregiver", "michael.chen@eldercare.org"},
		{"Emily Davis", "Administrator", "emily.davis@eldercare.org"},
		{"David Wilson", "Nurse", "david.wilson@eldercare.org"},
		{"Lisa Anderson", "Caregiver", "lisa.a@eldercare.org"},
	}
	ids := make([]uint, 0, len(members))
	for _, m := range members {
		resp, err := s.svc.Staff.CreateStaff(ctx, &dto.CreateStaffRequest{
			Name: m.name, Role: str(m.role), ContactInfo: str(m.contact), Status: str(model.StaffStatusActive),
		})
		if err != nil {
			return nil, fmt.Errorf("seed staff %s: %w", m.name, err)
		}
		ids = append(ids, resp.ID)
	}
	sum.Staff = len(ids)
	return ids, nil
}

func (s *Seeder) seedDonors(ctx context.Context, sum *SeedSummary) ([]uint, error) {
	donors := []struct {
		name, contact, registered, region string
		age                               int
	}{
		{"Robert Brown", "robert.brown@email.com", "2023-01-15", "North", 65},
		{"Mary White", "mary.white@email.com", "2023-02-20", "South", 72},
		{"James Taylor", "james.taylor@email.com", "2023-03-10", "East", 58},
		{"Patricia Martinez", "patricia.m@email.com", "2023-04-05", "West", 68},
		{"William Lee", "william.lee@email.com", "2023-05-12", "North", 75},
		{"Jennifer Garcia", "jennifer.g@email.com", "2023-06-18", "South", 62},
		{"Richard Miller", "richard.m@email.com", "2023-07-22", "East", 70},
		{"Susan Davis", "susan.davis@email.com", "2023-08-08", "West", 55},
		{"Joseph Rodriguez", "joseph.r@email.com", "2023-09-14", "North", 80},
		{"Nancy Wilson", "nancy.wilson@email.com", "2023-10-25", "South", 67},
	}
	ids := make([]uint, 0, len(donors))
	for _, d := range donors {
		resp, err := s.svc.Donation.CreateDonor(ctx, &dto.CreateDonorRequest{
			Name: d.name, ContactInfo: str(d.contact), RegistrationDate: str(d.registered), Age: num(d.age), Region: str(d.region),
		})
		if err != nil {
			return nil, fmt.Errorf("seed donor %s: %w", d.name, err)
		}
		ids = append(ids, resp.ID)
	}
	sum.Donors = len(ids)
	return ids, nil
}

func (s *Seeder) seedDonations(ctx context.Context, sum *SeedSummary, donorIDs, staffIDs []uint) error {
	gift, err := s.svc.Donation.CreateGift(ctx, &dto.CreateGiftRequest{Type: "Blankets", Quantity: num(40), DistributionDate: str(s.today.String())})
	if err != nil {
		return fmt.Errorf("seed gift: %w", err)
	}
	sum.Gifts = 1

	for i := 0; i < 30; i++ {
		req := &dto.CreateDonationRequest{
			Type:    str(s.pick([]string{model.DonationMonetary, "Gift"})),
			Status:  str(s.pick([]string{"Completed", "Pending"})),
			Date:    str(s.daysAgo(0, 180)),
			DonorID: donorIDs[s.rnd.Intn(len(donorIDs))],
		}
		if *req.Type == model.DonationMonetary {
			req.Amount = s.money(100, 5000)
		} else {
			req.GiftID = &gift.ID
		}
		if s.rnd.Float64() > 0.3 {
			req.StaffID = &staffIDs[s.rnd.Intn(len(staffIDs))]
		}
		if _, err := s.svc.Donation.CreateDonation(ctx, req); err != nil {
			return fmt.Errorf("seed donation: %w", err)
		}
		sum.Donations++
	}
	return nil
}

// ── inventory, suppliers, purchase orders ──

func (s *Seeder) seedSupplyChain(ctx context.Context, sum *SeedSummary) error {
	items := []struct {
		name     string
		qty      int
		location string
	}{
		{"Medical Supplies - Bandages", 500, "Warehouse A"},
		{"Medical Supplies - Gloves", 1000, "Warehouse A"},
		{"Food - Canned Goods", 200, "Warehouse B"},
		{"Food - Rice", 150, "Warehouse B"},
		{"Equipment - Wheelchairs", 25, "Storage Room"},
		{"Equipment - Walkers", 30, "Storage Room"},
		{"Hygiene Products - Soap", 300, "Warehouse A"},
		{"Hygiene Products - Shampoo", 250, "Warehouse A"},
		{"Clothing - Blankets", 100, "Warehouse C"},
		{"Clothing - Socks", 8, "Warehouse C"},
	}
	itemIDs := make([]uint, 0, len(items))
	for _, it := range items {
		resp, err := s.svc.Inventory.CreateItem(ctx, &dto.CreateInventoryRequest{ItemName: it.name, Quantity: num(it.qty), Location: str(it.location)})
		if err != nil {
			return fmt.Errorf("seed item %s: %w", it.name, err)
		}
		itemIDs = append(itemIDs, resp.ID)
	}
	sum.Items = len(itemIDs)

	suppliers := []struct{ name, contact, address string }{
		{"MedSupply Co.", "contact@medsupply.com", "123 Medical St, City"},
		{"Food Distributors Inc.", "sales@fooddist.com", "456 Food Ave, City"},
		{"Equipment Solutions Ltd.", "info@equipsol.com", "789 Equipment Blvd, City"},
		{"Hygiene Products Corp.", "orders@hygienepro.com", "321 Hygiene Rd, City"},
	}
	supplierIDs := make([]uint, 0, len(suppliers))
	for _, sp := range suppliers {
		resp, err := s.svc.Inventory.CreateSupplier(ctx, &dto.CreateSupplierRequest{Name: sp.name, ContactInfo: str(sp.contact), Address: str(sp.address)})
		if err != nil {
			return fmt.Errorf("seed supplier %s: %w", sp.name, err)
		}
		supplierIDs = append(supplierIDs, resp.ID)
	}
	sum.Suppliers = len(supplierIDs)

	plans := []struct {
		item     string
		forecast int
		inDays   int
	}{
		{"Medical Supplies - Bandages", 600, 30},
		{"Food - Canned Goods", 250, 30},
		{"Equipment - Wheelchairs", 30, 60},
	}
	planIDs := make([]uint, 0, len(plans))
	for _, p := range plans {
		resp, err := s.svc.Inventory.CreateDemandPlan(ctx, &dto.CreateDemandPlanRequest{
			ItemName: p.item, ForecastQuantity: num(p.forecast), PlanDate: str(s.today.AddDays(p.inDays).String()),
		})
		if err != nil {
			return fmt.Errorf("seed demand plan %s: %w", p.item, err)
		}
		planIDs = append(planIDs, resp.ID)
	}
	sum.DemandPlans = len(planIDs)

	for i := 0; i < 10; i++ {
		req := &dto.CreatePurchaseOrderRequest{
			OrderDate:   str(s.daysAgo(0, 90)),
			TotalAmount: s.money(500, 5000),
			Status:      str(s.pick([]string{"Completed", "Pending", "Processing"})),
			SupplierID:  supplierIDs[s.rnd.Intn(len(supplierIDs))],
		}
		if s.rnd.Float64() > 0.5 {
			req.DemandPlanID = &planIDs[s.rnd.Intn(len(planIDs))]
		}
		for _, idx := range s.rnd.Perm(len(itemIDs))[:s.between(1, 3)] {
			req.Items = append(req.Items, dto.PurchaseOrderItemRequest{InventoryID: itemIDs[idx], Quantity: num(s.between(10, 100))})
		}
		if _, err := s.svc.Inventory.CreatePurchaseOrder(ctx, req); err != nil {
			return fmt.Errorf("seed purchase order: %w", err)
		}
		sum.PurchaseOrders++
	}
	return nil
}

// ── expenses & ledger ──

func (s *Seeder) seedExpenses(ctx context.Context, sum *SeedSummary, staffIDs []uint) error {
	types := []string{"Utilities", "Rent", "Maintenance", "Transportation", "Other"}
	for i := 0; i < 20; i++ {
		req := &dto.CreateExpenseRequest{
			Date:        str(s.daysAgo(0, 120)),
			Type:        str(s.pick(types)),
			Amount:      s.money(50, 2000),
			Description: str(s.pick(types) + " expense"),
		}
		if s.rnd.Float64() > 0.4 {
			req.StaffID = &staffIDs[s.rnd.Intn(len(staffIDs))]
		}
		if _, err := s.svc.Financial.CreateExpense(ctx, req); err != nil {
			return fmt.Errorf("seed expense: %w", err)
		}
		sum.Expenses++
	}
	return nil
}

func (s *Seeder) seedLedger(ctx context.Context, sum *SeedSummary) error {
	for i := 0; i < 15; i++ {
		kind := s.pick([]string{model.TransactionIncome, model.TransactionExpense})
		_, err := s.svc.Financial.CreateRecord(ctx, &dto.CreateFinancialRecordRequest{
			Date:        str(s.daysAgo(0, 150)),
			Type:        str(kind),
			AccountCode: str(fmt.Sprintf("ACC%d", s.between(1000, 9999))),
			Amount:      s.money(100, 3000),
			Description: str(kind + " transaction - " + s.pick([]string{"Service", "Grant", "Donation", "Operating"})),
		})
		if err != nil {
			return fmt.Errorf("seed financial record: %w", err)
		}
		sum.Records++
	}
	return nil
}

// ── payroll, attendance, schedules, reviews ──

func (s *Seeder) seedStaffRecords(ctx context.Context, sum *SeedSummary, staffIDs []uint) error {
	year := s.today.Time().Year() - 1
	shifts := []string{"Morning", "Afternoon", "Night"}
	fields := []string{"Nursing", "Caregiving", "Administration", "Support"}
	locations := []string{"Main Facility", "Branch A", "Branch B", "Home Care"}

	for _, id := range staffIDs {
		for month := 1; month <= 12; month++ {
			_, err := s.svc.Staff.CreatePayroll(ctx, &dto.CreatePayrollRequest{
				PayPeriod:   fmt.Sprintf("%d-%02d", year, month),
				Amount:      s.money(3000, 6000),
				PaymentDate: str(fmt.Sprintf("%d-%02d-15", year, month)),
				StaffID:     id,
			})
			if err != nil {
				return fmt.Errorf("seed payroll: %w", err)
			}
			sum.Payroll++
		}

		for day := 0; day < 30; day++ {
			date := s.today.AddDays(-day)
			if wd := date.Time().Weekday(); wd == time.Saturday || wd == time.Sunday {
				continue
			}
			_, err := s.svc.Staff.CreateAttendance(ctx, &dto.CreateAttendanceRequest{
				Date:     str(date.String()),
				CheckIn:  str(fmt.Sprintf("%02d:%02d:00", s.between(7, 9), s.between(0, 59))),
				CheckOut: str(fmt.Sprintf("%02d:%02d:00", s.between(16, 18), s.between(0, 59))),
				Status:   str("Present"),
				StaffID:  id,
			})
			if err != nil {
				return fmt.Errorf("seed attendance: %w", err)
			}
			sum.Attendance++
		}

		for week := 0; week < 4; week++ {
			hours := decimal.NewFromInt(int64([]int{4, 6, 8}[s.rnd.Intn(3)]))
			_, err := s.svc.Staff.CreateSchedule(ctx, &dto.CreateScheduleRequest{
				ShiftDate: str(s.today.AddDays(week*7 + s.between(0, 6)).String()),
				ShiftType: str(s.pick(shifts)),
				Field:     str(s.pick(fields)),
				Hours:     &hours,
				Location:  str(s.pick(locations)),
				StaffID:   id,
			})
			if err != nil {
				return fmt.Errorf("seed schedule: %w", err)
			}
			sum.Schedules++
		}

		_, err := s.svc.Staff.CreateReview(ctx, &dto.CreatePerformanceReviewRequest{
			ReviewDate: str(s.daysAgo(30, 180)),
			Score:      s.money(70, 100),
			Comments:   str("Overall satisfactory performance."),
			StaffID:    id,
		})
		if err != nil {
			return fmt.Errorf("seed review: %w", err)
		}
		sum.Reviews++
	}
	return nil
}

// ── users, roles, permissions ──

var rolePermissions = map[string][]string{
	"admin": {
		"financial:read", "financial:write", "donation:read", "donation:write",
		"inventory:read", "inventory:write", "staff:read", "staff:write", "dashboard:read",
	},
	"manager":   {"financial:read", "donation:read", "donation:write", "inventory:read", "inventory:write", "staff:read", "dashboard:read"},
	"caregiver": {"staff:read", "inventory:read"},
}

func (s *Seeder) seedAccess(ctx context.Context, sum *SeedSummary, opts *SeedOptions, staffID uint) error {
	roles := make(map[string]uint, len(rolePermissions))
	for name, perms := range rolePermissions {
		role, err := s.access.EnsureRole(ctx, name)
		if err != nil {
			return fmt.Errorf("seed role %s: %w", name, err)
		}
		roles[name] = role.RoleID
		for _, p := range perms {
			perm, err := s.access.EnsurePermission(ctx, p)
			if err != nil {
				return fmt.Errorf("seed permission %s: %w", p, err)
			}
			if err := s.access.GrantPermission(ctx, role.RoleID, perm.PermissionID); err != nil {
				return fmt.Errorf("grant %s to %s: %w", p, name, err)
			}
		}
	}

	if _, err := s.access.GetUserByName(ctx, opts.AdminUser); err == nil {
		return nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("lookup user %s: %w", opts.AdminUser, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(opts.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	user := &model.User{UserName: opts.AdminUser, PasswordHash: string(hash), StaffID: &staffID}
	if err := s.access.CreateUser(ctx, user); err != nil {
		return fmt.Errorf("create user %s: %w", opts.AdminUser, err)
	}
	if err := s.access.AssignRole(ctx, user.UserID, roles["admin"]); err != nil {
		return fmt.Errorf("assign admin role: %w", err)
	}
	sum.Users = 1
	return nil
}
