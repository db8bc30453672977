package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"eldercare-mis/config"
	"eldercare-mis/internal/api/handler"
	"eldercare-mis/internal/api/middleware"
	"eldercare-mis/pkg/redis"
)

// Setup builds the gin engine with every route mounted. rdb may be nil,
// which disables rate limiting.
func Setup(cfg *config.Config, h *handler.Handler, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	handler.UseJSONFieldNames()

	r := gin.New()

	// ── global middleware ──
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(cfg.Server.BodyLimit))

	r.GET("/health", h.Health.Health)

	api := r.Group("/api")
	api.Use(middleware.RateLimit(rdb, cfg.Redis.RateLimit, cfg.Redis.Window))
	api.Use(middleware.RequireJSON())
	{
		financial := api.Group("/financial")
		{
			financial.GET("/records", h.Financial.ListRecords)
			financial.POST("/records", h.Financial.CreateRecord)
			financial.GET("/records/:id", h.Financial.GetRecord)
			financial.PUT("/records/:id", h.Financial.UpdateRecord)
			financial.GET("/records/:id/links", h.Financial.GetRecordLinks)
			financial.GET("/summary", h.Financial.Summary)
			financial.GET("/expenses", h.Financial.ListExpenses)
			financial.POST("/expenses", h.Financial.CreateExpense)
			financial.GET("/export", h.Export.ExportLedger)
		}

		donation := api.Group("/donation")
		{
			donation.GET("/donations", h.Donation.ListDonations)
			donation.POST("/donations", h.Donation.CreateDonation)
			donation.GET("/donations/:id", h.Donation.GetDonation)
			donation.PUT("/donations/:id", h.Donation.UpdateDonation)
			donation.GET("/donors", h.Donation.ListDonors)
			donation.POST("/donors", h.Donation.CreateDonor)
			donation.GET("/donors/:id", h.Donation.GetDonor)
			donation.PUT("/donors/:id", h.Donation.UpdateDonor)
			donation.GET("/demographics", h.Donation.Demographics)
			donation.GET("/gifts", h.Donation.ListGifts)
			donation.POST("/gifts", h.Donation.CreateGift)
		}

		inventory := api.Group("/inventory")
		{
			inventory.GET("/items", h.Inventory.ListItems)
			inventory.POST("/items", h.Inventory.CreateItem)
			inventory.GET("/items/:id", h.Inventory.GetItem)
			inventory.PUT("/items/:id", h.Inventory.UpdateItem)
			inventory.GET("/demand-plans", h.Inventory.ListDemandPlans)
			inventory.POST("/demand-plans", h.Inventory.CreateDemandPlan)
			inventory.GET("/suppliers", h.Inventory.ListSuppliers)
			inventory.POST("/suppliers", h.Inventory.CreateSupplier)
			inventory.GET("/suppliers/:id", h.Inventory.GetSupplier)
			inventory.PUT("/suppliers/:id", h.Inventory.UpdateSupplier)
			inventory.GET("/purchase-orders", h.Inventory.ListPurchaseOrders)
			inventory.POST("/purchase-orders", h.Inventory.CreatePurchaseOrder)
			inventory.GET("/purchase-orders/:id", h.Inventory.GetPurchaseOrder)
		}

		staff := api.Group("/staff")
		{
			staff.GET("/staff", h.Staff.ListStaff)
			staff.POST("/staff", h.Staff.CreateStaff)
			staff.GET("/staff/:id", h.Staff.GetStaff)
			staff.PUT("/staff/:id", h.Staff.UpdateStaff)
			staff.GET("/attendance", h.Staff.ListAttendance)
			staff.POST("/attendance", h.Staff.CreateAttendance)
			staff.GET("/schedules", h.Staff.ListSchedules)
			staff.POST("/schedules", h.Staff.CreateSchedule)
			staff.GET("/performance-reviews", h.Staff.ListReviews)
			staff.POST("/performance-reviews", h.Staff.CreateReview)
			staff.GET("/payroll", h.Staff.ListPayroll)
			staff.POST("/payroll", h.Staff.CreatePayroll)
			staff.GET("/payroll/:id", h.Staff.GetPayroll)
		}

		dashboard := api.Group("/dashboard")
		{
			dashboard.GET("/overview", h.Dashboard.Overview)
			dashboard.GET("/financial-trends", h.Dashboard.FinancialTrends)
			dashboard.GET("/donation-trends", h.Dashboard.DonationTrends)
			dashboard.GET("/top-donors", h.Dashboard.TopDonors)
			dashboard.GET("/expense-breakdown", h.Dashboard.ExpenseBreakdown)
		}
	}

	return r
}
