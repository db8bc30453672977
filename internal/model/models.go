package model

// All every persisted model, in dependency order, for AutoMigrate
func All() []interface{} {
	return []interface{}{
		&Staff{},
		&User{},
		&Role{},
		&Permission{},
		&UserRole{},
		&RolePermission{},
		&Attendance{},
		&Schedule{},
		&PerformanceReview{},
		&FinancialRecord{},
		&Expense{},
		&PayrollRecord{},
		&PayrollFinancialRecord{},
		&Donor{},
		&Gift{},
		&Donation{},
		&DonationFinancialRecord{},
		&DemandPlan{},
		&Inventory{},
		&Supplier{},
		&PurchaseOrder{},
		&PurchaseOrderInventory{},
		&PurchaseOrderFinancialRecord{},
	}
}
