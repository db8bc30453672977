package cli

import (
	"fmt"
	"io"
)

// SeedSummary counts of rows created by one seed run
type SeedSummary struct {
	Staff          int
	Donors         int
	Gifts          int
	Donations      int
	Items          int
	Suppliers      int
	DemandPlans    int
	PurchaseOrders int
	Expenses       int
	Payroll        int
	Attendance     int
	Schedules      int
	Reviews        int
	Records        int
	Users          int
}

// Print writes the summary as an aligned table
func (s *SeedSummary) Print(w io.Writer) {
	rows := []struct {
		label string
		n     int
	}{
		{"Staff members", s.Staff},
		{"Donors", s.Donors},
		{"Gifts", s.Gifts},
		{"Donations", s.Donations},
		{"Inventory items", s.Items},
		{"Suppliers", s.Suppliers},
		{"Demand plans", s.DemandPlans},
		{"Purchase orders", s.PurchaseOrders},
		{"Expenses", s.Expenses},
		{"Payroll records", s.Payroll},
		{"Attendance records", s.Attendance},
		{"Schedules", s.Schedules},
		{"Performance reviews", s.Reviews},
		{"Extra ledger entries", s.Records},
		{"Users", s.Users},
	}
	fmt.Fprintln(w, "Sample data created:")
	for _, r := range rows {
		fmt.Fprintf(w, "  %-22s %d\n", r.label, r.n)
	}
}
