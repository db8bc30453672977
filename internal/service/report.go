package service

import (
	"sort"

	"github.com/shopspring/decimal"

	"eldercare-mis/internal/dto"
	"eldercare-mis/internal/model"
)

// Reducers over in-memory scans. None of them touch storage.

// Age band labels of the donor demographics report.
const (
	AgeBandYoung   = "0-25"
	AgeBandAdult   = "26-40"
	AgeBandMiddle  = "41-60"
	AgeBandSenior  = "61+"
	AgeBandUnknown = "Unknown"

	RegionUnknown = "Unknown"
)

// LedgerSummary totals of a set of financial records
type LedgerSummary struct {
	ByType  map[string]decimal.Decimal
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// Net income minus expense
func (s LedgerSummary) Net() decimal.Decimal {
	return s.Income.Sub(s.Expense)
}

// SummarizeLedger sums records per type and per income/expense class
func SummarizeLedger(records []model.FinancialRecord) LedgerSummary {
	sum := LedgerSummary{ByType: make(map[string]decimal.Decimal)}
	for _, r := range records {
		sum.ByType[r.TransactionType] = sum.ByType[r.TransactionType].Add(r.Amount)
		if model.IsIncomeType(r.TransactionType) {
			sum.Income = sum.Income.Add(r.Amount)
		} else {
			sum.Expense = sum.Expense.Add(r.Amount)
		}
	}
	return sum
}

// FinancialTrend buckets records by day, ascending. Days without records
// are absent.
func FinancialTrend(records []model.FinancialRecord) []dto.FinancialTrendPoint {
	type bucket struct{ income, expense decimal.Decimal }
	buckets := make(map[string]*bucket)
	for _, r := range records {
		if r.TransactionDate.IsZero() {
			continue
		}
		key := r.TransactionDate.String()
		b, ok := buckets[key]
		if !ok {
			b = &bucket{}
			buckets[key] = b
		}
		if model.IsIncomeType(r.TransactionType) {
			b.income = b.income.Add(r.Amount)
		} else {
			b.expense = b.expense.Add(r.Amount)
		}
	}

	points := make([]dto.FinancialTrendPoint, 0, len(buckets))
	for _, key := range sortedKeys(buckets) {
		b := buckets[key]
		points = append(points, dto.FinancialTrendPoint{
			Date:    key,
			Income:  money(b.income),
			Expense: money(b.expense),
		})
	}
	return points
}

// DonationTrend buckets donations by day, ascending. Days without
// donations are absent.
func DonationTrend(donations []model.Donation) []dto.DonationTrendPoint {
	type bucket struct {
		count  int
		amount decimal.Decimal
	}
	buckets := make(map[string]*bucket)
	for _, d := range donations {
		if d.DonationDate.IsZero() {
			continue
		}
		key := d.DonationDate.String()
		b, ok := buckets[key]
		if !ok {
			b = &bucket{}
			buckets[key] = b
		}
		b.count++
		b.amount = b.amount.Add(d.Amount)
	}

	points := make([]dto.DonationTrendPoint, 0, len(buckets))
	for _, key := range sortedKeys(buckets) {
		b := buckets[key]
		points = append(points, dto.DonationTrendPoint{
			Date:   key,
			Count:  b.count,
			Amount: money(b.amount),
		})
	}
	return points
}

// DonorTotal sum of a donor's donation amounts
func DonorTotal(d *model.Donor) decimal.Decimal {
	total := decimal.Zero
	for _, don := range d.Donations {
		total = total.Add(don.Amount)
	}
	return total
}

// TopDonors ranks donors with a positive total by total, descending.
// Ties keep input order. limit <= 0 yields an empty ranking.
func TopDonors(donors []model.Donor, limit int) []dto.TopDonor {
	type ranked struct {
		donor *model.Donor
		total decimal.Decimal
	}
	list := make([]ranked, 0, len(donors))
	for i := range donors {
		total := DonorTotal(&donors[i])
		if total.IsPositive() {
			list = append(list, ranked{donor: &donors[i], total: total})
		}
	}
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].total.GreaterThan(list[j].total)
	})

	if limit < 0 {
		limit = 0
	}
	if len(list) > limit {
		list = list[:limit]
	}

	result := make([]dto.TopDonor, 0, len(list))
	for _, r := range list {
		result = append(result, dto.TopDonor{
			ID:             r.donor.DonorID,
			Name:           r.donor.Name,
			TotalDonations: money(r.total),
			DonationCount:  len(r.donor.Donations),
			Region:         r.donor.Region,
			Age:            r.donor.Age,
		})
	}
	return result
}

// ExpenseBreakdown sums expenses per type; an empty type counts as "Other"
func ExpenseBreakdown(expenses []model.Expense) map[string]float64 {
	sums := make(map[string]decimal.Decimal)
	for _, e := range expenses {
		t := e.Type
		if t == "" {
			t = model.ExpenseTypeOther
		}
		sums[t] = sums[t].Add(e.Amount)
	}

	result := make(map[string]float64, len(sums))
	for t, amt := range sums {
		result[t] = money(amt)
	}
	return result
}

// AgeBand maps an age to its demographics band. Absent and zero ages are
// unknown.
func AgeBand(age *int) string {
	switch {
	case age == nil || *age == 0:
		return AgeBandUnknown
	case *age <= 25:
		return AgeBandYoung
	case *age <= 40:
		return AgeBandAdult
	case *age <= 60:
		return AgeBandMiddle
	default:
		return AgeBandSenior
	}
}

// Demographics counts donors per age band and region. Every band is
// present in the result, even at zero.
func Demographics(donors []model.Donor) dto.DemographicsResponse {
	resp := dto.DemographicsResponse{
		AgeGroups: map[string]int{
			AgeBandYoung:   0,
			AgeBandAdult:   0,
			AgeBandMiddle:  0,
			AgeBandSenior:  0,
			AgeBandUnknown: 0,
		},
		Regions:     make(map[string]int),
		TotalDonors: len(donors),
	}
	for _, d := range donors {
		resp.AgeGroups[AgeBand(d.Age)]++

		region := RegionUnknown
		if d.Region != nil && *d.Region != "" {
			region = *d.Region
		}
		resp.Regions[region]++
	}
	return resp
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
