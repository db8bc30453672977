package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eldercare-mis/internal/model"
)

func rec(date, typ, amount string) model.FinancialRecord {
	d, _ := model.ParseDate(date)
	return model.FinancialRecord{TransactionDate: d, TransactionType: typ, Amount: decimal.RequireFromString(amount)}
}

func donorWith(id uint, name string, amounts ...string) model.Donor {
	d := model.Donor{DonorID: id, Name: name}
	for _, a := range amounts {
		d.Donations = append(d.Donations, model.Donation{DonorID: id, Amount: decimal.RequireFromString(a)})
	}
	return d
}

func TestSummarizeLedger(t *testing.T) {
	sum := SummarizeLedger([]model.FinancialRecord{
		rec("2024-01-01", "Income", "1000"),
		rec("2024-01-02", "Donation", "250.50"),
		rec("2024-01-03", "Expense", "400"),
		rec("2024-01-04", "Utilities", "100.25"),
	})

	assert.True(t, sum.Income.Equal(decimal.RequireFromString("1250.50")))
	assert.True(t, sum.Expense.Equal(decimal.RequireFromString("500.25")))
	assert.True(t, sum.Net().Equal(decimal.RequireFromString("750.25")))
	assert.Len(t, sum.ByType, 4)
}

func TestFinancialTrend_AscendingWithoutZeroFill(t *testing.T) {
	points := FinancialTrend([]model.FinancialRecord{
		rec("2024-03-05", "Expense", "30"),
		rec("2024-03-01", "Income", "100"),
		rec("2024-03-05", "Donation", "20"),
	})

	require.Len(t, points, 2)
	assert.Equal(t, "2024-03-01", points[0].Date)
	assert.Equal(t, 100.0, points[0].Income)
	assert.Equal(t, "2024-03-05", points[1].Date)
	assert.Equal(t, 20.0, points[1].Income)
	assert.Equal(t, 30.0, points[1].Expense)
}

func TestDonationTrend(t *testing.T) {
	d1, _ := model.ParseDate("2024-03-02")
	d2, _ := model.ParseDate("2024-03-01")
	points := DonationTrend([]model.Donation{
		{DonationDate: d1, Amount: decimal.NewFromInt(10)},
		{DonationDate: d2, Amount: decimal.NewFromInt(5)},
		{DonationDate: d1, Amount: decimal.NewFromInt(15)},
	})

	require.Len(t, points, 2)
	assert.Equal(t, "2024-03-01", points[0].Date)
	assert.Equal(t, 2, points[1].Count)
	assert.Equal(t, 25.0, points[1].Amount)
}

func TestTopDonors(t *testing.T) {
	donors := []model.Donor{
		donorWith(1, "Zero", "0"),
		donorWith(2, "First", "300"),
		donorWith(3, "Big", "100", "400"),
		donorWith(4, "Second", "150", "150"),
		donorWith(5, "None"),
	}

	t.Run("positive totals only, ties keep input order", func(t *testing.T) {
		top := TopDonors(donors, 10)
		require.Len(t, top, 3)
		assert.Equal(t, "Big", top[0].Name)
		assert.Equal(t, 500.0, top[0].TotalDonations)
		assert.Equal(t, 2, top[0].DonationCount)
		assert.Equal(t, "First", top[1].Name)
		assert.Equal(t, "Second", top[2].Name)
	})

	t.Run("truncated to limit", func(t *testing.T) {
		top := TopDonors(donors, 1)
		require.Len(t, top, 1)
		assert.Equal(t, uint(3), top[0].ID)
	})

	t.Run("non-positive limit", func(t *testing.T) {
		assert.Empty(t, TopDonors(donors, 0))
		assert.Empty(t, TopDonors(donors, -2))
	})
}

func TestExpenseBreakdown_EmptyTypeIsOther(t *testing.T) {
	got := ExpenseBreakdown([]model.Expense{
		{Type: "Food", Amount: decimal.NewFromInt(40)},
		{Type: "", Amount: decimal.NewFromInt(7)},
		{Type: "Other", Amount: decimal.NewFromInt(3)},
		{Type: "Food", Amount: decimal.RequireFromString("2.5")},
	})

	assert.Equal(t, map[string]float64{"Food": 42.5, "Other": 10}, got)
}

func TestAgeBand(t *testing.T) {
	tests := []struct {
		age  *int
		want string
	}{
		{nil, AgeBandUnknown},
		{intPtr(0), AgeBandUnknown},
		{intPtr(1), AgeBandYoung},
		{intPtr(25), AgeBandYoung},
		{intPtr(26), AgeBandAdult},
		{intPtr(40), AgeBandAdult},
		{intPtr(41), AgeBandMiddle},
		{intPtr(60), AgeBandMiddle},
		{intPtr(61), AgeBandSenior},
		{intPtr(97), AgeBandSenior},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, AgeBand(tt.age), "age %v", tt.age)
	}
}

func TestDemographics_AllBandsPresent(t *testing.T) {
	got := Demographics([]model.Donor{
		{Age: intPtr(70), Region: strPtr("North")},
		{Region: strPtr("")},
	})

	assert.Equal(t, 2, got.TotalDonors)
	assert.Equal(t, map[string]int{
		AgeBandYoung: 0, AgeBandAdult: 0, AgeBandMiddle: 0, AgeBandSenior: 1, AgeBandUnknown: 1,
	}, got.AgeGroups)
	assert.Equal(t, map[string]int{"North": 1, RegionUnknown: 1}, got.Regions)
}
