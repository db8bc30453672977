package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"eldercare-mis/internal/dto"
	"eldercare-mis/internal/repository"
)

// ErrExportGenerateFail the workbook could not be written
var ErrExportGenerateFail = errors.New("failed to generate Excel file")

const ledgerSheet = "Ledger"

// ExportService spreadsheet exports
type ExportService interface {
	// ExportLedger writes the financial records in range to an .xlsx
	// workbook, one row per record followed by income/expense/net totals.
	// Returns the file content and a suggested file name.
	ExportLedger(ctx context.Context, req *dto.DateRangeQuery) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService creates an ExportService
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

// ═══════════════════════════════════════════════════════════
// ExportLedger
// ═══════════════════════════════════════════════════════════
//
// Layout:
//   - row 1: title with the covered range
//   - row 2: header ID | Date | Type | Account | Amount | Description
//   - rows 3..n: records, newest first
//   - then a blank row and Total income / Total expense / Net

func (s *exportService) ExportLedger(ctx context.Context, req *dto.DateRangeQuery) (*bytes.Buffer, string, error) {
	dr, err := queryRange(*req)
	if err != nil {
		return nil, "", err
	}

	records, err := s.repo.FinancialRecord.List(ctx, repository.FinancialRecordFilter{DateRange: dr})
	if err != nil {
		s.logger.Error("export: load financial records failed", zap.Error(err))
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	idx, _ := f.NewSheet(ledgerSheet)
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	f.SetColWidth(ledgerSheet, "A", "A", 8)
	f.SetColWidth(ledgerSheet, "B", "B", 12)
	f.SetColWidth(ledgerSheet, "C", "D", 14)
	f.SetColWidth(ledgerSheet, "E", "E", 14)
	f.SetColWidth(ledgerSheet, "F", "F", 40)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#4472C4"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	moneyFmt := "#,##0.00"
	moneyStyle, _ := f.NewStyle(&excelize.Style{CustomNumFmt: &moneyFmt})

	// title
	f.SetCellValue(ledgerSheet, "A1", "General ledger "+rangeLabel(req))
	f.MergeCell(ledgerSheet, "A1", "F1")
	f.SetCellStyle(ledgerSheet, "A1", "A1", headerStyle)

	// header
	for i, h := range []string{"ID", "Date", "Type", "Account", "Amount", "Description"} {
		f.SetCellValue(ledgerSheet, cell(colName(i), 2), h)
	}
	f.SetCellStyle(ledgerSheet, "A2", "F2", headerStyle)

	// rows
	row := 3
	for _, r := range records {
		f.SetCellValue(ledgerSheet, cell("A", row), r.FinancialRecordID)
		f.SetCellValue(ledgerSheet, cell("B", row), r.TransactionDate.String())
		f.SetCellValue(ledgerSheet, cell("C", row), r.TransactionType)
		if r.AccountCode != nil {
			f.SetCellValue(ledgerSheet, cell("D", row), *r.AccountCode)
		}
		f.SetCellValue(ledgerSheet, cell("E", row), money(r.Amount))
		if r.Description != nil {
			f.SetCellValue(ledgerSheet, cell("F", row), *r.Description)
		}
		row++
	}
	if row > 3 {
		f.SetCellStyle(ledgerSheet, cell("E", 3), cell("E", row-1), moneyStyle)
	}

	// totals
	sum := SummarizeLedger(records)
	row++
	for _, t := range []struct {
		label  string
		amount float64
	}{
		{"Total income", money(sum.Income)},
		{"Total expense", money(sum.Expense)},
		{"Net", money(sum.Net())},
	} {
		f.SetCellValue(ledgerSheet, cell("D", row), t.label)
		f.SetCellValue(ledgerSheet, cell("E", row), t.amount)
		f.SetCellStyle(ledgerSheet, cell("E", row), cell("E", row), moneyStyle)
		row++
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		s.logger.Error("export: write workbook failed", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	return buf, fmt.Sprintf("ledger_%s.xlsx", fileLabel(req)), nil
}

// ── helpers ──

func rangeLabel(q *dto.DateRangeQuery) string {
	switch {
	case q.StartDate != "" && q.EndDate != "":
		return q.StartDate + " to " + q.EndDate
	case q.StartDate != "":
		return "from " + q.StartDate
	case q.EndDate != "":
		return "until " + q.EndDate
	default:
		return "(all records)"
	}
}

func fileLabel(q *dto.DateRangeQuery) string {
	if q.StartDate == "" && q.EndDate == "" {
		return "all"
	}
	from, to := q.StartDate, q.EndDate
	if from == "" {
		from = "begin"
	}
	if to == "" {
		to = "end"
	}
	return from + "_" + to
}

func colName(idx int) string {
	name, _ := excelize.ColumnNumberToName(idx + 1)
	return name
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
