package service

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"eldercare-mis/internal/dto"
	"eldercare-mis/internal/model"
	pkgerrors "eldercare-mis/pkg/errors"
)

func TestExportService_ExportLedger(t *testing.T) {
	repo, st := newMockRepository()
	svc := NewExportService(repo, zap.NewNop())

	seedRecord(st, "2024-02-01", model.TransactionIncome, "1000")
	seedRecord(st, "2024-02-10", model.TransactionExpense, "250.50")
	seedRecord(st, "2024-03-01", model.TransactionExpense, "99")

	buf, name, err := svc.ExportLedger(context.Background(), &dto.DateRangeQuery{StartDate: "2024-02-01", EndDate: "2024-02-28"})
	require.NoError(t, err)
	assert.Equal(t, "ledger_2024-02-01_2024-02-28.xlsx", name)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("PK")), "xlsx is a zip archive")

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(ledgerSheet)
	require.NoError(t, err)
	// title, header, 2 records, blank, 3 totals
	require.Len(t, rows, 8)
	assert.Equal(t, "General ledger 2024-02-01 to 2024-02-28", rows[0][0])
	assert.Equal(t, []string{"ID", "Date", "Type", "Account", "Amount", "Description"}, rows[1])

	net, err := f.GetCellValue(ledgerSheet, "E8", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, "749.5", net)
}

func TestExportService_ExportLedger_AllRecords(t *testing.T) {
	repo, _ := newMockRepository()
	svc := NewExportService(repo, zap.NewNop())

	buf, name, err := svc.ExportLedger(context.Background(), &dto.DateRangeQuery{})
	require.NoError(t, err)
	assert.Equal(t, "ledger_all.xlsx", name)
	assert.NotZero(t, buf.Len())
}

func TestExportService_ExportLedger_BadRange(t *testing.T) {
	repo, _ := newMockRepository()
	svc := NewExportService(repo, zap.NewNop())

	_, _, err := svc.ExportLedger(context.Background(), &dto.DateRangeQuery{StartDate: "02/01/2024"})
	assert.True(t, pkgerrors.IsClientInput(err), "expected client input error, got %v", err)
}
