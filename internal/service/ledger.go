package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"eldercare-mis/internal/model"
	"eldercare-mis/internal/repository"
)

// MonetarySource kind of business event that moves money
type MonetarySource string

// Monetary sources recorded in the ledger.
const (
	SourceDonation      MonetarySource = "Donation"
	SourcePurchaseOrder MonetarySource = "PurchaseOrder"
	SourcePayroll       MonetarySource = "Payroll"
)

// TransactionType ledger type a source is booked under
func (s MonetarySource) TransactionType() string {
	if s == SourceDonation {
		return model.TransactionDonation
	}
	return model.TransactionExpense
}

// MonetaryEvent a money-moving event to book in the ledger
type MonetaryEvent struct {
	Source      MonetarySource
	SourceID    uint
	Date        model.Date
	Amount      decimal.Decimal
	Description string
}

// RecordMonetaryEvent inserts one financial record for ev and the link row
// binding it to the source entity. txRepo must be bound to the transaction
// that created the source so a failure here rolls both back.
func RecordMonetaryEvent(ctx context.Context, txRepo *repository.Repository, ev MonetaryEvent) (uint, error) {
	desc := ev.Description
	rec := &model.FinancialRecord{
		TransactionDate: ev.Date,
		TransactionType: ev.Source.TransactionType(),
		Amount:          ev.Amount,
		Description:     &desc,
	}
	if err := txRepo.FinancialRecord.Create(ctx, rec); err != nil {
		return 0, fmt.Errorf("create financial record: %w", err)
	}

	var err error
	switch ev.Source {
	case SourceDonation:
		err = txRepo.FinancialRecord.LinkDonation(ctx, ev.SourceID, rec.FinancialRecordID)
	case SourcePurchaseOrder:
		err = txRepo.FinancialRecord.LinkPurchaseOrder(ctx, ev.SourceID, rec.FinancialRecordID)
	case SourcePayroll:
		err = txRepo.FinancialRecord.LinkPayroll(ctx, ev.SourceID, rec.FinancialRecordID)
	default:
		err = fmt.Errorf("unknown monetary source %q", ev.Source)
	}
	if err != nil {
		return 0, fmt.Errorf("link %s %d to ledger: %w", ev.Source, ev.SourceID, err)
	}
	return rec.FinancialRecordID, nil
}
