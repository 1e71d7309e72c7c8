package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"

	"github.com/henry1266/pharmacy-ledger/internal/domain"
)

// A cleaned transaction with no lineage carries a nil linked-ID slice and an
// empty source ID. Both must reach postgres as NULL, which the nullable
// schema columns accept.
func TestCreateEncodesAbsentLineageAsNull(t *testing.T) {
	mockPool := newMockPool(t)
	mockPool.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	mockPool.ExpectExec("INSERT INTO transactions").
		WithArgs(
			"507f1f77bcf86cd799439011",
			"morning sale",
			pgxmock.AnyArg(),
			(*string)(nil),
			"",
			"",
			pgxmock.AnyArg(),
			"draft",
			[]string(nil),
			(*string)(nil),
			"original",
			pgxmock.AnyArg(),
			pgxmock.AnyArg(),
		).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mockPool.ExpectCommit()

	tx, err := newTxManagerWithPool(mockPool).Begin(context.Background())
	if err != nil {
		t.Fatalf("begin failed: %v", err)
	}

	repo := NewTransactionRepository(nil)
	if err := repo.Create(context.Background(), tx, lineageFreeGroup()); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := tx.Commit(context.Background()); err != nil {
		t.Fatalf("commit failed: %v", err)
	}

	assertExpectations(t, mockPool)
}

func TestUpdateEncodesAbsentLineageAsNull(t *testing.T) {
	mockPool := newMockPool(t)
	mockPool.ExpectBeginTx(pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
	mockPool.ExpectExec("UPDATE transactions").
		WithArgs(
			"507f1f77bcf86cd799439011",
			"morning sale",
			pgxmock.AnyArg(),
			(*string)(nil),
			"",
			"",
			pgxmock.AnyArg(),
			[]string(nil),
			(*string)(nil),
			"original",
			pgxmock.AnyArg(),
		).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mockPool.ExpectCommit()

	tx, err := newTxManagerWithPool(mockPool).Begin(context.Background())
	if err != nil {
		t.Fatalf("begin failed: %v", err)
	}

	repo := NewTransactionRepository(nil)
	if err := repo.Update(context.Background(), tx, lineageFreeGroup()); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if err := tx.Commit(context.Background()); err != nil {
		t.Fatalf("commit failed: %v", err)
	}

	assertExpectations(t, mockPool)
}

func lineageFreeGroup() *domain.TransactionGroup {
	now := time.Now()
	return &domain.TransactionGroup{
		ID:              "507f1f77bcf86cd799439011",
		Description:     "morning sale",
		TransactionDate: now,
		Entries: []domain.Entry{
			{AccountID: "cash", DebitAmount: decimal.RequireFromString("100")},
			{AccountID: "sales", CreditAmount: decimal.RequireFromString("100")},
		},
		Status:      domain.StatusDraft,
		FundingType: domain.FundingTypeOriginal,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
