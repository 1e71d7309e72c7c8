package assembler

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/henry1266/pharmacy-ledger/internal/domain"
)

func newTestAssembler(t *testing.T) *Assembler {
	t.Helper()
	return New(zerolog.Nop())
}

func TestConvertInbound_NilInput(t *testing.T) {
	a := newTestAssembler(t)

	tx := a.ConvertInbound(nil)

	assert.Equal(t, domain.TransactionGroup{}, tx)
}

func TestConvertInbound_Defaults(t *testing.T) {
	a := newTestAssembler(t)
	before := time.Now()

	tx := a.ConvertInbound(map[string]any{})

	assert.Empty(t, tx.Description)
	assert.Nil(t, tx.OrganizationID)
	assert.Empty(t, tx.ReceiptURL)
	assert.Empty(t, tx.InvoiceNo)
	assert.Empty(t, tx.Entries)
	assert.Nil(t, tx.LinkedTransactionIDs)
	assert.Empty(t, tx.SourceTransactionID)
	assert.Equal(t, domain.FundingTypeOriginal, tx.FundingType)
	assert.False(t, tx.TransactionDate.Before(before), "unparsable date should default to now")
}

func TestConvertInbound_UnwrapsEnvelope(t *testing.T) {
	a := newTestAssembler(t)

	tx := a.ConvertInbound(map[string]any{
		"transaction": map[string]any{
			"description":     "Shelf restock",
			"transactionDate": "2026-03-15",
			"fundingType":     "extended",
		},
		"entries": []any{
			map[string]any{"accountId": "507f1f77bcf86cd799439011", "debitAmount": 250.0},
			map[string]any{"accountId": "507f1f77bcf86cd799439012", "creditAmount": 250.0},
		},
	})

	assert.Equal(t, "Shelf restock", tx.Description)
	assert.Equal(t, domain.FundingTypeExtended, tx.FundingType)
	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), tx.TransactionDate)
	require.Len(t, tx.Entries, 2)
	assert.True(t, tx.Entries[0].DebitAmount.Equal(decimal.NewFromInt(250)))
	assert.True(t, tx.Entries[1].CreditAmount.Equal(decimal.NewFromInt(250)))
}

func TestConvertInbound_LineagePassThrough(t *testing.T) {
	a := newTestAssembler(t)

	tx := a.ConvertInbound(map[string]any{
		"description":          "Funding extension",
		"sourceTransactionId":  "507f1f77bcf86cd799439011",
		"linkedTransactionIds": []any{"507f1f77bcf86cd799439011", "507f1f77bcf86cd799439012"},
		"fundingType":          "transfer",
	})

	assert.Equal(t, "507f1f77bcf86cd799439011", tx.SourceTransactionID)
	assert.Equal(t, []string{"507f1f77bcf86cd799439011", "507f1f77bcf86cd799439012"}, tx.LinkedTransactionIDs)
	assert.Equal(t, domain.FundingTypeTransfer, tx.FundingType)
}

func TestConvertInbound_UnknownFundingTypeDefaultsToOriginal(t *testing.T) {
	a := newTestAssembler(t)

	tx := a.ConvertInbound(map[string]any{"fundingType": "borrowed"})

	assert.Equal(t, domain.FundingTypeOriginal, tx.FundingType)
}

func TestConvertInboundEntry(t *testing.T) {
	a := newTestAssembler(t)

	entry := a.ConvertInboundEntry(map[string]any{
		"accountId":           "507f1f77bcf86cd799439011",
		"debitAmount":         "120.50",
		"sourceTransactionId": "507f1f77bcf86cd799439099",
		"fundingPath":         []any{"507f1f77bcf86cd799439088", "507f1f77bcf86cd799439099"},
	})

	assert.Equal(t, "507f1f77bcf86cd799439011", entry.AccountID)
	assert.True(t, entry.DebitAmount.Equal(decimal.RequireFromString("120.50")))
	assert.True(t, entry.CreditAmount.IsZero())
	assert.Empty(t, entry.Description)
	assert.Equal(t, "507f1f77bcf86cd799439099", entry.SourceTransactionID)
	assert.Equal(t, []string{"507f1f77bcf86cd799439088", "507f1f77bcf86cd799439099"}, entry.FundingPath)
}

func TestPrepareCopy_ResetsLineage(t *testing.T) {
	a := newTestAssembler(t)
	before := time.Now()

	org := "org-1"
	original := domain.TransactionGroup{
		ID:                   "507f1f77bcf86cd799439011",
		Description:          "Supplier payment",
		TransactionDate:      time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		OrganizationID:       &org,
		ReceiptURL:           "https://receipts/1.pdf",
		InvoiceNo:            "INV-001",
		Status:               domain.StatusConfirmed,
		LinkedTransactionIDs: []string{"a"},
		SourceTransactionID:  "a",
		FundingType:          domain.FundingTypeExtended,
		Entries: []domain.Entry{
			{AccountID: "ACC1", DebitAmount: decimal.NewFromInt(100), Description: "leg one"},
			{AccountID: "ACC2", CreditAmount: decimal.NewFromInt(100), Description: "leg two"},
		},
	}

	seed := a.PrepareCopy(original)

	assert.Empty(t, seed.Description)
	assert.Empty(t, seed.ReceiptURL)
	assert.Empty(t, seed.InvoiceNo)
	assert.Nil(t, seed.LinkedTransactionIDs)
	assert.Empty(t, seed.SourceTransactionID)
	assert.Equal(t, domain.FundingTypeOriginal, seed.FundingType)
	assert.Equal(t, domain.StatusDraft, seed.Status)
	assert.False(t, seed.TransactionDate.Before(before), "copy should get a fresh date")

	require.Len(t, seed.Entries, 2)
	for i, entry := range seed.Entries {
		assert.Empty(t, entry.Description)
		assert.Equal(t, original.Entries[i].AccountID, entry.AccountID)
		assert.True(t, entry.DebitAmount.Equal(original.Entries[i].DebitAmount))
		assert.True(t, entry.CreditAmount.Equal(original.Entries[i].CreditAmount))
		assert.Empty(t, entry.SourceTransactionID)
		assert.Nil(t, entry.FundingPath)
	}
}

func TestCleanForSubmission(t *testing.T) {
	a := newTestAssembler(t)

	blankOrg := "   "
	tx := domain.TransactionGroup{
		Description:          "  Office supplies  ",
		TransactionDate:      time.Now(),
		OrganizationID:       &blankOrg,
		ReceiptURL:           " https://receipts/2.pdf ",
		InvoiceNo:            "  ",
		LinkedTransactionIDs: []string{},
		Entries: []domain.Entry{
			{AccountID: "ACC1", DebitAmount: decimal.NewFromInt(100)},
			{AccountID: "ACC2", CreditAmount: decimal.NewFromInt(100), Description: " custom "},
		},
	}

	cleaned := a.CleanForSubmission(tx)

	assert.Equal(t, "Office supplies", cleaned.Description)
	assert.Nil(t, cleaned.OrganizationID, "blank organization should collapse to nil")
	assert.Equal(t, "https://receipts/2.pdf", cleaned.ReceiptURL)
	assert.Empty(t, cleaned.InvoiceNo)
	assert.Nil(t, cleaned.LinkedTransactionIDs)
	assert.Equal(t, domain.FundingTypeOriginal, cleaned.FundingType)

	require.Len(t, cleaned.Entries, 2)
	assert.Equal(t, "Office supplies", cleaned.Entries[0].Description,
		"blank entry description should inherit the transaction's")
	assert.Equal(t, "custom", cleaned.Entries[1].Description)
}

func TestCleanForSubmission_Idempotent(t *testing.T) {
	a := newTestAssembler(t)

	org := " org-7 "
	tx := domain.TransactionGroup{
		Description:     " Vaccine stock ",
		TransactionDate: time.Now(),
		OrganizationID:  &org,
		FundingType:     domain.FundingTypeExtended,
		Entries: []domain.Entry{
			{AccountID: "ACC1", DebitAmount: decimal.NewFromInt(50)},
			{AccountID: "ACC2", CreditAmount: decimal.NewFromInt(50)},
		},
	}

	once := a.CleanForSubmission(tx)
	twice := a.CleanForSubmission(once)

	assert.Equal(t, once, twice)
}

func TestSafeGet(t *testing.T) {
	obj := map[string]any{
		"transaction": map[string]any{
			"meta": map[string]any{"source": "pos"},
		},
		"count": 3,
	}

	tests := []struct {
		name string
		path string
		def  any
		want any
	}{
		{name: "nested hit", path: "transaction.meta.source", def: "", want: "pos"},
		{name: "top-level hit", path: "count", def: 0, want: 3},
		{name: "missing leaf", path: "transaction.meta.missing", def: "fallback", want: "fallback"},
		{name: "path through non-map", path: "count.inner", def: "d", want: "d"},
		{name: "empty path", path: "", def: "d", want: "d"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SafeGet(obj, tt.path, tt.def))
		})
	}
}

func TestSafeGet_NilObject(t *testing.T) {
	assert.Equal(t, "d", SafeGet(nil, "a.b", "d"))
}
