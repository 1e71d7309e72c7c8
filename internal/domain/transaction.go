package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// FundingType classifies where a transaction's value comes from.
type FundingType string

const (
	// FundingTypeOriginal means the funds originate in this transaction.
	FundingTypeOriginal FundingType = "original"
	// FundingTypeExtended means this transaction continues a previously funded one.
	FundingTypeExtended FundingType = "extended"
	// FundingTypeTransfer means this transaction moves previously sourced funds.
	FundingTypeTransfer FundingType = "transfer"
)

// IsValidFundingType reports whether v is a known funding type.
func IsValidFundingType(v FundingType) bool {
	switch v {
	case FundingTypeOriginal, FundingTypeExtended, FundingTypeTransfer:
		return true
	}
	return false
}

// Entry is one leg of a double-entry posting. Exactly one of DebitAmount and
// CreditAmount must be positive for the entry to be valid.
type Entry struct {
	AccountID           string
	DebitAmount         decimal.Decimal
	CreditAmount        decimal.Decimal
	Description         string
	SourceTransactionID string
	// FundingPath records the chain of prior transactions this entry's value
	// was sourced through, oldest first. Empty when the value originates here.
	FundingPath []string
}

// TransactionGroup is the atomic unit of record: a set of entries that must
// balance, plus the funding lineage linking it to prior transactions.
type TransactionGroup struct {
	ID                   string
	Description          string
	TransactionDate      time.Time
	OrganizationID       *string
	ReceiptURL           string
	InvoiceNo            string
	Entries              []Entry
	Status               Status
	LinkedTransactionIDs []string
	SourceTransactionID  string
	FundingType          FundingType
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// TotalAmount returns the transaction's headline amount: the sum of debits,
// which equals the sum of credits when the transaction balances.
func (t *TransactionGroup) TotalAmount() decimal.Decimal {
	return CalculateTotalAmount(t.Entries)
}

// HasLineage reports whether the transaction references funding from prior
// transactions.
func (t *TransactionGroup) HasLineage() bool {
	return t.SourceTransactionID != "" || len(t.LinkedTransactionIDs) > 0
}
