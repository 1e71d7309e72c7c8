package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/henry1266/pharmacy-ledger/internal/domain"
)

// EntryResponse represents a transaction entry in API responses.
type EntryResponse struct {
	AccountID           string          `json:"account_id"`
	DebitAmount         decimal.Decimal `json:"debit_amount"`
	CreditAmount        decimal.Decimal `json:"credit_amount"`
	Description         string          `json:"description,omitempty"`
	SourceTransactionID string          `json:"source_transaction_id,omitempty"`
	FundingPath         []string        `json:"funding_path,omitempty"`
}

// TransactionResponse represents a transaction group in API responses.
type TransactionResponse struct {
	ID                   string          `json:"id"`
	Description          string          `json:"description"`
	TransactionDate      time.Time       `json:"transaction_date"`
	OrganizationID       *string         `json:"organization_id,omitempty"`
	ReceiptURL           string          `json:"receipt_url,omitempty"`
	InvoiceNo            string          `json:"invoice_no,omitempty"`
	Entries              []EntryResponse `json:"entries"`
	Status               string          `json:"status"`
	LinkedTransactionIDs []string        `json:"linked_transaction_ids,omitempty"`
	SourceTransactionID  string          `json:"source_transaction_id,omitempty"`
	FundingType          string          `json:"funding_type"`
	TotalAmount          decimal.Decimal `json:"total_amount"`
	CreatedAt            time.Time       `json:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at"`
}

// TransactionFromDomain converts a domain transaction group to a response.
func TransactionFromDomain(t *domain.TransactionGroup) *TransactionResponse {
	entries := make([]EntryResponse, len(t.Entries))
	for i, e := range t.Entries {
		entries[i] = EntryResponse{
			AccountID:           e.AccountID,
			DebitAmount:         e.DebitAmount,
			CreditAmount:        e.CreditAmount,
			Description:         e.Description,
			SourceTransactionID: e.SourceTransactionID,
			FundingPath:         e.FundingPath,
		}
	}

	return &TransactionResponse{
		ID:                   t.ID,
		Description:          t.Description,
		TransactionDate:      t.TransactionDate,
		OrganizationID:       t.OrganizationID,
		ReceiptURL:           t.ReceiptURL,
		InvoiceNo:            t.InvoiceNo,
		Entries:              entries,
		Status:               string(t.Status),
		LinkedTransactionIDs: t.LinkedTransactionIDs,
		SourceTransactionID:  t.SourceTransactionID,
		FundingType:          string(t.FundingType),
		TotalAmount:          t.TotalAmount(),
		CreatedAt:            t.CreatedAt,
		UpdatedAt:            t.UpdatedAt,
	}
}

// TransactionsFromDomain converts domain transaction groups to responses.
func TransactionsFromDomain(groups []*domain.TransactionGroup) []*TransactionResponse {
	result := make([]*TransactionResponse, len(groups))
	for i, g := range groups {
		result[i] = TransactionFromDomain(g)
	}
	return result
}

// PermissionsResponse represents lifecycle permissions in API responses.
type PermissionsResponse struct {
	Status     string `json:"status"`
	CanEdit    bool   `json:"can_edit"`
	CanDelete  bool   `json:"can_delete"`
	CanConfirm bool   `json:"can_confirm"`
}

// PermissionsFromDomain converts domain permissions to a response.
func PermissionsFromDomain(p domain.Permissions) *PermissionsResponse {
	return &PermissionsResponse{
		Status:     string(p.Status),
		CanEdit:    p.CanEdit,
		CanDelete:  p.CanDelete,
		CanConfirm: p.CanConfirm,
	}
}

// BalanceResponse represents balance details in API responses.
type BalanceResponse struct {
	IsBalanced  bool            `json:"is_balanced"`
	TotalDebit  decimal.Decimal `json:"total_debit"`
	TotalCredit decimal.Decimal `json:"total_credit"`
	Difference  decimal.Decimal `json:"difference"`
}

// BalanceFromDomain converts domain balance details to a response.
func BalanceFromDomain(d domain.BalanceDetails) *BalanceResponse {
	return &BalanceResponse{
		IsBalanced:  d.IsBalanced,
		TotalDebit:  d.TotalDebit,
		TotalCredit: d.TotalCredit,
		Difference:  d.Difference,
	}
}

// ValidationResponse represents a validation verdict in API responses.
type ValidationResponse struct {
	IsValid bool             `json:"is_valid"`
	Errors  []string         `json:"errors,omitempty"`
	Balance *BalanceResponse `json:"balance"`
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string   `json:"error"`
	Message string   `json:"message,omitempty"`
	Details []string `json:"details,omitempty"`
}
