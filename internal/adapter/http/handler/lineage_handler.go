package handler

import (
	"context"
	"net/http"

	"github.com/henry1266/pharmacy-ledger/internal/adapter/http/dto"
	"github.com/henry1266/pharmacy-ledger/internal/domain"
	"github.com/henry1266/pharmacy-ledger/internal/usecase"
)

// LineageService defines the lineage operations the handler needs.
type LineageService interface {
	GetFundingChain(ctx context.Context, id string) ([]*domain.TransactionGroup, error)
	ListLinkedTransactions(ctx context.Context, input usecase.ListLinkedTransactionsInput) ([]*domain.TransactionGroup, error)
}

// LineageHandler handles funding-lineage HTTP requests.
type LineageHandler struct {
	lineageUC LineageService
}

// NewLineageHandler creates a new LineageHandler.
func NewLineageHandler(lineageUC LineageService) *LineageHandler {
	return &LineageHandler{lineageUC: lineageUC}
}

// FundingChain returns the chain of source transactions a transaction draws
// its funding through, oldest first.
func (h *LineageHandler) FundingChain(w http.ResponseWriter, r *http.Request) {
	id, ok := transactionID(w, r)
	if !ok {
		return
	}

	chain, err := h.lineageUC.GetFundingChain(r.Context(), id)
	if err != nil {
		writeDomainError(w, err, "failed to get funding chain")
		return
	}

	writeJSON(w, http.StatusOK, dto.TransactionsFromDomain(chain))
}

// Linked lists transactions whose linked set references the given one.
func (h *LineageHandler) Linked(w http.ResponseWriter, r *http.Request) {
	id, ok := transactionID(w, r)
	if !ok {
		return
	}

	groups, err := h.lineageUC.ListLinkedTransactions(r.Context(), usecase.ListLinkedTransactionsInput{
		TransactionID: id,
		Limit:         parseIntQuery(r, "limit", usecase.DefaultPageSize),
		Offset:        parseIntQuery(r, "offset", 0),
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list linked transactions", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.TransactionsFromDomain(groups))
}
