package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/henry1266/pharmacy-ledger/internal/adapter/http/dto"
	"github.com/henry1266/pharmacy-ledger/internal/assembler"
	"github.com/henry1266/pharmacy-ledger/internal/domain"
	"github.com/henry1266/pharmacy-ledger/internal/usecase"
)

// ActorHeader identifies the caller for audit purposes.
const ActorHeader = "X-Actor"

// TransactionService defines the transaction operations the handler needs.
type TransactionService interface {
	CreateTransaction(ctx context.Context, input usecase.CreateTransactionInput) (*domain.TransactionGroup, error)
	UpdateTransaction(ctx context.Context, id string, input usecase.CreateTransactionInput) (*domain.TransactionGroup, error)
	ConfirmTransaction(ctx context.Context, id string) (*domain.TransactionGroup, error)
	CancelTransaction(ctx context.Context, id string) (*domain.TransactionGroup, error)
	DeleteTransaction(ctx context.Context, id string) error
	GetTransaction(ctx context.Context, id string) (*domain.TransactionGroup, error)
	ListTransactions(ctx context.Context, input usecase.ListTransactionsInput) ([]*domain.TransactionGroup, error)
	GetPermissions(ctx context.Context, id string) (domain.Permissions, error)
	GetCopySeed(ctx context.Context, id string) (*domain.TransactionGroup, error)
}

// TransactionHandler handles transaction-related HTTP requests.
type TransactionHandler struct {
	txUC TransactionService
	asm  *assembler.Assembler
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(txUC TransactionService, asm *assembler.Assembler) *TransactionHandler {
	return &TransactionHandler{txUC: txUC, asm: asm}
}

// Create creates a new draft transaction.
func (h *TransactionHandler) Create(w http.ResponseWriter, r *http.Request) {
	raw, err := dto.DecodeRawTransaction(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	group := h.asm.ConvertInbound(raw)

	created, err := h.txUC.CreateTransaction(r.Context(), usecase.CreateTransactionInput{
		Transaction: group,
		Actor:       r.Header.Get(ActorHeader),
		RequestID:   chimiddleware.GetReqID(r.Context()),
	})
	if err != nil {
		writeDomainError(w, err, "failed to create transaction")
		return
	}

	writeJSON(w, http.StatusCreated, dto.TransactionFromDomain(created))
}

// Get retrieves a transaction by ID.
func (h *TransactionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := transactionID(w, r)
	if !ok {
		return
	}

	group, err := h.txUC.GetTransaction(r.Context(), id)
	if err != nil {
		writeDomainError(w, err, "failed to get transaction")
		return
	}

	writeJSON(w, http.StatusOK, dto.TransactionFromDomain(group))
}

// Update replaces a draft transaction's content.
func (h *TransactionHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := transactionID(w, r)
	if !ok {
		return
	}

	raw, err := dto.DecodeRawTransaction(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	group := h.asm.ConvertInbound(raw)

	updated, err := h.txUC.UpdateTransaction(r.Context(), id, usecase.CreateTransactionInput{
		Transaction: group,
		Actor:       r.Header.Get(ActorHeader),
		RequestID:   chimiddleware.GetReqID(r.Context()),
	})
	if err != nil {
		writeDomainError(w, err, "failed to update transaction")
		return
	}

	writeJSON(w, http.StatusOK, dto.TransactionFromDomain(updated))
}

// Delete removes a draft transaction.
func (h *TransactionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := transactionID(w, r)
	if !ok {
		return
	}

	if err := h.txUC.DeleteTransaction(r.Context(), id); err != nil {
		writeDomainError(w, err, "failed to delete transaction")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// List lists transactions, optionally filtered by status.
func (h *TransactionHandler) List(w http.ResponseWriter, r *http.Request) {
	status := domain.Status(r.URL.Query().Get("status"))
	if status != "" && !domain.IsValidStatus(status) {
		writeError(w, http.StatusBadRequest, "invalid status filter", string(status))
		return
	}

	groups, err := h.txUC.ListTransactions(r.Context(), usecase.ListTransactionsInput{
		Status: status,
		Limit:  parseIntQuery(r, "limit", usecase.DefaultPageSize),
		Offset: parseIntQuery(r, "offset", 0),
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list transactions", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.TransactionsFromDomain(groups))
}

// Confirm transitions a draft transaction to confirmed.
func (h *TransactionHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.txUC.ConfirmTransaction, "failed to confirm transaction")
}

// Cancel transitions a draft transaction to cancelled.
func (h *TransactionHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.txUC.CancelTransaction, "failed to cancel transaction")
}

// Permissions returns what the caller may do with a transaction.
func (h *TransactionHandler) Permissions(w http.ResponseWriter, r *http.Request) {
	id, ok := transactionID(w, r)
	if !ok {
		return
	}

	perms, err := h.txUC.GetPermissions(r.Context(), id)
	if err != nil {
		writeDomainError(w, err, "failed to get permissions")
		return
	}

	writeJSON(w, http.StatusOK, dto.PermissionsFromDomain(perms))
}

// Copy returns a copy seed for a transaction, with identity and lineage
// fields cleared so the client can edit and resubmit it as a new draft.
func (h *TransactionHandler) Copy(w http.ResponseWriter, r *http.Request) {
	id, ok := transactionID(w, r)
	if !ok {
		return
	}

	seed, err := h.txUC.GetCopySeed(r.Context(), id)
	if err != nil {
		writeDomainError(w, err, "failed to prepare copy")
		return
	}

	writeJSON(w, http.StatusOK, dto.TransactionFromDomain(seed))
}

// Validate runs validation on a transaction payload without persisting it.
func (h *TransactionHandler) Validate(w http.ResponseWriter, r *http.Request) {
	raw, err := dto.DecodeRawTransaction(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	group := h.asm.ConvertInbound(raw)
	group = h.asm.CleanForSubmission(group)

	result := domain.ValidateTransaction(&group)
	details := domain.GetBalanceDetails(group.Entries)

	writeJSON(w, http.StatusOK, dto.ValidationResponse{
		IsValid: result.IsValid,
		Errors:  result.Errors,
		Balance: dto.BalanceFromDomain(details),
	})
}

func (h *TransactionHandler) transition(
	w http.ResponseWriter,
	r *http.Request,
	op func(context.Context, string) (*domain.TransactionGroup, error),
	message string,
) {
	id, ok := transactionID(w, r)
	if !ok {
		return
	}

	group, err := op(r.Context(), id)
	if err != nil {
		writeDomainError(w, err, message)
		return
	}

	writeJSON(w, http.StatusOK, dto.TransactionFromDomain(group))
}

// transactionID extracts and checks the {id} URL parameter, writing a 400
// response when it is missing or malformed.
func transactionID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing transaction ID", "")
		return "", false
	}
	if !domain.IsValidObjectID(id) {
		writeError(w, http.StatusBadRequest, "invalid transaction ID", domain.ErrInvalidID.Error())
		return "", false
	}
	return id, true
}
