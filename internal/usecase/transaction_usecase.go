package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/henry1266/pharmacy-ledger/internal/assembler"
	"github.com/henry1266/pharmacy-ledger/internal/domain"
	"github.com/henry1266/pharmacy-ledger/internal/infrastructure/metrics"
)

// TransactionUseCase handles transaction business logic: validation-gated
// persistence, the status lifecycle, and copy seeding.
type TransactionUseCase struct {
	txManager  TransactionManager
	repo       TransactionRepository
	outboxRepo OutboxRepository
	auditRepo  AuditRepository
	idGen      IDGenerator
	cache      Cache
	retrier    Retrier
	asm        *assembler.Assembler
	metrics    *metrics.Metrics
}

// NewTransactionUseCase creates a new TransactionUseCase. Cache, retrier,
// audit repository and metrics are optional; nil disables the corresponding
// behavior.
func NewTransactionUseCase(
	txManager TransactionManager,
	repo TransactionRepository,
	outboxRepo OutboxRepository,
	auditRepo AuditRepository,
	idGen IDGenerator,
	cache Cache,
	retrier Retrier,
	asm *assembler.Assembler,
	m *metrics.Metrics,
) *TransactionUseCase {
	return &TransactionUseCase{
		txManager:  txManager,
		repo:       repo,
		outboxRepo: outboxRepo,
		auditRepo:  auditRepo,
		idGen:      idGen,
		cache:      cache,
		retrier:    retrier,
		asm:        asm,
		metrics:    m,
	}
}

// CreateTransactionInput represents input for creating a transaction.
type CreateTransactionInput struct {
	Transaction domain.TransactionGroup
	Actor       string
	RequestID   string
}

// CreateTransaction validates, cleans and persists a new draft transaction,
// emitting an outbox event in the same database transaction.
func (uc *TransactionUseCase) CreateTransaction(ctx context.Context, input CreateTransactionInput) (*domain.TransactionGroup, error) {
	result := domain.ValidateTransaction(&input.Transaction)
	if !result.IsValid {
		uc.recordValidationFailure(&input.Transaction)
		return nil, domain.NewValidationError(result)
	}

	group := uc.asm.CleanForSubmission(input.Transaction)

	now := time.Now().UTC()
	group.ID = uc.idGen.Generate()
	group.Status = domain.DefaultStatus()
	group.CreatedAt = now
	group.UpdatedAt = now

	err := uc.withRetry(ctx, func() error {
		tx, err := uc.txManager.Begin(ctx)
		if err != nil {
			return err
		}
		defer tx.Rollback(ctx)

		if err := uc.repo.Create(ctx, tx, &group); err != nil {
			return err
		}

		event := &domain.OutboxEvent{
			AggregateID:   group.ID,
			AggregateType: domain.AggregateTypeTransaction,
			EventType:     domain.EventTypeTransactionCreated,
			Payload: map[string]any{
				"transaction_id": group.ID,
				"description":    group.Description,
				"total_amount":   group.TotalAmount().String(),
				"funding_type":   string(group.FundingType),
				"event_at":       now.Format(time.RFC3339),
			},
			CreatedAt: now,
		}
		if err := uc.outboxRepo.Create(ctx, tx, event); err != nil {
			return err
		}

		return tx.Commit(ctx)
	})
	if err != nil {
		uc.recordAudit(ctx, domain.AuditActionTransactionCreate, group.ID, input, nil, err)
		return nil, err
	}

	uc.recordAudit(ctx, domain.AuditActionTransactionCreate, group.ID, nil, &group, nil)

	if uc.metrics != nil {
		uc.metrics.TransactionsCreated.Inc()
		uc.metrics.TransactionAmount.Observe(group.TotalAmount().InexactFloat64())
	}

	return &group, nil
}

// UpdateTransaction replaces a draft transaction's content. Non-draft
// transactions are immutable.
func (uc *TransactionUseCase) UpdateTransaction(ctx context.Context, id string, input CreateTransactionInput) (*domain.TransactionGroup, error) {
	existing, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !domain.GetPermissions(existing.Status).CanEdit {
		return nil, fmt.Errorf("%w: status is %s", domain.ErrTransactionNotEditable, existing.Status)
	}

	result := domain.ValidateTransaction(&input.Transaction)
	if !result.IsValid {
		uc.recordValidationFailure(&input.Transaction)
		return nil, domain.NewValidationError(result)
	}

	group := uc.asm.CleanForSubmission(input.Transaction)
	group.ID = existing.ID
	group.Status = existing.Status
	group.CreatedAt = existing.CreatedAt
	group.UpdatedAt = time.Now().UTC()

	err = uc.withRetry(ctx, func() error {
		tx, err := uc.txManager.Begin(ctx)
		if err != nil {
			return err
		}
		defer tx.Rollback(ctx)

		if err := uc.repo.Update(ctx, tx, &group); err != nil {
			return err
		}

		event := &domain.OutboxEvent{
			AggregateID:   group.ID,
			AggregateType: domain.AggregateTypeTransaction,
			EventType:     domain.EventTypeTransactionUpdated,
			Payload: map[string]any{
				"transaction_id": group.ID,
				"description":    group.Description,
				"total_amount":   group.TotalAmount().String(),
			},
			CreatedAt: group.UpdatedAt,
		}
		if err := uc.outboxRepo.Create(ctx, tx, event); err != nil {
			return err
		}

		return tx.Commit(ctx)
	})
	if err != nil {
		uc.recordAudit(ctx, domain.AuditActionTransactionUpdate, id, existing, nil, err)
		return nil, err
	}

	uc.invalidateCache(ctx, id)
	uc.recordAudit(ctx, domain.AuditActionTransactionUpdate, id, existing, &group, nil)

	return &group, nil
}

// ConfirmTransaction moves a draft transaction to confirmed.
func (uc *TransactionUseCase) ConfirmTransaction(ctx context.Context, id string) (*domain.TransactionGroup, error) {
	return uc.transition(ctx, id, domain.StatusConfirmed, domain.AuditActionTransactionConfirm, domain.EventTypeTransactionConfirmed)
}

// CancelTransaction moves a draft transaction to cancelled.
func (uc *TransactionUseCase) CancelTransaction(ctx context.Context, id string) (*domain.TransactionGroup, error) {
	return uc.transition(ctx, id, domain.StatusCancelled, domain.AuditActionTransactionCancel, domain.EventTypeTransactionCancelled)
}

func (uc *TransactionUseCase) transition(ctx context.Context, id string, to domain.Status, action domain.AuditAction, eventType string) (*domain.TransactionGroup, error) {
	existing, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	from := existing.Status
	if !domain.IsValidStatusTransition(from, to) {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidStatusTransition, domain.StatusChangeMessage(from, to))
	}

	now := time.Now().UTC()

	err = uc.withRetry(ctx, func() error {
		tx, err := uc.txManager.Begin(ctx)
		if err != nil {
			return err
		}
		defer tx.Rollback(ctx)

		if err := uc.repo.UpdateStatus(ctx, tx, id, to, now); err != nil {
			return err
		}

		event := &domain.OutboxEvent{
			AggregateID:   id,
			AggregateType: domain.AggregateTypeTransaction,
			EventType:     eventType,
			Payload: map[string]any{
				"transaction_id": id,
				"from_status":    string(from),
				"to_status":      string(to),
				"message":        domain.StatusChangeMessage(from, to),
			},
			CreatedAt: now,
		}
		if err := uc.outboxRepo.Create(ctx, tx, event); err != nil {
			return err
		}

		return tx.Commit(ctx)
	})
	if err != nil {
		uc.recordAudit(ctx, action, id, existing, nil, err)
		return nil, err
	}

	uc.invalidateCache(ctx, id)

	updated := *existing
	updated.Status = to
	updated.UpdatedAt = now

	uc.recordAudit(ctx, action, id, existing, &updated, nil)

	if uc.metrics != nil {
		switch to {
		case domain.StatusConfirmed:
			uc.metrics.TransactionsConfirmed.Inc()
		case domain.StatusCancelled:
			uc.metrics.TransactionsCancelled.Inc()
		}
	}

	return &updated, nil
}

// DeleteTransaction removes a draft transaction. Confirmed and cancelled
// transactions are kept forever.
func (uc *TransactionUseCase) DeleteTransaction(ctx context.Context, id string) error {
	existing, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !domain.GetPermissions(existing.Status).CanDelete {
		return fmt.Errorf("%w: status is %s", domain.ErrTransactionNotDeletable, existing.Status)
	}

	now := time.Now().UTC()

	err = uc.withRetry(ctx, func() error {
		tx, err := uc.txManager.Begin(ctx)
		if err != nil {
			return err
		}
		defer tx.Rollback(ctx)

		if err := uc.repo.Delete(ctx, tx, id); err != nil {
			return err
		}

		event := &domain.OutboxEvent{
			AggregateID:   id,
			AggregateType: domain.AggregateTypeTransaction,
			EventType:     domain.EventTypeTransactionDeleted,
			Payload: map[string]any{
				"transaction_id": id,
				"description":    existing.Description,
			},
			CreatedAt: now,
		}
		if err := uc.outboxRepo.Create(ctx, tx, event); err != nil {
			return err
		}

		return tx.Commit(ctx)
	})
	if err != nil {
		uc.recordAudit(ctx, domain.AuditActionTransactionDelete, id, existing, nil, err)
		return err
	}

	uc.invalidateCache(ctx, id)
	uc.recordAudit(ctx, domain.AuditActionTransactionDelete, id, existing, nil, nil)

	if uc.metrics != nil {
		uc.metrics.TransactionsDeleted.Inc()
	}

	return nil
}

// GetTransaction retrieves a transaction by ID, reading through the cache
// when one is configured.
func (uc *TransactionUseCase) GetTransaction(ctx context.Context, id string) (*domain.TransactionGroup, error) {
	if uc.cache != nil {
		if data, err := uc.cache.Get(ctx, cacheKey(id)); err == nil && len(data) > 0 {
			var cached domain.TransactionGroup
			if err := json.Unmarshal(data, &cached); err == nil {
				return &cached, nil
			}
		}
	}

	group, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if data, err := json.Marshal(group); err == nil {
			_ = uc.cache.Set(ctx, cacheKey(id), data, TransactionCacheTTL)
		}
	}

	return group, nil
}

// ListTransactionsInput represents input for listing transactions.
type ListTransactionsInput struct {
	Status domain.Status
	Limit  int
	Offset int
}

// ListTransactions lists transactions, optionally filtered by status.
func (uc *TransactionUseCase) ListTransactions(ctx context.Context, input ListTransactionsInput) ([]*domain.TransactionGroup, error) {
	limit, offset := clampPagination(input.Limit, input.Offset)

	if input.Status != "" {
		return uc.repo.ListByStatus(ctx, input.Status, limit, offset)
	}

	return uc.repo.List(ctx, limit, offset)
}

// GetPermissions returns what the caller may do with the stored transaction.
func (uc *TransactionUseCase) GetPermissions(ctx context.Context, id string) (domain.Permissions, error) {
	group, err := uc.GetTransaction(ctx, id)
	if err != nil {
		return domain.Permissions{}, err
	}

	return domain.GetPermissions(group.Status), nil
}

// GetCopySeed loads a transaction and derives a fresh draft seed from it,
// with lineage stripped.
func (uc *TransactionUseCase) GetCopySeed(ctx context.Context, id string) (*domain.TransactionGroup, error) {
	original, err := uc.GetTransaction(ctx, id)
	if err != nil {
		return nil, err
	}

	seed := uc.asm.PrepareCopy(*original)

	return &seed, nil
}

func (uc *TransactionUseCase) withRetry(ctx context.Context, operation func() error) error {
	if uc.retrier == nil {
		return operation()
	}
	return uc.retrier.Retry(ctx, operation)
}

func (uc *TransactionUseCase) invalidateCache(ctx context.Context, id string) {
	if uc.cache != nil {
		_ = uc.cache.Delete(ctx, cacheKey(id))
	}
}

func (uc *TransactionUseCase) recordAudit(ctx context.Context, action domain.AuditAction, id string, before, after any, opErr error) {
	if uc.auditRepo == nil {
		return
	}

	log := &domain.AuditLog{
		Action:       string(action),
		ResourceType: domain.AggregateTypeTransaction,
		ResourceID:   id,
		BeforeState:  domain.MarshalState(before),
		AfterState:   domain.MarshalState(after),
		Status:       string(domain.AuditStatusSuccess),
		CreatedAt:    time.Now().UTC(),
	}

	if opErr != nil {
		log.Status = string(domain.AuditStatusError)
		log.ErrorMessage = opErr.Error()
	}

	// Audit writes are best effort and must not fail the operation.
	_ = uc.auditRepo.Create(ctx, log)
}

// recordValidationFailure counts which rule classes rejected the submission.
func (uc *TransactionUseCase) recordValidationFailure(tx *domain.TransactionGroup) {
	if uc.metrics == nil {
		return
	}

	if r := domain.ValidateBasicInfo(tx); !r.IsValid {
		uc.metrics.ValidationFailures.WithLabelValues("basic_info").Inc()
	}
	if r := domain.ValidateEntries(tx.Entries); !r.IsValid {
		uc.metrics.ValidationFailures.WithLabelValues("entries").Inc()
	}
	if r := domain.ValidateBalance(tx.Entries); !r.IsValid {
		uc.metrics.ValidationFailures.WithLabelValues("balance").Inc()
	}
}

func cacheKey(id string) string {
	return "transaction:" + id
}
