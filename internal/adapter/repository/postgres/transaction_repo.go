package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/henry1266/pharmacy-ledger/internal/domain"
	"github.com/henry1266/pharmacy-ledger/internal/infrastructure/metrics"
	"github.com/henry1266/pharmacy-ledger/internal/usecase"
)

// TransactionRepository implements usecase.TransactionRepository. Entries are
// stored as a jsonb document on the group row: they are only ever read and
// written as a unit, and a group's entries are immutable once confirmed.
type TransactionRepository struct {
	pool    *pgxpool.Pool
	metrics *metrics.Metrics
}

// NewTransactionRepository creates a new TransactionRepository.
func NewTransactionRepository(pool *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{pool: pool}
}

// WithMetrics attaches query instrumentation. Without it the repository
// skips recording.
func (r *TransactionRepository) WithMetrics(m *metrics.Metrics) *TransactionRepository {
	r.metrics = m
	return r
}

func (r *TransactionRepository) observe(op string, start time.Time, err error) {
	if r.metrics == nil {
		return
	}
	r.metrics.DBQueries.WithLabelValues(op).Inc()
	r.metrics.DBDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	// A missing row is an outcome, not a database failure.
	if err != nil && !errors.Is(err, domain.ErrTransactionNotFound) {
		r.metrics.DBErrors.WithLabelValues(op).Inc()
	}
}

// entryRecord is the jsonb shape of one entry.
type entryRecord struct {
	AccountID           string          `json:"account_id"`
	DebitAmount         decimal.Decimal `json:"debit_amount"`
	CreditAmount        decimal.Decimal `json:"credit_amount"`
	Description         string          `json:"description,omitempty"`
	SourceTransactionID string          `json:"source_transaction_id,omitempty"`
	FundingPath         []string        `json:"funding_path,omitempty"`
}

const transactionColumns = `
	id, description, transaction_date, organization_id, receipt_url,
	invoice_no, entries, status, linked_transaction_ids,
	source_transaction_id, funding_type, created_at, updated_at
`

// Create inserts a new transaction group.
func (r *TransactionRepository) Create(ctx context.Context, tx usecase.Transaction, group *domain.TransactionGroup) (err error) {
	defer func(start time.Time) { r.observe("create", start, err) }(time.Now())

	entries, err := marshalEntries(group.Entries)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err = pgxTx(tx).Exec(ctx, query,
		group.ID,
		group.Description,
		group.TransactionDate,
		group.OrganizationID,
		group.ReceiptURL,
		group.InvoiceNo,
		entries,
		string(group.Status),
		group.LinkedTransactionIDs,
		nullableString(group.SourceTransactionID),
		string(group.FundingType),
		group.CreatedAt,
		group.UpdatedAt,
	)

	return err
}

// GetByID retrieves a transaction group by ID.
func (r *TransactionRepository) GetByID(ctx context.Context, id string) (_ *domain.TransactionGroup, err error) {
	defer func(start time.Time) { r.observe("get", start, err) }(time.Now())

	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1`

	group, err := scanTransaction(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTransactionNotFound
		}
		return nil, err
	}

	return group, nil
}

// Update replaces a transaction group's content.
func (r *TransactionRepository) Update(ctx context.Context, tx usecase.Transaction, group *domain.TransactionGroup) (err error) {
	defer func(start time.Time) { r.observe("update", start, err) }(time.Now())

	entries, err := marshalEntries(group.Entries)
	if err != nil {
		return err
	}

	query := `
		UPDATE transactions
		SET description = $2, transaction_date = $3, organization_id = $4,
		    receipt_url = $5, invoice_no = $6, entries = $7,
		    linked_transaction_ids = $8, source_transaction_id = $9,
		    funding_type = $10, updated_at = $11
		WHERE id = $1
	`

	tag, err := pgxTx(tx).Exec(ctx, query,
		group.ID,
		group.Description,
		group.TransactionDate,
		group.OrganizationID,
		group.ReceiptURL,
		group.InvoiceNo,
		entries,
		group.LinkedTransactionIDs,
		nullableString(group.SourceTransactionID),
		string(group.FundingType),
		group.UpdatedAt,
	)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrTransactionNotFound
	}

	return nil
}

// UpdateStatus sets a transaction group's lifecycle status.
func (r *TransactionRepository) UpdateStatus(ctx context.Context, tx usecase.Transaction, id string, status domain.Status, updatedAt time.Time) (err error) {
	defer func(start time.Time) { r.observe("update_status", start, err) }(time.Now())

	query := `UPDATE transactions SET status = $2, updated_at = $3 WHERE id = $1`

	tag, err := pgxTx(tx).Exec(ctx, query, id, string(status), updatedAt)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrTransactionNotFound
	}

	return nil
}

// Delete removes a transaction group.
func (r *TransactionRepository) Delete(ctx context.Context, tx usecase.Transaction, id string) (err error) {
	defer func(start time.Time) { r.observe("delete", start, err) }(time.Now())

	tag, err := pgxTx(tx).Exec(ctx, `DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrTransactionNotFound
	}

	return nil
}

// List lists transaction groups, newest first.
func (r *TransactionRepository) List(ctx context.Context, limit, offset int) (_ []*domain.TransactionGroup, err error) {
	defer func(start time.Time) { r.observe("list", start, err) }(time.Now())

	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		ORDER BY transaction_date DESC, id DESC
		LIMIT $1 OFFSET $2
	`

	return r.queryMany(ctx, query, limit, offset)
}

// ListByStatus lists transaction groups with the given status, newest first.
func (r *TransactionRepository) ListByStatus(ctx context.Context, status domain.Status, limit, offset int) (_ []*domain.TransactionGroup, err error) {
	defer func(start time.Time) { r.observe("list_by_status", start, err) }(time.Now())

	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE status = $1
		ORDER BY transaction_date DESC, id DESC
		LIMIT $2 OFFSET $3
	`

	return r.queryMany(ctx, query, string(status), limit, offset)
}

// ListByLinkedTransaction lists transaction groups whose linked set contains
// the given transaction ID.
func (r *TransactionRepository) ListByLinkedTransaction(ctx context.Context, linkedID string, limit, offset int) (_ []*domain.TransactionGroup, err error) {
	defer func(start time.Time) { r.observe("list_by_linked", start, err) }(time.Now())

	query := `
		SELECT ` + transactionColumns + `
		FROM transactions
		WHERE $1 = ANY(linked_transaction_ids)
		ORDER BY transaction_date DESC, id DESC
		LIMIT $2 OFFSET $3
	`

	return r.queryMany(ctx, query, linkedID, limit, offset)
}

func (r *TransactionRepository) queryMany(ctx context.Context, query string, args ...any) ([]*domain.TransactionGroup, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var groups []*domain.TransactionGroup
	for rows.Next() {
		group, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		groups = append(groups, group)
	}

	return groups, rows.Err()
}

func scanTransaction(row pgx.Row) (*domain.TransactionGroup, error) {
	var (
		group       domain.TransactionGroup
		entriesJSON []byte
		status      string
		sourceID    *string
		fundingType string
	)

	err := row.Scan(
		&group.ID,
		&group.Description,
		&group.TransactionDate,
		&group.OrganizationID,
		&group.ReceiptURL,
		&group.InvoiceNo,
		&entriesJSON,
		&status,
		&group.LinkedTransactionIDs,
		&sourceID,
		&fundingType,
		&group.CreatedAt,
		&group.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	group.Status = domain.Status(status)
	group.FundingType = domain.FundingType(fundingType)
	if sourceID != nil {
		group.SourceTransactionID = *sourceID
	}

	var records []entryRecord
	if err := json.Unmarshal(entriesJSON, &records); err != nil {
		return nil, err
	}

	group.Entries = make([]domain.Entry, len(records))
	for i, rec := range records {
		group.Entries[i] = domain.Entry{
			AccountID:           rec.AccountID,
			DebitAmount:         rec.DebitAmount,
			CreditAmount:        rec.CreditAmount,
			Description:         rec.Description,
			SourceTransactionID: rec.SourceTransactionID,
			FundingPath:         rec.FundingPath,
		}
	}

	return &group, nil
}

func marshalEntries(entries []domain.Entry) ([]byte, error) {
	records := make([]entryRecord, len(entries))
	for i, e := range entries {
		records[i] = entryRecord{
			AccountID:           e.AccountID,
			DebitAmount:         e.DebitAmount,
			CreditAmount:        e.CreditAmount,
			Description:         e.Description,
			SourceTransactionID: e.SourceTransactionID,
			FundingPath:         e.FundingPath,
		}
	}

	return json.Marshal(records)
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// pgxTx unwraps the usecase transaction to its pgx handle.
func pgxTx(tx usecase.Transaction) pgx.Tx {
	return tx.(*Tx).PgxTx()
}
