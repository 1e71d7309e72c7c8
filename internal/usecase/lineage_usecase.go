package usecase

import (
	"context"

	"github.com/henry1266/pharmacy-ledger/internal/domain"
)

// LineageUseCase answers funding-lineage questions: which transactions a
// given one was funded through, and which later transactions draw on it.
// It only retrieves lineage; consistency rules for funding graphs (cycles,
// sufficiency) belong to a separate subsystem.
type LineageUseCase struct {
	repo TransactionRepository
}

// NewLineageUseCase creates a new LineageUseCase.
func NewLineageUseCase(repo TransactionRepository) *LineageUseCase {
	return &LineageUseCase{repo: repo}
}

// GetFundingChain walks SourceTransactionID references upward from the given
// transaction and returns the chain oldest first, ending with the transaction
// itself. The walk is depth-bounded and stops on a repeated ID so malformed
// lineage data cannot loop it.
func (uc *LineageUseCase) GetFundingChain(ctx context.Context, id string) ([]*domain.TransactionGroup, error) {
	var chain []*domain.TransactionGroup

	seen := make(map[string]bool)
	currentID := id

	for depth := 0; depth < MaxFundingChainDepth && currentID != "" && !seen[currentID]; depth++ {
		seen[currentID] = true

		group, err := uc.repo.GetByID(ctx, currentID)
		if err != nil {
			// A broken link above the starting transaction truncates the
			// chain; the starting transaction itself must exist.
			if currentID == id {
				return nil, err
			}
			break
		}

		chain = append([]*domain.TransactionGroup{group}, chain...)
		currentID = group.SourceTransactionID
	}

	return chain, nil
}

// ListLinkedTransactionsInput represents input for listing linked transactions.
type ListLinkedTransactionsInput struct {
	TransactionID string
	Limit         int
	Offset        int
}

// ListLinkedTransactions lists transactions whose linked set references the
// given transaction, i.e. the ones drawing funding from or extending it.
func (uc *LineageUseCase) ListLinkedTransactions(ctx context.Context, input ListLinkedTransactionsInput) ([]*domain.TransactionGroup, error) {
	limit, offset := clampPagination(input.Limit, input.Offset)

	return uc.repo.ListByLinkedTransaction(ctx, input.TransactionID, limit, offset)
}
