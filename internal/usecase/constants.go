package usecase

import "time"

const (
	// DefaultPageSize is applied when a caller omits a list limit.
	DefaultPageSize = 20

	// MaxPageSize caps list queries.
	MaxPageSize = 100

	// TransactionCacheTTL is how long a read transaction stays cached.
	TransactionCacheTTL = 5 * time.Minute

	// MaxFundingChainDepth bounds the walk up a funding lineage. Chains
	// deeper than this are truncated rather than followed forever.
	MaxFundingChainDepth = 32
)

func clampPagination(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = DefaultPageSize
	}

	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	if offset < 0 {
		offset = 0
	}

	return limit, offset
}
