package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/henry1266/pharmacy-ledger/internal/adapter/http/handler"
	apimiddleware "github.com/henry1266/pharmacy-ledger/internal/adapter/http/middleware"
	"github.com/henry1266/pharmacy-ledger/internal/assembler"
	"github.com/henry1266/pharmacy-ledger/internal/domain"
	"github.com/henry1266/pharmacy-ledger/internal/usecase"
)

func TestNewRouter_HealthEndpointAvailable(t *testing.T) {
	router := NewRouter(newRouterConfig())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected /health to return 200, got %d", rec.Code)
	}
}

func TestNewRouter_RateLimiterBlocksExcessRequests(t *testing.T) {
	rl := apimiddleware.NewRateLimiter(1, 1)
	router := NewRouter(newRouterConfig(func(cfg *RouterConfig) {
		cfg.RateLimiter = rl
	}))

	req1 := httptest.NewRequest(http.MethodGet, "/health", nil)
	req1.RemoteAddr = "1.2.3.4:1234"
	rec1 := httptest.NewRecorder()
	router.ServeHTTP(rec1, req1)
	if rec1.Code != http.StatusOK {
		t.Fatalf("expected first request to succeed, got %d", rec1.Code)
	}

	req2 := httptest.NewRequest(http.MethodGet, "/health", nil)
	req2.RemoteAddr = "1.2.3.4:1234"
	rec2 := httptest.NewRecorder()
	router.ServeHTTP(rec2, req2)
	if rec2.Code != http.StatusTooManyRequests {
		t.Fatalf("expected second request to be throttled, got %d", rec2.Code)
	}
}

func TestNewRouter_IdempotencyMiddlewareInvokesStore(t *testing.T) {
	store := &stubIdempotencyStore{}
	router := NewRouter(newRouterConfig(func(cfg *RouterConfig) {
		cfg.IdempotencyStore = store
	}))

	body := `{"description":"Stock purchase","entries":[{"accountId":"a","debitAmount":10},{"accountId":"b","creditAmount":10}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/transactions/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(apimiddleware.IdempotencyKeyHeader, "key-123")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if !store.checkCalled {
		t.Fatalf("expected idempotency store to be used")
	}
}

func TestNewRouter_RegistersKeyRoutes(t *testing.T) {
	router := NewRouter(newRouterConfig())

	chiRoutes, ok := router.(chi.Router)
	if !ok {
		t.Fatal("router does not implement chi.Routes")
	}

	seen := map[string]bool{}
	if err := chi.Walk(chiRoutes, func(method string, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		seen[method+" "+route] = true
		return nil
	}); err != nil {
		t.Fatalf("walk failed: %v", err)
	}

	expected := []string{
		"GET /health",
		"GET /ready",
		"POST /api/v1/transactions/",
		"GET /api/v1/transactions/",
		"POST /api/v1/transactions/validate",
		"GET /api/v1/transactions/{id}/",
		"PUT /api/v1/transactions/{id}/",
		"DELETE /api/v1/transactions/{id}/",
		"POST /api/v1/transactions/{id}/confirm",
		"POST /api/v1/transactions/{id}/cancel",
		"GET /api/v1/transactions/{id}/permissions",
		"GET /api/v1/transactions/{id}/copy",
		"GET /api/v1/transactions/{id}/funding-chain",
		"GET /api/v1/transactions/{id}/linked",
	}

	for _, route := range expected {
		if !seen[route] {
			t.Fatalf("expected route %s to be registered", route)
		}
	}
}

func newRouterConfig(opts ...func(*RouterConfig)) RouterConfig {
	asm := assembler.New(zerolog.Nop())

	cfg := RouterConfig{
		TransactionHandler: handler.NewTransactionHandler(&stubTransactionService{}, asm),
		LineageHandler:     handler.NewLineageHandler(&stubLineageService{}),
		HealthHandler:      &handler.HealthHandler{},
		IdempotencyTTL:     time.Hour,
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

type stubTransactionService struct{}

func (stubTransactionService) CreateTransaction(ctx context.Context, input usecase.CreateTransactionInput) (*domain.TransactionGroup, error) {
	return &domain.TransactionGroup{ID: "507f1f77bcf86cd799439011"}, nil
}

func (stubTransactionService) UpdateTransaction(ctx context.Context, id string, input usecase.CreateTransactionInput) (*domain.TransactionGroup, error) {
	return &domain.TransactionGroup{ID: id}, nil
}

func (stubTransactionService) ConfirmTransaction(ctx context.Context, id string) (*domain.TransactionGroup, error) {
	return &domain.TransactionGroup{ID: id, Status: domain.StatusConfirmed}, nil
}

func (stubTransactionService) CancelTransaction(ctx context.Context, id string) (*domain.TransactionGroup, error) {
	return &domain.TransactionGroup{ID: id, Status: domain.StatusCancelled}, nil
}

func (stubTransactionService) DeleteTransaction(ctx context.Context, id string) error {
	return nil
}

func (stubTransactionService) GetTransaction(ctx context.Context, id string) (*domain.TransactionGroup, error) {
	return &domain.TransactionGroup{ID: id}, nil
}

func (stubTransactionService) ListTransactions(ctx context.Context, input usecase.ListTransactionsInput) ([]*domain.TransactionGroup, error) {
	return []*domain.TransactionGroup{}, nil
}

func (stubTransactionService) GetPermissions(ctx context.Context, id string) (domain.Permissions, error) {
	return domain.GetPermissions(domain.StatusDraft), nil
}

func (stubTransactionService) GetCopySeed(ctx context.Context, id string) (*domain.TransactionGroup, error) {
	return &domain.TransactionGroup{Status: domain.StatusDraft}, nil
}

type stubLineageService struct{}

func (stubLineageService) GetFundingChain(ctx context.Context, id string) ([]*domain.TransactionGroup, error) {
	return []*domain.TransactionGroup{}, nil
}

func (stubLineageService) ListLinkedTransactions(ctx context.Context, input usecase.ListLinkedTransactionsInput) ([]*domain.TransactionGroup, error) {
	return []*domain.TransactionGroup{}, nil
}

type stubIdempotencyStore struct {
	checkCalled bool
}

func (s *stubIdempotencyStore) CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error) {
	s.checkCalled = true
	return false, nil, nil
}

func (s *stubIdempotencyStore) Update(ctx context.Context, key string, response []byte, ttl time.Duration) error {
	return nil
}
