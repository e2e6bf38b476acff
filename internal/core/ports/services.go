package ports

//go:generate mockgen -source=services.go -destination=mocks/mock_services.go -package=mocks

import (
	"context"
	"iter"
	"time"

	"payflow/internal/core/domain"
)

// --- Settlement collaborators ---

// SameChainSettler settles a bucket of payments on the payer chain as one
// netted transaction. All payments share token.
type SameChainSettler interface {
	SettleBatch(ctx context.Context, payments []domain.Payment, token string) (*domain.TransactionResult, error)
}

// CrossChainProgress reports the outcome of one bridged payment.
type CrossChainProgress struct {
	Index  int
	Total  int
	Result domain.TransactionResult
}

// CrossChainSettler bridges each payment from sourceChain individually. The
// returned sequence yields exactly one item per payment, in input order, and
// performs the settlement lazily as it is iterated. It is not restartable.
type CrossChainSettler interface {
	SettleBatch(ctx context.Context, payments []domain.Payment, sourceChain domain.Chain) iter.Seq[CrossChainProgress]
}

// SingleLedgerSettler submits all payments as one atomic multi-transfer transaction.
type SingleLedgerSettler interface {
	SettleBatch(ctx context.Context, payments []domain.Payment) (*domain.TransactionResult, error)
}

// BridgeQuoter prices a cross-chain transfer without executing it.
type BridgeQuoter interface {
	Quote(ctx context.Context, req QuoteRequest) (*domain.Quote, error)
}

// QuoteRequest holds the input of a bridge quote.
type QuoteRequest struct {
	FromChain domain.Chain
	ToChain   domain.Chain
	FromToken string
	ToToken   string
	Amount    string
}

// BatchPreviewer describes a single-ledger batch before submission.
type BatchPreviewer interface {
	Preview(payments []domain.Payment) domain.BatchPreview
}

// TxHashGenerator derives transaction identifiers for sandbox settlement.
type TxHashGenerator interface {
	Generate(seed []byte) string
}

// --- Execution log, locking, rate limiting ---

// LogSink is the user-facing, append-only execution log. Lines are stored
// verbatim in append order.
type LogSink interface {
	Append(ctx context.Context, line string) error
	Lines(ctx context.Context) ([]string, error)
	Clear(ctx context.Context) error
}

// RunLock guards payroll execution across processes.
type RunLock interface {
	// Acquire returns true if the lock was taken, false if someone else holds it.
	Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, key string) error
}

// RateLimitResult holds the outcome of a rate limit check.
type RateLimitResult struct {
	Allowed   bool
	Limit     int64
	Remaining int64
	ResetAt   int64 // Unix timestamp
}

// RateLimitStore counts requests per key in fixed windows.
type RateLimitStore interface {
	Allow(ctx context.Context, key string, limit int64, window time.Duration) (*RateLimitResult, error)
}

// MetricsRecorder records execution telemetry.
type MetricsRecorder interface {
	ObservePhase(phase domain.Phase, d time.Duration)
	RecordOutcome(route string, status domain.RecipientStatus, count int)
	RecordRun(outcome string)
	SetSavingsPercent(percent int)
}

// --- Auth ---

// TokenService issues and validates operator JWTs.
type TokenService interface {
	Generate(subject string) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	Subject string
}

// SignatureService signs outbound webhook payloads.
type SignatureService interface {
	Sign(secretKey string, payload string) string
	Verify(secretKey string, payload string, signature string) bool
	BuildCanonicalString(event string, timestamp int64, body string) string
}
