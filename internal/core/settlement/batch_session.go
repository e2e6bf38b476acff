// Package settlement holds the same-chain settlement session: a deposit is
// locked, payments are queued against it, and the queue is settled as one
// netted transaction.
package settlement

import (
	"strings"
	"sync"
	"time"

	"payflow/internal/core/domain"
	"payflow/internal/core/ports"
	"payflow/pkg/apperror"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StatusPlaces is the precision of amounts reported by Status.
const StatusPlaces = 6

// BatchSession accumulates same-chain payments against a deposit.
// The zero value is not usable; construct with NewBatchSession.
type BatchSession struct {
	mu     sync.Mutex
	chain  domain.Chain
	hashes ports.TxHashGenerator
	now    func() time.Time

	id          uuid.UUID
	initialized bool
	deposited   decimal.Decimal
	token       string
	queue       []domain.QueuedPayment
	spent       decimal.Decimal
}

// NewBatchSession creates an uninitialized session settling on chain.
func NewBatchSession(chain domain.Chain, hashes ports.TxHashGenerator) *BatchSession {
	return &BatchSession{
		chain:  chain,
		hashes: hashes,
		now:    time.Now,
	}
}

// Initialize locks deposit for token and starts a fresh cycle. Calling it
// again discards any queued payments.
func (s *BatchSession) Initialize(deposit decimal.Decimal, token string) (uuid.UUID, error) {
	if deposit.IsNegative() {
		return uuid.Nil, apperror.ErrInvalidAmount()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.id = uuid.New()
	s.initialized = true
	s.deposited = deposit
	s.token = token
	s.queue = nil
	s.spent = decimal.Zero
	return s.id, nil
}

// QueuePayment reserves amount for recipient. A payment that would push
// spent past the deposit is rejected and leaves the session untouched.
func (s *BatchSession) QueuePayment(recipient string, amount string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return apperror.ErrNotInitialized()
	}

	value, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil || !value.IsPositive() {
		return apperror.ErrInvalidAmount()
	}

	next := s.spent.Add(value)
	if next.GreaterThan(s.deposited) {
		return apperror.ErrInsufficientBalance(
			s.deposited.StringFixed(StatusPlaces),
			next.StringFixed(StatusPlaces),
		)
	}

	s.queue = append(s.queue, domain.QueuedPayment{
		Recipient: recipient,
		Amount:    value.String(),
		Token:     s.token,
		Timestamp: s.now(),
	})
	s.spent = next
	return nil
}

// SettleAll closes the current cycle as one aggregate transaction. An empty
// queue settles successfully without a transaction hash.
func (s *BatchSession) SettleAll() (*domain.TransactionResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return nil, apperror.ErrNotInitialized()
	}

	if len(s.queue) == 0 {
		return &domain.TransactionResult{Success: true, Chain: s.chain}, nil
	}

	txHash := s.hashes.Generate(s.settlementSeed())

	s.queue = nil
	s.spent = decimal.Zero

	return &domain.TransactionResult{
		Success: true,
		TxHash:  txHash,
		Chain:   s.chain,
	}, nil
}

// settlementSeed serializes the queue for hash derivation. Caller holds mu.
func (s *BatchSession) settlementSeed() []byte {
	var b strings.Builder
	b.WriteString(s.id.String())
	for _, q := range s.queue {
		b.WriteByte('|')
		b.WriteString(q.Recipient)
		b.WriteByte(':')
		b.WriteString(q.Amount)
		b.WriteByte(':')
		b.WriteString(q.Token)
	}
	return []byte(b.String())
}

// Status returns a snapshot of the session balances.
func (s *BatchSession) Status() domain.SettlementStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	return domain.SettlementStatus{
		Active:         s.initialized,
		Deposited:      s.deposited.StringFixed(StatusPlaces),
		Spent:          s.spent.StringFixed(StatusPlaces),
		Remaining:      s.deposited.Sub(s.spent).StringFixed(StatusPlaces),
		QueuedPayments: len(s.queue),
	}
}

// QueuedPayments returns a copy of the queue.
func (s *BatchSession) QueuedPayments() []domain.QueuedPayment {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]domain.QueuedPayment(nil), s.queue...)
}

// ID returns the current session id, or uuid.Nil before Initialize.
func (s *BatchSession) ID() uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.id
}
