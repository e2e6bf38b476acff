package settlement

import (
	"context"
	"fmt"
	"time"

	"payflow/internal/core/domain"
	"payflow/internal/core/ports"
	"payflow/internal/core/routing"
	"payflow/internal/core/settlement"

	"github.com/rs/zerolog"
)

// SessionSettler implements ports.SameChainSettler. Each call opens a batch
// session funded with exactly the bucket total, queues every payment and
// settles the queue as one transaction.
type SessionSettler struct {
	hashes  ports.TxHashGenerator
	latency time.Duration
	log     zerolog.Logger
}

// NewSessionSettler creates a sandbox same-chain settler.
func NewSessionSettler(hashes ports.TxHashGenerator, latency time.Duration, log zerolog.Logger) *SessionSettler {
	return &SessionSettler{
		hashes:  hashes,
		latency: latency,
		log:     log,
	}
}

// SettleBatch settles payments in token on their shared chain.
func (s *SessionSettler) SettleBatch(ctx context.Context, payments []domain.Payment, token string) (*domain.TransactionResult, error) {
	if len(payments) == 0 {
		return &domain.TransactionResult{Success: true}, nil
	}

	chain := payments[0].Chain
	session := settlement.NewBatchSession(chain, s.hashes)

	deposit := routing.SumPayments(payments)
	sessionID, err := session.Initialize(deposit, token)
	if err != nil {
		return nil, fmt.Errorf("initialize session: %w", err)
	}

	s.log.Debug().
		Str("session_id", sessionID.String()).
		Str("chain", chain.String()).
		Str("deposit", deposit.String()).
		Str("token", token).
		Msg("Settlement session opened")

	for _, p := range payments {
		if err := session.QueuePayment(p.Recipient, p.Amount); err != nil {
			return nil, fmt.Errorf("queue payment to %s: %w", p.Recipient, err)
		}
	}

	if err := wait(ctx, s.latency); err != nil {
		return nil, fmt.Errorf("settle session: %w", err)
	}

	result, err := session.SettleAll()
	if err != nil {
		return nil, fmt.Errorf("settle session: %w", err)
	}

	s.log.Info().
		Str("session_id", sessionID.String()).
		Str("tx_hash", result.TxHash).
		Int("count", len(payments)).
		Msg("Settlement session settled")

	return result, nil
}
