package settlement

import (
	"context"
	"fmt"
	"iter"
	"math/rand/v2"
	"sync"
	"sync/atomic"
	"time"

	"payflow/internal/core/domain"
	"payflow/internal/core/ports"
	"payflow/internal/core/routing"
	"payflow/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// QuotePlaces is the precision of quoted amounts and gas.
const QuotePlaces = 6

// BridgeConfig tunes the sandbox bridge.
type BridgeConfig struct {
	Slippage decimal.Decimal
	Fee      decimal.Decimal
	Latency  time.Duration
	Testnet  bool   // selects testnet chain names in route descriptions
	Seed     uint64 // seeds gas estimates
}

// Bridge implements ports.CrossChainSettler and ports.BridgeQuoter.
type Bridge struct {
	cfg    BridgeConfig
	hashes ports.TxHashGenerator
	log    zerolog.Logger

	mu  sync.Mutex
	rng *rand.Rand
}

// NewBridge creates a sandbox bridge.
func NewBridge(cfg BridgeConfig, hashes ports.TxHashGenerator, log zerolog.Logger) *Bridge {
	return &Bridge{
		cfg:    cfg,
		hashes: hashes,
		log:    log,
		rng:    rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15)),
	}
}

// Quote prices a transfer. Both chains must be bridgeable.
func (b *Bridge) Quote(ctx context.Context, req ports.QuoteRequest) (*domain.Quote, error) {
	if err := checkPair(req.FromChain, req.ToChain); err != nil {
		return nil, err
	}

	amount, err := routing.ParseAmount(req.Amount)
	if err != nil {
		return nil, err
	}

	if err := wait(ctx, b.cfg.Latency); err != nil {
		return nil, fmt.Errorf("quote: %w", err)
	}

	received := amount.Mul(decimal.NewFromInt(1).Sub(b.cfg.Slippage).Sub(b.cfg.Fee))

	fromInfo, _ := req.FromChain.Info(b.cfg.Testnet)
	toInfo, _ := req.ToChain.Info(b.cfg.Testnet)

	return &domain.Quote{
		FromChain:    req.FromChain,
		ToChain:      req.ToChain,
		FromToken:    req.FromToken,
		ToToken:      req.ToToken,
		FromAmount:   req.Amount,
		ToAmount:     received.StringFixed(QuotePlaces),
		EstimatedGas: b.estimateGas().StringFixed(QuotePlaces),
		Route:        fmt.Sprintf("%s → %s via Stargate", fromInfo.Name, toInfo.Name),
	}, nil
}

// SettleBatch bridges each payment from sourceChain, one at a time, as the
// returned sequence is consumed. Failures are reported per item.
func (b *Bridge) SettleBatch(ctx context.Context, payments []domain.Payment, sourceChain domain.Chain) iter.Seq[ports.CrossChainProgress] {
	var consumed atomic.Bool
	return func(yield func(ports.CrossChainProgress) bool) {
		if consumed.Swap(true) {
			return
		}
		total := len(payments)
		for i, p := range payments {
			progress := ports.CrossChainProgress{
				Index:  i,
				Total:  total,
				Result: b.transfer(ctx, sourceChain, p),
			}
			if !yield(progress) {
				return
			}
		}
	}
}

func (b *Bridge) transfer(ctx context.Context, from domain.Chain, p domain.Payment) domain.TransactionResult {
	fail := func(err error) domain.TransactionResult {
		b.log.Warn().Err(err).Str("recipient", p.Recipient).Str("to_chain", p.Chain.String()).Msg("Bridge transfer failed")
		return domain.TransactionResult{Success: false, Error: err.Error(), Chain: p.Chain}
	}

	if err := checkPair(from, p.Chain); err != nil {
		return fail(err)
	}
	if _, err := routing.ParseAmount(p.Amount); err != nil {
		return fail(err)
	}
	if err := wait(ctx, b.cfg.Latency); err != nil {
		return fail(err)
	}

	txHash := b.hashes.Generate([]byte(from.String() + ">" + p.Chain.String() + ":" + p.Recipient + ":" + p.Amount + ":" + p.Token))

	b.log.Info().
		Str("from_chain", from.String()).
		Str("to_chain", p.Chain.String()).
		Str("recipient", p.Recipient).
		Str("amount", p.Amount).
		Str("tx_hash", txHash).
		Msg("Bridge transfer complete")

	return domain.TransactionResult{Success: true, TxHash: txHash, Chain: p.Chain}
}

// estimateGas returns a value in [0.002, 0.005).
func (b *Bridge) estimateGas() decimal.Decimal {
	b.mu.Lock()
	micros := 2000 + b.rng.IntN(3000)
	b.mu.Unlock()
	return decimal.New(int64(micros), -QuotePlaces)
}

func checkPair(from, to domain.Chain) error {
	if !from.IsEVM() || !to.IsEVM() {
		return apperror.ErrUnsupportedChainPair(from.String(), to.String())
	}
	return nil
}
