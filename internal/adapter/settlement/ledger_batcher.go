package settlement

import (
	"context"
	"fmt"
	"math/big"
	"strings"
	"time"

	"payflow/internal/core/domain"
	"payflow/internal/core/ports"
	"payflow/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const (
	// LedgerDecimals is the base-unit exponent of the single-ledger chain (MIST per SUI).
	LedgerDecimals = 9

	previewAmountPlaces = 4
	previewGasPlaces    = 6
	previewAddressChars = 10
)

var (
	gasPerTransfer = decimal.RequireFromString("0.001")
	gasBase        = decimal.RequireFromString("0.002")
)

// LedgerBatcher implements ports.SingleLedgerSettler and ports.BatchPreviewer
// by combining all transfers into one programmable transaction.
type LedgerBatcher struct {
	hashes  ports.TxHashGenerator
	latency time.Duration
	log     zerolog.Logger
}

// NewLedgerBatcher creates a sandbox single-ledger settler.
func NewLedgerBatcher(hashes ports.TxHashGenerator, latency time.Duration, log zerolog.Logger) *LedgerBatcher {
	return &LedgerBatcher{
		hashes:  hashes,
		latency: latency,
		log:     log,
	}
}

// SettleBatch submits payments as one atomic transaction. An empty batch
// succeeds without a transaction hash.
func (l *LedgerBatcher) SettleBatch(ctx context.Context, payments []domain.Payment) (*domain.TransactionResult, error) {
	if len(payments) == 0 {
		return &domain.TransactionResult{Success: true, Chain: domain.SingleLedgerChain}, nil
	}

	total := new(big.Int)
	for _, p := range payments {
		units, err := ToBaseUnits(p.Amount)
		if err != nil {
			return nil, fmt.Errorf("build batch for %s: %w", p.Recipient, err)
		}
		total.Add(total, units)
	}

	if err := wait(ctx, l.latency); err != nil {
		return nil, fmt.Errorf("submit batch: %w", err)
	}

	txHash := l.hashes.Generate([]byte(fmt.Sprintf("%s:%d:%s", domain.SingleLedgerChain, len(payments), total)))

	l.log.Info().
		Int("count", len(payments)).
		Str("total_base_units", total.String()).
		Str("tx_hash", txHash).
		Msg("Single-ledger batch executed")

	return &domain.TransactionResult{
		Success: true,
		TxHash:  txHash,
		Chain:   domain.SingleLedgerChain,
	}, nil
}

// Preview lists the batch operations with total amount and estimated gas.
func (l *LedgerBatcher) Preview(payments []domain.Payment) domain.BatchPreview {
	ops := make([]string, 0, len(payments))
	total := decimal.Zero
	for _, p := range payments {
		token := p.Token
		if token == "" {
			token = domain.SingleLedgerChain.DefaultToken()
		}
		ops = append(ops, fmt.Sprintf("splitCoins(gas, [%s %s]) → transferObjects → %s...", p.Amount, token, shortAddress(p.Recipient)))

		if amount, err := decimal.NewFromString(p.Amount); err == nil {
			total = total.Add(amount)
		}
	}

	gas := gasPerTransfer.Mul(decimal.NewFromInt(int64(len(payments)))).Add(gasBase)

	return domain.BatchPreview{
		Operations:   ops,
		TotalAmount:  total.StringFixed(previewAmountPlaces),
		EstimatedGas: gas.StringFixed(previewGasPlaces),
	}
}

// ToBaseUnits converts a decimal amount to integer base units, truncating
// digits beyond LedgerDecimals.
func ToBaseUnits(amount string) (*big.Int, error) {
	value, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil || value.IsNegative() {
		return nil, apperror.ErrInvalidAmount()
	}
	return value.Shift(LedgerDecimals).Truncate(0).BigInt(), nil
}

func shortAddress(addr string) string {
	if len(addr) <= previewAddressChars {
		return addr
	}
	return addr[:previewAddressChars]
}
