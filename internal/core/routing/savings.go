package routing

import (
	"payflow/internal/core/domain"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// EstimateSavings compares one transaction per payment against batching:
// one transaction for the whole same-chain bucket, one per cross-chain
// payment and one for the whole single-ledger bucket.
func EstimateSavings(routes domain.PaymentRoutes) domain.Savings {
	without := routes.Routed()

	with := len(routes.CrossChain)
	if len(routes.SameChain) > 0 {
		with++
	}
	if len(routes.SingleLedger) > 0 {
		with++
	}

	s := domain.Savings{WithoutBatching: without, WithBatching: with}
	if without == 0 {
		return s
	}

	// Round rounds half away from zero, which is half-up for non-negative ratios.
	ratio := decimal.NewFromInt(int64(without - with)).
		Mul(hundred).
		Div(decimal.NewFromInt(int64(without)))
	s.SavingsPercent = int(ratio.Round(0).IntPart())
	return s
}
