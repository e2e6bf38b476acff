package routing

import (
	"payflow/internal/core/domain"
)

// Classify partitions payments by settlement path, preserving input order
// inside each bucket. For each payment, the first matching rule wins:
//
//  1. single-ledger chain -> SingleLedger
//  2. chain == payerChain -> SameChain
//  3. any other EVM chain -> CrossChain
//  4. otherwise           -> Unsupported
func Classify(payments []domain.Payment, payerChain domain.Chain) domain.PaymentRoutes {
	routes := domain.PaymentRoutes{
		SameChain:    []domain.Payment{},
		CrossChain:   []domain.Payment{},
		SingleLedger: []domain.Payment{},
		Unsupported:  []domain.Payment{},
	}

	for _, p := range payments {
		switch {
		case p.Chain.IsSingleLedger():
			routes.SingleLedger = append(routes.SingleLedger, p)
		case p.Chain == payerChain:
			routes.SameChain = append(routes.SameChain, p)
		case p.Chain.IsEVM():
			routes.CrossChain = append(routes.CrossChain, p)
		default:
			routes.Unsupported = append(routes.Unsupported, p)
		}
	}

	return routes
}
