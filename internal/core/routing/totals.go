package routing

import (
	"payflow/internal/core/domain"

	"github.com/shopspring/decimal"
)

// AmountPlaces is the precision of reported totals.
const AmountPlaces = 6

// TotalAmount sums recipient amounts to six decimal places. Amounts that do
// not parse as decimals are skipped.
func TotalAmount(recipients []domain.Recipient) string {
	total := decimal.Zero
	for i := range recipients {
		amount, err := decimal.NewFromString(recipients[i].Amount)
		if err != nil {
			continue
		}
		total = total.Add(amount)
	}
	return total.StringFixed(AmountPlaces)
}

// SumPayments adds up payment amounts, skipping unparsable values.
func SumPayments(payments []domain.Payment) decimal.Decimal {
	total := decimal.Zero
	for _, p := range payments {
		amount, err := decimal.NewFromString(p.Amount)
		if err != nil {
			continue
		}
		total = total.Add(amount)
	}
	return total
}
