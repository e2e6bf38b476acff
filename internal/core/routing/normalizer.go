// Package routing turns payroll recipients into payment instructions and
// decides which settlement path each instruction takes.
package routing

import (
	"strings"

	"payflow/internal/core/domain"
	"payflow/pkg/apperror"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/shopspring/decimal"
)

const (
	evmAddressLength = 2 + 2*common.AddressLength // 0x + 40 hex
	suiAddressLength = 2 + 64                     // 0x + 64 hex
)

// ToPayments maps pending recipients to payments, keeping input order.
func ToPayments(recipients []domain.Recipient) []domain.Payment {
	payments := make([]domain.Payment, 0, len(recipients))
	for i := range recipients {
		if recipients[i].IsPending() {
			payments = append(payments, recipients[i].ToPayment())
		}
	}
	return payments
}

// ValidatePayment checks the address and amount of p. It returns nil or a
// VAL_* *apperror.AppError. The result is advisory; execution does not
// depend on it.
func ValidatePayment(p domain.Payment) error {
	address := strings.TrimSpace(p.Recipient)
	if address == "" {
		return apperror.ErrAddressRequired()
	}

	if _, err := ParseAmount(p.Amount); err != nil {
		return err
	}

	if p.Chain.IsSingleLedger() {
		if !isSingleLedgerAddress(address) {
			return apperror.ErrInvalidAddress("Sui")
		}
		return nil
	}

	if !isEVMAddress(address) {
		return apperror.ErrInvalidAddress("EVM")
	}
	return nil
}

// ParseAmount parses a strictly positive decimal amount.
func ParseAmount(s string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil || !amount.IsPositive() {
		return decimal.Zero, apperror.ErrInvalidAmount()
	}
	return amount, nil
}

func isEVMAddress(s string) bool {
	return len(s) == evmAddressLength && has0xPrefix(s) && common.IsHexAddress(s)
}

func isSingleLedgerAddress(s string) bool {
	if len(s) != suiAddressLength || !has0xPrefix(s) {
		return false
	}
	_, err := hexutil.Decode(s)
	return err == nil
}

func has0xPrefix(s string) bool {
	return len(s) >= 2 && s[0] == '0' && s[1] == 'x'
}
