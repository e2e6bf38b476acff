package domain

import (
	"time"

	"github.com/google/uuid"
)

// Phase is the orchestrator's execution state.
type Phase string

const (
	PhaseIdle         Phase = "idle"
	PhaseSameChain    Phase = "same_chain"
	PhaseCrossChain   Phase = "cross_chain"
	PhaseSingleLedger Phase = "single_ledger"
	PhaseDone         Phase = "done"
)

// SessionStatus represents the lifecycle state of a payroll session.
type SessionStatus string

const (
	SessionStatusDraft     SessionStatus = "draft"
	SessionStatusExecuting SessionStatus = "executing"
	SessionStatusCompleted SessionStatus = "completed"
)

// PayrollSession records one execute invocation. Recipients is a snapshot
// taken at creation; live outcomes are on the orchestrator's recipients.
type PayrollSession struct {
	ID                 uuid.UUID     `json:"id"`
	TotalAmount        string        `json:"total_amount"`
	Recipients         []Recipient   `json:"recipients"`
	Status             SessionStatus `json:"status"`
	SameChainTxHash    string        `json:"same_chain_tx_hash,omitempty"`
	CrossChainTxHashes []string      `json:"cross_chain_tx_hashes,omitempty"`
	SingleLedgerTxHash string        `json:"single_ledger_tx_hash,omitempty"`
	CreatedAt          time.Time     `json:"created_at"`
	CompletedAt        *time.Time    `json:"completed_at,omitempty"`
}

// Clone returns a deep copy safe to hand outside the orchestrator.
func (s *PayrollSession) Clone() *PayrollSession {
	if s == nil {
		return nil
	}
	cp := *s
	cp.Recipients = append([]Recipient(nil), s.Recipients...)
	cp.CrossChainTxHashes = append([]string(nil), s.CrossChainTxHashes...)
	if s.CompletedAt != nil {
		t := *s.CompletedAt
		cp.CompletedAt = &t
	}
	return &cp
}

// TxCount is the number of settlement transactions the session produced.
func (s *PayrollSession) TxCount() int {
	n := len(s.CrossChainTxHashes)
	if s.SameChainTxHash != "" {
		n++
	}
	if s.SingleLedgerTxHash != "" {
		n++
	}
	return n
}

// SettlementStatus is a read-only snapshot of a same-chain settlement session.
type SettlementStatus struct {
	Active         bool   `json:"active"`
	Deposited      string `json:"deposited"`
	Spent          string `json:"spent"`
	Remaining      string `json:"remaining"`
	QueuedPayments int    `json:"queued_payments"`
}

// QueuedPayment is a payment accepted into a settlement session.
type QueuedPayment struct {
	Recipient string    `json:"recipient"`
	Amount    string    `json:"amount"`
	Token     string    `json:"token"`
	Timestamp time.Time `json:"timestamp"`
}
