package domain

import (
	"github.com/google/uuid"
)

// RecipientStatus represents the lifecycle state of a payroll recipient.
type RecipientStatus string

const (
	RecipientStatusPending    RecipientStatus = "pending"
	RecipientStatusProcessing RecipientStatus = "processing"
	RecipientStatusCompleted  RecipientStatus = "completed"
	RecipientStatusFailed     RecipientStatus = "failed"
)

// Recipient is one payee of a payroll run.
type Recipient struct {
	ID      uuid.UUID       `json:"id"`
	Name    string          `json:"name"`
	Address string          `json:"address"`
	Amount  string          `json:"amount"` // Decimal string, e.g. "100.5"
	Chain   Chain           `json:"chain"`
	Token   string          `json:"token"`
	Status  RecipientStatus `json:"status"`
	TxHash  string          `json:"tx_hash,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// RecipientInput carries the user-supplied fields of a new recipient.
type RecipientInput struct {
	Name    string
	Address string
	Amount  string
	Chain   Chain
	Token   string
}

// RecipientPatch holds optional field updates. Nil fields are left as is.
type RecipientPatch struct {
	Name    *string
	Address *string
	Amount  *string
	Chain   *Chain
	Token   *string
}

// NewRecipient creates a pending recipient with a fresh id.
func NewRecipient(in RecipientInput) Recipient {
	return Recipient{
		ID:      uuid.New(),
		Name:    in.Name,
		Address: in.Address,
		Amount:  in.Amount,
		Chain:   in.Chain,
		Token:   in.Token,
		Status:  RecipientStatusPending,
	}
}

// Apply copies the non-nil fields of p onto r.
func (r *Recipient) Apply(p RecipientPatch) {
	if p.Name != nil {
		r.Name = *p.Name
	}
	if p.Address != nil {
		r.Address = *p.Address
	}
	if p.Amount != nil {
		r.Amount = *p.Amount
	}
	if p.Chain != nil {
		r.Chain = *p.Chain
	}
	if p.Token != nil {
		r.Token = *p.Token
	}
}

func (r *Recipient) IsPending() bool {
	return r.Status == RecipientStatusPending
}

// IsTerminal returns true if the recipient reached a final state.
func (r *Recipient) IsTerminal() bool {
	return r.Status == RecipientStatusCompleted || r.Status == RecipientStatusFailed
}

// ToPayment derives the immutable payment instruction for r.
func (r *Recipient) ToPayment() Payment {
	return Payment{
		Recipient: r.Address,
		Name:      r.Name,
		Amount:    r.Amount,
		Chain:     r.Chain,
		Token:     r.Token,
	}
}

// MarkProcessing moves r into the processing state.
func (r *Recipient) MarkProcessing() {
	r.Status = RecipientStatusProcessing
	r.TxHash = ""
	r.Error = ""
}

// ApplyResult moves r to completed or failed depending on res.
func (r *Recipient) ApplyResult(res TransactionResult) {
	if res.Success {
		r.Status = RecipientStatusCompleted
		r.TxHash = res.TxHash
		r.Error = ""
		return
	}
	r.Status = RecipientStatusFailed
	r.TxHash = ""
	r.Error = res.Error
}

// Fail marks r failed with reason.
func (r *Recipient) Fail(reason string) {
	r.Status = RecipientStatusFailed
	r.TxHash = ""
	r.Error = reason
}

// ResetToPending clears any execution outcome.
func (r *Recipient) ResetToPending() {
	r.Status = RecipientStatusPending
	r.TxHash = ""
	r.Error = ""
}
