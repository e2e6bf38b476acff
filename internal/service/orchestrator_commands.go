package service

import (
	"context"
	"errors"
	"fmt"

	"payflow/internal/core/domain"
	"payflow/internal/core/ports"
	"payflow/internal/core/routing"
	"payflow/pkg/apperror"

	"github.com/google/uuid"
)

// quoteSourceToken is the token quoted out of the payer chain.
const quoteSourceToken = "USDC"

// --- Commands ---

// SetPayerChain changes the chain payroll is paid from.
func (o *Orchestrator) SetPayerChain(chain domain.Chain) error {
	if !chain.IsKnown() {
		return apperror.ErrInvalidChain(chain.String())
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if o.executing {
		return apperror.ErrExecutionInProgress()
	}
	o.payerChain = chain
	o.log.Info().Str("payer_chain", chain.String()).Msg("Payer chain changed")
	return nil
}

// AddRecipients appends new pending recipients and returns them.
func (o *Orchestrator) AddRecipients(inputs []domain.RecipientInput) ([]domain.Recipient, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.executing {
		return nil, apperror.ErrExecutionInProgress()
	}

	added := make([]domain.Recipient, 0, len(inputs))
	for _, in := range inputs {
		r := domain.NewRecipient(in)
		o.recipients = append(o.recipients, r)
		added = append(added, r)
	}

	o.log.Info().Int("count", len(added)).Int("total", len(o.recipients)).Msg("Recipients added")
	return added, nil
}

// UpdateRecipient applies patch to the recipient with id.
func (o *Orchestrator) UpdateRecipient(id uuid.UUID, patch domain.RecipientPatch) (domain.Recipient, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.executing {
		return domain.Recipient{}, apperror.ErrExecutionInProgress()
	}
	r := o.find(id)
	if r == nil {
		return domain.Recipient{}, apperror.ErrRecipientNotFound()
	}
	r.Apply(patch)
	return *r, nil
}

// RemoveRecipient deletes the recipient with id.
func (o *Orchestrator) RemoveRecipient(id uuid.UUID) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.executing {
		return apperror.ErrExecutionInProgress()
	}
	for i := range o.recipients {
		if o.recipients[i].ID == id {
			o.recipients = append(o.recipients[:i], o.recipients[i+1:]...)
			return nil
		}
	}
	return apperror.ErrRecipientNotFound()
}

// ClearRecipients removes every recipient.
func (o *Orchestrator) ClearRecipients() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.executing {
		return apperror.ErrExecutionInProgress()
	}
	o.recipients = nil
	return nil
}

// Reset returns every non-pending recipient to pending and the orchestrator
// to idle. The execution log is kept. It returns the number of recipients reset.
func (o *Orchestrator) Reset() (int, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.executing {
		return 0, apperror.ErrExecutionInProgress()
	}

	reset := 0
	for i := range o.recipients {
		if !o.recipients[i].IsPending() {
			o.recipients[i].ResetToPending()
			reset++
		}
	}
	o.phase = domain.PhaseIdle

	o.log.Info().Int("count", reset).Msg("Recipients reset to pending")
	return reset, nil
}

// ResetAll drops recipients, the session and the execution log.
func (o *Orchestrator) ResetAll(ctx context.Context) error {
	o.mu.Lock()
	if o.executing {
		o.mu.Unlock()
		return apperror.ErrExecutionInProgress()
	}
	o.recipients = nil
	o.session = nil
	o.phase = domain.PhaseIdle
	o.mu.Unlock()

	return o.ClearLogs(ctx)
}

// ClearLogs empties the execution log.
func (o *Orchestrator) ClearLogs(ctx context.Context) error {
	if err := o.logs.Clear(ctx); err != nil {
		return apperror.InternalError(fmt.Errorf("clear execution log: %w", err))
	}
	return nil
}

// --- Queries ---

// Recipients returns a copy of the recipient list.
func (o *Orchestrator) Recipients() []domain.Recipient {
	o.mu.Lock()
	defer o.mu.Unlock()
	return cloneRecipients(o.recipients)
}

func (o *Orchestrator) PayerChain() domain.Chain {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.payerChain
}

func (o *Orchestrator) Phase() domain.Phase {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.phase
}

func (o *Orchestrator) IsExecuting() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.executing
}

// Session returns a copy of the most recent payroll session, or nil.
func (o *Orchestrator) Session() *domain.PayrollSession {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.session.Clone()
}

// Status returns phase, executing flag, payer chain and session together.
func (o *Orchestrator) Status() ports.PayrollStatus {
	o.mu.Lock()
	defer o.mu.Unlock()
	return ports.PayrollStatus{
		Phase:      o.phase,
		Executing:  o.executing,
		PayerChain: o.payerChain,
		Session:    o.session.Clone(),
	}
}

// Routes classifies the pending recipients against the payer chain.
func (o *Orchestrator) Routes() domain.PaymentRoutes {
	o.mu.Lock()
	payments := routing.ToPayments(o.recipients)
	payer := o.payerChain
	o.mu.Unlock()

	return routing.Classify(payments, payer)
}

// Savings estimates the batching savings of the current routes.
func (o *Orchestrator) Savings() domain.Savings {
	return routing.EstimateSavings(o.Routes())
}

// RoutesView returns routes and savings computed from one snapshot.
func (o *Orchestrator) RoutesView() ports.RoutesView {
	o.mu.Lock()
	payments := routing.ToPayments(o.recipients)
	payer := o.payerChain
	o.mu.Unlock()

	routes := routing.Classify(payments, payer)
	return ports.RoutesView{
		PayerChain: payer,
		Routes:     routes,
		Savings:    routing.EstimateSavings(routes),
	}
}

// Logs returns the execution log.
func (o *Orchestrator) Logs(ctx context.Context) ([]string, error) {
	lines, err := o.logs.Lines(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("read execution log: %w", err))
	}
	return lines, nil
}

// ValidateRecipients runs advisory payment validation over every recipient.
func (o *Orchestrator) ValidateRecipients() []domain.ValidationIssue {
	recipients := o.Recipients()

	issues := make([]domain.ValidationIssue, 0)
	for i := range recipients {
		err := routing.ValidatePayment(recipients[i].ToPayment())
		if err == nil {
			continue
		}
		issue := domain.ValidationIssue{
			RecipientID: recipients[i].ID.String(),
			Address:     recipients[i].Address,
			Message:     err.Error(),
		}
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			issue.Code = appErr.Code
			issue.Message = appErr.Message
		}
		issues = append(issues, issue)
	}
	return issues
}

// TotalAmount sums every recipient amount to six decimal places.
func (o *Orchestrator) TotalAmount() string {
	return routing.TotalAmount(o.Recipients())
}

// CrossChainQuotes prices every payment of the current cross-chain bucket.
func (o *Orchestrator) CrossChainQuotes(ctx context.Context) ([]domain.Quote, error) {
	if o.quoter == nil {
		return []domain.Quote{}, nil
	}

	payer := o.PayerChain()
	routes := o.Routes()

	quotes := make([]domain.Quote, 0, len(routes.CrossChain))
	for _, p := range routes.CrossChain {
		q, err := o.quoter.Quote(ctx, ports.QuoteRequest{
			FromChain: payer,
			ToChain:   p.Chain,
			FromToken: quoteSourceToken,
			ToToken:   p.Token,
			Amount:    p.Amount,
		})
		if err != nil {
			return nil, fmt.Errorf("quote %s → %s for %s: %w", payer, p.Chain, p.Recipient, err)
		}
		quotes = append(quotes, *q)
	}
	return quotes, nil
}

// SingleLedgerPreview describes the batch the single-ledger phase would submit.
func (o *Orchestrator) SingleLedgerPreview() domain.BatchPreview {
	routes := o.Routes()
	if o.previewer == nil {
		return domain.BatchPreview{Operations: []string{}}
	}
	return o.previewer.Preview(routes.SingleLedger)
}
