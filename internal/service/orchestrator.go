package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"payflow/internal/core/domain"
	"payflow/internal/core/ports"
	"payflow/internal/core/routing"
	"payflow/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	runLockKey        = "payroll:execute"
	defaultRunLockTTL = 15 * time.Minute

	// routeUnsupported labels outcomes of payments that matched no settlement path.
	routeUnsupported = "unsupported"

	errNoResult = "settlement returned no result"
)

// Run outcomes reported to the metrics recorder.
const (
	RunCompleted = "completed"
	RunRejected  = "rejected"
)

// OrchestratorDeps holds the collaborators of an Orchestrator. Quoter,
// Previewer, RunLock, Metrics and Notifier are optional.
type OrchestratorDeps struct {
	SameChain    ports.SameChainSettler
	CrossChain   ports.CrossChainSettler
	SingleLedger ports.SingleLedgerSettler
	Quoter       ports.BridgeQuoter
	Previewer    ports.BatchPreviewer
	Logs         ports.LogSink
	RunLock      ports.RunLock
	RunLockTTL   time.Duration
	Metrics      ports.MetricsRecorder
	Notifier     ports.RunNotifier
	PayerChain   domain.Chain
	Now          func() time.Time
	Log          zerolog.Logger
}

// Orchestrator owns the recipient list and payroll session, and drives a run
// through the same-chain, cross-chain and single-ledger phases in that order.
// All state is guarded by mu; collaborator calls are made without holding it.
type Orchestrator struct {
	sameChain    ports.SameChainSettler
	crossChain   ports.CrossChainSettler
	singleLedger ports.SingleLedgerSettler
	quoter       ports.BridgeQuoter
	previewer    ports.BatchPreviewer
	logs         ports.LogSink
	runLock      ports.RunLock
	runLockTTL   time.Duration
	metrics      ports.MetricsRecorder
	notifier     ports.RunNotifier
	now          func() time.Time
	log          zerolog.Logger

	mu         sync.Mutex
	recipients []domain.Recipient
	payerChain domain.Chain
	phase      domain.Phase
	executing  bool
	session    *domain.PayrollSession
}

var _ ports.PayrollService = (*Orchestrator)(nil)

// NewOrchestrator creates an idle orchestrator with no recipients.
func NewOrchestrator(deps OrchestratorDeps) *Orchestrator {
	o := &Orchestrator{
		sameChain:    deps.SameChain,
		crossChain:   deps.CrossChain,
		singleLedger: deps.SingleLedger,
		quoter:       deps.Quoter,
		previewer:    deps.Previewer,
		logs:         deps.Logs,
		runLock:      deps.RunLock,
		runLockTTL:   deps.RunLockTTL,
		metrics:      deps.Metrics,
		notifier:     deps.Notifier,
		now:          deps.Now,
		log:          deps.Log,
		payerChain:   deps.PayerChain,
		phase:        domain.PhaseIdle,
	}
	if o.metrics == nil {
		o.metrics = nopMetrics{}
	}
	if o.now == nil {
		o.now = time.Now
	}
	if o.runLockTTL <= 0 {
		o.runLockTTL = defaultRunLockTTL
	}
	if o.payerChain == "" {
		o.payerChain = domain.DefaultPayerChain
	}
	return o
}

// Execute runs every pending recipient through its settlement path. Once the
// run has started no error is returned: settlement failures are recorded on
// the affected recipients and the remaining phases still run.
func (o *Orchestrator) Execute(ctx context.Context) (*ports.ExecutionSummary, error) {
	o.mu.Lock()
	if o.executing {
		o.mu.Unlock()
		o.metrics.RecordRun(RunRejected)
		return nil, apperror.ErrExecutionInProgress()
	}
	payments := routing.ToPayments(o.recipients)
	if len(payments) == 0 {
		o.mu.Unlock()
		o.metrics.RecordRun(RunRejected)
		return nil, apperror.ErrNothingToExecute()
	}
	o.executing = true
	payer := o.payerChain
	snapshot := cloneRecipients(o.recipients)
	o.mu.Unlock()

	defer func() {
		o.mu.Lock()
		o.executing = false
		o.mu.Unlock()
	}()

	if o.runLock != nil {
		acquired, err := o.runLock.Acquire(ctx, runLockKey, o.runLockTTL)
		if err != nil {
			o.metrics.RecordRun(RunRejected)
			return nil, apperror.InternalError(fmt.Errorf("acquire run lock: %w", err))
		}
		if !acquired {
			o.metrics.RecordRun(RunRejected)
			return nil, apperror.ErrExecutionInProgress()
		}
		defer func() {
			if err := o.runLock.Release(context.WithoutCancel(ctx), runLockKey); err != nil {
				o.log.Warn().Err(err).Msg("Failed to release run lock")
			}
		}()
	}

	routes := routing.Classify(payments, payer)
	savings := routing.EstimateSavings(routes)

	session := &domain.PayrollSession{
		ID:          uuid.New(),
		TotalAmount: routing.TotalAmount(snapshot),
		Recipients:  snapshot,
		Status:      domain.SessionStatusExecuting,
		CreatedAt:   o.now().UTC(),
	}

	o.mu.Lock()
	o.session = session
	o.mu.Unlock()

	log := o.log.With().Str("session_id", session.ID.String()).Logger()
	log.Info().
		Str("payer_chain", payer.String()).
		Int("same_chain", len(routes.SameChain)).
		Int("cross_chain", len(routes.CrossChain)).
		Int("single_ledger", len(routes.SingleLedger)).
		Int("unsupported", len(routes.Unsupported)).
		Msg("Payroll execution started")

	o.appendLog(ctx, "=== PayFlow Execution Started ===")
	o.appendLog(ctx, fmt.Sprintf("Routing %d payments from %s", len(payments), payer))
	o.appendLog(ctx, fmt.Sprintf("  Same-chain (session batch): %d", len(routes.SameChain)))
	o.appendLog(ctx, fmt.Sprintf("  Cross-chain (bridge): %d", len(routes.CrossChain)))
	o.appendLog(ctx, fmt.Sprintf("  Single-ledger (atomic batch): %d", len(routes.SingleLedger)))

	o.failUnsupported(ctx, routes.Unsupported)

	o.runPhase(ctx, log, domain.PhaseSameChain, "Phase 1: Same-chain Session Batch", routes.SameChain,
		func(ids []uuid.UUID) { o.settleSameChain(ctx, session, routes.SameChain, ids) })

	o.runPhase(ctx, log, domain.PhaseCrossChain, "Phase 2: Cross-chain Bridge Routing", routes.CrossChain,
		func(ids []uuid.UUID) { o.settleCrossChain(ctx, session, routes.CrossChain, payer, ids) })

	o.runPhase(ctx, log, domain.PhaseSingleLedger, "Phase 3: Single-ledger Atomic Batch", routes.SingleLedger,
		func(ids []uuid.UUID) { o.settleSingleLedger(ctx, session, routes.SingleLedger, ids) })

	o.mu.Lock()
	used := session.TxCount()
	o.mu.Unlock()

	o.appendLog(ctx, "=== PayFlow Execution Complete ===")
	o.appendLog(ctx, fmt.Sprintf("Total transactions used: %d (saved %d txns)", used, savings.Saved()))

	completedAt := o.now().UTC()

	o.mu.Lock()
	o.phase = domain.PhaseDone
	session.Status = domain.SessionStatusCompleted
	session.CompletedAt = &completedAt
	summary := &ports.ExecutionSummary{
		Session:    session.Clone(),
		Routes:     routes,
		Savings:    savings,
		Recipients: cloneRecipients(o.recipients),
	}
	o.mu.Unlock()

	o.metrics.RecordRun(RunCompleted)
	o.metrics.SetSavingsPercent(savings.SavingsPercent)

	log.Info().
		Int("transactions", used).
		Int("estimated", savings.WithBatching).
		Int("saved", savings.Saved()).
		Msg("Payroll execution complete")

	if o.notifier != nil {
		if err := o.notifier.NotifyRunCompleted(ctx, summary); err != nil {
			log.Warn().Err(err).Msg("Failed to notify run completion")
		}
	}

	return summary, nil
}

// runPhase claims the recipients of payments, invokes settle and makes sure
// every claimed recipient ends in a terminal state, even if settle panics.
func (o *Orchestrator) runPhase(
	ctx context.Context,
	log zerolog.Logger,
	phase domain.Phase,
	header string,
	payments []domain.Payment,
	settle func(ids []uuid.UUID),
) {
	if len(payments) == 0 {
		return
	}

	o.mu.Lock()
	o.phase = phase
	o.mu.Unlock()

	o.appendLog(ctx, header)
	ids := o.claim(payments)
	start := o.now()

	reason := errNoResult
	func() {
		defer func() {
			if r := recover(); r != nil {
				reason = fmt.Sprintf("settlement panic: %v", r)
				log.Error().Str("phase", string(phase)).Interface("panic", r).Msg("Settlement collaborator panicked")
				o.appendLog(ctx, fmt.Sprintf("%s error: %s", phaseLabel(phase), reason))
			}
		}()
		settle(ids)
	}()

	completed, failed := o.finalizeClaims(ids, reason)

	o.metrics.ObservePhase(phase, o.now().Sub(start))
	o.metrics.RecordOutcome(string(phase), domain.RecipientStatusCompleted, completed)
	o.metrics.RecordOutcome(string(phase), domain.RecipientStatusFailed, failed)

	log.Info().
		Str("phase", string(phase)).
		Int("count", len(payments)).
		Int("completed", completed).
		Int("failed", failed).
		Msg("Settlement phase finished")
}

func (o *Orchestrator) settleSameChain(ctx context.Context, session *domain.PayrollSession, payments []domain.Payment, ids []uuid.UUID) {
	token := payments[0].Token
	o.appendLog(ctx, fmt.Sprintf("  Opening session for %d payments in %s", len(payments), token))

	res, err := o.sameChain.SettleBatch(ctx, payments, token)
	if err != nil {
		o.failBatch(ctx, domain.PhaseSameChain, ids, err)
		return
	}
	if res == nil {
		o.failBatch(ctx, domain.PhaseSameChain, ids, errors.New(errNoResult))
		return
	}

	o.applyAll(ids, *res)
	if !res.Success {
		o.appendLog(ctx, fmt.Sprintf("  Same-chain settlement failed: %s", resultError(*res)))
		return
	}

	o.mu.Lock()
	session.SameChainTxHash = res.TxHash
	o.mu.Unlock()
	o.appendLog(ctx, fmt.Sprintf("  Session settled: %s", displayHash(res.TxHash)))
}

func (o *Orchestrator) settleCrossChain(ctx context.Context, session *domain.PayrollSession, payments []domain.Payment, payer domain.Chain, ids []uuid.UUID) {
	for progress := range o.crossChain.SettleBatch(ctx, payments, payer) {
		if progress.Index < 0 || progress.Index >= len(ids) {
			o.log.Warn().Int("index", progress.Index).Int("total", len(ids)).Msg("Bridge reported an out-of-range index")
			continue
		}

		p := payments[progress.Index]
		res := progress.Result
		o.apply(ids[progress.Index], res)

		if res.Success {
			o.mu.Lock()
			session.CrossChainTxHashes = append(session.CrossChainTxHashes, res.TxHash)
			o.mu.Unlock()
			o.appendLog(ctx, fmt.Sprintf("  [%d/%d] %s %s → %s: %s",
				progress.Index+1, len(payments), p.Amount, p.Token, p.Chain, displayHash(res.TxHash)))
			continue
		}
		o.appendLog(ctx, fmt.Sprintf("  [%d/%d] %s %s → %s failed: %s",
			progress.Index+1, len(payments), p.Amount, p.Token, p.Chain, resultError(res)))
	}
}

func (o *Orchestrator) settleSingleLedger(ctx context.Context, session *domain.PayrollSession, payments []domain.Payment, ids []uuid.UUID) {
	o.appendLog(ctx, fmt.Sprintf("  Building batch of %d transfers", len(payments)))

	res, err := o.singleLedger.SettleBatch(ctx, payments)
	if err != nil {
		o.failBatch(ctx, domain.PhaseSingleLedger, ids, err)
		return
	}
	if res == nil {
		o.failBatch(ctx, domain.PhaseSingleLedger, ids, errors.New(errNoResult))
		return
	}

	o.applyAll(ids, *res)
	if !res.Success {
		o.appendLog(ctx, fmt.Sprintf("  Single-ledger batch failed: %s", resultError(*res)))
		return
	}

	o.mu.Lock()
	session.SingleLedgerTxHash = res.TxHash
	o.mu.Unlock()
	o.appendLog(ctx, fmt.Sprintf("  Batch executed: %s", displayHash(res.TxHash)))
}

// failBatch records a collaborator error against every claimed recipient.
func (o *Orchestrator) failBatch(ctx context.Context, phase domain.Phase, ids []uuid.UUID, err error) {
	settleErr := apperror.ErrSettlementFailure(err)
	o.log.Error().
		Err(settleErr).
		Str("error_code", settleErr.Code).
		Str("phase", string(phase)).
		Int("count", len(ids)).
		Msg("Settlement failed")
	o.appendLog(ctx, fmt.Sprintf("%s error: %s", phaseLabel(phase), err.Error()))
	o.applyAll(ids, domain.TransactionResult{Success: false, Error: err.Error()})
}

// failUnsupported marks recipients whose payments matched no route as failed.
func (o *Orchestrator) failUnsupported(ctx context.Context, payments []domain.Payment) {
	if len(payments) == 0 {
		return
	}

	ids := o.claim(payments)
	for i, p := range payments {
		reason := apperror.ErrUnsupportedRoute(p.Chain.String()).Message
		o.apply(ids[i], domain.TransactionResult{Success: false, Error: reason, Chain: p.Chain})
		o.appendLog(ctx, fmt.Sprintf("  Skipped %s: %s", shortAddress(p.Recipient), reason))
	}

	o.metrics.RecordOutcome(routeUnsupported, domain.RecipientStatusFailed, len(payments))
	o.log.Warn().Int("count", len(payments)).Msg("Payments with unsupported routes marked failed")
}

// claim marks, for each payment, the first pending recipient with the same
// address and chain as processing. The result is index-aligned with
// payments; uuid.Nil means no recipient matched.
func (o *Orchestrator) claim(payments []domain.Payment) []uuid.UUID {
	o.mu.Lock()
	defer o.mu.Unlock()

	ids := make([]uuid.UUID, len(payments))
	for i, p := range payments {
		for j := range o.recipients {
			r := &o.recipients[j]
			if r.IsPending() && r.Address == p.Recipient && r.Chain == p.Chain {
				r.MarkProcessing()
				ids[i] = r.ID
				break
			}
		}
	}
	return ids
}

func (o *Orchestrator) apply(id uuid.UUID, res domain.TransactionResult) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if r := o.find(id); r != nil {
		r.ApplyResult(withError(res))
	}
}

func (o *Orchestrator) applyAll(ids []uuid.UUID, res domain.TransactionResult) {
	o.mu.Lock()
	defer o.mu.Unlock()

	res = withError(res)
	for _, id := range ids {
		if r := o.find(id); r != nil {
			r.ApplyResult(res)
		}
	}
}

// finalizeClaims fails claimed recipients still processing and counts outcomes.
func (o *Orchestrator) finalizeClaims(ids []uuid.UUID, reason string) (completed, failed int) {
	o.mu.Lock()
	defer o.mu.Unlock()

	for _, id := range ids {
		r := o.find(id)
		if r == nil {
			continue
		}
		if r.Status == domain.RecipientStatusProcessing {
			r.Fail(reason)
		}
		switch r.Status {
		case domain.RecipientStatusCompleted:
			completed++
		case domain.RecipientStatusFailed:
			failed++
		}
	}
	return completed, failed
}

// find returns the recipient with id. Caller holds mu.
func (o *Orchestrator) find(id uuid.UUID) *domain.Recipient {
	if id == uuid.Nil {
		return nil
	}
	for i := range o.recipients {
		if o.recipients[i].ID == id {
			return &o.recipients[i]
		}
	}
	return nil
}

// appendLog stamps msg with the current time and writes it to the execution log.
func (o *Orchestrator) appendLog(ctx context.Context, msg string) {
	line := domain.FormatLogLine(o.now(), msg)
	if err := o.logs.Append(ctx, line); err != nil {
		o.log.Warn().Err(err).Str("line", line).Msg("Failed to append execution log")
	}
}

func withError(res domain.TransactionResult) domain.TransactionResult {
	if !res.Success && res.Error == "" {
		res.Error = "settlement failed"
	}
	return res
}

func resultError(res domain.TransactionResult) string {
	return withError(res).Error
}

func displayHash(hash string) string {
	if hash == "" {
		return "(no transaction)"
	}
	return hash
}

func shortAddress(addr string) string {
	if len(addr) <= 10 {
		return addr
	}
	return addr[:6] + "..." + addr[len(addr)-4:]
}

func phaseLabel(phase domain.Phase) string {
	switch phase {
	case domain.PhaseSameChain:
		return "Same-chain"
	case domain.PhaseCrossChain:
		return "Cross-chain"
	case domain.PhaseSingleLedger:
		return "Single-ledger"
	default:
		return string(phase)
	}
}

func cloneRecipients(in []domain.Recipient) []domain.Recipient {
	return append([]domain.Recipient(nil), in...)
}

type nopMetrics struct{}

func (nopMetrics) ObservePhase(domain.Phase, time.Duration) {}

func (nopMetrics) RecordOutcome(string, domain.RecipientStatus, int) {}

func (nopMetrics) RecordRun(string) {}

func (nopMetrics) SetSavingsPercent(int) {}
