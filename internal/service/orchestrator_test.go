package service

import (
	"bytes"
	"context"
	"errors"
	"iter"
	"strings"
	"sync"
	"testing"
	"time"

	"payflow/internal/adapter/storage/memory"
	"payflow/internal/core/domain"
	"payflow/internal/core/ports"
	"payflow/internal/core/ports/mocks"
	"payflow/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	aliceAddr = "0x" + strings.Repeat("a1", 20)
	bobAddr   = "0x" + strings.Repeat("b2", 20)
	daveAddr  = "0x" + strings.Repeat("d4", 20)
	carolAddr = "0x" + strings.Repeat("c3", 32)

	fixedNow = time.Date(2026, 1, 2, 9, 30, 0, 0, time.UTC)
)

type orchestratorTestDeps struct {
	orch         *Orchestrator
	sameChain    *mocks.MockSameChainSettler
	crossChain   *mocks.MockCrossChainSettler
	singleLedger *mocks.MockSingleLedgerSettler
	quoter       *mocks.MockBridgeQuoter
	previewer    *mocks.MockBatchPreviewer
	logs         *memory.LogSink
	ctrl         *gomock.Controller
}

func setupOrchestrator(t *testing.T, opts ...func(*OrchestratorDeps)) *orchestratorTestDeps {
	ctrl := gomock.NewController(t)
	d := &orchestratorTestDeps{
		sameChain:    mocks.NewMockSameChainSettler(ctrl),
		crossChain:   mocks.NewMockCrossChainSettler(ctrl),
		singleLedger: mocks.NewMockSingleLedgerSettler(ctrl),
		quoter:       mocks.NewMockBridgeQuoter(ctrl),
		previewer:    mocks.NewMockBatchPreviewer(ctrl),
		logs:         memory.NewLogSink(0),
		ctrl:         ctrl,
	}
	deps := OrchestratorDeps{
		SameChain:    d.sameChain,
		CrossChain:   d.crossChain,
		SingleLedger: d.singleLedger,
		Quoter:       d.quoter,
		Previewer:    d.previewer,
		Logs:         d.logs,
		Now:          func() time.Time { return fixedNow },
		Log:          zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&deps)
	}
	d.orch = NewOrchestrator(deps)
	return d
}

func progressOf(results ...domain.TransactionResult) iter.Seq[ports.CrossChainProgress] {
	return func(yield func(ports.CrossChainProgress) bool) {
		for i, res := range results {
			if !yield(ports.CrossChainProgress{Index: i, Total: len(results), Result: res}) {
				return
			}
		}
	}
}

func addRecipients(t *testing.T, o *Orchestrator, inputs ...domain.RecipientInput) []domain.Recipient {
	t.Helper()
	added, err := o.AddRecipients(inputs)
	require.NoError(t, err)
	return added
}

func alice() domain.RecipientInput {
	return domain.RecipientInput{Name: "Alice", Address: aliceAddr, Amount: "100", Chain: domain.ChainEthereum, Token: "USDC"}
}

func bob() domain.RecipientInput {
	return domain.RecipientInput{Name: "Bob", Address: bobAddr, Amount: "50", Chain: domain.ChainBase, Token: "USDC"}
}

func carol() domain.RecipientInput {
	return domain.RecipientInput{Name: "Carol", Address: carolAddr, Amount: "25", Chain: domain.ChainSui, Token: "USDC"}
}

func dave() domain.RecipientInput {
	return domain.RecipientInput{Name: "Dave", Address: daveAddr, Amount: "10", Chain: domain.ChainEthereum, Token: "USDC"}
}

func statusByAddress(recipients []domain.Recipient) map[string]domain.Recipient {
	out := make(map[string]domain.Recipient, len(recipients))
	for _, r := range recipients {
		out[r.Address] = r
	}
	return out
}

// ==================== Execute Tests ====================

func TestOrchestrator_Execute_AllRoutes(t *testing.T) {
	d := setupOrchestrator(t)
	defer d.ctrl.Finish()

	addRecipients(t, d.orch, alice(), bob(), carol())

	gomock.InOrder(
		d.sameChain.EXPECT().
			SettleBatch(gomock.Any(), gomock.Len(1), "USDC").
			Return(&domain.TransactionResult{Success: true, TxHash: "0xsame", Chain: domain.ChainEthereum}, nil),
		d.crossChain.EXPECT().
			SettleBatch(gomock.Any(), gomock.Len(1), domain.ChainEthereum).
			Return(progressOf(domain.TransactionResult{Success: true, TxHash: "0xbridge", Chain: domain.ChainBase})),
		d.singleLedger.EXPECT().
			SettleBatch(gomock.Any(), gomock.Len(1)).
			Return(&domain.TransactionResult{Success: true, TxHash: "0xledger", Chain: domain.ChainSui}, nil),
	)

	summary, err := d.orch.Execute(context.Background())
	require.NoError(t, err)
	require.NotNil(t, summary)

	assert.Equal(t, domain.SessionStatusCompleted, summary.Session.Status)
	assert.Equal(t, "0xsame", summary.Session.SameChainTxHash)
	assert.Equal(t, []string{"0xbridge"}, summary.Session.CrossChainTxHashes)
	assert.Equal(t, "0xledger", summary.Session.SingleLedgerTxHash)
	assert.Equal(t, "175.000000", summary.Session.TotalAmount)
	require.NotNil(t, summary.Session.CompletedAt)
	assert.Equal(t, fixedNow, *summary.Session.CompletedAt)
	assert.Equal(t, domain.Savings{WithoutBatching: 3, WithBatching: 3, SavingsPercent: 0}, summary.Savings)

	byAddr := statusByAddress(d.orch.Recipients())
	assert.Equal(t, domain.RecipientStatusCompleted, byAddr[aliceAddr].Status)
	assert.Equal(t, "0xsame", byAddr[aliceAddr].TxHash)
	assert.Equal(t, domain.RecipientStatusCompleted, byAddr[bobAddr].Status)
	assert.Equal(t, "0xbridge", byAddr[bobAddr].TxHash)
	assert.Equal(t, domain.RecipientStatusCompleted, byAddr[carolAddr].Status)
	assert.Equal(t, "0xledger", byAddr[carolAddr].TxHash)

	assert.Equal(t, domain.PhaseDone, d.orch.Phase())
	assert.False(t, d.orch.IsExecuting())

	lines, err := d.orch.Logs(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, lines)
	assert.Equal(t, "[09:30:00] === PayFlow Execution Started ===", lines[0])
	assert.Equal(t, "[09:30:00] Total transactions used: 3 (saved 0 txns)", lines[len(lines)-1])

	joined := strings.Join(lines, "\n")
	assert.Contains(t, joined, "Routing 3 payments from ethereum")
	assert.Contains(t, joined, "Phase 1: Same-chain Session Batch")
	assert.Contains(t, joined, "  Session settled: 0xsame")
	assert.Contains(t, joined, "  [1/1] 50 USDC → base: 0xbridge")
	assert.Contains(t, joined, "  Batch executed: 0xledger")
	assert.Less(t, strings.Index(joined, "Phase 1"), strings.Index(joined, "Phase 2"))
	assert.Less(t, strings.Index(joined, "Phase 2"), strings.Index(joined, "Phase 3"))
}

func TestOrchestrator_Execute_SkipsEmptyPhases(t *testing.T) {
	d := setupOrchestrator(t)
	defer d.ctrl.Finish()

	addRecipients(t, d.orch, alice(), dave())

	d.sameChain.EXPECT().
		SettleBatch(gomock.Any(), gomock.Len(2), "USDC").
		Return(&domain.TransactionResult{Success: true, TxHash: "0xsame"}, nil)

	summary, err := d.orch.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 50, summary.Savings.SavingsPercent)
	assert.Empty(t, summary.Session.CrossChainTxHashes)
	assert.Empty(t, summary.Session.SingleLedgerTxHash)

	lines, _ := d.orch.Logs(context.Background())
	joined := strings.Join(lines, "\n")
	assert.NotContains(t, joined, "Phase 2")
	assert.NotContains(t, joined, "Phase 3")
	assert.Contains(t, joined, "Total transactions used: 1 (saved 1 txns)")
}

func TestOrchestrator_Execute_OnlyPendingRecipients(t *testing.T) {
	d := setupOrchestrator(t)
	defer d.ctrl.Finish()

	addRecipients(t, d.orch, alice())

	d.sameChain.EXPECT().
		SettleBatch(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&domain.TransactionResult{Success: true, TxHash: "0xfirst"}, nil)
	_, err := d.orch.Execute(context.Background())
	require.NoError(t, err)

	addRecipients(t, d.orch, dave())

	d.sameChain.EXPECT().
		SettleBatch(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, payments []domain.Payment, _ string) (*domain.TransactionResult, error) {
			require.Len(t, payments, 1)
			assert.Equal(t, daveAddr, payments[0].Recipient)
			return &domain.TransactionResult{Success: true, TxHash: "0xsecond"}, nil
		})
	_, err = d.orch.Execute(context.Background())
	require.NoError(t, err)

	byAddr := statusByAddress(d.orch.Recipients())
	assert.Equal(t, "0xfirst", byAddr[aliceAddr].TxHash)
	assert.Equal(t, "0xsecond", byAddr[daveAddr].TxHash)
}

func TestOrchestrator_Execute_NothingPending(t *testing.T) {
	d := setupOrchestrator(t)
	defer d.ctrl.Finish()

	summary, err := d.orch.Execute(context.Background())
	assert.Nil(t, summary)
	assert.True(t, apperror.HasCode(err, apperror.CodeNothingToExecute))
	assert.Equal(t, domain.PhaseIdle, d.orch.Phase())
	assert.Nil(t, d.orch.Session())
}

func TestOrchestrator_Execute_SameChainErrorContinues(t *testing.T) {
	d := setupOrchestrator(t)
	defer d.ctrl.Finish()

	addRecipients(t, d.orch, alice(), bob(), carol())

	d.sameChain.EXPECT().
		SettleBatch(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("session rpc unavailable"))
	d.crossChain.EXPECT().
		SettleBatch(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(progressOf(domain.TransactionResult{Success: true, TxHash: "0xbridge"}))
	d.singleLedger.EXPECT().
		SettleBatch(gomock.Any(), gomock.Any()).
		Return(&domain.TransactionResult{Success: true, TxHash: "0xledger"}, nil)

	summary, err := d.orch.Execute(context.Background())
	require.NoError(t, err)
	assert.Empty(t, summary.Session.SameChainTxHash)
	assert.Equal(t, domain.SessionStatusCompleted, summary.Session.Status)

	byAddr := statusByAddress(d.orch.Recipients())
	assert.Equal(t, domain.RecipientStatusFailed, byAddr[aliceAddr].Status)
	assert.Equal(t, "session rpc unavailable", byAddr[aliceAddr].Error)
	assert.Equal(t, domain.RecipientStatusCompleted, byAddr[bobAddr].Status)
	assert.Equal(t, domain.RecipientStatusCompleted, byAddr[carolAddr].Status)

	lines, _ := d.orch.Logs(context.Background())
	assert.Contains(t, strings.Join(lines, "\n"), "Same-chain error: session rpc unavailable")
	assert.Equal(t, "[09:30:00] Total transactions used: 2 (saved 0 txns)", lines[len(lines)-1])
}

func TestOrchestrator_Execute_AllPhasesFail(t *testing.T) {
	var logBuf bytes.Buffer
	d := setupOrchestrator(t, func(deps *OrchestratorDeps) {
		deps.Log = zerolog.New(&logBuf)
	})
	defer d.ctrl.Finish()

	addRecipients(t, d.orch, alice(), bob(), carol())

	d.sameChain.EXPECT().
		SettleBatch(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("session rpc unavailable"))
	d.crossChain.EXPECT().
		SettleBatch(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(progressOf(domain.TransactionResult{Success: false, Error: "no liquidity"}))
	d.singleLedger.EXPECT().
		SettleBatch(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("fullnode timeout"))

	summary, err := d.orch.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Session.TxCount())
	assert.Equal(t, 3, summary.Savings.WithBatching)

	for _, r := range d.orch.Recipients() {
		assert.Equal(t, domain.RecipientStatusFailed, r.Status, r.Name)
		assert.Empty(t, r.TxHash, r.Name)
	}

	lines, _ := d.orch.Logs(context.Background())
	assert.Equal(t, "[09:30:00] Total transactions used: 0 (saved 0 txns)", lines[len(lines)-1])

	// Collaborator errors are reported as settlement failures
	assert.Contains(t, logBuf.String(), `"error_code":"PAY_003"`)
	assert.Contains(t, logBuf.String(), "session rpc unavailable")
	assert.Contains(t, logBuf.String(), "fullnode timeout")
	assert.Contains(t, logBuf.String(), `"transactions":0`)
}

func TestOrchestrator_Execute_UnsuccessfulResult(t *testing.T) {
	d := setupOrchestrator(t)
	defer d.ctrl.Finish()

	addRecipients(t, d.orch, carol())

	d.singleLedger.EXPECT().
		SettleBatch(gomock.Any(), gomock.Any()).
		Return(&domain.TransactionResult{Success: false, Error: "insufficient gas"}, nil)

	summary, err := d.orch.Execute(context.Background())
	require.NoError(t, err)
	assert.Empty(t, summary.Session.SingleLedgerTxHash)

	r := d.orch.Recipients()[0]
	assert.Equal(t, domain.RecipientStatusFailed, r.Status)
	assert.Equal(t, "insufficient gas", r.Error)
	assert.Empty(t, r.TxHash)
}

func TestOrchestrator_Execute_NilResultFailsClaims(t *testing.T) {
	d := setupOrchestrator(t)
	defer d.ctrl.Finish()

	addRecipients(t, d.orch, alice())

	d.sameChain.EXPECT().
		SettleBatch(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil)

	_, err := d.orch.Execute(context.Background())
	require.NoError(t, err)

	r := d.orch.Recipients()[0]
	assert.Equal(t, domain.RecipientStatusFailed, r.Status)
	assert.Equal(t, errNoResult, r.Error)
}

func TestOrchestrator_Execute_CrossChainPerItemOutcomes(t *testing.T) {
	d := setupOrchestrator(t)
	defer d.ctrl.Finish()

	second := bob()
	second.Address = daveAddr
	second.Chain = domain.ChainArbitrum
	third := bob()
	third.Address = "0x" + strings.Repeat("e5", 20)
	third.Chain = domain.ChainOptimism
	addRecipients(t, d.orch, bob(), second, third)

	d.crossChain.EXPECT().
		SettleBatch(gomock.Any(), gomock.Len(3), domain.ChainEthereum).
		Return(func(yield func(ports.CrossChainProgress) bool) {
			if !yield(ports.CrossChainProgress{Index: 0, Total: 3, Result: domain.TransactionResult{Success: true, TxHash: "0xb1"}}) {
				return
			}
			if !yield(ports.CrossChainProgress{Index: 7, Total: 3, Result: domain.TransactionResult{Success: true, TxHash: "0xbogus"}}) {
				return
			}
			yield(ports.CrossChainProgress{Index: 1, Total: 3, Result: domain.TransactionResult{Success: false, Error: "liquidity exhausted"}})
		})

	summary, err := d.orch.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"0xb1"}, summary.Session.CrossChainTxHashes)

	byAddr := statusByAddress(d.orch.Recipients())
	assert.Equal(t, domain.RecipientStatusCompleted, byAddr[bobAddr].Status)
	assert.Equal(t, domain.RecipientStatusFailed, byAddr[daveAddr].Status)
	assert.Equal(t, "liquidity exhausted", byAddr[daveAddr].Error)
	assert.Equal(t, domain.RecipientStatusFailed, byAddr[third.Address].Status, "unreported items do not stay processing")
	assert.Equal(t, errNoResult, byAddr[third.Address].Error)

	lines, _ := d.orch.Logs(context.Background())
	joined := strings.Join(lines, "\n")
	assert.Contains(t, joined, "  [1/3] 50 USDC → base: 0xb1")
	assert.Contains(t, joined, "  [2/3] 50 USDC → arbitrum failed: liquidity exhausted")
	assert.NotContains(t, joined, "0xbogus")
}

func TestOrchestrator_Execute_RecoversFromPanic(t *testing.T) {
	d := setupOrchestrator(t)
	defer d.ctrl.Finish()

	addRecipients(t, d.orch, alice(), carol())

	d.sameChain.EXPECT().
		SettleBatch(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&domain.TransactionResult{Success: true, TxHash: "0xsame"}, nil)
	d.singleLedger.EXPECT().
		SettleBatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, []domain.Payment) (*domain.TransactionResult, error) {
			panic("kaboom")
		})

	summary, err := d.orch.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.SessionStatusCompleted, summary.Session.Status)

	byAddr := statusByAddress(d.orch.Recipients())
	assert.Equal(t, domain.RecipientStatusCompleted, byAddr[aliceAddr].Status)
	assert.Equal(t, domain.RecipientStatusFailed, byAddr[carolAddr].Status)
	assert.Equal(t, "settlement panic: kaboom", byAddr[carolAddr].Error)
	assert.False(t, d.orch.IsExecuting())
	assert.Equal(t, domain.PhaseDone, d.orch.Phase())
}

func TestOrchestrator_Execute_UnsupportedRouteFails(t *testing.T) {
	d := setupOrchestrator(t)
	defer d.ctrl.Finish()

	addRecipients(t, d.orch, domain.RecipientInput{
		Name: "Eve", Address: "TQ" + strings.Repeat("x", 32), Amount: "5", Chain: domain.Chain("tron"), Token: "USDT",
	})

	summary, err := d.orch.Execute(context.Background())
	require.NoError(t, err)
	require.Len(t, summary.Routes.Unsupported, 1)
	assert.Equal(t, 0, summary.Savings.WithoutBatching)

	r := d.orch.Recipients()[0]
	assert.Equal(t, domain.RecipientStatusFailed, r.Status)
	assert.Equal(t, `No settlement route for chain "tron"`, r.Error)

	lines, _ := d.orch.Logs(context.Background())
	assert.Contains(t, strings.Join(lines, "\n"), "  Skipped TQxxxx...xxxx: No settlement route for chain \"tron\"")
}

func TestOrchestrator_Execute_DuplicateAddressesClaimedOnce(t *testing.T) {
	d := setupOrchestrator(t)
	defer d.ctrl.Finish()

	first := alice()
	second := alice()
	second.Amount = "7"
	addRecipients(t, d.orch, first, second)

	d.sameChain.EXPECT().
		SettleBatch(gomock.Any(), gomock.Len(2), "USDC").
		Return(&domain.TransactionResult{Success: true, TxHash: "0xsame"}, nil)

	_, err := d.orch.Execute(context.Background())
	require.NoError(t, err)

	for _, r := range d.orch.Recipients() {
		assert.Equal(t, domain.RecipientStatusCompleted, r.Status)
		assert.Equal(t, "0xsame", r.TxHash)
	}
}

func TestOrchestrator_Execute_RejectsConcurrentRun(t *testing.T) {
	d := setupOrchestrator(t)
	defer d.ctrl.Finish()

	addRecipients(t, d.orch, alice())

	entered := make(chan struct{})
	release := make(chan struct{})
	d.sameChain.EXPECT().
		SettleBatch(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, []domain.Payment, string) (*domain.TransactionResult, error) {
			close(entered)
			<-release
			return &domain.TransactionResult{Success: true, TxHash: "0xsame"}, nil
		})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := d.orch.Execute(context.Background())
		assert.NoError(t, err)
	}()

	<-entered
	assert.True(t, d.orch.IsExecuting())
	assert.Equal(t, domain.PhaseSameChain, d.orch.Phase())

	_, err := d.orch.Execute(context.Background())
	assert.True(t, apperror.HasCode(err, apperror.CodeExecutionInProgress))

	_, err = d.orch.AddRecipients([]domain.RecipientInput{dave()})
	assert.True(t, apperror.HasCode(err, apperror.CodeExecutionInProgress))
	assert.True(t, apperror.HasCode(d.orch.SetPayerChain(domain.ChainBase), apperror.CodeExecutionInProgress))
	_, err = d.orch.Reset()
	assert.True(t, apperror.HasCode(err, apperror.CodeExecutionInProgress))

	recipients := d.orch.Recipients()
	require.Len(t, recipients, 1)
	assert.Equal(t, domain.RecipientStatusProcessing, recipients[0].Status)

	close(release)
	wg.Wait()

	assert.False(t, d.orch.IsExecuting())
	assert.Equal(t, domain.RecipientStatusCompleted, d.orch.Recipients()[0].Status)
}

func TestOrchestrator_Execute_RunLock(t *testing.T) {
	t.Run("not acquired", func(t *testing.T) {
		var lock *mocks.MockRunLock
		d := setupOrchestrator(t, func(deps *OrchestratorDeps) {
			lock = mocks.NewMockRunLock(gomock.NewController(t))
			deps.RunLock = lock
			deps.RunLockTTL = time.Minute
		})
		addRecipients(t, d.orch, alice())

		lock.EXPECT().Acquire(gomock.Any(), runLockKey, time.Minute).Return(false, nil)

		_, err := d.orch.Execute(context.Background())
		assert.True(t, apperror.HasCode(err, apperror.CodeExecutionInProgress))
		assert.False(t, d.orch.IsExecuting())
		assert.Equal(t, domain.RecipientStatusPending, d.orch.Recipients()[0].Status)
		assert.Nil(t, d.orch.Session())
	})

	t.Run("acquire error", func(t *testing.T) {
		var lock *mocks.MockRunLock
		d := setupOrchestrator(t, func(deps *OrchestratorDeps) {
			lock = mocks.NewMockRunLock(gomock.NewController(t))
			deps.RunLock = lock
		})
		addRecipients(t, d.orch, alice())

		lock.EXPECT().Acquire(gomock.Any(), runLockKey, defaultRunLockTTL).Return(false, errors.New("redis down"))

		_, err := d.orch.Execute(context.Background())
		assert.True(t, apperror.HasCode(err, apperror.CodeInternal))
		assert.False(t, d.orch.IsExecuting())
	})

	t.Run("acquired and released", func(t *testing.T) {
		var lock *mocks.MockRunLock
		d := setupOrchestrator(t, func(deps *OrchestratorDeps) {
			lock = mocks.NewMockRunLock(gomock.NewController(t))
			deps.RunLock = lock
		})
		addRecipients(t, d.orch, alice())

		gomock.InOrder(
			lock.EXPECT().Acquire(gomock.Any(), runLockKey, defaultRunLockTTL).Return(true, nil),
			d.sameChain.EXPECT().
				SettleBatch(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(&domain.TransactionResult{Success: true, TxHash: "0xsame"}, nil),
			lock.EXPECT().Release(gomock.Any(), runLockKey).Return(nil),
		)

		_, err := d.orch.Execute(context.Background())
		require.NoError(t, err)
	})
}

func TestOrchestrator_Execute_RecordsMetrics(t *testing.T) {
	var rec *mocks.MockMetricsRecorder
	d := setupOrchestrator(t, func(deps *OrchestratorDeps) {
		rec = mocks.NewMockMetricsRecorder(gomock.NewController(t))
		deps.Metrics = rec
	})
	addRecipients(t, d.orch, alice(), dave())

	d.sameChain.EXPECT().
		SettleBatch(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&domain.TransactionResult{Success: true, TxHash: "0xsame"}, nil)

	rec.EXPECT().ObservePhase(domain.PhaseSameChain, gomock.Any())
	rec.EXPECT().RecordOutcome(string(domain.PhaseSameChain), domain.RecipientStatusCompleted, 2)
	rec.EXPECT().RecordOutcome(string(domain.PhaseSameChain), domain.RecipientStatusFailed, 0)
	rec.EXPECT().RecordRun(RunCompleted)
	rec.EXPECT().SetSavingsPercent(50)

	_, err := d.orch.Execute(context.Background())
	require.NoError(t, err)

	rec.EXPECT().RecordRun(RunRejected)
	_, err = d.orch.Execute(context.Background())
	assert.True(t, apperror.HasCode(err, apperror.CodeNothingToExecute))
}

func TestOrchestrator_Execute_LogSinkFailureDoesNotAbort(t *testing.T) {
	var sink *mocks.MockLogSink
	d := setupOrchestrator(t, func(deps *OrchestratorDeps) {
		sink = mocks.NewMockLogSink(gomock.NewController(t))
		deps.Logs = sink
	})
	addRecipients(t, d.orch, alice())

	sink.EXPECT().Append(gomock.Any(), gomock.Any()).Return(errors.New("disk full")).AnyTimes()
	d.sameChain.EXPECT().
		SettleBatch(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&domain.TransactionResult{Success: true, TxHash: "0xsame"}, nil)

	summary, err := d.orch.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.SessionStatusCompleted, summary.Session.Status)

	sink.EXPECT().Lines(gomock.Any()).Return(nil, errors.New("disk full"))
	_, err = d.orch.Logs(context.Background())
	assert.True(t, apperror.HasCode(err, apperror.CodeInternal))
}

func TestOrchestrator_Execute_NotifiesCompletion(t *testing.T) {
	var notifier *mocks.MockRunNotifier
	d := setupOrchestrator(t, func(deps *OrchestratorDeps) {
		notifier = mocks.NewMockRunNotifier(gomock.NewController(t))
		deps.Notifier = notifier
	})
	addRecipients(t, d.orch, alice())

	d.sameChain.EXPECT().
		SettleBatch(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&domain.TransactionResult{Success: true, TxHash: "0xsame"}, nil)
	notifier.EXPECT().
		NotifyRunCompleted(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, summary *ports.ExecutionSummary) error {
			assert.Equal(t, domain.SessionStatusCompleted, summary.Session.Status)
			assert.Equal(t, "0xsame", summary.Session.SameChainTxHash)
			return errors.New("webhook misconfigured")
		})

	summary, err := d.orch.Execute(context.Background())
	require.NoError(t, err, "notifier errors do not fail the run")
	assert.Equal(t, domain.RecipientStatusCompleted, summary.Recipients[0].Status)
}

// ==================== Reset Tests ====================

func TestOrchestrator_Reset_AfterMixedRun(t *testing.T) {
	d := setupOrchestrator(t)
	defer d.ctrl.Finish()

	addRecipients(t, d.orch, alice(), dave(), carol())

	d.sameChain.EXPECT().
		SettleBatch(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&domain.TransactionResult{Success: true, TxHash: "0xsame"}, nil)
	d.singleLedger.EXPECT().
		SettleBatch(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("ledger rejected batch"))

	_, err := d.orch.Execute(context.Background())
	require.NoError(t, err)

	before, _ := d.orch.Logs(context.Background())
	require.NotEmpty(t, before)

	n, err := d.orch.Reset()
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	for _, r := range d.orch.Recipients() {
		assert.Equal(t, domain.RecipientStatusPending, r.Status)
		assert.Empty(t, r.TxHash)
		assert.Empty(t, r.Error)
	}
	assert.Equal(t, domain.PhaseIdle, d.orch.Phase())
	assert.NotNil(t, d.orch.Session(), "last session stays readable")

	after, _ := d.orch.Logs(context.Background())
	assert.Equal(t, before, after)
}

func TestOrchestrator_ResetAll(t *testing.T) {
	d := setupOrchestrator(t)
	defer d.ctrl.Finish()

	addRecipients(t, d.orch, alice())
	d.sameChain.EXPECT().
		SettleBatch(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&domain.TransactionResult{Success: true, TxHash: "0xsame"}, nil)
	_, err := d.orch.Execute(context.Background())
	require.NoError(t, err)

	require.NoError(t, d.orch.ResetAll(context.Background()))

	assert.Empty(t, d.orch.Recipients())
	assert.Nil(t, d.orch.Session())
	assert.Equal(t, domain.PhaseIdle, d.orch.Phase())
	lines, err := d.orch.Logs(context.Background())
	require.NoError(t, err)
	assert.Empty(t, lines)
}

// ==================== Recipient Command Tests ====================

func TestOrchestrator_RecipientCommands(t *testing.T) {
	d := setupOrchestrator(t)
	defer d.ctrl.Finish()

	added := addRecipients(t, d.orch, alice(), bob())
	require.Len(t, added, 2)
	assert.Equal(t, domain.RecipientStatusPending, added[0].Status)

	amount := "250"
	chain := domain.ChainPolygon
	updated, err := d.orch.UpdateRecipient(added[1].ID, domain.RecipientPatch{Amount: &amount, Chain: &chain})
	require.NoError(t, err)
	assert.Equal(t, "250", updated.Amount)
	assert.Equal(t, domain.ChainPolygon, updated.Chain)
	assert.Equal(t, "Bob", updated.Name)

	_, err = d.orch.UpdateRecipient(added[0].ID, domain.RecipientPatch{})
	require.NoError(t, err)

	require.NoError(t, d.orch.RemoveRecipient(added[0].ID))
	assert.True(t, apperror.HasCode(d.orch.RemoveRecipient(added[0].ID), apperror.CodeRecipientNotFound))

	_, err = d.orch.UpdateRecipient(added[0].ID, domain.RecipientPatch{Amount: &amount})
	assert.True(t, apperror.HasCode(err, apperror.CodeRecipientNotFound))

	remaining := d.orch.Recipients()
	require.Len(t, remaining, 1)
	assert.Equal(t, added[1].ID, remaining[0].ID)

	require.NoError(t, d.orch.ClearRecipients())
	assert.Empty(t, d.orch.Recipients())
}

func TestOrchestrator_Recipients_ReturnsCopy(t *testing.T) {
	d := setupOrchestrator(t)
	defer d.ctrl.Finish()

	addRecipients(t, d.orch, alice())

	got := d.orch.Recipients()
	got[0].Amount = "999"

	assert.Equal(t, "100", d.orch.Recipients()[0].Amount)
}

func TestOrchestrator_SetPayerChain(t *testing.T) {
	d := setupOrchestrator(t)
	defer d.ctrl.Finish()

	assert.Equal(t, domain.ChainEthereum, d.orch.PayerChain())

	err := d.orch.SetPayerChain(domain.Chain("dogecoin"))
	assert.True(t, apperror.HasCode(err, apperror.CodeInvalidChain))

	require.NoError(t, d.orch.SetPayerChain(domain.ChainBase))
	assert.Equal(t, domain.ChainBase, d.orch.PayerChain())

	addRecipients(t, d.orch, alice(), bob())
	routes := d.orch.Routes()
	require.Len(t, routes.SameChain, 1)
	assert.Equal(t, bobAddr, routes.SameChain[0].Recipient)
	require.Len(t, routes.CrossChain, 1)
	assert.Equal(t, aliceAddr, routes.CrossChain[0].Recipient)
}

// ==================== Query Tests ====================

func TestOrchestrator_RoutesView(t *testing.T) {
	d := setupOrchestrator(t)
	defer d.ctrl.Finish()

	addRecipients(t, d.orch, alice(), dave(), bob(), carol())

	view := d.orch.RoutesView()
	assert.Equal(t, domain.ChainEthereum, view.PayerChain)
	assert.Len(t, view.Routes.SameChain, 2)
	assert.Len(t, view.Routes.CrossChain, 1)
	assert.Len(t, view.Routes.SingleLedger, 1)
	assert.Empty(t, view.Routes.Unsupported)
	assert.Equal(t, domain.Savings{WithoutBatching: 4, WithBatching: 3, SavingsPercent: 25}, view.Savings)
	assert.Equal(t, view.Savings, d.orch.Savings())
}

func TestOrchestrator_Status(t *testing.T) {
	d := setupOrchestrator(t)
	defer d.ctrl.Finish()

	st := d.orch.Status()
	assert.Equal(t, domain.PhaseIdle, st.Phase)
	assert.False(t, st.Executing)
	assert.Equal(t, domain.ChainEthereum, st.PayerChain)
	assert.Nil(t, st.Session)
}

func TestOrchestrator_ValidateRecipients(t *testing.T) {
	d := setupOrchestrator(t)
	defer d.ctrl.Finish()

	badAmount := alice()
	badAmount.Amount = "0"
	badSui := carol()
	badSui.Address = aliceAddr
	noAddr := bob()
	noAddr.Address = " "

	added := addRecipients(t, d.orch, alice(), badAmount, badSui, noAddr)

	issues := d.orch.ValidateRecipients()
	require.Len(t, issues, 3)

	assert.Equal(t, added[1].ID.String(), issues[0].RecipientID)
	assert.Equal(t, apperror.CodeInvalidAmount, issues[0].Code)
	assert.Equal(t, apperror.CodeInvalidAddress, issues[1].Code)
	assert.Equal(t, "Invalid Sui address format", issues[1].Message)
	assert.Equal(t, apperror.CodeAddressRequired, issues[2].Code)
}

func TestOrchestrator_TotalAmount(t *testing.T) {
	d := setupOrchestrator(t)
	defer d.ctrl.Finish()

	assert.Equal(t, "0.000000", d.orch.TotalAmount())

	addRecipients(t, d.orch, alice(), bob(), carol())
	assert.Equal(t, "175.000000", d.orch.TotalAmount())
}

func TestOrchestrator_CrossChainQuotes(t *testing.T) {
	d := setupOrchestrator(t)
	defer d.ctrl.Finish()

	addRecipients(t, d.orch, alice(), bob())

	d.quoter.EXPECT().
		Quote(gomock.Any(), ports.QuoteRequest{
			FromChain: domain.ChainEthereum,
			ToChain:   domain.ChainBase,
			FromToken: "USDC",
			ToToken:   "USDC",
			Amount:    "50",
		}).
		Return(&domain.Quote{FromChain: domain.ChainEthereum, ToChain: domain.ChainBase, FromAmount: "50", ToAmount: "49.800000"}, nil)

	quotes, err := d.orch.CrossChainQuotes(context.Background())
	require.NoError(t, err)
	require.Len(t, quotes, 1)
	assert.Equal(t, "49.800000", quotes[0].ToAmount)

	d.quoter.EXPECT().Quote(gomock.Any(), gomock.Any()).Return(nil, apperror.ErrUnsupportedChainPair("ethereum", "base"))
	_, err = d.orch.CrossChainQuotes(context.Background())
	assert.True(t, apperror.HasCode(err, apperror.CodeUnsupportedRoute))
}

func TestOrchestrator_CrossChainQuotes_NoQuoter(t *testing.T) {
	d := setupOrchestrator(t, func(deps *OrchestratorDeps) { deps.Quoter = nil })
	defer d.ctrl.Finish()

	addRecipients(t, d.orch, bob())

	quotes, err := d.orch.CrossChainQuotes(context.Background())
	require.NoError(t, err)
	assert.Empty(t, quotes)
	assert.NotNil(t, quotes)
}

func TestOrchestrator_SingleLedgerPreview(t *testing.T) {
	d := setupOrchestrator(t)
	defer d.ctrl.Finish()

	addRecipients(t, d.orch, alice(), carol())

	d.previewer.EXPECT().
		Preview(gomock.Len(1)).
		Return(domain.BatchPreview{Operations: []string{"op"}, TotalAmount: "25.0000", EstimatedGas: "0.003000"})

	preview := d.orch.SingleLedgerPreview()
	assert.Equal(t, []string{"op"}, preview.Operations)
	assert.Equal(t, "25.0000", preview.TotalAmount)
}
