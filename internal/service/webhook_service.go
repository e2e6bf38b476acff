package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"sync"
	"time"

	"payflow/internal/core/domain"
	"payflow/internal/core/ports"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// defaultWebhookRetryIntervals are the waits between delivery attempts.
var defaultWebhookRetryIntervals = []time.Duration{
	15 * time.Second,
	60 * time.Second,
	2 * time.Minute,
	5 * time.Minute,
	10 * time.Minute,
}

// Webhook event types
const (
	EventPayrollCompleted             = "PAYROLL_COMPLETED"
	EventPayrollCompletedWithFailures = "PAYROLL_COMPLETED_WITH_FAILURES"
)

// Webhook request headers
const (
	HeaderWebhookEvent     = "X-PayFlow-Event"
	HeaderWebhookTimestamp = "X-PayFlow-Timestamp"
	HeaderWebhookSignature = "X-PayFlow-Signature"
)

// WebhookPayload is the JSON structure posted to the configured webhook URL.
type WebhookPayload struct {
	EventType string             `json:"event_type"`
	Data      WebhookPayloadData `json:"data"`
	Signature string             `json:"signature"`
}

// WebhookPayloadData summarizes one finished run.
type WebhookPayloadData struct {
	SessionID          string   `json:"session_id"`
	TotalAmount        string   `json:"total_amount"`
	Recipients         int      `json:"recipients"`
	Completed          int      `json:"completed"`
	Failed             int      `json:"failed"`
	Transactions       int      `json:"transactions"`
	SavingsPercent     int      `json:"savings_percent"`
	SameChainTxHash    string   `json:"same_chain_tx_hash,omitempty"`
	CrossChainTxHashes []string `json:"cross_chain_tx_hashes,omitempty"`
	SingleLedgerTxHash string   `json:"single_ledger_tx_hash,omitempty"`
	Timestamp          int64    `json:"timestamp"`
}

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// WebhookConfig configures run-completion webhooks. An empty URL disables them.
type WebhookConfig struct {
	URL            string
	Secret         string
	RetryIntervals []time.Duration // nil = defaultWebhookRetryIntervals
}

// WebhookService implements ports.RunNotifier by posting a signed summary of
// each finished run, asynchronously with retries.
type WebhookService struct {
	cfg        WebhookConfig
	sigSvc     ports.SignatureService
	httpClient HTTPClient
	now        func() time.Time
	log        zerolog.Logger

	wg sync.WaitGroup
}

var _ ports.RunNotifier = (*WebhookService)(nil)

// NewWebhookService creates a new webhook service.
func NewWebhookService(cfg WebhookConfig, sigSvc ports.SignatureService, httpClient HTTPClient, log zerolog.Logger) *WebhookService {
	if cfg.RetryIntervals == nil {
		cfg.RetryIntervals = defaultWebhookRetryIntervals
	}
	return &WebhookService{
		cfg:        cfg,
		sigSvc:     sigSvc,
		httpClient: httpClient,
		now:        time.Now,
		log:        log,
	}
}

// NotifyRunCompleted signs the run summary and delivers it in the background.
func (s *WebhookService) NotifyRunCompleted(ctx context.Context, summary *ports.ExecutionSummary) error {
	if s.cfg.URL == "" {
		s.log.Debug().Msg("webhook: no webhook URL configured, skipping")
		return nil
	}
	if summary == nil || summary.Session == nil {
		return errors.New("webhook: summary has no session")
	}

	data := buildWebhookData(summary, s.now())

	eventType := EventPayrollCompleted
	if data.Failed > 0 {
		eventType = EventPayrollCompletedWithFailures
	}

	dataBytes, err := json.Marshal(data)
	if err != nil {
		return err
	}
	signature := s.sigSvc.Sign(s.cfg.Secret, s.sigSvc.BuildCanonicalString(eventType, data.Timestamp, string(dataBytes)))

	payload := WebhookPayload{
		EventType: eventType,
		Data:      data,
		Signature: signature,
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.deliverWithRetries(payload)
	}()

	return nil
}

// Wait blocks until every pending delivery has finished or given up.
func (s *WebhookService) Wait() {
	s.wg.Wait()
}

// deliverWithRetries attempts delivery once plus once per retry interval.
func (s *WebhookService) deliverWithRetries(payload WebhookPayload) {
	sessionID := payload.Data.SessionID
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		s.log.Error().Err(err).Str("session_id", sessionID).Msg("webhook: failed to marshal payload")
		return
	}

	for attempt := 0; attempt <= len(s.cfg.RetryIntervals); attempt++ {
		if attempt > 0 {
			time.Sleep(s.cfg.RetryIntervals[attempt-1])
		}

		req, err := http.NewRequest(http.MethodPost, s.cfg.URL, bytes.NewReader(payloadBytes))
		if err != nil {
			s.log.Error().Err(err).Str("session_id", sessionID).Msg("webhook: failed to create request")
			return
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(HeaderWebhookEvent, payload.EventType)
		req.Header.Set(HeaderWebhookTimestamp, strconv.FormatInt(payload.Data.Timestamp, 10))
		req.Header.Set(HeaderWebhookSignature, payload.Signature)

		resp, err := s.httpClient.Do(req)
		if err != nil {
			s.log.Warn().Err(err).Str("session_id", sessionID).Int("attempt", attempt+1).Msg("webhook: delivery failed")
			continue
		}
		if resp.Body != nil {
			resp.Body.Close()
		}

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			s.log.Info().Str("session_id", sessionID).Int("attempt", attempt+1).Int("status", resp.StatusCode).Msg("webhook: delivered successfully")
			return
		}

		s.log.Warn().Str("session_id", sessionID).Int("attempt", attempt+1).Int("status", resp.StatusCode).Msg("webhook: non-2xx response, retrying")
	}

	s.log.Error().Str("session_id", sessionID).Msg("webhook: all retry attempts exhausted")
}

// buildWebhookData counts outcomes of the recipients that were pending when
// the run started.
func buildWebhookData(summary *ports.ExecutionSummary, at time.Time) WebhookPayloadData {
	session := summary.Session

	ran := make(map[uuid.UUID]bool, len(session.Recipients))
	for _, r := range session.Recipients {
		if r.IsPending() {
			ran[r.ID] = true
		}
	}

	data := WebhookPayloadData{
		SessionID:          session.ID.String(),
		TotalAmount:        session.TotalAmount,
		Recipients:         len(ran),
		Transactions:       session.TxCount(),
		SavingsPercent:     summary.Savings.SavingsPercent,
		SameChainTxHash:    session.SameChainTxHash,
		CrossChainTxHashes: session.CrossChainTxHashes,
		SingleLedgerTxHash: session.SingleLedgerTxHash,
		Timestamp:          at.Unix(),
	}
	for _, r := range summary.Recipients {
		if !ran[r.ID] {
			continue
		}
		switch r.Status {
		case domain.RecipientStatusCompleted:
			data.Completed++
		case domain.RecipientStatusFailed:
			data.Failed++
		}
	}
	return data
}
