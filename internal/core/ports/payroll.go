package ports

//go:generate mockgen -source=payroll.go -destination=mocks/mock_payroll.go -package=mocks

import (
	"context"

	"payflow/internal/core/domain"

	"github.com/google/uuid"
)

// ExecutionSummary is the outcome of one payroll run.
type ExecutionSummary struct {
	Session    *domain.PayrollSession `json:"session"`
	Routes     domain.PaymentRoutes   `json:"routes"`
	Savings    domain.Savings         `json:"savings"`
	Recipients []domain.Recipient     `json:"recipients"`
}

// PayrollStatus is a read-only view of the orchestrator state.
type PayrollStatus struct {
	Phase      domain.Phase           `json:"phase"`
	Executing  bool                   `json:"executing"`
	PayerChain domain.Chain           `json:"payer_chain"`
	Session    *domain.PayrollSession `json:"session,omitempty"`
}

// RoutesView is the current classification of pending recipients.
type RoutesView struct {
	PayerChain domain.Chain         `json:"payer_chain"`
	Routes     domain.PaymentRoutes `json:"routes"`
	Savings    domain.Savings       `json:"savings"`
}

// PayrollService manages the recipient list and executes payroll runs.
type PayrollService interface {
	Execute(ctx context.Context) (*ExecutionSummary, error)

	SetPayerChain(chain domain.Chain) error
	AddRecipients(inputs []domain.RecipientInput) ([]domain.Recipient, error)
	UpdateRecipient(id uuid.UUID, patch domain.RecipientPatch) (domain.Recipient, error)
	RemoveRecipient(id uuid.UUID) error
	ClearRecipients() error
	Reset() (int, error)
	ResetAll(ctx context.Context) error
	ClearLogs(ctx context.Context) error

	Recipients() []domain.Recipient
	Status() PayrollStatus
	RoutesView() RoutesView
	Logs(ctx context.Context) ([]string, error)
	ValidateRecipients() []domain.ValidationIssue
	TotalAmount() string
	CrossChainQuotes(ctx context.Context) ([]domain.Quote, error)
	SingleLedgerPreview() domain.BatchPreview
}

// RunNotifier announces finished payroll runs to an external system.
type RunNotifier interface {
	NotifyRunCompleted(ctx context.Context, summary *ExecutionSummary) error
}
