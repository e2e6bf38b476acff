package dto

import (
	"payflow/internal/core/domain"
	"payflow/internal/core/ports"
)

// RecipientRequest is the request body for one new recipient.
type RecipientRequest struct {
	Name    string `json:"name" binding:"max=100"`
	Address string `json:"address" binding:"required,max=128"`
	Amount  string `json:"amount" binding:"required,decimal"`
	Chain   string `json:"chain" binding:"required,chain"`
	Token   string `json:"token,omitempty" binding:"omitempty,token_symbol"`
}

// AddRecipientsRequest is the batch form of POST /api/v1/recipients.
type AddRecipientsRequest struct {
	Recipients []RecipientRequest `json:"recipients" binding:"required,min=1,max=500,dive"`
}

// UpdateRecipientRequest is the request body for PATCH /api/v1/recipients/:id.
// Absent fields are left unchanged.
type UpdateRecipientRequest struct {
	Name    *string `json:"name,omitempty" binding:"omitempty,max=100"`
	Address *string `json:"address,omitempty" binding:"omitempty,min=1,max=128"`
	Amount  *string `json:"amount,omitempty" binding:"omitempty,decimal"`
	Chain   *string `json:"chain,omitempty" binding:"omitempty,chain"`
	Token   *string `json:"token,omitempty" binding:"omitempty,token_symbol"`
}

// PayerChainRequest is the request body for PUT /api/v1/payer-chain.
type PayerChainRequest struct {
	Chain string `json:"chain" binding:"required,chain"`
}

// RecipientListResponse wraps the recipient list with its total amount.
type RecipientListResponse struct {
	Items       []domain.Recipient `json:"items"`
	Count       int                `json:"count"`
	TotalAmount string             `json:"total_amount"`
}

// ValidationResponse lists advisory validation issues.
type ValidationResponse struct {
	Valid  bool                     `json:"valid"`
	Issues []domain.ValidationIssue `json:"issues"`
}

// ResetResponse reports how many recipients went back to pending.
type ResetResponse struct {
	Reset int  `json:"reset"`
	All   bool `json:"all"`
}

// SessionResponse is the response for GET /api/v1/payroll/session.
type SessionResponse struct {
	ports.PayrollStatus
	TotalAmount string `json:"total_amount"`
}

// LogsResponse is the execution log.
type LogsResponse struct {
	Lines []string `json:"lines"`
	Count int      `json:"count"`
}
