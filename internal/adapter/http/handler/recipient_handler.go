package handler

import (
	"encoding/json"

	"payflow/internal/adapter/http/dto"
	"payflow/internal/core/domain"
	"payflow/internal/core/ports"
	"payflow/pkg/apperror"
	"payflow/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/google/uuid"
)

// payrollToken is assumed when a recipient names no token and the chain lists it.
const payrollToken = "USDC"

// RecipientHandler handles recipient list endpoints.
type RecipientHandler struct {
	payroll ports.PayrollService
}

// NewRecipientHandler creates a new RecipientHandler.
func NewRecipientHandler(payroll ports.PayrollService) *RecipientHandler {
	return &RecipientHandler{payroll: payroll}
}

// List handles GET /api/v1/recipients.
func (h *RecipientHandler) List(c *gin.Context) {
	items := h.payroll.Recipients()
	if items == nil {
		items = []domain.Recipient{}
	}
	response.OK(c, dto.RecipientListResponse{
		Items:       items,
		Count:       len(items),
		TotalAmount: h.payroll.TotalAmount(),
	})
}

// Add handles POST /api/v1/recipients. The body is either one recipient or
// {"recipients": [...]}.
func (h *RecipientHandler) Add(c *gin.Context) {
	reqs, err := bindRecipients(c)
	if err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	inputs := make([]domain.RecipientInput, 0, len(reqs))
	for i := range reqs {
		dto.SanitizeStruct(&reqs[i])
		inputs = append(inputs, toRecipientInput(reqs[i]))
	}

	added, err := h.payroll.AddRecipients(inputs)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, response.ListResponse[domain.Recipient]{Items: added, Count: len(added)})
}

// Update handles PATCH /api/v1/recipients/:id.
func (h *RecipientHandler) Update(c *gin.Context) {
	id, ok := recipientID(c)
	if !ok {
		return
	}

	var req dto.UpdateRecipientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	updated, err := h.payroll.UpdateRecipient(id, toRecipientPatch(req))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, updated)
}

// Remove handles DELETE /api/v1/recipients/:id.
func (h *RecipientHandler) Remove(c *gin.Context) {
	id, ok := recipientID(c)
	if !ok {
		return
	}
	if err := h.payroll.RemoveRecipient(id); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Clear handles DELETE /api/v1/recipients.
func (h *RecipientHandler) Clear(c *gin.Context) {
	if err := h.payroll.ClearRecipients(); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Validate handles GET /api/v1/recipients/validation.
func (h *RecipientHandler) Validate(c *gin.Context) {
	issues := h.payroll.ValidateRecipients()
	if issues == nil {
		issues = []domain.ValidationIssue{}
	}
	response.OK(c, dto.ValidationResponse{Valid: len(issues) == 0, Issues: issues})
}

func bindRecipients(c *gin.Context) ([]dto.RecipientRequest, error) {
	var probe struct {
		Recipients json.RawMessage `json:"recipients"`
	}
	if err := c.ShouldBindBodyWith(&probe, binding.JSON); err != nil {
		return nil, err
	}

	if probe.Recipients != nil {
		var req dto.AddRecipientsRequest
		if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
			return nil, err
		}
		return req.Recipients, nil
	}

	var single dto.RecipientRequest
	if err := c.ShouldBindBodyWith(&single, binding.JSON); err != nil {
		return nil, err
	}
	return []dto.RecipientRequest{single}, nil
}

func recipientID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid recipient id"))
		return uuid.Nil, false
	}
	return id, true
}

func toRecipientInput(req dto.RecipientRequest) domain.RecipientInput {
	chain, _ := domain.ParseChain(req.Chain)
	return domain.RecipientInput{
		Name:    req.Name,
		Address: req.Address,
		Amount:  req.Amount,
		Chain:   chain,
		Token:   tokenFor(chain, req.Token),
	}
}

func toRecipientPatch(req dto.UpdateRecipientRequest) domain.RecipientPatch {
	patch := domain.RecipientPatch{
		Name:    req.Name,
		Address: req.Address,
		Amount:  req.Amount,
	}
	if req.Chain != nil {
		chain, _ := domain.ParseChain(*req.Chain)
		patch.Chain = &chain
	}
	if req.Token != nil {
		token := domain.CanonicalToken(*req.Token)
		patch.Token = &token
	}
	return patch
}

// tokenFor normalizes token to its registry spelling, defaulting to the payroll token or the chain's
// native asset.
func tokenFor(chain domain.Chain, token string) string {
	if token != "" {
		return domain.CanonicalToken(token)
	}
	if !chain.IsKnown() || chain.SupportsToken(payrollToken) {
		return payrollToken
	}
	return chain.DefaultToken()
}
