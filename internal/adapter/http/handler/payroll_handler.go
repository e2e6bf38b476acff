package handler

import (
	"context"
	"strconv"

	"payflow/internal/adapter/http/dto"
	"payflow/internal/core/domain"
	"payflow/internal/core/ports"
	"payflow/pkg/apperror"
	"payflow/pkg/response"

	"github.com/gin-gonic/gin"
)

// PayrollHandler handles routing, quoting and execution endpoints.
type PayrollHandler struct {
	payroll ports.PayrollService
	testnet bool
}

// NewPayrollHandler creates a new PayrollHandler. testnet selects the chain
// names and ids reported by the chain endpoints.
func NewPayrollHandler(payroll ports.PayrollService, testnet bool) *PayrollHandler {
	return &PayrollHandler{payroll: payroll, testnet: testnet}
}

// Execute handles POST /api/v1/payroll/execute.
func (h *PayrollHandler) Execute(c *gin.Context) {
	// A dropped client connection must not abort a run midway.
	summary, err := h.payroll.Execute(context.WithoutCancel(c.Request.Context()))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, summary)
}

// Reset handles POST /api/v1/payroll/reset. With ?all=true the recipient
// list, session and execution log are dropped as well.
func (h *PayrollHandler) Reset(c *gin.Context) {
	all, _ := strconv.ParseBool(c.DefaultQuery("all", "false"))

	if all {
		count := len(h.payroll.Recipients())
		if err := h.payroll.ResetAll(c.Request.Context()); err != nil {
			response.Error(c, err)
			return
		}
		response.OK(c, dto.ResetResponse{Reset: count, All: true})
		return
	}

	n, err := h.payroll.Reset()
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.ResetResponse{Reset: n})
}

// Session handles GET /api/v1/payroll/session.
func (h *PayrollHandler) Session(c *gin.Context) {
	response.OK(c, dto.SessionResponse{
		PayrollStatus: h.payroll.Status(),
		TotalAmount:   h.payroll.TotalAmount(),
	})
}

// SetPayerChain handles PUT /api/v1/payer-chain.
func (h *PayrollHandler) SetPayerChain(c *gin.Context) {
	var req dto.PayerChainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	chain, _ := domain.ParseChain(req.Chain)
	if err := h.payroll.SetPayerChain(chain); err != nil {
		response.Error(c, err)
		return
	}

	info, _ := chain.Info(h.testnet)
	response.OK(c, info)
}

// Chains handles GET /api/v1/chains.
func (h *PayrollHandler) Chains(c *gin.Context) {
	chains := domain.Chains()
	infos := make([]domain.ChainInfo, 0, len(chains))
	for _, chain := range chains {
		if info, ok := chain.Info(h.testnet); ok {
			infos = append(infos, info)
		}
	}
	response.List(c, infos)
}

// Routes handles GET /api/v1/routes.
func (h *PayrollHandler) Routes(c *gin.Context) {
	response.OK(c, h.payroll.RoutesView())
}

// Quotes handles GET /api/v1/quotes.
func (h *PayrollHandler) Quotes(c *gin.Context) {
	quotes, err := h.payroll.CrossChainQuotes(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.List(c, quotes)
}

// Preview handles GET /api/v1/single-ledger/preview.
func (h *PayrollHandler) Preview(c *gin.Context) {
	response.OK(c, h.payroll.SingleLedgerPreview())
}
