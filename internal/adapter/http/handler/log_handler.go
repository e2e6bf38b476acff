package handler

import (
	"payflow/internal/adapter/http/dto"
	"payflow/internal/core/ports"
	"payflow/pkg/response"

	"github.com/gin-gonic/gin"
)

// LogHandler serves the execution log.
type LogHandler struct {
	payroll ports.PayrollService
}

func NewLogHandler(payroll ports.PayrollService) *LogHandler {
	return &LogHandler{payroll: payroll}
}

// List handles GET /api/v1/logs.
func (h *LogHandler) List(c *gin.Context) {
	lines, err := h.payroll.Logs(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	if lines == nil {
		lines = []string{}
	}
	response.OK(c, dto.LogsResponse{Lines: lines, Count: len(lines)})
}

// Clear handles DELETE /api/v1/logs.
func (h *LogHandler) Clear(c *gin.Context) {
	if err := h.payroll.ClearLogs(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
