package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// AuditLog creates an audit middleware that records successful operator
// write operations. It maps route patterns to audit actions.
func AuditLog(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Only audit successful write operations (status 2xx)
		if c.Writer.Status() < 200 || c.Writer.Status() >= 300 {
			return
		}
		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			return
		}

		action, resourceType := mapPathToAction(c.FullPath(), c.Request.Method)
		if action == "" {
			return
		}

		event := log.Info().
			Str("action", action).
			Str("resource_type", resourceType).
			Str("operator", c.GetString(CtxOperator)).
			Str("ip_address", c.ClientIP()).
			Int("status", c.Writer.Status()).
			Str("request_id", c.GetString(CtxRequestID))
		if id := c.Param("id"); id != "" {
			event = event.Str("resource_id", id)
		}
		event.Msg("audit")
	}
}

func mapPathToAction(path, method string) (action, resourceType string) {
	switch {
	case path == "/api/v1/recipients" && method == http.MethodPost:
		return "recipients.add", "recipient"
	case path == "/api/v1/recipients/:id" && method == http.MethodPatch:
		return "recipients.update", "recipient"
	case path == "/api/v1/recipients/:id" && method == http.MethodDelete:
		return "recipients.remove", "recipient"
	case path == "/api/v1/recipients" && method == http.MethodDelete:
		return "recipients.clear", "recipient"
	case path == "/api/v1/payer-chain" && method == http.MethodPut:
		return "payroll.set_payer_chain", "payroll"
	case path == "/api/v1/payroll/execute" && method == http.MethodPost:
		return "payroll.execute", "session"
	case path == "/api/v1/payroll/reset" && method == http.MethodPost:
		return "payroll.reset", "session"
	case path == "/api/v1/logs" && method == http.MethodDelete:
		return "logs.clear", "log"
	}
	return "", ""
}
