package handler

import (
	"net/http"

	"payflow/internal/adapter/http/middleware"
	"payflow/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	Payroll        ports.PayrollService
	TokenSvc       ports.TokenService
	RateLimitStore ports.RateLimitStore                // nil = rate limiting disabled
	RateLimitRules map[string]middleware.RateLimitRule // nil = DefaultRateLimitRules
	HealthCheckers []ports.HealthChecker
	MetricsHandler http.Handler // nil = /metrics disabled
	OpenAPISpec    []byte
	Testnet        bool
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(middleware.DefaultMaxBodyBytes))
	r.Use(middleware.AuditLog(deps.Logger.With().Str("component", "audit").Logger()))

	r.GET("/health", HealthCheck(deps.HealthCheckers...))
	if deps.MetricsHandler != nil {
		r.GET("/metrics", gin.WrapH(deps.MetricsHandler))
	}

	docs := NewDocsHandler(deps.OpenAPISpec)
	swagger := r.Group("/swagger")
	{
		swagger.GET("", docs.UI)
		swagger.GET("/spec", docs.Spec)
	}

	rules := deps.RateLimitRules
	if rules == nil {
		rules = middleware.DefaultRateLimitRules()
	}

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	jwtAuth := middleware.JWTAuth(deps.TokenSvc, deps.Logger)

	recipientHandler := NewRecipientHandler(deps.Payroll)
	payrollHandler := NewPayrollHandler(deps.Payroll, deps.Testnet)
	logHandler := NewLogHandler(deps.Payroll)

	v1 := r.Group("/api/v1")

	// --- Read-only routes (no auth) ---
	v1.GET("/chains", payrollHandler.Chains)
	v1.GET("/routes", payrollHandler.Routes)
	v1.GET("/quotes", payrollHandler.Quotes)
	v1.GET("/single-ledger/preview", payrollHandler.Preview)
	v1.GET("/logs", logHandler.List)

	recipients := v1.Group("/recipients")
	{
		recipients.GET("", recipientHandler.List)
		recipients.GET("/validation", recipientHandler.Validate)
		recipients.POST("", jwtAuth, rl(middleware.GroupWrite), recipientHandler.Add)
		recipients.PATCH("/:id", jwtAuth, rl(middleware.GroupWrite), recipientHandler.Update)
		recipients.DELETE("/:id", jwtAuth, rl(middleware.GroupWrite), recipientHandler.Remove)
		recipients.DELETE("", jwtAuth, rl(middleware.GroupWrite), recipientHandler.Clear)
	}

	// --- JWT-authenticated routes (operator) ---
	v1.PUT("/payer-chain", jwtAuth, rl(middleware.GroupWrite), payrollHandler.SetPayerChain)
	v1.DELETE("/logs", jwtAuth, rl(middleware.GroupWrite), logHandler.Clear)

	payroll := v1.Group("/payroll")
	{
		payroll.GET("/session", payrollHandler.Session)
		payroll.POST("/execute", jwtAuth, rl(middleware.GroupExecute), payrollHandler.Execute)
		payroll.POST("/reset", jwtAuth, rl(middleware.GroupWrite), payrollHandler.Reset)
	}

	return r
}
