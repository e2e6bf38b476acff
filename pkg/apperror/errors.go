package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// HasCode reports whether err is (or wraps) an AppError with the given code.
func HasCode(err error, code string) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// Error codes.
const (
	CodeInvalidRequest      = "VAL_000"
	CodeAddressRequired     = "VAL_001"
	CodeInvalidAmount       = "VAL_002"
	CodeInvalidAddress      = "VAL_003"
	CodeInsufficientBalance = "PAY_001"
	CodeNotInitialized      = "PAY_002"
	CodeSettlementFailure   = "PAY_003"
	CodeUnsupportedRoute    = "ROUTE_001"
	CodeExecutionInProgress = "EXEC_001"
	CodeNothingToExecute    = "EXEC_002"
	CodeRecipientNotFound   = "REC_001"
	CodeInvalidChain        = "REC_002"
	CodeInvalidToken        = "AUTH_003"
	CodeRateLimitExceeded   = "RATE_001"
	CodeInternal            = "SYS_001"
)

// ---- Validation (VAL) ----

func ErrAddressRequired() *AppError {
	return New(CodeAddressRequired, "Recipient address is required", http.StatusBadRequest)
}

func ErrInvalidAmount() *AppError {
	return New(CodeInvalidAmount, "Amount must be greater than 0", http.StatusBadRequest)
}

// ErrInvalidAddress reports an address that does not fit the chain family
// ("EVM" or "Sui").
func ErrInvalidAddress(family string) *AppError {
	return New(CodeInvalidAddress, fmt.Sprintf("Invalid %s address format", family), http.StatusBadRequest)
}

// ---- Settlement (PAY) ----

func ErrInsufficientBalance(deposited, attempted string) *AppError {
	return New(CodeInsufficientBalance,
		fmt.Sprintf("Insufficient session balance. Deposited: %s, Trying to spend: %s", deposited, attempted),
		http.StatusPaymentRequired)
}

func ErrNotInitialized() *AppError {
	return New(CodeNotInitialized, "Settlement session not initialized", http.StatusConflict)
}

func ErrSettlementFailure(err error) *AppError {
	return Wrap(CodeSettlementFailure, "Settlement failed", http.StatusBadGateway, err)
}

// ---- Routing (ROUTE) ----

func ErrUnsupportedRoute(chain string) *AppError {
	return New(CodeUnsupportedRoute, fmt.Sprintf("No settlement route for chain %q", chain), http.StatusUnprocessableEntity)
}

func ErrUnsupportedChainPair(from, to string) *AppError {
	return New(CodeUnsupportedRoute, fmt.Sprintf("Unsupported chain pair: %s → %s", from, to), http.StatusUnprocessableEntity)
}

// ---- Execution (EXEC) ----

func ErrExecutionInProgress() *AppError {
	return New(CodeExecutionInProgress, "Payroll execution already in progress", http.StatusConflict)
}

func ErrNothingToExecute() *AppError {
	return New(CodeNothingToExecute, "No pending recipients to execute", http.StatusConflict)
}

// ---- Recipients (REC) ----

func ErrRecipientNotFound() *AppError {
	return New(CodeRecipientNotFound, "Recipient not found", http.StatusNotFound)
}

func ErrInvalidChain(chain string) *AppError {
	return New(CodeInvalidChain, fmt.Sprintf("Unknown chain %q", chain), http.StatusBadRequest)
}

// ---- Authentication (AUTH) ----

func ErrInvalidToken() *AppError {
	return New(CodeInvalidToken, "Invalid or expired token", http.StatusUnauthorized)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New(CodeRateLimitExceeded, "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap(CodeInternal, "Internal server error", http.StatusInternalServerError, err)
}

// Validation returns a VAL_000 error for malformed request payloads.
func Validation(message string) *AppError {
	return New(CodeInvalidRequest, message, http.StatusBadRequest)
}
