package domain

// Payment is a canonical payment instruction derived from a Recipient.
type Payment struct {
	Recipient string `json:"recipient"` // Destination address
	Name      string `json:"name"`
	Amount    string `json:"amount"`
	Chain     Chain  `json:"chain"`
	Token     string `json:"token"`
}

// PaymentRoutes partitions payments by settlement path. Unsupported holds
// payments whose chain matched no path.
type PaymentRoutes struct {
	SameChain    []Payment `json:"same_chain"`
	CrossChain   []Payment `json:"cross_chain"`
	SingleLedger []Payment `json:"single_ledger"`
	Unsupported  []Payment `json:"unsupported"`
}

// Routed returns the number of payments placed in a settlement bucket.
func (r PaymentRoutes) Routed() int {
	return len(r.SameChain) + len(r.CrossChain) + len(r.SingleLedger)
}

// Savings compares on-chain transaction counts with and without batching.
type Savings struct {
	WithoutBatching int `json:"without_batching"`
	WithBatching    int `json:"with_batching"`
	SavingsPercent  int `json:"savings_percent"`
}

// Saved returns how many transactions batching avoids.
func (s Savings) Saved() int {
	return s.WithoutBatching - s.WithBatching
}

// TransactionResult is the outcome of one settlement call.
type TransactionResult struct {
	Success bool   `json:"success"`
	TxHash  string `json:"tx_hash,omitempty"`
	Error   string `json:"error,omitempty"`
	Chain   Chain  `json:"chain"`
}

// Quote estimates a cross-chain transfer.
type Quote struct {
	FromChain    Chain  `json:"from_chain"`
	ToChain      Chain  `json:"to_chain"`
	FromToken    string `json:"from_token"`
	ToToken      string `json:"to_token"`
	FromAmount   string `json:"from_amount"`
	ToAmount     string `json:"to_amount"`
	EstimatedGas string `json:"estimated_gas"`
	Route        string `json:"route,omitempty"`
}

// BatchPreview describes the operations of a single-ledger batch before it is submitted.
type BatchPreview struct {
	Operations   []string `json:"operations"`
	TotalAmount  string   `json:"total_amount"`
	EstimatedGas string   `json:"estimated_gas"`
}

// ValidationIssue reports an advisory validation failure for one recipient.
type ValidationIssue struct {
	RecipientID string `json:"recipient_id"`
	Address     string `json:"address"`
	Code        string `json:"error_code"`
	Message     string `json:"message"`
}
