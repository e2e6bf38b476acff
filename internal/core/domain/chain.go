package domain

import (
	"slices"
	"strings"
)

// Chain identifies a settlement network.
type Chain string

const (
	ChainEthereum Chain = "ethereum"
	ChainBase     Chain = "base"
	ChainArbitrum Chain = "arbitrum"
	ChainPolygon  Chain = "polygon"
	ChainOptimism Chain = "optimism"
	ChainSui      Chain = "sui"
)

// SingleLedgerChain is the chain whose payments settle as one atomic
// multi-transfer transaction.
const SingleLedgerChain = ChainSui

// DefaultPayerChain is used when no payer chain has been configured.
const DefaultPayerChain = ChainEthereum

// evmChains is the account-model family reachable through the bridge.
var evmChains = []Chain{ChainEthereum, ChainBase, ChainArbitrum, ChainPolygon, ChainOptimism}

// ChainInfo is the registry entry for a known chain.
type ChainInfo struct {
	Chain   Chain    `json:"chain"`
	Name    string   `json:"name"`
	ChainID uint64   `json:"chain_id"`
	Tokens  []string `json:"tokens"`
}

type chainEntry struct {
	mainnetName string
	testnetName string
	mainnetID   uint64
	testnetID   uint64
	tokens      []string
}

var registry = map[Chain]chainEntry{
	ChainEthereum: {"Ethereum", "Sepolia", 1, 11155111, []string{"ETH", "USDC", "USDT", "DAI"}},
	ChainBase:     {"Base", "Base Sepolia", 8453, 84532, []string{"ETH", "USDC", "USDbC", "DAI"}},
	ChainArbitrum: {"Arbitrum", "Arb Sepolia", 42161, 421614, []string{"ETH", "USDC", "USDT", "ARB"}},
	ChainPolygon:  {"Polygon", "Amoy", 137, 80002, []string{"MATIC", "USDC", "USDT", "DAI"}},
	ChainOptimism: {"Optimism", "OP Sepolia", 10, 11155420, []string{"ETH", "USDC", "USDT", "OP"}},
	ChainSui:      {"Sui", "Sui", 0, 0, []string{"SUI", "USDC"}},
}

// EVMChains returns the account-model chains in registry order.
func EVMChains() []Chain {
	return slices.Clone(evmChains)
}

// Chains returns every known chain, EVM family first.
func Chains() []Chain {
	return append(EVMChains(), ChainSui)
}

// ParseChain normalizes s and reports whether it names a known chain.
// Unknown values are still returned so they can flow through routing.
func ParseChain(s string) (Chain, bool) {
	c := Chain(strings.ToLower(strings.TrimSpace(s)))
	return c, c.IsKnown()
}

func (c Chain) String() string {
	return string(c)
}

// IsEVM reports whether c belongs to the account-model family.
func (c Chain) IsEVM() bool {
	return slices.Contains(evmChains, c)
}

// IsSingleLedger reports whether c settles through the atomic batch path.
func (c Chain) IsSingleLedger() bool {
	return c == SingleLedgerChain
}

func (c Chain) IsKnown() bool {
	_, ok := registry[c]
	return ok
}

// Info returns the registry entry for c on mainnet or testnet.
func (c Chain) Info(testnet bool) (ChainInfo, bool) {
	e, ok := registry[c]
	if !ok {
		return ChainInfo{}, false
	}
	info := ChainInfo{
		Chain:   c,
		Name:    e.mainnetName,
		ChainID: e.mainnetID,
		Tokens:  slices.Clone(e.tokens),
	}
	if testnet {
		info.Name = e.testnetName
		info.ChainID = e.testnetID
	}
	return info, true
}

// SupportsToken reports whether token is listed for c.
func (c Chain) SupportsToken(token string) bool {
	e, ok := registry[c]
	if !ok {
		return false
	}
	return slices.Contains(e.tokens, token)
}

// CanonicalToken returns the registry spelling of token, matched without
// regard to case. Unlisted tokens are upper-cased.
func CanonicalToken(token string) string {
	for _, c := range Chains() {
		for _, t := range registry[c].tokens {
			if strings.EqualFold(t, token) {
				return t
			}
		}
	}
	return strings.ToUpper(token)
}

// DefaultToken is the first listed token for c (the native asset).
func (c Chain) DefaultToken() string {
	e, ok := registry[c]
	if !ok || len(e.tokens) == 0 {
		return ""
	}
	return e.tokens[0]
}
