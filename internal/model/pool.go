package model

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// PoolDescriptor describes a two-token pool keyed by its own contract address.
type PoolDescriptor struct {
	Name    string          `json:"name"`
	Address common.Address  `json:"address"`
	TokenA  TokenDescriptor `json:"token_a"`
	TokenB  TokenDescriptor `json:"token_b"`
}

// RawPoolSample holds base-unit balances of both pool tokens and the pool share supply.
// All three values must come from the same chain state.
type RawPoolSample struct {
	BalanceA    *big.Int
	BalanceB    *big.Int
	TotalSupply *big.Int
	BlockNumber uint64
}

// ValuationResult is the human-scale valuation of a pool.
// PricePerShare is NaN or +Inf when TotalSupply is zero.
type ValuationResult struct {
	TotalValue    float64
	TotalSupply   float64
	PricePerShare float64
}
