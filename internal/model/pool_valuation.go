package model

import "time"

// PoolValuationRecord is the stored form of a single pool valuation.
// Amounts are exact decimal strings; PricePerShare is nil when the supply is zero.
type PoolValuationRecord struct {
	ChainID       uint64    `json:"chain_id"`
	PoolAddress   string    `json:"pool_address"`
	PoolName      string    `json:"pool_name"`
	BlockNumber   uint64    `json:"block_number"`
	AmountA       string    `json:"amount_a"`
	AmountB       string    `json:"amount_b"`
	PriceA        float64   `json:"price_a"`
	PriceB        float64   `json:"price_b"`
	TotalValue    float64   `json:"total_value"`
	TotalSupply   string    `json:"total_supply"`
	PricePerShare *float64  `json:"price_per_share"`
	Degenerate    bool      `json:"degenerate"`
	ObservedAt    time.Time `json:"observed_at"`
}
