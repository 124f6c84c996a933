package model

import "github.com/ethereum/go-ethereum/common"

// PriceID keys an off-chain reference price, independent of contract address.
type PriceID string

const (
	PriceIDPickle PriceID = "pickle"
	PriceIDDAI    PriceID = "dai"
	PriceIDUSDC   PriceID = "usdc"
	PriceIDUSDT   PriceID = "usdt"
	PriceIDSUSD   PriceID = "susd"
	PriceIDETH    PriceID = "eth"
	PriceIDWBTC   PriceID = "wbtc"
	PriceIDYFI    PriceID = "yfi"
)

// TokenDescriptor ties a token contract to its price key and decimal precision.
type TokenDescriptor struct {
	Symbol   string         `json:"symbol"`
	Address  common.Address `json:"address"`
	PriceID  PriceID        `json:"price_id"`
	Decimals uint8          `json:"decimals"`
}

// TokenMeta captures ERC20 metadata read from chain.
type TokenMeta struct {
	Address  string `json:"address"`
	Decimals uint8  `json:"decimals"`
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
}
