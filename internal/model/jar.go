package model

import "github.com/ethereum/go-ethereum/common"

// Jar joins a pickle jar with its deposit token and display data.
type Jar struct {
	Symbol           string         `json:"symbol"`
	Address          common.Address `json:"address"`
	DepositSymbol    string         `json:"deposit_symbol"`
	DepositToken     common.Address `json:"deposit_token"`
	DepositTokenName string         `json:"deposit_token_name"`
	JarName          string         `json:"jar_name"`
	DepositLink      string         `json:"deposit_link"`
	Active           bool           `json:"active"`
}
