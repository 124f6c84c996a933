package registry

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/ethereum/go-ethereum/common"

	"jarScope/internal/model"
)

// ErrUnknownToken is returned when an address is not part of the fixed token set.
var ErrUnknownToken = errors.New("unknown token address")

// UnknownTokenError carries the address that failed to resolve.
type UnknownTokenError struct {
	Address string
}

func (e *UnknownTokenError) Error() string {
	return fmt.Sprintf("%s: %s", ErrUnknownToken.Error(), e.Address)
}

func (e *UnknownTokenError) Is(target error) bool {
	return target == ErrUnknownToken
}

var tokenAddresses = map[string]common.Address{
	"pickle": common.HexToAddress("0x429881672B9AE42b8EbA0E26cD9C73711b891Ca5"),
	"weth":   common.HexToAddress("0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2"),
	"dai":    common.HexToAddress("0x6B175474E89094C44Da98b954EedeAC495271d0F"),
	"usdc":   common.HexToAddress("0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48"),
	"usdt":   common.HexToAddress("0xdAC17F958D2ee523a2206206994597C13D831ec7"),
	"susd":   common.HexToAddress("0x57Ab1ec28D129707052df4dF418D58a2D46d5f51"),
	"wbtc":   common.HexToAddress("0x2260fac5e5542a773aa44fbcfedf7c193bc2c599"),
	"yfi":    common.HexToAddress("0x0bc529c00C6401aEF6D220BE8C6Ea1667F6Ad93e"),
}

// priceIDs is the fixed set of addresses that can be priced.
var priceIDs = map[common.Address]model.PriceID{
	tokenAddresses["dai"]:  model.PriceIDDAI,
	tokenAddresses["usdc"]: model.PriceIDUSDC,
	tokenAddresses["usdt"]: model.PriceIDUSDT,
	tokenAddresses["susd"]: model.PriceIDSUSD,
	tokenAddresses["weth"]: model.PriceIDETH,
	tokenAddresses["wbtc"]: model.PriceIDWBTC,
	tokenAddresses["yfi"]:  model.PriceIDYFI,
}

var (
	weth = model.TokenDescriptor{Symbol: "weth", Address: tokenAddresses["weth"], PriceID: model.PriceIDETH, Decimals: 18}
	dai  = model.TokenDescriptor{Symbol: "dai", Address: tokenAddresses["dai"], PriceID: model.PriceIDDAI, Decimals: 18}
	usdc = model.TokenDescriptor{Symbol: "usdc", Address: tokenAddresses["usdc"], PriceID: model.PriceIDUSDC, Decimals: 6}
	usdt = model.TokenDescriptor{Symbol: "usdt", Address: tokenAddresses["usdt"], PriceID: model.PriceIDUSDT, Decimals: 6}
	yfi  = model.TokenDescriptor{Symbol: "yfi", Address: tokenAddresses["yfi"], PriceID: model.PriceIDYFI, Decimals: 18}
	wbtc = model.TokenDescriptor{Symbol: "wbtc", Address: tokenAddresses["wbtc"], PriceID: model.PriceIDWBTC, Decimals: 8}
)

// ResolveAddress returns the contract address of a token symbol.
func ResolveAddress(symbol string) (common.Address, bool) {
	addr, ok := tokenAddresses[symbol]
	return addr, ok
}

// ResolvePriceID maps a token address to its price key. The match is
// case-insensitive; any address outside the fixed set fails with ErrUnknownToken.
func ResolvePriceID(address string) (model.PriceID, error) {
	trimmed := strings.TrimSpace(address)
	if !common.IsHexAddress(trimmed) {
		return "", &UnknownTokenError{Address: address}
	}
	id, ok := priceIDs[common.HexToAddress(trimmed)]
	if !ok {
		return "", &UnknownTokenError{Address: address}
	}
	return id, nil
}

// Tokens returns the descriptors of every token used by a registered pool, sorted by symbol.
func Tokens() []model.TokenDescriptor {
	tokens := []model.TokenDescriptor{weth, dai, usdc, usdt, yfi, wbtc}
	sort.Slice(tokens, func(i, j int) bool { return tokens[i].Symbol < tokens[j].Symbol })
	return tokens
}

// TokenSymbols lists the declared token symbols in sorted order.
func TokenSymbols() []string {
	return sortedKeys(tokenAddresses)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
