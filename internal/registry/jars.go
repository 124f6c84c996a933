package registry

import (
	"github.com/ethereum/go-ethereum/common"

	"jarScope/internal/model"
)

type jarEntry struct {
	symbol        string
	address       common.Address
	depositSymbol string
}

var pickleJars = []jarEntry{
	{"psCRV", common.HexToAddress("0x68d14d66B2B0d6E157c06Dc8Fefa3D8ba0e66a89"), "sCRV"},
	{"prenBTCWBTC", common.HexToAddress("0x2E35392F4c36EBa7eCAFE4de34199b2373Af22ec"), "renCRV"},
	{"p3CRV", common.HexToAddress("0x1BB74b5DdC1f4fC91D6f9E7906cf68bc93538e33"), "3CRV"},
	{"pSUSHIETHDAI", common.HexToAddress("0x55282da27a3a02ffe599f6d11314d239dac89135"), "SUSHI_ETH_DAI"},
	{"pSUSHIETHUSDC", common.HexToAddress("0x8c2d16b7f6d3f989eb4878ecf13d695a7d504e43"), "SUSHI_ETH_USDC"},
	{"pSUSHIETHUSDT", common.HexToAddress("0xa7a37ae5cb163a3147de83f15e15d8e5f94d6bce"), "SUSHI_ETH_USDT"},
	{"pSUSHIETHWBTC", common.HexToAddress("0xde74b6c547bd574c3527316a2ee30cd8f6041525"), "SUSHI_ETH_WBTC"},
	{"pSUSHIETHYFI", common.HexToAddress("0x3261D9408604CC8607b687980D40135aFA26FfED"), "SUSHI_ETH_YFI"},
	{"pUNIETHDAI", common.HexToAddress("0xCffA068F1E44D98D3753966eBd58D4CFe3BB5162"), "UNIV2_ETH_DAI"},
	{"pUNIETHUSDC", common.HexToAddress("0x53Bf2E62fA20e2b4522f05de3597890Ec1b352C6"), "UNIV2_ETH_USDC"},
	{"pUNIETHUSDT", common.HexToAddress("0x09FC573c502037B149ba87782ACC81cF093EC6ef"), "UNIV2_ETH_USDT"},
	{"pUNIETHWBTC", common.HexToAddress("0xc80090AA05374d336875907372EE4ee636CBC562"), "UNIV2_ETH_WBTC"},
	{"pDAI", common.HexToAddress("0x6949Bb624E8e8A90F87cD2058139fcd77D2F3F87"), "DAI"},
}

var jarDepositTokens = map[string]common.Address{
	"sCRV":           common.HexToAddress("0xC25a3A3b969415c80451098fa907EC722572917F"),
	"renCRV":         common.HexToAddress("0x49849C98ae39Fff122806C06791Fa73784FB3675"),
	"3CRV":           common.HexToAddress("0x6c3F90f043a72FA612cbac8115EE7e52BDe6E490"),
	"SUSHI_ETH_DAI":  common.HexToAddress("0xC3D03e4F041Fd4cD388c549Ee2A29a9E5075882f"),
	"SUSHI_ETH_USDC": common.HexToAddress("0x397FF1542f962076d0BFE58eA045FfA2d347ACa0"),
	"SUSHI_ETH_USDT": common.HexToAddress("0x06da0fd433C1A5d7a4faa01111c044910A184553"),
	"SUSHI_ETH_WBTC": common.HexToAddress("0xCEfF51756c56CeFFCA006cD410B03FFC46dd3a58"),
	"SUSHI_ETH_YFI":  common.HexToAddress("0x088ee5007C98a9677165D78dD2109AE4a3D04d0C"),
	"UNIV2_ETH_DAI":  common.HexToAddress("0xA478c2975Ab1Ea89e8196811F51A7B7Ade33eB11"),
	"UNIV2_ETH_USDC": common.HexToAddress("0xB4e16d0168e52d35CaCD2c6185b44281Ec28C9Dc"),
	"UNIV2_ETH_USDT": common.HexToAddress("0x0d4a11d5EEaaC28EC3F61d100daF4d40471f1852"),
	"UNIV2_ETH_WBTC": common.HexToAddress("0xBb2b8038a1640196FbE3e38816F3e67Cba72D940"),
	"DAI":            common.HexToAddress("0x6B175474E89094C44Da98b954EedeAC495271d0F"),
}

var depositTokenNames = map[string]string{
	"sCRV":           "sCRV",
	"renCRV":         "renBTCCRV",
	"3CRV":           "3poolCRV",
	"UNIV2_ETH_DAI":  "UNI DAI/ETH",
	"UNIV2_ETH_USDC": "UNI USDC/ETH",
	"UNIV2_ETH_USDT": "UNI USDT/ETH",
	"UNIV2_ETH_WBTC": "UNI WBTC/ETH",
	"SUSHI_ETH_DAI":  "SLP DAI/ETH",
	"SUSHI_ETH_USDC": "SLP USDC/ETH",
	"SUSHI_ETH_USDT": "SLP USDT/ETH",
	"SUSHI_ETH_WBTC": "SLP WBTC/ETH",
	"SUSHI_ETH_YFI":  "SLP YFI/ETH",
	"DAI":            "DAI",
}

// jarActive is keyed by deposit token display name.
var jarActive = map[string]bool{
	"sCRV":         true,
	"renBTCCRV":    true,
	"3poolCRV":     true,
	"UNI DAI/ETH":  false,
	"UNI USDC/ETH": false,
	"UNI USDT/ETH": false,
	"UNI WBTC/ETH": false,
	"SLP DAI/ETH":  true,
	"SLP USDC/ETH": true,
	"SLP USDT/ETH": true,
	"SLP WBTC/ETH": true,
	"SLP YFI/ETH":  true,
	"DAI":          false,
}

var depositTokenLinks = map[string]string{
	"sCRV":           "https://www.curve.fi/susdv2/deposit",
	"renCRV":         "https://www.curve.fi/ren/deposit",
	"3CRV":           "https://www.curve.fi/3pool/deposit",
	"UNIV2_ETH_DAI":  "https://app.uniswap.org/#/add/0x6b175474e89094c44da98b954eedeac495271d0f/ETH",
	"UNIV2_ETH_USDC": "https://app.uniswap.org/#/add/0xa0b86991c6218b36c1d19d4a2e9eb0ce3606eb48/ETH",
	"UNIV2_ETH_USDT": "https://app.uniswap.org/#/add/ETH/0xdac17f958d2ee523a2206206994597c13d831ec7",
	"UNIV2_ETH_WBTC": "https://app.uniswap.org/#/add/0x2260fac5e5542a773aa44fbcfedf7c193bc2c599/ETH",
	"SUSHI_ETH_DAI":  "https://exchange.sushiswapclassic.org/#/add/0x6b175474e89094c44da98b954eedeac495271d0f/ETH",
	"SUSHI_ETH_USDC": "https://exchange.sushiswapclassic.org/#/add/0xa0b86991c6218b36c1d19d4a2e9eb0ce3606eb48/ETH",
	"SUSHI_ETH_USDT": "https://exchange.sushiswapclassic.org/#/add/ETH/0xdac17f958d2ee523a2206206994597c13d831ec7",
	"SUSHI_ETH_WBTC": "https://exchange.sushiswapclassic.org/#/add/0x2260fac5e5542a773aa44fbcfedf7c193bc2c599/ETH",
	"SUSHI_ETH_YFI":  "https://exchange.sushiswapclassic.org/#/add/0x0bc529c00C6401aEF6D220BE8C6Ea1667F6Ad93e/ETH",
	"DAI":            "https://etherscan.io/token/0x6b175474e89094c44da98b954eedeac495271d0f",
}

// jarNames also carries labels of retired jars, suffixed _OLD.
var jarNames = map[string]string{
	"sCRV":               "pJar 0a",
	"renCRV":             "pJar 0b",
	"3CRV":               "pJar 0c",
	"UNIV2_ETH_DAI":      "pJar 0.69a",
	"UNIV2_ETH_USDC":     "pJar 0.69b",
	"UNIV2_ETH_USDT":     "pJar 0.69c",
	"UNIV2_ETH_WBTC":     "pJar 0.69d",
	"DAI":                "pJar 0.88a",
	"sCRV_OLD":           "pJar 0 (old)",
	"UNIV2_ETH_DAI_OLD":  "pJar 0.69a (old)",
	"UNIV2_ETH_USDC_OLD": "pJar 0.69b (old)",
	"UNIV2_ETH_USDT_OLD": "pJar 0.69c (old)",
	"SUSHI_ETH_DAI":      "pJar 0.99a",
	"SUSHI_ETH_USDC":     "pJar 0.99b",
	"SUSHI_ETH_USDT":     "pJar 0.99c",
	"SUSHI_ETH_WBTC":     "pJar 0.99d",
	"SUSHI_ETH_YFI":      "pJar 0.99e",
}

var strategyNames = map[string]map[string]string{
	"DAI": {
		"COMPOUNDv1": "StrategyCompoundDaiV1",
		"COMPOUNDv2": "StrategyCmpdDaiV2",
	},
}

// ResolveJar returns the jar contract address for a jar symbol such as "p3CRV".
func ResolveJar(symbol string) (common.Address, bool) {
	for _, jar := range pickleJars {
		if jar.symbol == symbol {
			return jar.address, true
		}
	}
	return common.Address{}, false
}

// ResolveDepositToken returns the deposit token address for a deposit symbol such as "3CRV".
func ResolveDepositToken(symbol string) (common.Address, bool) {
	addr, ok := jarDepositTokens[symbol]
	return addr, ok
}

func DepositTokenName(symbol string) (string, bool) {
	name, ok := depositTokenNames[symbol]
	return name, ok
}

func DepositTokenLink(symbol string) (string, bool) {
	link, ok := depositTokenLinks[symbol]
	return link, ok
}

func JarName(symbol string) (string, bool) {
	name, ok := jarNames[symbol]
	return name, ok
}

// JarActive reports whether deposits are enabled for a deposit token display name.
// Unknown names are inactive.
func JarActive(displayName string) bool {
	return jarActive[displayName]
}

// StrategyName looks up a strategy contract name by deposit symbol and strategy key.
func StrategyName(depositSymbol, key string) (string, bool) {
	byKey, ok := strategyNames[depositSymbol]
	if !ok {
		return "", false
	}
	name, ok := byKey[key]
	return name, ok
}

// Jars returns every pickle jar joined with its deposit token data, in declaration order.
func Jars() []model.Jar {
	out := make([]model.Jar, 0, len(pickleJars))
	for _, entry := range pickleJars {
		displayName := depositTokenNames[entry.depositSymbol]
		out = append(out, model.Jar{
			Symbol:           entry.symbol,
			Address:          entry.address,
			DepositSymbol:    entry.depositSymbol,
			DepositToken:     jarDepositTokens[entry.depositSymbol],
			DepositTokenName: displayName,
			JarName:          jarNames[entry.depositSymbol],
			DepositLink:      depositTokenLinks[entry.depositSymbol],
			Active:           jarActive[displayName],
		})
	}
	return out
}
