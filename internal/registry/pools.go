package registry

import (
	"bytes"
	"errors"
	"fmt"
	"sort"

	"github.com/ethereum/go-ethereum/common"

	"jarScope/internal/model"
)

// ErrUnknownPool is returned when a pool address has no registered pair info.
var ErrUnknownPool = errors.New("unknown pool address")

// pairInfo holds the Sushi pairs that can be valued.
var pairInfo = map[common.Address]model.PoolDescriptor{
	common.HexToAddress("0xC3D03e4F041Fd4cD388c549Ee2A29a9E5075882f"): {Name: "SLP DAI/ETH", TokenA: dai, TokenB: weth},
	common.HexToAddress("0x397FF1542f962076d0BFE58eA045FfA2d347ACa0"): {Name: "SLP USDC/ETH", TokenA: usdc, TokenB: weth},
	common.HexToAddress("0x06da0fd433C1A5d7a4faa01111c044910A184553"): {Name: "SLP USDT/ETH", TokenA: usdt, TokenB: weth},
	common.HexToAddress("0xCEfF51756c56CeFFCA006cD410B03FFC46dd3a58"): {Name: "SLP WBTC/ETH", TokenA: wbtc, TokenB: weth},
	common.HexToAddress("0x088ee5007C98a9677165D78dD2109AE4a3D04d0C"): {Name: "SLP YFI/ETH", TokenA: yfi, TokenB: weth},
}

// Pool returns the descriptor for a pool address.
func Pool(address common.Address) (model.PoolDescriptor, error) {
	desc, ok := pairInfo[address]
	if !ok {
		return model.PoolDescriptor{}, fmt.Errorf("%w: %s", ErrUnknownPool, address.Hex())
	}
	desc.Address = address
	return desc, nil
}

// Pools returns every registered pool sorted by address.
func Pools() []model.PoolDescriptor {
	out := make([]model.PoolDescriptor, 0, len(pairInfo))
	for addr, desc := range pairInfo {
		desc.Address = addr
		out = append(out, desc)
	}
	sort.Slice(out, func(i, j int) bool {
		return bytes.Compare(out[i].Address.Bytes(), out[j].Address.Bytes()) < 0
	})
	return out
}
