package chain

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
)

type holding struct {
	token common.Address
	owner common.Address
}

// fakeCaller emulates an ERC20 world behind a Multicall3 contract.
type fakeCaller struct {
	balances  map[holding]*big.Int
	supplies  map[common.Address]*big.Int
	symbols   map[common.Address]string
	bytes32   map[common.Address]bool
	decimals  map[common.Address]uint8
	block     uint64
	failFirst int

	calls     int
	lastBlock *big.Int
}

func (f *fakeCaller) CallContract(_ context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	f.calls++
	f.lastBlock = blockNumber
	if f.calls <= f.failFirst {
		return nil, errors.New("temporary rpc failure")
	}

	multicall, err := MulticallABI()
	if err != nil {
		return nil, err
	}
	if method, err := multicall.MethodById(msg.Data[:4]); err == nil && method.Name == "aggregate3" {
		args, err := method.Inputs.Unpack(msg.Data[4:])
		if err != nil {
			return nil, err
		}
		calls := *abi.ConvertType(args[0], new([]call3)).(*[]call3)
		results := make([]call3Result, 0, len(calls))
		for _, c := range calls {
			out, err := f.single(c.Target, c.CallData)
			results = append(results, call3Result{Success: err == nil, ReturnData: out})
		}
		return method.Outputs.Pack(results)
	}

	return f.single(*msg.To, msg.Data)
}

func (f *fakeCaller) single(target common.Address, data []byte) ([]byte, error) {
	erc20, err := ERC20ABI()
	if err != nil {
		return nil, err
	}
	multicall, err := MulticallABI()
	if err != nil {
		return nil, err
	}

	if method, err := multicall.MethodById(data[:4]); err == nil && method.Name == "getBlockNumber" {
		return method.Outputs.Pack(new(big.Int).SetUint64(f.block))
	}

	method, err := erc20.MethodById(data[:4])
	if err != nil {
		return nil, err
	}
	switch method.Name {
	case "balanceOf":
		args, err := method.Inputs.Unpack(data[4:])
		if err != nil {
			return nil, err
		}
		bal, ok := f.balances[holding{token: target, owner: args[0].(common.Address)}]
		if !ok {
			return nil, fmt.Errorf("execution reverted")
		}
		return method.Outputs.Pack(bal)
	case "totalSupply":
		supply, ok := f.supplies[target]
		if !ok {
			return nil, fmt.Errorf("execution reverted")
		}
		return method.Outputs.Pack(supply)
	case "decimals":
		decimals, ok := f.decimals[target]
		if !ok {
			return nil, fmt.Errorf("execution reverted")
		}
		return method.Outputs.Pack(decimals)
	case "symbol", "name":
		symbol, ok := f.symbols[target]
		if !ok {
			return nil, fmt.Errorf("execution reverted")
		}
		if f.bytes32[target] {
			var word [32]byte
			copy(word[:], symbol)
			return word[:], nil
		}
		return method.Outputs.Pack(symbol)
	default:
		return nil, fmt.Errorf("unexpected method %s", method.Name)
	}
}
