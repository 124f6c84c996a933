package chain

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"jarScope/internal/model"
)

// call3 mirrors Multicall3.Call3.
type call3 struct {
	Target       common.Address
	AllowFailure bool
	CallData     []byte
}

// call3Result mirrors Multicall3.Result.
type call3Result struct {
	Success    bool
	ReturnData []byte
}

// ReaderConfig controls how pool balances are read.
type ReaderConfig struct {
	Multicall   common.Address
	BlockNumber uint64
	Retry       RetryPolicy
}

// BalanceReader reads pool token balances and share supply through Multicall3.
// Every read of one request is packed into a single aggregate3 eth_call, so all
// values come from the same block.
type BalanceReader struct {
	caller    ContractCaller
	multicall common.Address
	block     *big.Int
	retry     RetryPolicy
	logger    *zap.Logger
}

func NewBalanceReader(caller ContractCaller, cfg ReaderConfig, logger *zap.Logger) *BalanceReader {
	if logger == nil {
		logger = zap.NewNop()
	}
	multicall := cfg.Multicall
	if multicall == (common.Address{}) {
		multicall = DefaultMulticallAddress
	}
	var block *big.Int
	if cfg.BlockNumber > 0 {
		block = new(big.Int).SetUint64(cfg.BlockNumber)
	}
	return &BalanceReader{
		caller:    caller,
		multicall: multicall,
		block:     block,
		retry:     cfg.Retry,
		logger:    logger,
	}
}

// FetchPoolBalances returns balanceOf(pool) for both tokens and the pool totalSupply.
func (r *BalanceReader) FetchPoolBalances(ctx context.Context, tokenA, tokenB, pool common.Address) (model.RawPoolSample, error) {
	samples, err := r.FetchManyPoolBalances(ctx, []model.PoolDescriptor{{
		Address: pool,
		TokenA:  model.TokenDescriptor{Address: tokenA},
		TokenB:  model.TokenDescriptor{Address: tokenB},
	}})
	if err != nil {
		return model.RawPoolSample{}, err
	}
	return samples[pool], nil
}

// FetchManyPoolBalances reads every pool in one aggregate3 call.
func (r *BalanceReader) FetchManyPoolBalances(ctx context.Context, pools []model.PoolDescriptor) (map[common.Address]model.RawPoolSample, error) {
	if r.caller == nil {
		return nil, fmt.Errorf("contract caller is nil")
	}
	if len(pools) == 0 {
		return map[common.Address]model.RawPoolSample{}, nil
	}

	erc20, err := ERC20ABI()
	if err != nil {
		return nil, fmt.Errorf("parse erc20 abi: %w", err)
	}
	multicall, err := MulticallABI()
	if err != nil {
		return nil, fmt.Errorf("parse multicall abi: %w", err)
	}

	calls := make([]call3, 0, len(pools)*3+1)
	for _, pool := range pools {
		balance, err := erc20.Pack("balanceOf", pool.Address)
		if err != nil {
			return nil, fmt.Errorf("pack balanceOf: %w", err)
		}
		supply, err := erc20.Pack("totalSupply")
		if err != nil {
			return nil, fmt.Errorf("pack totalSupply: %w", err)
		}
		calls = append(calls,
			call3{Target: pool.TokenA.Address, CallData: balance},
			call3{Target: pool.TokenB.Address, CallData: balance},
			call3{Target: pool.Address, CallData: supply},
		)
	}
	blockCall, err := multicall.Pack("getBlockNumber")
	if err != nil {
		return nil, fmt.Errorf("pack getBlockNumber: %w", err)
	}
	calls = append(calls, call3{Target: r.multicall, CallData: blockCall})

	results, err := r.aggregate(ctx, multicall, calls)
	if err != nil {
		return nil, err
	}
	if len(results) != len(calls) {
		return nil, fmt.Errorf("aggregate3 returned %d results for %d calls", len(results), len(calls))
	}

	blockNumber, err := unpackUint(multicall, "getBlockNumber", results[len(results)-1])
	if err != nil {
		return nil, err
	}
	if !blockNumber.IsUint64() {
		return nil, fmt.Errorf("block number does not fit in uint64: %s", blockNumber)
	}

	out := make(map[common.Address]model.RawPoolSample, len(pools))
	for i, pool := range pools {
		base := i * 3
		balanceA, err := unpackUint(erc20, "balanceOf", results[base])
		if err != nil {
			return nil, fmt.Errorf("pool %s token a: %w", pool.Address.Hex(), err)
		}
		balanceB, err := unpackUint(erc20, "balanceOf", results[base+1])
		if err != nil {
			return nil, fmt.Errorf("pool %s token b: %w", pool.Address.Hex(), err)
		}
		supply, err := unpackUint(erc20, "totalSupply", results[base+2])
		if err != nil {
			return nil, fmt.Errorf("pool %s supply: %w", pool.Address.Hex(), err)
		}
		out[pool.Address] = model.RawPoolSample{
			BalanceA:    balanceA,
			BalanceB:    balanceB,
			TotalSupply: supply,
			BlockNumber: blockNumber.Uint64(),
		}
	}

	r.logger.Debug("pool balances fetched", zap.Int("pools", len(pools)), zap.Uint64("block_number", blockNumber.Uint64()))
	return out, nil
}

func (r *BalanceReader) aggregate(ctx context.Context, multicall abi.ABI, calls []call3) ([]call3Result, error) {
	data, err := multicall.Pack("aggregate3", calls)
	if err != nil {
		return nil, fmt.Errorf("pack aggregate3: %w", err)
	}

	msg := ethereum.CallMsg{To: &r.multicall, Data: data}
	var resp []byte
	err = r.retry.do(ctx, func(ctx context.Context) error {
		var err error
		resp, err = r.caller.CallContract(ctx, msg, r.block)
		return err
	}, func(attempt int, err error) {
		r.logger.Warn("aggregate3 call failed", zap.Int("attempt", attempt), zap.Int("calls", len(calls)), zap.Error(err))
	})
	if err != nil {
		return nil, fmt.Errorf("call aggregate3: %w", err)
	}

	values, err := multicall.Unpack("aggregate3", resp)
	if err != nil {
		return nil, fmt.Errorf("unpack aggregate3: %w", err)
	}
	if len(values) != 1 {
		return nil, fmt.Errorf("aggregate3 return size %d", len(values))
	}
	results := *abi.ConvertType(values[0], new([]call3Result)).(*[]call3Result)
	return results, nil
}

func unpackUint(parsed abi.ABI, method string, result call3Result) (*big.Int, error) {
	if !result.Success {
		return nil, fmt.Errorf("%s reverted", method)
	}
	values, err := parsed.Unpack(method, result.ReturnData)
	if err != nil {
		return nil, fmt.Errorf("unpack %s: %w", method, err)
	}
	if len(values) != 1 {
		return nil, fmt.Errorf("%s return size %d", method, len(values))
	}
	value, ok := values[0].(*big.Int)
	if !ok {
		return nil, fmt.Errorf("%s unexpected type %T", method, values[0])
	}
	return value, nil
}
