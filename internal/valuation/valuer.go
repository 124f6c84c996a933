package valuation

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"jarScope/internal/model"
	"jarScope/internal/registry"
)

// BalanceFetcher reads both token balances held by a pool and the pool share
// supply. Implementations must observe a single chain state for all three reads.
type BalanceFetcher interface {
	FetchPoolBalances(ctx context.Context, tokenA, tokenB, pool common.Address) (model.RawPoolSample, error)
}

// BatchFetcher reads samples for many pools in one consistent snapshot.
type BatchFetcher interface {
	FetchManyPoolBalances(ctx context.Context, pools []model.PoolDescriptor) (map[common.Address]model.RawPoolSample, error)
}

// Valuer values registered pools. It holds no state between calls.
type Valuer struct {
	fetcher BalanceFetcher
	prices  PriceLookup
	logger  *zap.Logger
}

func NewValuer(fetcher BalanceFetcher, prices PriceLookup, logger *zap.Logger) *Valuer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Valuer{
		fetcher: fetcher,
		prices:  prices,
		logger:  logger,
	}
}

// ValuePrefilled values a registered pool from samples the caller already fetched.
func (v *Valuer) ValuePrefilled(poolAddr common.Address, sample model.RawPoolSample) (Valuation, error) {
	pool, err := registry.Pool(poolAddr)
	if err != nil {
		return Valuation{}, err
	}
	return evaluate(pool, sample, v.prices)
}

// Value fetches the pool balances once and values the pool.
func (v *Valuer) Value(ctx context.Context, poolAddr common.Address) (Valuation, error) {
	if v.fetcher == nil {
		return Valuation{}, fmt.Errorf("balance fetcher is nil")
	}
	pool, err := registry.Pool(poolAddr)
	if err != nil {
		return Valuation{}, err
	}

	sample, err := v.fetcher.FetchPoolBalances(ctx, pool.TokenA.Address, pool.TokenB.Address, pool.Address)
	if err != nil {
		return Valuation{}, fmt.Errorf("fetch balances %s: %w", pool.Address.Hex(), err)
	}

	return v.ValuePrefilled(pool.Address, sample)
}

// ValueAll values many pools. When the fetcher supports batching, all pools are
// read in one snapshot. Pools that fail to value are skipped and their errors
// joined into the returned error alongside the successful valuations.
func (v *Valuer) ValueAll(ctx context.Context, poolAddrs []common.Address) ([]Valuation, error) {
	if v.fetcher == nil {
		return nil, fmt.Errorf("balance fetcher is nil")
	}

	pools := make([]model.PoolDescriptor, 0, len(poolAddrs))
	for _, addr := range poolAddrs {
		pool, err := registry.Pool(addr)
		if err != nil {
			return nil, err
		}
		pools = append(pools, pool)
	}
	if len(pools) == 0 {
		return nil, nil
	}

	samples, err := v.fetchSamples(ctx, pools)
	if err != nil {
		return nil, err
	}

	out := make([]Valuation, 0, len(pools))
	var errs []error
	for _, pool := range pools {
		sample, ok := samples[pool.Address]
		if !ok {
			errs = append(errs, fmt.Errorf("pool %s: no sample returned", pool.Address.Hex()))
			continue
		}
		valuation, err := v.ValuePrefilled(pool.Address, sample)
		if err != nil {
			v.logger.Warn("pool valuation failed", zap.String("pool", pool.Address.Hex()), zap.String("name", pool.Name), zap.Error(err))
			errs = append(errs, fmt.Errorf("pool %s: %w", pool.Address.Hex(), err))
			continue
		}
		out = append(out, valuation)
	}

	return out, errors.Join(errs...)
}

func (v *Valuer) fetchSamples(ctx context.Context, pools []model.PoolDescriptor) (map[common.Address]model.RawPoolSample, error) {
	if batch, ok := v.fetcher.(BatchFetcher); ok {
		samples, err := batch.FetchManyPoolBalances(ctx, pools)
		if err != nil {
			return nil, fmt.Errorf("fetch balances: %w", err)
		}
		return samples, nil
	}

	samples := make(map[common.Address]model.RawPoolSample, len(pools))
	for _, pool := range pools {
		sample, err := v.fetcher.FetchPoolBalances(ctx, pool.TokenA.Address, pool.TokenB.Address, pool.Address)
		if err != nil {
			return nil, fmt.Errorf("fetch balances %s: %w", pool.Address.Hex(), err)
		}
		samples[pool.Address] = sample
	}
	return samples, nil
}
