package chain

import (
	"context"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"jarScope/internal/model"
)

var (
	tokenA = common.HexToAddress("0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa")
	tokenB = common.HexToAddress("0xbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb")
	poolX  = common.HexToAddress("0x1111111111111111111111111111111111111111")
	poolY  = common.HexToAddress("0x2222222222222222222222222222222222222222")
)

func newWorld() *fakeCaller {
	return &fakeCaller{
		balances: map[holding]*big.Int{
			{token: tokenA, owner: poolX}: big.NewInt(1_000_000),
			{token: tokenB, owner: poolX}: big.NewInt(500_000_000_000_000_000),
			{token: tokenA, owner: poolY}: big.NewInt(7),
			{token: tokenB, owner: poolY}: big.NewInt(0),
		},
		supplies: map[common.Address]*big.Int{
			poolX: big.NewInt(1_000_000_000_000_000_000),
			poolY: big.NewInt(0),
		},
		block: 11_111_111,
	}
}

func TestFetchPoolBalances(t *testing.T) {
	world := newWorld()
	reader := NewBalanceReader(world, ReaderConfig{}, zap.NewNop())

	sample, err := reader.FetchPoolBalances(context.Background(), tokenA, tokenB, poolX)
	require.NoError(t, err)

	assert.Equal(t, 1, world.calls, "all reads share one eth_call")
	assert.Nil(t, world.lastBlock)
	assert.Equal(t, "1000000", sample.BalanceA.String())
	assert.Equal(t, "500000000000000000", sample.BalanceB.String())
	assert.Equal(t, "1000000000000000000", sample.TotalSupply.String())
	assert.Equal(t, uint64(11_111_111), sample.BlockNumber)
}

func TestFetchManyPoolBalancesSingleCall(t *testing.T) {
	world := newWorld()
	reader := NewBalanceReader(world, ReaderConfig{BlockNumber: 11_000_000}, nil)

	pools := []model.PoolDescriptor{
		{Address: poolX, TokenA: model.TokenDescriptor{Address: tokenA}, TokenB: model.TokenDescriptor{Address: tokenB}},
		{Address: poolY, TokenA: model.TokenDescriptor{Address: tokenA}, TokenB: model.TokenDescriptor{Address: tokenB}},
	}
	samples, err := reader.FetchManyPoolBalances(context.Background(), pools)
	require.NoError(t, err)

	assert.Equal(t, 1, world.calls)
	require.NotNil(t, world.lastBlock)
	assert.Equal(t, uint64(11_000_000), world.lastBlock.Uint64())
	require.Len(t, samples, 2)
	assert.Equal(t, "7", samples[poolY].BalanceA.String())
	assert.Equal(t, 0, samples[poolY].TotalSupply.Sign())
	assert.Equal(t, samples[poolX].BlockNumber, samples[poolY].BlockNumber)
}

func TestFetchPoolBalancesReverted(t *testing.T) {
	world := newWorld()
	delete(world.supplies, poolX)
	reader := NewBalanceReader(world, ReaderConfig{}, nil)

	_, err := reader.FetchPoolBalances(context.Background(), tokenA, tokenB, poolX)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "totalSupply reverted")
}

func TestFetchPoolBalancesRetries(t *testing.T) {
	world := newWorld()
	world.failFirst = 2
	reader := NewBalanceReader(world, ReaderConfig{Retry: RetryPolicy{MaxRetries: 2, Backoff: time.Millisecond}}, nil)

	_, err := reader.FetchPoolBalances(context.Background(), tokenA, tokenB, poolX)
	require.NoError(t, err)
	assert.Equal(t, 3, world.calls)

	world = newWorld()
	world.failFirst = 5
	reader = NewBalanceReader(world, ReaderConfig{Retry: RetryPolicy{MaxRetries: 1, Backoff: time.Millisecond}}, nil)
	_, err = reader.FetchPoolBalances(context.Background(), tokenA, tokenB, poolX)
	require.Error(t, err)
	assert.Equal(t, 2, world.calls)
}

func TestFetchManyPoolBalancesEmpty(t *testing.T) {
	world := newWorld()
	reader := NewBalanceReader(world, ReaderConfig{}, nil)

	samples, err := reader.FetchManyPoolBalances(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, samples)
	assert.Equal(t, 0, world.calls)
}
